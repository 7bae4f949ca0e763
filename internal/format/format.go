// Package format holds the pure presentation and validation helpers used by
// the route handlers. Nothing here keeps state or performs I/O.
package format

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date renders a timestamp as "Jan 2, 2006".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// RelativeTime renders how long ago t was, relative to now.
func RelativeTime(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Salary renders a salary range. Nil bounds are open ends; when both are nil
// the salary is unspecified.
func Salary(min, max *int64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%s - %s", money(*min, currency), money(*max, currency))
	case min != nil:
		return fmt.Sprintf("From %s", money(*min, currency))
	case max != nil:
		return fmt.Sprintf("Up to %s", money(*max, currency))
	default:
		return "Salary not specified"
	}
}

func money(amount int64, currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + groupThousands(amount)
	}
	return fmt.Sprintf("%s %s", currency, groupThousands(amount))
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Truncate shortens text to maxLength runes, appending "..." when it was cut.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// Capitalize upper-cases the first rune of text.
func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email looks like an address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword reports whether password meets the minimum length policy.
func ValidPassword(password string) bool {
	return len(password) >= 8
}

// MaxResumeSize is the upload limit for resume files.
const MaxResumeSize = 10 * 1024 * 1024

var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ValidResumeFile reports whether a file named filename of the given size is
// an acceptable resume upload.
func ValidResumeFile(filename string, size int64) bool {
	if size <= 0 || size > MaxResumeSize {
		return false
	}
	return resumeExtensions[strings.ToLower(FileExtension(filename))]
}

// FileExtension returns the extension of filename including the dot, or ""
// when there is none.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx:]
}

// MatchScore renders a 0..1 match score as a rounded percentage.
func MatchScore(score float64) string {
	return fmt.Sprintf("%d%%", int(score*100+0.5))
}

// MatchScoreLevel buckets a 0..1 match score into a coarse quality level.
func MatchScoreLevel(score float64) string {
	switch {
	case score >= 0.8:
		return "high"
	case score >= 0.6:
		return "good"
	case score >= 0.4:
		return "fair"
	default:
		return "low"
	}
}
