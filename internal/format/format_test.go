package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64 { return &v }

func TestDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	require.Equal(t, "Mar 5, 2024", Date(ts))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same day", now.Add(-2 * time.Hour), "Today"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"days", now.AddDate(0, 0, -3), "3 days ago"},
		{"weeks", now.AddDate(0, 0, -14), "2 weeks ago"},
		{"months", now.AddDate(0, 0, -90), "3 months ago"},
		{"years", now.AddDate(0, 0, -800), "2 years ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RelativeTime(tt.t, now))
		})
	}
}

func TestSalary(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int64
		currency string
		want     string
	}{
		{"range", int64p(70000), int64p(90000), "USD", "$70,000 - $90,000"},
		{"min only", int64p(120000), nil, "USD", "From $120,000"},
		{"max only", nil, int64p(60000), "USD", "Up to $60,000"},
		{"unspecified", nil, nil, "USD", "Salary not specified"},
		{"default currency", int64p(50000), nil, "", "From $50,000"},
		{"unknown currency", int64p(80000), nil, "CHF", "From CHF 80,000"},
		{"euro", int64p(65000), int64p(85000), "EUR", "€65,000 - €85,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Salary(tt.min, tt.max, tt.currency))
		})
	}
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "long t...", Truncate("long text here", 6))
	require.Equal(t, "", Truncate("", 5))
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Remote", Capitalize("remote"))
	require.Equal(t, "Already", Capitalize("Already"))
	require.Equal(t, "", Capitalize(""))
}

func TestValidEmail(t *testing.T) {
	require.True(t, ValidEmail("user@example.com"))
	require.True(t, ValidEmail("first.last@sub.example.org"))
	require.False(t, ValidEmail("not-an-email"))
	require.False(t, ValidEmail("missing@domain"))
	require.False(t, ValidEmail("spaces in@example.com"))
	require.False(t, ValidEmail(""))
}

func TestValidPassword(t *testing.T) {
	require.True(t, ValidPassword("12345678"))
	require.False(t, ValidPassword("1234567"))
}

func TestValidResumeFile(t *testing.T) {
	require.True(t, ValidResumeFile("resume.pdf", 1024))
	require.True(t, ValidResumeFile("Resume.DOCX", 1024))
	require.False(t, ValidResumeFile("resume.txt", 1024))
	require.False(t, ValidResumeFile("resume.pdf", 0))
	require.False(t, ValidResumeFile("resume.pdf", MaxResumeSize+1))
	require.False(t, ValidResumeFile("noextension", 1024))
}

func TestFileExtension(t *testing.T) {
	require.Equal(t, ".pdf", FileExtension("resume.pdf"))
	require.Equal(t, ".gz", FileExtension("archive.tar.gz"))
	require.Equal(t, "", FileExtension("noext"))
}

func TestMatchScore(t *testing.T) {
	require.Equal(t, "85%", MatchScore(0.85))
	require.Equal(t, "0%", MatchScore(0))
	require.Equal(t, "100%", MatchScore(1))
}

func TestMatchScoreLevel(t *testing.T) {
	require.Equal(t, "high", MatchScoreLevel(0.9))
	require.Equal(t, "good", MatchScoreLevel(0.7))
	require.Equal(t, "fair", MatchScoreLevel(0.5))
	require.Equal(t, "low", MatchScoreLevel(0.2))
}
