package api

import "time"

// User is the server-asserted identity record. It is an immutable snapshot;
// the client never edits it locally.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// LoginRequest carries password-login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the registration fields.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Resume is an uploaded resume with its server-side parse results.
type Resume struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	OriginalFilename string           `json:"original_filename"`
	FilePath         string           `json:"file_path"`
	ParsedData       ParsedResumeData `json:"parsed_data"`
	Embedding        []float64        `json:"embedding,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ParsedResumeData is the structured content extracted from a resume.
type ParsedResumeData struct {
	Contact    *ContactInfo     `json:"contact,omitempty"`
	Skills     []string         `json:"skills"`
	Experience []WorkExperience `json:"experience"`
	Education  []Education      `json:"education"`
	Summary    string           `json:"summary,omitempty"`
}

type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type WorkExperience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// Job is a single job posting.
type Job struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location,omitempty"`
	RemoteType     string     `json:"remote_type,omitempty"`     // remote, hybrid, onsite
	EmploymentType string     `json:"employment_type,omitempty"` // full_time, part_time, contract, internship
	SalaryMin      *int64     `json:"salary_min,omitempty"`
	SalaryMax      *int64     `json:"salary_max,omitempty"`
	SalaryCurrency string     `json:"salary_currency,omitempty"`
	Description    string     `json:"description"`
	Requirements   string     `json:"requirements,omitempty"`
	URL            string     `json:"url,omitempty"`
	Source         string     `json:"source"`
	PostedDate     *time.Time `json:"posted_date,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

// JobMatch is a job ranked against the user's resume.
type JobMatch struct {
	Job           Job      `json:"job"`
	MatchScore    float64  `json:"match_score"`
	SemanticScore float64  `json:"semantic_score"`
	SkillScore    float64  `json:"skill_score"`
	LocationScore float64  `json:"location_score"`
	MatchReasons  []string `json:"match_reasons"`
}

// UserStats summarizes the user's activity.
type UserStats struct {
	TotalResumes int `json:"total_resumes"`
	TotalMatches int `json:"total_matches"`
	SavedJobs    int `json:"saved_jobs"`
	AppliedJobs  int `json:"applied_jobs"`
}

// InteractionType classifies a user action on a job posting.
type InteractionType string

const (
	InteractionView    InteractionType = "view"
	InteractionLike    InteractionType = "like"
	InteractionDislike InteractionType = "dislike"
	InteractionSave    InteractionType = "save"
	InteractionApply   InteractionType = "apply"
	InteractionDismiss InteractionType = "dismiss"
)

// ValidInteraction reports whether t is one of the known interaction types.
func ValidInteraction(t InteractionType) bool {
	switch t {
	case InteractionView, InteractionLike, InteractionDislike,
		InteractionSave, InteractionApply, InteractionDismiss:
		return true
	}
	return false
}
