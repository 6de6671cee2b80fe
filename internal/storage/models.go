package storage

import "time"

// User is a registered account: a student who uploads resumes or a
// company that runs matches. Passwords are stored bcrypt-hashed.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CollegeCode  string    `json:"collegeCode"`
	Type         string    `json:"type"` // student or company
	CreatedAt    time.Time `json:"createdAt"`
}

// Resume is the current parsed resume for one owner. At most one row
// per owner exists; re-uploads replace the previous record.
type Resume struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"-"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	SuggestedRole string    `json:"suggestedRole"`
	Skills        []string  `json:"skills"`
	Experience    string    `json:"experience"`
	RawText       string    `json:"-"`
	FilePath      string    `json:"-"`
	CollegeCode   string    `json:"collegeCode"`
	UploadedAt    time.Time `json:"uploadedAt"`
}

// MatchSummary is the per-candidate slice of a match run that gets
// persisted into history.
type MatchSummary struct {
	ResumeID string  `json:"resumeId"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Score    float64 `json:"score"`
}

// HistoryEntry records one matching invocation. Entries are append-only.
type HistoryEntry struct {
	ID             string         `json:"id"`
	RequesterID    string         `json:"-"`
	JobDescription string         `json:"jobDescription"`
	CollegeCode    string         `json:"collegeCode"`
	Matches        []MatchSummary `json:"matches"`
	CreatedAt      time.Time      `json:"createdAt"`
}
