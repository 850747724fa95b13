package jobads

import "time"

// ParsedJob is the constrained JSON shape the extractor asks the model for.
type ParsedJob struct {
	JobTitle     string   `json:"jobTitle"`
	CompanyName  string   `json:"companyName"`
	PostedAt     string   `json:"postedAt"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// JobAd is a persisted job posting extraction. Immutable once created except
// by re-extraction.
type JobAd struct {
	ID           string
	UserID       string
	JobTitle     string
	CompanyName  string
	PostedAt     string
	Location     string
	Description  string
	Requirements []string
	RawText      string
	CreatedAt    time.Time
}
