package profiles

import "time"

// ContactInfo holds the ways to reach a profile owner.
type ContactInfo struct {
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Address          string   `json:"address"`
	AdditionalEmails []string `json:"additionalEmails,omitempty"`
	AdditionalPhones []string `json:"additionalPhones,omitempty"`
}

// JobEntry is one position in a job history or internship list.
type JobEntry struct {
	ID              string   `json:"id"`
	Company         string   `json:"company"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Accomplishments []string `json:"accomplishments"`
}

// EducationEntry is one school or degree record.
type EducationEntry struct {
	ID     string `json:"id"`
	School string `json:"school"`
	Degree string `json:"degree"`
	Dates  string `json:"dates"`
	GPA    string `json:"gpa,omitempty"`
}

// Profile is one structured professional profile owned by a single user.
// List order within JobHistory, Education and Internships is display order.
type Profile struct {
	ID              string
	UserID          string
	Name            string
	JobTitle        string
	ContactInfo     ContactInfo
	CareerObjective string
	Skills          []string
	JobHistory      []JobEntry
	Education       []EducationEntry
	Internships     []JobEntry
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
