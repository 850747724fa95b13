package artifacts

import "time"

// Artifact is one stored resume file plus its generation metadata.
type Artifact struct {
	ID          string
	ProfileID   string
	JobAdID     string // empty when not generated against a job ad
	Template    string
	Format      string
	Filename    string
	StorageKey  string
	SizeBytes   int64
	IsGenerated bool
	SortOrder   int
	UploadDate  time.Time
}

// ListItem is an artifact joined with display names from its related records.
// The pointers are nil when the related record no longer exists.
type ListItem struct {
	Artifact
	ProfileName *string
	JobAdTitle  *string
}
