package artifacts

import "context"

// Repo defines persistence operations for artifact metadata.
type Repo interface {
	Create(ctx context.Context, a Artifact) error
	GetByID(ctx context.Context, fileID string) (Artifact, error)
	ListByProfile(ctx context.Context, profileID string) ([]ListItem, error)
	Rename(ctx context.Context, fileID, filename string) error
	UpdateSortOrder(ctx context.Context, fileID string, sortOrder int) error
	Delete(ctx context.Context, fileID string) error
}
