package profiles

import "context"

// Repo defines persistence operations for profiles.
type Repo interface {
	Create(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, profileID string) (Profile, error)
	ListByUser(ctx context.Context, userID string) ([]Profile, error)
	Update(ctx context.Context, p Profile) error
	Delete(ctx context.Context, userID, profileID string) error
}
