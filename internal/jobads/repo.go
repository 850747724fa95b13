package jobads

import "context"

// Repo defines persistence operations for job ads.
type Repo interface {
	Create(ctx context.Context, ad JobAd) error
	GetByID(ctx context.Context, jobAdID string) (JobAd, error)
	ListByUser(ctx context.Context, userID string) ([]JobAd, error)
	Delete(ctx context.Context, userID, jobAdID string) error
}
