package jobads

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]JobAd // jobAdID -> ad
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]JobAd)}
}

// Create stores a new job ad.
func (r *MemoryRepo) Create(ctx context.Context, ad JobAd) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[ad.ID] = ad
	return nil
}

// GetByID returns a job ad by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, jobAdID string) (JobAd, error) {
	if err := ctx.Err(); err != nil {
		return JobAd{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ad, ok := r.data[jobAdID]
	if !ok {
		return JobAd{}, ErrNotFound
	}
	return ad, nil
}

// ListByUser returns all job ads for a user, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]JobAd, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []JobAd{}
	for _, ad := range r.data {
		if ad.UserID == userID {
			out = append(out, ad)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a job ad owned by the user.
func (r *MemoryRepo) Delete(ctx context.Context, userID, jobAdID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ad, ok := r.data[jobAdID]
	if !ok || ad.UserID != userID {
		return ErrNotFound
	}
	delete(r.data, jobAdID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
