package profiles

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Profile // profileID -> profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Profile),
	}
}

// Create stores a new profile.
func (r *MemoryRepo) Create(ctx context.Context, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.ID] = p
	return nil
}

// GetByID returns a profile by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, profileID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[profileID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

// ListByUser returns all profiles for a user, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Profile{}
	for _, p := range r.data {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces a stored profile.
func (r *MemoryRepo) Update(ctx context.Context, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[p.ID]
	if !ok || existing.UserID != p.UserID {
		return ErrNotFound
	}
	r.data[p.ID] = p
	return nil
}

// Delete removes a profile owned by the user.
func (r *MemoryRepo) Delete(ctx context.Context, userID, profileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[profileID]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(r.data, profileID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
