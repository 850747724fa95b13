package artifacts

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. The lookup funcs, when
// set, resolve display names for list rows the way the SQL join does.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Artifact // fileID -> artifact

	ProfileNameFn func(ctx context.Context, profileID string) (string, bool)
	JobAdTitleFn  func(ctx context.Context, jobAdID string) (string, bool)
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Artifact)}
}

// Create stores a new artifact record.
func (r *MemoryRepo) Create(ctx context.Context, a Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[a.ID] = a
	return nil
}

// GetByID returns an artifact by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, fileID string) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.data[fileID]
	if !ok {
		return Artifact{}, ErrNotFound
	}
	return a, nil
}

// ListByProfile returns artifacts for a profile ordered by sort order then
// newest first.
func (r *MemoryRepo) ListByProfile(ctx context.Context, profileID string) ([]ListItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []ListItem{}
	for _, a := range r.data {
		if a.ProfileID != profileID {
			continue
		}
		item := ListItem{Artifact: a}
		if r.ProfileNameFn != nil {
			if name, ok := r.ProfileNameFn(ctx, a.ProfileID); ok {
				item.ProfileName = &name
			}
		}
		if r.JobAdTitleFn != nil && a.JobAdID != "" {
			if title, ok := r.JobAdTitleFn(ctx, a.JobAdID); ok {
				item.JobAdTitle = &title
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].UploadDate.After(out[j].UploadDate)
	})
	return out, nil
}

// Rename updates an artifact's filename.
func (r *MemoryRepo) Rename(ctx context.Context, fileID, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.data[fileID]
	if !ok {
		return ErrNotFound
	}
	a.Filename = filename
	r.data[fileID] = a
	return nil
}

// UpdateSortOrder updates an artifact's position in its profile's list.
func (r *MemoryRepo) UpdateSortOrder(ctx context.Context, fileID string, sortOrder int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.data[fileID]
	if !ok {
		return ErrNotFound
	}
	a.SortOrder = sortOrder
	r.data[fileID] = a
	return nil
}

// Delete removes an artifact record.
func (r *MemoryRepo) Delete(ctx context.Context, fileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[fileID]; !ok {
		return ErrNotFound
	}
	delete(r.data, fileID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
