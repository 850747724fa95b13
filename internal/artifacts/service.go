package artifacts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/convert"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
)

// ProfileGuard reports whether a user owns a profile. Artifact ownership is
// derived from profile ownership.
type ProfileGuard interface {
	Owns(ctx context.Context, userID, profileID string) (bool, error)
}

// Service contains business logic for stored resume artifacts.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
	Guard ProfileGuard
}

// SaveGenerated persists a generated resume: bytes to the object store,
// metadata to the repo. The object is removed again if the metadata insert
// fails.
func (s *Service) SaveGenerated(ctx context.Context, a Artifact, content []byte) (Artifact, error) {
	if a.ProfileID == "" || a.Filename == "" {
		return Artifact{}, ErrInvalidInput
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Format == "" {
		a.Format = convert.FormatPDF
	}
	a.StorageKey = fmt.Sprintf("resumes/%s.%s", a.ID, a.Format)
	a.IsGenerated = true
	a.UploadDate = time.Now().UTC()

	size, err := s.Store.SaveWithKey(ctx, a.StorageKey, convert.ContentType(a.Format), bytes.NewReader(content))
	if err != nil {
		return Artifact{}, fmt.Errorf("store artifact bytes: %w", err)
	}
	a.SizeBytes = size

	if err := s.Repo.Create(ctx, a); err != nil {
		if delErr := s.Store.Delete(ctx, a.StorageKey); delErr != nil {
			telemetry.Warn("artifacts.orphan_object", map[string]any{
				"storage_key": a.StorageKey,
				"error":       delErr.Error(),
			})
		}
		return Artifact{}, fmt.Errorf("store artifact metadata: %w", err)
	}
	return a, nil
}

// List returns the artifacts of a profile owned by the user.
func (s *Service) List(ctx context.Context, userID, profileID string) ([]ListItem, error) {
	if err := s.authorizeProfile(ctx, userID, profileID); err != nil {
		return nil, err
	}
	return s.Repo.ListByProfile(ctx, profileID)
}

// Fetch returns an artifact's metadata and content, converted to the
// requested format. An empty format means the stored format.
func (s *Service) Fetch(ctx context.Context, userID, fileID, format string) (Artifact, []byte, error) {
	a, err := s.authorizeFile(ctx, userID, fileID)
	if err != nil {
		return Artifact{}, nil, err
	}

	rc, err := s.Store.Open(ctx, a.StorageKey)
	if err != nil {
		return Artifact{}, nil, fmt.Errorf("open artifact bytes: %w", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return Artifact{}, nil, fmt.Errorf("read artifact bytes: %w", err)
	}

	if format == "" || format == a.Format {
		return a, content, nil
	}
	converted, err := convert.Convert(content, a.Format, format)
	if err != nil {
		return Artifact{}, nil, err
	}
	return a, converted, nil
}

// Rename updates an artifact's filename after sanitizing it.
func (s *Service) Rename(ctx context.Context, userID, fileID, filename string) (Artifact, error) {
	a, err := s.authorizeFile(ctx, userID, fileID)
	if err != nil {
		return Artifact{}, err
	}

	clean, err := util.SanitizeFileName(strings.TrimSpace(filename))
	if err != nil || clean == "" {
		return Artifact{}, fmt.Errorf("%w: invalid filename", ErrInvalidInput)
	}
	if err := s.Repo.Rename(ctx, fileID, clean); err != nil {
		return Artifact{}, err
	}
	a.Filename = clean
	return a, nil
}

// Delete removes an artifact's bytes and metadata. A missing object is not
// an error; the metadata row is authoritative.
func (s *Service) Delete(ctx context.Context, userID, fileID string) error {
	a, err := s.authorizeFile(ctx, userID, fileID)
	if err != nil {
		return err
	}

	if err := s.Store.Delete(ctx, a.StorageKey); err != nil {
		telemetry.Warn("artifacts.object_delete_failed", map[string]any{
			"storage_key": a.StorageKey,
			"error":       err.Error(),
		})
	}
	return s.Repo.Delete(ctx, fileID)
}

// Reorder assigns each artifact its index in orderedIDs as the new sort
// position. Updates run concurrently; the first error wins and remaining
// updates still complete.
func (s *Service) Reorder(ctx context.Context, userID string, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return fmt.Errorf("%w: no files to reorder", ErrInvalidInput)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(orderedIDs))
	for i, fileID := range orderedIDs {
		wg.Add(1)
		go func(i int, fileID string) {
			defer wg.Done()
			if _, err := s.authorizeFile(ctx, userID, fileID); err != nil {
				errs[i] = err
				return
			}
			errs[i] = s.Repo.UpdateSortOrder(ctx, fileID, i)
		}(i, fileID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) authorizeProfile(ctx context.Context, userID, profileID string) error {
	owns, err := s.Guard.Owns(ctx, userID, profileID)
	if err != nil {
		return err
	}
	if !owns {
		return ErrNotFound
	}
	return nil
}

func (s *Service) authorizeFile(ctx context.Context, userID, fileID string) (Artifact, error) {
	a, err := s.Repo.GetByID(ctx, fileID)
	if err != nil {
		return Artifact{}, err
	}
	if err := s.authorizeProfile(ctx, userID, a.ProfileID); err != nil {
		return Artifact{}, err
	}
	return a, nil
}
