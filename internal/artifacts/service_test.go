package artifacts

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"resume-builder/internal/convert"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (s *memStore) SaveWithKey(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = content
	return int64(len(content)), nil
}

func (s *memStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.objects[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

type guardFunc func(ctx context.Context, userID, profileID string) (bool, error)

func (f guardFunc) Owns(ctx context.Context, userID, profileID string) (bool, error) {
	return f(ctx, userID, profileID)
}

var ownerGuard = guardFunc(func(ctx context.Context, userID, profileID string) (bool, error) {
	return userID == "owner", nil
})

func newTestService() (*Service, *memStore) {
	store := newMemStore()
	return &Service{Repo: NewMemoryRepo(), Store: store, Guard: ownerGuard}, store
}

func TestSaveGeneratedStoresBytesAndMetadata(t *testing.T) {
	svc, store := newTestService()

	saved, err := svc.SaveGenerated(context.Background(), Artifact{
		ProfileID: "p1",
		JobAdID:   "j1",
		Template:  "classic",
		Filename:  "Jane_Doe_SRE.pdf",
	}, []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("SaveGenerated returned error: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("no ID assigned")
	}
	if saved.Format != convert.FormatPDF {
		t.Errorf("format = %q, want pdf", saved.Format)
	}
	if saved.SizeBytes != int64(len("%PDF-fake")) {
		t.Errorf("size = %d", saved.SizeBytes)
	}
	if !saved.IsGenerated {
		t.Error("IsGenerated = false")
	}
	if _, ok := store.objects[saved.StorageKey]; !ok {
		t.Errorf("object %q not in store", saved.StorageKey)
	}

	got, content, err := svc.Fetch(context.Background(), "owner", saved.ID, "")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if string(content) != "%PDF-fake" {
		t.Errorf("content = %q", content)
	}
	if got.Filename != "Jane_Doe_SRE.pdf" {
		t.Errorf("filename = %q", got.Filename)
	}
}

func TestSaveGeneratedRequiresProfileAndFilename(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.SaveGenerated(context.Background(), Artifact{}, []byte("x"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestFetchScopedToOwner(t *testing.T) {
	svc, _ := newTestService()
	saved, err := svc.SaveGenerated(context.Background(), Artifact{ProfileID: "p1", Template: "classic", Filename: "f.pdf"}, []byte("%PDF"))
	if err != nil {
		t.Fatalf("SaveGenerated: %v", err)
	}

	if _, _, err := svc.Fetch(context.Background(), "intruder", saved.ID, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign fetch err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesObjectAndRow(t *testing.T) {
	svc, store := newTestService()
	saved, err := svc.SaveGenerated(context.Background(), Artifact{ProfileID: "p1", Template: "classic", Filename: "f.pdf"}, []byte("%PDF"))
	if err != nil {
		t.Fatalf("SaveGenerated: %v", err)
	}

	if err := svc.Delete(context.Background(), "owner", saved.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := store.objects[saved.StorageKey]; ok {
		t.Error("object still in store after delete")
	}
	if _, _, err := svc.Fetch(context.Background(), "owner", saved.ID, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("fetch after delete err = %v, want ErrNotFound", err)
	}
}

func TestRenameSanitizesFilename(t *testing.T) {
	svc, _ := newTestService()
	saved, err := svc.SaveGenerated(context.Background(), Artifact{ProfileID: "p1", Template: "classic", Filename: "old.pdf"}, []byte("%PDF"))
	if err != nil {
		t.Fatalf("SaveGenerated: %v", err)
	}

	renamed, err := svc.Rename(context.Background(), "owner", saved.ID, "sub/dir\\name.pdf")
	if err != nil {
		t.Fatalf("Rename returned error: %v", err)
	}
	if renamed.Filename != "sub_dir_name.pdf" {
		t.Errorf("filename = %q", renamed.Filename)
	}

	if _, err := svc.Rename(context.Background(), "owner", saved.ID, "../../etc/passwd"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("traversal rename err = %v, want ErrInvalidInput", err)
	}
}

func TestReorderAppliesAllPositions(t *testing.T) {
	svc, _ := newTestService()

	var ids []string
	for i := 0; i < 3; i++ {
		saved, err := svc.SaveGenerated(context.Background(), Artifact{ProfileID: "p1", Template: "classic", Filename: "f.pdf"}, []byte("%PDF"))
		if err != nil {
			t.Fatalf("SaveGenerated: %v", err)
		}
		ids = append(ids, saved.ID)
	}

	if err := svc.Reorder(context.Background(), "owner", []string{ids[1], ids[2], ids[0]}); err != nil {
		t.Fatalf("Reorder returned error: %v", err)
	}

	items, err := svc.List(context.Background(), "owner", "p1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	want := []string{ids[1], ids[2], ids[0]}
	for i, item := range items {
		if item.ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, item.ID, want[i])
		}
	}
}

func TestReorderEmptyRejected(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.Reorder(context.Background(), "owner", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestReorderUnknownFile(t *testing.T) {
	svc, _ := newTestService()
	err := svc.Reorder(context.Background(), "owner", []string{"nope"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveGeneratedRollsBackObjectOnMetadataFailure(t *testing.T) {
	store := newMemStore()
	svc := &Service{Repo: failingRepo{}, Store: store, Guard: ownerGuard}

	_, err := svc.SaveGenerated(context.Background(), Artifact{ProfileID: "p1", Template: "classic", Filename: "f.pdf"}, []byte("%PDF"))
	if err == nil {
		t.Fatal("SaveGenerated succeeded, want error")
	}
	if len(store.objects) != 0 {
		t.Errorf("object left behind after metadata failure")
	}
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, a Artifact) error { return errors.New("insert failed") }
func (failingRepo) GetByID(ctx context.Context, id string) (Artifact, error) {
	return Artifact{}, ErrNotFound
}
func (failingRepo) ListByProfile(ctx context.Context, id string) ([]ListItem, error) {
	return nil, nil
}
func (failingRepo) Rename(ctx context.Context, id, name string) error           { return ErrNotFound }
func (failingRepo) UpdateSortOrder(ctx context.Context, id string, n int) error { return ErrNotFound }
func (failingRepo) Delete(ctx context.Context, id string) error                 { return ErrNotFound }
