package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"resume-builder/internal/shared/config"
)

func fakeTexEngine(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine script requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-engine")
	script := "#!/bin/sh\nout=\"${4%.tex}.pdf\"\nprintf '%%PDF-1.4 fake resume' > \"$out\"\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake engine: %v", err)
	}
	return path
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{
		Port:            "0",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		TexBinary:       fakeTexEngine(t),
		ScratchDir:      t.TempDir(),
		Env:             "local",
	}
	app, err := Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	t.Cleanup(app.Close)
	return app
}

func request(t *testing.T, app *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Guest-Id", "guest-abc")
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestHealthUnauthenticated(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestTemplatesCatalog(t *testing.T) {
	app := newTestApp(t)

	w := request(t, app, http.MethodGet, "/templates", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("templates = %d, want 3", len(items))
	}
}

func TestGenerateDownloadDeleteFlow(t *testing.T) {
	app := newTestApp(t)

	create := request(t, app, http.MethodPost, "/profiles", `{"name":"Jane Doe","jobTitle":"Engineer","contactInfo":{"email":"jane@example.com"}}`)
	if create.Code != http.StatusCreated {
		t.Fatalf("create profile status = %d, body %s", create.Code, create.Body.String())
	}
	var profile struct {
		ProfileID string `json:"profileId"`
	}
	if err := json.Unmarshal(create.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}

	gen := request(t, app, http.MethodPost, "/generate-resume", `{"profileId":"`+profile.ProfileID+`","template":"classic"}`)
	if gen.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body %s", gen.Code, gen.Body.String())
	}
	if got := gen.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q", got)
	}
	fileID := gen.Header().Get("X-File-Id")
	if fileID == "" {
		t.Fatal("missing X-File-Id header")
	}
	if !strings.HasPrefix(gen.Body.String(), "%PDF-") {
		t.Errorf("body does not look like a PDF")
	}
	if !strings.Contains(gen.Header().Get("Content-Disposition"), "Jane_Doe_resume.pdf") {
		t.Errorf("content disposition = %q", gen.Header().Get("Content-Disposition"))
	}

	list := request(t, app, http.MethodGet, "/resumes?profileId="+profile.ProfileID, "")
	if list.Code != http.StatusOK {
		t.Fatalf("list status = %d, body %s", list.Code, list.Body.String())
	}
	var files []struct {
		FileID      string  `json:"fileId"`
		ProfileName *string `json:"profileName"`
	}
	if err := json.Unmarshal(list.Body.Bytes(), &files); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(files) != 1 || files[0].FileID != fileID {
		t.Fatalf("files = %+v", files)
	}
	if files[0].ProfileName == nil || *files[0].ProfileName != "Jane Doe" {
		t.Errorf("profileName = %v", files[0].ProfileName)
	}

	download := request(t, app, http.MethodGet, "/resumes/"+fileID, "")
	if download.Code != http.StatusOK {
		t.Fatalf("download status = %d", download.Code)
	}
	if download.Body.Len() == 0 {
		t.Error("empty download body")
	}

	del := request(t, app, http.MethodDelete, "/resumes?fileId="+fileID, "")
	if del.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body %s", del.Code, del.Body.String())
	}

	gone := request(t, app, http.MethodGet, "/resumes/"+fileID, "")
	if gone.Code != http.StatusNotFound {
		t.Fatalf("download after delete status = %d, want 404", gone.Code)
	}
}

func TestGenerateValidationThroughStack(t *testing.T) {
	app := newTestApp(t)

	w := request(t, app, http.MethodPost, "/generate-resume", `{"profileId":"ghost","template":"classic"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown profile status = %d, want 404", w.Code)
	}
}

func TestAdviceFallsBackWithoutModel(t *testing.T) {
	app := newTestApp(t)

	w := request(t, app, http.MethodPost, "/job-ads/advice", `{"profile":{"name":"Jane"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Unable to generate advice") {
		t.Errorf("body = %s", w.Body.String())
	}
}
