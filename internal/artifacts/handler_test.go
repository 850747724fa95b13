package artifacts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService()
	r := gin.New()
	rg := r.Group("/", middleware.Auth())
	NewHandler(svc).RegisterRoutes(rg)
	return r, svc
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User-Id", "owner")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedArtifact(t *testing.T, svc *Service) Artifact {
	t.Helper()
	saved, err := svc.SaveGenerated(context.Background(), Artifact{
		ProfileID: "p1",
		Template:  "classic",
		Filename:  "Jane_Doe_SRE.pdf",
	}, []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("seed artifact: %v", err)
	}
	return saved
}

func TestListRequiresProfileID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/resumes", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListReturnsProfileArtifacts(t *testing.T) {
	r, svc := newTestRouter(t)
	seedArtifact(t, svc)

	w := do(t, r, http.MethodGet, "/resumes?profileId=p1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var items []FileResponse
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Metadata.Template != "classic" {
		t.Errorf("template = %q", items[0].Metadata.Template)
	}
}

func TestDownloadDefaultsToAttachment(t *testing.T) {
	r, svc := newTestRouter(t)
	saved := seedArtifact(t, svc)

	w := do(t, r, http.MethodGet, "/resumes/"+saved.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q", got)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment") || !strings.Contains(cd, saved.Filename) {
		t.Errorf("content disposition = %q", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("empty body")
	}
}

func TestDownloadInlineView(t *testing.T) {
	r, svc := newTestRouter(t)
	saved := seedArtifact(t, svc)

	w := do(t, r, http.MethodGet, "/resumes/"+saved.ID+"?view=true", "")
	if !strings.HasPrefix(w.Header().Get("Content-Disposition"), "inline") {
		t.Errorf("content disposition = %q", w.Header().Get("Content-Disposition"))
	}
}

func TestDownloadRejectsUnknownFormat(t *testing.T) {
	r, svc := newTestRouter(t)
	saved := seedArtifact(t, svc)

	w := do(t, r, http.MethodGet, "/resumes/"+saved.ID+"?format=odt", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDownloadMissingFile(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/resumes/does-not-exist", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteRequiresFileID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodDelete, "/resumes", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteByQueryParam(t *testing.T) {
	r, svc := newTestRouter(t)
	saved := seedArtifact(t, svc)

	w := do(t, r, http.MethodDelete, "/resumes?fileId="+saved.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	again := do(t, r, http.MethodDelete, "/resumes?fileId="+saved.ID, "")
	if again.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", again.Code)
	}
}

func TestRenameEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)
	saved := seedArtifact(t, svc)

	w := do(t, r, http.MethodPatch, "/resumes/"+saved.ID, `{"filename":"NewName.pdf"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "NewName.pdf") {
		t.Errorf("body = %s", w.Body.String())
	}

	missing := do(t, r, http.MethodPatch, "/resumes/"+saved.ID, `{}`)
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("empty filename status = %d, want 400", missing.Code)
	}

	notFound := do(t, r, http.MethodPatch, "/resumes/ghost", `{"filename":"x.pdf"}`)
	if notFound.Code != http.StatusNotFound {
		t.Fatalf("unknown file status = %d, want 404", notFound.Code)
	}
}

func TestReorderEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)
	first := seedArtifact(t, svc)
	second := seedArtifact(t, svc)

	body := `{"orderedIds":["` + second.ID + `","` + first.ID + `"]}`
	w := do(t, r, http.MethodPost, "/resumes/reorder", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	list := do(t, r, http.MethodGet, "/resumes?profileId=p1", "")
	var items []FileResponse
	if err := json.Unmarshal(list.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if items[0].ID != second.ID {
		t.Errorf("first item = %s, want %s", items[0].ID, second.ID)
	}
}
