package generate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/templates"
	"resume-builder/internal/typeset"
)

func newTestRouter(t *testing.T) (*gin.Engine, *fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := newFixture(t)
	r := gin.New()
	rg := r.Group("/", middleware.Auth())
	NewHandler(f.svc).RegisterRoutes(rg)
	return r, f
}

func post(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate-resume", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpointReturnsPDFAndFileID(t *testing.T) {
	r, f := newTestRouter(t)
	f.seedProfile(t, "Jane Doe")
	f.seedJobAd(t, "SRE")

	w := post(t, r, `{"profileId":"p1","jobAdId":"j1","template":"classic"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q", got)
	}
	if w.Header().Get("X-File-Id") == "" {
		t.Error("missing X-File-Id header")
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "Jane_Doe_SRE.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("empty body")
	}
}

func TestGenerateEndpointMissingTemplate(t *testing.T) {
	r, f := newTestRouter(t)
	f.seedProfile(t, "Jane Doe")

	w := post(t, r, `{"profileId":"p1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateEndpointUnsupportedFormat(t *testing.T) {
	r, f := newTestRouter(t)
	f.seedProfile(t, "Jane Doe")

	w := post(t, r, `{"profileId":"p1","template":"classic","format":"docx"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unsupported format") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGenerateEndpointUnknownJobAdStillSucceeds(t *testing.T) {
	r, f := newTestRouter(t)
	f.seedProfile(t, "Jane Doe")

	w := post(t, r, `{"profileId":"p1","jobAdId":"ghost","template":"classic"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "Jane_Doe_resume.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
}

func TestGenerateEndpointUnknownProfile(t *testing.T) {
	r, _ := newTestRouter(t)

	w := post(t, r, `{"profileId":"ghost","template":"classic"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGenerateEndpointUnknownTemplate(t *testing.T) {
	r, f := newTestRouter(t)
	f.seedProfile(t, "Jane Doe")
	f.svc.Renderer = stubRenderer{err: templates.ErrTemplateNotFound}

	w := post(t, r, `{"profileId":"p1","template":"brutalist"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "template_not_found") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGenerateEndpointCompileFailure(t *testing.T) {
	r, f := newTestRouter(t)
	f.seedProfile(t, "Jane Doe")
	f.compiler.err = &typeset.CompilationError{Output: "! Emergency stop."}

	w := post(t, r, `{"profileId":"p1","template":"classic"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "compilation_failed") {
		t.Errorf("body = %s", w.Body.String())
	}
}
