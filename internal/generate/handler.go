package generate

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/profiles"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/templates"
	"resume-builder/internal/typeset"
)

// Handler wires the generation endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the generation route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-resume", h.generate)
}

type generateRequest struct {
	ProfileID string `json:"profileId"`
	JobAdID   string `json:"jobAdId"`
	Template  string `json:"template"`
	Format    string `json:"format"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("profileId", req.ProfileID)

	result, err := h.Svc.Generate(c.Request.Context(), userID, Request{
		ProfileID: req.ProfileID,
		JobAdID:   req.JobAdID,
		Template:  req.Template,
		Format:    req.Format,
	})
	if err != nil {
		h.generateError(c, err)
		return
	}

	c.Header("X-File-Id", result.Artifact.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Artifact.Filename))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

func (h *Handler) generateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Unsupported format", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, templates.ErrTemplateNotFound):
		respond.Error(c, http.StatusNotFound, "template_not_found", "Template not found", nil)
	case errors.Is(err, profiles.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Profile not found", nil)
	case errors.Is(err, typeset.ErrCompilationFailed):
		var compErr *typeset.CompilationError
		var details any
		if errors.As(err, &compErr) {
			details = gin.H{"output": compErr.Output}
		}
		respond.Error(c, http.StatusInternalServerError, "compilation_failed", "failed to compile resume", details)
	default:
		respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to generate resume", nil)
	}
}
