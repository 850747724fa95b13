package artifacts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/convert"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches artifact routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.DELETE("/resumes", h.delete)
	rg.POST("/resumes/reorder", h.reorder)
	rg.GET("/resumes/:fileId", h.download)
	rg.PATCH("/resumes/:fileId", h.rename)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profileID := c.Query("profileId")
	if profileID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "profileId query parameter is required", nil)
		return
	}
	c.Set("profileId", profileID)

	items, err := h.Svc.List(c.Request.Context(), userID, profileID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Profile not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to list resumes", nil)
		}
		return
	}

	resp := make([]FileResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toFileResponse(item))
	}
	respond.OK(c, resp)
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	fileID := c.Query("fileId")
	if fileID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "fileId query parameter is required", nil)
		return
	}
	c.Set("fileId", fileID)

	if err := h.Svc.Delete(c.Request.Context(), userID, fileID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "File not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to delete resume", nil)
		}
		return
	}

	respond.OK(c, gin.H{"message": "File deleted successfully"})
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	fileID := c.Param("fileId")
	c.Set("fileId", fileID)

	format := c.Query("format")
	if format != "" && format != convert.FormatPDF && format != convert.FormatDocx {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Unsupported format", nil)
		return
	}

	a, content, err := h.Svc.Fetch(c.Request.Context(), userID, fileID, format)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "File not found", nil)
		case errors.Is(err, convert.ErrConversionFailed):
			respond.Error(c, http.StatusInternalServerError, "conversion_failed", "failed to convert resume", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to fetch resume", nil)
		}
		return
	}

	if format == "" {
		format = a.Format
	}
	disposition := "attachment"
	if view := c.Query("view"); view == "true" || view == "1" {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, a.Filename))
	c.Data(http.StatusOK, convert.ContentType(format), content)
}

type renameRequest struct {
	Filename string `json:"filename"`
}

func (h *Handler) rename(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	fileID := c.Param("fileId")
	c.Set("fileId", fileID)

	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Filename == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "filename is required", nil)
		return
	}

	a, err := h.Svc.Rename(c.Request.Context(), userID, fileID, req.Filename)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "File not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid filename", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to rename resume", nil)
		}
		return
	}

	respond.OK(c, gin.H{"fileId": a.ID, "filename": a.Filename})
}

type reorderRequest struct {
	OrderedIDs []string `json:"orderedIds"`
}

func (h *Handler) reorder(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.Reorder(c.Request.Context(), userID, req.OrderedIDs); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "File not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to reorder resumes", nil)
		}
		return
	}

	respond.OK(c, gin.H{"message": "Order updated"})
}
