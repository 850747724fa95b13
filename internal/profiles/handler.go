package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles", h.create)
	rg.GET("/profiles", h.list)
	rg.GET("/profiles/:profileId", h.get)
	rg.PATCH("/profiles/:profileId", h.update)
	rg.DELETE("/profiles/:profileId", h.delete)
}

type profileRequest struct {
	Name            string           `json:"name"`
	JobTitle        string           `json:"jobTitle"`
	ContactInfo     ContactInfo      `json:"contactInfo"`
	CareerObjective string           `json:"careerObjective"`
	Skills          []string         `json:"skills"`
	JobHistory      []JobEntry       `json:"jobHistory"`
	Education       []EducationEntry `json:"education"`
	Internships     []JobEntry       `json:"internships"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), userID, Profile{
		Name:            req.Name,
		JobTitle:        req.JobTitle,
		ContactInfo:     req.ContactInfo,
		CareerObjective: req.CareerObjective,
		Skills:          req.Skills,
		JobHistory:      req.JobHistory,
		Education:       req.Education,
		Internships:     req.Internships,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to create profile", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(p))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to list profiles", nil)
		return
	}

	resp := make([]ProfileResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, toResponse(p))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profileID := c.Param("profileId")
	c.Set("profileId", profileID)

	p, err := h.Svc.Get(c.Request.Context(), userID, profileID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Profile not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to fetch profile", nil)
		}
		return
	}

	respond.OK(c, toResponse(p))
}

type updateProfileRequest struct {
	Name            *string           `json:"name"`
	JobTitle        *string           `json:"jobTitle"`
	ContactInfo     *ContactInfo      `json:"contactInfo"`
	CareerObjective *string           `json:"careerObjective"`
	Skills          *[]string         `json:"skills"`
	JobHistory      *[]JobEntry       `json:"jobHistory"`
	Education       *[]EducationEntry `json:"education"`
	Internships     *[]JobEntry       `json:"internships"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profileID := c.Param("profileId")
	c.Set("profileId", profileID)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), userID, profileID, Patch{
		Name:            req.Name,
		JobTitle:        req.JobTitle,
		ContactInfo:     req.ContactInfo,
		CareerObjective: req.CareerObjective,
		Skills:          req.Skills,
		JobHistory:      req.JobHistory,
		Education:       req.Education,
		Internships:     req.Internships,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Profile not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to update profile", nil)
		}
		return
	}

	respond.OK(c, toResponse(p))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profileID := c.Param("profileId")
	c.Set("profileId", profileID)

	if err := h.Svc.Delete(c.Request.Context(), userID, profileID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Profile not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to delete profile", nil)
		}
		return
	}

	respond.OK(c, gin.H{"message": "Profile deleted successfully"})
}
