package jobads

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/llm"
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

// RegisterRoutes attaches job-ad routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/job-ads/parse", h.parse)
	rg.POST("/job-ads/advice", h.advice)
	rg.POST("/job-ads", h.create)
	rg.GET("/job-ads", h.list)
	rg.GET("/job-ads/:jobAdId", h.get)
	rg.DELETE("/job-ads/:jobAdId", h.delete)
}

type parseRequest struct {
	URL     string `json:"url"`
	RawText string `json:"rawText"`
}

func (h *Handler) parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Parse(c.Request.Context(), req.URL, req.RawText)
	if err != nil {
		h.parseError(c, err)
		return
	}

	// The cached model output is forwarded byte for byte.
	c.Data(http.StatusOK, "application/json", result)
}

func (h *Handler) parseError(c *gin.Context, err error) {
	var modelErr *ModelOutputError
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, llm.ErrRateLimited):
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Model rate limit reached, try again later", nil)
	case errors.As(err, &modelErr):
		respond.Error(c, http.StatusBadGateway, "invalid_model_output", "Model returned unparseable output", gin.H{"raw": modelErr.Raw})
	case errors.Is(err, ErrUpstream):
		respond.Error(c, http.StatusInternalServerError, "upstream_call_failed", "Failed to call the model", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected error", nil)
	}
}

type adviceRequest struct {
	Profile json.RawMessage `json:"profile"`
	JobAd   json.RawMessage `json:"jobAd"`
}

func (h *Handler) advice(c *gin.Context) {
	var req adviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	// Both fields are optional; an empty request still gets generic advice.
	advice := h.Svc.Advice(c.Request.Context(), req.Profile, req.JobAd)
	respond.OK(c, gin.H{"advice": advice})
}

type createRequest struct {
	ParsedJob
	RawText string `json:"rawText"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ad, err := h.Svc.Save(c.Request.Context(), userID, req.ParsedJob, req.RawText)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to save job ad", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toJobAdResponse(ad))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to list job ads", nil)
		return
	}

	resp := make([]JobAdResponse, 0, len(items))
	for _, ad := range items {
		resp = append(resp, toJobAdResponse(ad))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	jobAdID := c.Param("jobAdId")
	c.Set("jobAdId", jobAdID)

	ad, err := h.Svc.Get(c.Request.Context(), userID, jobAdID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job ad not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to fetch job ad", nil)
		}
		return
	}

	respond.OK(c, toJobAdResponse(ad))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	jobAdID := c.Param("jobAdId")
	c.Set("jobAdId", jobAdID)

	if err := h.Svc.Delete(c.Request.Context(), userID, jobAdID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job ad not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to delete job ad", nil)
		}
		return
	}

	respond.OK(c, gin.H{"message": "Job ad deleted successfully"})
}
