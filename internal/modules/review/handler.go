package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nilinki/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Eligibility handles GET /api/v1/bands/:id/review-eligibility. It sits
// behind optional auth: anonymous callers get an all-false answer with 200.
func (h *Handler) Eligibility(c *gin.Context) {
	authorID := c.GetString("user_id")

	elig, err := h.svc.CheckEligibility(c.Request.Context(), authorID, c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to check review eligibility")
		return
	}

	response.Data(c, http.StatusOK, elig)
}

// Create handles POST /api/v1/reviews.
func (h *Handler) Create(c *gin.Context) {
	authorID := c.GetString("user_id")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), authorID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		case errors.Is(err, ErrContentTooShort):
			response.Error(c, http.StatusBadRequest, "Please write at least 10 characters")
		case errors.Is(err, ErrNotEligible):
			response.Error(c, http.StatusForbidden, "Reviews require a completed booking with this band")
		case errors.Is(err, ErrAlreadyExists):
			response.Error(c, http.StatusConflict, "You have already reviewed this band")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create review")
		}
		return
	}

	response.Data(c, http.StatusCreated, gin.H{"review": rv})
}

// ListByBand handles GET /api/v1/bands/:id/reviews.
func (h *Handler) ListByBand(c *gin.Context) {
	reviews, err := h.svc.ListByBand(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load reviews")
		return
	}

	response.Data(c, http.StatusOK, gin.H{"reviews": reviews})
}
