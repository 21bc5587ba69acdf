package inquiry

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

// List handles GET /api/v1/dashboard/inquiries for band owners. An optional
// ?status= query narrows the list.
func (h *Handler) List(c *gin.Context) {
	ownerID := c.GetString("user_id")

	inquiries, err := h.svc.ListForOwner(c.Request.Context(), ownerID, c.Query("status"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNoBand):
			response.Error(c, http.StatusNotFound, "No band found for this account")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid status filter")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to load inquiries")
		}
		return
	}

	response.Data(c, http.StatusOK, gin.H{"inquiries": inquiries})
}

// Stats handles GET /api/v1/dashboard/inquiries/stats.
func (h *Handler) Stats(c *gin.Context) {
	ownerID := c.GetString("user_id")

	stats, err := h.svc.StatsForOwner(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, ErrNoBand) {
			response.Error(c, http.StatusNotFound, "No band found for this account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	response.Data(c, http.StatusOK, stats)
}

// UpdateStatus handles PATCH /api/v1/dashboard/inquiries/:id/status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	ownerID := c.GetString("user_id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Status is required")
		return
	}

	inq, err := h.svc.UpdateStatus(c.Request.Context(), ownerID, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, ErrNoBand), errors.Is(err, ErrInquiryNotFound):
			response.Error(c, http.StatusNotFound, "Inquiry not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "You can only manage your own inquiries")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update inquiry")
		}
		return
	}

	response.Data(c, http.StatusOK, gin.H{"inquiry": inq})
}

// Mine handles GET /api/v1/inquiries/mine for clients.
func (h *Handler) Mine(c *gin.Context) {
	clientID := c.GetString("user_id")

	inquiries, err := h.svc.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load inquiries")
		return
	}

	response.Data(c, http.StatusOK, gin.H{"inquiries": inquiries})
}
