package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nilinki/internal/domain"
	"nilinki/internal/pkg/response"
)

// Handler exposes the internal email endpoints. Both sit behind the
// internal-secret middleware and are called service-to-service, never by
// browsers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// SendInquiry handles POST /internal/notifications/inquiry.
func (h *Handler) SendInquiry(c *gin.Context) {
	var payload domain.InquiryNotification
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if payload.BandEmail == "" || payload.ClientEmail == "" {
		response.Error(c, http.StatusBadRequest, "Missing recipient")
		return
	}

	if err := h.svc.SendInquiryNotification(c.Request.Context(), payload); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to send notification")
		return
	}
	response.OK(c, http.StatusOK, "Notification sent")
}

// SendConfirmation handles POST /internal/notifications/confirmation.
func (h *Handler) SendConfirmation(c *gin.Context) {
	var payload domain.ClientConfirmation
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if payload.ClientEmail == "" {
		response.Error(c, http.StatusBadRequest, "Missing recipient")
		return
	}

	if err := h.svc.SendClientConfirmation(c.Request.Context(), payload); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to send notification")
		return
	}
	response.OK(c, http.StatusOK, "Notification sent")
}
