package catalog

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

// ListBands handles GET /api/v1/bands with optional ?genre= and ?location=.
func (h *Handler) ListBands(c *gin.Context) {
	bands, err := h.svc.ListBands(c.Request.Context(), c.Query("genre"), c.Query("location"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load bands")
		return
	}

	response.Data(c, http.StatusOK, gin.H{"bands": bands})
}

// GetBand handles GET /api/v1/bands/:id.
func (h *Handler) GetBand(c *gin.Context) {
	profile, err := h.svc.GetBandProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrBandNotFound) {
			response.Error(c, http.StatusNotFound, "Band not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load band")
		return
	}

	response.Data(c, http.StatusOK, gin.H{"band": profile})
}
