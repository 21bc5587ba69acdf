package favorite

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nilinki/internal/pkg/response"
	"nilinki/internal/repository"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Add handles POST /api/v1/favorites/:bandId.
func (h *Handler) Add(c *gin.Context) {
	userID := c.GetString("user_id")

	fav, err := h.svc.Add(c.Request.Context(), userID, c.Param("bandId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBandNotFound):
			response.Error(c, http.StatusNotFound, "Band not found")
		case errors.Is(err, repository.ErrAlreadyFavorite):
			response.Error(c, http.StatusConflict, "Band already in favorites")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to add favorite")
		}
		return
	}

	response.Data(c, http.StatusCreated, gin.H{"favorite": fav})
}

// Remove handles DELETE /api/v1/favorites/:bandId.
func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.svc.Remove(c.Request.Context(), userID, c.Param("bandId")); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			response.Error(c, http.StatusNotFound, "Favorite not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	response.OK(c, http.StatusOK, "Favorite removed")
}

// List handles GET /api/v1/favorites.
func (h *Handler) List(c *gin.Context) {
	favs, err := h.svc.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load favorites")
		return
	}

	response.Data(c, http.StatusOK, gin.H{"favorites": favs})
}
