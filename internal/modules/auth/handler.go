package auth

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

// Register handles POST /api/v1/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := response.BindingErrors(err); len(details) > 0 {
			response.ValidationFailed(c, http.StatusBadRequest, details)
			return
		}
		response.Error(c, http.StatusBadRequest, "Invalid registration payload")
		return
	}

	res, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "Email already registered")
		case errors.Is(err, ErrBandDetailsRequired):
			response.Error(c, http.StatusBadRequest, "Band name, genre and location are required")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to register")
		}
		return
	}

	response.Data(c, http.StatusCreated, res)
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	response.Data(c, http.StatusOK, res)
}

// Me handles GET /api/v1/auth/me.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.svc.Me(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	response.Data(c, http.StatusOK, gin.H{"user": user})
}
