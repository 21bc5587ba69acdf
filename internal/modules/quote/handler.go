package quote

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nilinki/internal/middleware"
	jwtsvc "nilinki/internal/pkg/jwt"
	"nilinki/internal/pkg/response"
)

type Handler struct {
	svc *Service
	jwt *jwtsvc.Service
}

func NewHandler(svc *Service, jwt *jwtsvc.Service) *Handler {
	return &Handler{svc: svc, jwt: jwt}
}

// Submit handles POST /api/v1/quote-requests.
//
// The order of checks is deliberate: the payload is parsed and validated
// before the bearer token is looked at, so a client with a broken form and
// an expired session learns about the form first. Auth still runs before
// anything touches the database.
func (h *Handler) Submit(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	clean, fieldErrs := Validate(req)
	if len(fieldErrs) > 0 {
		response.ValidationFailed(c, http.StatusBadRequest, fieldErrs)
		return
	}

	claims, err := middleware.ResolveBearer(c, h.jwt)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), claims.UserID, clean)
	if err != nil {
		switch {
		case errors.Is(err, ErrBandNotFound):
			response.Error(c, http.StatusNotFound, "Band not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to submit quote request")
		}
		return
	}

	response.OK(c, http.StatusOK, fmt.Sprintf("Quote request sent to %s", result.BandName))
}
