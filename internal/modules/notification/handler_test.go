package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"nilinki/internal/domain"
	"nilinki/internal/middleware"
)

const testSecret = "internal-test-secret"

func newInternalRouter(mail *captureMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(NewService(mail))

	r := gin.New()
	internal := r.Group("/internal")
	internal.Use(middleware.InternalSecret(testSecret))
	internal.POST("/notifications/inquiry", h.SendInquiry)
	internal.POST("/notifications/confirmation", h.SendConfirmation)
	return r
}

func postInternal(r *gin.Engine, path string, payload any, secret string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("x-internal-secret", secret)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_SendInquiry_Success(t *testing.T) {
	mail := &captureMailer{}
	r := newInternalRouter(mail)

	w := postInternal(r, "/internal/notifications/inquiry", sampleNotification(), testSecret)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Equal(t, "booking@velvetthunder.example", mail.to)
}

func TestHandler_SendInquiry_RejectsMissingSecret(t *testing.T) {
	mail := &captureMailer{}
	r := newInternalRouter(mail)

	w := postInternal(r, "/internal/notifications/inquiry", sampleNotification(), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, mail.to, "the mailer must not be reached")
}

func TestHandler_SendInquiry_RejectsWrongSecret(t *testing.T) {
	mail := &captureMailer{}
	r := newInternalRouter(mail)

	w := postInternal(r, "/internal/notifications/inquiry", sampleNotification(), "guessed-secret")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_SendInquiry_RejectsMissingRecipient(t *testing.T) {
	mail := &captureMailer{}
	r := newInternalRouter(mail)

	n := sampleNotification()
	n.BandEmail = ""
	w := postInternal(r, "/internal/notifications/inquiry", n, testSecret)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SendConfirmation_Success(t *testing.T) {
	mail := &captureMailer{}
	r := newInternalRouter(mail)

	w := postInternal(r, "/internal/notifications/confirmation", domain.ClientConfirmation{
		ClientName:  "Maya Client",
		ClientEmail: "maya@example.com",
		BandName:    "Velvet Thunder",
	}, testSecret)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maya@example.com", mail.to)
}
