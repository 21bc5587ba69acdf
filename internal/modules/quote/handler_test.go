package quote

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"nilinki/internal/domain"
	jwtsvc "nilinki/internal/pkg/jwt"
	"nilinki/internal/pkg/task"
)

func newQuoteRouter(t *testing.T, svc *Service) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	j := jwtsvc.New("test-secret-123", time.Hour)
	token, err := j.GenerateToken("client-1", "client")
	assert.NoError(t, err)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.POST("/api/v1/quote-requests", NewHandler(svc, j).Submit)
	return r, token
}

func happyService() (*Service, *task.Runner) {
	mockBands := new(MockBandLookup)
	mockOwners := new(MockOwnerLookup)
	mockStore := new(MockInquiryStore)
	mockNotifier := new(MockNotifier)
	tasks := task.NewRunner(time.Second)

	mockBands.On("GetByID", mock.Anything, "band-1").Return(testBand(), nil)
	mockOwners.On("GetByID", mock.Anything, "owner-1").
		Return(&domain.User{ID: "owner-1", Email: "booking@velvetthunder.example"}, nil)
	mockStore.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifier.On("NotifyBandInquiry", mock.Anything, mock.Anything).Return(nil)
	mockNotifier.On("NotifyClientConfirmation", mock.Anything, mock.Anything).Return(nil)

	return NewService(mockBands, mockOwners, mockStore, mockNotifier, tasks), tasks
}

func postQuote(r *gin.Engine, body any, token string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/quote-requests", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Submit_Success(t *testing.T) {
	svc, tasks := happyService()
	r, token := newQuoteRouter(t, svc)

	w := postQuote(r, validRequest(), token)
	tasks.Wait()

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Quote request sent to Velvet Thunder", body["message"])
}

func TestHandler_Submit_ValidationBeforeAuth(t *testing.T) {
	svc, _ := happyService()
	r, _ := newQuoteRouter(t, svc)

	// broken payload, no token: the field errors win over the 401
	w := postQuote(r, QuoteRequest{BandID: "band-1"}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestHandler_Submit_MissingToken(t *testing.T) {
	svc, _ := happyService()
	r, _ := newQuoteRouter(t, svc)

	w := postQuote(r, validRequest(), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestHandler_Submit_InvalidToken(t *testing.T) {
	svc, _ := happyService()
	r, _ := newQuoteRouter(t, svc)

	raw, _ := json.Marshal(validRequest())
	req := httptest.NewRequest("POST", "/api/v1/quote-requests", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid authentication")
}

func TestHandler_Submit_BandNotFound(t *testing.T) {
	mockBands := new(MockBandLookup)
	mockBands.On("GetByID", mock.Anything, "band-1").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(mockBands, new(MockOwnerLookup), new(MockInquiryStore), new(MockNotifier), task.NewRunner(time.Second))
	r, token := newQuoteRouter(t, svc)

	w := postQuote(r, validRequest(), token)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Band not found")
}

func TestHandler_Submit_MethodNotAllowed(t *testing.T) {
	svc, _ := happyService()
	r, _ := newQuoteRouter(t, svc)

	req := httptest.NewRequest("GET", "/api/v1/quote-requests", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandler_Submit_InvalidJSON(t *testing.T) {
	svc, _ := happyService()
	r, token := newQuoteRouter(t, svc)

	req := httptest.NewRequest("POST", "/api/v1/quote-requests", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON body")
}
