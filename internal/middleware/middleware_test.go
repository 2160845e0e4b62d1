package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newTestRouter(logs *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	r.Use(StructuredLoggingMiddleware(logger))
	r.GET("/private", AuthMiddleware(testSecret), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		GetLoggerFromCtx(c.Request.Context()).Info("handled")
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid, _, err := utils.TokenIssuer{Secret: testSecret, Expiry: time.Hour}.Issue("user-42")
	require.NoError(t, err)
	expired, _, err := utils.TokenIssuer{
		Secret: testSecret,
		Expiry: time.Minute,
		Now:    func() time.Time { return time.Now().Add(-time.Hour) },
	}.Issue("user-42")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "user-42"},
		{"missing header", "", http.StatusUnauthorized, "No token provided"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Bearer {token}"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized, "Invalid or expired token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			r := newTestRouter(&logs)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestStructuredLoggingMiddleware_EnrichesLogger(t *testing.T) {
	var logs bytes.Buffer
	r := newTestRouter(&logs)
	token, _, err := utils.TokenIssuer{Secret: testSecret, Expiry: time.Hour}.Issue("user-7")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	out := logs.String()
	assert.Contains(t, out, `"msg":"handled"`)
	assert.Contains(t, out, `"user_id":"user-7"`)
	assert.Contains(t, out, `"msg":"Request completed"`)
	assert.Contains(t, out, `"status":200`)
}

func TestGetLoggerFromCtx_Default(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

type recordedRequest struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	calls []recordedRequest
}

func (f *fakeRecorder) RecordRequest(method, route string, status int, _ time.Duration) {
	f.calls = append(f.calls, recordedRequest{method, route, status})
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &fakeRecorder{}
	r := gin.New()
	r.Use(Metrics(rec))
	r.GET("/accounts/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/accounts/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Len(t, rec.calls, 2)
	assert.Equal(t, recordedRequest{"GET", "/accounts/:id", http.StatusNoContent}, rec.calls[0])
	assert.Equal(t, recordedRequest{"GET", "unmatched", http.StatusNotFound}, rec.calls[1])
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewMemoryLimiter("lots")
	assert.Error(t, err)
}
