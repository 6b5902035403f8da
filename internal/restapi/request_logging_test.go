package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afyadash.or.ke/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	handler := NewRequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/api/dashboard/rows.json?key=TEST", nil)
	req.Header.Set("User-Agent", "dashboard-test")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	output := buf.String()
	assert.Contains(t, output, `"msg":"http_request"`)
	assert.Contains(t, output, `"method":"GET"`)
	assert.Contains(t, output, `"path":"/api/dashboard/rows.json"`)
	assert.NotContains(t, output, "key=TEST", "query parameters must not be logged")
	assert.Contains(t, output, `"status":418`)
	assert.Contains(t, output, `"user_agent":"dashboard-test"`)
	assert.Contains(t, output, `"request_id"`)
}

func TestRequestLoggingMiddlewareSetsRequestID(t *testing.T) {
	logger := logging.NewStructuredLogger(&bytes.Buffer{}, slog.LevelInfo)

	handler := NewRequestLoggingMiddleware(logger)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/dashboard/rows.json", nil))

	requestID := rec.Header().Get("X-Request-ID")
	require.NotEmpty(t, requestID)
	_, err := uuid.Parse(requestID)
	assert.NoError(t, err, "request ID should be a valid UUID")
}

func TestRequestLoggingMiddlewareAddsLoggerToContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	handler := NewRequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("inside handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Contains(t, buf.String(), "inside handler")
}
