package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6laercio/saude-integrada-api/internal/config"
)

func newEngine(buf *bytes.Buffer, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zerolog.New(buf)

	r := gin.New()
	r.Use(RequestID(), Logger(log), Recovery(log), CORS(cfg))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("banco indisponível"))
		c.Status(http.StatusServiceUnavailable)
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var out map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &out))
	return out
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(&buf, &config.Config{CORSOrigins: []string{"*"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	rid := w.Header().Get(HeaderRequestID)
	assert.Len(t, rid, 36)
	assert.Equal(t, rid, lastLine(t, &buf)["request_id"])

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestLogger_IncludesAttachedError(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(&buf, &config.Config{CORSOrigins: []string{"*"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	line := lastLine(t, &buf)
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "banco indisponível", line["error"])
	assert.EqualValues(t, http.StatusServiceUnavailable, line["status"])
}

func TestRecovery_Returns500(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(&buf, &config.Config{CORSOrigins: []string{"*"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(&buf, &config.Config{CORSOrigins: []string{"https://clinica.example"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "https://clinica.example")
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://clinica.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "https://intruso.example")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
