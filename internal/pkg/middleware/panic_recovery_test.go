package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBufferedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
	}{
		{
			name:         "string panic",
			panicValue:   "test panic message",
			expectInLogs: []string{"test panic message", "stack_trace", "Panic recovered during request processing"},
		},
		{
			name:         "error panic",
			panicValue:   errors.New("test error panic"),
			expectInLogs: []string{"test error panic", "*errors.errorString"},
		},
		{
			name:         "integer panic",
			panicValue:   42,
			expectInLogs: []string{"42", "\"panic_type\":\"int\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuffer bytes.Buffer
			e := echo.New()
			e.Use(PanicRecoveryWithZapMiddleware(newBufferedLogger(&logBuffer)))
			e.GET("/boom", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			req.Header.Set(headerRequestID, "req-1")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "req-1", body["request_id"])
			assert.Equal(t, false, body["success"])

			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logBuffer.String(), expected)
			}
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanic(t *testing.T) {
	var logBuffer bytes.Buffer
	e := echo.New()
	e.Use(PanicRecoveryWithZapMiddleware(newBufferedLogger(&logBuffer)))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "fine") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuffer.String())
}

func TestPanicRecoveryMiddleware_StackTruncated(t *testing.T) {
	var logBuffer bytes.Buffer
	config := DefaultPanicRecoveryConfig()
	config.Logger = newBufferedLogger(&logBuffer)
	config.StackSize = 16

	e := echo.New()
	e.Use(PanicRecoveryMiddleware(config))
	e.GET("/boom", func(c echo.Context) error { panic("x") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuffer.Bytes(), &entry))
	assert.LessOrEqual(t, len(entry["stack_trace"].(string)), 16)
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(PanicRecoveryConfig{})
	})
}
