package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func loggerRouter(logger *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(logger))
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/bad", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
	})
	r.GET("/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
	return r
}

func TestLogger_LevelPerStatus(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		expectedCode  int
		expectedLevel zapcore.Level
	}{
		{"2xx logs at info", "/ok", http.StatusOK, zapcore.InfoLevel},
		{"4xx logs at warn", "/bad", http.StatusBadRequest, zapcore.WarnLevel},
		{"5xx logs at error", "/boom", http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			router := loggerRouter(zap.New(core).Sugar())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, "HTTP request", entries[0].Message)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)
		})
	}
}

func TestLogger_RequestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := loggerRouter(zap.New(core).Sugar())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok?param=value", nil)
	req.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(w, req)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, http.MethodGet, fields["method"])
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, "param=value", fields["query"])
	assert.Equal(t, "test-agent", fields["user_agent"])
	assert.Contains(t, fields, "latency_ms")
	assert.Contains(t, fields, "size")
}

func TestLogger_NoQueryOmitsField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := loggerRouter(zap.New(core).Sugar())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	router.ServeHTTP(w, req)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "query")
}
