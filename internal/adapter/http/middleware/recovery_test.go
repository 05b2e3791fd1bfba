package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecovery_LogsPanicThroughZap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestID(), Recovery(zap.New(core)))
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d but got %d", http.StatusInternalServerError, rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != messageInternalError {
		t.Fatalf("unexpected body: %v", body)
	}

	entries := logs.FilterMessage("panic recovered").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 panic log entry but got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["panic"] != "kaboom" {
		t.Fatalf("unexpected panic field: %v", fields["panic"])
	}
	if fields["path"] != "/panic" {
		t.Fatalf("unexpected path field: %v", fields["path"])
	}
	if _, ok := fields["stack"]; !ok {
		t.Fatalf("stack trace missing")
	}
}

func TestRecovery_NilLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(nil))
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d but got %d", http.StatusInternalServerError, rec.Code)
	}
}
