package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/store"
)

func newTestEngine(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	globalLogger = zerolog.Nop()
	globalTaskTable = store.NewMemoryTable()

	router := gin.New()
	router.Use(newCORSMiddleware(origins))
	registerRoutes(router)
	return router
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := newTestEngine([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	for _, h := range []string{"Content-Type", "Authorization", "X-Requested-With"} {
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), h)
	}
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	router := newTestEngine([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/api/weeks", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegisterRoutes_ServesHealth(t *testing.T) {
	router := newTestEngine([]string{"http://localhost:5173"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
