package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	check := func(db, redis func() bool) HealthResponse {
		router := gin.New()
		router.GET("/health", NewHealthController(db, redis).Check)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		return response
	}

	t.Run("reports connected dependencies", func(t *testing.T) {
		response := check(func() bool { return true }, func() bool { return true })
		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, "connected", response.Database)
		assert.Equal(t, "connected", response.Redis)
	})

	t.Run("reports disconnected dependencies", func(t *testing.T) {
		response := check(func() bool { return false }, nil)
		assert.Equal(t, "disconnected", response.Database)
		assert.Equal(t, "disconnected", response.Redis)
	})
}
