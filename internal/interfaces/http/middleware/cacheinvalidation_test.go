package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	mu    sync.Mutex
	users []uuid.UUID
}

func (r *recordingInvalidator) InvalidateDashboard(_ context.Context, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, userID)
}

func (r *recordingInvalidator) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

func newInvalidationRouter(inv *recordingInvalidator, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(JWTUserIDKey, userID)
		}
		c.Next()
	})
	router.Use(InvalidateDashboardOnWrite(inv))
	router.POST("/financial/transactions", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	router.POST("/financial/broken", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false})
	})
	router.DELETE("/health/sleep/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/wellbeing/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestInvalidateDashboardOnWrite(t *testing.T) {
	userID := uuid.New()

	t.Run("successful write invalidates the user's dashboard", func(t *testing.T) {
		inv := &recordingInvalidator{}
		router := newInvalidationRouter(inv, userID.String())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/financial/transactions", nil))

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, 1, inv.calls())
		assert.Equal(t, userID, inv.users[0])
	})

	t.Run("delete invalidates too", func(t *testing.T) {
		inv := &recordingInvalidator{}
		router := newInvalidationRouter(inv, userID.String())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/health/sleep/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 1, inv.calls())
	})

	t.Run("reads never invalidate", func(t *testing.T) {
		inv := &recordingInvalidator{}
		router := newInvalidationRouter(inv, userID.String())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wellbeing/dashboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, inv.calls())
	})

	t.Run("failed write keeps the cache", func(t *testing.T) {
		inv := &recordingInvalidator{}
		router := newInvalidationRouter(inv, userID.String())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/financial/broken", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, 0, inv.calls())
	})

	t.Run("missing user ID is a no-op", func(t *testing.T) {
		inv := &recordingInvalidator{}
		router := newInvalidationRouter(inv, "")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/financial/transactions", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, inv.calls())
	})
}
