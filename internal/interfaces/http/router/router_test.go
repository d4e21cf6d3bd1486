package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterRegister(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test")
	r.Register(group)

	assert.Len(t, r.registrars, 1)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/test/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterUse(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	// Middleware on the router applies to every registered group
	r.Use(func(c *gin.Context) {
		c.Header("X-API-Middleware", "applied")
		c.Next()
	})

	group := NewDomainGroup("health", "/health")
	group.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})

	r.Register(group).Setup()

	req := httptest.NewRequest("GET", "/api/v1/health/metrics", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "applied", w.Header().Get("X-API-Middleware"))
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("financial", "/financial")
		assert.Equal(t, "financial", g.Name())
		assert.Equal(t, "/financial", g.Prefix())
	})

	t.Run("registers routes for each method", func(t *testing.T) {
		tests := []struct {
			method string
			status int
		}{
			{"GET", http.StatusOK},
			{"POST", http.StatusCreated},
			{"PUT", http.StatusOK},
			{"PATCH", http.StatusOK},
			{"DELETE", http.StatusNoContent},
		}

		for _, tt := range tests {
			t.Run(tt.method, func(t *testing.T) {
				engine := gin.New()
				g := NewDomainGroup("test", "/test")
				status := tt.status
				handler := func(c *gin.Context) { c.Status(status) }

				switch tt.method {
				case "GET":
					g.GET("/items", handler)
				case "POST":
					g.POST("/items", handler)
				case "PUT":
					g.PUT("/items", handler)
				case "PATCH":
					g.PATCH("/items", handler)
				case "DELETE":
					g.DELETE("/items", handler)
				}

				api := engine.Group("/api/v1")
				g.RegisterRoutes(api)

				req := httptest.NewRequest(tt.method, "/api/v1/test/items", nil)
				w := httptest.NewRecorder()
				engine.ServeHTTP(w, req)

				assert.Equal(t, tt.status, w.Code)
			})
		}
	})

	t.Run("applies middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")

		g.Use(func(c *gin.Context) {
			c.Header("X-Test-Middleware", "applied")
			c.Next()
		})

		g.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/test/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
	})

	t.Run("creates subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("worklife", "/worklife")

		sessions := g.Group("sessions", "/sessions")
		sessions.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "sessions list")
		})

		events := g.Group("events", "/events")
		events.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "events list")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req1 := httptest.NewRequest("GET", "/api/v1/worklife/sessions", nil)
		w1 := httptest.NewRecorder()
		engine.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)
		assert.Equal(t, "sessions list", w1.Body.String())

		req2 := httptest.NewRequest("GET", "/api/v1/worklife/events", nil)
		w2 := httptest.NewRecorder()
		engine.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusOK, w2.Code)
		assert.Equal(t, "events list", w2.Body.String())
	})
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	financial := NewDomainGroup("financial", "/financial")
	financial.GET("/transactions", func(c *gin.Context) {
		c.String(http.StatusOK, "transactions")
	})

	health := NewDomainGroup("health", "/health")
	health.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})

	r.Register(financial).Register(health)
	r.Setup()

	req1 := httptest.NewRequest("GET", "/api/v1/financial/transactions", nil)
	w1 := httptest.NewRecorder()
	engine.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, "transactions", w1.Body.String())

	req2 := httptest.NewRequest("GET", "/api/v1/health/metrics", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "metrics", w2.Body.String())
}

func TestChainedMethodCalls(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	g := NewDomainGroup("test", "/test")
	g.GET("/a", func(c *gin.Context) { c.String(http.StatusOK, "a") }).
		POST("/b", func(c *gin.Context) { c.String(http.StatusOK, "b") }).
		PUT("/c", func(c *gin.Context) { c.String(http.StatusOK, "c") })

	r.Register(g).Setup()

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/test/a"},
		{"POST", "/api/v1/test/b"},
		{"PUT", "/api/v1/test/c"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Route %s %s should work", tt.method, tt.path)
	}
}
