package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/hostel/backend/internal/interfaces/http/handler"
	"github.com/hostel/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAPI(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	api := API{Version: "v2", Groups: []*DomainGroup{group}}
	api.Install(engine)

	assert.Equal(t, "/api/v2", api.BasePath())
	assert.Equal(t, []RouteInfo{{Method: http.MethodGet, Path: "/api/v2/test/ping"}}, api.Routes())

	w := serve(engine, http.MethodGet, "/api/v2/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("rooms", "/rooms")
		assert.Equal(t, "rooms", g.Name())
		assert.Equal(t, "/rooms", g.Prefix())
	})

	t.Run("every method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		g.GET("/items", ok).POST("/items", ok).PUT("/items/:id", ok).DELETE("/items/:id", ok)
		g.RegisterRoutes(engine.Group("/api"))

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/test/items").Code)
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/api/test/items").Code)
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodPut, "/api/test/items/1").Code)
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodDelete, "/api/test/items/1").Code)
	})

	t.Run("middleware applies to subgroups and skips nil", func(t *testing.T) {
		engine := gin.New()
		var calls []string
		mw := func(name string) gin.HandlerFunc {
			return func(c *gin.Context) {
				calls = append(calls, name)
				c.Next()
			}
		}

		parent := NewDomainGroup("admin", "/admin").Use(nil, mw("parent"))
		child := parent.Group("rooms", "/rooms").Use(mw("child"))
		child.GET("", nil, func(c *gin.Context) { c.Status(http.StatusNoContent) })
		parent.RegisterRoutes(engine.Group(""))

		w := serve(engine, http.MethodGet, "/admin/rooms")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, []string{"parent", "child"}, calls)
	})

	t.Run("routes are listed with prefixes", func(t *testing.T) {
		g := NewDomainGroup("auth", "/auth")
		g.POST("/login")
		g.Group("session", "").GET("/me")
		g.Group("nested", "/x").GET("")

		assert.Equal(t, []RouteInfo{
			{Method: http.MethodPost, Path: "/auth/login"},
			{Method: http.MethodGet, Path: "/auth/me"},
			{Method: http.MethodGet, Path: "/auth/x"},
		}, g.Routes())
	})
}

func TestHostelRoutes_Table(t *testing.T) {
	groups := HostelRoutes(Handlers{}, Guards{})

	var got []string
	for _, g := range groups {
		for _, r := range g.Routes() {
			got = append(got, r.Method+" "+r.Path)
		}
	}
	sort.Strings(got)

	want := []string{
		"DELETE /admin/bills/:id",
		"DELETE /admin/rooms/:id",
		"GET /admin/bills",
		"GET /admin/bills/:id",
		"GET /admin/complaints",
		"GET /admin/dashboard",
		"GET /admin/rooms",
		"GET /admin/rooms/:id",
		"GET /admin/tenants",
		"GET /admin/tenants/:id",
		"GET /auth/me",
		"GET /bills",
		"GET /bills/:id",
		"GET /bills/:id/receipt",
		"GET /complaints",
		"GET /tenant/dashboard",
		"GET /tenant/profile",
		"POST /admin/bills",
		"POST /admin/complaints/:id/resolve",
		"POST /admin/rooms",
		"POST /auth/login",
		"POST /auth/logout",
		"POST /auth/refresh",
		"POST /auth/register",
		"POST /bills/:id/pay",
		"POST /complaints",
		"PUT /admin/bills/:id",
		"PUT /admin/rooms/:id",
		"PUT /admin/tenants/:id/profile",
		"PUT /admin/tenants/:id/room",
		"PUT /auth/password",
		"PUT /tenant/profile",
	}
	assert.Equal(t, want, got)
}

func TestHostelRoutes_Guards(t *testing.T) {
	var afterAuth int
	guards := Guards{
		Authenticate: func(c *gin.Context) {
			if c.GetHeader("X-Test-User") == "" {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.Next()
		},
		Privileged: func(c *gin.Context) {
			if c.GetHeader("X-Test-User") != "admin" {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Next()
		},
		AuthRateLimit: func(c *gin.Context) {
			c.AbortWithStatus(http.StatusTooManyRequests)
		},
		AfterAuth: []gin.HandlerFunc{func(c *gin.Context) {
			afterAuth++
			c.AbortWithStatus(http.StatusTeapot)
		}},
	}

	engine := gin.New()
	Mount(engine, Handlers{}, guards)

	request := func(method, path, user string) int {
		req := httptest.NewRequest(method, path, nil)
		if user != "" {
			req.Header.Set("X-Test-User", user)
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, request(http.MethodPost, "/api/v1/auth/login", ""))
	assert.Equal(t, http.StatusTooManyRequests, request(http.MethodPost, "/api/v1/auth/register", ""))

	for _, path := range []string{"/api/v1/auth/me", "/api/v1/bills", "/api/v1/tenant/dashboard", "/api/v1/admin/rooms"} {
		assert.Equal(t, http.StatusUnauthorized, request(http.MethodGet, path, ""), path)
	}
	assert.Zero(t, afterAuth)

	assert.Equal(t, http.StatusTeapot, request(http.MethodGet, "/api/v1/complaints", "alice"))
	assert.Equal(t, 1, afterAuth)

	// AfterAuth runs before the privilege check
	assert.Equal(t, http.StatusTeapot, request(http.MethodGet, "/api/v1/admin/rooms", "alice"))
	assert.Equal(t, 2, afterAuth)
}

func TestHostelRoutes_PrivilegedAfterAuth(t *testing.T) {
	guards := Guards{
		Authenticate: func(c *gin.Context) { c.Next() },
		Privileged:   func(c *gin.Context) { c.AbortWithStatus(http.StatusForbidden) },
	}
	engine := gin.New()
	Mount(engine, Handlers{}, guards)

	for _, path := range []string{"/api/v1/admin/dashboard", "/api/v1/admin/tenants", "/api/v1/admin/complaints"} {
		assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodGet, path).Code, path)
	}
}

type stubPinger struct{ err error }

func (p stubPinger) Ping() error { return p.err }

func TestNewEngine(t *testing.T) {
	engine := NewEngine(EngineConfig{
		HTTP:      config.HTTPConfig{MaxBodySize: 16},
		Security:  middleware.DefaultSecurityConfig(),
		Profiling: middleware.DefaultProfilingConfig(),
	})
	SystemRoutes(engine, handler.NewHealthHandler(stubPinger{}, "test"), config.SwaggerConfig{}, nil)
	engine.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	t.Run("health", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/health")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	})

	t.Run("swagger disabled", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/swagger/index.html").Code)
	})

	t.Run("body limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"note":"far more than sixteen bytes"}`))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("panics become 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, serve(engine, http.MethodGet, "/boom").Code)
	})
}

func TestSystemRoutes_UnhealthyDatabase(t *testing.T) {
	engine := NewEngine(EngineConfig{})
	SystemRoutes(engine, handler.NewHealthHandler(stubPinger{err: errors.New("down")}, "test"), config.SwaggerConfig{}, nil)

	w := serve(engine, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
