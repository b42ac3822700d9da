package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hirecoder/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter(t *testing.T) {
	t.Run("defaults to v1", func(t *testing.T) {
		r := NewRouter(gin.New())
		assert.Equal(t, "/api/v1", r.BasePath())
	})

	t.Run("custom version", func(t *testing.T) {
		r := NewRouter(gin.New(), WithAPIVersion("v2"))
		assert.Equal(t, "/api/v2", r.BasePath())
	})

	t.Run("router middleware wraps every group", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine).Use(func(c *gin.Context) {
			c.Header("X-Api", "1")
			c.Next()
		})
		g := NewDomainGroup("test", "/test")
		g.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		r.Register(g)
		r.Setup()

		w := serve(engine, http.MethodGet, "/api/v1/test/ping")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
		assert.Equal(t, "1", w.Header().Get("X-Api"))
	})
}

func TestDomainGroup(t *testing.T) {
	tests := []struct {
		method   string
		register func(g *DomainGroup, h gin.HandlerFunc)
	}{
		{http.MethodGet, func(g *DomainGroup, h gin.HandlerFunc) { g.GET("/items/:id", h) }},
		{http.MethodPost, func(g *DomainGroup, h gin.HandlerFunc) { g.POST("/items/:id", h) }},
		{http.MethodPut, func(g *DomainGroup, h gin.HandlerFunc) { g.PUT("/items/:id", h) }},
		{http.MethodPatch, func(g *DomainGroup, h gin.HandlerFunc) { g.PATCH("/items/:id", h) }},
		{http.MethodDelete, func(g *DomainGroup, h gin.HandlerFunc) { g.DELETE("/items/:id", h) }},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			engine := gin.New()
			g := NewDomainGroup("test", "/test")
			tt.register(g, func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) })
			g.RegisterRoutes(engine.Group("/api/v1"))

			w := serve(engine, tt.method, "/api/v1/test/items/42")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "42", w.Body.String())
		})
	}

	t.Run("subgroups inherit middleware and prefix", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("outer", "/outer").Use(func(c *gin.Context) {
			c.AbortWithStatus(http.StatusTeapot)
		})
		g.Group("inner", "/inner").GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, http.StatusTeapot, serve(engine, http.MethodGet, "/api/v1/outer/inner/x").Code)
	})

	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("catalog", "/catalog")
		assert.Equal(t, "catalog", g.Name())
		assert.Equal(t, "/catalog", g.Prefix())
	})
}

func marketplaceEngine() *gin.Engine {
	engine := gin.New()
	h := Handlers{
		Auth:        handler.NewAuthHandler(nil),
		Catalog:     handler.NewCatalogHandler(nil),
		Profile:     handler.NewProfileHandler(nil),
		Details:     handler.NewProfileDetailsHandler(nil),
		Home:        handler.NewHomeHandler(nil),
		Postings:    handler.NewJobPostingHandler(nil),
		Invitations: handler.NewJobInvitationHandler(nil),
		Proposals:   handler.NewJobProposalHandler(nil),
		Milestones:  handler.NewMilestoneHandler(nil),
		Contracts:   handler.NewContractHandler(nil),
		Timesheets:  handler.NewTimesheetHandler(nil),
		System:      handler.NewSystemHandler("test", nil),
	}
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	NewRouter(engine).Register(MarketplaceGroups(h, deny)...).Setup()
	return engine
}

func TestMarketplaceGroups(t *testing.T) {
	engine := marketplaceEngine()

	registered := make(map[string]bool)
	for _, ri := range engine.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}
	expected := []string{
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/verify-email",
		"POST /api/v1/auth/resend-verification",
		"POST /api/v1/auth/password-reset",
		"POST /api/v1/auth/password-reset/confirm",
		"POST /api/v1/auth/logout",
		"GET /api/v1/auth/me",
		"PUT /api/v1/auth/password",
		"GET /api/v1/technologies",
		"POST /api/v1/technologies",
		"POST /api/v1/technologies/:id/approve",
		"GET /api/v1/expertise",
		"GET /api/v1/timezones",
		"POST /api/v1/timezones",
		"GET /api/v1/profile/skills",
		"POST /api/v1/profile/skills",
		"DELETE /api/v1/profile/skills/:id",
		"GET /api/v1/profile/certifications",
		"POST /api/v1/profile/certifications",
		"DELETE /api/v1/profile/certifications/:id",
		"GET /api/v1/profile/address",
		"PUT /api/v1/profile/address",
		"GET /api/v1/profile/digital-presence",
		"PUT /api/v1/profile/digital-presence",
		"GET /api/v1/profile/company",
		"PUT /api/v1/profile/company",
		"GET /api/v1/profile/experience",
		"PUT /api/v1/profile/experience",
		"GET /api/v1/profile/degrees",
		"POST /api/v1/profile/degrees",
		"DELETE /api/v1/profile/degrees/:id",
		"GET /api/v1/profile/education",
		"PUT /api/v1/profile/education",
		"POST /api/v1/profile/files",
		"GET /api/v1/profile/files/:kind",
		"GET /api/v1/home/recommended-jobs",
		"GET /api/v1/home/recommended-jobs/:id",
		"GET /api/v1/home/recommended-coders",
		"GET /api/v1/job-postings",
		"POST /api/v1/job-postings",
		"GET /api/v1/job-postings/:id",
		"PATCH /api/v1/job-postings/:id",
		"GET /api/v1/invitations",
		"POST /api/v1/invitations",
		"GET /api/v1/invitations/:id",
		"PATCH /api/v1/invitations/:id",
		"GET /api/v1/proposals",
		"POST /api/v1/proposals",
		"GET /api/v1/proposals/:id",
		"PATCH /api/v1/proposals/:id",
		"POST /api/v1/proposals/:id/attachment",
		"GET /api/v1/proposals/:id/attachment",
		"GET /api/v1/milestones",
		"POST /api/v1/milestones",
		"GET /api/v1/milestones/:id",
		"PATCH /api/v1/milestones/:id",
		"GET /api/v1/contracts",
		"GET /api/v1/contracts/:id",
		"POST /api/v1/contracts/:id/rating",
		"POST /api/v1/contracts/:id/close",
		"GET /api/v1/timesheets",
		"POST /api/v1/timesheets",
		"GET /api/v1/timesheets/:id",
		"PUT /api/v1/timesheets/:id",
		"PATCH /api/v1/timesheets/:id",
		"GET /api/v1/system/info",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(expected))
}

func TestMarketplaceGroups_Authentication(t *testing.T) {
	engine := marketplaceEngine()

	protected := [][2]string{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/job-postings"},
		{http.MethodPatch, "/api/v1/proposals/7d1c5e7e-8a0e-4a43-9c5d-2f0f1b0b6a11"},
		{http.MethodGet, "/api/v1/profile/skills"},
		{http.MethodPut, "/api/v1/profile/address"},
		{http.MethodGet, "/api/v1/profile/files/resume"},
		{http.MethodPut, "/api/v1/timesheets/7d1c5e7e-8a0e-4a43-9c5d-2f0f1b0b6a11"},
	}
	for _, p := range protected {
		t.Run(p[0]+" "+p[1], func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, serve(engine, p[0], p[1]).Code)
		})
	}

	t.Run("recommendations skip authentication", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/v1/home/recommended-jobs/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("system info is public", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/v1/system/info")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "HireCoder API")
	})
}
