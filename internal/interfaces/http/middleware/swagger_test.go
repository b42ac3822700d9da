package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hirecoder/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

func swaggerRouter(cfg SwaggerConfig, jwt gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg, jwt), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	return router
}

func swaggerFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	denyJWT := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, "no"))
	}
	allowJWT := func(c *gin.Context) { c.Next() }

	t.Run("disabled answers 404", func(t *testing.T) {
		w := swaggerFrom(swaggerRouter(SwaggerConfig{}, nil), "127.0.0.1:1")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, errorCode(t, w))
	})

	t.Run("enabled without restrictions", func(t *testing.T) {
		w := swaggerFrom(swaggerRouter(SwaggerConfig{Enabled: true}, nil), "8.8.8.8:1")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ip and cidr whitelist", func(t *testing.T) {
		router := swaggerRouter(SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1", "10.0.0.0/8"}}, nil)
		assert.Equal(t, http.StatusOK, swaggerFrom(router, "127.0.0.1:12345").Code)
		assert.Equal(t, http.StatusOK, swaggerFrom(router, "10.1.2.3:12345").Code)

		w := swaggerFrom(router, "192.168.1.1:12345")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, dto.ErrCodeForbidden, errorCode(t, w))
	})

	t.Run("auth required", func(t *testing.T) {
		cfg := SwaggerConfig{Enabled: true, RequireAuth: true}
		assert.Equal(t, http.StatusUnauthorized, swaggerFrom(swaggerRouter(cfg, denyJWT), "127.0.0.1:1").Code)
		assert.Equal(t, http.StatusOK, swaggerFrom(swaggerRouter(cfg, allowJWT), "127.0.0.1:1").Code)
	})

	t.Run("ip check runs before auth", func(t *testing.T) {
		cfg := SwaggerConfig{Enabled: true, RequireAuth: true, AllowedIPs: []string{"127.0.0.1"}}
		assert.Equal(t, http.StatusForbidden, swaggerFrom(swaggerRouter(cfg, denyJWT), "192.168.1.1:1").Code)
	})
}

func TestIsIPAllowed(t *testing.T) {
	_, tenNet, _ := net.ParseCIDR("10.0.0.0/8")
	ips := []net.IP{net.ParseIP("192.168.1.1"), net.ParseIP("::1")}
	nets := []*net.IPNet{tenNet}

	tests := []struct {
		ip   string
		want bool
	}{
		{"192.168.1.1", true},
		{"192.168.1.2", false},
		{"10.0.0.5", true},
		{"11.0.0.5", false},
		{"::1", true},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.want, isIPAllowed(net.ParseIP(tt.ip), ips, nets))
		})
	}
	assert.False(t, isIPAllowed(nil, ips, nets))
}
