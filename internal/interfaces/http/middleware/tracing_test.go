package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer sets up a test tracer provider and returns the span recorder.
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return sr
}

func findSpan(t *testing.T, sr *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, span := range sr.Ended() {
		if span.Name() == name {
			return span
		}
	}
	require.Failf(t, "span not found", "no ended span named %q", name)
	return nil
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]string {
	out := make(map[attribute.Key]string)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value.Emit()
	}
	return out
}

func TestTracingWithConfig_Disabled(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{Enabled: false, ServiceName: "test-service"}))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/test", nil).Code)
	assert.Empty(t, sr.Ended())
}

func TestTracingAttributeInjector(t *testing.T) {
	sr := setupTestTracer(t)
	userID := uuid.New()

	router := gin.New()
	router.Use(RequestID(), TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "test-service"}))
	router.Use(func(c *gin.Context) {
		c.Set(JWTActorKey, identity.NewActor(userID, identity.RoleClient, true))
		c.Next()
	})
	router.Use(TracingAttributeInjector())
	router.GET("/job-postings/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, http.MethodGet, "/job-postings/42", map[string]string{"X-Request-ID": "req-1"})

	got := attrs(findSpan(t, sr, "GET /job-postings/:id"))
	assert.Equal(t, "req-1", got["request_id"])
	assert.Equal(t, userID.String(), got["user_id"])
	assert.Equal(t, "CLIENT", got["user_role"])
}

func TestSpanErrorMarker(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "Client Error"},
		{http.StatusUnauthorized, "Unauthorized"},
		{http.StatusForbidden, "Forbidden"},
		{http.StatusNotFound, "Not Found"},
		{http.StatusConflict, "Conflict"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			sr := setupTestTracer(t)
			router := gin.New()
			router.Use(TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "test-service"}), SpanErrorMarker())
			router.GET("/test", func(c *gin.Context) { c.Status(tt.status) })

			serve(router, http.MethodGet, "/test", nil)

			span := findSpan(t, sr, "GET /test")
			assert.Equal(t, codes.Error, span.Status().Code)
			assert.Equal(t, tt.want, span.Status().Description)
		})
	}

	t.Run("server errors", func(t *testing.T) {
		sr := setupTestTracer(t)
		router := gin.New()
		router.Use(TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "test-service"}), SpanErrorMarker())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

		serve(router, http.MethodGet, "/test", nil)
		assert.Equal(t, codes.Error, findSpan(t, sr, "GET /test").Status().Code)
	})

	t.Run("success keeps status unset", func(t *testing.T) {
		sr := setupTestTracer(t)
		router := gin.New()
		router.Use(TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "test-service"}), SpanErrorMarker())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		serve(router, http.MethodGet, "/test", nil)
		assert.Equal(t, codes.Unset, findSpan(t, sr, "GET /test").Status().Code)
	})

	t.Run("no span", func(t *testing.T) {
		router := gin.New()
		router.Use(SpanErrorMarker(), TracingAttributeInjector())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusTeapot) })
		assert.Equal(t, http.StatusTeapot, serve(router, http.MethodGet, "/test", nil).Code)
	})
}
