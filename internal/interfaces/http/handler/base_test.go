package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	contractapp "github.com/hirecoder/backend/internal/application/contract"
	jobapp "github.com/hirecoder/backend/internal/application/job"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/interfaces/http/dto"
	"github.com/hirecoder/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withActor stands in for the JWT middleware
func withActor(actor identity.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTActorKey, actor)
		c.Next()
	}
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func serveError(err error) *httptest.ResponseRecorder {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h.HandleError(c, err)
	return w
}

func TestBaseHandler_HandleError(t *testing.T) {
	t.Run("not found family maps to 404", func(t *testing.T) {
		w := serveError(shared.NewDomainError("PROPOSAL_NOT_FOUND", "Proposal not found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, "Proposal not found", resp.Error.Message)
	})

	t.Run("field details are kept", func(t *testing.T) {
		var verrs shared.ValidationErrors
		verrs.Add("hourly_rate", "Hourly rate is required for hourly postings")
		verrs.Add("availability_per_week", "Availability is required for hourly postings")

		w := serveError(verrs.Err())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 2)
		assert.Equal(t, "hourly_rate", resp.Error.Details[0].Field)
		assert.Equal(t, "availability_per_week", resp.Error.Details[1].Field)
	})

	t.Run("conflict", func(t *testing.T) {
		w := serveError(shared.NewDomainError("CONTRACT_ALREADY_EXISTS", "Contract already exists"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rate limited sets Retry-After rounded up", func(t *testing.T) {
		err := fmt.Errorf("resend: %w", appshared.NewRateLimitedError("Try again later", 1500*time.Millisecond))

		w := serveError(err)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
	})

	t.Run("rate limited never advertises zero", func(t *testing.T) {
		w := serveError(appshared.NewRateLimitedError("Try again later", 0))
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("unknown errors are hidden", func(t *testing.T) {
		w := serveError(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("nil writes nothing", func(t *testing.T) {
		w := serveError(nil)
		assert.Empty(t, w.Body.String())
	})
}

func TestBaseHandler_Guards(t *testing.T) {
	h := &BaseHandler{}
	r := gin.New()
	r.GET("/anon/:id", func(c *gin.Context) {
		if _, ok := h.actor(c); !ok {
			return
		}
		h.Success(c, "unreachable")
	})
	r.GET("/items/:id", withActor(identity.NewActor(uuid.New(), identity.RoleCoder, true)), func(c *gin.Context) {
		id, ok := h.pathID(c)
		if !ok {
			return
		}
		h.Success(c, id.String())
	})

	t.Run("missing actor", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anon/x", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidInput, decodeResponse(t, w).Error.Code)
	})

	t.Run("valid id", func(t *testing.T) {
		id := uuid.New()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+id.String(), nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id.String(), decodeResponse(t, w).Data)
	})
}

func TestBaseHandler_BindPatch(t *testing.T) {
	h := &BaseHandler{}
	r := gin.New()
	r.PATCH("/postings", func(c *gin.Context) {
		var req jobapp.UpdatePostingStatusRequest
		if !h.bindPatch(c, &req, jobapp.RestrictPostingPatch) {
			return
		}
		h.Success(c, string(req.Status))
	})

	patch := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/postings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("status only", func(t *testing.T) {
		w := patch(`{"status":"CLOSED"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "CLOSED", decodeResponse(t, w).Data)
	})

	t.Run("extra keys are named", func(t *testing.T) {
		w := patch(`{"status":"CLOSED","title":"new","maximum_budget":10}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.Len(t, resp.Error.Details, 2)
		assert.Equal(t, "maximum_budget", resp.Error.Details[0].Field)
		assert.Equal(t, "title", resp.Error.Details[1].Field)
	})

	t.Run("not an object", func(t *testing.T) {
		w := patch(`["status"]`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBaseHandler_StreamedBodyOverLimit(t *testing.T) {
	h := &BaseHandler{}
	r := gin.New()
	r.Use(middleware.BodyLimit(256))
	r.POST("/api/v1/timesheets", func(c *gin.Context) {
		var req contractapp.SubmitTimesheetRequest
		if !h.bindJSON(c, &req) {
			return
		}
		h.Created(c, req.Description)
	})
	r.PATCH("/api/v1/timesheets/:id", func(c *gin.Context) {
		var req contractapp.ReviewTimesheetRequest
		if !h.bindPatch(c, &req, contractapp.RestrictTimesheetPatch) {
			return
		}
		h.Success(c, string(req.TimesheetStatus))
	})

	// no Content-Length, so only the reader cap can stop the body
	stream := func(method, path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.ContentLength = -1
		r.ServeHTTP(w, req)
		return w
	}
	contractID := uuid.New().String()

	t.Run("timesheet within limit", func(t *testing.T) {
		w := stream(http.MethodPost, "/api/v1/timesheets",
			`{"job_contract":"`+contractID+`","start_time":"09:00","end_time":"10:00","description":"Triage"}`)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("oversized timesheet description", func(t *testing.T) {
		w := stream(http.MethodPost, "/api/v1/timesheets",
			`{"job_contract":"`+contractID+`","start_time":"09:00","end_time":"10:00","description":"`+strings.Repeat("a", 1000)+`"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, dto.ErrCodePayloadTooLarge, decodeResponse(t, w).Error.Code)
	})

	t.Run("oversized review patch", func(t *testing.T) {
		w := stream(http.MethodPatch, "/api/v1/timesheets/"+contractID,
			`{"timesheet_status":"APPROVED","note":"`+strings.Repeat("b", 1000)+`"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, dto.ErrCodePayloadTooLarge, decodeResponse(t, w).Error.Code)
	})
}

func TestListFilter(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&page_size=15&order_by=created_at&order_dir=asc&search=go", nil)

	f := listFilter(c)

	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 15, f.PageSize)
	assert.Equal(t, "created_at", f.OrderBy)
	assert.Equal(t, "asc", f.OrderDir)
	assert.Equal(t, "go", f.Search)
}
