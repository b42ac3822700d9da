package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hirecoder/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,max=8"`
	Rating   int    `json:"rating" binding:"min=1,max=5"`
	Role     string `json:"role" binding:"omitempty,oneof=CLIENT CODER"`
}

func validationRouter() *gin.Engine {
	SetupValidator()
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req signupForm
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})
	return router
}

func postJSON(router *gin.Engine, body string) (*httptest.ResponseRecorder, dto.Response) {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var resp dto.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestHandleValidationError(t *testing.T) {
	router := validationRouter()

	t.Run("reports every field by its json name", func(t *testing.T) {
		w, resp := postJSON(router, `{"email":"nope","username":"far-too-long","rating":9,"role":"ADMIN"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

		got := map[string]string{}
		for _, d := range resp.Error.Details {
			got[d.Field] = d.Message
		}
		assert.Equal(t, map[string]string{
			"email":    "Invalid email format",
			"username": "Must be at most 8 characters",
			"rating":   "Must be at most 5",
			"role":     "Must be one of: CLIENT CODER",
		}, got)
	})

	t.Run("wrong json type names the field", func(t *testing.T) {
		w, resp := postJSON(router, `{"email":"a@b.co","username":"ada","rating":"five"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "rating", resp.Error.Details[0].Field)
	})

	t.Run("malformed body", func(t *testing.T) {
		w, resp := postJSON(router, `{"email":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	})

	t.Run("valid input", func(t *testing.T) {
		w, _ := postJSON(router, `{"email":"a@b.co","username":"ada","rating":4}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
