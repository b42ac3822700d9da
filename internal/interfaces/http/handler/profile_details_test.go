package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/hirecoder/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileDetailsHandler_Address(t *testing.T) {
	m := newMarketplace(t)

	w, env := m.do(t, "grace", http.MethodGet, "/api/v1/profile/address", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, errorCodeOf(env))

	body := map[string]any{"city": "Pune", "country": "India", "zip_code": "411001"}
	w, env = m.do(t, "grace", http.MethodPut, "/api/v1/profile/address", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := dataOf(t, env)["id"]

	body["city"] = "Mumbai"
	w, env = m.do(t, "grace", http.MethodPut, "/api/v1/profile/address", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, id, dataOf(t, env)["id"])
	assert.Equal(t, "Mumbai", dataOf(t, env)["city"])

	t.Run("bad zip code", func(t *testing.T) {
		w, env := m.do(t, "grace", http.MethodPut, "/api/v1/profile/address", map[string]any{"zip_code": "4110#1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		details := env["error"].(map[string]any)["details"].([]any)
		assert.Equal(t, "zip_code", details[0].(map[string]any)["field"])
	})

	t.Run("requires a caller", func(t *testing.T) {
		w, _ := m.do(t, "", http.MethodGet, "/api/v1/profile/address", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProfileDetailsHandler_RoleSpecificRecords(t *testing.T) {
	m := newMarketplace(t)

	t.Run("company is for clients", func(t *testing.T) {
		w, _ := m.do(t, "grace", http.MethodPut, "/api/v1/profile/company", map[string]any{"company_name": "Grace LLC"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		w, env := m.do(t, "acme", http.MethodPut, "/api/v1/profile/company", map[string]any{
			"company_name":    "Acme",
			"company_website": "https://acme.example",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "Acme", dataOf(t, env)["company_name"])
	})

	t.Run("experience is for coders", func(t *testing.T) {
		body := map[string]any{
			"identity":                  "Backend engineer",
			"hourly_rate":               50,
			"brief_work_experience":     "Payments",
			"total_years_of_experience": 6,
		}
		w, _ := m.do(t, "acme", http.MethodPut, "/api/v1/profile/experience", body)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w, env := m.do(t, "grace", http.MethodPut, "/api/v1/profile/experience", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.EqualValues(t, 50, dataOf(t, env)["hourly_rate"])

		body["hourly_rate"] = 1000
		w, _ = m.do(t, "grace", http.MethodPut, "/api/v1/profile/experience", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("digital presence keeps the role's links", func(t *testing.T) {
		w, env := m.do(t, "grace", http.MethodPut, "/api/v1/profile/digital-presence", map[string]any{
			"github_url":  "https://github.com/grace",
			"youtube_url": "https://youtube.com/@grace",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		data := dataOf(t, env)
		assert.Equal(t, "https://github.com/grace", data["github_url"])
		assert.NotContains(t, data, "youtube_url")

		w, _ = m.do(t, "grace", http.MethodPut, "/api/v1/profile/digital-presence", map[string]any{
			"github_url": "https://bitbucket.org/grace",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfileDetailsHandler_EducationAndFiles(t *testing.T) {
	m := newMarketplace(t)

	w, env := m.do(t, "grace", http.MethodPost, "/api/v1/profile/degrees", map[string]any{
		"university": "MIT", "degree": "BSc", "college": "EECS", "passing_year": 2012,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	degreeID := dataOf(t, env)["id"].(string)

	w, _ = m.do(t, "grace", http.MethodPost, "/api/v1/profile/degrees", map[string]any{
		"university": "ETH", "degree": "BSC", "college": "CS", "passing_year": 2014,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = m.do(t, "grace", http.MethodGet, "/api/v1/profile/files/resume", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = m.do(t, "grace", http.MethodPost, "/api/v1/profile/files", map[string]any{
		"kind": "resume", "file_name": "cv.pdf", "content_type": "application/pdf",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	upload := dataOf(t, env)
	assert.Equal(t, "PUT", upload["method"])
	key := upload["key"].(string)
	assert.True(t, strings.HasPrefix(key, "profiles/"+m.users["grace"].ID.String()+"/resume/"))

	w, env = m.do(t, "grace", http.MethodPut, "/api/v1/profile/education", map[string]any{
		"portfolio_url": "https://grace.dev", "resume_key": key,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, dataOf(t, env)["degrees"], 1)

	w, env = m.do(t, "grace", http.MethodGet, "/api/v1/profile/files/resume", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, key, dataOf(t, env)["key"])

	t.Run("unknown slot", func(t *testing.T) {
		w, _ := m.do(t, "grace", http.MethodGet, "/api/v1/profile/files/avatar", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = m.do(t, "grace", http.MethodPost, "/api/v1/profile/files", map[string]any{
			"kind": "avatar", "file_name": "me.png", "content_type": "image/png",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong extension", func(t *testing.T) {
		w, _ := m.do(t, "grace", http.MethodPost, "/api/v1/profile/files", map[string]any{
			"kind": "profile_picture", "file_name": "me.pdf", "content_type": "application/pdf",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w, _ = m.do(t, "grace", http.MethodDelete, "/api/v1/profile/degrees/"+degreeID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, env = m.do(t, "grace", http.MethodGet, "/api/v1/profile/degrees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env["data"])
}

func TestHomeHandler(t *testing.T) {
	m := newMarketplace(t)
	postingID := m.fixedPosting(t)

	w, _ := m.do(t, "acme", http.MethodPut, "/api/v1/profile/company", map[string]any{"company_name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := m.do(t, "", http.MethodGet, "/api/v1/home/recommended-jobs", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	jobs := env["data"].([]any)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].(map[string]any)["company_name"])

	w, env = m.do(t, "", http.MethodGet, "/api/v1/home/recommended-jobs/"+postingID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Payments API", dataOf(t, env)["title"])

	w, _ = m.do(t, "acme", http.MethodPatch, "/api/v1/job-postings/"+postingID, map[string]any{"status": "CLOSED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, _ = m.do(t, "", http.MethodGet, "/api/v1/home/recommended-jobs/"+postingID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = m.do(t, "", http.MethodGet, "/api/v1/home/recommended-coders", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	coders := env["data"].([]any)
	require.Len(t, coders, 1)
	assert.Equal(t, "grace", coders[0].(map[string]any)["id"])
}
