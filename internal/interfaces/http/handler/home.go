package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hirecoder/backend/internal/application/home"
)

// HomeHandler serves the public landing-page recommendations
type HomeHandler struct {
	BaseHandler
	recommendations *home.RecommendationService
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(recommendations *home.RecommendationService) *HomeHandler {
	return &HomeHandler{recommendations: recommendations}
}

// RecommendedJobs godoc
// @Summary      Random open job postings
// @Tags         home
// @Produce      json
// @Success      200 {object} dto.Response{data=[]home.RecommendedJobResponse}
// @Router       /home/recommended-jobs [get]
func (h *HomeHandler) RecommendedJobs(c *gin.Context) {
	jobs, err := h.recommendations.RecommendedJobs(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, jobs)
}

// RecommendedJob godoc
// @Summary      One open job posting
// @Tags         home
// @Produce      json
// @Param        id path string true "Posting ID" format(uuid)
// @Success      200 {object} dto.Response{data=home.RecommendedJobResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /home/recommended-jobs/{id} [get]
func (h *HomeHandler) RecommendedJob(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	job, err := h.recommendations.RecommendedJob(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, job)
}

// RecommendedCoders godoc
// @Summary      Random verified coders
// @Tags         home
// @Produce      json
// @Success      200 {object} dto.Response{data=[]home.RecommendedCoderResponse}
// @Router       /home/recommended-coders [get]
func (h *HomeHandler) RecommendedCoders(c *gin.Context) {
	coders, err := h.recommendations.RecommendedCoders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, coders)
}
