package handler

import (
	"github.com/gin-gonic/gin"
	jobapp "github.com/hirecoder/backend/internal/application/job"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// JobPostingHandler serves job postings
type JobPostingHandler struct {
	BaseHandler
	postingService *jobapp.PostingService
}

// NewJobPostingHandler creates a new job posting handler
func NewJobPostingHandler(postingService *jobapp.PostingService) *JobPostingHandler {
	return &JobPostingHandler{postingService: postingService}
}

// PostingListQuery are the listing filters of job postings
type PostingListQuery struct {
	dto.ListRequest
	Title                   string                 `form:"title"`
	Description             string                 `form:"description"`
	Technology              string                 `form:"technology"`
	ProjectSize             job.ProjectSize        `form:"project_size"`
	BudgetType              job.BudgetType         `form:"budget_type"`
	Expertise               catalog.ExpertiseLevel `form:"expertise"`
	Duration                job.Duration           `form:"duration"`
	TimeZone                string                 `form:"timezone"`
	Status                  job.PostingStatus      `form:"status"`
	MaximumBudget           string                 `form:"maximum_budget"`
	MaximumHourlyRate       *int                   `form:"maximum_hourly_rate"`
	MinimumHourlyRate       *int                   `form:"minimum_hourly_rate"`
	PreferredCoderResidence job.Residence          `form:"preferred_coder_residence"`
}

// CreatePosting godoc
// @Summary      Publish a job posting
// @Description  Verified clients only. The posting always starts OPEN.
// @Tags         job-postings
// @Accept       json
// @Produce      json
// @Param        request body jobapp.CreatePostingRequest true "Posting"
// @Success      201 {object} dto.Response{data=jobapp.PostingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /job-postings [post]
func (h *JobPostingHandler) CreatePosting(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req jobapp.CreatePostingRequest
	if !h.bindJSON(c, &req) {
		return
	}
	posting, err := h.postingService.CreatePosting(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, posting)
}

// GetPosting godoc
// @Summary      Get a job posting
// @Tags         job-postings
// @Produce      json
// @Param        id path string true "Posting ID" format(uuid)
// @Success      200 {object} dto.Response{data=jobapp.PostingResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /job-postings/{id} [get]
func (h *JobPostingHandler) GetPosting(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	posting, err := h.postingService.GetPosting(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, posting)
}

// ListPostings godoc
// @Summary      List job postings
// @Description  Clients see their own postings, coders see all of them
// @Tags         job-postings
// @Produce      json
// @Param        title query string false "Title contains"
// @Param        description query string false "Description contains"
// @Param        technology query string false "Technology name"
// @Param        project_size query string false "SMALL, MEDIUM or LARGE"
// @Param        budget_type query string false "FIXED or HOURLY"
// @Param        expertise query string false "Expertise level"
// @Param        duration query string false "SHORT_TERM, MEDIUM_TERM or LONG_TERM"
// @Param        timezone query string false "Time zone name"
// @Param        status query string false "Posting status"
// @Param        maximum_budget query number false "Maximum budget at most"
// @Param        maximum_hourly_rate query int false "Maximum hourly rate at most"
// @Param        minimum_hourly_rate query int false "Minimum hourly rate at least"
// @Param        preferred_coder_residence query string false "USA_ONLY or ANYWHERE_IN_THE_WORLD"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]jobapp.PostingResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /job-postings [get]
func (h *JobPostingHandler) ListPostings(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q PostingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := job.PostingFilter{
		Filter:                  listFilter(c),
		Title:                   q.Title,
		Description:             q.Description,
		Technology:              q.Technology,
		ProjectSize:             q.ProjectSize,
		BudgetType:              q.BudgetType,
		Expertise:               q.Expertise,
		Duration:                q.Duration,
		TimeZone:                q.TimeZone,
		Status:                  q.Status,
		MaximumHourlyRateLTE:    q.MaximumHourlyRate,
		MinimumHourlyRateGTE:    q.MinimumHourlyRate,
		PreferredCoderResidence: q.PreferredCoderResidence,
	}
	if q.MaximumBudget != "" {
		budget, err := decimal.NewFromString(q.MaximumBudget)
		if err != nil {
			h.BadRequest(c, "maximum_budget must be a number")
			return
		}
		filter.MaximumBudgetLTE = &budget
	}

	page, err := h.postingService.ListPostings(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdatePostingStatus godoc
// @Summary      Change a posting's status
// @Description  The body may only contain status
// @Tags         job-postings
// @Accept       json
// @Produce      json
// @Param        id path string true "Posting ID" format(uuid)
// @Param        request body jobapp.UpdatePostingStatusRequest true "New status"
// @Success      200 {object} dto.Response{data=jobapp.PostingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /job-postings/{id} [patch]
func (h *JobPostingHandler) UpdatePostingStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req jobapp.UpdatePostingStatusRequest
	if !h.bindPatch(c, &req, jobapp.RestrictPostingPatch) {
		return
	}
	posting, err := h.postingService.UpdatePostingStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, posting)
}
