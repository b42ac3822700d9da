package handler

import (
	"github.com/gin-gonic/gin"
	jobapp "github.com/hirecoder/backend/internal/application/job"
)

// MilestoneHandler serves milestones on fixed-price postings
type MilestoneHandler struct {
	BaseHandler
	milestoneService *jobapp.MilestoneService
}

// NewMilestoneHandler creates a new milestone handler
func NewMilestoneHandler(milestoneService *jobapp.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// CreateMilestone godoc
// @Summary      Propose a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        request body jobapp.CreateMilestoneRequest true "Milestone"
// @Success      201 {object} dto.Response{data=jobapp.MilestoneResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /milestones [post]
func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req jobapp.CreateMilestoneRequest
	if !h.bindJSON(c, &req) {
		return
	}
	m, err := h.milestoneService.CreateMilestone(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, m)
}

// GetMilestone godoc
// @Summary      Get a milestone
// @Tags         milestones
// @Produce      json
// @Param        id path string true "Milestone ID" format(uuid)
// @Success      200 {object} dto.Response{data=jobapp.MilestoneResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /milestones/{id} [get]
func (h *MilestoneHandler) GetMilestone(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	m, err := h.milestoneService.GetMilestone(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, m)
}

// ListMilestones godoc
// @Summary      List milestones
// @Tags         milestones
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]jobapp.MilestoneResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /milestones [get]
func (h *MilestoneHandler) ListMilestones(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	page, err := h.milestoneService.ListMilestones(c.Request.Context(), actor, listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateMilestoneStatus godoc
// @Summary      Move a milestone
// @Description  Coders set ACTIVE or COMPLETE, the posting owner may only set COMPLETE
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        id path string true "Milestone ID" format(uuid)
// @Param        request body jobapp.UpdateMilestoneStatusRequest true "New status"
// @Success      200 {object} dto.Response{data=jobapp.MilestoneResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /milestones/{id} [patch]
func (h *MilestoneHandler) UpdateMilestoneStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req jobapp.UpdateMilestoneStatusRequest
	if !h.bindPatch(c, &req, jobapp.RestrictMilestonePatch) {
		return
	}
	m, err := h.milestoneService.UpdateMilestoneStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, m)
}
