package handler

import (
	"github.com/gin-gonic/gin"
	jobapp "github.com/hirecoder/backend/internal/application/job"
)

// JobInvitationHandler serves invitations from clients to coders
type JobInvitationHandler struct {
	BaseHandler
	invitationService *jobapp.InvitationService
}

// NewJobInvitationHandler creates a new invitation handler
func NewJobInvitationHandler(invitationService *jobapp.InvitationService) *JobInvitationHandler {
	return &JobInvitationHandler{invitationService: invitationService}
}

// SendInvitation godoc
// @Summary      Invite a coder to a posting
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        request body jobapp.SendInvitationRequest true "Invitation"
// @Success      201 {object} dto.Response{data=jobapp.InvitationResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /invitations [post]
func (h *JobInvitationHandler) SendInvitation(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req jobapp.SendInvitationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	inv, err := h.invitationService.SendInvitation(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inv)
}

// GetInvitation godoc
// @Summary      Get an invitation
// @Tags         invitations
// @Produce      json
// @Param        id path string true "Invitation ID" format(uuid)
// @Success      200 {object} dto.Response{data=jobapp.InvitationResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /invitations/{id} [get]
func (h *JobInvitationHandler) GetInvitation(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	inv, err := h.invitationService.GetInvitation(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// ListInvitations godoc
// @Summary      List invitations
// @Description  Clients see what they sent, coders what they received
// @Tags         invitations
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]jobapp.InvitationResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /invitations [get]
func (h *JobInvitationHandler) ListInvitations(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	page, err := h.invitationService.ListInvitations(c.Request.Context(), actor, listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateInvitationStatus godoc
// @Summary      Answer an invitation
// @Description  The invited coder may set READ or INVITATION_REJECTED
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        id path string true "Invitation ID" format(uuid)
// @Param        request body jobapp.UpdateInvitationStatusRequest true "New status"
// @Success      200 {object} dto.Response{data=jobapp.InvitationResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /invitations/{id} [patch]
func (h *JobInvitationHandler) UpdateInvitationStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req jobapp.UpdateInvitationStatusRequest
	if !h.bindPatch(c, &req, jobapp.RestrictInvitationPatch) {
		return
	}
	inv, err := h.invitationService.UpdateInvitationStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}
