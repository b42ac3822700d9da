package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	jobapp "github.com/hirecoder/backend/internal/application/job"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/interfaces/http/dto"
)

// JobProposalHandler serves proposals and their attachments
type JobProposalHandler struct {
	BaseHandler
	proposalService *jobapp.ProposalService
}

// NewJobProposalHandler creates a new proposal handler
func NewJobProposalHandler(proposalService *jobapp.ProposalService) *JobProposalHandler {
	return &JobProposalHandler{proposalService: proposalService}
}

// ProposalListQuery are the listing filters of proposals
type ProposalListQuery struct {
	dto.ListRequest
	Status       job.ProposalStatus `form:"status"`
	ProposalType job.BudgetType     `form:"proposal_type"`
	JobPostingID string             `form:"job_posting_id"`
}

// SubmitProposal godoc
// @Summary      Submit a proposal
// @Description  The proposal type is copied from the posting. Fees use the configured platform percentage.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        request body jobapp.SubmitProposalRequest true "Proposal"
// @Success      201 {object} dto.Response{data=jobapp.ProposalResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /proposals [post]
func (h *JobProposalHandler) SubmitProposal(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req jobapp.SubmitProposalRequest
	if !h.bindJSON(c, &req) {
		return
	}
	proposal, err := h.proposalService.SubmitProposal(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, proposal)
}

// GetProposal godoc
// @Summary      Get a proposal
// @Tags         proposals
// @Produce      json
// @Param        id path string true "Proposal ID" format(uuid)
// @Success      200 {object} dto.Response{data=jobapp.ProposalResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /proposals/{id} [get]
func (h *JobProposalHandler) GetProposal(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	proposal, err := h.proposalService.GetProposal(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, proposal)
}

// ListProposals godoc
// @Summary      List proposals
// @Description  Coders see their own proposals, clients the proposals on their postings
// @Tags         proposals
// @Produce      json
// @Param        status query string false "Proposal status"
// @Param        proposal_type query string false "FIXED or HOURLY"
// @Param        job_posting_id query string false "Posting ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]jobapp.ProposalResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /proposals [get]
func (h *JobProposalHandler) ListProposals(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q ProposalListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	filter := job.ProposalFilter{
		Filter:       listFilter(c),
		Status:       q.Status,
		ProposalType: q.ProposalType,
	}
	if q.JobPostingID != "" {
		postingID, err := uuid.Parse(q.JobPostingID)
		if err != nil {
			h.BadRequest(c, "job_posting_id must be a UUID")
			return
		}
		filter.JobPostingID = &postingID
	}

	page, err := h.proposalService.ListProposals(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateProposalStatus godoc
// @Summary      Accept or reject a proposal
// @Description  Clients set ACCEPTED_BY_CLIENT or REJECTED_BY_CLIENT, coders ACCEPTED_BY_CODER or REJECTED_BY_CODER.
// @Description  ACCEPTED_BY_CODER creates the contract in the same transaction.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id path string true "Proposal ID" format(uuid)
// @Param        request body jobapp.UpdateProposalStatusRequest true "New status"
// @Success      200 {object} dto.Response{data=jobapp.ProposalStatusResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /proposals/{id} [patch]
func (h *JobProposalHandler) UpdateProposalStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	party, err := job.PartyFor(actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	var req jobapp.UpdateProposalStatusRequest
	restrict := func(keys []string) error { return jobapp.RestrictProposalPatch(party, keys) }
	if !h.bindPatch(c, &req, restrict) {
		return
	}
	result, err := h.proposalService.UpdateProposalStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RequestAttachmentUpload godoc
// @Summary      Upload URL for a proposal attachment
// @Description  Returns a presigned PUT URL. The previous attachment, if any, is replaced.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id path string true "Proposal ID" format(uuid)
// @Param        request body jobapp.AttachmentUploadRequest true "File"
// @Success      200 {object} dto.Response{data=jobapp.AttachmentURLResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /proposals/{id}/attachment [post]
func (h *JobProposalHandler) RequestAttachmentUpload(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req jobapp.AttachmentUploadRequest
	if !h.bindJSON(c, &req) {
		return
	}
	url, err := h.proposalService.RequestAttachmentUpload(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, url)
}

// GetAttachmentURL godoc
// @Summary      Download URL for a proposal attachment
// @Tags         proposals
// @Produce      json
// @Param        id path string true "Proposal ID" format(uuid)
// @Success      200 {object} dto.Response{data=jobapp.AttachmentURLResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /proposals/{id}/attachment [get]
func (h *JobProposalHandler) GetAttachmentURL(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	url, err := h.proposalService.GetAttachmentURL(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, url)
}
