package handler

import (
	"github.com/gin-gonic/gin"
	contractapp "github.com/hirecoder/backend/internal/application/contract"
)

// ContractHandler serves job contracts
type ContractHandler struct {
	BaseHandler
	contractService *contractapp.ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService *contractapp.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// GetContract godoc
// @Summary      Get a contract
// @Tags         contracts
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {object} dto.Response{data=contractapp.ContractResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ct, err := h.contractService.GetContract(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ct)
}

// ListContracts godoc
// @Summary      List contracts
// @Description  Contracts where the caller is the client or the coder
// @Tags         contracts
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]contractapp.ContractResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	page, err := h.contractService.ListContracts(c.Request.Context(), actor, listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// RateContract godoc
// @Summary      Rate a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Param        request body contractapp.RateContractRequest true "Rating"
// @Success      200 {object} dto.Response{data=contractapp.ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id}/rating [post]
func (h *ContractHandler) RateContract(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req contractapp.RateContractRequest
	if !h.bindJSON(c, &req) {
		return
	}
	ct, err := h.contractService.RateContract(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ct)
}

// CloseContract godoc
// @Summary      Close a contract
// @Tags         contracts
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {object} dto.Response{data=contractapp.ContractResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id}/close [post]
func (h *ContractHandler) CloseContract(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ct, err := h.contractService.CloseContract(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ct)
}
