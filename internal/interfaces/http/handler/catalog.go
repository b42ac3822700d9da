package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hirecoder/backend/internal/application/catalog"
)

// CatalogHandler serves technologies, expertise levels and time zones
type CatalogHandler struct {
	BaseHandler
	catalogService *catalog.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateTechnology godoc
// @Summary      Add a technology
// @Description  Admin entries are approved immediately, all others wait for review
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body catalog.CreateTechnologyRequest true "Technology"
// @Success      201 {object} dto.Response{data=catalog.TechnologyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /technologies [post]
func (h *CatalogHandler) CreateTechnology(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req catalog.CreateTechnologyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	tech, err := h.catalogService.CreateTechnology(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tech)
}

// ListTechnologies godoc
// @Summary      List technologies
// @Tags         catalog
// @Produce      json
// @Param        search query string false "Name contains"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]catalog.TechnologyResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /technologies [get]
func (h *CatalogHandler) ListTechnologies(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	page, err := h.catalogService.ListTechnologies(c.Request.Context(), actor, listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ApproveTechnology godoc
// @Summary      Approve a technology
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Technology ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalog.TechnologyResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /technologies/{id}/approve [post]
func (h *CatalogHandler) ApproveTechnology(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	tech, err := h.catalogService.ApproveTechnology(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tech)
}

// ListExpertise godoc
// @Summary      List expertise levels
// @Tags         catalog
// @Produce      json
// @Success      200 {object} dto.Response{data=[]string}
// @Security     BearerAuth
// @Router       /expertise [get]
func (h *CatalogHandler) ListExpertise(c *gin.Context) {
	h.Success(c, h.catalogService.ListExpertise())
}

// CreateTimeZone godoc
// @Summary      Add a time zone
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body catalog.CreateTimeZoneRequest true "IANA zone name"
// @Success      201 {object} dto.Response{data=catalog.TimeZoneResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /timezones [post]
func (h *CatalogHandler) CreateTimeZone(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req catalog.CreateTimeZoneRequest
	if !h.bindJSON(c, &req) {
		return
	}
	zone, err := h.catalogService.CreateTimeZone(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, zone)
}

// ListTimeZones godoc
// @Summary      List time zones
// @Tags         catalog
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalog.TimeZoneResponse}
// @Security     BearerAuth
// @Router       /timezones [get]
func (h *CatalogHandler) ListTimeZones(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	zones, err := h.catalogService.ListTimeZones(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, zones)
}
