package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hirecoder/backend/internal/application/profile"
	domainprofile "github.com/hirecoder/backend/internal/domain/profile"
)

// ProfileDetailsHandler serves the caller's address, links, company,
// experience, education and profile files
type ProfileDetailsHandler struct {
	BaseHandler
	details *profile.DetailsService
}

// NewProfileDetailsHandler creates a new profile details handler
func NewProfileDetailsHandler(details *profile.DetailsService) *ProfileDetailsHandler {
	return &ProfileDetailsHandler{details: details}
}

// saved answers 201 for the first save of a record and 200 afterwards
func (h *ProfileDetailsHandler) saved(c *gin.Context, data any, created bool, err error) {
	switch {
	case err != nil:
		h.HandleError(c, err)
	case created:
		h.Created(c, data)
	default:
		h.Success(c, data)
	}
}

// GetAddress godoc
// @Summary      My address
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=profile.AddressResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/address [get]
func (h *ProfileDetailsHandler) GetAddress(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	resp, err := h.details.GetAddress(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SaveAddress godoc
// @Summary      Create or replace my address
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profile.AddressRequest true "Address"
// @Success      200 {object} dto.Response{data=profile.AddressResponse}
// @Success      201 {object} dto.Response{data=profile.AddressResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/address [put]
func (h *ProfileDetailsHandler) SaveAddress(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req profile.AddressRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, created, err := h.details.SaveAddress(c.Request.Context(), actor, req)
	h.saved(c, resp, created, err)
}

// GetDigitalPresence godoc
// @Summary      My profile links
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=profile.DigitalPresenceResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/digital-presence [get]
func (h *ProfileDetailsHandler) GetDigitalPresence(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	resp, err := h.details.GetDigitalPresence(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SaveDigitalPresence godoc
// @Summary      Create or replace my profile links
// @Description  Coders keep LinkedIn, GitHub and Stack Overflow links. Clients keep the remaining ones.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profile.DigitalPresenceRequest true "Links"
// @Success      200 {object} dto.Response{data=profile.DigitalPresenceResponse}
// @Success      201 {object} dto.Response{data=profile.DigitalPresenceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/digital-presence [put]
func (h *ProfileDetailsHandler) SaveDigitalPresence(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req profile.DigitalPresenceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, created, err := h.details.SaveDigitalPresence(c.Request.Context(), actor, req)
	h.saved(c, resp, created, err)
}

// GetCompanyDetails godoc
// @Summary      My company
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=profile.CompanyDetailsResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/company [get]
func (h *ProfileDetailsHandler) GetCompanyDetails(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	resp, err := h.details.GetCompanyDetails(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SaveCompanyDetails godoc
// @Summary      Create or replace my company (client)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profile.CompanyDetailsRequest true "Company"
// @Success      200 {object} dto.Response{data=profile.CompanyDetailsResponse}
// @Success      201 {object} dto.Response{data=profile.CompanyDetailsResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/company [put]
func (h *ProfileDetailsHandler) SaveCompanyDetails(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req profile.CompanyDetailsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, created, err := h.details.SaveCompanyDetails(c.Request.Context(), actor, req)
	h.saved(c, resp, created, err)
}

// GetExperience godoc
// @Summary      My skills and experience (coder)
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=profile.ExperienceResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/experience [get]
func (h *ProfileDetailsHandler) GetExperience(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	resp, err := h.details.GetExperience(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SaveExperience godoc
// @Summary      Create or replace my experience summary (coder)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profile.ExperienceRequest true "Experience"
// @Success      200 {object} dto.Response{data=profile.ExperienceResponse}
// @Success      201 {object} dto.Response{data=profile.ExperienceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/experience [put]
func (h *ProfileDetailsHandler) SaveExperience(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req profile.ExperienceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, created, err := h.details.SaveExperience(c.Request.Context(), actor, req)
	h.saved(c, resp, created, err)
}

// ListDegrees godoc
// @Summary      My degrees (coder)
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=[]profile.DegreeResponse}
// @Security     BearerAuth
// @Router       /profile/degrees [get]
func (h *ProfileDetailsHandler) ListDegrees(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	degrees, err := h.details.ListDegrees(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, degrees)
}

// AddDegree godoc
// @Summary      Add a degree (coder)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profile.AddDegreeRequest true "Degree"
// @Success      201 {object} dto.Response{data=profile.DegreeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/degrees [post]
func (h *ProfileDetailsHandler) AddDegree(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req profile.AddDegreeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	degree, err := h.details.AddDegree(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, degree)
}

// RemoveDegree godoc
// @Summary      Remove a degree (coder)
// @Tags         profile
// @Param        id path string true "Degree ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/degrees/{id} [delete]
func (h *ProfileDetailsHandler) RemoveDegree(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.details.RemoveDegree(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetEducation godoc
// @Summary      My portfolio, resume and degrees (coder)
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=profile.EducationResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/education [get]
func (h *ProfileDetailsHandler) GetEducation(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	resp, err := h.details.GetEducation(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SaveEducation godoc
// @Summary      Create or replace my portfolio and resume (coder)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profile.EducationRequest true "Education"
// @Success      200 {object} dto.Response{data=profile.EducationResponse}
// @Success      201 {object} dto.Response{data=profile.EducationResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/education [put]
func (h *ProfileDetailsHandler) SaveEducation(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req profile.EducationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, created, err := h.details.SaveEducation(c.Request.Context(), actor, req)
	h.saved(c, resp, created, err)
}

// RequestFileUpload godoc
// @Summary      Presigned upload URL for a logo, profile picture or resume
// @Description  Store the returned key with the company, experience or education record.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profile.FileUploadRequest true "File"
// @Success      200 {object} dto.Response{data=profile.FileURLResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/files [post]
func (h *ProfileDetailsHandler) RequestFileUpload(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req profile.FileUploadRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.details.RequestFileUpload(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetFileURL godoc
// @Summary      Presigned download URL for a stored profile file
// @Tags         profile
// @Produce      json
// @Param        kind path string true "logo, profile_picture or resume"
// @Success      200 {object} dto.Response{data=profile.FileURLResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/files/{kind} [get]
func (h *ProfileDetailsHandler) GetFileURL(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	kind := domainprofile.FileKind(c.Param("kind"))
	if !kind.IsValid() {
		h.BadRequest(c, "Kind must be logo, profile_picture or resume")
		return
	}
	resp, err := h.details.GetFileURL(c.Request.Context(), actor, kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
