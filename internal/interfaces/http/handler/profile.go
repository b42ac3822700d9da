package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hirecoder/backend/internal/application/profile"
)

// ProfileHandler serves the caller's skills and certifications
type ProfileHandler struct {
	BaseHandler
	profileService *profile.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// AddSkill godoc
// @Summary      Add a skill
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profile.AddSkillRequest true "Skill"
// @Success      201 {object} dto.Response{data=profile.SkillResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/skills [post]
func (h *ProfileHandler) AddSkill(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req profile.AddSkillRequest
	if !h.bindJSON(c, &req) {
		return
	}
	skill, err := h.profileService.AddSkill(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, skill)
}

// ListSkills godoc
// @Summary      List my skills
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=[]profile.SkillResponse}
// @Security     BearerAuth
// @Router       /profile/skills [get]
func (h *ProfileHandler) ListSkills(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	skills, err := h.profileService.ListSkills(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, skills)
}

// RemoveSkill godoc
// @Summary      Remove a skill
// @Tags         profile
// @Param        id path string true "Skill ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/skills/{id} [delete]
func (h *ProfileHandler) RemoveSkill(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.profileService.RemoveSkill(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddCertification godoc
// @Summary      Add a certification
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profile.AddCertificationRequest true "Certification"
// @Success      201 {object} dto.Response{data=profile.CertificationResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/certifications [post]
func (h *ProfileHandler) AddCertification(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req profile.AddCertificationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cert, err := h.profileService.AddCertification(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, cert)
}

// ListCertifications godoc
// @Summary      List my certifications
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=[]profile.CertificationResponse}
// @Security     BearerAuth
// @Router       /profile/certifications [get]
func (h *ProfileHandler) ListCertifications(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	certs, err := h.profileService.ListCertifications(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, certs)
}

// RemoveCertification godoc
// @Summary      Remove a certification
// @Tags         profile
// @Param        id path string true "Certification ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profile/certifications/{id} [delete]
func (h *ProfileHandler) RemoveCertification(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.profileService.RemoveCertification(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
