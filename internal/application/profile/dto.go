package profile

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/profile"
)

// AddSkillRequest represents a request to add a skill to the caller's profile
type AddSkillRequest struct {
	Technology        string                 `json:"technology" binding:"required,max=255"`
	YearsOfExperience int                    `json:"years_of_experience" binding:"min=0,max=50"`
	SkillType         profile.SkillType      `json:"skill_type" binding:"required,oneof=PRIMARY SECONDARY OTHER"`
	ExpertiseLevel    catalog.ExpertiseLevel `json:"expertise_level" binding:"required,oneof=BEGINNER INTERMEDIATE EXPERT"`
}

// SkillResponse represents a skill in API responses
type SkillResponse struct {
	ID                uuid.UUID              `json:"id"`
	Technology        string                 `json:"technology"`
	YearsOfExperience int                    `json:"years_of_experience"`
	SkillType         profile.SkillType      `json:"skill_type"`
	ExpertiseLevel    catalog.ExpertiseLevel `json:"expertise_level"`
	CreatedAt         time.Time              `json:"created_at"`
}

// ToSkillResponse converts a domain Skill to SkillResponse
func ToSkillResponse(s *profile.Skill) SkillResponse {
	return SkillResponse{
		ID:                s.ID,
		Technology:        s.Technology,
		YearsOfExperience: s.YearsOfExperience,
		SkillType:         s.SkillType,
		ExpertiseLevel:    s.ExpertiseLevel,
		CreatedAt:         s.CreatedAt,
	}
}

// AddCertificationRequest represents a request to add a certification
type AddCertificationRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Year           int    `json:"year" binding:"required"`
	CertificateURL string `json:"certificate_url" binding:"omitempty,url"`
}

// CertificationResponse represents a certification in API responses
type CertificationResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Year           int       `json:"year"`
	CertificateURL string    `json:"certificate_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToCertificationResponse converts a domain Certification to CertificationResponse
func ToCertificationResponse(c *profile.Certification) CertificationResponse {
	return CertificationResponse{
		ID:             c.ID,
		Name:           c.Name,
		Year:           c.Year,
		CertificateURL: c.CertificateURL,
		CreatedAt:      c.CreatedAt,
	}
}
