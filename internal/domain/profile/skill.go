package profile

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// SkillType ranks a skill inside a coder profile
type SkillType string

const (
	SkillTypePrimary   SkillType = "PRIMARY"
	SkillTypeSecondary SkillType = "SECONDARY"
	SkillTypeOther     SkillType = "OTHER"
)

// IsValid reports whether t is a known skill type
func (t SkillType) IsValid() bool {
	return t == SkillTypePrimary || t == SkillTypeSecondary || t == SkillTypeOther
}

// Skill is one technology a user claims experience in
type Skill struct {
	shared.BaseEntity
	UserID            uuid.UUID
	Technology        string
	YearsOfExperience int
	SkillType         SkillType
	ExpertiseLevel    catalog.ExpertiseLevel
}

// NewSkill creates a skill entry for userID
func NewSkill(userID uuid.UUID, technology string, years int, skillType SkillType, level catalog.ExpertiseLevel) (*Skill, error) {
	var verrs shared.ValidationErrors
	technology = catalog.NormalizeTechnologyName(technology)
	if technology == "" {
		verrs.Add("technology", "Technology is required")
	}
	if years < 0 || years > 50 {
		verrs.Add("years_of_experience", "Years of experience must be between 0 and 50")
	}
	if !skillType.IsValid() {
		verrs.Add("skill_type", "Skill type must be PRIMARY, SECONDARY or OTHER")
	}
	if !level.IsValid() {
		verrs.Add("expertise_level", "Expertise level must be BEGINNER, INTERMEDIATE or EXPERT")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}
	return &Skill{
		BaseEntity:        shared.NewBaseEntity(),
		UserID:            userID,
		Technology:        technology,
		YearsOfExperience: years,
		SkillType:         skillType,
		ExpertiseLevel:    level,
	}, nil
}
