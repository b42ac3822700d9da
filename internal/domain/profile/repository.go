package profile

import (
	"context"

	"github.com/google/uuid"
)

// SkillRepository persists skills
type SkillRepository interface {
	Create(ctx context.Context, s *Skill) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*Skill, error)
	FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*Skill, error)
	// DeleteForUser removes a skill owned by userID; other users' rows are not found
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// CertificationRepository persists certifications
type CertificationRepository interface {
	Create(ctx context.Context, c *Certification) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*Certification, error)
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// AddressRepository persists the one address per user. Create fails with
// ALREADY_EXISTS when the user has one.
type AddressRepository interface {
	Create(ctx context.Context, a *Address) error
	Update(ctx context.Context, a *Address) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*Address, error)
	FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*Address, error)
}

// DigitalPresenceRepository persists the one set of links per user
type DigitalPresenceRepository interface {
	Create(ctx context.Context, d *DigitalPresence) error
	Update(ctx context.Context, d *DigitalPresence) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*DigitalPresence, error)
}

// CompanyDetailsRepository persists the one company per client
type CompanyDetailsRepository interface {
	Create(ctx context.Context, c *CompanyDetails) error
	Update(ctx context.Context, c *CompanyDetails) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*CompanyDetails, error)
	FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*CompanyDetails, error)
}

// CoderExperienceRepository persists the one experience summary per coder
type CoderExperienceRepository interface {
	Create(ctx context.Context, e *CoderExperience) error
	Update(ctx context.Context, e *CoderExperience) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*CoderExperience, error)
	FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*CoderExperience, error)
}

// DegreeRepository persists degrees
type DegreeRepository interface {
	Create(ctx context.Context, d *Degree) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*Degree, error)
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// EducationRepository persists the one education record per coder
type EducationRepository interface {
	Create(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*Education, error)
}
