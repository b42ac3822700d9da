// Package profile manages the skills and certifications listed on a user's profile.
package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/profile"
	"github.com/hirecoder/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProfileService handles profile entries owned by the acting user
type ProfileService struct {
	skillRepo profile.SkillRepository
	certRepo  profile.CertificationRepository
	userRepo  identity.UserRepository
	techRepo  catalog.TechnologyRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	skillRepo profile.SkillRepository,
	certRepo profile.CertificationRepository,
	userRepo identity.UserRepository,
	techRepo catalog.TechnologyRepository,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		skillRepo: skillRepo,
		certRepo:  certRepo,
		userRepo:  userRepo,
		techRepo:  techRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// AddSkill adds a skill for a known technology. The first skill completes the profile.
func (s *ProfileService) AddSkill(ctx context.Context, actor identity.Actor, req AddSkillRequest) (*SkillResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	skill, err := profile.NewSkill(actor.UserID, req.Technology, req.YearsOfExperience, req.SkillType, req.ExpertiseLevel)
	if err != nil {
		return nil, err
	}

	techs, err := s.techRepo.FindByNames(ctx, []string{skill.Technology})
	if err != nil {
		return nil, err
	}
	if len(techs) == 0 {
		return nil, shared.NewValidationError("technology", "Unknown technology: "+skill.Technology)
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	s.markProfileComplete(ctx, actor.UserID)

	resp := ToSkillResponse(skill)
	return &resp, nil
}

// ListSkills returns the caller's skills
func (s *ProfileService) ListSkills(ctx context.Context, actor identity.Actor) ([]SkillResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	skills, err := s.skillRepo.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]SkillResponse, len(skills))
	for i, sk := range skills {
		out[i] = ToSkillResponse(sk)
	}
	return out, nil
}

// RemoveSkill deletes one of the caller's skills
func (s *ProfileService) RemoveSkill(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if actor.UserID == uuid.Nil {
		return shared.ErrUnauthorized
	}
	return s.skillRepo.DeleteForUser(ctx, actor.UserID, id)
}

// AddCertification adds a certification to the caller's profile
func (s *ProfileService) AddCertification(ctx context.Context, actor identity.Actor, req AddCertificationRequest) (*CertificationResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	cert, err := profile.NewCertification(actor.UserID, req.Name, req.Year, req.CertificateURL, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.certRepo.Create(ctx, cert); err != nil {
		return nil, err
	}
	resp := ToCertificationResponse(cert)
	return &resp, nil
}

// ListCertifications returns the caller's certifications
func (s *ProfileService) ListCertifications(ctx context.Context, actor identity.Actor) ([]CertificationResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	certs, err := s.certRepo.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]CertificationResponse, len(certs))
	for i, c := range certs {
		out[i] = ToCertificationResponse(c)
	}
	return out, nil
}

// RemoveCertification deletes one of the caller's certifications
func (s *ProfileService) RemoveCertification(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if actor.UserID == uuid.Nil {
		return shared.ErrUnauthorized
	}
	return s.certRepo.DeleteForUser(ctx, actor.UserID, id)
}

// markProfileComplete is best effort; the skill is already stored
func (s *ProfileService) markProfileComplete(ctx context.Context, userID uuid.UUID) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to load user for profile completion", zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	if user.IsProfileComplete {
		return
	}
	user.MarkProfileComplete()
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Warn("Failed to mark profile complete", zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	s.logger.Info("Profile completed", zap.String("user_id", userID.String()))
}
