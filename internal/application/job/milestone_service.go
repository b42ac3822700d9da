package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MilestoneService manages milestones on fixed-price postings
type MilestoneService struct {
	milestoneRepo job.MilestoneRepository
	postingRepo   job.JobPostingRepository
	events        shared.EventPublisher
	settings      Settings
	logger        *zap.Logger
	now           func() time.Time
}

// NewMilestoneService creates a new MilestoneService
func NewMilestoneService(
	milestoneRepo job.MilestoneRepository,
	postingRepo job.JobPostingRepository,
	events shared.EventPublisher,
	settings Settings,
	logger *zap.Logger,
) *MilestoneService {
	return &MilestoneService{
		milestoneRepo: milestoneRepo,
		postingRepo:   postingRepo,
		events:        events,
		settings:      settings,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateMilestone proposes a milestone on a fixed-price posting
func (s *MilestoneService) CreateMilestone(ctx context.Context, actor identity.Actor, req CreateMilestoneRequest) (*MilestoneResponse, error) {
	if err := actor.RequireVerified(identity.RoleCoder); err != nil {
		return nil, err
	}
	posting, err := s.postingRepo.FindByID(ctx, req.JobPostingID)
	if err != nil {
		return nil, err
	}
	m, err := job.NewMilestone(posting, actor.UserID, job.NewMilestoneInput{
		Name:         req.Name,
		Description:  req.Description,
		Days:         req.Days,
		FundReleased: req.FundReleased,
	})
	if err != nil {
		return nil, err
	}
	if err := s.milestoneRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	appshared.PublishEvents(ctx, s.events, s.logger, m)

	resp := ToMilestoneResponse(m)
	return &resp, nil
}

// UpdateMilestoneStatus moves a milestone as the actor's side allows
func (s *MilestoneService) UpdateMilestoneStatus(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateMilestoneStatusRequest) (*MilestoneResponse, error) {
	party, err := verifiedParty(actor)
	if err != nil {
		return nil, err
	}
	m, err := s.milestoneRepo.FindScoped(ctx, id, party.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}
	if err := m.ChangeStatus(party, actor.UserID, req.Status, req.CompletedDescription, s.now()); err != nil {
		return nil, err
	}
	if err := s.milestoneRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info("Milestone status changed",
		zap.String("milestone_id", m.ID.String()),
		zap.String("status", string(m.Status)),
		zap.String("role", party.Role().String()))

	resp := ToMilestoneResponse(m)
	return &resp, nil
}

// GetMilestone returns a milestone visible to the actor
func (s *MilestoneService) GetMilestone(ctx context.Context, actor identity.Actor, id uuid.UUID) (*MilestoneResponse, error) {
	party, err := verifiedParty(actor)
	if err != nil {
		return nil, err
	}
	m, err := s.milestoneRepo.FindScoped(ctx, id, party.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}
	resp := ToMilestoneResponse(m)
	return &resp, nil
}

// ListMilestones lists milestones on a client's postings, or a coder's own milestones
func (s *MilestoneService) ListMilestones(ctx context.Context, actor identity.Actor, filter shared.Filter) (*shared.Paginated[MilestoneResponse], error) {
	party, err := verifiedParty(actor)
	if err != nil {
		return nil, err
	}
	filter = s.settings.PageLimits.Normalize(filter)
	ms, total, err := s.milestoneRepo.FindAll(ctx, party.Scope(actor.UserID), filter)
	if err != nil {
		return nil, err
	}
	items := make([]MilestoneResponse, len(ms))
	for i, m := range ms {
		items[i] = ToMilestoneResponse(m)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}
