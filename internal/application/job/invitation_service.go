package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InvitationService manages invitations from clients to coders
type InvitationService struct {
	invitationRepo job.JobInvitationRepository
	postingRepo    job.JobPostingRepository
	userRepo       identity.UserRepository
	events         shared.EventPublisher
	metrics        appshared.MetricsRecorder
	settings       Settings
	logger         *zap.Logger
}

// NewInvitationService creates a new InvitationService
func NewInvitationService(
	invitationRepo job.JobInvitationRepository,
	postingRepo job.JobPostingRepository,
	userRepo identity.UserRepository,
	events shared.EventPublisher,
	metrics appshared.MetricsRecorder,
	settings Settings,
	logger *zap.Logger,
) *InvitationService {
	if metrics == nil {
		metrics = appshared.NoopMetrics{}
	}
	return &InvitationService{
		invitationRepo: invitationRepo,
		postingRepo:    postingRepo,
		userRepo:       userRepo,
		events:         events,
		metrics:        metrics,
		settings:       settings,
		logger:         logger,
	}
}

// SendInvitation invites a coder, by username, to bid on one of the actor's postings
func (s *InvitationService) SendInvitation(ctx context.Context, actor identity.Actor, req SendInvitationRequest) (*InvitationResponse, error) {
	if err := actor.Require(identity.RoleClient); err != nil {
		return nil, err
	}

	coder, err := s.userRepo.FindByUsername(ctx, req.CoderUsername)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("coder_username", "Coder not found")
		}
		return nil, err
	}
	if coder.Role != identity.RoleCoder {
		return nil, shared.NewValidationError("coder_username", "User is not a coder")
	}

	posting, err := s.postingRepo.FindByID(ctx, req.JobPostingID)
	if err != nil {
		return nil, err
	}
	inv, err := job.NewJobInvitation(posting, actor.UserID, coder.ID, req.Message)
	if err != nil {
		return nil, err
	}
	// the unique (coder, client, posting) index reports duplicates as INVITATION_ALREADY_EXISTS
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	s.metrics.InvitationSent(ctx)
	appshared.PublishEvents(ctx, s.events, s.logger, inv)

	s.logger.Info("Invitation sent",
		zap.String("invitation_id", inv.ID.String()),
		zap.String("posting_id", posting.ID.String()),
		zap.String("coder_id", coder.ID.String()))

	resp := ToInvitationResponse(inv)
	return &resp, nil
}

// UpdateInvitationStatus lets the invited coder read or decline an invitation
func (s *InvitationService) UpdateInvitationStatus(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateInvitationStatusRequest) (*InvitationResponse, error) {
	party, err := authenticatedParty(actor)
	if err != nil {
		return nil, err
	}
	if party.Role() != identity.RoleCoder {
		return nil, shared.NewDomainError("INVITATION_UPDATE_NOT_ALLOWED", "Only the invited coder can update an invitation")
	}

	inv, err := s.invitationRepo.FindScoped(ctx, id, party.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}
	if err := inv.ChangeStatus(party, actor.UserID, req.Status); err != nil {
		return nil, err
	}
	if err := s.invitationRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	appshared.PublishEvents(ctx, s.events, s.logger, inv)

	resp := ToInvitationResponse(inv)
	return &resp, nil
}

// GetInvitation returns an invitation sent or received by the actor
func (s *InvitationService) GetInvitation(ctx context.Context, actor identity.Actor, id uuid.UUID) (*InvitationResponse, error) {
	party, err := authenticatedParty(actor)
	if err != nil {
		return nil, err
	}
	inv, err := s.invitationRepo.FindScoped(ctx, id, party.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}
	resp := ToInvitationResponse(inv)
	return &resp, nil
}

// ListInvitations lists invitations sent or received by the actor
func (s *InvitationService) ListInvitations(ctx context.Context, actor identity.Actor, filter shared.Filter) (*shared.Paginated[InvitationResponse], error) {
	party, err := authenticatedParty(actor)
	if err != nil {
		return nil, err
	}
	filter = s.settings.PageLimits.Normalize(filter)
	invs, total, err := s.invitationRepo.FindAll(ctx, party.Scope(actor.UserID), filter)
	if err != nil {
		return nil, err
	}
	items := make([]InvitationResponse, len(invs))
	for i, inv := range invs {
		items[i] = ToInvitationResponse(inv)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ProposalSubmittedHandler moves invitations to PROPOSAL_SUBMITTED once the
// invited coder bids on the posting.
type ProposalSubmittedHandler struct {
	invitationRepo job.JobInvitationRepository
	logger         *zap.Logger
}

// NewProposalSubmittedHandler creates a new ProposalSubmittedHandler
func NewProposalSubmittedHandler(invitationRepo job.JobInvitationRepository, logger *zap.Logger) *ProposalSubmittedHandler {
	return &ProposalSubmittedHandler{invitationRepo: invitationRepo, logger: logger}
}

// EventTypes implements shared.EventHandler
func (h *ProposalSubmittedHandler) EventTypes() []string {
	return []string{job.EventTypeJobProposalSubmitted}
}

// Handle implements shared.EventHandler
func (h *ProposalSubmittedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	submitted, ok := event.(*job.JobProposalSubmittedEvent)
	if !ok {
		return nil
	}
	invs, err := h.invitationRepo.FindByPostingAndCoder(ctx, submitted.JobPostingID, submitted.CoderID)
	if err != nil {
		return err
	}
	for _, inv := range invs {
		if inv.Status.IsTerminal() {
			continue
		}
		if err := inv.MarkProposalSubmitted(submitted.CoderID); err != nil {
			return err
		}
		if err := h.invitationRepo.Update(ctx, inv); err != nil {
			return err
		}
		h.logger.Debug("Invitation answered by proposal",
			zap.String("invitation_id", inv.ID.String()),
			zap.String("proposal_id", submitted.AggregateID().String()))
	}
	return nil
}

var _ shared.EventHandler = (*ProposalSubmittedHandler)(nil)
