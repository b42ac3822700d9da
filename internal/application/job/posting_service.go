// Package job implements the hiring workflow: postings, invitations, proposals and milestones.
package job

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PostingService manages job postings
type PostingService struct {
	postingRepo job.JobPostingRepository
	techRepo    catalog.TechnologyRepository
	tzRepo      catalog.TimeZoneRepository
	events      shared.EventPublisher
	settings    Settings
	logger      *zap.Logger
}

// NewPostingService creates a new PostingService
func NewPostingService(
	postingRepo job.JobPostingRepository,
	techRepo catalog.TechnologyRepository,
	tzRepo catalog.TimeZoneRepository,
	events shared.EventPublisher,
	settings Settings,
	logger *zap.Logger,
) *PostingService {
	return &PostingService{
		postingRepo: postingRepo,
		techRepo:    techRepo,
		tzRepo:      tzRepo,
		events:      events,
		settings:    settings,
		logger:      logger,
	}
}

// CreatePosting publishes an OPEN posting for a verified client
func (s *PostingService) CreatePosting(ctx context.Context, actor identity.Actor, req CreatePostingRequest) (*PostingResponse, error) {
	if err := actor.RequireVerified(identity.RoleClient); err != nil {
		return nil, err
	}

	posting, err := job.NewJobPosting(actor.UserID, job.NewPostingInput{
		Title:                   req.Title,
		Description:             req.Description,
		Technologies:            req.Technologies,
		TimeZones:               req.TimeZones,
		ProjectSize:             req.ProjectSize,
		BudgetType:              req.BudgetType,
		ExpertiseLevels:         req.Expertise,
		Duration:                req.Duration,
		MaximumBudget:           req.MaximumBudget,
		MaximumHourlyRate:       req.MaximumHourlyRate,
		MinimumHourlyRate:       req.MinimumHourlyRate,
		PreferredCoderResidence: req.PreferredCoderResidence,
	})
	if err != nil {
		return nil, err
	}
	if err := s.checkCatalog(ctx, posting); err != nil {
		return nil, err
	}

	if err := s.postingRepo.Create(ctx, posting); err != nil {
		return nil, err
	}
	appshared.PublishEvents(ctx, s.events, s.logger, posting)

	s.logger.Info("Job posting created",
		zap.String("posting_id", posting.ID.String()),
		zap.String("client_id", actor.UserID.String()),
		zap.String("budget_type", string(posting.BudgetType)))

	resp := ToPostingResponse(posting)
	return &resp, nil
}

// checkCatalog rejects technologies and time zones that are not in the catalog
func (s *PostingService) checkCatalog(ctx context.Context, posting *job.JobPosting) error {
	techs, err := s.techRepo.FindByNames(ctx, posting.Technologies)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(techs))
	for _, t := range techs {
		known[t.Name] = struct{}{}
	}
	var verrs shared.ValidationErrors
	if missing := missingNames(posting.Technologies, known); len(missing) > 0 {
		verrs.Add("technologies", "Unknown technology: "+strings.Join(missing, ", "))
	}

	zones, err := s.tzRepo.FindByNames(ctx, posting.TimeZones)
	if err != nil {
		return err
	}
	known = make(map[string]struct{}, len(zones))
	for _, z := range zones {
		known[z.Name] = struct{}{}
	}
	if missing := missingNames(posting.TimeZones, known); len(missing) > 0 {
		verrs.Add("timezones", "Unknown timezone: "+strings.Join(missing, ", "))
	}
	return verrs.Err()
}

func missingNames(names []string, known map[string]struct{}) []string {
	var missing []string
	for _, n := range names {
		if _, ok := known[n]; !ok {
			missing = append(missing, n)
		}
	}
	sort.Strings(missing)
	return missing
}

// UpdatePostingStatus changes the status of a posting owned by the actor
func (s *PostingService) UpdatePostingStatus(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdatePostingStatusRequest) (*PostingResponse, error) {
	if err := actor.RequireVerified(identity.RoleClient); err != nil {
		return nil, err
	}
	party := job.ClientParty{}
	posting, err := s.postingRepo.FindScoped(ctx, id, party.PostingScope(actor.UserID))
	if err != nil {
		return nil, err
	}
	if err := posting.ChangeStatus(actor.UserID, req.Status); err != nil {
		return nil, err
	}
	if err := s.postingRepo.Update(ctx, posting); err != nil {
		return nil, err
	}
	appshared.PublishEvents(ctx, s.events, s.logger, posting)

	resp := ToPostingResponse(posting)
	return &resp, nil
}

// GetPosting returns a posting visible to the actor
func (s *PostingService) GetPosting(ctx context.Context, actor identity.Actor, id uuid.UUID) (*PostingResponse, error) {
	party, err := verifiedParty(actor)
	if err != nil {
		return nil, err
	}
	posting, err := s.postingRepo.FindScoped(ctx, id, party.PostingScope(actor.UserID))
	if err != nil {
		return nil, err
	}
	resp := ToPostingResponse(posting)
	return &resp, nil
}

// ListPostings lists postings visible to the actor
func (s *PostingService) ListPostings(ctx context.Context, actor identity.Actor, filter job.PostingFilter) (*shared.Paginated[PostingResponse], error) {
	party, err := verifiedParty(actor)
	if err != nil {
		return nil, err
	}
	filter.Filter = s.settings.PageLimits.Normalize(filter.Filter)
	postings, total, err := s.postingRepo.FindAll(ctx, party.PostingScope(actor.UserID), filter)
	if err != nil {
		return nil, err
	}
	items := make([]PostingResponse, len(postings))
	for i, p := range postings {
		items[i] = ToPostingResponse(p)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// verifiedParty resolves the party of a verified client or coder
func verifiedParty(actor identity.Actor) (job.Party, error) {
	if err := actor.RequireVerified(identity.RoleClient, identity.RoleCoder); err != nil {
		return nil, err
	}
	return job.PartyFor(actor)
}

// authenticatedParty resolves the party of any signed in client or coder
func authenticatedParty(actor identity.Actor) (job.Party, error) {
	if err := actor.Require(identity.RoleClient, identity.RoleCoder); err != nil {
		return nil, err
	}
	return job.PartyFor(actor)
}
