package job

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PostingFilter narrows job posting listings
type PostingFilter struct {
	shared.Filter
	Title                   string
	Description             string
	Technology              string
	ProjectSize             ProjectSize
	BudgetType              BudgetType
	Expertise               catalog.ExpertiseLevel
	Duration                Duration
	TimeZone                string
	Status                  PostingStatus
	MaximumBudgetLTE        *decimal.Decimal
	MaximumHourlyRateLTE    *int
	MinimumHourlyRateGTE    *int
	PreferredCoderResidence Residence
}

// JobPostingRepository persists job postings
type JobPostingRepository interface {
	Create(ctx context.Context, p *JobPosting) error
	Update(ctx context.Context, p *JobPosting) error
	FindByID(ctx context.Context, id uuid.UUID) (*JobPosting, error)
	FindScoped(ctx context.Context, id uuid.UUID, scope Scope) (*JobPosting, error)
	FindAll(ctx context.Context, scope Scope, filter PostingFilter) ([]*JobPosting, int64, error)
	// SampleOpen returns up to limit OPEN postings in random order
	SampleOpen(ctx context.Context, limit int) ([]*JobPosting, error)
}

// JobInvitationRepository persists invitations. Create must fail with
// ALREADY_EXISTS for a duplicate (coder, client, posting) triple.
type JobInvitationRepository interface {
	Create(ctx context.Context, i *JobInvitation) error
	Update(ctx context.Context, i *JobInvitation) error
	FindScoped(ctx context.Context, id uuid.UUID, scope Scope) (*JobInvitation, error)
	FindAll(ctx context.Context, scope Scope, filter shared.Filter) ([]*JobInvitation, int64, error)
	FindByPostingAndCoder(ctx context.Context, postingID, coderID uuid.UUID) ([]*JobInvitation, error)
}

// ProposalFilter narrows proposal listings
type ProposalFilter struct {
	shared.Filter
	Status       ProposalStatus
	ProposalType BudgetType
	JobPostingID *uuid.UUID
}

// JobProposalRepository persists proposals
type JobProposalRepository interface {
	Create(ctx context.Context, p *JobProposal) error
	Update(ctx context.Context, p *JobProposal) error
	FindByID(ctx context.Context, id uuid.UUID) (*JobProposal, error)
	FindScoped(ctx context.Context, id uuid.UUID, scope Scope) (*JobProposal, error)
	FindAll(ctx context.Context, scope Scope, filter ProposalFilter) ([]*JobProposal, int64, error)
}

// MilestoneRepository persists milestones
type MilestoneRepository interface {
	Create(ctx context.Context, m *Milestone) error
	Update(ctx context.Context, m *Milestone) error
	FindScoped(ctx context.Context, id uuid.UUID, scope Scope) (*Milestone, error)
	FindAll(ctx context.Context, scope Scope, filter shared.Filter) ([]*Milestone, int64, error)
}
