package job

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProposalStatus is the negotiation status of a proposal
type ProposalStatus string

const (
	ProposalStatusSent             ProposalStatus = "SENT"
	ProposalStatusAcceptedByClient ProposalStatus = "ACCEPTED_BY_CLIENT"
	ProposalStatusRejectedByClient ProposalStatus = "REJECTED_BY_CLIENT"
	ProposalStatusAcceptedByCoder  ProposalStatus = "ACCEPTED_BY_CODER"
	ProposalStatusRejectedByCoder  ProposalStatus = "REJECTED_BY_CODER"
)

// IsValid reports whether s is a known proposal status
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusSent, ProposalStatusAcceptedByClient, ProposalStatusRejectedByClient,
		ProposalStatusAcceptedByCoder, ProposalStatusRejectedByCoder:
		return true
	}
	return false
}

// MinimumHourlyRate is the lowest hourly rate a proposal may ask for
var MinimumHourlyRate = decimal.NewFromInt(1)

// ProposalFees holds the price breakdown shown to both parties
type ProposalFees struct {
	CoderFee              decimal.Decimal
	PlatformFee           decimal.Decimal
	PlatformFeePercentage decimal.Decimal
	TotalProjectCost      decimal.Decimal
}

// ComputeFees splits base into the coder's share and the platform fee on top
func ComputeFees(base, percentage decimal.Decimal) ProposalFees {
	coderFee := base.Round(2)
	platformFee := coderFee.Mul(percentage).Div(decimal.NewFromInt(100)).Round(2)
	return ProposalFees{
		CoderFee:              coderFee,
		PlatformFee:           platformFee,
		PlatformFeePercentage: percentage.Round(2),
		TotalProjectCost:      coderFee.Add(platformFee),
	}
}

// JobProposal is a coder's bid on a posting
type JobProposal struct {
	shared.BaseAggregateRoot
	JobPostingID        uuid.UUID
	ClientID            uuid.UUID
	CoderID             uuid.UUID
	Description         string
	ProposalType        BudgetType
	HourlyRate          *decimal.Decimal
	AvailabilityPerWeek *int
	EstimateDays        *int
	AttachmentKey       string
	Fees                ProposalFees
	IsSubmitted         bool
	Status              ProposalStatus
}

// NewProposalInput carries the coder-supplied proposal fields
type NewProposalInput struct {
	Description         string
	HourlyRate          *decimal.Decimal
	AvailabilityPerWeek *int
	EstimateDays        *int
}

// NewJobProposal creates a SENT proposal. The proposal type always mirrors the
// posting's budget type; hourly fields are dropped for fixed-price postings.
func NewJobProposal(posting *JobPosting, coderID uuid.UUID, in NewProposalInput, feePercentage decimal.Decimal) (*JobProposal, error) {
	if posting == nil {
		return nil, shared.NewValidationError("job_posting_id", "Job posting is required")
	}
	if !posting.Status.AcceptsApplicants() {
		return nil, shared.NewValidationError("job_posting_id", "Job posting is not accepting proposals")
	}
	if feePercentage.IsNegative() || feePercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_FEE_PERCENTAGE", "Platform fee percentage must be between 0 and 100")
	}

	var verrs shared.ValidationErrors
	description := strings.TrimSpace(in.Description)
	if description == "" {
		verrs.Add("proposal_description", "Proposal description is required")
	}
	if in.EstimateDays != nil && *in.EstimateDays <= 0 {
		verrs.Add("estimate_time", "Estimate must be a positive number of days")
	}

	p := &JobProposal{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		JobPostingID:      posting.ID,
		ClientID:          posting.ClientID,
		CoderID:           coderID,
		Description:       description,
		ProposalType:      posting.BudgetType,
		EstimateDays:      copyInt(in.EstimateDays),
		IsSubmitted:       true,
		Status:            ProposalStatusSent,
	}

	var base decimal.Decimal
	if posting.IsHourly() {
		if in.HourlyRate == nil {
			verrs.Add("hourly_rate", "Hourly rate cannot be empty when proposal type is hourly")
		} else if in.HourlyRate.LessThan(MinimumHourlyRate) {
			verrs.Add("hourly_rate", "Hourly rate must be at least 1.00")
		}
		if in.AvailabilityPerWeek == nil {
			verrs.Add("availability_per_week", "Availability per week cannot be empty when proposal type is hourly")
		} else if *in.AvailabilityPerWeek <= 0 || *in.AvailabilityPerWeek > 168 {
			verrs.Add("availability_per_week", "Availability per week must be between 1 and 168 hours")
		}
		if in.HourlyRate != nil {
			rate := in.HourlyRate.Round(2)
			p.HourlyRate = &rate
			base = rate
		}
		p.AvailabilityPerWeek = copyInt(in.AvailabilityPerWeek)
	} else if posting.MaximumBudget != nil {
		base = *posting.MaximumBudget
	}

	if err := verrs.Err(); err != nil {
		return nil, err
	}

	p.Fees = ComputeFees(base, feePercentage)
	p.AddDomainEvent(NewJobProposalSubmittedEvent(p))
	return p, nil
}

// IsVisibleTo reports whether the scope covers this proposal
func (p *JobProposal) IsVisibleTo(scope Scope) bool {
	switch {
	case scope.CoderID != uuid.Nil:
		return p.CoderID == scope.CoderID
	case scope.ClientID != uuid.Nil:
		return p.ClientID == scope.ClientID
	}
	return true
}

// ChangeStatus applies a status change by party. Each party may only set its
// own *_BY_CLIENT or *_BY_CODER statuses, and only on proposals it can see.
func (p *JobProposal) ChangeStatus(party Party, actorID uuid.UUID, status ProposalStatus) error {
	if !status.IsValid() {
		return shared.NewValidationError("status", "Invalid proposal status")
	}
	if !p.IsVisibleTo(party.Scope(actorID)) {
		return shared.NewDomainError("PROPOSAL_NOT_FOUND", "Job proposal not found")
	}
	if !party.CanSetProposalStatus(status) {
		return shared.NewDomainError("PROPOSAL_STATUS_NOT_ALLOWED",
			strings.ToLower(string(party.Role()))+" is not allowed to set status "+string(status))
	}
	if p.Status == status {
		return nil
	}
	old := p.Status
	p.Status = status
	p.Touch()
	p.IncrementVersion()
	p.AddDomainEvent(NewJobProposalStatusChangedEvent(p, old, actorID))
	return nil
}

// IsAcceptedByCoder reports whether the proposal triggers a contract
func (p *JobProposal) IsAcceptedByCoder() bool {
	return p.Status == ProposalStatusAcceptedByCoder
}

// AttachFile records the storage key of the proposal attachment
func (p *JobProposal) AttachFile(actorID uuid.UUID, key string) error {
	if p.CoderID != actorID {
		return shared.NewDomainError("PROPOSAL_NOT_FOUND", "Job proposal not found")
	}
	if strings.TrimSpace(key) == "" {
		return shared.NewValidationError("file_name", "Attachment key cannot be empty")
	}
	p.AttachmentKey = key
	p.Touch()
	return nil
}
