package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// JobContract is the agreement created when a coder accepts a proposal
type JobContract struct {
	shared.BaseAggregateRoot
	ProposalID            uuid.UUID
	JobPostingID          uuid.UUID
	ClientID              uuid.UUID
	CoderID               uuid.UUID
	Name                  string
	StartDate             time.Time
	EndDate               *time.Time
	IsActive              bool
	Rating                *int
	Feedback              string
	TotalAmountEarned     decimal.Decimal
	TotalHoursWorked      decimal.Decimal
	HourlyRate            *decimal.Decimal
	PlatformFeePercentage decimal.Decimal
	IsHourlyRate          bool
}

// Parties names both sides of a contract for display
type Parties struct {
	ClientUsername string
	CoderUsername  string
	PostingTitle   string
}

// NewJobContract builds the contract for a proposal accepted by its coder.
// The contract is open ended and active from today.
func NewJobContract(proposal *job.JobProposal, parties Parties, feePercentage decimal.Decimal, today time.Time) (*JobContract, error) {
	if proposal == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Proposal is required")
	}
	if !proposal.IsAcceptedByCoder() {
		return nil, shared.NewDomainError("INVALID_STATE", "Contract requires a proposal accepted by the coder")
	}
	c := &JobContract{
		BaseAggregateRoot:     shared.NewBaseAggregateRoot(),
		ProposalID:            proposal.ID,
		JobPostingID:          proposal.JobPostingID,
		ClientID:              proposal.ClientID,
		CoderID:               proposal.CoderID,
		Name:                  fmt.Sprintf("%s_%s_%s", parties.ClientUsername, parties.CoderUsername, parties.PostingTitle),
		StartDate:             DateOf(today),
		IsActive:              true,
		TotalAmountEarned:     decimal.Zero,
		TotalHoursWorked:      decimal.Zero,
		PlatformFeePercentage: feePercentage,
		IsHourlyRate:          proposal.ProposalType == job.BudgetTypeHourly,
	}
	if proposal.HourlyRate != nil {
		rate := *proposal.HourlyRate
		c.HourlyRate = &rate
	}
	c.AddDomainEvent(NewJobContractCreatedEvent(c))
	return c, nil
}

// DuplicateContractError reports an existing contract for the same coder and posting
func DuplicateContractError(existingProposalStatus job.ProposalStatus) *shared.DomainError {
	return shared.NewDomainError("CONTRACT_ALREADY_EXISTS",
		fmt.Sprintf("Contract already exists for this user and job posting with status %s.", existingProposalStatus))
}

// IsVisibleTo reports whether scope covers this contract
func (c *JobContract) IsVisibleTo(scope job.Scope) bool {
	switch {
	case scope.CoderID != uuid.Nil:
		return c.CoderID == scope.CoderID
	case scope.ClientID != uuid.Nil:
		return c.ClientID == scope.ClientID
	}
	return true
}

// Rate stores the client's rating and feedback
func (c *JobContract) Rate(clientID uuid.UUID, rating int, feedback string) error {
	if c.ClientID != clientID {
		return shared.NewDomainError("CONTRACT_NOT_FOUND", "Job contract not found")
	}
	if rating < 1 || rating > 5 {
		return shared.NewValidationError("rating", "Rating must be between 1 and 5")
	}
	c.Rating = &rating
	c.Feedback = strings.TrimSpace(feedback)
	c.Touch()
	c.IncrementVersion()
	return nil
}

// Close ends the contract today
func (c *JobContract) Close(clientID uuid.UUID, today time.Time) error {
	if c.ClientID != clientID {
		return shared.NewDomainError("CONTRACT_NOT_FOUND", "Job contract not found")
	}
	if !c.IsActive {
		return shared.NewDomainError("INVALID_STATE", "Contract is already closed")
	}
	end := DateOf(today)
	c.EndDate = &end
	c.IsActive = false
	c.Touch()
	c.IncrementVersion()
	c.AddDomainEvent(NewJobContractClosedEvent(c, clientID))
	return nil
}

// RecordApprovedWork adds approved timesheet totals to the contract
func (c *JobContract) RecordApprovedWork(hours, amount decimal.Decimal) {
	c.TotalHoursWorked = c.TotalHoursWorked.Add(hours)
	c.TotalAmountEarned = c.TotalAmountEarned.Add(amount)
	c.Touch()
	c.IncrementVersion()
}

// DateOf truncates t to midnight UTC of its calendar day
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
