package contract

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

const (
	AggregateTypeJobContract = "JobContract"
	AggregateTypeTimesheet   = "Timesheet"
)

const (
	EventTypeJobContractCreated = "JobContractCreated"
	EventTypeJobContractClosed  = "JobContractClosed"
	EventTypeTimesheetSubmitted = "TimesheetSubmitted"
	EventTypeTimesheetReviewed  = "TimesheetReviewed"
)

// JobContractCreatedEvent is published when a contract is created
type JobContractCreatedEvent struct {
	shared.BaseDomainEvent
	ProposalID   uuid.UUID `json:"proposal_id"`
	JobPostingID uuid.UUID `json:"job_posting_id"`
	ClientID     uuid.UUID `json:"client_id"`
	IsHourlyRate bool      `json:"is_hourly_rate"`
}

// NewJobContractCreatedEvent creates a new JobContractCreatedEvent
func NewJobContractCreatedEvent(c *JobContract) *JobContractCreatedEvent {
	return &JobContractCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobContractCreated, AggregateTypeJobContract, c.ID, c.CoderID),
		ProposalID:      c.ProposalID,
		JobPostingID:    c.JobPostingID,
		ClientID:        c.ClientID,
		IsHourlyRate:    c.IsHourlyRate,
	}
}

// JobContractClosedEvent is published when the client ends a contract
type JobContractClosedEvent struct {
	shared.BaseDomainEvent
}

// NewJobContractClosedEvent creates a new JobContractClosedEvent
func NewJobContractClosedEvent(c *JobContract, actorID uuid.UUID) *JobContractClosedEvent {
	return &JobContractClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobContractClosed, AggregateTypeJobContract, c.ID, actorID),
	}
}

// TimesheetSubmittedEvent is published when a coder logs hours
type TimesheetSubmittedEvent struct {
	shared.BaseDomainEvent
	ContractID uuid.UUID `json:"contract_id"`
	TotalHours string    `json:"total_hours"`
}

// NewTimesheetSubmittedEvent creates a new TimesheetSubmittedEvent
func NewTimesheetSubmittedEvent(t *Timesheet) *TimesheetSubmittedEvent {
	return &TimesheetSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTimesheetSubmitted, AggregateTypeTimesheet, t.ID, t.CoderID),
		ContractID:      t.ContractID,
		TotalHours:      t.TotalHours.String(),
	}
}

// TimesheetReviewedEvent is published when a client approves or rejects hours
type TimesheetReviewedEvent struct {
	shared.BaseDomainEvent
	ContractID uuid.UUID       `json:"contract_id"`
	Status     TimesheetStatus `json:"status"`
	TotalHours string          `json:"total_hours"`
}

// NewTimesheetReviewedEvent creates a new TimesheetReviewedEvent
func NewTimesheetReviewedEvent(t *Timesheet, actorID uuid.UUID) *TimesheetReviewedEvent {
	return &TimesheetReviewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTimesheetReviewed, AggregateTypeTimesheet, t.ID, actorID),
		ContractID:      t.ContractID,
		Status:          t.TimesheetStatus,
		TotalHours:      t.TotalHours.String(),
	}
}
