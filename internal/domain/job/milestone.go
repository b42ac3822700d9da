package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MilestoneStatus is the progress of a fixed-price checkpoint
type MilestoneStatus string

const (
	MilestoneStatusProposed MilestoneStatus = "PROPOSED"
	MilestoneStatusPending  MilestoneStatus = "PENDING"
	MilestoneStatusActive   MilestoneStatus = "ACTIVE"
	MilestoneStatusComplete MilestoneStatus = "COMPLETE"
)

// IsValid reports whether s is a known milestone status
func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneStatusProposed, MilestoneStatusPending, MilestoneStatusActive, MilestoneStatusComplete:
		return true
	}
	return false
}

// Milestone is a deliverable checkpoint on a fixed-price posting
type Milestone struct {
	shared.BaseAggregateRoot
	JobPostingID         uuid.UUID
	ClientID             uuid.UUID
	CoderID              uuid.UUID
	Name                 string
	Description          string
	Days                 int
	FundReleased         decimal.Decimal
	Status               MilestoneStatus
	CompletedDate        *time.Time
	CompletedDescription string
}

// NewMilestoneInput carries the coder-supplied milestone fields
type NewMilestoneInput struct {
	Name         string
	Description  string
	Days         int
	FundReleased decimal.Decimal
}

// NewMilestone creates a PROPOSED milestone; hourly postings have none
func NewMilestone(posting *JobPosting, coderID uuid.UUID, in NewMilestoneInput) (*Milestone, error) {
	if posting == nil {
		return nil, shared.NewValidationError("job_posting_id", "Job posting is required")
	}
	if posting.IsHourly() {
		return nil, shared.NewValidationError("job_posting_id", "Milestone cannot be added for hourly job type")
	}
	var verrs shared.ValidationErrors
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verrs.Add("name", "Name is required")
	} else if len(name) > 255 {
		verrs.Add("name", "Name cannot exceed 255 characters")
	}
	if in.Days < 0 {
		verrs.Add("time", "Time cannot be negative")
	}
	if in.FundReleased.IsNegative() {
		verrs.Add("fund_released", "Fund released cannot be negative")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}
	m := &Milestone{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		JobPostingID:      posting.ID,
		ClientID:          posting.ClientID,
		CoderID:           coderID,
		Name:              name,
		Description:       strings.TrimSpace(in.Description),
		Days:              in.Days,
		FundReleased:      in.FundReleased.Round(2),
		Status:            MilestoneStatusProposed,
	}
	m.AddDomainEvent(NewMilestoneCreatedEvent(m))
	return m, nil
}

// ChangeStatus moves the milestone as allowed for party. Completing it
// stamps the completion date.
func (m *Milestone) ChangeStatus(party Party, actorID uuid.UUID, status MilestoneStatus, completedDescription string, now time.Time) error {
	if !status.IsValid() {
		return shared.NewValidationError("milestone_status", "Invalid milestone status")
	}
	scope := party.Scope(actorID)
	if (scope.CoderID != uuid.Nil && m.CoderID != scope.CoderID) ||
		(scope.ClientID != uuid.Nil && m.ClientID != scope.ClientID) {
		return shared.NewDomainError("MILESTONE_NOT_FOUND", "Milestone not found")
	}
	if !party.CanSetMilestoneStatus(status) {
		return shared.NewDomainError("MILESTONE_STATUS_NOT_ALLOWED", "Not allowed to set milestone status "+string(status))
	}
	if m.Status == MilestoneStatusComplete {
		return shared.NewDomainError("INVALID_STATE", "Milestone is already complete")
	}
	m.Status = status
	if status == MilestoneStatusComplete {
		completed := now
		m.CompletedDate = &completed
		m.CompletedDescription = strings.TrimSpace(completedDescription)
	}
	m.Touch()
	m.IncrementVersion()
	return nil
}
