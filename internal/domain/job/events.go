package job

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// Aggregate types
const (
	AggregateTypeJobPosting    = "JobPosting"
	AggregateTypeJobInvitation = "JobInvitation"
	AggregateTypeJobProposal   = "JobProposal"
	AggregateTypeMilestone     = "Milestone"
)

// Event types
const (
	EventTypeJobPostingCreated          = "JobPostingCreated"
	EventTypeJobPostingStatusChanged    = "JobPostingStatusChanged"
	EventTypeJobInvitationSent          = "JobInvitationSent"
	EventTypeJobInvitationStatusChanged = "JobInvitationStatusChanged"
	EventTypeJobProposalSubmitted       = "JobProposalSubmitted"
	EventTypeJobProposalStatusChanged   = "JobProposalStatusChanged"
	EventTypeMilestoneCreated           = "MilestoneCreated"
)

// JobPostingCreatedEvent is published when a client posts a job
type JobPostingCreatedEvent struct {
	shared.BaseDomainEvent
	Title      string     `json:"title"`
	BudgetType BudgetType `json:"budget_type"`
}

// NewJobPostingCreatedEvent creates a new JobPostingCreatedEvent
func NewJobPostingCreatedEvent(p *JobPosting) *JobPostingCreatedEvent {
	return &JobPostingCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobPostingCreated, AggregateTypeJobPosting, p.ID, p.ClientID),
		Title:           p.Title,
		BudgetType:      p.BudgetType,
	}
}

// JobPostingStatusChangedEvent is published on posting status changes
type JobPostingStatusChangedEvent struct {
	shared.BaseDomainEvent
	OldStatus PostingStatus `json:"old_status"`
	NewStatus PostingStatus `json:"new_status"`
}

// NewJobPostingStatusChangedEvent creates a new JobPostingStatusChangedEvent
func NewJobPostingStatusChangedEvent(p *JobPosting, old PostingStatus, actorID uuid.UUID) *JobPostingStatusChangedEvent {
	return &JobPostingStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobPostingStatusChanged, AggregateTypeJobPosting, p.ID, actorID),
		OldStatus:       old,
		NewStatus:       p.Status,
	}
}

// JobInvitationSentEvent is published when a client invites a coder
type JobInvitationSentEvent struct {
	shared.BaseDomainEvent
	JobPostingID uuid.UUID `json:"job_posting_id"`
	CoderID      uuid.UUID `json:"coder_id"`
}

// NewJobInvitationSentEvent creates a new JobInvitationSentEvent
func NewJobInvitationSentEvent(i *JobInvitation) *JobInvitationSentEvent {
	return &JobInvitationSentEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobInvitationSent, AggregateTypeJobInvitation, i.ID, i.ClientID),
		JobPostingID:    i.JobPostingID,
		CoderID:         i.CoderID,
	}
}

// JobInvitationStatusChangedEvent is published on invitation status changes
type JobInvitationStatusChangedEvent struct {
	shared.BaseDomainEvent
	OldStatus InvitationStatus `json:"old_status"`
	NewStatus InvitationStatus `json:"new_status"`
}

// NewJobInvitationStatusChangedEvent creates a new JobInvitationStatusChangedEvent
func NewJobInvitationStatusChangedEvent(i *JobInvitation, old InvitationStatus, actorID uuid.UUID) *JobInvitationStatusChangedEvent {
	return &JobInvitationStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobInvitationStatusChanged, AggregateTypeJobInvitation, i.ID, actorID),
		OldStatus:       old,
		NewStatus:       i.Status,
	}
}

// JobProposalSubmittedEvent is published when a coder bids on a posting
type JobProposalSubmittedEvent struct {
	shared.BaseDomainEvent
	JobPostingID uuid.UUID  `json:"job_posting_id"`
	ClientID     uuid.UUID  `json:"client_id"`
	CoderID      uuid.UUID  `json:"coder_id"`
	ProposalType BudgetType `json:"proposal_type"`
}

// NewJobProposalSubmittedEvent creates a new JobProposalSubmittedEvent
func NewJobProposalSubmittedEvent(p *JobProposal) *JobProposalSubmittedEvent {
	return &JobProposalSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobProposalSubmitted, AggregateTypeJobProposal, p.ID, p.CoderID),
		JobPostingID:    p.JobPostingID,
		ClientID:        p.ClientID,
		CoderID:         p.CoderID,
		ProposalType:    p.ProposalType,
	}
}

// JobProposalStatusChangedEvent is published on proposal status changes
type JobProposalStatusChangedEvent struct {
	shared.BaseDomainEvent
	OldStatus ProposalStatus `json:"old_status"`
	NewStatus ProposalStatus `json:"new_status"`
}

// NewJobProposalStatusChangedEvent creates a new JobProposalStatusChangedEvent
func NewJobProposalStatusChangedEvent(p *JobProposal, old ProposalStatus, actorID uuid.UUID) *JobProposalStatusChangedEvent {
	return &JobProposalStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobProposalStatusChanged, AggregateTypeJobProposal, p.ID, actorID),
		OldStatus:       old,
		NewStatus:       p.Status,
	}
}

// MilestoneCreatedEvent is published when a coder proposes a milestone
type MilestoneCreatedEvent struct {
	shared.BaseDomainEvent
	JobPostingID uuid.UUID `json:"job_posting_id"`
}

// NewMilestoneCreatedEvent creates a new MilestoneCreatedEvent
func NewMilestoneCreatedEvent(m *Milestone) *MilestoneCreatedEvent {
	return &MilestoneCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMilestoneCreated, AggregateTypeMilestone, m.ID, m.CoderID),
		JobPostingID:    m.JobPostingID,
	}
}
