package job

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// InvitationStatus tracks a coder's response to an invitation
type InvitationStatus string

const (
	InvitationStatusSent              InvitationStatus = "SENT"
	InvitationStatusRead              InvitationStatus = "READ"
	InvitationStatusProposalSubmitted InvitationStatus = "PROPOSAL_SUBMITTED"
	InvitationStatusRejected          InvitationStatus = "INVITATION_REJECTED"
)

// IsValid reports whether s is a known invitation status
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusSent, InvitationStatusRead, InvitationStatusProposalSubmitted, InvitationStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s InvitationStatus) IsTerminal() bool {
	return s == InvitationStatusProposalSubmitted || s == InvitationStatusRejected
}

// JobInvitation is a client asking a specific coder to bid
type JobInvitation struct {
	shared.BaseAggregateRoot
	JobPostingID uuid.UUID
	ClientID     uuid.UUID
	CoderID      uuid.UUID
	Message      string
	Status       InvitationStatus
}

// NewJobInvitation creates an invitation for posting; only the posting owner may invite
func NewJobInvitation(posting *JobPosting, clientID, coderID uuid.UUID, message string) (*JobInvitation, error) {
	if posting == nil {
		return nil, shared.NewValidationError("job_posting_id", "Job posting is required")
	}
	if !posting.IsOwnedBy(clientID) {
		return nil, shared.NewDomainError("INVITATION_NOT_OWNER", "Client can only invite from own job posting")
	}
	if !posting.Status.AcceptsApplicants() {
		return nil, shared.NewValidationError("job_posting_id", "Job posting must be OPEN or ACTIVE")
	}
	if coderID == uuid.Nil {
		return nil, shared.NewValidationError("coder", "Coder is required")
	}
	message = strings.TrimSpace(message)
	if len(message) > 2000 {
		return nil, shared.NewValidationError("message", "Message cannot exceed 2000 characters")
	}

	inv := &JobInvitation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		JobPostingID:      posting.ID,
		ClientID:          clientID,
		CoderID:           coderID,
		Message:           message,
		Status:            InvitationStatusSent,
	}
	inv.AddDomainEvent(NewJobInvitationSentEvent(inv))
	return inv, nil
}

// ChangeStatus applies a status change requested by party on behalf of actorID
func (i *JobInvitation) ChangeStatus(party Party, actorID uuid.UUID, status InvitationStatus) error {
	if !status.IsValid() {
		return shared.NewValidationError("status", "Invalid invitation status")
	}
	if party.Role() != identity.RoleCoder {
		return shared.NewDomainError("INVITATION_UPDATE_NOT_ALLOWED", "This status update is not allowed")
	}
	if i.CoderID != actorID {
		return shared.NewDomainError("INVITATION_NOT_FOUND", "Job invitation not found")
	}
	if !party.CanSetInvitationStatus(status) {
		return shared.NewDomainError("INVITATION_STATUS_NOT_ALLOWED", "Coder is not allowed to update this status")
	}
	return i.transition(status, actorID)
}

// MarkProposalSubmitted records that the invited coder has bid
func (i *JobInvitation) MarkProposalSubmitted(actorID uuid.UUID) error {
	if i.Status == InvitationStatusProposalSubmitted {
		return nil
	}
	return i.transition(InvitationStatusProposalSubmitted, actorID)
}

func (i *JobInvitation) transition(status InvitationStatus, actorID uuid.UUID) error {
	if i.Status == status {
		return nil
	}
	if i.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Invitation is already "+string(i.Status))
	}
	if status == InvitationStatusRead && i.Status != InvitationStatusSent {
		return shared.NewDomainError("INVALID_STATE", "Only a SENT invitation can be marked as READ")
	}
	old := i.Status
	i.Status = status
	i.Touch()
	i.IncrementVersion()
	i.AddDomainEvent(NewJobInvitationStatusChangedEvent(i, old, actorID))
	return nil
}
