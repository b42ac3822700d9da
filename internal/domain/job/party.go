package job

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// Scope restricts queries to the rows a caller may see.
// A zero Scope means unrestricted.
type Scope struct {
	ClientID uuid.UUID
	CoderID  uuid.UUID
}

// IsZero reports whether the scope is unrestricted
func (s Scope) IsZero() bool {
	return s.ClientID == uuid.Nil && s.CoderID == uuid.Nil
}

// Party is the side of the marketplace an actor works for.
// ClientParty and CoderParty are the only implementations.
type Party interface {
	Role() identity.Role
	// Scope limits invitations, proposals, milestones, contracts and timesheets
	Scope(userID uuid.UUID) Scope
	// PostingScope limits job postings
	PostingScope(userID uuid.UUID) Scope
	CanSetProposalStatus(status ProposalStatus) bool
	CanSetInvitationStatus(status InvitationStatus) bool
	CanSetMilestoneStatus(status MilestoneStatus) bool
	party()
}

// ClientParty is the hiring side
type ClientParty struct{}

// Role returns CLIENT
func (ClientParty) Role() identity.Role { return identity.RoleClient }

// Scope returns rows where the client is the posting owner
func (ClientParty) Scope(userID uuid.UUID) Scope { return Scope{ClientID: userID} }

// PostingScope returns the client's own postings
func (ClientParty) PostingScope(userID uuid.UUID) Scope { return Scope{ClientID: userID} }

// CanSetProposalStatus allows only client decisions
func (ClientParty) CanSetProposalStatus(status ProposalStatus) bool {
	return status == ProposalStatusAcceptedByClient || status == ProposalStatusRejectedByClient
}

// CanSetInvitationStatus is always false; invitations are answered by coders
func (ClientParty) CanSetInvitationStatus(InvitationStatus) bool { return false }

// CanSetMilestoneStatus allows the client to sign off a milestone
func (ClientParty) CanSetMilestoneStatus(status MilestoneStatus) bool {
	return status == MilestoneStatusComplete
}

func (ClientParty) party() {}

// CoderParty is the freelancer side
type CoderParty struct{}

// Role returns CODER
func (CoderParty) Role() identity.Role { return identity.RoleCoder }

// Scope returns rows authored by or addressed to the coder
func (CoderParty) Scope(userID uuid.UUID) Scope { return Scope{CoderID: userID} }

// PostingScope is unrestricted; coders browse every posting
func (CoderParty) PostingScope(uuid.UUID) Scope { return Scope{} }

// CanSetProposalStatus allows only coder decisions
func (CoderParty) CanSetProposalStatus(status ProposalStatus) bool {
	return status == ProposalStatusAcceptedByCoder || status == ProposalStatusRejectedByCoder
}

// CanSetInvitationStatus allows reading or declining an invitation
func (CoderParty) CanSetInvitationStatus(status InvitationStatus) bool {
	return status == InvitationStatusRead || status == InvitationStatusRejected
}

// CanSetMilestoneStatus allows starting or finishing a milestone
func (CoderParty) CanSetMilestoneStatus(status MilestoneStatus) bool {
	return status == MilestoneStatusActive || status == MilestoneStatusComplete
}

func (CoderParty) party() {}

// PartyFor resolves the party for an actor
func PartyFor(actor identity.Actor) (Party, error) {
	switch actor.Role {
	case identity.RoleClient:
		return ClientParty{}, nil
	case identity.RoleCoder:
		return CoderParty{}, nil
	}
	return nil, shared.NewDomainError("FORBIDDEN", "Only clients and coders can access jobs")
}
