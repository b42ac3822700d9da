package job

import (
	"context"
	"testing"

	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationService_SendInvitation(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	posting := f.fixedPosting(t, "Build API", 1000)

	inv, err := f.invitations.SendInvitation(ctx, f.client.Actor(), SendInvitationRequest{
		CoderUsername: "grace",
		JobPostingID:  posting.ID,
		Message:       "You would be great for this",
	})
	require.NoError(t, err)
	assert.Equal(t, job.InvitationStatusSent, inv.Status)
	assert.Equal(t, f.coder.ID, inv.CoderID)
	assert.Equal(t, 1, f.metrics.invitations)

	t.Run("duplicate invitation is a conflict", func(t *testing.T) {
		_, err := f.invitations.SendInvitation(ctx, f.client.Actor(), SendInvitationRequest{
			CoderUsername: "grace",
			JobPostingID:  posting.ID,
		})
		assertCode(t, err, "INVITATION_ALREADY_EXISTS")
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)

		page, err := f.invitations.ListInvitations(ctx, f.client.Actor(), shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("unknown coder is a field error", func(t *testing.T) {
		_, err := f.invitations.SendInvitation(ctx, f.client.Actor(), SendInvitationRequest{
			CoderUsername: "nobody",
			JobPostingID:  posting.ID,
		})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "coder_username", de.Details[0].Field)
	})

	t.Run("client username is not a coder", func(t *testing.T) {
		_, err := f.invitations.SendInvitation(ctx, f.client.Actor(), SendInvitationRequest{
			CoderUsername: "globex",
			JobPostingID:  posting.ID,
		})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "coder_username", de.Details[0].Field)
	})

	t.Run("only the posting owner may invite", func(t *testing.T) {
		_, err := f.invitations.SendInvitation(ctx, f.otherClient.Actor(), SendInvitationRequest{
			CoderUsername: "linus",
			JobPostingID:  posting.ID,
		})
		assertCode(t, err, "INVITATION_NOT_OWNER")
	})

	t.Run("coders cannot invite", func(t *testing.T) {
		_, err := f.invitations.SendInvitation(ctx, f.coder.Actor(), SendInvitationRequest{
			CoderUsername: "linus",
			JobPostingID:  posting.ID,
		})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestInvitationService_UpdateInvitationStatus(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	posting := f.fixedPosting(t, "Build API", 1000)
	inv, err := f.invitations.SendInvitation(ctx, f.client.Actor(), SendInvitationRequest{
		CoderUsername: "grace",
		JobPostingID:  posting.ID,
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		status job.InvitationStatus
		code   string
	}{
		{"cannot claim a proposal was submitted", job.InvitationStatusProposalSubmitted, "INVITATION_STATUS_NOT_ALLOWED"},
		{"cannot resend", job.InvitationStatusSent, "INVITATION_STATUS_NOT_ALLOWED"},
		{"unknown status", job.InvitationStatus("ARCHIVED"), "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.invitations.UpdateInvitationStatus(ctx, f.coder.Actor(), inv.ID,
				UpdateInvitationStatusRequest{Status: tt.status})
			assertCode(t, err, tt.code)
		})
	}

	t.Run("client is forbidden", func(t *testing.T) {
		_, err := f.invitations.UpdateInvitationStatus(ctx, f.client.Actor(), inv.ID,
			UpdateInvitationStatusRequest{Status: job.InvitationStatusRead})
		assertCode(t, err, "INVITATION_UPDATE_NOT_ALLOWED")
	})

	t.Run("another coder does not see it", func(t *testing.T) {
		_, err := f.invitations.UpdateInvitationStatus(ctx, f.otherCoder.Actor(), inv.ID,
			UpdateInvitationStatusRequest{Status: job.InvitationStatusRead})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("invited coder reads then declines", func(t *testing.T) {
		got, err := f.invitations.UpdateInvitationStatus(ctx, f.coder.Actor(), inv.ID,
			UpdateInvitationStatusRequest{Status: job.InvitationStatusRead})
		require.NoError(t, err)
		assert.Equal(t, job.InvitationStatusRead, got.Status)

		got, err = f.invitations.UpdateInvitationStatus(ctx, f.coder.Actor(), inv.ID,
			UpdateInvitationStatusRequest{Status: job.InvitationStatusRejected})
		require.NoError(t, err)
		assert.Equal(t, job.InvitationStatusRejected, got.Status)
	})

	t.Run("declined invitation cannot be read again", func(t *testing.T) {
		_, err := f.invitations.UpdateInvitationStatus(ctx, f.coder.Actor(), inv.ID,
			UpdateInvitationStatusRequest{Status: job.InvitationStatusRead})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestProposalSubmittedHandler(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	posting := f.fixedPosting(t, "Build API", 1000)
	inv, err := f.invitations.SendInvitation(ctx, f.client.Actor(), SendInvitationRequest{
		CoderUsername: "grace",
		JobPostingID:  posting.ID,
	})
	require.NoError(t, err)

	f.submit(t, f.coder, posting)
	submitted := f.events.ofType(job.EventTypeJobProposalSubmitted)
	require.Len(t, submitted, 1)

	require.NoError(t, f.handler.Handle(ctx, submitted[0]))

	got, err := f.invitations.GetInvitation(ctx, f.coder.Actor(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, job.InvitationStatusProposalSubmitted, got.Status)

	t.Run("handling again is a no-op", func(t *testing.T) {
		require.NoError(t, f.handler.Handle(ctx, submitted[0]))
	})

	t.Run("proposal from an uninvited coder changes nothing", func(t *testing.T) {
		f.submit(t, f.otherCoder, posting)
		events := f.events.ofType(job.EventTypeJobProposalSubmitted)
		require.NoError(t, f.handler.Handle(ctx, events[len(events)-1]))

		page, err := f.invitations.ListInvitations(ctx, f.otherCoder.Actor(), shared.Filter{})
		require.NoError(t, err)
		assert.Zero(t, page.Total)
	})
}
