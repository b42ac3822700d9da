package job

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProposalService_SubmitProposal(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	t.Run("hourly proposal charges the fee on the rate", func(t *testing.T) {
		posting := f.hourlyPosting(t, "Maintain DB")
		p := f.submit(t, f.coder, posting)

		assert.Equal(t, job.BudgetTypeHourly, p.ProposalType)
		assert.Equal(t, job.ProposalStatusSent, p.Status)
		assert.True(t, p.IsSubmitted)
		assert.Equal(t, "50", p.CoderFee.String())
		assert.Equal(t, "10", p.PlatformFee.String())
		assert.Equal(t, "60", p.TotalProjectCost.String())
		assert.Equal(t, 1, f.metrics.proposals[string(job.BudgetTypeHourly)])
	})

	t.Run("fixed proposal charges the fee on the budget", func(t *testing.T) {
		posting := f.fixedPosting(t, "Build API", 1000)
		p, err := f.proposals.SubmitProposal(ctx, f.coder.Actor(), SubmitProposalRequest{
			JobPostingID:        posting.ID,
			Description:         "Done it twice",
			HourlyRate:          decPtr(75),
			AvailabilityPerWeek: intPtr(10),
		})
		require.NoError(t, err)
		assert.Equal(t, job.BudgetTypeFixed, p.ProposalType)
		assert.Nil(t, p.HourlyRate)
		assert.Nil(t, p.AvailabilityPerWeek)
		assert.Equal(t, "200", p.PlatformFee.String())
		assert.Equal(t, "1200", p.TotalProjectCost.String())
	})

	t.Run("hourly proposal requires a rate", func(t *testing.T) {
		posting := f.hourlyPosting(t, "Tune queries")
		_, err := f.proposals.SubmitProposal(ctx, f.coder.Actor(), SubmitProposalRequest{
			JobPostingID: posting.ID,
			Description:  "Fast queries",
		})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		require.Len(t, de.Details, 2)
		assert.Equal(t, "hourly_rate", de.Details[0].Field)
		assert.Equal(t, "availability_per_week", de.Details[1].Field)
	})

	t.Run("clients cannot bid", func(t *testing.T) {
		posting := f.fixedPosting(t, "Audit", 500)
		_, err := f.proposals.SubmitProposal(ctx, f.client.Actor(), SubmitProposalRequest{
			JobPostingID: posting.ID,
			Description:  "Let me",
		})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("unknown posting", func(t *testing.T) {
		_, err := f.proposals.SubmitProposal(ctx, f.coder.Actor(), SubmitProposalRequest{
			JobPostingID: uuid.New(),
			Description:  "Hello",
		})
		assertCode(t, err, "JOB_POSTING_NOT_FOUND")
	})
}

func TestProposalService_UpdateProposalStatus(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	posting := f.fixedPosting(t, "Build API", 1000)
	first := f.submit(t, f.coder, posting)

	t.Run("client cannot accept on the coder's behalf", func(t *testing.T) {
		_, err := f.proposals.UpdateProposalStatus(ctx, f.client.Actor(), first.ID,
			UpdateProposalStatusRequest{Status: job.ProposalStatusAcceptedByCoder})
		assertCode(t, err, "PROPOSAL_STATUS_NOT_ALLOWED")
	})

	t.Run("another coder cannot see it", func(t *testing.T) {
		_, err := f.proposals.UpdateProposalStatus(ctx, f.otherCoder.Actor(), first.ID,
			UpdateProposalStatusRequest{Status: job.ProposalStatusAcceptedByCoder})
		assertCode(t, err, "PROPOSAL_NOT_FOUND")
	})

	t.Run("client acceptance creates no contract", func(t *testing.T) {
		res, err := f.proposals.UpdateProposalStatus(ctx, f.client.Actor(), first.ID,
			UpdateProposalStatusRequest{Status: job.ProposalStatusAcceptedByClient})
		require.NoError(t, err)
		assert.Equal(t, job.ProposalStatusAcceptedByClient, res.Proposal.Status)
		assert.Nil(t, res.ContractID)
		assert.Equal(t, int64(0), f.countContracts(t))
	})

	t.Run("coder acceptance creates the contract", func(t *testing.T) {
		res, err := f.proposals.UpdateProposalStatus(ctx, f.coder.Actor(), first.ID,
			UpdateProposalStatusRequest{Status: job.ProposalStatusAcceptedByCoder})
		require.NoError(t, err)
		require.NotNil(t, res.ContractID)
		assert.Equal(t, job.ProposalStatusAcceptedByCoder, res.Proposal.Status)
		assert.Equal(t, int64(1), f.countContracts(t))
		assert.Equal(t, 1, f.metrics.contracts)

		c, err := persistence.NewGormJobContractRepository(f.db).FindScoped(ctx, *res.ContractID, job.Scope{})
		require.NoError(t, err)
		assert.Equal(t, "acme_grace_Build API", c.Name)
		assert.Equal(t, first.ID, c.ProposalID)
		assert.False(t, c.IsHourlyRate)
		assert.Len(t, f.events.ofType(contract.EventTypeJobContractCreated), 1)
	})

	t.Run("repeating the acceptance is a no-op", func(t *testing.T) {
		res, err := f.proposals.UpdateProposalStatus(ctx, f.coder.Actor(), first.ID,
			UpdateProposalStatusRequest{Status: job.ProposalStatusAcceptedByCoder})
		require.NoError(t, err)
		assert.Nil(t, res.ContractID)
		assert.Equal(t, int64(1), f.countContracts(t))
	})

	t.Run("second acceptance for the same posting rolls back", func(t *testing.T) {
		second := f.submit(t, f.coder, posting)
		_, err := f.proposals.UpdateProposalStatus(ctx, f.coder.Actor(), second.ID,
			UpdateProposalStatusRequest{Status: job.ProposalStatusAcceptedByCoder})
		assertCode(t, err, "CONTRACT_ALREADY_EXISTS")
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		assert.True(t, strings.Contains(err.Error(), string(job.ProposalStatusAcceptedByCoder)))

		got, err := f.proposals.GetProposal(ctx, f.coder.Actor(), second.ID)
		require.NoError(t, err)
		assert.Equal(t, job.ProposalStatusSent, got.Status)
		assert.Equal(t, int64(1), f.countContracts(t))
	})
}

func TestProposalService_ListProposals(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	posting := f.fixedPosting(t, "Build API", 1000)
	f.submit(t, f.coder, posting)
	f.submit(t, f.otherCoder, posting)

	page, err := f.proposals.ListProposals(ctx, f.client.Actor(), job.ProposalFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = f.proposals.ListProposals(ctx, f.coder.Actor(), job.ProposalFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, f.coder.ID, page.Items[0].CoderID)

	page, err = f.proposals.ListProposals(ctx, f.otherClient.Actor(), job.ProposalFilter{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestProposalService_Attachments(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	posting := f.fixedPosting(t, "Build API", 1000)
	proposal := f.submit(t, f.coder, posting)
	expires := time.Date(2025, 4, 2, 15, 40, 0, 0, time.UTC)

	t.Run("download without attachment", func(t *testing.T) {
		_, err := f.proposals.GetAttachmentURL(ctx, f.client.Actor(), proposal.ID)
		assertCode(t, err, "ATTACHMENT_NOT_FOUND")
	})

	var key string
	t.Run("coder requests an upload URL", func(t *testing.T) {
		prefix := "proposals/" + proposal.ID.String() + "/"
		f.storage.On("GenerateUploadURL", mock.Anything, mock.MatchedBy(func(k string) bool {
			return strings.HasPrefix(k, prefix) && strings.HasSuffix(k, "-my-cv.pdf")
		}), "application/pdf", 10*time.Minute).Return("https://s3.test/put", expires, nil).Once()

		res, err := f.proposals.RequestAttachmentUpload(ctx, f.coder.Actor(), proposal.ID, AttachmentUploadRequest{
			FileName:    "../my cv.pdf",
			ContentType: "application/pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, "PUT", res.Method)
		assert.Equal(t, "https://s3.test/put", res.URL)
		assert.Equal(t, expires, res.ExpiresAt)
		key = res.Key

		got, err := f.proposals.GetProposal(ctx, f.coder.Actor(), proposal.ID)
		require.NoError(t, err)
		assert.True(t, got.HasAttachment)
	})

	t.Run("client downloads it", func(t *testing.T) {
		f.storage.On("ObjectExists", mock.Anything, key).Return(true, nil).Once()
		f.storage.On("GenerateDownloadURL", mock.Anything, key, 10*time.Minute).
			Return("https://s3.test/get", expires, nil).Once()

		res, err := f.proposals.GetAttachmentURL(ctx, f.client.Actor(), proposal.ID)
		require.NoError(t, err)
		assert.Equal(t, "GET", res.Method)
		assert.Equal(t, key, res.Key)
	})

	t.Run("object missing from the bucket", func(t *testing.T) {
		f.storage.On("ObjectExists", mock.Anything, key).Return(false, nil).Once()
		_, err := f.proposals.GetAttachmentURL(ctx, f.client.Actor(), proposal.ID)
		assertCode(t, err, "ATTACHMENT_NOT_FOUND")
	})

	t.Run("replacing deletes the previous object even if that fails", func(t *testing.T) {
		f.storage.On("GenerateUploadURL", mock.Anything, mock.Anything, "text/plain", 10*time.Minute).
			Return("https://s3.test/put2", expires, nil).Once()
		f.storage.On("DeleteObject", mock.Anything, key).Return(errors.New("bucket offline")).Once()

		res, err := f.proposals.RequestAttachmentUpload(ctx, f.coder.Actor(), proposal.ID, AttachmentUploadRequest{
			FileName:    "notes.txt",
			ContentType: "text/plain",
		})
		require.NoError(t, err)
		assert.NotEqual(t, key, res.Key)
	})

	t.Run("another coder cannot upload", func(t *testing.T) {
		_, err := f.proposals.RequestAttachmentUpload(ctx, f.otherCoder.Actor(), proposal.ID, AttachmentUploadRequest{
			FileName:    "x.txt",
			ContentType: "text/plain",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	f.storage.AssertExpectations(t)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\grace\cv final.docx`, "cv-final.docx"},
		{"  résumé (1).pdf ", "r-sum-1-.pdf"},
		{"...", "file"},
		{"", "file"},
		{strings.Repeat("a", 120) + ".txt", strings.Repeat("a", 96) + ".txt"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}
