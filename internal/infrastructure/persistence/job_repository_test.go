package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormJobInvitationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormJobInvitationRepository(db)
	ctx := context.Background()

	clientID, coderID := uuid.New(), uuid.New()
	posting := newFixedPosting(t, clientID, "Site", 400)
	inv, err := job.NewJobInvitation(posting, clientID, coderID, "join us")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, inv))

	t.Run("duplicate triple is a conflict", func(t *testing.T) {
		dup, err := job.NewJobInvitation(posting, clientID, coderID, "again")
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("scoping by coder", func(t *testing.T) {
		_, err := repo.FindScoped(ctx, inv.ID, job.CoderParty{}.Scope(uuid.New()))
		assert.ErrorIs(t, err, shared.ErrNotFound)

		found, err := repo.FindScoped(ctx, inv.ID, job.CoderParty{}.Scope(coderID))
		require.NoError(t, err)
		assert.Equal(t, job.InvitationStatusSent, found.Status)
	})

	t.Run("list for client", func(t *testing.T) {
		found, total, err := repo.FindAll(ctx, job.ClientParty{}.Scope(clientID), shared.Filter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, found, 1)
	})

	t.Run("find by posting and coder then update", func(t *testing.T) {
		found, err := repo.FindByPostingAndCoder(ctx, posting.ID, coderID)
		require.NoError(t, err)
		require.Len(t, found, 1)

		require.NoError(t, found[0].MarkProposalSubmitted(coderID))
		require.NoError(t, repo.Update(ctx, found[0]))

		reloaded, err := repo.FindScoped(ctx, inv.ID, job.Scope{})
		require.NoError(t, err)
		assert.Equal(t, job.InvitationStatusProposalSubmitted, reloaded.Status)
	})
}

func TestGormJobProposalRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormJobProposalRepository(db)
	ctx := context.Background()

	clientID, coderA, coderB := uuid.New(), uuid.New(), uuid.New()
	hourly := newHourlyPosting(t, clientID, "ETL", 20, 50)
	fixed := newFixedPosting(t, clientID, "Logo", 250)

	pa := newHourlyProposal(t, hourly, coderA, 40)
	pb, err := job.NewJobProposal(fixed, coderB, job.NewProposalInput{Description: "fixed bid"}, decimal.NewFromInt(20))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, pa))
	require.NoError(t, repo.Create(ctx, pb))

	t.Run("fees round-trip", func(t *testing.T) {
		found, err := repo.FindByID(ctx, pb.ID)
		require.NoError(t, err)
		assert.Equal(t, job.BudgetTypeFixed, found.ProposalType)
		assert.Nil(t, found.HourlyRate)
		assert.True(t, found.Fees.CoderFee.Equal(decimal.NewFromInt(250)))
		assert.True(t, found.Fees.PlatformFee.Equal(decimal.NewFromInt(50)))
		assert.True(t, found.Fees.TotalProjectCost.Equal(decimal.NewFromInt(300)))
	})

	t.Run("coder sees only own", func(t *testing.T) {
		found, total, err := repo.FindAll(ctx, job.CoderParty{}.Scope(coderA), job.ProposalFilter{Filter: shared.Filter{Page: 1, PageSize: 10}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, pa.ID, found[0].ID)
	})

	t.Run("client filters by type and posting", func(t *testing.T) {
		postingID := hourly.ID
		found, total, err := repo.FindAll(ctx, job.ClientParty{}.Scope(clientID), job.ProposalFilter{
			Filter:       shared.Filter{Page: 1, PageSize: 10},
			ProposalType: job.BudgetTypeHourly,
			JobPostingID: &postingID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, found, 1)
		require.NotNil(t, found[0].HourlyRate)
		assert.True(t, found[0].HourlyRate.Equal(decimal.NewFromInt(40)))
	})

	t.Run("other client cannot load", func(t *testing.T) {
		_, err := repo.FindScoped(ctx, pa.ID, job.ClientParty{}.Scope(uuid.New()))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormMilestoneRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormMilestoneRepository(db)
	ctx := context.Background()

	clientID, coderID := uuid.New(), uuid.New()
	posting := newFixedPosting(t, clientID, "App", 900)
	m, err := job.NewMilestone(posting, coderID, job.NewMilestoneInput{Name: "Design", Days: 5, FundReleased: decimal.NewFromInt(100)})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, m))

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, m.ChangeStatus(job.ClientParty{}, clientID, job.MilestoneStatusComplete, "done", now))
	require.NoError(t, repo.Update(ctx, m))

	found, err := repo.FindScoped(ctx, m.ID, job.ClientParty{}.Scope(clientID))
	require.NoError(t, err)
	assert.Equal(t, job.MilestoneStatusComplete, found.Status)
	require.NotNil(t, found.CompletedDate)
	assert.True(t, found.CompletedDate.Equal(now))

	list, total, err := repo.FindAll(ctx, job.CoderParty{}.Scope(coderID), shared.Filter{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
}
