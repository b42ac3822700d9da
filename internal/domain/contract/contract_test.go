package contract

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	today      = time.Date(2025, 6, 2, 15, 4, 0, 0, time.UTC)
	feePercent = decimal.NewFromInt(20)
)

func intPtr(v int) *int { return &v }

func acceptedProposal(t *testing.T, budget job.BudgetType) (*job.JobProposal, uuid.UUID, uuid.UUID) {
	t.Helper()
	clientID, coderID := uuid.New(), uuid.New()
	in := job.NewPostingInput{
		Title:        "API work",
		Description:  "Build endpoints",
		Technologies: []string{"go"},
		TimeZones:    []string{"UTC"},
		ProjectSize:  job.ProjectSizeMedium,
		BudgetType:   budget,
		Duration:     job.DurationMediumTerm,
	}
	proposalIn := job.NewProposalInput{Description: "Let me help"}
	if budget == job.BudgetTypeHourly {
		in.MinimumHourlyRate, in.MaximumHourlyRate = intPtr(20), intPtr(60)
		rate := decimal.NewFromInt(40)
		proposalIn.HourlyRate = &rate
		proposalIn.AvailabilityPerWeek = intPtr(30)
	} else {
		maxBudget := decimal.NewFromInt(1000)
		in.MaximumBudget = &maxBudget
	}
	posting, err := job.NewJobPosting(clientID, in)
	require.NoError(t, err)
	proposal, err := job.NewJobProposal(posting, coderID, proposalIn, feePercent)
	require.NoError(t, err)
	require.NoError(t, proposal.ChangeStatus(job.CoderParty{}, coderID, job.ProposalStatusAcceptedByCoder))
	return proposal, clientID, coderID
}

func TestNewJobContract(t *testing.T) {
	t.Run("hourly contract inherits the proposal rate", func(t *testing.T) {
		proposal, clientID, coderID := acceptedProposal(t, job.BudgetTypeHourly)

		c, err := NewJobContract(proposal, Parties{ClientUsername: "acme", CoderUsername: "neo", PostingTitle: "API work"}, feePercent, today)

		require.NoError(t, err)
		assert.Equal(t, "acme_neo_API work", c.Name)
		assert.Equal(t, clientID, c.ClientID)
		assert.Equal(t, coderID, c.CoderID)
		assert.True(t, c.IsActive)
		assert.Nil(t, c.EndDate)
		assert.True(t, c.IsHourlyRate)
		assert.Equal(t, "40", c.HourlyRate.String())
		assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), c.StartDate)
		assert.True(t, c.TotalHoursWorked.IsZero())
	})

	t.Run("fixed contract has no rate", func(t *testing.T) {
		proposal, _, _ := acceptedProposal(t, job.BudgetTypeFixed)

		c, err := NewJobContract(proposal, Parties{}, feePercent, today)

		require.NoError(t, err)
		assert.False(t, c.IsHourlyRate)
		assert.Nil(t, c.HourlyRate)
	})

	t.Run("requires acceptance by coder", func(t *testing.T) {
		proposal, _, coderID := acceptedProposal(t, job.BudgetTypeFixed)
		require.NoError(t, proposal.ChangeStatus(job.CoderParty{}, coderID, job.ProposalStatusRejectedByCoder))

		_, err := NewJobContract(proposal, Parties{}, feePercent, today)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestDuplicateContractError(t *testing.T) {
	err := DuplicateContractError(job.ProposalStatusAcceptedByCoder)

	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	assert.Equal(t, "Contract already exists for this user and job posting with status ACCEPTED_BY_CODER.", err.Error())
}

func TestJobContract_RateAndClose(t *testing.T) {
	proposal, clientID, _ := acceptedProposal(t, job.BudgetTypeHourly)
	c, err := NewJobContract(proposal, Parties{}, feePercent, today)
	require.NoError(t, err)

	assert.Error(t, c.Rate(clientID, 6, ""))
	assert.ErrorIs(t, c.Rate(uuid.New(), 5, ""), shared.ErrNotFound)
	require.NoError(t, c.Rate(clientID, 4, " solid "))
	assert.Equal(t, 4, *c.Rating)
	assert.Equal(t, "solid", c.Feedback)

	require.NoError(t, c.Close(clientID, today.AddDate(0, 1, 0)))
	assert.False(t, c.IsActive)
	require.NotNil(t, c.EndDate)
	assert.ErrorIs(t, c.Close(clientID, today), shared.ErrInvalidState)
}

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"09:00", "17:30", "8.5"},
		{"09:10", "10:00", "0.83"},
		{"00:00", "23:59", "23.98"},
		{"08:15:45", "08:45:00", "0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			start, err := ParseTimeOfDay(tt.start)
			require.NoError(t, err)
			end, err := ParseTimeOfDay(tt.end)
			require.NoError(t, err)

			assert.Equal(t, tt.want, HoursBetween(start, end).String())
		})
	}

	_, err := ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func tod(t *testing.T, s string) *TimeOfDay {
	t.Helper()
	v, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return &v
}

func TestNewTimesheet(t *testing.T) {
	proposal, clientID, coderID := acceptedProposal(t, job.BudgetTypeHourly)
	hourly, err := NewJobContract(proposal, Parties{}, feePercent, today)
	require.NoError(t, err)

	t.Run("computes hours and amount", func(t *testing.T) {
		ts, err := NewTimesheet(hourly, coderID, NewTimesheetInput{
			StartTime: tod(t, "09:00"),
			EndTime:   tod(t, "17:30"),
		}, today)

		require.NoError(t, err)
		assert.Equal(t, "8.5", ts.TotalHours.String())
		assert.Equal(t, "340", ts.Amount.String())
		assert.Equal(t, clientID, ts.ClientID)
		assert.Equal(t, coderID, ts.CoderID)
		assert.Equal(t, DateOf(today), ts.Date)
		assert.Equal(t, PaymentStatusPayNow, ts.PaymentStatus)
		assert.Equal(t, TimesheetStatusPending, ts.TimesheetStatus)
	})

	t.Run("fixed contract rejects timesheets", func(t *testing.T) {
		fixedProposal, _, fixedCoder := acceptedProposal(t, job.BudgetTypeFixed)
		fixed, err := NewJobContract(fixedProposal, Parties{}, feePercent, today)
		require.NoError(t, err)

		_, err = NewTimesheet(fixed, fixedCoder, NewTimesheetInput{
			StartTime: tod(t, "09:00"),
			EndTime:   tod(t, "10:00"),
		}, today)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only permitted for HOURLY")
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewTimesheet(hourly, coderID, NewTimesheetInput{
			StartTime: tod(t, "10:00"),
			EndTime:   tod(t, "10:00"),
		}, today)

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "end_time", de.Details[0].Field)
		assert.Equal(t, "End time must be after start time", de.Details[0].Message)
	})

	t.Run("missing start time", func(t *testing.T) {
		_, err := NewTimesheet(hourly, coderID, NewTimesheetInput{EndTime: tod(t, "10:00")}, today)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Please enter the start time")
	})

	t.Run("another coder's contract", func(t *testing.T) {
		_, err := NewTimesheet(hourly, uuid.New(), NewTimesheetInput{
			StartTime: tod(t, "09:00"),
			EndTime:   tod(t, "10:00"),
		}, today)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestTimesheet_Review(t *testing.T) {
	proposal, clientID, coderID := acceptedProposal(t, job.BudgetTypeHourly)
	c, err := NewJobContract(proposal, Parties{}, feePercent, today)
	require.NoError(t, err)

	newTimesheet := func() *Timesheet {
		ts, err := NewTimesheet(c, coderID, NewTimesheetInput{StartTime: tod(t, "09:00"), EndTime: tod(t, "11:00")}, today)
		require.NoError(t, err)
		return ts
	}

	t.Run("approved timesheet is frozen", func(t *testing.T) {
		ts := newTimesheet()
		require.NoError(t, ts.Review(clientID, TimesheetStatusApproved))
		assert.True(t, ts.IsApproved())

		for _, status := range []TimesheetStatus{TimesheetStatusPending, TimesheetStatusRejected, TimesheetStatusApproved} {
			err := ts.Review(clientID, status)
			assert.ErrorIs(t, err, shared.ErrInvalidState)
		}
	})

	t.Run("rejected timesheet is frozen", func(t *testing.T) {
		ts := newTimesheet()
		require.NoError(t, ts.Review(clientID, TimesheetStatusRejected))
		assert.ErrorIs(t, ts.Review(clientID, TimesheetStatusApproved), shared.ErrInvalidState)
	})

	t.Run("only the contract client", func(t *testing.T) {
		ts := newTimesheet()
		assert.ErrorIs(t, ts.Review(coderID, TimesheetStatusApproved), shared.ErrNotFound)
	})
}
