package job

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fixedInput() NewPostingInput {
	return NewPostingInput{
		Title:           "Build a landing page",
		Description:     "Static site with a contact form",
		Technologies:    []string{"HTML", "css"},
		TimeZones:       []string{"UTC"},
		ProjectSize:     ProjectSizeSmall,
		BudgetType:      BudgetTypeFixed,
		ExpertiseLevels: []catalog.ExpertiseLevel{catalog.ExpertiseExpert, catalog.ExpertiseBeginner},
		Duration:        DurationShortTerm,
		MaximumBudget:   decPtr("500"),
	}
}

func hourlyInput() NewPostingInput {
	in := fixedInput()
	in.BudgetType = BudgetTypeHourly
	in.MaximumBudget = nil
	in.MinimumHourlyRate = intPtr(20)
	in.MaximumHourlyRate = intPtr(40)
	return in
}

func validationFields(t *testing.T, err error) []string {
	t.Helper()
	var de *shared.DomainError
	require.True(t, errors.As(err, &de), "expected domain error, got %v", err)
	fields := make([]string, 0, len(de.Details))
	for _, d := range de.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestNewJobPosting(t *testing.T) {
	clientID := uuid.New()

	t.Run("fixed posting is OPEN and has no hourly rates", func(t *testing.T) {
		p, err := NewJobPosting(clientID, fixedInput())

		require.NoError(t, err)
		assert.Equal(t, PostingStatusOpen, p.Status)
		assert.Equal(t, clientID, p.ClientID)
		assert.Nil(t, p.MaximumHourlyRate)
		assert.Nil(t, p.MinimumHourlyRate)
		require.NotNil(t, p.MaximumBudget)
		assert.True(t, p.MaximumBudget.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, []string{"html", "css"}, p.Technologies)
		assert.Equal(t, []catalog.ExpertiseLevel{catalog.ExpertiseBeginner, catalog.ExpertiseExpert}, p.ExpertiseLevels)
		assert.Equal(t, ResidenceAnywhere, p.PreferredCoderResidence)
		assert.Len(t, p.GetDomainEvents(), 1)
	})

	t.Run("hourly posting has no maximum budget", func(t *testing.T) {
		p, err := NewJobPosting(clientID, hourlyInput())

		require.NoError(t, err)
		assert.Nil(t, p.MaximumBudget)
		assert.Equal(t, 40, *p.MaximumHourlyRate)
		assert.Equal(t, 20, *p.MinimumHourlyRate)
	})

	tests := []struct {
		name   string
		mutate func(*NewPostingInput)
		fields []string
	}{
		{
			name:   "fixed rejects hourly rates",
			mutate: func(in *NewPostingInput) { in.MaximumHourlyRate = intPtr(10); in.MinimumHourlyRate = intPtr(5) },
			fields: []string{"maximum_hourly_rate", "minimum_hourly_rate"},
		},
		{
			name:   "fixed requires positive budget",
			mutate: func(in *NewPostingInput) { in.MaximumBudget = decPtr("0") },
			fields: []string{"maximum_budget"},
		},
		{
			name:   "fixed requires budget",
			mutate: func(in *NewPostingInput) { in.MaximumBudget = nil },
			fields: []string{"maximum_budget"},
		},
		{
			name: "hourly requires both rates",
			mutate: func(in *NewPostingInput) {
				in.BudgetType = BudgetTypeHourly
				in.MaximumBudget = nil
				in.MaximumHourlyRate = intPtr(30)
			},
			fields: []string{"minimum_hourly_rate"},
		},
		{
			name: "hourly maximum below minimum",
			mutate: func(in *NewPostingInput) {
				in.BudgetType = BudgetTypeHourly
				in.MaximumBudget = nil
				in.MaximumHourlyRate = intPtr(10)
				in.MinimumHourlyRate = intPtr(20)
			},
			fields: []string{"maximum_hourly_rate"},
		},
		{
			name:   "requires timezone and technology",
			mutate: func(in *NewPostingInput) { in.TimeZones = []string{" "}; in.Technologies = nil },
			fields: []string{"technologies", "timezones"},
		},
		{
			name:   "unknown budget type",
			mutate: func(in *NewPostingInput) { in.BudgetType = "BARTER" },
			fields: []string{"budget_type"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fixedInput()
			tt.mutate(&in)

			_, err := NewJobPosting(clientID, in)

			require.Error(t, err)
			assert.ElementsMatch(t, tt.fields, validationFields(t, err))
		})
	}

	t.Run("hourly ignores a supplied budget", func(t *testing.T) {
		in := hourlyInput()
		in.MaximumBudget = decPtr("900")

		p, err := NewJobPosting(clientID, in)

		require.NoError(t, err)
		assert.Nil(t, p.MaximumBudget)
	})
}

func TestJobPosting_ChangeStatus(t *testing.T) {
	clientID := uuid.New()
	p, err := NewJobPosting(clientID, fixedInput())
	require.NoError(t, err)
	p.ClearDomainEvents()

	t.Run("owner closes posting", func(t *testing.T) {
		require.NoError(t, p.ChangeStatus(clientID, PostingStatusClosed))
		assert.Equal(t, PostingStatusClosed, p.Status)
		assert.Len(t, p.GetDomainEvents(), 1)
	})

	t.Run("other client cannot see posting", func(t *testing.T) {
		err := p.ChangeStatus(uuid.New(), PostingStatusOpen)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		err := p.ChangeStatus(clientID, "ARCHIVED")
		assert.Equal(t, []string{"status"}, validationFields(t, err))
	})
}
