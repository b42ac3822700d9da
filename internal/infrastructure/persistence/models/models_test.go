package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPostingModel_ExpertiseFlags(t *testing.T) {
	budget := decimal.NewFromInt(500)
	posting, err := job.NewJobPosting(uuid.New(), job.NewPostingInput{
		Title:           "API",
		Description:     "Build an API",
		Technologies:    []string{"Go", "Postgres"},
		TimeZones:       []string{"UTC"},
		ProjectSize:     job.ProjectSizeSmall,
		BudgetType:      job.BudgetTypeFixed,
		ExpertiseLevels: []catalog.ExpertiseLevel{catalog.ExpertiseExpert, catalog.ExpertiseBeginner},
		Duration:        job.DurationShortTerm,
		MaximumBudget:   &budget,
	})
	require.NoError(t, err)

	m := JobPostingModelFromDomain(posting)
	assert.True(t, m.ExpertiseBeginner)
	assert.False(t, m.ExpertiseIntermediate)
	assert.True(t, m.ExpertiseExpert)
	require.Len(t, m.Technologies, 2)
	assert.Equal(t, "postgres", m.Technologies[1].TechnologyName)
	assert.Equal(t, 1, m.Technologies[1].Position)

	back := m.ToDomain()
	assert.Equal(t, []catalog.ExpertiseLevel{catalog.ExpertiseBeginner, catalog.ExpertiseExpert}, back.ExpertiseLevels)
	assert.Equal(t, []string{"go", "postgres"}, back.Technologies)
	assert.Equal(t, []string{"UTC"}, back.TimeZones)
}

func TestTimesheetModel_TimeOfDayColumns(t *testing.T) {
	ts := &contract.Timesheet{
		ContractID: uuid.New(),
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  contract.TimeOfDay{Hour: 9, Minute: 5},
		EndTime:    contract.TimeOfDay{Hour: 17, Minute: 30},
	}

	var m TimesheetModel
	m.FromDomain(ts)
	assert.Equal(t, "09:05", m.StartTime)
	assert.Equal(t, "17:30", m.EndTime)

	back := m.ToDomain()
	assert.Equal(t, ts.StartTime, back.StartTime)
	assert.Equal(t, ts.EndTime, back.EndTime)
}
