package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func intPtr(v int) *int { return &v }

func newFixedPosting(t *testing.T, clientID uuid.UUID, title string, budget int64, techs ...string) *job.JobPosting {
	t.Helper()
	b := decimal.NewFromInt(budget)
	if len(techs) == 0 {
		techs = []string{"go"}
	}
	p, err := job.NewJobPosting(clientID, job.NewPostingInput{
		Title:           title,
		Description:     title + " description",
		Technologies:    techs,
		TimeZones:       []string{"UTC"},
		ProjectSize:     job.ProjectSizeMedium,
		BudgetType:      job.BudgetTypeFixed,
		ExpertiseLevels: []catalog.ExpertiseLevel{catalog.ExpertiseIntermediate},
		Duration:        job.DurationShortTerm,
		MaximumBudget:   &b,
	})
	require.NoError(t, err)
	return p
}

func newHourlyPosting(t *testing.T, clientID uuid.UUID, title string, minRate, maxRate int) *job.JobPosting {
	t.Helper()
	p, err := job.NewJobPosting(clientID, job.NewPostingInput{
		Title:             title,
		Description:       title + " description",
		Technologies:      []string{"python"},
		TimeZones:         []string{"Europe/Berlin", "UTC"},
		ProjectSize:       job.ProjectSizeLarge,
		BudgetType:        job.BudgetTypeHourly,
		ExpertiseLevels:   []catalog.ExpertiseLevel{catalog.ExpertiseExpert},
		Duration:          job.DurationLongTerm,
		MaximumHourlyRate: intPtr(maxRate),
		MinimumHourlyRate: intPtr(minRate),
	})
	require.NoError(t, err)
	return p
}

func newHourlyProposal(t *testing.T, posting *job.JobPosting, coderID uuid.UUID, rate int64) *job.JobProposal {
	t.Helper()
	r := decimal.NewFromInt(rate)
	p, err := job.NewJobProposal(posting, coderID, job.NewProposalInput{
		Description:         "I can do it",
		HourlyRate:          &r,
		AvailabilityPerWeek: intPtr(20),
	}, decimal.NewFromInt(20))
	require.NoError(t, err)
	return p
}

func newAcceptedContract(t *testing.T, proposal *job.JobProposal) *contract.JobContract {
	t.Helper()
	require.NoError(t, proposal.ChangeStatus(job.CoderParty{}, proposal.CoderID, job.ProposalStatusAcceptedByCoder))
	c, err := contract.NewJobContract(proposal, contract.Parties{
		ClientUsername: "client",
		CoderUsername:  "coder",
		PostingTitle:   "title",
	}, decimal.NewFromInt(20), time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}

func mustTechnology(t *testing.T, name string) *catalog.Technology {
	t.Helper()
	tech, err := catalog.NewTechnology(name, uuid.Nil, true)
	require.NoError(t, err)
	return tech
}

func catalogTimeZone(name string) (*catalog.TimeZone, error) {
	return catalog.NewTimeZone(name)
}
