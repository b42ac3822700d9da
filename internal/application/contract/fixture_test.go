package contract

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/persistence"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type reviewMetrics struct {
	appshared.NoopMetrics
	mu      sync.Mutex
	reviews map[string]int
	hours   decimal.Decimal
}

func (m *reviewMetrics) TimesheetReviewed(_ context.Context, status string, hours decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews[status]++
	m.hours = m.hours.Add(hours)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

type contractFixture struct {
	db         *gorm.DB
	contracts  *ContractService
	timesheets *TimesheetService
	repo       *persistence.GormJobContractRepository
	metrics    *reviewMetrics
	events     *recordingPublisher

	client      identity.Actor
	otherClient identity.Actor
	coder       identity.Actor
	otherCoder  identity.Actor
	today       time.Time
}

func newContractFixture(t *testing.T) *contractFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	f := &contractFixture{
		db:          db,
		repo:        persistence.NewGormJobContractRepository(db),
		metrics:     &reviewMetrics{reviews: make(map[string]int)},
		events:      &recordingPublisher{},
		client:      identity.NewActor(uuid.New(), identity.RoleClient, true),
		otherClient: identity.NewActor(uuid.New(), identity.RoleClient, true),
		coder:       identity.NewActor(uuid.New(), identity.RoleCoder, true),
		otherCoder:  identity.NewActor(uuid.New(), identity.RoleCoder, true),
		today:       time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.today }
	logger := zap.NewNop()

	f.contracts = NewContractService(f.repo, f.events, appshared.DefaultPageLimits, logger)
	f.contracts.now = clock
	f.timesheets = NewTimesheetService(
		persistence.NewGormTimesheetRepository(db),
		f.repo,
		persistence.NewGormTransactionScope(db),
		f.events,
		f.metrics,
		appshared.DefaultPageLimits,
		logger,
	)
	f.timesheets.now = clock
	return f
}

// newContract stores a contract between client and coder built the way an
// accepted proposal builds it
func (f *contractFixture) newContract(t *testing.T, client, coder identity.Actor, budget job.BudgetType, title string) *contract.JobContract {
	t.Helper()
	in := job.NewPostingInput{
		Title:        title,
		Description:  "Work",
		Technologies: []string{"go"},
		TimeZones:    []string{"UTC"},
		ProjectSize:  job.ProjectSizeMedium,
		BudgetType:   budget,
		Duration:     job.DurationShortTerm,
	}
	proposalIn := job.NewProposalInput{Description: "Ready"}
	if budget == job.BudgetTypeHourly {
		lo, hi := 40, 80
		in.MinimumHourlyRate, in.MaximumHourlyRate = &lo, &hi
		rate := decimal.NewFromInt(50)
		hours := 30
		proposalIn.HourlyRate, proposalIn.AvailabilityPerWeek = &rate, &hours
	} else {
		maxBudget := decimal.NewFromInt(1000)
		in.MaximumBudget = &maxBudget
	}
	posting, err := job.NewJobPosting(client.UserID, in)
	require.NoError(t, err)

	fee := decimal.NewFromInt(20)
	proposal, err := job.NewJobProposal(posting, coder.UserID, proposalIn, fee)
	require.NoError(t, err)
	require.NoError(t, proposal.ChangeStatus(job.CoderParty{}, coder.UserID, job.ProposalStatusAcceptedByCoder))

	c, err := contract.NewJobContract(proposal, contract.Parties{
		ClientUsername: "acme",
		CoderUsername:  "grace",
		PostingTitle:   title,
	}, fee, f.today)
	require.NoError(t, err)
	require.NoError(t, f.repo.Create(context.Background(), c))
	return c
}

func (f *contractFixture) reload(t *testing.T, id uuid.UUID) *contract.JobContract {
	t.Helper()
	c, err := f.repo.FindScoped(context.Background(), id, job.Scope{})
	require.NoError(t, err)
	return c
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	require.Equal(t, code, de.Code, de.Message)
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	require.NotEmpty(t, de.Details, de.Message)
	return de.Details[0].Field
}
