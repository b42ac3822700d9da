package job

import (
	"context"
	"sync"
	"testing"
	"time"

	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/persistence"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockAttachmentStorage is a mock implementation of AttachmentStorage
type MockAttachmentStorage struct {
	mock.Mock
}

func (m *MockAttachmentStorage) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAttachmentStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAttachmentStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockAttachmentStorage) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// countingMetrics counts recorded business events
type countingMetrics struct {
	mu          sync.Mutex
	proposals   map[string]int
	contracts   int
	invitations int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{proposals: make(map[string]int)}
}

func (m *countingMetrics) ProposalSubmitted(_ context.Context, proposalType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.proposals[proposalType]++
}

func (m *countingMetrics) ContractCreated(context.Context, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contracts++
}

func (m *countingMetrics) InvitationSent(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invitations++
}

func (m *countingMetrics) TimesheetReviewed(context.Context, string, decimal.Decimal) {}

// recordingPublisher keeps every published event
type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) ofType(eventType string) []shared.DomainEvent {
	var out []shared.DomainEvent
	for _, e := range p.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

type jobFixture struct {
	db          *gorm.DB
	postings    *PostingService
	invitations *InvitationService
	proposals   *ProposalService
	milestones  *MilestoneService
	handler     *ProposalSubmittedHandler
	storage     *MockAttachmentStorage
	metrics     *countingMetrics
	events      *recordingPublisher

	client      *identity.User
	otherClient *identity.User
	coder       *identity.User
	otherCoder  *identity.User
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	ctx := context.Background()
	f := &jobFixture{
		db:      db,
		storage: new(MockAttachmentStorage),
		metrics: newCountingMetrics(),
		events:  &recordingPublisher{},
	}

	users := persistence.NewGormUserRepository(db)
	f.client = seedUser(t, users, "acme", identity.RoleClient)
	f.otherClient = seedUser(t, users, "globex", identity.RoleClient)
	f.coder = seedUser(t, users, "grace", identity.RoleCoder)
	f.otherCoder = seedUser(t, users, "linus", identity.RoleCoder)

	techs := persistence.NewGormTechnologyRepository(db)
	for _, name := range []string{"go", "postgresql"} {
		tech, err := catalog.NewTechnology(name, f.client.ID, true)
		require.NoError(t, err)
		require.NoError(t, techs.Create(ctx, tech))
	}
	zones := persistence.NewGormTimeZoneRepository(db)
	utc, err := catalog.NewTimeZone("UTC")
	require.NoError(t, err)
	require.NoError(t, zones.Create(ctx, utc))

	settings := Settings{
		PlatformFeePercentage: decimal.NewFromInt(20),
		AttachmentURLExpiry:   10 * time.Minute,
		PageLimits:            appshared.DefaultPageLimits,
	}
	logger := zap.NewNop()
	postingRepo := persistence.NewGormJobPostingRepository(db)
	invitationRepo := persistence.NewGormJobInvitationRepository(db)

	f.postings = NewPostingService(postingRepo, techs, zones, f.events, settings, logger)
	f.invitations = NewInvitationService(invitationRepo, postingRepo, users, f.events, f.metrics, settings, logger)
	f.proposals = NewProposalService(
		persistence.NewGormJobProposalRepository(db),
		postingRepo,
		persistence.NewGormTransactionScope(db),
		f.storage,
		f.events,
		f.metrics,
		settings,
		logger,
	)
	f.proposals.now = func() time.Time { return time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC) }
	f.milestones = NewMilestoneService(persistence.NewGormMilestoneRepository(db), postingRepo, f.events, settings, logger)
	f.handler = NewProposalSubmittedHandler(invitationRepo, logger)
	return f
}

func seedUser(t *testing.T, repo identity.UserRepository, username string, role identity.Role) *identity.User {
	t.Helper()
	u := &identity.User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             username + "@example.com",
		Username:          username,
		PasswordHash:      "not-a-real-hash",
		Role:              role,
		Type:              identity.UserTypeIndividual,
		IsEmailVerified:   true,
		IsActive:          true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func intPtr(v int) *int { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func (f *jobFixture) fixedPosting(t *testing.T, title string, budget int64) *PostingResponse {
	t.Helper()
	p, err := f.postings.CreatePosting(context.Background(), f.client.Actor(), CreatePostingRequest{
		Title:         title,
		Description:   "Build the backend",
		Technologies:  []string{"Go"},
		TimeZones:     []string{"UTC"},
		ProjectSize:   job.ProjectSizeMedium,
		BudgetType:    job.BudgetTypeFixed,
		Expertise:     []catalog.ExpertiseLevel{catalog.ExpertiseExpert},
		Duration:      job.DurationShortTerm,
		MaximumBudget: decPtr(budget),
	})
	require.NoError(t, err)
	return p
}

func (f *jobFixture) hourlyPosting(t *testing.T, title string) *PostingResponse {
	t.Helper()
	p, err := f.postings.CreatePosting(context.Background(), f.client.Actor(), CreatePostingRequest{
		Title:             title,
		Description:       "Maintain the database",
		Technologies:      []string{"postgresql", "go"},
		TimeZones:         []string{"UTC"},
		ProjectSize:       job.ProjectSizeLarge,
		BudgetType:        job.BudgetTypeHourly,
		Duration:          job.DurationLongTerm,
		MaximumHourlyRate: intPtr(80),
		MinimumHourlyRate: intPtr(40),
	})
	require.NoError(t, err)
	return p
}

func (f *jobFixture) submit(t *testing.T, coder *identity.User, posting *PostingResponse) *ProposalResponse {
	t.Helper()
	req := SubmitProposalRequest{JobPostingID: posting.ID, Description: "I have done this before"}
	if posting.BudgetType == job.BudgetTypeHourly {
		req.HourlyRate = decPtr(50)
		req.AvailabilityPerWeek = intPtr(30)
	}
	p, err := f.proposals.SubmitProposal(context.Background(), coder.Actor(), req)
	require.NoError(t, err)
	return p
}

func (f *jobFixture) countContracts(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.JobContractModel{}).Count(&n).Error)
	return n
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	require.Equal(t, code, de.Code, de.Message)
}
