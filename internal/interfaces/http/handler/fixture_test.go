package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/hirecoder/backend/internal/application/catalog"
	contractapp "github.com/hirecoder/backend/internal/application/contract"
	homeapp "github.com/hirecoder/backend/internal/application/home"
	jobapp "github.com/hirecoder/backend/internal/application/job"
	profileapp "github.com/hirecoder/backend/internal/application/profile"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/persistence"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"github.com/hirecoder/backend/internal/infrastructure/storage"
	"github.com/hirecoder/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testUserHeader = "X-Test-User"

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...shared.DomainEvent) error { return nil }

// marketplace wires the real services over an in-memory database
type marketplace struct {
	db     *gorm.DB
	engine *gin.Engine
	users  map[string]*identity.User
}

func newMarketplace(t *testing.T) *marketplace {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	ctx := context.Background()
	m := &marketplace{db: db, users: make(map[string]*identity.User)}

	userRepo := persistence.NewGormUserRepository(db)
	for name, role := range map[string]identity.Role{
		"acme":   identity.RoleClient,
		"globex": identity.RoleClient,
		"grace":  identity.RoleCoder,
		"root":   identity.RoleSuperAdmin,
	} {
		u := &identity.User{
			BaseAggregateRoot: shared.NewBaseAggregateRoot(),
			Email:             name + "@example.com",
			Username:          name,
			PasswordHash:      "not-a-real-hash",
			Role:              role,
			Type:              identity.UserTypeIndividual,
			IsEmailVerified:   true,
			IsActive:          true,
		}
		require.NoError(t, userRepo.Create(ctx, u))
		m.users[name] = u
	}

	techs := persistence.NewGormTechnologyRepository(db)
	tech, err := catalog.NewTechnology("go", m.users["root"].ID, true)
	require.NoError(t, err)
	require.NoError(t, techs.Create(ctx, tech))
	zones := persistence.NewGormTimeZoneRepository(db)
	utc, err := catalog.NewTimeZone("UTC")
	require.NoError(t, err)
	require.NoError(t, zones.Create(ctx, utc))

	logger := zap.NewNop()
	events := noopPublisher{}
	settings := jobapp.Settings{
		PlatformFeePercentage: decimal.NewFromInt(20),
		AttachmentURLExpiry:   10 * time.Minute,
		PageLimits:            appshared.DefaultPageLimits,
	}
	postingRepo := persistence.NewGormJobPostingRepository(db)
	invitationRepo := persistence.NewGormJobInvitationRepository(db)
	contractRepo := persistence.NewGormJobContractRepository(db)
	txScope := persistence.NewGormTransactionScope(db)

	postings := NewJobPostingHandler(jobapp.NewPostingService(postingRepo, techs, zones, events, settings, logger))
	invitations := NewJobInvitationHandler(jobapp.NewInvitationService(invitationRepo, postingRepo, userRepo, events, appshared.NoopMetrics{}, settings, logger))
	proposals := NewJobProposalHandler(jobapp.NewProposalService(
		persistence.NewGormJobProposalRepository(db), postingRepo, txScope, nil, events, appshared.NoopMetrics{}, settings, logger))
	contracts := NewContractHandler(contractapp.NewContractService(contractRepo, events, appshared.DefaultPageLimits, logger))
	timesheets := NewTimesheetHandler(contractapp.NewTimesheetService(
		persistence.NewGormTimesheetRepository(db), contractRepo, txScope, events, appshared.NoopMetrics{}, appshared.DefaultPageLimits, logger))
	catalogs := NewCatalogHandler(catalogapp.NewCatalogService(techs, zones, appshared.DefaultPageLimits, logger))
	skillRepo := persistence.NewGormSkillRepository(db)
	profiles := NewProfileHandler(profileapp.NewProfileService(
		skillRepo, persistence.NewGormCertificationRepository(db), userRepo, techs, logger))
	files := storage.NewStubStorage("https://files.test")
	addressRepo := persistence.NewGormAddressRepository(db)
	companyRepo := persistence.NewGormCompanyDetailsRepository(db)
	experienceRepo := persistence.NewGormCoderExperienceRepository(db)
	details := NewProfileDetailsHandler(profileapp.NewDetailsService(profileapp.DetailsRepositories{
		Skills:     skillRepo,
		Addresses:  addressRepo,
		Presence:   persistence.NewGormDigitalPresenceRepository(db),
		Companies:  companyRepo,
		Experience: experienceRepo,
		Degrees:    persistence.NewGormDegreeRepository(db),
		Education:  persistence.NewGormEducationRepository(db),
	}, files, time.Minute, logger))
	landing := NewHomeHandler(homeapp.NewRecommendationService(homeapp.Repositories{
		Postings:   postingRepo,
		Users:      userRepo,
		Companies:  companyRepo,
		Experience: experienceRepo,
		Addresses:  addressRepo,
		Skills:     skillRepo,
	}, files, time.Minute, logger))

	r := gin.New()
	api := r.Group("/api/v1", m.authenticate)
	api.GET("/technologies", catalogs.ListTechnologies)
	api.POST("/technologies", catalogs.CreateTechnology)
	api.POST("/profile/skills", profiles.AddSkill)
	api.GET("/profile/skills", profiles.ListSkills)
	api.GET("/profile/address", details.GetAddress)
	api.PUT("/profile/address", details.SaveAddress)
	api.PUT("/profile/digital-presence", details.SaveDigitalPresence)
	api.PUT("/profile/company", details.SaveCompanyDetails)
	api.PUT("/profile/experience", details.SaveExperience)
	api.GET("/profile/degrees", details.ListDegrees)
	api.POST("/profile/degrees", details.AddDegree)
	api.DELETE("/profile/degrees/:id", details.RemoveDegree)
	api.GET("/profile/education", details.GetEducation)
	api.PUT("/profile/education", details.SaveEducation)
	api.POST("/profile/files", details.RequestFileUpload)
	api.GET("/profile/files/:kind", details.GetFileURL)
	r.GET("/api/v1/home/recommended-jobs", landing.RecommendedJobs)
	r.GET("/api/v1/home/recommended-jobs/:id", landing.RecommendedJob)
	r.GET("/api/v1/home/recommended-coders", landing.RecommendedCoders)
	api.POST("/job-postings", postings.CreatePosting)
	api.GET("/job-postings", postings.ListPostings)
	api.GET("/job-postings/:id", postings.GetPosting)
	api.PATCH("/job-postings/:id", postings.UpdatePostingStatus)
	api.POST("/invitations", invitations.SendInvitation)
	api.POST("/proposals", proposals.SubmitProposal)
	api.GET("/proposals", proposals.ListProposals)
	api.PATCH("/proposals/:id", proposals.UpdateProposalStatus)
	api.GET("/contracts", contracts.ListContracts)
	api.GET("/contracts/:id", contracts.GetContract)
	api.POST("/timesheets", timesheets.SubmitTimesheet)
	api.PATCH("/timesheets/:id", timesheets.ReviewTimesheet)
	m.engine = r
	return m
}

// authenticate maps the test header onto a seeded user
func (m *marketplace) authenticate(c *gin.Context) {
	if u, ok := m.users[c.GetHeader(testUserHeader)]; ok {
		c.Set(middleware.JWTActorKey, u.Actor())
	}
	c.Next()
}

func (m *marketplace) do(t *testing.T, as, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if as != "" {
		req.Header.Set(testUserHeader, as)
	}
	w := httptest.NewRecorder()
	m.engine.ServeHTTP(w, req)

	var envelope map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	}
	return w, envelope
}

func dataOf(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "response has no object data: %v", envelope)
	return data
}

func errorCodeOf(envelope map[string]any) string {
	e, _ := envelope["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func (m *marketplace) fixedPosting(t *testing.T) string {
	t.Helper()
	w, env := m.do(t, "acme", http.MethodPost, "/api/v1/job-postings", map[string]any{
		"title":          "Payments API",
		"description":    "Build the backend",
		"technologies":   []string{"Go"},
		"timezones":      []string{"UTC"},
		"project_size":   "MEDIUM",
		"budget_type":    "FIXED",
		"duration":       "SHORT_TERM",
		"maximum_budget": "1000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return dataOf(t, env)["id"].(string)
}

func (m *marketplace) hourlyPosting(t *testing.T) string {
	t.Helper()
	w, env := m.do(t, "acme", http.MethodPost, "/api/v1/job-postings", map[string]any{
		"title":               "Database care",
		"description":         "Maintain the database",
		"technologies":        []string{"go"},
		"timezones":           []string{"UTC"},
		"project_size":        "LARGE",
		"budget_type":         "HOURLY",
		"duration":            "LONG_TERM",
		"maximum_hourly_rate": 80,
		"minimum_hourly_rate": 40,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return dataOf(t, env)["id"].(string)
}
