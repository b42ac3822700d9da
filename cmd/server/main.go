package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/hirecoder/backend/internal/application/catalog"
	contractapp "github.com/hirecoder/backend/internal/application/contract"
	homeapp "github.com/hirecoder/backend/internal/application/home"
	identityapp "github.com/hirecoder/backend/internal/application/identity"
	jobapp "github.com/hirecoder/backend/internal/application/job"
	profileapp "github.com/hirecoder/backend/internal/application/profile"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/infrastructure/auth"
	"github.com/hirecoder/backend/internal/infrastructure/config"
	"github.com/hirecoder/backend/internal/infrastructure/event"
	"github.com/hirecoder/backend/internal/infrastructure/logger"
	"github.com/hirecoder/backend/internal/infrastructure/mail"
	"github.com/hirecoder/backend/internal/infrastructure/persistence"
	"github.com/hirecoder/backend/internal/infrastructure/ratelimit"
	"github.com/hirecoder/backend/internal/infrastructure/storage"
	"github.com/hirecoder/backend/internal/infrastructure/telemetry"
	"github.com/hirecoder/backend/internal/interfaces/http/handler"
	"github.com/hirecoder/backend/internal/interfaces/http/middleware"
	"github.com/hirecoder/backend/internal/interfaces/http/router"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/hirecoder/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs

//	@title			HireCoder API
//	@version		1.0
//	@description	Freelance marketplace backend: clients post jobs, coders bid, accepted bids become contracts.

//	@contact.name	API Support
//	@contact.url	https://github.com/hirecoder/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	// Telemetry first so the bridged logger and global providers are in
	// place before anything else logs or opens spans.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = loggerProvider.Bridge(log, cfg.Telemetry.ServiceName, zapcore.InfoLevel)

	profiler, err := telemetry.NewProfiler(cfg.Profiler, cfg.App.Name, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if cfg.Profiler.Enabled && cfg.Profiler.SpanProfiles {
		tracerProvider.EnableSpanProfiles()
	}

	log.Info("Starting HireCoder backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, cfg.Log.Level, cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.NewDBTracing(cfg.Telemetry, "postgresql", log).Register(db.DB); err != nil {
			log.Fatal("Failed to register database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	redisClient := openRedis(ctx, cfg.Redis, log)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	var (
		blacklist     auth.TokenBlacklist
		resendLimiter ratelimit.Limiter
		apiLimiter    ratelimit.Limiter
		authLimiter   ratelimit.Limiter
	)
	if redisClient != nil {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		resendLimiter = ratelimit.NewRedisLimiter(redisClient, "verify", 1, cfg.Auth.VerificationResendInterval)
		apiLimiter = ratelimit.NewRedisLimiter(redisClient, "api", cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		authLimiter = ratelimit.NewRedisLimiter(redisClient, "auth", cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		resendLimiter = ratelimit.NewMemoryLimiter(1, cfg.Auth.VerificationResendInterval)
		apiLimiter = ratelimit.NewMemoryLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		authLimiter = ratelimit.NewMemoryLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	}

	attachments := openStorage(ctx, cfg, log)

	metrics, err := telemetry.NewMarketplaceMetrics(meterProvider.Meter(telemetry.MarketplaceMeterName))
	if err != nil {
		log.Fatal("Failed to create marketplace metrics", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	techRepo := persistence.NewGormTechnologyRepository(db.DB)
	zoneRepo := persistence.NewGormTimeZoneRepository(db.DB)
	skillRepo := persistence.NewGormSkillRepository(db.DB)
	certRepo := persistence.NewGormCertificationRepository(db.DB)
	postingRepo := persistence.NewGormJobPostingRepository(db.DB)
	invitationRepo := persistence.NewGormJobInvitationRepository(db.DB)
	proposalRepo := persistence.NewGormJobProposalRepository(db.DB)
	milestoneRepo := persistence.NewGormMilestoneRepository(db.DB)
	contractRepo := persistence.NewGormJobContractRepository(db.DB)
	timesheetRepo := persistence.NewGormTimesheetRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	companyRepo := persistence.NewGormCompanyDetailsRepository(db.DB)
	experienceRepo := persistence.NewGormCoderExperienceRepository(db.DB)
	degreeRepo := persistence.NewGormDegreeRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(jobapp.NewProposalSubmittedHandler(invitationRepo, log))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	pageLimits := appshared.PageLimits{
		DefaultPageSize: cfg.Marketplace.DefaultPageSize,
		MaxPageSize:     cfg.Marketplace.MaxPageSize,
	}
	jobSettings := jobapp.Settings{
		PlatformFeePercentage: cfg.Marketplace.PlatformFeePercentage,
		AttachmentURLExpiry:   cfg.Storage.PresignExpiration,
		PageLimits:            pageLimits,
	}

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	mailer := mail.NewAccountMailer(mail.NewLogSender(cfg.Auth.MailFrom, log), cfg.Auth.VerificationURL, cfg.Auth.PasswordResetURL)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, resendLimiter, mailer, eventBus, log)
	catalogService := catalogapp.NewCatalogService(techRepo, zoneRepo, pageLimits, log)
	profileService := profileapp.NewProfileService(skillRepo, certRepo, userRepo, techRepo, log)
	detailsService := profileapp.NewDetailsService(profileapp.DetailsRepositories{
		Skills:     skillRepo,
		Addresses:  addressRepo,
		Presence:   persistence.NewGormDigitalPresenceRepository(db.DB),
		Companies:  companyRepo,
		Experience: experienceRepo,
		Degrees:    degreeRepo,
		Education:  persistence.NewGormEducationRepository(db.DB),
	}, attachments, cfg.Storage.PresignExpiration, log)
	recommendationService := homeapp.NewRecommendationService(homeapp.Repositories{
		Postings:   postingRepo,
		Users:      userRepo,
		Companies:  companyRepo,
		Experience: experienceRepo,
		Addresses:  addressRepo,
		Skills:     skillRepo,
	}, attachments, cfg.Storage.PresignExpiration, log)
	postingService := jobapp.NewPostingService(postingRepo, techRepo, zoneRepo, eventBus, jobSettings, log)
	invitationService := jobapp.NewInvitationService(invitationRepo, postingRepo, userRepo, eventBus, metrics, jobSettings, log)
	proposalService := jobapp.NewProposalService(proposalRepo, postingRepo, txScope, attachments, eventBus, metrics, jobSettings, log)
	milestoneService := jobapp.NewMilestoneService(milestoneRepo, postingRepo, eventBus, jobSettings, log)
	contractService := contractapp.NewContractService(contractRepo, eventBus, pageLimits, log)
	timesheetService := contractapp.NewTimesheetService(timesheetRepo, contractRepo, txScope, eventBus, metrics, pageLimits, log)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		Enabled:       cfg.Telemetry.MetricsEnabled,
	}))
	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(apiLimiter, log))
	}

	jwtMiddleware := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})
	profiling := middleware.ProfilingWithConfig(middleware.ProfilingConfig{Enabled: cfg.Profiler.Enabled})

	systemHandler := handler.NewSystemHandler(version, dependencyChecks(db, redisClient))
	engine.GET("/health", systemHandler.Health)
	engine.GET("/ready", systemHandler.Ready)

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any",
			middleware.SwaggerProtection(middleware.SwaggerConfig{
				Enabled:     cfg.Swagger.Enabled,
				RequireAuth: cfg.Swagger.RequireAuth,
				AllowedIPs:  cfg.Swagger.AllowedIPs,
			}, jwtMiddleware),
			ginSwagger.WrapHandler(swaggerFiles.Handler),
		)
	}

	r := router.NewRouter(engine)
	if cfg.HTTP.AuthRateLimitEnabled {
		r.Use(authRateLimit(r.BasePath()+"/auth/", authLimiter, log))
	}
	r.Register(router.MarketplaceGroups(router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Profile:     handler.NewProfileHandler(profileService),
		Details:     handler.NewProfileDetailsHandler(detailsService),
		Home:        handler.NewHomeHandler(recommendationService),
		Postings:    handler.NewJobPostingHandler(postingService),
		Invitations: handler.NewJobInvitationHandler(invitationService),
		Proposals:   handler.NewJobProposalHandler(proposalService),
		Milestones:  handler.NewMilestoneHandler(milestoneService),
		Contracts:   handler.NewContractHandler(contractService),
		Timesheets:  handler.NewTimesheetHandler(timesheetService),
		System:      systemHandler,
	}, jwtMiddleware, middleware.TracingAttributeInjector(), profiling)...)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down metrics", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracing", zap.Error(err))
	}
	if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down log export", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// openRedis connects when a host is configured. Nil means the in-memory
// blacklist and limiters are used instead.
func openRedis(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) *redis.Client {
	if cfg.Host == "" {
		log.Warn("Redis not configured, using in-memory token blacklist and rate limiters")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Fatal("Failed to connect to redis", zap.String("addr", cfg.Addr()), zap.Error(err))
	}
	log.Info("Redis connected", zap.String("addr", cfg.Addr()))
	return client
}

// openStorage returns S3 storage when a bucket is configured and the local
// stub otherwise.
func openStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) jobapp.AttachmentStorage {
	if !cfg.Storage.IsConfigured() {
		if cfg.App.IsProduction() {
			log.Fatal("Attachment storage bucket is required in production")
		}
		log.Warn("Attachment storage not configured, presigned URLs are fake")
		return storage.NewStubStorage("")
	}
	s3, err := storage.NewS3Storage(&cfg.Storage,
		storage.WithLogger(log),
		storage.WithPresignExpiration(cfg.Storage.PresignExpiration),
	)
	if err != nil {
		log.Fatal("Failed to create attachment storage", zap.Error(err))
	}
	if err := s3.EnsureBucket(ctx); err != nil {
		log.Fatal("Failed to prepare attachment bucket", zap.String("bucket", s3.Bucket()), zap.Error(err))
	}
	return s3
}

func dependencyChecks(db *persistence.Database, client *redis.Client) map[string]handler.Pinger {
	checks := map[string]handler.Pinger{
		"database": handler.PingerFunc(func(context.Context) error { return db.Ping() }),
	}
	if client != nil {
		checks["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	}
	return checks
}

func corsConfig(cfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.CORSAllowOrigins
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	return cors
}

// authRateLimit applies the stricter login limiter to the auth endpoints only
func authRateLimit(prefix string, limiter ratelimit.Limiter, log *zap.Logger) gin.HandlerFunc {
	limit := middleware.RateLimitByKey(limiter, log, func(c *gin.Context) string {
		return "auth:" + c.ClientIP()
	})
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, prefix) {
			limit(c)
			return
		}
		c.Next()
	}
}
