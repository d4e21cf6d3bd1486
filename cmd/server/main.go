package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	calendarapp "github.com/wellbeing/backend/internal/application/calendar"
	exportimportapp "github.com/wellbeing/backend/internal/application/exportimport"
	financialapp "github.com/wellbeing/backend/internal/application/financial"
	healthapp "github.com/wellbeing/backend/internal/application/health"
	identityapp "github.com/wellbeing/backend/internal/application/identity"
	notificationapp "github.com/wellbeing/backend/internal/application/notification"
	preferencesapp "github.com/wellbeing/backend/internal/application/preferences"
	productivityapp "github.com/wellbeing/backend/internal/application/productivity"
	wellbeingapp "github.com/wellbeing/backend/internal/application/wellbeing"
	worklifeapp "github.com/wellbeing/backend/internal/application/worklife"
	"github.com/wellbeing/backend/internal/infrastructure/auth"
	"github.com/wellbeing/backend/internal/infrastructure/cache"
	"github.com/wellbeing/backend/internal/infrastructure/config"
	"github.com/wellbeing/backend/internal/infrastructure/logger"
	"github.com/wellbeing/backend/internal/infrastructure/persistence"
	"github.com/wellbeing/backend/internal/infrastructure/scheduler"
	"github.com/wellbeing/backend/internal/interfaces/http/handler"
	"github.com/wellbeing/backend/internal/interfaces/http/middleware"
	"github.com/wellbeing/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			Wellbeing Copilot API
//	@version		1.0
//	@description	Personal wellbeing backend covering finances, health, work-life balance and productivity

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Wellbeing Copilot",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Redis backs the token blacklist and the dashboard cache. When it is
	// unreachable the server still comes up with in-process fallbacks, which
	// lose revocations and cached scores on restart.
	var (
		blacklist      auth.TokenBlacklist
		dashboardCache cache.DashboardCache
	)
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist and cache", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
		dashboardCache = cache.NewInMemoryDashboardCache(cfg.Redis.DashboardTTL)
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		blacklist = auth.NewRedisTokenBlacklistWithClient(redisClient)
		dashboardCache = cache.NewRedisDashboardCache(redisClient, cfg.Redis.DashboardTTL)
		log.Info("Redis connected successfully")
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	txRepo := persistence.NewGormTransactionRepository(db.DB)
	budgetRepo := persistence.NewGormBudgetRepository(db.DB)
	debtRepo := persistence.NewGormDebtRepository(db.DB)
	goalRepo := persistence.NewGormSavingsGoalRepository(db.DB)
	investmentRepo := persistence.NewGormInvestmentRepository(db.DB)
	metricRepo := persistence.NewGormMetricRepository(db.DB)
	exerciseRepo := persistence.NewGormExerciseRepository(db.DB)
	nutritionRepo := persistence.NewGormNutritionRepository(db.DB)
	sleepRepo := persistence.NewGormSleepRepository(db.DB)
	symptomRepo := persistence.NewGormSymptomRepository(db.DB)
	sessionRepo := persistence.NewGormWorkSessionRepository(db.DB)
	eventRepo := persistence.NewGormLifeEventRepository(db.DB)
	focusRepo := persistence.NewGormFocusDayRepository(db.DB)
	exportRecordRepo := persistence.NewGormExportRecordRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	preferenceRepo := persistence.NewGormPreferenceRepository(db.DB)
	moodRepo := persistence.NewGormMoodEntryRepository(db.DB)
	wellbeingGoalRepo := persistence.NewGormGoalRepository(db.DB)

	// Identity services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	profileService := identityapp.NewProfileService(userRepo)

	// Financial pillar
	categorizer := financialapp.NewCategorizer()
	transactionService := financialapp.NewTransactionService(txRepo, categorizer)
	budgetService := financialapp.NewBudgetService(budgetRepo, txRepo)
	debtService := financialapp.NewDebtService(debtRepo)
	savingsService := financialapp.NewSavingsService(goalRepo)
	investmentService := financialapp.NewInvestmentService(investmentRepo)
	financialAnalytics := financialapp.NewAnalyticsService(txRepo, budgetRepo, debtRepo, goalRepo, investmentRepo)

	// Health pillar
	metricService := healthapp.NewMetricService(metricRepo)
	exerciseService := healthapp.NewExerciseService(exerciseRepo, metricRepo, userRepo)
	nutritionService := healthapp.NewNutritionService(nutritionRepo)
	sleepService := healthapp.NewSleepService(sleepRepo)
	symptomService := healthapp.NewSymptomService(symptomRepo)
	healthAnalytics := healthapp.NewAnalyticsService(metricRepo, exerciseRepo, nutritionRepo, sleepRepo, userRepo)

	// Work-life pillar
	sessionService := worklifeapp.NewSessionService(sessionRepo)
	lifeEventService := worklifeapp.NewLifeEventService(eventRepo)
	balanceService := worklifeapp.NewBalanceService(sessionRepo, eventRepo)

	// Productivity pillar
	focusService := productivityapp.NewFocusService(focusRepo)

	// Cross-pillar aggregation
	wellbeingService := wellbeingapp.NewService(
		financialAnalytics,
		healthAnalytics,
		balanceService,
		focusService,
		txRepo,
		dashboardCache,
		log,
	)
	trackingService := wellbeingapp.NewTrackingService(moodRepo, wellbeingGoalRepo)

	// Supporting services
	preferencesService := preferencesapp.NewService(preferenceRepo)
	exportService := exportimportapp.NewService(
		txRepo,
		metricRepo,
		exerciseRepo,
		nutritionRepo,
		sleepRepo,
		sessionRepo,
		eventRepo,
		focusRepo,
		exportRecordRepo,
		log,
	)
	notificationService := notificationapp.NewService(notificationRepo)
	calendarService := calendarapp.NewService()

	// Notification pipeline: the cron trigger evaluates per-user schedules
	// and submits briefing/alert jobs, the scheduler's worker pool runs them
	// through the executor
	if cfg.Scheduler.Enabled {
		schedulerConfig := scheduler.DefaultConfig()
		schedulerConfig.Enabled = cfg.Scheduler.Enabled
		if cfg.Scheduler.JobTimeout > 0 {
			schedulerConfig.JobTimeout = cfg.Scheduler.JobTimeout
		}
		if cfg.Scheduler.RetryAttempts > 0 {
			schedulerConfig.RetryAttempts = cfg.Scheduler.RetryAttempts
		}
		if cfg.Scheduler.RetryDelay > 0 {
			schedulerConfig.RetryDelay = cfg.Scheduler.RetryDelay
		}

		executor := notificationapp.NewExecutor(
			notificationRepo,
			preferenceRepo,
			wellbeingService,
			budgetService,
			balanceService,
			log,
		)
		notificationScheduler := scheduler.NewScheduler(schedulerConfig, executor, log)
		if err := notificationScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start notification scheduler", zap.Error(err))
		}
		defer func() {
			if err := notificationScheduler.Stop(context.Background()); err != nil {
				log.Error("Error stopping notification scheduler", zap.Error(err))
			}
		}()

		triggerConfig := scheduler.DefaultCronTriggerConfig()
		if cfg.Scheduler.TickInterval > 0 {
			triggerConfig.TickInterval = cfg.Scheduler.TickInterval
		}
		cronTrigger := scheduler.NewCronTrigger(triggerConfig, notificationScheduler, preferenceRepo, log)
		if err := cronTrigger.Start(context.Background()); err != nil {
			log.Fatal("Failed to start notification trigger", zap.Error(err))
		}
		defer func() {
			if err := cronTrigger.Stop(context.Background()); err != nil {
				log.Error("Error stopping notification trigger", zap.Error(err))
			}
		}()
		log.Info("Notification scheduler started",
			zap.Int("max_concurrent_jobs", schedulerConfig.MaxConcurrentJobs),
			zap.Duration("tick_interval", triggerConfig.TickInterval),
		)
	}

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	debtHandler := handler.NewDebtHandler(debtService)
	savingsHandler := handler.NewSavingsHandler(savingsService)
	investmentHandler := handler.NewInvestmentHandler(investmentService)
	financialAnalyticsHandler := handler.NewFinancialAnalyticsHandler(financialAnalytics)
	metricHandler := handler.NewMetricHandler(metricService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)
	nutritionHandler := handler.NewNutritionHandler(nutritionService)
	sleepHandler := handler.NewSleepHandler(sleepService)
	symptomHandler := handler.NewSymptomHandler(symptomService)
	healthAnalyticsHandler := handler.NewHealthAnalyticsHandler(healthAnalytics)
	workSessionHandler := handler.NewWorkSessionHandler(sessionService)
	lifeEventHandler := handler.NewLifeEventHandler(lifeEventService)
	balanceHandler := handler.NewBalanceHandler(balanceService)
	focusHandler := handler.NewFocusHandler(focusService)
	wellbeingHandler := handler.NewWellbeingHandler(wellbeingService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	preferencesHandler := handler.NewPreferencesHandler(preferencesService)
	exportImportHandler := handler.NewExportImportHandler(exportService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Configure request validation to report JSON field names
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))
	engine.GET("/healthz", healthHandler(db))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Configure skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Auth routes carry a stricter per-IP limit on top of the global one
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.AuthRateLimit(authLimiter))
	}
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)

	// Profile routes
	profileRoutes := router.NewDomainGroup("profile", "/profile")
	profileRoutes.GET("", profileHandler.GetProfile)
	profileRoutes.PUT("", profileHandler.UpdateProfile)
	profileRoutes.POST("/password", profileHandler.ChangePassword)

	// Writes to any pillar bust the cached wellbeing overview
	bustDashboard := middleware.InvalidateDashboardOnWrite(wellbeingService)

	// Financial pillar
	financialRoutes := router.NewDomainGroup("financial", "/financial")
	financialRoutes.Use(bustDashboard)
	financialRoutes.POST("/transactions", transactionHandler.Create)
	financialRoutes.GET("/transactions", transactionHandler.List)
	financialRoutes.POST("/transactions/categorize", transactionHandler.Categorize)
	financialRoutes.GET("/transactions/:id", transactionHandler.Get)
	financialRoutes.PUT("/transactions/:id", transactionHandler.Update)
	financialRoutes.DELETE("/transactions/:id", transactionHandler.Delete)

	financialRoutes.PUT("/budgets", budgetHandler.Set)
	financialRoutes.GET("/budgets", budgetHandler.ListStatus)
	financialRoutes.GET("/budgets/suggestions", budgetHandler.Suggestions)
	financialRoutes.DELETE("/budgets/:id", budgetHandler.Delete)

	financialRoutes.POST("/debts", debtHandler.Create)
	financialRoutes.GET("/debts", debtHandler.List)
	financialRoutes.POST("/debts/payoff-plan", debtHandler.PayoffPlan)
	financialRoutes.PUT("/debts/:id", debtHandler.Update)
	financialRoutes.DELETE("/debts/:id", debtHandler.Delete)
	financialRoutes.POST("/debts/:id/payments", debtHandler.RecordPayment)

	financialRoutes.POST("/savings-goals", savingsHandler.Create)
	financialRoutes.GET("/savings-goals", savingsHandler.List)
	financialRoutes.PUT("/savings-goals/:id", savingsHandler.Update)
	financialRoutes.DELETE("/savings-goals/:id", savingsHandler.Delete)
	financialRoutes.POST("/savings-goals/:id/contributions", savingsHandler.Contribute)

	financialRoutes.POST("/investments", investmentHandler.Create)
	financialRoutes.GET("/investments", investmentHandler.List)
	financialRoutes.PUT("/investments/:id", investmentHandler.Update)
	financialRoutes.DELETE("/investments/:id", investmentHandler.Delete)

	financialRoutes.GET("/analytics/summary", financialAnalyticsHandler.Summary)
	financialRoutes.GET("/analytics/dashboard", financialAnalyticsHandler.Dashboard)
	financialRoutes.GET("/analytics/health-score", financialAnalyticsHandler.HealthScore)

	// Health pillar
	healthRoutes := router.NewDomainGroup("health", "/health")
	healthRoutes.Use(bustDashboard)
	healthRoutes.POST("/metrics", metricHandler.Record)
	healthRoutes.GET("/metrics", metricHandler.List)
	healthRoutes.GET("/metrics/:id", metricHandler.Get)
	healthRoutes.PUT("/metrics/:id", metricHandler.Update)
	healthRoutes.DELETE("/metrics/:id", metricHandler.Delete)

	healthRoutes.POST("/exercises", exerciseHandler.Log)
	healthRoutes.GET("/exercises", exerciseHandler.List)
	healthRoutes.GET("/exercises/:id", exerciseHandler.Get)
	healthRoutes.PUT("/exercises/:id", exerciseHandler.Update)
	healthRoutes.DELETE("/exercises/:id", exerciseHandler.Delete)

	healthRoutes.POST("/nutrition", nutritionHandler.Log)
	healthRoutes.GET("/nutrition", nutritionHandler.List)
	healthRoutes.GET("/nutrition/:id", nutritionHandler.Get)
	healthRoutes.PUT("/nutrition/:id", nutritionHandler.Update)
	healthRoutes.DELETE("/nutrition/:id", nutritionHandler.Delete)

	healthRoutes.POST("/sleep", sleepHandler.Log)
	healthRoutes.GET("/sleep", sleepHandler.List)
	healthRoutes.GET("/sleep/:id", sleepHandler.Get)
	healthRoutes.PUT("/sleep/:id", sleepHandler.Update)
	healthRoutes.DELETE("/sleep/:id", sleepHandler.Delete)

	healthRoutes.POST("/symptoms", symptomHandler.Report)
	healthRoutes.GET("/symptoms", symptomHandler.List)
	healthRoutes.GET("/symptoms/:id", symptomHandler.Get)
	healthRoutes.PUT("/symptoms/:id", symptomHandler.Update)
	healthRoutes.DELETE("/symptoms/:id", symptomHandler.Delete)

	healthRoutes.GET("/analytics/score", healthAnalyticsHandler.Score)
	healthRoutes.GET("/analytics/trends", healthAnalyticsHandler.Trends)
	healthRoutes.POST("/analytics/tdee", healthAnalyticsHandler.TDEE)
	healthRoutes.GET("/analytics/sleep", healthAnalyticsHandler.SleepAnalysis)
	healthRoutes.GET("/analytics/dashboard", healthAnalyticsHandler.Dashboard)

	// Work-life pillar
	worklifeRoutes := router.NewDomainGroup("worklife", "/worklife")
	worklifeRoutes.Use(bustDashboard)
	worklifeRoutes.POST("/sessions", workSessionHandler.Log)
	worklifeRoutes.GET("/sessions", workSessionHandler.List)
	worklifeRoutes.GET("/sessions/:id", workSessionHandler.Get)
	worklifeRoutes.PUT("/sessions/:id", workSessionHandler.Update)
	worklifeRoutes.DELETE("/sessions/:id", workSessionHandler.Delete)

	worklifeRoutes.POST("/events", lifeEventHandler.Log)
	worklifeRoutes.GET("/events", lifeEventHandler.List)
	worklifeRoutes.GET("/events/:id", lifeEventHandler.Get)
	worklifeRoutes.PUT("/events/:id", lifeEventHandler.Update)
	worklifeRoutes.DELETE("/events/:id", lifeEventHandler.Delete)

	worklifeRoutes.GET("/balance", balanceHandler.Score)
	worklifeRoutes.GET("/always-on", balanceHandler.AlwaysOn)
	worklifeRoutes.GET("/burnout", balanceHandler.BurnoutRisk)

	// Productivity pillar
	productivityRoutes := router.NewDomainGroup("productivity", "/productivity")
	productivityRoutes.Use(bustDashboard)
	productivityRoutes.POST("/focus", focusHandler.Log)
	productivityRoutes.GET("/focus", focusHandler.List)
	productivityRoutes.GET("/focus/:id", focusHandler.Get)
	productivityRoutes.DELETE("/focus/:id", focusHandler.Delete)
	productivityRoutes.GET("/score", focusHandler.Score)
	productivityRoutes.GET("/dashboard", focusHandler.Dashboard)

	// Cross-pillar wellbeing views
	wellbeingRoutes := router.NewDomainGroup("wellbeing", "/wellbeing")
	wellbeingRoutes.GET("/dashboard", wellbeingHandler.Dashboard)
	wellbeingRoutes.GET("/insights", wellbeingHandler.Insights)
	wellbeingRoutes.POST("/mood", trackingHandler.LogMood)
	wellbeingRoutes.GET("/mood", trackingHandler.ListMoods)
	wellbeingRoutes.DELETE("/mood/:id", trackingHandler.DeleteMood)
	wellbeingRoutes.POST("/goals", trackingHandler.CreateGoal)
	wellbeingRoutes.GET("/goals", trackingHandler.ListGoals)
	wellbeingRoutes.PUT("/goals/:id", trackingHandler.UpdateGoal)
	wellbeingRoutes.DELETE("/goals/:id", trackingHandler.DeleteGoal)

	// Preferences
	preferencesRoutes := router.NewDomainGroup("preferences", "/preferences")
	preferencesRoutes.GET("", preferencesHandler.Get)
	preferencesRoutes.PUT("", preferencesHandler.Update)

	// Data export/import
	dataRoutes := router.NewDomainGroup("data", "/data")
	dataRoutes.Use(bustDashboard)
	dataRoutes.GET("/template", exportImportHandler.Template)
	dataRoutes.GET("/export/json", exportImportHandler.ExportJSON)
	dataRoutes.GET("/export/csv", exportImportHandler.ExportCSV)
	dataRoutes.POST("/import/json", exportImportHandler.ImportJSON)
	dataRoutes.POST("/import/csv", exportImportHandler.ImportCSV)
	dataRoutes.GET("/history", exportImportHandler.History)

	// Notifications
	notificationRoutes := router.NewDomainGroup("notifications", "/notifications")
	notificationRoutes.GET("", notificationHandler.List)
	notificationRoutes.GET("/unread", notificationHandler.Unread)
	notificationRoutes.POST("/:id/read", notificationHandler.MarkRead)
	notificationRoutes.DELETE("/:id", notificationHandler.Delete)

	// Calendar integration
	calendarRoutes := router.NewDomainGroup("calendar", "/calendar")
	calendarRoutes.GET("/status", calendarHandler.Status)
	calendarRoutes.POST("/connect", calendarHandler.Connect)
	calendarRoutes.DELETE("/connect", calendarHandler.Disconnect)
	calendarRoutes.POST("/sync", calendarHandler.Sync)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	// Register all domain groups
	r.Register(authRoutes).
		Register(profileRoutes).
		Register(financialRoutes).
		Register(healthRoutes).
		Register(worklifeRoutes).
		Register(productivityRoutes).
		Register(wellbeingRoutes).
		Register(preferencesRoutes).
		Register(dataRoutes).
		Register(notificationRoutes).
		Register(calendarRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
