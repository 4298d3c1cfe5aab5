package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeo-clinic-api/config"
	"homeo-clinic-api/internal/converter"
	deliveryHttp "homeo-clinic-api/internal/delivery/http"
	"homeo-clinic-api/internal/delivery/http/handler"
	"homeo-clinic-api/internal/delivery/http/middleware"
	domainRepo "homeo-clinic-api/internal/domain/repository"
	"homeo-clinic-api/internal/infrastructure/cache"
	"homeo-clinic-api/internal/infrastructure/database"
	"homeo-clinic-api/internal/repository"
	"homeo-clinic-api/internal/service"
	"homeo-clinic-api/internal/usecase"
	"homeo-clinic-api/pkg/jwt"
	"homeo-clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Run schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	complaintRepo := repository.NewComplaintRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	followUpRepo := repository.NewFollowUpRepository()
	investigationRepo := repository.NewInvestigationRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	reportRepo := repository.NewReportRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	complaintUsecase := usecase.NewComplaintUsecase(db, log, complaintRepo, patientRepo, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, patientRepo, auditService)
	followUpUsecase := usecase.NewFollowUpUsecase(db, log, followUpRepo, patientRepo, auditService)
	investigationUsecase := usecase.NewInvestigationUsecase(db, log, investigationRepo, patientRepo, auditService)
	reportUsecase := usecase.NewReportUsecase(db, log, reportRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	complaintHandler := handler.NewComplaintHandler(complaintUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	followUpHandler := handler.NewFollowUpHandler(followUpUsecase, customValidator)
	investigationHandler := handler.NewInvestigationHandler(investigationUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	caseModuleRoutes := buildCaseModuleRoutes(db, log, patientRepo, auditService, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		complaintHandler,
		caseModuleRoutes,
		prescriptionHandler,
		followUpHandler,
		investigationHandler,
		reportHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// buildCaseModuleRoutes wires the eight case sections. Each gets its own
// repository, usecase and handler instance over its entity type; the
// slug is what appears in the URL.
func buildCaseModuleRoutes(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo domainRepo.PatientRepository,
	auditService service.AuditService,
	customValidator *validator.CustomValidator,
) []handler.CaseModuleRoute {
	return []handler.CaseModuleRoute{
		caseModuleRoute(db, log, "physical-generals", patientRepo, auditService, customValidator, converter.PhysicalGeneralsFromRequest),
		caseModuleRoute(db, log, "digestion", patientRepo, auditService, customValidator, converter.DigestionFromRequest),
		caseModuleRoute(db, log, "elimination", patientRepo, auditService, customValidator, converter.EliminationFromRequest),
		caseModuleRoute(db, log, "sleep-dreams", patientRepo, auditService, customValidator, converter.SleepDreamsFromRequest),
		caseModuleRoute(db, log, "sexual-function", patientRepo, auditService, customValidator, converter.SexualFunctionFromRequest),
		caseModuleRoute(db, log, "menstrual-history", patientRepo, auditService, customValidator, converter.MenstrualHistoryFromRequest),
		caseModuleRoute(db, log, "history", patientRepo, auditService, customValidator, converter.HistoryFromRequest),
		caseModuleRoute(db, log, "thermal-modalities", patientRepo, auditService, customValidator, converter.ThermalModalitiesFromRequest),
	}
}

func caseModuleRoute[D any, E any](
	db *gorm.DB,
	log *logrus.Logger,
	slug string,
	patientRepo domainRepo.PatientRepository,
	auditService service.AuditService,
	customValidator *validator.CustomValidator,
	convert func(*D, uuid.UUID) *E,
) handler.CaseModuleRoute {
	moduleRepo := repository.NewCaseModuleRepository[E]()
	moduleUsecase := usecase.NewCaseModuleUsecase(db, log, slug, moduleRepo, patientRepo, auditService, convert)
	moduleHandler := handler.NewCaseModuleHandler(moduleUsecase, customValidator)
	return handler.CaseModuleRoute{
		Path: slug,
		Get:  moduleHandler.Get,
		Put:  moduleHandler.Put,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
