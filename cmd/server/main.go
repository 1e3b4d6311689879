package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"investgrow.backend/internal/config"
	"investgrow.backend/internal/domain/repositories"
	infrarepo "investgrow.backend/internal/infrastructure/repositories"
	"investgrow.backend/internal/infrastructure/storage"
	"investgrow.backend/internal/interfaces/http/handlers"
	"investgrow.backend/internal/interfaces/http/middleware"
	"investgrow.backend/internal/usecases"
	"investgrow.backend/pkg/jwt"
	"investgrow.backend/pkg/logger"
	"investgrow.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	newSessionStore  = redis.NewSessionStore
	newDocumentStore = func(ctx context.Context, region, bucket string) (repositories.DocumentStore, error) {
		return storage.NewS3DocumentStore(ctx, region, bucket)
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	documentStore, err := newDocumentStore(context.Background(), cfg.Storage.Region, cfg.Storage.KYCBucket)
	if err != nil {
		return fmt.Errorf("failed to initialize document store: %w", err)
	}

	// Repositories
	userRepo := infrarepo.NewUserRepository(db)
	planRepo := infrarepo.NewPlanRepository(db)
	investmentRepo := infrarepo.NewInvestmentRepository(db)
	kycRepo := infrarepo.NewKycRepository(db)
	consultationRepo := infrarepo.NewConsultationRepository(db)
	contactMessageRepo := infrarepo.NewContactMessageRepository(db)
	blogRepo := infrarepo.NewBlogRepository(db)
	auditLogRepo := infrarepo.NewAuditLogRepository(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore)
	userUsecase := usecases.NewUserUsecase(userRepo, sessionStore)
	kycUsecase := usecases.NewKycUsecase(kycRepo, userRepo, documentStore)
	investmentUsecase := usecases.NewInvestmentUsecase(planRepo, investmentRepo)
	communicationUsecase := usecases.NewCommunicationUsecase(consultationRepo, contactMessageRepo)
	blogUsecase := usecases.NewBlogUsecase(blogRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, investmentRepo, auditLogRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	kycHandler := handlers.NewKycHandler(kycUsecase)
	investmentHandler := handlers.NewInvestmentHandler(investmentUsecase)
	communicationHandler := handlers.NewCommunicationHandler(communicationUsecase)
	blogHandler := handlers.NewBlogHandler(blogUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)
	optionalAuthMiddleware := middleware.OptionalAuthMiddleware(jwtService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:            authHandler,
		userHandler:            userHandler,
		kycHandler:             kycHandler,
		investmentHandler:      investmentHandler,
		communicationHandler:   communicationHandler,
		blogHandler:            blogHandler,
		adminHandler:           adminHandler,
		authMiddleware:         authMiddleware,
		optionalAuthMiddleware: optionalAuthMiddleware,
	})

	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	log.Printf("🚀 InvestGrow Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
