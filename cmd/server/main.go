package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tokyo-friends.backend/internal/config"
	"tokyo-friends.backend/internal/infrastructure/repositories"
	"tokyo-friends.backend/internal/interfaces/http/handlers"
	"tokyo-friends.backend/internal/interfaces/http/middleware"
	"tokyo-friends.backend/internal/usecases"
	"tokyo-friends.backend/pkg/jwt"
	"tokyo-friends.backend/pkg/logger"
	"tokyo-friends.backend/pkg/redis"
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
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
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

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	trustRepo := repositories.NewTrustRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	interactionRepo := repositories.NewInteractionRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	communityRepo := repositories.NewCommunityRepository(db)
	candidateSource := repositories.NewCandidateSource(db)

	// Skip suppression lives in Redis with a rolling TTL
	skipStore := redis.NewSkipStore(redis.GetClient(), cfg.Moderation.SkipSuppressTTL)

	// Initialize usecases
	userUsecase := usecases.NewUserUsecase(userRepo, jwtService)
	profileUsecase := usecases.NewProfileUsecase(profileRepo, userRepo)
	matchUsecase := usecases.NewMatchUsecase(interactionRepo, matchRepo, userRepo, profileRepo, skipStore)
	moderationUsecase := usecases.NewModerationUsecase(interactionRepo, matchRepo, userRepo, profileRepo, trustRepo, reportRepo, cfg.Moderation)
	deckUsecase := usecases.NewDeckUsecase(candidateSource, interactionRepo, skipStore)
	communityUsecase := usecases.NewCommunityUsecase(communityRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	deckHandler := handlers.NewDeckHandler(deckUsecase)
	matchHandler := handlers.NewMatchHandler(matchUsecase)
	moderationHandler := handlers.NewModerationHandler(moderationUsecase)
	communityHandler := handlers.NewCommunityHandler(communityUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		userHandler:       userHandler,
		profileHandler:    profileHandler,
		deckHandler:       deckHandler,
		matchHandler:      matchHandler,
		moderationHandler: moderationHandler,
		communityHandler:  communityHandler,
		authMiddleware:    authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 Tokyo Friends Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
