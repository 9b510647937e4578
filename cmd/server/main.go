package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/arabicvocab/backend/docs"
	"github.com/arabicvocab/backend/internal/config"
	"github.com/arabicvocab/backend/internal/handlers"
	"github.com/arabicvocab/backend/internal/logger"
	"github.com/arabicvocab/backend/internal/middlewares"
	"github.com/arabicvocab/backend/internal/repositories"
	"github.com/arabicvocab/backend/internal/services"
	"github.com/arabicvocab/backend/internal/storage"
	"github.com/arabicvocab/backend/internal/ui"
)

// @title Arabic Vocabulary API
// @version 1.0
// @description API for managing an Arabic vocabulary catalog with quiz and matching games

// @host localhost:8080
// @BasePath /api
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Arabic Vocabulary Service")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	wordRepo := repositories.NewWordRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	groupRepo := repositories.NewWordGroupRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// In-memory game session stores
	quizStore := storage.NewQuizStore(cfg.Sessions.TTL)
	matchStore := storage.NewMatchStore(cfg.Sessions.TTL)

	// Initialize services
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	wordService := services.NewWordService(wordRepo, tagRepo, groupRepo, logger.Logger)
	tagService := services.NewTagService(tagRepo, wordRepo)
	groupService := services.NewWordGroupService(groupRepo, wordRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	transferService := services.NewTransferService(wordRepo, tagRepo, groupRepo, settingsRepo, cfg.Storage.ExportDir)
	quizService := services.NewQuizService(wordRepo, quizStore, rng)
	matchService := services.NewMatchService(wordRepo, matchStore, rng, nil)

	// Initialize handlers
	wordsHandler := handlers.NewWordsHandler(wordService, logger.Logger)
	tagsHandler := handlers.NewTagsHandler(tagService, logger.Logger)
	groupsHandler := handlers.NewWordGroupsHandler(groupService, logger.Logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger.Logger)
	transferHandler := handlers.NewTransferHandler(transferService, logger.Logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger.Logger)
	matchHandler := handlers.NewMatchHandler(matchService, logger.Logger)
	keyboardHandler := handlers.NewKeyboardHandler(logger.Logger)
	themeHandler := handlers.NewThemeHandler(ui.NewThemeStore(cfg.Storage.ThemeFile), logger.Logger)

	// Evict idle game sessions periodically
	sessionCleaner := cron.New()
	if _, err := sessionCleaner.AddFunc("@every 5m", func() {
		removed := quizStore.Cleanup() + matchStore.Cleanup()
		if removed > 0 {
			logger.Logger.Info("evicted idle game sessions", zap.Int("count", removed))
		}
	}); err != nil {
		logger.Logger.Fatal("Failed to schedule session cleanup", zap.Error(err))
	}
	sessionCleaner.Start()
	defer sessionCleaner.Stop()

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		wordsHandler.RegisterRoutes(r)
		tagsHandler.RegisterRoutes(r)
		groupsHandler.RegisterRoutes(r)
		settingsHandler.RegisterRoutes(r)
		transferHandler.RegisterRoutes(r)
		quizHandler.RegisterRoutes(r)
		matchHandler.RegisterRoutes(r)
		keyboardHandler.RegisterRoutes(r)
		themeHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "vocab_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
