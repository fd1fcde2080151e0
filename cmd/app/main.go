package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"eduverse/internal/catalog"
	"eduverse/internal/config"
	"eduverse/internal/guard"
	"eduverse/internal/infrastructure/provider"
	"eduverse/internal/infrastructure/repository"
	"eduverse/internal/infrastructure/security"
	"eduverse/internal/infrastructure/storage"
	"eduverse/internal/pkg/logger"
	"eduverse/internal/session"
	transport "eduverse/internal/transport/http"
	"eduverse/internal/transport/http/handlers"
	"eduverse/internal/transport/http/middleware"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zlog.Fatal("Failed to connect to Redis", "addr", cfg.RedisAddr, "error", err)
		}
		zlog.Info("Connected to Redis", "addr", cfg.RedisAddr)
	}

	var snapshots storage.SnapshotStore
	switch {
	case rdb != nil:
		snapshots = storage.NewRedisStore(rdb)
	case cfg.SnapshotDir != "":
		fileStore, err := storage.NewFileStore(cfg.SnapshotDir)
		if err != nil {
			zlog.Fatal("Failed to open snapshot dir", "dir", cfg.SnapshotDir, "error", err)
		}
		snapshots = fileStore
	default:
		zlog.Warn("No snapshot backend configured, state will not survive restarts")
		snapshots = storage.NewMemoryStore()
	}

	hasher := security.NewPasswordHasher()
	tokens := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret)
	idp := provider.NewLocal(hasher)

	sessions := session.NewStore(snapshots, idp, cfg.LoginTimeout, zlog)
	courses := catalog.NewStore(snapshots, zlog)
	accessGuard := guard.New(sessions)

	// Restore runs concurrently with server startup; the guard answers with
	// the loading placeholder until it completes.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		// Catalog first: once the session store leaves its loading state the
		// guard starts admitting course traffic.
		courses.Restore(ctx)
		sessions.Restore(ctx)
		zlog.Info("Stores restored")
	}()

	var registryHandler *handlers.RegistryHandler
	if cfg.DatabaseConfigured() {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			zlog.Fatal("Failed to connect to DB", "error", err)
		}
		if err := db.AutoMigrate(
			&repository.UserRecord{},
			&repository.CourseRecord{},
			&repository.EnrollmentRecord{},
		); err != nil {
			zlog.Fatal("Failed to migrate DB", "error", err)
		}

		registryHandler = handlers.NewRegistryHandler(
			repository.NewUserRepository(db),
			repository.NewCourseRepository(db),
			repository.NewEnrollmentRepository(db),
			zlog,
		)
		zlog.Info("Administrative registry enabled", "db", cfg.DBName)
	}

	authHandler := handlers.NewAuthHandler(sessions, tokens, zlog)
	userHandler := handlers.NewUserHandler(sessions)
	courseHandler := handlers.NewCourseHandler(courses, sessions)
	limiter := middleware.NewRateLimiter(rdb)

	router := transport.NewRouter(
		authHandler, userHandler, courseHandler, registryHandler,
		accessGuard, courses, tokens, limiter, cfg.FrontendURL,
	)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("EduVerse API running", "addr", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Failed to serve", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	zlog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Forced shutdown", "error", err)
	}
}
