package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/eventiqo/eventiqo-backend/internal/core/services"
	"github.com/eventiqo/eventiqo-backend/internal/handlers"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
	"github.com/eventiqo/eventiqo-backend/internal/platform/config"
	"github.com/eventiqo/eventiqo-backend/internal/platform/database"
	"github.com/eventiqo/eventiqo-backend/internal/platform/session"
	"github.com/eventiqo/eventiqo-backend/internal/platform/viewcache"
	"github.com/eventiqo/eventiqo-backend/internal/repositories/database/pgsql"
	"github.com/eventiqo/eventiqo-backend/internal/utils"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	runMigrations(logger, cfg)

	repos := pgsql.NewRepositoryContainer(dbPool)

	// `eventiqo_backend seed` bootstraps the admin account and demo data,
	// then exits.
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		hash, err := utils.HashPassword(cfg.SeedAdminPassword)
		if err != nil {
			logger.Error("Failed to hash seed admin password", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := repos.Seeder.Bootstrap(context.Background(), cfg.SeedAdminUsername, hash); err != nil {
			logger.Error("Failed to seed database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Database seeded.", slog.String("adminUsername", cfg.SeedAdminUsername))
		return
	}

	cache := viewcache.New(5 * time.Minute)
	svcs := services.NewServiceContainer(repos, cache)
	codec := session.NewCodec(cfg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcs, codec, repos.User)

	logger.Info("Starting server", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations over a short-lived
// database/sql connection, separate from the application's pgx pool.
func runMigrations(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		os.Exit(1)
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		os.Exit(1)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
}
