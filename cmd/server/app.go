package main

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/tasktrack-io/tasktrack/internal/config"
	"github.com/tasktrack-io/tasktrack/internal/platform/postgres"
	"github.com/tasktrack-io/tasktrack/internal/platform/rediscache"
	"github.com/tasktrack-io/tasktrack/internal/service/tasks"
)

// application holds the process-scoped resources: the config, the logger,
// the database pool, the cache client, and the wired task service.
// Connections are created once at startup and injected downward.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	redisClient *redis.Client
	taskService tasks.TaskService
}

// newApplication wires the dependency graph from configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	redisClient, err := setupAppCache(cfg, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	taskStore := postgres.NewTaskStore(db)
	counter := rediscache.NewCounter(redisClient)
	taskService := tasks.NewTaskService(taskStore, counter, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		redisClient: redisClient,
		taskService: taskService,
	}, nil
}

// cleanup releases the process-scoped connections.
func (app *application) cleanup() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("Failed to close cache client", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database pool", "error", err)
		}
	}
}
