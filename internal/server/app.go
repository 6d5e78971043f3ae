// Package server wires the sync server: configuration, PostgreSQL storage,
// services and the gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sanmitsu/internal/logging"
	"github.com/dmitrijs2005/sanmitsu/internal/server/config"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sanmitsu/internal/server/services"

	gs "github.com/dmitrijs2005/sanmitsu/internal/server/grpc"
)

// Seams for tests.
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepoManager = func() repomanager.RepositoryManager {
		return repomanager.NewPostgresRepositoryManager()
	}
)

type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server runner
}

// NewApp connects to the database, applies migrations and builds the
// gRPC server. The caller owns the App and must Close it.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewJSONLogger(os.Stdout, cfg.LogLevel)
	}

	db, err := openDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	es := services.NewEntryService(db, rm)
	bs := services.NewBackupService(db, rm, cfg)

	srv := gs.NewGRPCServer(cfg.EndpointAddrGRPC, logger, us, es, bs, cfg.SecretKey)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

// Run serves until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...", "grpc", app.config.EndpointAddrGRPC)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

func (app *App) Close() error {
	return app.db.Close()
}
