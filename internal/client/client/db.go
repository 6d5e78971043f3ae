package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/glebarez/go-sqlite"

	"github.com/dmitrijs2005/sanmitsu/internal/client/migrations"
	"github.com/dmitrijs2005/sanmitsu/internal/client/repositories/entries"
	"github.com/dmitrijs2005/sanmitsu/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sanmitsu/internal/filex"
)

// Backend names a local store implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendGorm   Backend = "gorm"
)

// Store bundles the repositories of one opened local database.
type Store struct {
	Entries  entries.Repository
	Metadata metadata.Repository

	db *sql.DB
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// OpenStore opens the local database at dsn with the given backend and
// brings its schema up to date.
func OpenStore(ctx context.Context, backend Backend, dsn string) (*Store, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	switch backend {
	case BackendSQLite, "":
		return openSQLite(ctx, dsn)
	case BackendGorm:
		return openGorm(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func openSQLite(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Entries:  entries.NewSQLiteRepository(db),
		Metadata: metadata.NewSQLiteRepository(db),
		db:       db,
	}, nil
}

func openGorm(ctx context.Context, dsn string) (*Store, error) {
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm store: %w", err)
	}
	db, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	entryRepo := entries.NewGormRepository(gdb)
	if err := entryRepo.AutoMigrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Entries:  entryRepo,
		Metadata: metadata.NewGormRepository(gdb),
		db:       db,
	}, nil
}
