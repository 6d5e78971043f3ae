package metadata

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/glebarez/go-sqlite"

	"github.com/dmitrijs2005/sanmitsu/internal/client/migrations"
)

func setupSQLite(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db))
	return NewSQLiteRepository(db), db
}

func setupGorm(t *testing.T) *GormRepository {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "meta.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	r := NewGormRepository(gdb)
	require.NoError(t, r.AutoMigrate(context.Background()))
	return r
}

func backends(t *testing.T) map[string]func(t *testing.T) Repository {
	t.Helper()
	return map[string]func(t *testing.T) Repository{
		"sqlite": func(t *testing.T) Repository { r, _ := setupSQLite(t); return r },
		"gorm":   func(t *testing.T) Repository { return setupGorm(t) },
	}
}

func TestRepository_Contract(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("set then get", func(t *testing.T) {
				r := newRepo(t)
				require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))
				v, err := r.Get(ctx, "k1")
				require.NoError(t, err)
				assert.Equal(t, []byte{0x01, 0x02}, v)
			})

			t.Run("missing key is nil nil", func(t *testing.T) {
				r := newRepo(t)
				v, err := r.Get(ctx, "absent")
				require.NoError(t, err)
				assert.Nil(t, v)
			})

			t.Run("set overwrites", func(t *testing.T) {
				r := newRepo(t)
				require.NoError(t, r.Set(ctx, "k", []byte("old")))
				require.NoError(t, r.Set(ctx, "k", []byte("new")))
				v, err := r.Get(ctx, "k")
				require.NoError(t, err)
				assert.Equal(t, []byte("new"), v)
			})

			t.Run("get many skips missing keys", func(t *testing.T) {
				r := newRepo(t)
				require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
				require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))
				require.NoError(t, r.Set(ctx, "c", []byte{0xDD}))
				m, err := r.GetMany(ctx, "a", "b", "absent")
				require.NoError(t, err)
				assert.Equal(t, map[string][]byte{"a": {0xAA}, "b": {0xBB, 0xCC}}, m)

				m, err = r.GetMany(ctx)
				require.NoError(t, err)
				assert.Empty(t, m)
			})

			t.Run("delete is idempotent", func(t *testing.T) {
				r := newRepo(t)
				require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
				require.NoError(t, r.Delete(ctx, "x"))
				v, err := r.Get(ctx, "x")
				require.NoError(t, err)
				assert.Nil(t, v)
				require.NoError(t, r.Delete(ctx, "x"))
				require.NoError(t, r.Delete(ctx))
			})

			t.Run("delete several keys", func(t *testing.T) {
				r := newRepo(t)
				require.NoError(t, r.Set(ctx, "a", []byte{1}))
				require.NoError(t, r.Set(ctx, "b", []byte{2}))
				require.NoError(t, r.Set(ctx, "keep", []byte{3}))
				require.NoError(t, r.Delete(ctx, "a", "b"))
				m, err := r.GetMany(ctx, "a", "b", "keep")
				require.NoError(t, err)
				assert.Equal(t, map[string][]byte{"keep": {3}}, m)
			})
		})
	}
}

func TestSQLiteRepository_ErrorsAreWrapped(t *testing.T) {
	r, db := setupSQLite(t)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")
	require.ErrorContains(t, r.Set(ctx, "k", []byte("v")), "failed to set metadata[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete metadata [k]")
	_, err = r.GetMany(ctx, "k")
	require.ErrorContains(t, err, "failed to read metadata [k]")
}
