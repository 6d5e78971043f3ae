package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/dbx"
	"github.com/dmitrijs2005/sanmitsu/internal/server/config"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/backups"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/entries"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type fakeUsersRepo struct {
	byName    map[string]*models.User
	createErr error
	getErr    error

	clock    time.Time
	clockErr error
	ticks    int
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = "id-" + u.UserName
	if f.byName == nil {
		f.byName = map[string]*models.User{}
	}
	f.byName[u.UserName] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

// NextServerTimestamp ticks one microsecond per call from clock.
func (f *fakeUsersRepo) NextServerTimestamp(ctx context.Context, userID string) (time.Time, error) {
	if f.clockErr != nil {
		return time.Time{}, f.clockErr
	}
	f.ticks++
	return f.clock.Add(time.Duration(f.ticks) * time.Microsecond), nil
}

type fakeEntriesRepo struct {
	upserted  []models.Entry
	upsertErr error
	failAt    int

	selOut   []models.Entry
	selErr   error
	selUser  string
	selSince *time.Time
	selLimit int
}

func (f *fakeEntriesRepo) Upsert(ctx context.Context, e *models.Entry) error {
	if f.upsertErr != nil && len(f.upserted) == f.failAt {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, *e)
	return nil
}

func (f *fakeEntriesRepo) SelectSince(ctx context.Context, userID string, since *time.Time, limit int) ([]models.Entry, error) {
	f.selUser, f.selSince, f.selLimit = userID, since, limit
	return f.selOut, f.selErr
}

type fakeRefreshRepo struct {
	tokens    map[string]*models.RefreshToken
	createErr error
	pruneErr  error
	pruned    []string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID, token string, expires time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.tokens == nil {
		f.tokens = map[string]*models.RefreshToken{}
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, ExpiresAt: expires}
	return nil
}

func (f *fakeRefreshRepo) Consume(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.tokens, token)
	return rt, nil
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context, userID string, now time.Time) (int64, error) {
	if f.pruneErr != nil {
		return 0, f.pruneErr
	}
	f.pruned = append(f.pruned, userID)
	return 0, nil
}

type fakeBackupsRepo struct {
	created []models.Backup
	err     error
}

func (f *fakeBackupsRepo) Create(ctx context.Context, b *models.Backup) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *b)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	e *fakeEntriesRepo
	r *fakeRefreshRepo
	b *fakeBackupsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: &fakeUsersRepo{clock: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)},
		e: &fakeEntriesRepo{},
		r: &fakeRefreshRepo{},
		b: &fakeBackupsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) Entries(dbx.DBTX) entries.Repository             { return m.e }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Backups(dbx.DBTX) backups.Repository             { return m.b }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "k"
	cfg.AccessTokenValidityDuration = time.Hour
	cfg.RefreshTokenValidityDuration = 2 * time.Hour
	return cfg
}
