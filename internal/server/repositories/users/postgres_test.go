package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
)

const (
	insertQ = `(?s)^INSERT INTO users \(username, salt, master_key_verifier\)\s+VALUES \(\$1, \$2, \$3\)\s+RETURNING id, created_at$`
	selectQ = `(?s)^SELECT id, username, salt, master_key_verifier, created_at\s+FROM users WHERE username = \$1$`
	clockQ  = `(?s)^UPDATE users\s+SET last_server_ts = GREATEST\(clock_timestamp\(\), last_server_ts \+ interval '1 microsecond'\)\s+WHERE id = \$1\s+RETURNING last_server_ts$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresRepository(db), mock
}

func alice() *models.User {
	return &models.User{UserName: "alice", Salt: []byte("salt"), Verifier: []byte("verifier")}
}

func TestCreate(t *testing.T) {
	created := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

	t.Run("returns id and creation time", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(insertQ).
			WithArgs("alice", []byte("salt"), []byte("verifier")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-42", created))

		got, err := repo.Create(context.Background(), alice())
		require.NoError(t, err)
		assert.Equal(t, "u-42", got.ID)
		assert.Equal(t, "alice", got.UserName)
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(insertQ).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		_, err := repo.Create(context.Background(), alice())
		assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

		_, err := repo.Create(context.Background(), alice())
		assert.ErrorContains(t, err, "insert user: db down")
	})
}

func TestGetUserByLogin(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(selectQ).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "salt", "master_key_verifier", "created_at"}).
				AddRow("u-1", "alice", []byte("salt"), []byte("ver"), time.Now()))

		got, err := repo.GetUserByLogin(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "u-1", got.ID)
		assert.Equal(t, []byte("salt"), got.Salt)
		assert.Equal(t, []byte("ver"), got.Verifier)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(selectQ).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserByLogin(context.Background(), "ghost")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(selectQ).WithArgs("alice").WillReturnError(errors.New("db err"))

		_, err := repo.GetUserByLogin(context.Background(), "alice")
		assert.ErrorContains(t, err, `select user "alice": db err`)
	})
}

func TestNextServerTimestamp(t *testing.T) {
	t.Run("converts to UTC", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		jst := time.FixedZone("JST", 9*60*60)
		ts := time.Date(2025, 1, 10, 17, 0, 0, 1000, jst)
		mock.ExpectQuery(clockQ).
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows([]string{"last_server_ts"}).AddRow(ts))

		got, err := repo.NextServerTimestamp(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, time.UTC, got.Location())
		assert.Equal(t, "2025-01-10T08:00:00.000001Z", common.FormatTimestamp(got))
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(clockQ).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		_, err := repo.NextServerTimestamp(context.Background(), "ghost")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(clockQ).WithArgs("u-1").WillReturnError(errors.New("db err"))

		_, err := repo.NextServerTimestamp(context.Background(), "u-1")
		assert.ErrorContains(t, err, "advance clock for u-1: db err")
	})
}
