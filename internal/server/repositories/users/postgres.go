package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/dbx"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

const (
	insertUser = `INSERT INTO users (username, salt, master_key_verifier)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	selectUserByName = `SELECT id, username, salt, master_key_verifier, created_at
		FROM users WHERE username = $1`

	// The clock never goes backwards and never repeats for one user, even
	// when the wall clock does or two pushes land in the same microsecond.
	advanceClock = `UPDATE users
		SET last_server_ts = GREATEST(clock_timestamp(), last_server_ts + interval '1 microsecond')
		WHERE id = $1
		RETURNING last_server_ts`
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.QueryRowContext(ctx, insertUser, user.UserName, user.Salt, user.Verifier).
		Scan(&user.ID, &user.CreatedAt)

	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return nil, common.ErrorAlreadyExists
	case err != nil:
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, selectUserByName, userName).
		Scan(&u.ID, &u.UserName, &u.Salt, &u.Verifier, &u.CreatedAt)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, common.ErrorNotFound
	case err != nil:
		return nil, fmt.Errorf("select user %q: %w", userName, err)
	}
	return u, nil
}

// NextServerTimestamp advances userID's logical clock and returns the new
// value in UTC. The row stays locked until the surrounding transaction ends.
func (r *PostgresRepository) NextServerTimestamp(ctx context.Context, userID string) (time.Time, error) {
	var ts time.Time
	err := r.db.QueryRowContext(ctx, advanceClock, userID).Scan(&ts)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return time.Time{}, common.ErrorNotFound
	case err != nil:
		return time.Time{}, fmt.Errorf("advance clock for %s: %w", userID, err)
	}
	return ts.UTC(), nil
}
