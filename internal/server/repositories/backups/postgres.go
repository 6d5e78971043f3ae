package backups

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sanmitsu/internal/dbx"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
)

// PostgresRepository implements backup bookkeeping over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, b *models.Backup) error {
	query := `
		INSERT INTO backups (storage_key, user_id)
		VALUES ($1, $2)
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, query, b.StorageKey, b.UserID).Scan(&b.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
