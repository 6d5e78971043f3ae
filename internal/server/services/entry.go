// Package services holds the server use cases behind the gRPC handlers.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/dbx"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

// EntryService is the remote half of the sync protocol.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	validate    *validator.Validate
}

func NewEntryService(db *sql.DB, repomanager repomanager.RepositoryManager) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: repomanager,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Push stores rows for userID and returns them with server_updated_at
// assigned. The batch is applied in one transaction: either every row is
// stored or none is.
func (s *EntryService) Push(ctx context.Context, userID string, rows []models.Entry) ([]models.Entry, error) {
	out := make([]models.Entry, len(rows))
	for i, r := range rows {
		if err := s.checkRow(userID, &r); err != nil {
			return nil, err
		}
		r.UserID = userID
		out[i] = r
	}

	if len(out) == 0 {
		return out, nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)
		entries := s.repomanager.Entries(tx)

		for i := range out {
			ts, err := users.NextServerTimestamp(ctx, userID)
			if err != nil {
				return err
			}
			out[i].ServerUpdatedAt = common.FormatTimestamp(ts)

			if err := entries.Upsert(ctx, &out[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error storing entries: %w", err)
	}

	return out, nil
}

func (s *EntryService) checkRow(userID string, r *models.Entry) error {
	if r.UserID != "" && r.UserID != userID {
		return fmt.Errorf("%w: %s/%s belongs to another user", common.ErrorForbidden, r.EntryDate, r.Slot)
	}
	if err := s.validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s/%s: %v", common.ErrorValidation, r.EntryDate, r.Slot, err)
	}

	ts, err := common.NormalizeTimestamp(r.ClientUpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: client_updated_at: %v", common.ErrorValidation, err)
	}
	r.ClientUpdatedAt = ts

	if r.DeletedAt != nil {
		ts, err := common.NormalizeTimestamp(*r.DeletedAt)
		if err != nil {
			return fmt.Errorf("%w: deleted_at: %v", common.ErrorValidation, err)
		}
		r.DeletedAt = &ts
	}
	return nil
}

// Pull returns up to limit rows of userID changed after since, ascending
// by server_updated_at. An empty since pulls from the beginning. limit is
// clamped to common.MaxPullPageSize and defaults to common.DefaultPullPageSize.
func (s *EntryService) Pull(ctx context.Context, userID string, since string, limit int) ([]models.Entry, error) {
	var sinceTs *time.Time
	if since != "" {
		t, err := common.ParseTimestamp(since)
		if err != nil {
			return nil, fmt.Errorf("%w: since: %v", common.ErrorValidation, err)
		}
		sinceTs = &t
	}

	switch {
	case limit <= 0:
		limit = common.DefaultPullPageSize
	case limit > common.MaxPullPageSize:
		limit = common.MaxPullPageSize
	}

	rows, err := s.repomanager.Entries(s.db).SelectSince(ctx, userID, sinceTs, limit)
	if err != nil {
		return nil, fmt.Errorf("error selecting entries: %w", err)
	}
	return rows, nil
}
