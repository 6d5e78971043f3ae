package entries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/dbx"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, e *models.Entry) error {
	query := `
		INSERT INTO entries (user_id, entry_date, slot, body_done, speech_done, mind_done,
			action_pick, sange, hatsugan, eko, note_ciphertext, note_nonce, note_version,
			client_updated_at, deleted_at, server_updated_at, device_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (user_id, entry_date, slot)
		DO UPDATE SET
			body_done = EXCLUDED.body_done,
			speech_done = EXCLUDED.speech_done,
			mind_done = EXCLUDED.mind_done,
			action_pick = EXCLUDED.action_pick,
			sange = EXCLUDED.sange,
			hatsugan = EXCLUDED.hatsugan,
			eko = EXCLUDED.eko,
			note_ciphertext = EXCLUDED.note_ciphertext,
			note_nonce = EXCLUDED.note_nonce,
			note_version = EXCLUDED.note_version,
			client_updated_at = EXCLUDED.client_updated_at,
			deleted_at = EXCLUDED.deleted_at,
			server_updated_at = EXCLUDED.server_updated_at,
			device_id = EXCLUDED.device_id
	`
	_, err := r.db.ExecContext(ctx, query,
		e.UserID, e.EntryDate, e.Slot, e.BodyDone, e.SpeechDone, e.MindDone,
		dbx.NullString(e.ActionPick), dbx.NullString(e.Sange), dbx.NullString(e.Hatsugan), dbx.NullString(e.Eko),
		dbx.NullString(e.NoteCiphertext), dbx.NullString(e.NoteNonce), dbx.NullInt(e.NoteVersion),
		e.ClientUpdatedAt, dbx.NullString(e.DeletedAt), e.ServerUpdatedAt, dbx.NullString(e.DeviceID))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SelectSince(ctx context.Context, userID string, since *time.Time, limit int) ([]models.Entry, error) {
	query := `
		SELECT entry_date, slot, body_done, speech_done, mind_done,
			action_pick, sange, hatsugan, eko, note_ciphertext, note_nonce, note_version,
			client_updated_at, deleted_at, server_updated_at, device_id
		FROM entries
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR server_updated_at > $2)
		ORDER BY server_updated_at ASC
		LIMIT $3
	`
	var sinceArg sql.NullTime
	if since != nil {
		sinceArg = sql.NullTime{Time: *since, Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, query, userID, sinceArg, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		var (
			item                               models.Entry
			date, clientUpdated, serverUpdated time.Time
			deleted                            sql.NullTime
			action, sange, hatsugan, eko       sql.NullString
			ciphertext, nonce, device          sql.NullString
			version                            sql.NullInt64
		)
		if err := rows.Scan(
			&date, &item.Slot, &item.BodyDone, &item.SpeechDone, &item.MindDone,
			&action, &sange, &hatsugan, &eko, &ciphertext, &nonce, &version,
			&clientUpdated, &deleted, &serverUpdated, &device,
		); err != nil {
			return nil, err
		}

		item.EntryDate = date.Format(common.DateLayout)
		item.ActionPick = dbx.StringPtr(action)
		item.Sange = dbx.StringPtr(sange)
		item.Hatsugan = dbx.StringPtr(hatsugan)
		item.Eko = dbx.StringPtr(eko)
		item.NoteCiphertext = dbx.StringPtr(ciphertext)
		item.NoteNonce = dbx.StringPtr(nonce)
		item.NoteVersion = dbx.IntPtr(version)
		item.ClientUpdatedAt = common.FormatTimestamp(clientUpdated)
		if deleted.Valid {
			s := common.FormatTimestamp(deleted.Time)
			item.DeletedAt = &s
		}
		item.ServerUpdatedAt = common.FormatTimestamp(serverUpdated)
		item.DeviceID = dbx.StringPtr(device)
		item.UserID = userID

		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
