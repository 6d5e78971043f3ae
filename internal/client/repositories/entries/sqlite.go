package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/dbx"
)

const entryColumns = `entry_date, slot, body_done, speech_done, mind_done,
	action_pick, sange, hatsugan, eko, note_ciphertext, note_nonce, note_version,
	client_updated_at, deleted_at, is_dirty, server_updated_at, device_id`

// SQLiteRepository implements Repository over the migrated SQLite schema.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a repository bound to db. The schema must
// already be migrated.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) UpsertLocal(ctx context.Context, e *models.Entry) error {
	query := `INSERT INTO entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(entry_date, slot) DO UPDATE SET
			body_done = excluded.body_done,
			speech_done = excluded.speech_done,
			mind_done = excluded.mind_done,
			action_pick = excluded.action_pick,
			sange = excluded.sange,
			hatsugan = excluded.hatsugan,
			eko = excluded.eko,
			note_ciphertext = excluded.note_ciphertext,
			note_nonce = excluded.note_nonce,
			note_version = excluded.note_version,
			client_updated_at = excluded.client_updated_at,
			deleted_at = excluded.deleted_at,
			is_dirty = excluded.is_dirty,
			server_updated_at = COALESCE(excluded.server_updated_at, entries.server_updated_at),
			device_id = excluded.device_id`

	if _, err := r.db.ExecContext(ctx, query, entryArgs(e, e.IsDirty)...); err != nil {
		return fmt.Errorf("failed to upsert entry %s: %w", e.Key(), err)
	}
	return nil
}

func (r *SQLiteRepository) ListByDate(ctx context.Context, date string) ([]models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		WHERE entry_date = ? AND deleted_at IS NULL
		ORDER BY slot ASC`
	return r.list(ctx, query, date)
}

func (r *SQLiteRepository) ListDirty(ctx context.Context) ([]models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		WHERE is_dirty = 1
		ORDER BY entry_date ASC, slot ASC`
	return r.list(ctx, query)
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.Entry, error) {
	return r.list(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY entry_date ASC, slot ASC`)
}

func (r *SQLiteRepository) ApplyRemote(ctx context.Context, rows []models.Entry) error {
	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(entry_date, slot) DO UPDATE SET
			body_done = excluded.body_done,
			speech_done = excluded.speech_done,
			mind_done = excluded.mind_done,
			action_pick = excluded.action_pick,
			sange = excluded.sange,
			hatsugan = excluded.hatsugan,
			eko = excluded.eko,
			note_ciphertext = excluded.note_ciphertext,
			note_nonce = excluded.note_nonce,
			note_version = excluded.note_version,
			client_updated_at = excluded.client_updated_at,
			deleted_at = excluded.deleted_at,
			is_dirty = 0,
			server_updated_at = excluded.server_updated_at,
			device_id = excluded.device_id
		WHERE entries.is_dirty = 0 OR entries.client_updated_at = excluded.client_updated_at`

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i := range rows {
			if _, err := tx.ExecContext(ctx, query, entryArgs(&rows[i], false)...); err != nil {
				return fmt.Errorf("failed to apply remote entry %s: %w", rows[i].Key(), err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) MarkClean(ctx context.Context, key models.Key, serverUpdatedAt, pushedClientUpdatedAt string) error {
	query := `UPDATE entries SET
			server_updated_at = ?,
			is_dirty = CASE WHEN client_updated_at = ? THEN 0 ELSE is_dirty END
		WHERE entry_date = ? AND slot = ?`

	_, err := r.db.ExecContext(ctx, query, serverUpdatedAt, pushedClientUpdatedAt, key.Date, string(key.Slot))
	if err != nil {
		return fmt.Errorf("failed to mark entry %s clean: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) GetLastSyncAt(ctx context.Context) (*string, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, LastSyncAtKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read last sync checkpoint: %w", err)
	}
	s := string(value)
	return &s, nil
}

func (r *SQLiteRepository) SetLastSyncAt(ctx context.Context, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, LastSyncAtKey, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to store last sync checkpoint: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, key models.Key) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_date = ? AND slot = ?`
	e, err := scanEntry(r.db.QueryRowContext(ctx, query, key.Date, string(key.Slot)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %s: %w", key, err)
	}
	return e, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*models.Entry, error) {
	var (
		e                                  models.Entry
		slot                               string
		body, speech, mind, dirty          int
		actionPick, sange, hatsugan, eko   sql.NullString
		cipher, nonce, deletedAt, serverTS sql.NullString
		deviceID                           sql.NullString
		noteVersion                        sql.NullInt64
	)
	err := s.Scan(&e.Date, &slot, &body, &speech, &mind,
		&actionPick, &sange, &hatsugan, &eko, &cipher, &nonce, &noteVersion,
		&e.ClientUpdatedAt, &deletedAt, &dirty, &serverTS, &deviceID)
	if err != nil {
		return nil, err
	}

	e.Slot = models.Slot(slot)
	e.BodyDone, e.SpeechDone, e.MindDone = body != 0, speech != 0, mind != 0
	e.ActionPick = (*models.Pick)(dbx.StringPtr(actionPick))
	e.Sange = (*models.Pick)(dbx.StringPtr(sange))
	e.Hatsugan = (*models.Pick)(dbx.StringPtr(hatsugan))
	e.Eko = (*models.Eko)(dbx.StringPtr(eko))
	e.NoteCiphertext = dbx.StringPtr(cipher)
	e.NoteNonce = dbx.StringPtr(nonce)
	e.NoteVersion = dbx.IntPtr(noteVersion)
	e.DeletedAt = dbx.StringPtr(deletedAt)
	e.IsDirty = dirty != 0
	e.ServerUpdatedAt = dbx.StringPtr(serverTS)
	e.DeviceID = dbx.StringPtr(deviceID)
	return &e, nil
}

func entryArgs(e *models.Entry, dirty bool) []any {
	return []any{
		e.Date, string(e.Slot),
		dbx.BoolToInt(e.BodyDone), dbx.BoolToInt(e.SpeechDone), dbx.BoolToInt(e.MindDone),
		dbx.NullString((*string)(e.ActionPick)),
		dbx.NullString((*string)(e.Sange)),
		dbx.NullString((*string)(e.Hatsugan)),
		dbx.NullString((*string)(e.Eko)),
		dbx.NullString(e.NoteCiphertext),
		dbx.NullString(e.NoteNonce),
		dbx.NullInt(e.NoteVersion),
		e.ClientUpdatedAt,
		dbx.NullString(e.DeletedAt),
		dbx.BoolToInt(dirty),
		dbx.NullString(e.ServerUpdatedAt),
		dbx.NullString(e.DeviceID),
	}
}
