package entries

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
	"github.com/dmitrijs2005/sanmitsu/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
)

// EntryObject is the persisted form of an entry in the object-store backend.
type EntryObject struct {
	EntryDate       string  `gorm:"primaryKey"`
	Slot            string  `gorm:"primaryKey"`
	BodyDone        bool    `gorm:"not null"`
	SpeechDone      bool    `gorm:"not null"`
	MindDone        bool    `gorm:"not null"`
	ActionPick      *string
	Sange           *string
	Hatsugan        *string
	Eko             *string
	NoteCiphertext  *string
	NoteNonce       *string
	NoteVersion     *int
	ClientUpdatedAt string `gorm:"not null"`
	DeletedAt       *string
	IsDirty         bool `gorm:"not null;index"`
	ServerUpdatedAt *string
	DeviceID        *string
}

func (EntryObject) TableName() string { return "entry_objects" }

var conflictKey = []clause.Column{{Name: "entry_date"}, {Name: "slot"}}

var syncedColumns = []string{
	"body_done", "speech_done", "mind_done",
	"action_pick", "sange", "hatsugan", "eko",
	"note_ciphertext", "note_nonce", "note_version",
	"client_updated_at", "deleted_at", "device_id",
}

// GormRepository implements Repository on gorm. The checkpoint is kept in
// the metadata object table.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// AutoMigrate creates the entry and metadata object tables if needed.
func (r *GormRepository) AutoMigrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&EntryObject{}, &metadata.MetaObject{}); err != nil {
		return fmt.Errorf("failed to migrate entry objects: %w", err)
	}
	return nil
}

func (r *GormRepository) UpsertLocal(ctx context.Context, e *models.Entry) error {
	set := clause.AssignmentColumns(append(syncedColumns, "is_dirty"))
	set = append(set, clause.Assignment{
		Column: clause.Column{Name: "server_updated_at"},
		Value:  gorm.Expr("COALESCE(excluded.server_updated_at, entry_objects.server_updated_at)"),
	})

	obj := toObject(e)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   conflictKey,
		DoUpdates: set,
	}).Create(&obj).Error
	if err != nil {
		return fmt.Errorf("failed to upsert entry %s: %w", e.Key(), err)
	}
	return nil
}

func (r *GormRepository) ListByDate(ctx context.Context, date string) ([]models.Entry, error) {
	var objs []EntryObject
	err := r.db.WithContext(ctx).
		Where("entry_date = ? AND deleted_at IS NULL", date).
		Order("slot ASC").
		Find(&objs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	return fromObjects(objs), nil
}

func (r *GormRepository) ListDirty(ctx context.Context) ([]models.Entry, error) {
	var objs []EntryObject
	err := r.db.WithContext(ctx).
		Where("is_dirty = ?", true).
		Order("entry_date ASC, slot ASC").
		Find(&objs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select dirty entries: %w", err)
	}
	return fromObjects(objs), nil
}

func (r *GormRepository) ListAll(ctx context.Context) ([]models.Entry, error) {
	var objs []EntryObject
	if err := r.db.WithContext(ctx).Order("entry_date ASC, slot ASC").Find(&objs).Error; err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	return fromObjects(objs), nil
}

func (r *GormRepository) ApplyRemote(ctx context.Context, rows []models.Entry) error {
	if len(rows) == 0 {
		return nil
	}

	set := clause.AssignmentColumns(append(syncedColumns, "is_dirty", "server_updated_at"))
	onConflict := clause.OnConflict{
		Columns:   conflictKey,
		DoUpdates: set,
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("entry_objects.is_dirty = ? OR entry_objects.client_updated_at = excluded.client_updated_at", false),
		}},
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			obj := toObject(&rows[i])
			obj.IsDirty = false
			if err := tx.Clauses(onConflict).Create(&obj).Error; err != nil {
				return fmt.Errorf("failed to apply remote entry %s: %w", rows[i].Key(), err)
			}
		}
		return nil
	})
}

func (r *GormRepository) MarkClean(ctx context.Context, key models.Key, serverUpdatedAt, pushedClientUpdatedAt string) error {
	err := r.db.WithContext(ctx).
		Model(&EntryObject{}).
		Where("entry_date = ? AND slot = ?", key.Date, string(key.Slot)).
		Updates(map[string]any{
			"server_updated_at": serverUpdatedAt,
			"is_dirty":          gorm.Expr("CASE WHEN client_updated_at = ? THEN ? ELSE is_dirty END", pushedClientUpdatedAt, false),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark entry %s clean: %w", key, err)
	}
	return nil
}

func (r *GormRepository) GetLastSyncAt(ctx context.Context) (*string, error) {
	v, err := metadata.NewGormRepository(r.db).Get(ctx, LastSyncAtKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read last sync checkpoint: %w", err)
	}
	if v == nil {
		return nil, nil
	}
	s := string(v)
	return &s, nil
}

func (r *GormRepository) SetLastSyncAt(ctx context.Context, value string) error {
	if err := metadata.NewGormRepository(r.db).Set(ctx, LastSyncAtKey, []byte(value)); err != nil {
		return fmt.Errorf("failed to store last sync checkpoint: %w", err)
	}
	return nil
}

func (r *GormRepository) Get(ctx context.Context, key models.Key) (*models.Entry, error) {
	var obj EntryObject
	err := r.db.WithContext(ctx).
		Where("entry_date = ? AND slot = ?", key.Date, string(key.Slot)).
		Take(&obj).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %s: %w", key, err)
	}
	e := fromObject(obj)
	return &e, nil
}

func toObject(e *models.Entry) EntryObject {
	return EntryObject{
		EntryDate:       e.Date,
		Slot:            string(e.Slot),
		BodyDone:        e.BodyDone,
		SpeechDone:      e.SpeechDone,
		MindDone:        e.MindDone,
		ActionPick:      (*string)(e.ActionPick),
		Sange:           (*string)(e.Sange),
		Hatsugan:        (*string)(e.Hatsugan),
		Eko:             (*string)(e.Eko),
		NoteCiphertext:  e.NoteCiphertext,
		NoteNonce:       e.NoteNonce,
		NoteVersion:     e.NoteVersion,
		ClientUpdatedAt: e.ClientUpdatedAt,
		DeletedAt:       e.DeletedAt,
		IsDirty:         e.IsDirty,
		ServerUpdatedAt: e.ServerUpdatedAt,
		DeviceID:        e.DeviceID,
	}
}

func fromObject(o EntryObject) models.Entry {
	return models.Entry{
		Date:            o.EntryDate,
		Slot:            models.Slot(o.Slot),
		BodyDone:        o.BodyDone,
		SpeechDone:      o.SpeechDone,
		MindDone:        o.MindDone,
		ActionPick:      (*models.Pick)(o.ActionPick),
		Sange:           (*models.Pick)(o.Sange),
		Hatsugan:        (*models.Pick)(o.Hatsugan),
		Eko:             (*models.Eko)(o.Eko),
		NoteCiphertext:  o.NoteCiphertext,
		NoteNonce:       o.NoteNonce,
		NoteVersion:     o.NoteVersion,
		ClientUpdatedAt: o.ClientUpdatedAt,
		DeletedAt:       o.DeletedAt,
		IsDirty:         o.IsDirty,
		ServerUpdatedAt: o.ServerUpdatedAt,
		DeviceID:        o.DeviceID,
	}
}

func fromObjects(objs []EntryObject) []models.Entry {
	if len(objs) == 0 {
		return nil
	}
	out := make([]models.Entry, len(objs))
	for i, o := range objs {
		out[i] = fromObject(o)
	}
	return out
}
