package metadata

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetaObject is one key/value record of the object-store backend.
type MetaObject struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"not null"`
}

func (MetaObject) TableName() string { return "meta_objects" }

// GormRepository keeps metadata as gorm objects.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// AutoMigrate creates the meta_objects table if needed.
func (r *GormRepository) AutoMigrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&MetaObject{}); err != nil {
		return fmt.Errorf("failed to migrate meta objects: %w", err)
	}
	return nil
}

func (r *GormRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var obj MetaObject
	err := r.db.WithContext(ctx).Where("key = ?", key).Take(&obj).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return obj.Value, nil
}

func (r *GormRepository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&MetaObject{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *GormRepository) GetMany(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	var objs []MetaObject
	if err := r.db.WithContext(ctx).Where("key IN ?", keys).Find(&objs).Error; err != nil {
		return nil, fmt.Errorf("failed to read metadata %v: %w", keys, err)
	}
	for _, o := range objs {
		out[o.Key] = o.Value
	}
	return out, nil
}

func (r *GormRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("key IN ?", keys).Delete(&MetaObject{}).Error; err != nil {
		return fmt.Errorf("failed to delete metadata %v: %w", keys, err)
	}
	return nil
}
