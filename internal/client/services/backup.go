package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
	"github.com/dmitrijs2005/sanmitsu/internal/client/repositories/entries"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
)

// BackupURLSource hands out presigned upload URLs.
type BackupURLSource interface {
	GetBackupURL(ctx context.Context) (key string, url string, err error)
}

// Uploader PUTs a payload to a presigned URL.
type Uploader interface {
	UploadToPresignedURL(ctx context.Context, url string, body []byte, contentType string) error
}

// Snapshot is the uploaded backup document. Notes stay sealed.
type Snapshot struct {
	CreatedAt string             `json:"created_at"`
	DeviceID  string             `json:"device_id,omitempty"`
	Entries   []models.RemoteRow `json:"entries"`
}

type BackupService struct {
	store    entries.Repository
	urls     BackupURLSource
	uploader Uploader
	deviceID string
	now      func() time.Time
}

func NewBackupService(store entries.Repository, urls BackupURLSource, uploader Uploader, deviceID string) *BackupService {
	return &BackupService{store: store, urls: urls, uploader: uploader, deviceID: deviceID, now: time.Now}
}

// Backup uploads a snapshot of every local row, tombstones included, and
// returns the object key and the number of rows.
func (b *BackupService) Backup(ctx context.Context) (string, int, error) {
	rows, err := b.store.ListAll(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("read entries: %w", err)
	}

	snap := Snapshot{
		CreatedAt: common.FormatTimestamp(b.now()),
		DeviceID:  b.deviceID,
		Entries:   make([]models.RemoteRow, len(rows)),
	}
	for i := range rows {
		r := models.ToRemote(&rows[i], "")
		if rows[i].ServerUpdatedAt != nil {
			r.ServerUpdatedAt = *rows[i].ServerUpdatedAt
		}
		snap.Entries[i] = r
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return "", 0, err
	}

	key, url, err := b.urls.GetBackupURL(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("get backup url: %w", err)
	}
	if err := b.uploader.UploadToPresignedURL(ctx, url, body, "application/json"); err != nil {
		return "", 0, fmt.Errorf("upload backup: %w", err)
	}
	return key, len(rows), nil
}
