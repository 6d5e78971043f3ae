package entries

import (
	"context"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
)

// LastSyncAtKey is the metadata key holding the pull checkpoint.
const LastSyncAtKey = "last_sync_at"

// Repository describes the local entry store.
type Repository interface {
	// UpsertLocal inserts or replaces the row for e's (date, slot). Callers set
	// IsDirty and ClientUpdatedAt. A nil ServerUpdatedAt keeps the stored one.
	UpsertLocal(ctx context.Context, e *models.Entry) error

	// ListByDate returns the non-deleted entries of date, morning before night.
	ListByDate(ctx context.Context, date string) ([]models.Entry, error)

	// ListDirty returns every dirty row, tombstones included.
	ListDirty(ctx context.Context) ([]models.Entry, error)

	// ListAll returns every row, tombstones included, ordered by key.
	ListAll(ctx context.Context) ([]models.Entry, error)

	// ApplyRemote writes pulled rows as clean in one transaction. A local row
	// that is dirty with a different ClientUpdatedAt is left alone so its
	// pending edit is pushed on the next pass. This covers an edit saved
	// while a pass is in flight: the pull may carry the version pushed
	// before the edit, and applying it would discard the newer local write.
	ApplyRemote(ctx context.Context, rows []models.Entry) error

	// MarkClean stamps serverUpdatedAt on key and clears IsDirty only if the
	// row still carries pushedClientUpdatedAt.
	MarkClean(ctx context.Context, key models.Key, serverUpdatedAt, pushedClientUpdatedAt string) error

	// GetLastSyncAt returns the checkpoint, nil before the first pull.
	GetLastSyncAt(ctx context.Context) (*string, error)
	SetLastSyncAt(ctx context.Context, value string) error

	// Get returns the row for key, tombstones included, or common.ErrorNotFound.
	Get(ctx context.Context, key models.Key) (*models.Entry, error)
}
