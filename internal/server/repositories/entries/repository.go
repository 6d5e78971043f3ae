// Package entries declares the server-side storage contract for synced
// practice entries.
package entries

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
)

type Repository interface {
	// Upsert writes the row keyed by (user, date, slot), replacing any
	// previous version. ServerUpdatedAt must already be assigned.
	Upsert(ctx context.Context, entry *models.Entry) error

	// SelectSince returns up to limit rows of userID whose server_updated_at
	// is strictly after since, ascending. A nil since selects from the start.
	SelectSince(ctx context.Context, userID string, since *time.Time, limit int) ([]models.Entry, error)
}
