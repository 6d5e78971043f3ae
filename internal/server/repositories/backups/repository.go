// Package backups records the object-storage keys handed out for snapshot
// uploads.
package backups

import (
	"context"

	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
)

type Repository interface {
	// Create records b and fills in CreatedAt.
	Create(ctx context.Context, b *models.Backup) error
}
