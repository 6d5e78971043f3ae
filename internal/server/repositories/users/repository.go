// Package users declares the server-side storage contract for accounts.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
)

type Repository interface {
	// Create stores a new account. A taken username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// NextServerTimestamp advances the per-user clock and returns the new
	// value. Successive calls for one user return strictly increasing values,
	// and the row lock orders concurrent pushes of the same user.
	NextServerTimestamp(ctx context.Context, userID string) (time.Time, error)
}
