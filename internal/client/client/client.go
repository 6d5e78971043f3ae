package client

import (
	"context"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
)

// Client is the remote store as seen by the client services.
type Client interface {
	Close() error
	Register(ctx context.Context, username string, salt []byte, verifier []byte) (string, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) (string, error)
	Ping(ctx context.Context) error

	// Push upserts rows on (user, date, slot) and returns them with the
	// assigned server timestamps.
	Push(ctx context.Context, rows []models.RemoteRow) ([]models.RemoteRow, error)
	// Pull returns at most limit rows newer than since, oldest first.
	// A nil since pulls from the beginning.
	Pull(ctx context.Context, since *string, limit int) ([]models.RemoteRow, error)

	GetBackupURL(ctx context.Context) (key string, url string, err error)

	SetTokens(access, refresh string)
	Tokens() (access, refresh string)
}
