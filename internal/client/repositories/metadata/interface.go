// Package metadata stores small key/value records on the client: the sync
// checkpoint, the device id and the signed-in session.
package metadata

import (
	"context"
)

// Repository is a key/value store. Get returns (nil, nil) for a missing key
// and GetMany leaves missing keys out of the map.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes keys in one statement. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
