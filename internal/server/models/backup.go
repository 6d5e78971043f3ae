package models

import "time"

// Backup records a snapshot slot handed out to a user. The snapshot body
// lives in object storage under StorageKey.
type Backup struct {
	StorageKey string
	UserID     string
	CreatedAt  time.Time
}
