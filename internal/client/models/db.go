// Package models defines the client-side practice entry and its wire shape.
package models

// Entry is one practice record for a calendar day and slot. It is stored
// locally and synced with the server; (Date, Slot) is its identity.
type Entry struct {
	// Date is the local calendar day, formatted YYYY-MM-DD.
	Date string
	// Slot is morning or night.
	Slot Slot

	// The three practice checkmarks.
	BodyDone   bool
	SpeechDone bool
	MindDone   bool

	// ActionPick is the chosen daily action.
	ActionPick *Pick
	// Sange and Hatsugan are the night ritual picks.
	Sange    *Pick
	Hatsugan *Pick
	// Eko is the dedication target.
	Eko *Eko

	// NoteCiphertext and NoteNonce hold the sealed free-text note. The sync
	// layer never sees the plaintext.
	NoteCiphertext *string
	NoteNonce      *string
	// NoteVersion is the sealing scheme version of the note.
	NoteVersion *int

	// ClientUpdatedAt is stamped by this device on every mutating write.
	ClientUpdatedAt string
	// DeletedAt marks a tombstone. Tombstones are hidden from reads but still sync.
	DeletedAt *string

	// IsDirty means a local change has not yet been acknowledged by the server.
	// It never leaves the device.
	IsDirty bool
	// ServerUpdatedAt is assigned by the server on acceptance and orders pulls.
	ServerUpdatedAt *string

	// DeviceID identifies the device that made the last write. Diagnostic only.
	DeviceID *string
}

// Key returns the identity of e.
func (e *Entry) Key() Key {
	return Key{Date: e.Date, Slot: e.Slot}
}

// IsDeleted reports whether e is a tombstone.
func (e *Entry) IsDeleted() bool {
	return e.DeletedAt != nil
}

// Key is the (date, slot) identity of an entry.
type Key struct {
	Date string
	Slot Slot
}

func (k Key) String() string {
	return k.Date + "/" + string(k.Slot)
}
