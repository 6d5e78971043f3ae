package models

// Entry is one (user, date, slot) row as stored by the server.
//
// Timestamps are fixed-width UTC strings (common.TimestampLayout).
type Entry struct {
	EntryDate  string `validate:"required,datetime=2006-01-02"`
	Slot       string `validate:"required,oneof=morning night"`
	BodyDone   bool
	SpeechDone bool
	MindDone   bool
	ActionPick *string `validate:"omitempty,oneof=body speech mind"`
	Sange      *string `validate:"omitempty,oneof=body speech mind"`
	Hatsugan   *string `validate:"omitempty,oneof=body speech mind"`
	Eko        *string `validate:"omitempty,oneof=self family team all"`

	NoteCiphertext *string `validate:"required_with=NoteNonce"`
	NoteNonce      *string `validate:"required_with=NoteCiphertext"`
	NoteVersion    *int    `validate:"omitempty,min=1"`

	ClientUpdatedAt string `validate:"required"`
	DeletedAt       *string
	ServerUpdatedAt string
	DeviceID        *string
	UserID          string
}
