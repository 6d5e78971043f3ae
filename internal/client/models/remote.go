package models

// RemoteRow is the remote store's shape of an entry, one field per column of
// the server's entries table.
type RemoteRow struct {
	EntryDate       string  `json:"entry_date"`
	Slot            string  `json:"slot"`
	BodyDone        bool    `json:"body_done"`
	SpeechDone      bool    `json:"speech_done"`
	MindDone        bool    `json:"mind_done"`
	ActionPick      *string `json:"action_pick"`
	Sange           *string `json:"sange"`
	Hatsugan        *string `json:"hatsugan"`
	Eko             *string `json:"eko"`
	NoteCiphertext  *string `json:"note_ciphertext"`
	NoteNonce       *string `json:"note_nonce"`
	NoteVersion     *int    `json:"note_version"`
	ClientUpdatedAt string  `json:"client_updated_at"`
	DeletedAt       *string `json:"deleted_at"`
	ServerUpdatedAt string  `json:"server_updated_at,omitempty"`
	DeviceID        *string `json:"device_id"`
	UserID          string  `json:"user_id,omitempty"`
}

// ToRemote renames e's fields into the remote shape tagged with userID.
// IsDirty and ServerUpdatedAt are not carried.
func ToRemote(e *Entry, userID string) RemoteRow {
	return RemoteRow{
		EntryDate:       e.Date,
		Slot:            string(e.Slot),
		BodyDone:        e.BodyDone,
		SpeechDone:      e.SpeechDone,
		MindDone:        e.MindDone,
		ActionPick:      pickString(e.ActionPick),
		Sange:           pickString(e.Sange),
		Hatsugan:        pickString(e.Hatsugan),
		Eko:             ekoString(e.Eko),
		NoteCiphertext:  e.NoteCiphertext,
		NoteNonce:       e.NoteNonce,
		NoteVersion:     e.NoteVersion,
		ClientUpdatedAt: e.ClientUpdatedAt,
		DeletedAt:       e.DeletedAt,
		DeviceID:        e.DeviceID,
		UserID:          userID,
	}
}

// FromRemote converts a pulled row back into a clean local entry.
func FromRemote(r RemoteRow) Entry {
	e := Entry{
		Date:            r.EntryDate,
		Slot:            Slot(r.Slot),
		BodyDone:        r.BodyDone,
		SpeechDone:      r.SpeechDone,
		MindDone:        r.MindDone,
		ActionPick:      (*Pick)(r.ActionPick),
		Sange:           (*Pick)(r.Sange),
		Hatsugan:        (*Pick)(r.Hatsugan),
		Eko:             (*Eko)(r.Eko),
		NoteCiphertext:  r.NoteCiphertext,
		NoteNonce:       r.NoteNonce,
		NoteVersion:     r.NoteVersion,
		ClientUpdatedAt: r.ClientUpdatedAt,
		DeletedAt:       r.DeletedAt,
		DeviceID:        r.DeviceID,
	}
	if r.ServerUpdatedAt != "" {
		s := r.ServerUpdatedAt
		e.ServerUpdatedAt = &s
	}
	return e
}

func pickString(p *Pick) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}

func ekoString(e *Eko) *string {
	if e == nil {
		return nil
	}
	s := string(*e)
	return &s
}
