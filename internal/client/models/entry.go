package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sanmitsu/internal/common"
)

// Slot is the time-of-day discriminator within a day.
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotNight   Slot = "night"
)

// Pick is one of the three gates of practice.
type Pick string

const (
	PickBody   Pick = "body"
	PickSpeech Pick = "speech"
	PickMind   Pick = "mind"
)

// Eko is the dedication target of the night ritual.
type Eko string

const (
	EkoSelf   Eko = "self"
	EkoFamily Eko = "family"
	EkoTeam   Eko = "team"
	EkoAll    Eko = "all"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidSlot = errors.New("invalid slot")
	ErrInvalidPick = errors.New("invalid pick")
	ErrInvalidEko  = errors.New("invalid eko")
)

func (s Slot) Valid() bool {
	return s == SlotMorning || s == SlotNight
}

func (p Pick) Valid() bool {
	switch p {
	case PickBody, PickSpeech, PickMind:
		return true
	}
	return false
}

func (e Eko) Valid() bool {
	switch e {
	case EkoSelf, EkoFamily, EkoTeam, EkoAll:
		return true
	}
	return false
}

func ParseSlot(s string) (Slot, error) {
	if v := Slot(s); v.Valid() {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
}

// ParsePick maps "" to nil.
func ParsePick(s string) (*Pick, error) {
	if s == "" {
		return nil, nil
	}
	if v := Pick(s); v.Valid() {
		return &v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidPick, s)
}

// ParseEko maps "" to nil.
func ParseEko(s string) (*Eko, error) {
	if s == "" {
		return nil, nil
	}
	if v := Eko(s); v.Valid() {
		return &v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidEko, s)
}

// ValidateDate checks that s is a real calendar day in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if len(s) != len(common.DateLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if _, err := time.Parse(common.DateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// Validate checks the identity and every enum of e.
func (e *Entry) Validate() error {
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if !e.Slot.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, e.Slot)
	}
	for _, p := range []*Pick{e.ActionPick, e.Sange, e.Hatsugan} {
		if p != nil && !p.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidPick, *p)
		}
	}
	if e.Eko != nil && !e.Eko.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEko, *e.Eko)
	}
	return nil
}

// Tombstone returns the fully reset entry that marks key as deleted at ts.
func Tombstone(key Key, ts string, deviceID *string) *Entry {
	deleted := ts
	return &Entry{
		Date:            key.Date,
		Slot:            key.Slot,
		ClientUpdatedAt: ts,
		DeletedAt:       &deleted,
		IsDirty:         true,
		DeviceID:        deviceID,
	}
}
