package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
	"github.com/dmitrijs2005/sanmitsu/internal/client/repositories/entries"
	"github.com/dmitrijs2005/sanmitsu/internal/client/syncer"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
)

// ErrSyncDeferred means the local write succeeded but the follow-up sync
// failed. The row stays dirty and is pushed by a later sync.
var ErrSyncDeferred = errors.New("saved locally, sync deferred")

// Syncer runs sync passes.
type Syncer interface {
	SyncNow(ctx context.Context) (syncer.Result, error)
	Converge(ctx context.Context) (syncer.Result, error)
}

// SaveInput is the user-editable part of an entry. Empty picks mean unset.
type SaveInput struct {
	Date       string `validate:"required,datetime=2006-01-02"`
	Slot       string `validate:"required,oneof=morning night"`
	BodyDone   bool
	SpeechDone bool
	MindDone   bool
	ActionPick string `validate:"omitempty,oneof=body speech mind"`
	Sange      string `validate:"omitempty,oneof=body speech mind"`
	Hatsugan   string `validate:"omitempty,oneof=body speech mind"`
	Eko        string `validate:"omitempty,oneof=self family team all"`

	NoteCiphertext *string `validate:"required_with=NoteNonce"`
	NoteNonce      *string `validate:"required_with=NoteCiphertext"`
	NoteVersion    *int    `validate:"omitempty,min=1"`
}

type EntryService interface {
	Save(ctx context.Context, in SaveInput) (*models.Entry, syncer.Result, error)
	SoftDelete(ctx context.Context, date, slot string) (syncer.Result, error)
	ListByDate(ctx context.Context, date string) ([]models.Entry, error)
	Get(ctx context.Context, date, slot string) (*models.Entry, error)
	Sync(ctx context.Context) (syncer.Result, error)
}

type EntryOption func(*entryService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) EntryOption {
	return func(s *entryService) { s.now = now }
}

type entryService struct {
	store    entries.Repository
	syncer   Syncer
	deviceID *string
	validate *validator.Validate
	now      func() time.Time
}

// NewEntryService returns the write path over store. deviceID is stamped
// into every written row; empty leaves it unset.
func NewEntryService(store entries.Repository, s Syncer, deviceID string, opts ...EntryOption) EntryService {
	svc := &entryService{
		store:    store,
		syncer:   s,
		validate: validator.New(),
		now:      time.Now,
	}
	if deviceID != "" {
		svc.deviceID = &deviceID
	}
	for _, o := range opts {
		o(svc)
	}
	return svc
}

// Save stamps the entry, writes it dirty and syncs.
func (s *entryService) Save(ctx context.Context, in SaveInput) (*models.Entry, syncer.Result, error) {
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return nil, syncer.Result{}, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}

	e, err := s.toEntry(in)
	if err != nil {
		return nil, syncer.Result{}, err
	}

	if err := s.store.UpsertLocal(ctx, e); err != nil {
		return nil, syncer.Result{}, fmt.Errorf("saving error: %w", err)
	}

	res, err := s.syncer.SyncNow(ctx)
	if err != nil {
		return e, res, fmt.Errorf("%w: %w", ErrSyncDeferred, err)
	}
	return e, res, nil
}

// SoftDelete writes a fully reset tombstone for (date, slot) and syncs.
func (s *entryService) SoftDelete(ctx context.Context, date, slot string) (syncer.Result, error) {
	key, err := parseKey(date, slot)
	if err != nil {
		return syncer.Result{}, err
	}

	ts := common.FormatTimestamp(s.now())
	if err := s.store.UpsertLocal(ctx, models.Tombstone(key, ts, s.deviceID)); err != nil {
		return syncer.Result{}, fmt.Errorf("delete error: %w", err)
	}

	res, err := s.syncer.SyncNow(ctx)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrSyncDeferred, err)
	}
	return res, nil
}

func (s *entryService) ListByDate(ctx context.Context, date string) ([]models.Entry, error) {
	if err := models.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	return s.store.ListByDate(ctx, date)
}

func (s *entryService) Get(ctx context.Context, date, slot string) (*models.Entry, error) {
	key, err := parseKey(date, slot)
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, key)
}

// Sync runs passes until the remote has nothing more to return.
func (s *entryService) Sync(ctx context.Context) (syncer.Result, error) {
	return s.syncer.Converge(ctx)
}

func (s *entryService) toEntry(in SaveInput) (*models.Entry, error) {
	e := &models.Entry{
		Date:            in.Date,
		Slot:            models.Slot(in.Slot),
		BodyDone:        in.BodyDone,
		SpeechDone:      in.SpeechDone,
		MindDone:        in.MindDone,
		NoteCiphertext:  in.NoteCiphertext,
		NoteNonce:       in.NoteNonce,
		NoteVersion:     in.NoteVersion,
		ClientUpdatedAt: common.FormatTimestamp(s.now()),
		IsDirty:         true,
		DeviceID:        s.deviceID,
	}
	if e.NoteVersion == nil {
		v := 1
		e.NoteVersion = &v
	}

	var err error
	if e.ActionPick, err = models.ParsePick(in.ActionPick); err != nil {
		return nil, err
	}
	if e.Sange, err = models.ParsePick(in.Sange); err != nil {
		return nil, err
	}
	if e.Hatsugan, err = models.ParsePick(in.Hatsugan); err != nil {
		return nil, err
	}
	if e.Eko, err = models.ParseEko(in.Eko); err != nil {
		return nil, err
	}
	return e, e.Validate()
}

func parseKey(date, slot string) (models.Key, error) {
	if err := models.ValidateDate(date); err != nil {
		return models.Key{}, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	sl, err := models.ParseSlot(slot)
	if err != nil {
		return models.Key{}, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	return models.Key{Date: date, Slot: sl}, nil
}
