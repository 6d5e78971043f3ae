package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
	"github.com/dmitrijs2005/sanmitsu/internal/client/syncer"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
)

type identity struct{ ok bool }

func (i identity) CurrentIdentity(context.Context) (syncer.Identity, bool, error) {
	return syncer.Identity{UserID: "user-1"}, i.ok, nil
}

var fixedNow = time.Date(2025, 1, 10, 7, 30, 0, 0, time.UTC)

func newEntryService(t *testing.T, fc *fakeClient, signedIn bool) (EntryService, *syncer.Engine, *fakeClient) {
	t.Helper()
	s := openStore(t)
	if fc == nil {
		fc = &fakeClient{}
	}
	engine := syncer.NewEngine(s.Entries, fc, identity{ok: signedIn})
	svc := NewEntryService(s.Entries, engine, "dev-1", WithClock(func() time.Time { return fixedNow }))
	return svc, engine, fc
}

func TestSave_ScenarioMorningEntryOffline(t *testing.T) {
	svc, _, fc := newEntryService(t, nil, false)
	ctx := context.Background()

	e, res, err := svc.Save(ctx, SaveInput{Date: "2025-01-10", Slot: "morning", BodyDone: true, SpeechDone: true})
	require.NoError(t, err)
	assert.Equal(t, syncer.Result{}, res)
	assert.Empty(t, fc.Pushed)

	assert.True(t, e.IsDirty)
	assert.Equal(t, "2025-01-10T07:30:00.000000Z", e.ClientUpdatedAt)
	require.NotNil(t, e.NoteVersion)
	assert.Equal(t, 1, *e.NoteVersion)
	assert.Equal(t, "dev-1", *e.DeviceID)

	day, err := svc.ListByDate(ctx, "2025-01-10")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, models.SlotMorning, day[0].Slot)
	assert.True(t, day[0].BodyDone)
	assert.True(t, day[0].SpeechDone)
	assert.False(t, day[0].MindDone)

	got, err := svc.Get(ctx, "2025-01-10", "morning")
	require.NoError(t, err)
	assert.True(t, got.IsDirty)
}

func TestSave_ListDirtyHasOneRowUntilSynced(t *testing.T) {
	s := openStore(t)
	fc := &fakeClient{}
	idp := &switchable{}
	engine := syncer.NewEngine(s.Entries, fc, idp)
	svc := NewEntryService(s.Entries, engine, "", WithClock(func() time.Time { return fixedNow }))
	ctx := context.Background()

	_, _, err := svc.Save(ctx, SaveInput{Date: "2025-01-10", Slot: "morning", BodyDone: true, SpeechDone: true})
	require.NoError(t, err)

	dirty, err := s.Entries.ListDirty(ctx)
	require.NoError(t, err)
	require.Len(t, dirty, 1)
	assert.Equal(t, models.Key{Date: "2025-01-10", Slot: models.SlotMorning}, dirty[0].Key())

	idp.ok = true
	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pushed)

	dirty, err = s.Entries.ListDirty(ctx)
	require.NoError(t, err)
	assert.Empty(t, dirty)
}

type switchable struct{ ok bool }

func (s *switchable) CurrentIdentity(context.Context) (syncer.Identity, bool, error) {
	return syncer.Identity{UserID: "user-1"}, s.ok, nil
}

func TestSave_SyncsImmediatelyWhenSignedIn(t *testing.T) {
	svc, _, fc := newEntryService(t, nil, true)

	e, res, err := svc.Save(context.Background(), SaveInput{
		Date: "2025-01-10", Slot: "night", MindDone: true,
		Sange: "body", Hatsugan: "mind", Eko: "family",
		NoteCiphertext: ptr("c"), NoteNonce: ptr("n"), NoteVersion: ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pushed)
	assert.Equal(t, 2, *e.NoteVersion)

	require.Len(t, fc.Pushed, 1)
	row := fc.Pushed[0][0]
	assert.Equal(t, "user-1", row.UserID)
	assert.Equal(t, "family", *row.Eko)
	assert.Equal(t, "c", *row.NoteCiphertext)
	assert.Nil(t, row.ActionPick)
}

func TestSave_SyncFailureIsDeferred(t *testing.T) {
	boom := errors.New("offline")
	svc, _, _ := newEntryService(t, &fakeClient{PushErr: boom}, true)
	ctx := context.Background()

	e, _, err := svc.Save(ctx, SaveInput{Date: "2025-01-10", Slot: "morning", BodyDone: true})
	require.ErrorIs(t, err, ErrSyncDeferred)
	require.ErrorIs(t, err, boom)
	require.NotNil(t, e)

	got, err := svc.Get(ctx, "2025-01-10", "morning")
	require.NoError(t, err)
	assert.True(t, got.IsDirty)
}

func TestSave_Validation(t *testing.T) {
	svc, _, _ := newEntryService(t, nil, false)
	ctx := context.Background()

	bad := []SaveInput{
		{Date: "2025-13-01", Slot: "morning"},
		{Date: "2025-01-10", Slot: "noon"},
		{Date: "2025-01-10", Slot: "morning", ActionPick: "heart"},
		{Date: "2025-01-10", Slot: "night", Eko: "world"},
		{Date: "2025-01-10", Slot: "night", NoteCiphertext: ptr("c")},
		{Date: "2025-01-10", Slot: "night", NoteVersion: ptr(0)},
		{Slot: "night"},
	}
	for _, in := range bad {
		_, _, err := svc.Save(ctx, in)
		assert.ErrorIs(t, err, common.ErrorValidation, "%+v", in)
	}

	day, err := svc.ListByDate(ctx, "2025-01-10")
	require.NoError(t, err)
	assert.Empty(t, day)
}

func TestSoftDelete_PushesTombstoneAndHidesEntry(t *testing.T) {
	svc, _, fc := newEntryService(t, nil, true)
	ctx := context.Background()

	_, _, err := svc.Save(ctx, SaveInput{Date: "2025-01-10", Slot: "night", MindDone: true, Eko: "all", NoteCiphertext: ptr("c"), NoteNonce: ptr("n")})
	require.NoError(t, err)

	_, err = svc.SoftDelete(ctx, "2025-01-10", "night")
	require.NoError(t, err)

	require.Len(t, fc.Pushed, 2)
	row := fc.Pushed[1][0]
	require.NotNil(t, row.DeletedAt)
	assert.Equal(t, "2025-01-10T07:30:00.000000Z", *row.DeletedAt)
	assert.Equal(t, row.ClientUpdatedAt, *row.DeletedAt)
	assert.False(t, row.MindDone)
	assert.Nil(t, row.Eko)
	assert.Nil(t, row.NoteCiphertext)
	assert.Nil(t, row.NoteNonce)
	assert.Equal(t, "dev-1", *row.DeviceID)

	day, err := svc.ListByDate(ctx, "2025-01-10")
	require.NoError(t, err)
	assert.Empty(t, day)

	got, err := svc.Get(ctx, "2025-01-10", "night")
	require.NoError(t, err)
	assert.True(t, got.IsDeleted())
	assert.False(t, got.IsDirty)
}

func TestSoftDelete_InvalidKey(t *testing.T) {
	svc, _, _ := newEntryService(t, nil, false)
	_, err := svc.SoftDelete(context.Background(), "2025-01-10", "noon")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.Get(context.Background(), "yesterday", "morning")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.ListByDate(context.Background(), "2025/01/10")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestGet_Missing(t *testing.T) {
	svc, _, _ := newEntryService(t, nil, false)
	_, err := svc.Get(context.Background(), "2025-01-10", "morning")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
