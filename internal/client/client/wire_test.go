package client

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
	pb "github.com/dmitrijs2005/sanmitsu/internal/proto"
)

func TestWire_RoundTripKeepsNulls(t *testing.T) {
	rows := []models.RemoteRow{
		{
			EntryDate: "2025-01-10", Slot: "morning", BodyDone: true, MindDone: true,
			ActionPick: ptr("mind"), Eko: ptr("self"),
			NoteCiphertext: ptr("c"), NoteNonce: ptr("n"), NoteVersion: ptr(1),
			ClientUpdatedAt: "2025-01-10T07:00:00.000000Z", DeviceID: ptr("dev-1"),
			UserID: "user-1",
		},
		{
			EntryDate: "2025-01-10", Slot: "night",
			ClientUpdatedAt: "2025-01-10T21:00:00.000000Z",
			DeletedAt:       ptr("2025-01-10T21:00:00.000000Z"),
			ServerUpdatedAt: "2025-01-10T21:00:01.000000Z",
		},
	}

	wire := toWire(rows)
	require.Len(t, wire, 2)
	assert.Equal(t, int32(1), wire[0].GetNoteVersion())
	assert.Nil(t, wire[1].NoteVersion)
	assert.Nil(t, wire[1].ActionPick)

	if diff := cmp.Diff(rows, fromWire(wire)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromWire_SkipsNilRows(t *testing.T) {
	got := fromWire([]*pb.EntryRow{nil, {EntryDate: "2025-01-11", Slot: "night"}})
	require.Len(t, got, 1)
	assert.Equal(t, "2025-01-11", got[0].EntryDate)
}
