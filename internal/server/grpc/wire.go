package grpc

import (
	pb "github.com/dmitrijs2005/sanmitsu/internal/proto"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
)

func entryFromWire(r *pb.EntryRow) models.Entry {
	return models.Entry{
		EntryDate:       r.GetEntryDate(),
		Slot:            r.GetSlot(),
		BodyDone:        r.GetBodyDone(),
		SpeechDone:      r.GetSpeechDone(),
		MindDone:        r.GetMindDone(),
		ActionPick:      r.ActionPick,
		Sange:           r.Sange,
		Hatsugan:        r.Hatsugan,
		Eko:             r.Eko,
		NoteCiphertext:  r.NoteCiphertext,
		NoteNonce:       r.NoteNonce,
		NoteVersion:     intPtr(r.NoteVersion),
		ClientUpdatedAt: r.GetClientUpdatedAt(),
		DeletedAt:       r.DeletedAt,
		DeviceID:        r.DeviceId,
		UserID:          r.GetUserId(),
	}
}

// toWire converts stored rows to wire rows. The owner is implied by the
// token and is not echoed.
func toWire(rows []models.Entry) []*pb.EntryRow {
	out := make([]*pb.EntryRow, len(rows))
	for i, r := range rows {
		out[i] = &pb.EntryRow{
			EntryDate:       r.EntryDate,
			Slot:            r.Slot,
			BodyDone:        r.BodyDone,
			SpeechDone:      r.SpeechDone,
			MindDone:        r.MindDone,
			ActionPick:      r.ActionPick,
			Sange:           r.Sange,
			Hatsugan:        r.Hatsugan,
			Eko:             r.Eko,
			NoteCiphertext:  r.NoteCiphertext,
			NoteNonce:       r.NoteNonce,
			NoteVersion:     int32Ptr(r.NoteVersion),
			ClientUpdatedAt: r.ClientUpdatedAt,
			DeletedAt:       r.DeletedAt,
			ServerUpdatedAt: r.ServerUpdatedAt,
			DeviceId:        r.DeviceID,
		}
	}
	return out
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
