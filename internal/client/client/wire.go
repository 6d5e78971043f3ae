package client

import (
	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
	pb "github.com/dmitrijs2005/sanmitsu/internal/proto"
)

func toWire(rows []models.RemoteRow) []*pb.EntryRow {
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
			NoteVersion:     toInt32(r.NoteVersion),
			ClientUpdatedAt: r.ClientUpdatedAt,
			DeletedAt:       r.DeletedAt,
			ServerUpdatedAt: r.ServerUpdatedAt,
			DeviceId:        r.DeviceID,
			UserId:          r.UserID,
		}
	}
	return out
}

func fromWire(rows []*pb.EntryRow) []models.RemoteRow {
	out := make([]models.RemoteRow, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		out = append(out, models.RemoteRow{
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
			NoteVersion:     fromInt32(r.NoteVersion),
			ClientUpdatedAt: r.GetClientUpdatedAt(),
			DeletedAt:       r.DeletedAt,
			ServerUpdatedAt: r.GetServerUpdatedAt(),
			DeviceID:        r.DeviceId,
			UserID:          r.GetUserId(),
		})
	}
	return out
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func fromInt32(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
