package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
	"github.com/dmitrijs2005/sanmitsu/internal/client/services"
	"github.com/dmitrijs2005/sanmitsu/internal/client/syncer"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/cryptox"
)

func (a *App) today() string {
	return a.now().Format(common.DateLayout)
}

func (a *App) askDate() (string, error) {
	today := a.today()
	s, err := getSimpleText(a.reader, fmt.Sprintf("Date [%s]", today), a.out)
	if err != nil {
		return "", err
	}
	if s == "" {
		return today, nil
	}
	return s, nil
}

// Save prompts for one entry and writes it. An empty slot is asked for.
func (a *App) Save(ctx context.Context, slot string) error {
	var err error
	if slot == "" {
		if slot, err = getSimpleText(a.reader, "Slot (morning/night)", a.out); err != nil {
			return err
		}
	}
	if _, err := models.ParseSlot(slot); err != nil {
		return err
	}

	in := services.SaveInput{Slot: slot}
	if in.Date, err = a.askDate(); err != nil {
		return err
	}
	if in.BodyDone, err = getYesNo(a.reader, "Body practice done?", a.out); err != nil {
		return err
	}
	if in.SpeechDone, err = getYesNo(a.reader, "Speech practice done?", a.out); err != nil {
		return err
	}
	if in.MindDone, err = getYesNo(a.reader, "Mind practice done?", a.out); err != nil {
		return err
	}

	const picks = "(body/speech/mind, empty for none)"
	if models.Slot(slot) == models.SlotMorning {
		if in.ActionPick, err = getSimpleText(a.reader, "Action for today "+picks, a.out); err != nil {
			return err
		}
	} else {
		if in.Sange, err = getSimpleText(a.reader, "Sange "+picks, a.out); err != nil {
			return err
		}
		if in.Hatsugan, err = getSimpleText(a.reader, "Hatsugan "+picks, a.out); err != nil {
			return err
		}
		if in.Eko, err = getSimpleText(a.reader, "Eko (self/family/team/all, empty for none)", a.out); err != nil {
			return err
		}
	}

	if a.isLoggedIn() {
		note, err := getMultiline(a.reader, "Note (optional)", a.out)
		if err != nil {
			return err
		}
		if note != "" {
			ct, nonce, err := cryptox.SealNote(note, a.masterKey)
			if err != nil {
				return fmt.Errorf("seal note: %w", err)
			}
			v := cryptox.NoteSchemeVersion
			in.NoteCiphertext, in.NoteNonce, in.NoteVersion = &ct, &nonce, &v
		}
	}

	e, res, err := a.entryService.Save(ctx, in)
	if err := a.reportWrite(err, res); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s\n", e.Key())
	return nil
}

// Delete prompts for a key and writes a tombstone for it.
func (a *App) Delete(ctx context.Context) error {
	date, err := a.askDate()
	if err != nil {
		return err
	}
	slot, err := getSimpleText(a.reader, "Slot (morning/night)", a.out)
	if err != nil {
		return err
	}
	ok, err := getYesNo(a.reader, fmt.Sprintf("Delete %s/%s?", date, slot), a.out)
	if err != nil || !ok {
		return err
	}

	res, err := a.entryService.SoftDelete(ctx, date, slot)
	if err := a.reportWrite(err, res); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s/%s\n", date, slot)
	return nil
}

// reportWrite turns a deferred sync into a notice. The write itself
// succeeded in that case.
func (a *App) reportWrite(err error, res syncer.Result) error {
	switch {
	case err == nil:
		if res.Pushed > 0 || res.Pulled > 0 {
			fmt.Fprintf(a.out, "Synced: pushed %d, pulled %d\n", res.Pushed, res.Pulled)
		}
		return nil
	case errors.Is(err, services.ErrSyncDeferred):
		fmt.Fprintln(a.out, "Warning:", err)
		return nil
	default:
		return err
	}
}

// List prints the entries of date, today when empty.
func (a *App) List(ctx context.Context, date string) error {
	if date == "" {
		date = a.today()
	}
	rows, err := a.entryService.ListByDate(ctx, date)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintf(a.out, "No entries for %s\n", date)
		return nil
	}
	for i := range rows {
		fmt.Fprintln(a.out, a.formatEntry(&rows[i]))
	}
	return nil
}

func mark(b bool) string {
	if b {
		return "x"
	}
	return "-"
}

func (a *App) formatEntry(e *models.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %-7s body:%s speech:%s mind:%s", e.Date, e.Slot, mark(e.BodyDone), mark(e.SpeechDone), mark(e.MindDone))
	if e.ActionPick != nil {
		fmt.Fprintf(&sb, " action=%s", *e.ActionPick)
	}
	if e.Sange != nil {
		fmt.Fprintf(&sb, " sange=%s", *e.Sange)
	}
	if e.Hatsugan != nil {
		fmt.Fprintf(&sb, " hatsugan=%s", *e.Hatsugan)
	}
	if e.Eko != nil {
		fmt.Fprintf(&sb, " eko=%s", *e.Eko)
	}
	if e.IsDirty {
		sb.WriteString(" [unsynced]")
	}

	if e.NoteCiphertext != nil && e.NoteNonce != nil {
		note := "(sealed, log in to read)"
		if a.isLoggedIn() {
			plain, err := cryptox.OpenNote(*e.NoteCiphertext, *e.NoteNonce, e.NoteVersion, a.masterKey)
			if err != nil {
				note = "(cannot open: " + err.Error() + ")"
			} else {
				note = plain
			}
		}
		sb.WriteString("\n  note: " + note)
	}
	return sb.String()
}

// Sync runs passes until the remote has nothing more to return.
func (a *App) Sync(ctx context.Context) error {
	res, err := a.entryService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	fmt.Fprintf(a.out, "Synced: pushed %d, pulled %d\n", res.Pushed, res.Pulled)
	return nil
}

// Status prints the session, the number of unsynced rows and the checkpoint.
func (a *App) Status(ctx context.Context) error {
	dirty, err := a.entries.ListDirty(ctx)
	if err != nil {
		return err
	}
	last, err := a.entries.GetLastSyncAt(ctx)
	if err != nil {
		return err
	}
	_, signedIn, err := a.authService.CurrentIdentity(ctx)
	if err != nil {
		return err
	}

	user := a.userName
	if user == "" {
		user = "(none)"
	}
	checkpoint := "never"
	if last != nil {
		checkpoint = *last
	}

	fmt.Fprintf(a.out, "user:       %s\n", user)
	fmt.Fprintf(a.out, "session:    %t\n", signedIn)
	fmt.Fprintf(a.out, "mode:       %s\n", a.Mode())
	fmt.Fprintf(a.out, "unsynced:   %d\n", len(dirty))
	fmt.Fprintf(a.out, "last sync:  %s\n", checkpoint)
	return nil
}

// Backup uploads a snapshot of the local store.
func (a *App) Backup(ctx context.Context) error {
	key, n, err := a.backupService.Backup(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %d entries to %s\n", n, key)
	return nil
}
