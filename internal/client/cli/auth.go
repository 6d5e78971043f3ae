package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sanmitsu/internal/client/client"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
	getMultiline  = GetMultiline
)

// Register prompts for a username and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		if errors.Is(err, client.ErrAlreadyExists) {
			return fmt.Errorf("username %q is taken", userName)
		}
		return fmt.Errorf("register: %w", err)
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login tries an online login first and falls back to the cached offline
// credentials when the server is unreachable. After an online login the
// local store is synced.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	masterKey, err := a.authService.OnlineLogin(ctx, userName, password)
	switch {
	case err == nil:
		a.masterKey, a.userName = masterKey, userName
		a.setMode(ModeOnline)
		fmt.Fprintln(a.out, "Login successful")
		return a.Sync(ctx)

	case errors.Is(err, client.ErrUnavailable):
		a.logger.Info(ctx, "server unavailable, trying offline login")
		masterKey, err = a.authService.OfflineLogin(ctx, userName, password)
		if err != nil {
			a.setMode(ModeDisabled)
			return fmt.Errorf("offline login: %w", err)
		}
		a.masterKey, a.userName = masterKey, userName
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Logged in offline, changes will sync when the server is back")
		return nil

	default:
		return fmt.Errorf("login: %w", err)
	}
}

// Logout ends the server session and forgets the master key. Local entries
// and offline credentials stay.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	common.WipeByteArray(a.masterKey)
	a.masterKey = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
