package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/sanmitsu/internal/client/client"
	"github.com/dmitrijs2005/sanmitsu/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sanmitsu/internal/client/syncer"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/cryptox"
)

// Metadata keys of the persisted session.
const (
	metaUsername     = "username"
	metaSalt         = "salt"
	metaVerifier     = "verifier"
	metaUserID       = "user_id"
	metaAccessToken  = "access_token"
	metaRefreshToken = "refresh_token"
	metaDeviceID     = "device_id"
)

var sessionKeys = []string{metaUserID, metaAccessToken, metaRefreshToken}

// AuthService defines authentication operations for the CLI.
//
// OnlineLogin authenticates against the server and persists what offline
// login and background sync need. OfflineLogin verifies the password against
// that cached data. CurrentIdentity reports the persisted session, so it can
// back the sync engine directly.
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) ([]byte, error)
	OnlineLogin(ctx context.Context, username string, password []byte) ([]byte, error)
	Register(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	ClearOfflineData(ctx context.Context) error
	CurrentIdentity(ctx context.Context) (syncer.Identity, bool, error)
	RestoreSession(ctx context.Context) (string, bool, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	meta   metadata.Repository
}

func NewAuthService(c client.Client, meta metadata.Repository) AuthService {
	return &authService{client: c, meta: meta}
}

// OfflineLogin derives a master key from the password and the cached salt and
// checks it against the cached verifier. A stored session is handed back to
// the client so sync resumes once the server is reachable.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) ([]byte, error) {
	savedUsername, err := a.meta.Get(ctx, metaUsername)
	if err != nil {
		return nil, err
	}
	if savedUsername == nil {
		return nil, client.ErrLocalDataNotAvailable
	}
	if string(savedUsername) != username {
		return nil, client.ErrUnauthorized
	}

	salt, err := a.meta.Get(ctx, metaSalt)
	if err != nil {
		return nil, err
	}
	verifier, err := a.meta.Get(ctx, metaVerifier)
	if err != nil {
		return nil, err
	}
	if salt == nil || verifier == nil {
		return nil, client.ErrLocalDataNotAvailable
	}

	masterKey := cryptox.DeriveMasterKey(password, salt)
	if subtle.ConstantTimeCompare(verifier, cryptox.MakeVerifier(masterKey)) == 0 {
		return nil, client.ErrUnauthorized
	}

	if _, _, err := a.RestoreSession(ctx); err != nil {
		return nil, err
	}
	return masterKey, nil
}

// OnlineLogin authenticates against the server, saves the offline data and
// the session, and returns the derived master key.
func (a *authService) OnlineLogin(ctx context.Context, userName string, password []byte) ([]byte, error) {
	salt, err := a.client.GetSalt(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("get salt error: %w", err)
	}

	masterKey := cryptox.DeriveMasterKey(password, salt)
	verifier := cryptox.MakeVerifier(masterKey)

	userID, err := a.client.Login(ctx, userName, verifier)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	access, refresh := a.client.Tokens()
	values := map[string][]byte{
		metaUsername:     []byte(userName),
		metaSalt:         salt,
		metaVerifier:     verifier,
		metaUserID:       []byte(userID),
		metaAccessToken:  []byte(access),
		metaRefreshToken: []byte(refresh),
	}
	for k, v := range values {
		if err := a.meta.Set(ctx, k, v); err != nil {
			return nil, fmt.Errorf("offline data saving error: %w", err)
		}
	}
	return masterKey, nil
}

// Register creates a new account with a fresh random salt.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	if _, err := a.client.Register(ctx, username, salt, cryptox.MakeVerifier(key)); err != nil {
		return err
	}
	return nil
}

// Logout forgets the server session. Offline credentials, the device id and
// local entries stay.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.meta.Delete(ctx, sessionKeys...); err != nil {
		return err
	}
	a.client.SetTokens("", "")
	return nil
}

// ClearOfflineData removes the session and the cached credentials.
func (a *authService) ClearOfflineData(ctx context.Context) error {
	if err := a.Logout(ctx); err != nil {
		return err
	}
	return a.meta.Delete(ctx, metaUsername, metaSalt, metaVerifier)
}

// CurrentIdentity reports the persisted session. There is no identity
// until an online login has stored a user id and tokens.
func (a *authService) CurrentIdentity(ctx context.Context) (syncer.Identity, bool, error) {
	userID, err := a.meta.Get(ctx, metaUserID)
	if err != nil {
		return syncer.Identity{}, false, err
	}
	if len(userID) == 0 {
		return syncer.Identity{}, false, nil
	}
	refresh, err := a.meta.Get(ctx, metaRefreshToken)
	if err != nil {
		return syncer.Identity{}, false, err
	}
	if len(refresh) == 0 {
		return syncer.Identity{}, false, nil
	}
	return syncer.Identity{UserID: string(userID)}, true, nil
}

// RestoreSession loads persisted tokens into the client. It returns the
// stored username and whether a session was found.
func (a *authService) RestoreSession(ctx context.Context) (string, bool, error) {
	values, err := a.meta.GetMany(ctx, metaUsername, metaUserID, metaAccessToken, metaRefreshToken)
	if err != nil {
		return "", false, err
	}
	if len(values[metaUserID]) == 0 || len(values[metaRefreshToken]) == 0 {
		return string(values[metaUsername]), false, nil
	}
	a.client.SetTokens(string(values[metaAccessToken]), string(values[metaRefreshToken]))
	return string(values[metaUsername]), true, nil
}

// SaveTokens persists a refreshed token pair.
func SaveTokens(ctx context.Context, meta metadata.Repository, access, refresh string) error {
	if err := meta.Set(ctx, metaAccessToken, []byte(access)); err != nil {
		return err
	}
	return meta.Set(ctx, metaRefreshToken, []byte(refresh))
}

// DeviceID returns this device's id, creating it on first use.
func DeviceID(ctx context.Context, meta metadata.Repository) (string, error) {
	v, err := meta.Get(ctx, metaDeviceID)
	if err != nil {
		return "", err
	}
	if len(v) > 0 {
		return string(v), nil
	}
	id := uuid.NewString()
	if err := meta.Set(ctx, metaDeviceID, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
