package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sanmitsu/internal/client/client"
	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
)

func ptr[T any](v T) *T { return &v }

func openStore(t *testing.T) *client.Store {
	t.Helper()
	s, err := client.OpenStore(context.Background(), client.BackendSQLite, filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// fakeClient implements client.Client.
type fakeClient struct {
	mu sync.Mutex

	CloseErr    error
	RegisterErr error
	RegisterID  string

	GetSaltRet []byte
	GetSaltErr error

	LoginID  string
	LoginErr error
	// tokens handed out by Login
	LoginAccess  string
	LoginRefresh string

	PingErr error

	PushErr error
	Pushed  [][]models.RemoteRow

	BackupKey string
	BackupURL string
	BackupErr error

	LastRegisterUser string
	LastRegisterSalt []byte
	LastRegisterKey  []byte
	LastLoginUser    string
	LastLoginKey     []byte

	access, refresh string
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, username string, salt []byte, key []byte) (string, error) {
	f.LastRegisterUser = username
	f.LastRegisterSalt = append([]byte(nil), salt...)
	f.LastRegisterKey = append([]byte(nil), key...)
	return f.RegisterID, f.RegisterErr
}

func (f *fakeClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) Login(ctx context.Context, username string, key []byte) (string, error) {
	f.LastLoginUser = username
	f.LastLoginKey = append([]byte(nil), key...)
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	f.SetTokens(f.LoginAccess, f.LoginRefresh)
	return f.LoginID, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Push(ctx context.Context, rows []models.RemoteRow) ([]models.RemoteRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Pushed = append(f.Pushed, rows)
	if f.PushErr != nil {
		return nil, f.PushErr
	}
	out := make([]models.RemoteRow, len(rows))
	for i, r := range rows {
		r.ServerUpdatedAt = fmt.Sprintf("2025-01-10T09:00:00.%06dZ", i+1)
		out[i] = r
	}
	return out, nil
}

func (f *fakeClient) Pull(ctx context.Context, since *string, limit int) ([]models.RemoteRow, error) {
	return nil, nil
}

func (f *fakeClient) GetBackupURL(ctx context.Context) (string, string, error) {
	return f.BackupKey, f.BackupURL, f.BackupErr
}

func (f *fakeClient) SetTokens(access, refresh string) {
	f.access, f.refresh = access, refresh
}

func (f *fakeClient) Tokens() (string, string) { return f.access, f.refresh }
