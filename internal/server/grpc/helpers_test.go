package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/logging"
	"github.com/dmitrijs2005/sanmitsu/internal/server/auth"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
	"github.com/dmitrijs2005/sanmitsu/internal/server/services"
	"google.golang.org/grpc/test/bufconn"
)

const testSecret = "secret"

// fakeUsers keeps one account per name. Access tokens are real JWTs so the
// interceptor is exercised; accessTTL lets tests hand out expired ones.
type fakeUsers struct {
	mu        sync.Mutex
	users     map[string]*models.User
	refresh   map[string]string
	accessTTL time.Duration
	err       error
	refreshes int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]*models.User{}, refresh: map[string]string{}, accessTTL: time.Hour}
}

func (f *fakeUsers) Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[username]; ok {
		return nil, fmt.Errorf("error creating user: %w", common.ErrorAlreadyExists)
	}
	u := &models.User{ID: "id-" + username, UserName: username, Salt: salt, Verifier: verifier}
	f.users[username] = u
	return u, nil
}

func (f *fakeUsers) GetSalt(ctx context.Context, username string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[username]; ok {
		return u.Salt, nil
	}
	return []byte("random"), nil
}

func (f *fakeUsers) pair(userID string, ttl time.Duration) (*services.TokenPair, error) {
	access, err := auth.GenerateToken(userID, []byte(testSecret), ttl)
	if err != nil {
		return nil, err
	}
	refresh := fmt.Sprintf("r-%s-%d", userID, len(f.refresh))
	f.refresh[refresh] = userID
	return &services.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (f *fakeUsers) Login(ctx context.Context, username string, cand []byte) (string, *services.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok || string(u.Verifier) != string(cand) {
		return "", nil, common.ErrorUnauthorized
	}
	p, err := f.pair(u.ID, f.accessTTL)
	return u.ID, p, err
}

func (f *fakeUsers) RefreshToken(ctx context.Context, token string) (*services.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.refresh[token]
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	delete(f.refresh, token)
	f.refreshes++
	return f.pair(userID, time.Hour)
}

// fakeEntries is an in-memory remote store with a microsecond clock.
type fakeEntries struct {
	mu    sync.Mutex
	rows  map[string]map[string]models.Entry
	clock time.Time
	err   error
}

func newFakeEntries() *fakeEntries {
	return &fakeEntries{rows: map[string]map[string]models.Entry{}, clock: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)}
}

func (f *fakeEntries) Push(ctx context.Context, userID string, rows []models.Entry) ([]models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.rows[userID] == nil {
		f.rows[userID] = map[string]models.Entry{}
	}
	out := make([]models.Entry, len(rows))
	for i, r := range rows {
		if r.UserID != "" && r.UserID != userID {
			return nil, fmt.Errorf("%w: foreign row", common.ErrorForbidden)
		}
		f.clock = f.clock.Add(time.Microsecond)
		r.UserID = userID
		r.ServerUpdatedAt = common.FormatTimestamp(f.clock)
		f.rows[userID][r.EntryDate+"/"+r.Slot] = r
		out[i] = r
	}
	return out, nil
}

func (f *fakeEntries) Pull(ctx context.Context, userID string, since string, limit int) ([]models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Entry
	for _, r := range f.rows[userID] {
		if r.ServerUpdatedAt > since {
			out = append(out, r)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].ServerUpdatedAt < out[j-1].ServerUpdatedAt; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeBackups struct {
	lastUser string
	err      error
}

func (f *fakeBackups) GetBackupURL(ctx context.Context, userID string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	f.lastUser = userID
	key := "backups/" + userID + "/snap.json"
	return key, "http://s3.local/" + key, nil
}

type testEnv struct {
	srv     *GRPCServer
	users   *fakeUsers
	entries *fakeEntries
	backups *fakeBackups
	lis     *bufconn.Listener
}

func newTestServer() *testEnv {
	env := &testEnv{users: newFakeUsers(), entries: newFakeEntries(), backups: &fakeBackups{}}
	env.srv = NewGRPCServer("", logging.NewNop(), env.users, env.entries, env.backups, testSecret)
	return env
}

// serve starts the server on an in-memory listener for the test's lifetime.
func (env *testEnv) serve(t *testing.T) {
	t.Helper()
	env.lis = bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = env.srv.Serve(ctx, env.lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func (env *testEnv) dialer(ctx context.Context, _ string) (net.Conn, error) {
	return env.lis.DialContext(ctx)
}
