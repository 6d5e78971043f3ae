package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/sanmitsu/internal/client/client"
	cm "github.com/dmitrijs2005/sanmitsu/internal/client/models"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
	pb "github.com/dmitrijs2005/sanmitsu/internal/proto"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	s := newTestServer().srv
	ctx := context.Background()

	cases := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("%w: bad slot", common.ErrorValidation), codes.InvalidArgument},
		{fmt.Errorf("%w: foreign row", common.ErrorForbidden), codes.PermissionDenied},
		{common.ErrorUnauthorized, codes.Unauthenticated},
		{common.ErrRefreshTokenExpired, codes.Unauthenticated},
		{fmt.Errorf("error creating user: %w", common.ErrorAlreadyExists), codes.AlreadyExists},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{context.Canceled, codes.Canceled},
		{errors.New("db down"), codes.Internal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, status.Code(s.toStatus(ctx, tc.err)), tc.err.Error())
	}

	st, _ := status.FromError(s.toStatus(ctx, errors.New("secret detail")))
	assert.Equal(t, "internal error", st.Message())
}

func TestHandlers_RequireUserInContext(t *testing.T) {
	s := newTestServer().srv
	ctx := context.Background()

	_, err := s.Push(ctx, &pb.PushRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.Pull(ctx, &pb.PullRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.GetBackupURL(ctx, &pb.GetBackupURLRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func ptr[T any](v T) *T { return &v }

func TestPush_RejectsNilRow(t *testing.T) {
	env := newTestServer()
	ctx := withUserID(context.Background(), "id-alice")

	_, err := env.srv.Push(ctx, &pb.PushRequest{Rows: []*pb.EntryRow{nil}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestWire_EntryConversion(t *testing.T) {
	v := int32(2)
	in := &pb.EntryRow{
		EntryDate: "2025-01-10", Slot: "night", SpeechDone: true,
		NoteCiphertext: ptr("c"), NoteNonce: ptr("n"), NoteVersion: &v,
		ClientUpdatedAt: "2025-01-10T21:00:00.000000Z", DeviceId: ptr("dev-1"), UserId: "id-alice",
	}

	e := entryFromWire(in)
	require.NotNil(t, e.NoteVersion)
	assert.Equal(t, 2, *e.NoteVersion)
	assert.Equal(t, "id-alice", e.UserID)
	assert.Nil(t, e.ActionPick)

	e.ServerUpdatedAt = "2025-01-10T21:00:01.000000Z"
	out := toWire([]models.Entry{e})
	require.Len(t, out, 1)
	assert.Empty(t, out[0].GetUserId())
	assert.Equal(t, int32(2), out[0].GetNoteVersion())
	assert.Equal(t, "dev-1", out[0].GetDeviceId())
	assert.Equal(t, e.ServerUpdatedAt, out[0].GetServerUpdatedAt())
}

func dialPB(t *testing.T, env *testEnv) pb.EntrySyncClient {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(env.dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return pb.NewEntrySyncClient(conn)
}

func TestEntrySync_OverBufconn(t *testing.T) {
	env := newTestServer()
	env.serve(t)
	c := dialPB(t, env)
	ctx := context.Background()

	reg, err := c.RegisterUser(ctx, &pb.RegisterUserRequest{Username: "alice", Salt: []byte("s"), Verifier: []byte("v")})
	require.NoError(t, err)
	assert.Equal(t, "id-alice", reg.GetUserId())

	_, err = c.RegisterUser(ctx, &pb.RegisterUserRequest{Username: "alice", Salt: []byte("s"), Verifier: []byte("v")})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	salt, err := c.GetSalt(ctx, &pb.GetSaltRequest{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, []byte("s"), salt.Salt)

	_, err = c.Login(ctx, &pb.LoginRequest{Username: "alice", VerifierCandidate: []byte("nope")})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	login, err := c.Login(ctx, &pb.LoginRequest{Username: "alice", VerifierCandidate: []byte("v")})
	require.NoError(t, err)
	assert.Equal(t, "id-alice", login.GetUserId())

	_, err = c.Pull(ctx, &pb.PullRequest{Limit: 10})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, login.AccessToken)

	pushed, err := c.Push(authed, &pb.PushRequest{Rows: []*pb.EntryRow{
		{EntryDate: "2025-01-10", Slot: "morning", BodyDone: true, ClientUpdatedAt: "2025-01-10T07:30:00.000000Z", UserId: "id-alice"},
		{EntryDate: "2025-01-10", Slot: "night", ClientUpdatedAt: "2025-01-10T07:31:00.000000Z"},
	}})
	require.NoError(t, err)
	require.Len(t, pushed.Rows, 2)
	assert.Equal(t, "2025-01-10T08:00:00.000001Z", pushed.Rows[0].ServerUpdatedAt)
	assert.Equal(t, "2025-01-10T08:00:00.000002Z", pushed.Rows[1].ServerUpdatedAt)
	assert.Empty(t, pushed.Rows[0].GetUserId())

	_, err = c.Push(authed, &pb.PushRequest{Rows: []*pb.EntryRow{
		{EntryDate: "2025-01-10", Slot: "night", ClientUpdatedAt: "x", UserId: "id-bob"},
	}})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	all, err := c.Pull(authed, &pb.PullRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all.Rows, 2)
	assert.Equal(t, "morning", all.Rows[0].Slot)

	rest, err := c.Pull(authed, &pb.PullRequest{Since: all.Rows[0].ServerUpdatedAt, Limit: 10})
	require.NoError(t, err)
	require.Len(t, rest.Rows, 1)
	assert.Equal(t, "night", rest.Rows[0].Slot)

	backup, err := c.GetBackupURL(authed, &pb.GetBackupURLRequest{})
	require.NoError(t, err)
	assert.Equal(t, "backups/id-alice/snap.json", backup.Key)
	assert.Equal(t, "id-alice", env.backups.lastUser)

	ping, err := c.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)
}

func TestEntrySync_ServiceErrorsMapToCodes(t *testing.T) {
	env := newTestServer()
	env.entries.err = fmt.Errorf("%w: since", common.ErrorValidation)
	env.backups.err = errors.New("s3 down")
	env.serve(t)
	c := dialPB(t, env)

	_, err := env.users.Register(context.Background(), "alice", []byte("s"), []byte("v"))
	require.NoError(t, err)
	_, pair, err := env.users.Login(context.Background(), "alice", []byte("v"))
	require.NoError(t, err)
	authed := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, pair.AccessToken)

	_, err = c.Pull(authed, &pb.PullRequest{Since: "bogus"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.GetBackupURL(authed, &pb.GetBackupURLRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

// The real client against the real server wiring: an expired access token
// is refreshed transparently and the call is retried.
func TestGRPCClient_AgainstServer(t *testing.T) {
	env := newTestServer()
	env.users.accessTTL = -time.Minute
	env.serve(t)

	c, err := client.NewGRPCClient("passthrough:///bufnet", grpc.WithContextDialer(env.dialer))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	var persisted string
	c.OnTokensRefreshed(func(access, refresh string) { persisted = refresh })

	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	id, err := c.Register(ctx, "alice", []byte("s"), []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, "id-alice", id)

	id, err = c.Login(ctx, "alice", []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, "id-alice", id)

	echoed, err := c.Push(ctx, []cm.RemoteRow{{
		EntryDate:       "2025-01-10",
		Slot:            "morning",
		MindDone:        true,
		ClientUpdatedAt: "2025-01-10T07:30:00.000000Z",
		UserID:          id,
	}})
	require.NoError(t, err)
	require.Len(t, echoed, 1)
	assert.Equal(t, "2025-01-10T08:00:00.000001Z", echoed[0].ServerUpdatedAt)
	assert.Equal(t, 1, env.users.refreshes)
	assert.NotEmpty(t, persisted)

	rows, err := c.Pull(ctx, nil, 500)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].MindDone)
	assert.Equal(t, 1, env.users.refreshes, "fresh token is reused")

	_, err = c.Login(ctx, "alice", []byte("wrong"))
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}
