package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/sanmitsu/internal/client/models"
	"github.com/dmitrijs2005/sanmitsu/internal/client/repositories/entries"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"github.com/dmitrijs2005/sanmitsu/internal/logging"
)

const (
	DefaultPassTimeout = 30 * time.Second
	// maxConvergePasses bounds Converge when the remote keeps returning full pages.
	maxConvergePasses = 100
)

// ErrMissingServerTimestamp is returned when the remote returns a row
// without a server timestamp.
var ErrMissingServerTimestamp = errors.New("remote row has no server_updated_at")

// Identity is the signed-in account sync runs for.
type Identity struct {
	UserID string
}

// IdentityProvider resolves the current identity. ok is false when nobody
// is signed in.
type IdentityProvider interface {
	CurrentIdentity(ctx context.Context) (id Identity, ok bool, err error)
}

// Remote is the part of the remote store the engine needs.
type Remote interface {
	Push(ctx context.Context, rows []models.RemoteRow) ([]models.RemoteRow, error)
	Pull(ctx context.Context, since *string, limit int) ([]models.RemoteRow, error)
}

// Result describes one pass.
type Result struct {
	Pushed int
	Pulled int
	// More is set when the pull page was full and another pass is needed
	// to converge.
	More bool
}

type Option func(*Engine)

// WithPageSize sets the pull page bound. Values below 1 are ignored. Values
// above common.MaxPullPageSize are clamped, as the server caps pages there.
func WithPageSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.pageSize = min(n, common.MaxPullPageSize)
		}
	}
}

// WithPassTimeout bounds one pass. Zero disables the bound.
func WithPassTimeout(d time.Duration) Option {
	return func(e *Engine) { e.passTimeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine runs sync passes. It is safe for concurrent use.
type Engine struct {
	store       entries.Repository
	remote      Remote
	identity    IdentityProvider
	logger      logging.Logger
	pageSize    int
	passTimeout time.Duration

	group   singleflight.Group
	mu      sync.Mutex
	started uint64
}

func NewEngine(store entries.Repository, remote Remote, identity IdentityProvider, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		remote:      remote,
		identity:    identity,
		logger:      logging.NewNop(),
		pageSize:    common.DefaultPullPageSize,
		passTimeout: DefaultPassTimeout,
	}
	for _, o := range opts {
		o(e)
	}
	e.logger = e.logger.With("module", "syncer")
	return e
}

type passOutcome struct {
	gen uint64
	res Result
}

// SyncNow runs one reconciliation pass, or waits for one already started
// after this call. Cancelling ctx stops the wait but not a pass other
// callers may share.
func (e *Engine) SyncNow(ctx context.Context) (Result, error) {
	e.mu.Lock()
	want := e.started + 1
	e.mu.Unlock()

	for {
		ch := e.group.DoChan("sync", func() (any, error) {
			return e.runShared(ctx)
		})

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case r := <-ch:
			out, _ := r.Val.(passOutcome)
			if out.gen >= want {
				return out.res, r.Err
			}
		}
	}
}

// Converge repeats passes until the pull page is no longer full.
func (e *Engine) Converge(ctx context.Context) (Result, error) {
	var total Result
	for i := 0; i < maxConvergePasses; i++ {
		res, err := e.SyncNow(ctx)
		total.Pushed += res.Pushed
		total.Pulled += res.Pulled
		total.More = res.More
		if err != nil || !res.More {
			return total, err
		}
	}
	return total, nil
}

func (e *Engine) runShared(ctx context.Context) (passOutcome, error) {
	e.mu.Lock()
	e.started++
	gen := e.started
	e.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	if e.passTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.passTimeout)
		defer cancel()
	}

	res, err := e.pass(ctx)
	return passOutcome{gen: gen, res: res}, err
}

func (e *Engine) pass(ctx context.Context) (Result, error) {
	var res Result

	id, ok, err := e.identity.CurrentIdentity(ctx)
	if err != nil {
		return res, fmt.Errorf("resolve identity: %w", err)
	}
	if !ok {
		e.logger.Debug(ctx, "no signed-in identity, skipping sync")
		return res, nil
	}

	if res.Pushed, err = e.push(ctx, id); err != nil {
		e.logger.Warn(ctx, "push failed", "error", err)
		return res, err
	}

	if res.Pulled, res.More, err = e.pull(ctx); err != nil {
		e.logger.Warn(ctx, "pull failed", "error", err)
		return res, err
	}

	e.logger.Info(ctx, "sync pass finished", "pushed", res.Pushed, "pulled", res.Pulled, "more", res.More)
	return res, nil
}

func (e *Engine) push(ctx context.Context, id Identity) (int, error) {
	dirty, err := e.store.ListDirty(ctx)
	if err != nil {
		return 0, fmt.Errorf("list dirty: %w", err)
	}
	if len(dirty) == 0 {
		return 0, nil
	}

	rows := make([]models.RemoteRow, len(dirty))
	pushedAt := make(map[models.Key]string, len(dirty))
	for i := range dirty {
		rows[i] = models.ToRemote(&dirty[i], id.UserID)
		pushedAt[dirty[i].Key()] = dirty[i].ClientUpdatedAt
	}

	echoed, err := e.remote.Push(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("push %d rows: %w", len(rows), err)
	}

	// A bad echo fails the pass before any row is marked clean.
	for _, r := range echoed {
		if r.ServerUpdatedAt == "" {
			return 0, fmt.Errorf("push echo %s/%s: %w", r.EntryDate, r.Slot, ErrMissingServerTimestamp)
		}
	}

	for _, r := range echoed {
		key := models.Key{Date: r.EntryDate, Slot: models.Slot(r.Slot)}
		version, ok := pushedAt[key]
		if !ok {
			version = r.ClientUpdatedAt
		}
		if err := e.store.MarkClean(ctx, key, r.ServerUpdatedAt, version); err != nil {
			return 0, fmt.Errorf("mark clean: %w", err)
		}
	}

	e.logger.Debug(ctx, "pushed dirty entries", "count", len(rows), "acknowledged", len(echoed))
	return len(echoed), nil
}

func (e *Engine) pull(ctx context.Context) (int, bool, error) {
	since, err := e.store.GetLastSyncAt(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("read checkpoint: %w", err)
	}

	rows, err := e.remote.Pull(ctx, since, e.pageSize)
	if err != nil {
		return 0, false, fmt.Errorf("pull: %w", err)
	}
	if len(rows) == 0 {
		return 0, false, nil
	}

	last := rows[len(rows)-1].ServerUpdatedAt
	if last == "" {
		return 0, false, fmt.Errorf("pull page: %w", ErrMissingServerTimestamp)
	}

	local := make([]models.Entry, len(rows))
	for i, r := range rows {
		local[i] = models.FromRemote(r)
	}
	if err := e.store.ApplyRemote(ctx, local); err != nil {
		return 0, false, fmt.Errorf("apply remote: %w", err)
	}
	if err := e.store.SetLastSyncAt(ctx, last); err != nil {
		return 0, false, fmt.Errorf("advance checkpoint: %w", err)
	}

	e.logger.Debug(ctx, "pulled remote entries", "count", len(rows), "checkpoint", last)
	return len(rows), len(rows) >= e.pageSize, nil
}
