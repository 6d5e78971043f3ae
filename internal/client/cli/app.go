package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/sanmitsu/internal/client/client"
	"github.com/dmitrijs2005/sanmitsu/internal/client/config"
	"github.com/dmitrijs2005/sanmitsu/internal/client/repositories/entries"
	"github.com/dmitrijs2005/sanmitsu/internal/client/services"
	"github.com/dmitrijs2005/sanmitsu/internal/client/syncer"
	"github.com/dmitrijs2005/sanmitsu/internal/logging"
	"github.com/dmitrijs2005/sanmitsu/internal/netx"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type backupRunner interface {
	Backup(ctx context.Context) (string, int, error)
}

// tokenNotifier is implemented by clients that refresh tokens on their own.
type tokenNotifier interface {
	OnTokensRefreshed(fn func(access, refresh string))
}

type App struct {
	config        *config.Config
	logger        logging.Logger
	store         *client.Store
	entries       entries.Repository
	authService   services.AuthService
	entryService  services.EntryService
	backupService backupRunner
	engine        *syncer.Engine

	masterKey []byte
	userName  string

	modeMu sync.RWMutex
	mode   Mode

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp opens the local store and the server connection described by c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	store, err := client.OpenStore(ctx, c.StoreBackend, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a, err := newApp(ctx, c, store, api, logger)
	if err != nil {
		_ = api.Close()
		_ = store.Close()
		return nil, err
	}
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, store *client.Store, api client.Client, logger logging.Logger) (*App, error) {
	logger = logger.With("module", "cli")

	deviceID, err := services.DeviceID(ctx, store.Metadata)
	if err != nil {
		return nil, err
	}

	auth := services.NewAuthService(api, store.Metadata)
	if n, ok := api.(tokenNotifier); ok {
		n.OnTokensRefreshed(func(access, refresh string) {
			if err := services.SaveTokens(context.Background(), store.Metadata, access, refresh); err != nil {
				logger.Warn(context.Background(), "persisting refreshed tokens", "error", err)
			}
		})
	}

	userName, _, err := auth.RestoreSession(ctx)
	if err != nil {
		return nil, err
	}

	engine := syncer.NewEngine(store.Entries, api, auth,
		syncer.WithPageSize(c.PullPageSize),
		syncer.WithPassTimeout(c.SyncTimeout),
		syncer.WithLogger(logger),
	)

	return &App{
		config:        c,
		logger:        logger,
		store:         store,
		entries:       store.Entries,
		authService:   auth,
		entryService:  services.NewEntryService(store.Entries, engine, deviceID),
		backupService: services.NewBackupService(store.Entries, api, netx.NewUploader(nil), deviceID),
		engine:        engine,
		userName:      userName,
		mode:          ModeOffline,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		now:           time.Now,
	}, nil
}

// Close releases the server connection and the local store.
func (a *App) Close(ctx context.Context) error {
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "closing connection", "error", err)
	}
	return a.store.Close()
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

// setMode reports whether the mode changed.
func (a *App) setMode(mode Mode) bool {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode == mode {
		return false
	}
	a.mode = mode
	a.logger.Info(context.Background(), "switched mode", "mode", mode)
	return true
}

func (a *App) isLoggedIn() bool {
	return a.masterKey != nil
}

// checkOnline pings the server once and updates the mode. A switch to online
// starts a sync so edits made offline go out without user action.
func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.authService.Ping(pctx)
	cancel()

	if err != nil {
		if a.Mode() == ModeOnline {
			a.setMode(ModeOffline)
		}
		return
	}
	if a.setMode(ModeOnline) {
		if res, err := a.engine.Converge(ctx); err != nil {
			a.logger.Warn(ctx, "sync after reconnect failed", "error", err)
		} else {
			a.logger.Info(ctx, "sync after reconnect", "pushed", res.Pushed, "pulled", res.Pulled)
		}
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
