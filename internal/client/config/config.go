package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/sanmitsu/internal/client/client"
	"github.com/dmitrijs2005/sanmitsu/internal/common"
)

// Config holds runtime settings for the sanmitsu client.
type Config struct {
	ServerEndpointAddr  string
	StoreBackend        client.Backend
	DBPath              string
	LogFile             string
	LogLevel            string
	OnlineCheckInterval time.Duration
	PullPageSize        int
	SyncTimeout         time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.StoreBackend = client.BackendSQLite
	c.DBPath = "sanmitsu.db"
	c.LogFile = "sanmitsu.log"
	c.LogLevel = "info"
	c.OnlineCheckInterval = 3 * time.Second
	c.PullPageSize = common.DefaultPullPageSize
	c.SyncTimeout = 30 * time.Second
}

// Validate reports settings the client cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerEndpointAddr == "" {
		errs = append(errs, errors.New("server endpoint address is empty"))
	}
	switch c.StoreBackend {
	case client.BackendSQLite, client.BackendGorm:
	default:
		errs = append(errs, fmt.Errorf("unknown store backend %q", c.StoreBackend))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db path is empty"))
	}
	if c.OnlineCheckInterval <= 0 {
		errs = append(errs, errors.New("online check interval must be positive"))
	}
	if c.PullPageSize < 1 || c.PullPageSize > common.MaxPullPageSize {
		errs = append(errs, fmt.Errorf("pull page size must be between 1 and %d", common.MaxPullPageSize))
	}
	return errors.Join(errs...)
}

// Load builds a Config from defaults, then the JSON file named by the
// config flag, then the flags changed on fs. fs must have been passed to
// RegisterFlags and parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := parseJSON(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
