package config

import (
	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/sanmitsu/internal/client/client"
)

const (
	FlagConfig              = "config"
	FlagServerEndpointAddr  = "addr"
	FlagStoreBackend        = "store"
	FlagDBPath              = "db"
	FlagLogFile             = "log-file"
	FlagLogLevel            = "log-level"
	FlagOnlineCheckInterval = "online-check"
	FlagPullPageSize        = "page-size"
	FlagSyncTimeout         = "sync-timeout"
)

// RegisterFlags declares the client flags on fs with the defaults as values.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to JSON config file")
	fs.StringP(FlagServerEndpointAddr, "a", d.ServerEndpointAddr, "address and port of the sync server")
	fs.String(FlagStoreBackend, string(d.StoreBackend), "local store backend: sqlite or gorm")
	fs.String(FlagDBPath, d.DBPath, "path to the local database file")
	fs.String(FlagLogFile, d.LogFile, "log file, empty logs to stderr")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.DurationP(FlagOnlineCheckInterval, "i", d.OnlineCheckInterval, "online status check interval")
	fs.Int(FlagPullPageSize, d.PullPageSize, "rows requested per pull")
	fs.Duration(FlagSyncTimeout, d.SyncTimeout, "upper bound for one sync pass")
}

// applyFlags copies every flag the user set explicitly into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case FlagServerEndpointAddr:
			cfg.ServerEndpointAddr, err = fs.GetString(f.Name)
		case FlagStoreBackend:
			var s string
			s, err = fs.GetString(f.Name)
			cfg.StoreBackend = client.Backend(s)
		case FlagDBPath:
			cfg.DBPath, err = fs.GetString(f.Name)
		case FlagLogFile:
			cfg.LogFile, err = fs.GetString(f.Name)
		case FlagLogLevel:
			cfg.LogLevel, err = fs.GetString(f.Name)
		case FlagOnlineCheckInterval:
			cfg.OnlineCheckInterval, err = fs.GetDuration(f.Name)
		case FlagPullPageSize:
			cfg.PullPageSize, err = fs.GetInt(f.Name)
		case FlagSyncTimeout:
			cfg.SyncTimeout, err = fs.GetDuration(f.Name)
		}
	})
	return err
}
