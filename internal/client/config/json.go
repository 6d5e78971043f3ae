package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sanmitsu/internal/client/client"
	"github.com/dmitrijs2005/sanmitsu/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish a missing key from a zero value.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	StoreBackend        *string         `json:"store_backend"`
	DBPath              *string         `json:"db_path"`
	LogFile             *string         `json:"log_file"`
	LogLevel            *string         `json:"log_level"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	PullPageSize        *int            `json:"pull_page_size"`
	SyncTimeout         *timex.Duration `json:"sync_timeout"`
}

// parseJSON overlays cfg with the keys present in the file at path.
func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.StoreBackend != nil {
		cfg.StoreBackend = client.Backend(*jc.StoreBackend)
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.PullPageSize != nil {
		cfg.PullPageSize = *jc.PullPageSize
	}
	if jc.SyncTimeout != nil {
		cfg.SyncTimeout = jc.SyncTimeout.Duration
	}
	return nil
}
