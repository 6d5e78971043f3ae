// Package config loads runtime configuration for the sanmitsu client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by --config / -c.
//  3. Flags explicitly set on the command line, which override earlier values.
//
// Flags are registered on a cobra/pflag flag set with RegisterFlags and read
// back with Load, so every subcommand shares one set.
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or integer
// nanoseconds. Missing keys keep the default:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "store_backend": "sqlite",
//	  "db_path": "sanmitsu.db",
//	  "log_file": "sanmitsu.log",
//	  "log_level": "info",
//	  "online_check_interval": "3s",
//	  "pull_page_size": 500,
//	  "sync_timeout": "30s"
//	}
package config
