// SPDX-License-Identifier: MIT

// Package config loads subwaypath settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	Network NetworkConfig
	Logging LoggingConfig
}

// NetworkConfig points at the network document and bounds queries.
type NetworkConfig struct {
	File        string
	MaxDistance int64 // 0 disables the cap
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultNetworkFile   = "network.yaml"
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
)

// Environment keys.
const (
	EnvNetworkFile      = "SUBWAY_NETWORK_FILE"
	EnvMaxDistance      = "SUBWAY_MAX_DISTANCE"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogIncludeCaller = "LOG_INCLUDE_CALLER"
)

// Load loads the given dotenv files (missing files are skipped; variables
// already set in the process win) and then reads configuration from the
// environment, applying defaults.
func Load(dotenv ...string) (Config, error) {
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Config{
		Network: NetworkConfig{
			File: valueOrDefault(EnvNetworkFile, defaultNetworkFile),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault(EnvLogLevel, defaultLoggingLevel),
			Format:        valueOrDefault(EnvLogFormat, defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault(EnvLogIncludeCaller, false),
		},
	}

	if v := os.Getenv(EnvMaxDistance); v != "" {
		d, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", EnvMaxDistance, v, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid %s value %d: must be non-negative", EnvMaxDistance, d)
		}
		cfg.Network.MaxDistance = d
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
