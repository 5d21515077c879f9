// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Config holds the service settings.
type Config struct {
	LogLevel slog.Level
	// Port serves HTTP.
	Port string
	// GRPCPort serves gRPC; empty disables it.
	GRPCPort string
	// InstallRoot is the directory probed for maxminddb.mmdb and data/maxminddb.dat.
	InstallRoot string
	// WatchDatabase refreshes the database when its file changes.
	WatchDatabase bool
}

// Load reads LOG_LEVEL, PORT, GRPC_PORT, INSTALL_ROOT and WATCH_DATABASE.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		LogLevel:    ParseLogLevel(get(lookup, "LOG_LEVEL", "info")),
		Port:        get(lookup, "PORT", "8080"),
		GRPCPort:    get(lookup, "GRPC_PORT", "9090"),
		InstallRoot: get(lookup, "INSTALL_ROOT", "."),
	}

	if raw, ok := lookup("WATCH_DATABASE"); ok && raw != "" {
		watch, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WATCH_DATABASE %q: %w", raw, err)
		}
		cfg.WatchDatabase = watch
	}

	return cfg, nil
}

// get returns the variable's value, or def when it is unset. A variable set
// to the empty string stays empty so GRPC_PORT= can disable gRPC.
func get(lookup func(string) (string, bool), key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}

// ParseLogLevel converts string log level to slog.Level
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
