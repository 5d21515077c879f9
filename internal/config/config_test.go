package config

import (
	"log/slog"
	"testing"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.GRPCPort != "9090" {
		t.Errorf("expected gRPC port 9090, got %s", cfg.GRPCPort)
	}
	if cfg.InstallRoot != "." {
		t.Errorf("expected install root ., got %s", cfg.InstallRoot)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.LogLevel)
	}
	if cfg.WatchDatabase {
		t.Error("expected watching disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"LOG_LEVEL":      "debug",
		"PORT":           "8000",
		"GRPC_PORT":      "",
		"INSTALL_ROOT":   "/srv/garrysmod",
		"WATCH_DATABASE": "true",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected port 8000, got %s", cfg.Port)
	}
	if cfg.GRPCPort != "" {
		t.Errorf("expected gRPC disabled, got %q", cfg.GRPCPort)
	}
	if cfg.InstallRoot != "/srv/garrysmod" {
		t.Errorf("unexpected install root %s", cfg.InstallRoot)
	}
	if !cfg.WatchDatabase {
		t.Error("expected watching enabled")
	}
}

func TestLoadInvalidWatch(t *testing.T) {
	if _, err := load(env(map[string]string{"WATCH_DATABASE": "sometimes"})); err == nil {
		t.Fatal("expected error for invalid WATCH_DATABASE")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
