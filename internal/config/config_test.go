package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/snake-lab/internal/config"
	"github.com/JaimeStill/snake-lab/pkg/logging"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDir_RepoConfig(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	cfg, err := config.LoadDir("../..")
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level != logging.LevelInfo {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, logging.LevelInfo)
	}
}

func TestLoadDir_MissingBaseAppliesDefaults(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	cfg, err := config.LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}

	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.Server.Host == "" || cfg.Server.Port == 0 {
		t.Errorf("server defaults not applied: %+v", cfg.Server)
	}
	if cfg.Server.MaxHeaderBytes() != 1<<20 {
		t.Errorf("MaxHeaderBytes() = %d, want %d", cfg.Server.MaxHeaderBytes(), 1<<20)
	}
	if cfg.Logging.Format != logging.FormatText {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, logging.FormatText)
	}
}

func TestLoadDir_WithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", `
shutdown_timeout = "30s"

[server]
host = "localhost"
port = 8080
`)
	writeFile(t, dir, "config.test.toml", `
shutdown_timeout = "60s"

[server]
port = 9090
`)
	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() with overlay failed: %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "60s")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("Server.Host = %q, want %q (not overlaid)", cfg.Server.Host, "localhost")
	}
}

func TestLoadDir_Errors(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
	}{
		{"malformed toml", "shutdown_timeout = ", ""},
		{"invalid duration", `shutdown_timeout = "invalid"`, ""},
		{"invalid overlay duration", `shutdown_timeout = "30s"`, `shutdown_timeout = "soon"`},
		{"invalid header size", "[server]\nmax_header_size = \"lots\"", ""},
		{"invalid log level", "[logging]\nlevel = \"loud\"", ""},
		{"relative base path", "[site]\nbase_path = \"games\"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "config.toml", tt.base)
			t.Setenv(config.EnvServiceEnv, "")
			if tt.overlay != "" {
				writeFile(t, dir, "config.bad.toml", tt.overlay)
				t.Setenv(config.EnvServiceEnv, "bad")
			}

			if _, err := config.LoadDir(dir); err == nil {
				t.Error("LoadDir() succeeded, want error")
			}
		})
	}
}

func TestLoadDir_EnvVarOverrides(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv(config.EnvServiceShutdownTimeout, "120s")
	t.Setenv(config.EnvServerPort, "3000")
	t.Setenv(config.EnvServerMaxHeaderSize, "64KB")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv(config.EnvSiteBasePath, "/arcade/")

	cfg, err := config.LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}

	if cfg.ShutdownTimeout != "120s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "120s")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
	if cfg.Server.MaxHeaderBytes() != 64<<10 {
		t.Errorf("MaxHeaderBytes() = %d, want %d", cfg.Server.MaxHeaderBytes(), 64<<10)
	}
	if cfg.Logging.Level != logging.LevelDebug {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, logging.LevelDebug)
	}
	if cfg.Site.BasePath != "/arcade" {
		t.Errorf("Site.BasePath = %q, want %q", cfg.Site.BasePath, "/arcade")
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "45s"}

	if got := cfg.ShutdownTimeoutDuration(); got != 45*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want %v", got, 45*time.Second)
	}
}
