package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.RESTBindAddress != "[::1]:8080" {
		t.Fatalf("rest default: %q", cfg.RESTBindAddress)
	}
	if cfg.HealthBindAddress != "[::1]:8081" {
		t.Fatalf("health default: %q", cfg.HealthBindAddress)
	}
	if cfg.StreamTimeout != 0 {
		t.Fatalf("stream timeout should default to disabled")
	}
	if cfg.PollInterval != time.Second {
		t.Fatalf("poll interval default: %v", cfg.PollInterval)
	}
	if !cfg.SeedFixtures {
		t.Fatalf("seeding should default to on")
	}
	if cfg.TLSEnabled() {
		t.Fatalf("TLS should default to off")
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ytmock.json")
	data := []byte(`{"restBindAddress":"127.0.0.1:9090","requireAuth":true,"seedFixtures":false}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RESTBindAddress != "127.0.0.1:9090" {
		t.Fatalf("rest: %q", cfg.RESTBindAddress)
	}
	if !cfg.RequireAuth {
		t.Fatalf("requireAuth should be true")
	}
	if cfg.SeedFixtures {
		t.Fatalf("seedFixtures should be false")
	}
	// untouched keys keep defaults
	if cfg.HealthBindAddress != "[::1]:8081" {
		t.Fatalf("health default lost: %q", cfg.HealthBindAddress)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("want defaults, got %+v", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("REST_BIND_ADDRESS", "0.0.0.0:8000")
	t.Setenv("HEALTH_BIND_ADDRESS", "0.0.0.0:8001")
	t.Setenv("CHAT_STREAM_TIMEOUT", "30")
	t.Setenv("CHAT_POLL_INTERVAL_MS", "250")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("OAUTH_MOCK_SCOPE", "custom.scope")
	t.Setenv("DATA_DIR", "/tmp/ytmock")

	cfg := Default()
	FromEnv(&cfg)

	if cfg.RESTBindAddress != "0.0.0.0:8000" || cfg.HealthBindAddress != "0.0.0.0:8001" {
		t.Fatalf("addresses not overlaid: %+v", cfg)
	}
	if cfg.StreamTimeout != 30*time.Second {
		t.Fatalf("stream timeout: %v", cfg.StreamTimeout)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Fatalf("poll interval: %v", cfg.PollInterval)
	}
	if !cfg.RequireAuth {
		t.Fatalf("requireAuth not overlaid")
	}
	if cfg.OAuthScope != "custom.scope" {
		t.Fatalf("scope: %q", cfg.OAuthScope)
	}
	if cfg.DataDir != "/tmp/ytmock" {
		t.Fatalf("data dir: %q", cfg.DataDir)
	}
}

func TestFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("CHAT_STREAM_TIMEOUT", "never")
	t.Setenv("CHAT_POLL_INTERVAL_MS", "-5")
	t.Setenv("REQUIRE_AUTH", "yes please")

	cfg := Default()
	FromEnv(&cfg)

	if cfg.StreamTimeout != 0 || cfg.PollInterval != time.Second || cfg.RequireAuth {
		t.Fatalf("invalid values should be ignored: %+v", cfg)
	}
}
