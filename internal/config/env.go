package config

import (
	"os"
	"strconv"
	"time"
)

// FromEnv overlays environment variables onto cfg. Names match the original
// deployment contract: CHAT_STREAM_TIMEOUT is whole seconds (0 disables),
// CHAT_POLL_INTERVAL_MS is milliseconds.
func FromEnv(cfg *Config) {
	if v := os.Getenv("REST_BIND_ADDRESS"); v != "" {
		cfg.RESTBindAddress = v
	}
	if v := os.Getenv("HEALTH_BIND_ADDRESS"); v != "" {
		cfg.HealthBindAddress = v
	}
	if v := os.Getenv("CHAT_STREAM_TIMEOUT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			cfg.StreamTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("CHAT_POLL_INTERVAL_MS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.PollInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("REQUIRE_AUTH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RequireAuth = b
		}
	}
	if v := os.Getenv("OAUTH_MOCK_SCOPE"); v != "" {
		cfg.OAuthScope = v
	}
	if v := os.Getenv("TLS_CERT_PATH"); v != "" {
		cfg.TLSCertPath = v
	}
	if v := os.Getenv("TLS_KEY_PATH"); v != "" {
		cfg.TLSKeyPath = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("YTMOCK_SEED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedFixtures = b
		}
	}
	if v := os.Getenv("YTMOCK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("YTMOCK_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
