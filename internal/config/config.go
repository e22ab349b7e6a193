package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// RESTBindAddress is the listen address for the API server.
	RESTBindAddress string `json:"restBindAddress"`
	// HealthBindAddress is the listen address for the health/metrics server.
	HealthBindAddress string `json:"healthBindAddress"`

	// StreamTimeout closes a chat stream after this much time without a new
	// message. Zero keeps streams open until the client disconnects.
	StreamTimeout time.Duration `json:"streamTimeout"`
	// PollInterval bounds how long a stream sleeps between log checks.
	PollInterval time.Duration `json:"pollInterval"`

	// RequireAuth rejects API requests without an API key or bearer token.
	RequireAuth bool `json:"requireAuth"`
	// OAuthScope is the default scope attached to minted mock tokens.
	OAuthScope string `json:"oauthScope"`

	// TLSCertPath/TLSKeyPath enable TLS on the API server when both are set.
	// The health server always runs without TLS.
	TLSCertPath string `json:"tlsCertPath"`
	TLSKeyPath  string `json:"tlsKeyPath"`

	// DataDir is the Pebble directory. Empty means in-memory storage.
	DataDir string `json:"dataDir"`

	// SeedFixtures populates the baseline video and chats on startup.
	SeedFixtures bool `json:"seedFixtures"`

	// LogLevel and LogFormat configure the process logger.
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		RESTBindAddress:   "[::1]:8080",
		HealthBindAddress: "[::1]:8081",
		PollInterval:      time.Second,
		OAuthScope:        "mock.scope.read mock.scope.write",
		SeedFixtures:      true,
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// TLSEnabled reports whether both TLS paths are configured.
func (c Config) TLSEnabled() bool {
	return c.TLSCertPath != "" && c.TLSKeyPath != ""
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
