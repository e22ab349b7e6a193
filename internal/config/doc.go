// Package config provides loading and environment overlay for the mock
// server configuration. It exposes a Default() baseline, JSON file loading,
// and a FromEnv overlay that honors the same environment variables as the
// deployment scripts (REST_BIND_ADDRESS, CHAT_STREAM_TIMEOUT, ...).
//
// Example:
//
//	cfg := config.Default()
//	config.FromEnv(&cfg)
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
package config
