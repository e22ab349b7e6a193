package serverrun

import (
	"context"
	"testing"
	"time"

	cfgpkg "github.com/yuge42/yt-api-mock/internal/config"
)

// TestRunStartsAndStops starts real servers on ephemeral ports and verifies
// Run returns cleanly once the context is cancelled.
func TestRunStartsAndStops(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cfg := cfgpkg.Default()
	cfg.RESTBindAddress = "127.0.0.1:0"
	cfg.HealthBindAddress = "127.0.0.1:0"
	cfg.LogLevel = "error"

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- Run(ctx, Options{Config: cfg}) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after context cancellation")
	}
}

func TestRunWithDurableDir(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cfg := cfgpkg.Default()
	cfg.RESTBindAddress = "127.0.0.1:0"
	cfg.HealthBindAddress = "127.0.0.1:0"
	cfg.LogLevel = "error"

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := Run(ctx, Options{DataDir: t.TempDir(), Config: cfg}); err != nil {
		t.Fatalf("run: %v", err)
	}
}
