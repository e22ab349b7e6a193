package serverrun

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	cfgpkg "github.com/yuge42/yt-api-mock/internal/config"
	"github.com/yuge42/yt-api-mock/internal/runtime"
	httpserver "github.com/yuge42/yt-api-mock/internal/server/http"
	pebblestore "github.com/yuge42/yt-api-mock/internal/storage/pebble"
	"github.com/yuge42/yt-api-mock/internal/telemetry"
	logpkg "github.com/yuge42/yt-api-mock/pkg/log"
)

type Options struct {
	// DataDir overrides Config.DataDir when set. Empty with an empty
	// Config.DataDir keeps everything in memory.
	DataDir string
	Fsync   pebblestore.FsyncMode
	Config  cfgpkg.Config
}

// Run starts the API and health servers and blocks until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// Layer a local signal context over the provided one so a plain
	// context.Background() caller still shuts down on SIGINT/SIGTERM.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := opts.Config
	lvl := logpkg.InfoLevel
	if l, err := logpkg.ParseLevel(cfg.LogLevel); err == nil {
		lvl = l
	}
	procLogger := logpkg.NewLogger(logpkg.WithLevel(lvl), logpkg.WithFormat(cfg.LogFormat))
	logpkg.RedirectStdLog(procLogger)

	rt, err := runtime.Open(runtime.Options{DataDir: opts.DataDir, Fsync: opts.Fsync, Config: cfg})
	if err != nil {
		return err
	}
	defer rt.Close()

	if cfg.SeedFixtures {
		if err := rt.Seed(sctx); err != nil {
			return err
		}
	}

	telemetry.Init()

	procLogger.Info("Starting YouTube API mock server",
		logpkg.Str("rest", cfg.RESTBindAddress),
		logpkg.Str("health", cfg.HealthBindAddress),
		logpkg.Bool("tls", cfg.TLSEnabled()),
		logpkg.Bool("require_auth", cfg.RequireAuth),
		logpkg.Dur("stream_timeout", cfg.StreamTimeout),
		logpkg.Str("level", lvl.String()),
		logpkg.Str("format", cfg.LogFormat),
	)

	apiSrv := httpserver.New(rt, procLogger)
	healthSrv := httpserver.NewHealthServer(rt)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := apiSrv.ListenAndServe(sctx, cfg.RESTBindAddress); err != nil && sctx.Err() == nil {
			procLogger.Error("api server error", logpkg.Err(err))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := healthSrv.ListenAndServe(sctx, cfg.HealthBindAddress); err != nil && sctx.Err() == nil {
			procLogger.Error("health server error", logpkg.Err(err))
		}
	}()

	<-sctx.Done()
	// Shut the servers down before closing the runtime/DB to avoid races.
	apiSrv.Close()
	healthSrv.Close()
	wg.Wait()
	return nil
}
