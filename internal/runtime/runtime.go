package runtime

import (
	"context"
	"errors"
	"sync"

	"github.com/yuge42/yt-api-mock/internal/chatlog"
	cfgpkg "github.com/yuge42/yt-api-mock/internal/config"
	pebblestore "github.com/yuge42/yt-api-mock/internal/storage/pebble"
	"github.com/yuge42/yt-api-mock/internal/telemetry"
	"github.com/yuge42/yt-api-mock/internal/videostore"
)

// Options for building the Runtime.
type Options struct {
	// DataDir overrides Config.DataDir when set. Empty with an empty
	// Config.DataDir selects in-memory storage.
	DataDir string
	Fsync   pebblestore.FsyncMode
	Config  cfgpkg.Config
}

// Runtime wires storage, config, and stores for a single-node instance.
type Runtime struct {
	db     *pebblestore.DB
	config cfgpkg.Config
	videos *videostore.Store

	mu   sync.Mutex
	logs map[string]*chatlog.Log
}

// Open initializes the underlying storage and returns a Runtime.
func Open(opts Options) (*Runtime, error) {
	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = opts.Config.DataDir
	}
	db, err := pebblestore.Open(pebblestore.Options{
		DataDir:  dataDir,
		InMemory: dataDir == "",
		Fsync:    opts.Fsync,
		Metrics:  telemetry.StorageMetrics{},
	})
	if err != nil {
		return nil, err
	}
	return &Runtime{
		db:     db,
		config: opts.Config,
		videos: videostore.New(db),
		logs:   make(map[string]*chatlog.Log),
	}, nil
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// CheckHealth performs a simple health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.db == nil {
		return errors.New("db not open")
	}
	it, err := r.db.NewIter(nil)
	if err != nil {
		return err
	}
	it.Close()
	return nil
}

// OpenChatLog returns the log for the given chat id, creating it on first
// use. Repeated calls return the same handle.
func (r *Runtime) OpenChatLog(chatID string) (*chatlog.Log, error) {
	if chatID == "" {
		return nil, errors.New("runtime: empty chat id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.logs[chatID]; ok {
		return l, nil
	}
	l, err := chatlog.Open(r.db, chatID)
	if err != nil {
		return nil, err
	}
	r.logs[chatID] = l
	return l, nil
}

// Videos returns the video store.
func (r *Runtime) Videos() *videostore.Store { return r.videos }

// DB exposes the underlying DB for advanced operations (internal use only).
func (r *Runtime) DB() *pebblestore.DB { return r.db }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }
