package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yuge42/yt-api-mock/internal/runtime"
)

// HealthServer serves liveness and Prometheus metrics on a separate
// listener so probes work even when the API server requires TLS or auth.
type HealthServer struct {
	rt  *runtime.Runtime
	srv *http.Server
	lis net.Listener
}

func NewHealthServer(rt *runtime.Runtime) *HealthServer {
	mux := http.NewServeMux()
	h := &HealthServer{rt: rt, srv: &http.Server{Handler: mux}}
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return h
}

func (h *HealthServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.rt.CheckHealth(r.Context()); err != nil {
		http.Error(w, "not serving", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (h *HealthServer) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	h.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- h.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (h *HealthServer) Close() {
	if h.lis != nil {
		_ = h.lis.Close()
	}
}
