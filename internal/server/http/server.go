package httpserver

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yuge42/yt-api-mock/internal/runtime"
	"github.com/yuge42/yt-api-mock/internal/server/http/controllers"
	livechatsvc "github.com/yuge42/yt-api-mock/internal/services/livechat"
	oauthsvc "github.com/yuge42/yt-api-mock/internal/services/oauthmock"
	videosvc "github.com/yuge42/yt-api-mock/internal/services/videos"
	"github.com/yuge42/yt-api-mock/internal/telemetry"
	logpkg "github.com/yuge42/yt-api-mock/pkg/log"
)

type Server struct {
	rt     *runtime.Runtime
	logger logpkg.Logger
	srv    *http.Server
	lis    net.Listener
}

// New wires the services into an HTTP server. The handler chain is
// cors -> access log -> auth -> mux.
func New(rt *runtime.Runtime, logger logpkg.Logger) *Server {
	if logger == nil {
		logger = logpkg.NewNopLogger()
	}
	s := &Server{rt: rt, logger: logger.With(logpkg.Component("http"))}

	chatSvc := livechatsvc.NewWithLogger(rt, logger)
	videoSvc := videosvc.NewWithLogger(rt, logger)
	oauthSvc := oauthsvc.New(rt.Config().OAuthScope, logger)

	mux := http.NewServeMux()
	reg := controllers.NewControllerRegistry(rt, chatSvc, videoSvc, oauthSvc)
	reg.RegisterAllRoutes(mux)

	var handler http.Handler = mux
	handler = s.requireAuth(handler)
	handler = s.accessLog(handler)
	s.srv = &http.Server{Handler: cors(handler)}
	return s
}

// ListenAndServe blocks until ctx is cancelled or the listener fails. TLS is
// enabled when the config carries both a cert and key path.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	cfg := s.rt.Config()
	errCh := make(chan error, 1)
	go func() {
		if cfg.TLSEnabled() {
			errCh <- s.srv.ServeTLS(l, cfg.TLSCertPath, cfg.TLSKeyPath)
			return
		}
		errCh <- s.srv.Serve(l)
	}()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// Handler exposes the full middleware chain for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Goog-Api-Key")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		if telemetry.HTTPRequests != nil {
			telemetry.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		}
		s.logger.Debug("request",
			logpkg.Str("method", r.Method),
			logpkg.Str("path", r.URL.Path),
			logpkg.Int("status", rec.status),
			logpkg.Dur("elapsed", time.Since(start)),
		)
	})
}

// requireAuth guards the youtube/v3 surface when configured. Only presence is
// checked: any x-goog-api-key or authorization header passes. Control and
// token endpoints stay open so tests can mint credentials and seed data.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.rt.Config().RequireAuth && strings.HasPrefix(r.URL.Path, "/youtube/") {
			if r.Header.Get("x-goog-api-key") == "" && r.Header.Get("authorization") == "" {
				controllers.WriteUnauthenticated(w)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
