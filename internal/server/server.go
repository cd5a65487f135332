// Package server runs the local preview server over a built site.
//
// The output tree is served under the configured base path so that rebased
// links behave exactly as they will in deployment. A file watcher rebuilds
// the site when content, static files, or assets change.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

// Sentinel errors for the preview server.
var ErrMissingOutputDir = errors.New("preview requires a built output directory")

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 3 * time.Second
)

// Options configures a preview Server.
type Options struct {
	Addr      string // listen address, e.g. "127.0.0.1:8080"
	OutputDir string // built site to serve
	BasePath  string // normalized base path ("" or "/" = root)
	Logger    *slog.Logger
}

// Server serves a built site and optionally rebuilds it on change.
type Server struct {
	opts Options
	log  *slog.Logger
	http *http.Server
}

// New creates a preview Server. The base path must already be normalized by
// the link rebaser; the server only mounts, it doesn't re-normalize.
func New(opts Options) (*Server, error) {
	if opts.OutputDir == "" {
		return nil, ErrMissingOutputDir
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Server{opts: opts, log: log}
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s, nil
}

// handler mounts the file server under the base path. Requests to "/" are
// redirected into the base path so a preview of a subpath deployment behaves
// like the real thing.
func (s *Server) handler() http.Handler {
	files := http.FileServer(http.Dir(s.opts.OutputDir))

	mux := http.NewServeMux()
	base := s.opts.BasePath
	if base == "" || base == "/" {
		mux.Handle("/", files)
	} else {
		mux.Handle(base+"/", http.StripPrefix(base, files))
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/" {
				http.Redirect(w, r, base+"/", http.StatusFound)
				return
			}
			http.NotFound(w, r)
		})
	}

	return s.logRequests(mux)
}

// logRequests is the request logging middleware.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// URL returns the address the preview is reachable at, including base path.
func (s *Server) URL() string {
	addr := s.opts.Addr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	base := s.opts.BasePath
	if base == "/" {
		base = ""
	}
	return "http://" + addr + base + "/"
}

// ListenAndServe blocks until the context is canceled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.http.Addr, err)
	}

	s.log.Info("preview server started", "url", s.URL(), "dir", s.opts.OutputDir)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
