// Package server serves posts over HTTP for local preview: a post list, each post page
// rendered on request, a wrapper page embedding it, and the post's public assets.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/postpub/internal/engine/pagecontext"
	"go.trai.ch/zerr"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Config holds the collaborators of a Server.
type Config struct {
	Renderer *pagecontext.Renderer
	Loader   ports.ConfigLoader
	Engine   ports.TemplateEngine
	Global   *domain.GlobalConfig
	Tracer   ports.Tracer
	Logger   ports.Logger
	// Target gates publish-only keys on every post page.
	Target domain.DeploymentTarget
	// Root is the project root static files are served from. Empty means the working
	// directory.
	Root string
}

// Server is the preview HTTP handler.
type Server struct {
	cfg     Config
	router  chi.Router
	handler http.Handler
}

// New creates a Server with every route configured.
func New(cfg Config) *Server {
	if cfg.Global == nil {
		cfg.Global = &domain.GlobalConfig{PostPath: domain.DefaultPostsDir}
	}
	s := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.trace)

	r.Get("/", s.handlePostList)
	r.Get("/posts/{slug}", s.handleSlashRedirect)
	r.Get("/posts/{slug}/", s.handlePost)
	r.Get("/posts/{slug}/preview", s.handlePreview)
	r.Get("/posts/{slug}/*", s.handleStatic)

	s.router = r
	s.handler = gzhttp.GzipHandler(r)
	return s
}

// ServeHTTP implements http.Handler with gzip applied to compressible responses.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "preview server failed"), "addr", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, "preview server shutdown failed")
	}
	return nil
}

// trace wraps each request in a span and logs it at debug level.
func (s *Server) trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, span := s.cfg.Tracer.Start(r.Context(), "preview.request")
		defer span.End()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		span.SetAttribute("method", r.Method)
		span.SetAttribute("path", r.URL.Path)
		span.SetAttribute("status", status)
		s.cfg.Logger.Debug(r.Method + " " + r.URL.Path + " " + strconv.Itoa(status) +
			" (" + time.Since(start).Round(time.Microsecond).String() + ")")
	})
}
