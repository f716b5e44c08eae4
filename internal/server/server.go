// Package server exposes validation, the gallery, saved pairings and exports over HTTP.
package server

import (
	"context"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/ppiankov/notmytype/internal/gallery"
	"github.com/ppiankov/notmytype/internal/llm"
	"github.com/ppiankov/notmytype/internal/logging"
	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/store"
	"github.com/ppiankov/notmytype/internal/validate"
)

// FontSource looks up catalog fonts
type FontSource interface {
	Search(ctx context.Context, query string) []model.CatalogFont
}

// Deps are the collaborators the handlers call into
type Deps struct {
	Gallery *gallery.Gallery
	Store   *store.Store
	Fonts   FontSource  // optional, /fonts answers [] without it
	Critic  *llm.Critic // optional
	Logger  logging.Logger
}

// Server is the JSON API
type Server struct {
	cfg       model.ServerConfig
	validator *validate.Validator
	gallery   *gallery.Gallery
	store     *store.Store
	fonts     FontSource
	critic    *llm.Critic
	logger    logging.Logger
}

// New creates a server
func New(cfg model.ServerConfig, deps Deps) *Server {
	s := &Server{
		cfg:       cfg,
		validator: validate.NewValidator(),
		gallery:   deps.Gallery,
		store:     deps.Store,
		fonts:     deps.Fonts,
		critic:    deps.Critic,
		logger:    deps.Logger,
	}
	if s.gallery == nil {
		s.gallery = gallery.Curated()
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}
	return s
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &fasthttp.Server{
		Handler:               s.Handler,
		Name:                  "notmytype",
		ReadTimeout:           s.cfg.ReadTimeout,
		WriteTimeout:          s.cfg.WriteTimeout,
		MaxRequestBodySize:    s.cfg.MaxRequestSize,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// cancelled on return so the shutdown goroutine never outlives a failed listen
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			s.logger.Error("Error during server shutdown", "error", err)
		}
	}()

	s.logger.Info("Server listening", "address", s.cfg.Addr)
	if err := srv.ListenAndServe(s.cfg.Addr); err != nil {
		cancel()
		<-stopped
		return err
	}

	<-stopped
	s.logger.Info("Server stopped")
	return nil
}

// Handler routes a request and logs it
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")

	path := string(ctx.Path())
	switch {
	case path == "/health":
		s.handleHealth(ctx)
	case path == "/validate":
		s.handleValidate(ctx)
	case path == "/pairings":
		s.handlePairings(ctx)
	case strings.HasPrefix(path, "/pairings/"):
		s.handlePairing(ctx, strings.TrimPrefix(path, "/pairings/"))
	case path == "/tags":
		s.handleTags(ctx)
	case path == "/saved":
		s.handleSaved(ctx)
	case strings.HasPrefix(path, "/saved/"):
		s.handleSavedItem(ctx, strings.TrimPrefix(path, "/saved/"))
	case strings.HasPrefix(path, "/export/"):
		s.handleExport(ctx, strings.TrimPrefix(path, "/export/"))
	case path == "/share":
		s.handleShare(ctx)
	case path == "/fonts":
		s.handleFonts(ctx)
	case path == "/categories":
		s.handleCategories(ctx)
	default:
		writeJSONError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", path,
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(start),
	)
}
