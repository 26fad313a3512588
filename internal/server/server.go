// Package server serves the ghostconfig HTTP/JSON API over the user's Ghostty
// config file.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"ghostconfig/internal/i18n"
	"ghostconfig/internal/logging"
	"ghostconfig/internal/model"

	"github.com/CAFxX/httpcompression"
)

// Schema provides the documented option defaults and the installed fonts.
type Schema interface {
	Options(ctx context.Context) ([]model.Option, error)
	Fonts(ctx context.Context) ([]string, error)
}

// ConfigFile is the persisted key/value config (see store.GhosttyConfig).
type ConfigFile interface {
	Get(key string) string
	Values() map[string]string
	Set(key, value string) error
}

type Config struct {
	Schema Schema
	Config ConfigFile
	// Lang is the fallback UI language when a request has no Accept-Language.
	Lang string
	Log  logging.Logger

	// ShutdownTimeout bounds graceful shutdown. Zero means 5s.
	ShutdownTimeout time.Duration
}

type Server struct {
	cfg     Config
	options []model.Option

	exitOnce sync.Once
	exitCh   chan struct{}
}

// New loads the option schema once; later requests reuse it.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.Schema == nil {
		return nil, errors.New("server: schema is nil")
	}
	if cfg.Config == nil {
		return nil, errors.New("server: config file is nil")
	}
	if cfg.Log == nil {
		cfg.Log = logging.Discard()
	}
	cfg.Lang = strings.TrimSpace(cfg.Lang)
	if cfg.Lang == "" {
		cfg.Lang = i18n.LangEN
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	opts, err := cfg.Schema.Options(ctx)
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, errors.New(i18n.T(cfg.Lang, "error.no_options"))
	}
	return &Server{cfg: cfg, options: opts, exitCh: make(chan struct{})}, nil
}

// ExitRequested is closed once a client has called POST /api/exit.
func (s *Server) ExitRequested() <-chan struct{} { return s.exitCh }

func (s *Server) requestExit() {
	s.exitOnce.Do(func() { close(s.exitCh) })
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/options", s.handleOptions)
	mux.HandleFunc("GET /api/colors", s.handleColors)
	mux.HandleFunc("GET /api/fonts", s.handleFonts)
	mux.HandleFunc("GET /api/i18n", s.handleI18n)
	mux.HandleFunc("GET /api/config", s.handleConfigGet)
	mux.HandleFunc("PUT /api/config", s.handleConfigPut)
	mux.HandleFunc("POST /api/exit", s.handleExit)

	var h http.Handler = mux
	if compress, err := httpcompression.DefaultAdapter(); err == nil {
		h = compress(h)
	} else {
		s.cfg.Log.Warn(context.Background(), "compression disabled", "err", err)
	}
	return s.withRequestLog(h)
}

// Serve runs the API on ln until ctx is cancelled or a client requests exit,
// then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- hs.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.cfg.Log.Info(ctx, i18n.T(s.cfg.Lang, "server.shutting_down"))
	case <-s.exitCh:
		s.cfg.Log.Info(ctx, i18n.T(s.cfg.Lang, "server.exit_requested"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
