// Package server provides HTTP API for reading and switching the system appearance.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/appearance/app/enum"
	"github.com/umputun/appearance/app/store"
)

//go:generate moq -out mocks/switcher.go -pkg mocks -skip-ensure -fmt goimports . Switcher
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History

// Server represents the HTTP server.
type Server struct {
	switcher Switcher
	history  History
	cfg      Config
	auth     *Auth
}

// Switcher defines the interface for appearance operations.
// Defined here (consumer side) to allow different implementations.
type Switcher interface {
	Current() (enum.Mode, error)
	Set(ctx context.Context, mode enum.Mode, method enum.Method) error
	Toggle(ctx context.Context, method enum.Method) (enum.Mode, error)
}

// History defines the interface for the transition journal.
type History interface {
	List(ctx context.Context, limit int) ([]store.Transition, error)
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	Method          enum.Method // used when request doesn't set ?method=
	TokenHash       string      // bcrypt hash of the API token (empty = auth disabled)
	PublicRead      bool        // allow GET requests without token

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance.
func New(sw Switcher, cfg Config) *Server {
	return &Server{switcher: sw, cfg: cfg, auth: NewAuth(cfg.TokenHash, cfg.PublicRead)}
}

// SetHistory enables the history endpoint.
func (s *Server) SetHistory(h History) {
	s.history = h
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.routes(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP,
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("appearance", "umputun", s.cfg.Version),
		rest.Ping,
	)

	tokenAuth := NoopAuth
	if s.auth.Enabled() {
		tokenAuth = s.auth.TokenAuth
	}

	router.Group().Route(func(api *routegroup.Bundle) {
		api.Use(tokenAuth)
		api.HandleFunc("GET /mode", s.handleCurrent)
		api.HandleFunc("PUT /mode/{mode}", s.handleSet)
		api.HandleFunc("POST /toggle", s.handleToggle)
		api.HandleFunc("GET /history", s.handleHistory)
	})

	return router
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024
}

// requestsPerSec returns the configured requests per second limit, or default 100 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 100
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 5 * time.Second
}
