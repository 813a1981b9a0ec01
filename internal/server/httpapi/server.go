// Package httpapi exposes the auth service and the dashboard payload over
// a small JSON HTTP API:
//
//	GET  /           liveness text
//	POST /signup     register a new user
//	POST /login      authenticate
//	GET  /dashboard  static analytics payload
//
// Note: /dashboard is not guarded by any authentication. That matches the
// system this API reproduces and is a documented gap, not an oversight.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pulsedash/pulsedash/internal/logging"
	"github.com/pulsedash/pulsedash/internal/server/dashboard"
	"github.com/pulsedash/pulsedash/internal/server/users"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	dashboard *dashboard.Provider
}

func NewServer(a string, l logging.Logger, us *users.Service, dp *dashboard.Provider) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		dashboard: dp,
	}
}

// Handler builds the route table wrapped with the CORS and request-logging
// middleware. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /dashboard", s.handleDashboard)

	return s.withRequestLog(withCORS(mux))
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
