// Package server initializes and runs the PulseDash API server. It wires
// configuration, logging, the credential store, the auth service, and the
// dashboard payload provider, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pulsedash/pulsedash/internal/logging"
	"github.com/pulsedash/pulsedash/internal/server/config"
	"github.com/pulsedash/pulsedash/internal/server/dashboard"
	"github.com/pulsedash/pulsedash/internal/server/httpapi"
	"github.com/pulsedash/pulsedash/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	dashboard   *dashboard.Provider
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	us := users.NewService(users.NewFileRepository(c.UsersFile))
	dp := dashboard.NewProvider(c.DashboardFile)

	return &App{config: c, logger: logger, userService: us, dashboard: dp}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.ListenAddr, app.logger, app.userService, app.dashboard)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
