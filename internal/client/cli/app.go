// Package cli implements the interactive PulseDash client: a small REPL
// over the HTTP API with a locally persisted session, standing in for the
// original browser dashboard.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"os"

	"github.com/pulsedash/pulsedash/internal/client/api"
	"github.com/pulsedash/pulsedash/internal/client/config"
	"github.com/pulsedash/pulsedash/internal/client/session"
)

// apiClient is the surface of api.Client the commands need. Kept as an
// interface so tests can substitute a fake.
type apiClient interface {
	SignUp(ctx context.Context, name, email, password string) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.User, error)
	Dashboard(ctx context.Context) (json.RawMessage, error)
	Ping(ctx context.Context) error
}

type App struct {
	config  *config.Config
	client  apiClient
	session *session.Holder
	reader  *bufio.Reader
}

// NewApp wires the API client and rehydrates any persisted session from the
// state directory.
func NewApp(c *config.Config) (*App, error) {

	holder := session.NewHolder(c.StateDir)
	if err := holder.Load(); err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		client:  api.New(c.ServerAddr, c.RequestTimeout),
		session: holder,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}
