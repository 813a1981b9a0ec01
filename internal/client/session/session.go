// Package session holds the client-side authenticated identity. The
// identity is trusted entirely on the client: it is persisted as a plain
// JSON file, rehydrated on startup, and never re-verified against the
// server after the initial login. That mirrors the system this client
// reproduces and is a documented weakness, not something to silently fix.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pulsedash/pulsedash/internal/client/api"
	"github.com/pulsedash/pulsedash/internal/filex"
)

// stateFile is the fixed name of the persisted session value inside the
// client state directory.
const stateFile = "user.json"

// Holder is an explicit session store: one instance is created at process
// start and passed to whoever needs the current identity. There is no
// package-level state.
type Holder struct {
	path    string
	current *api.User
}

// NewHolder returns a Holder persisting under stateDir. Call Load to
// rehydrate any previously persisted session.
func NewHolder(stateDir string) *Holder {
	return &Holder{path: filepath.Join(stateDir, stateFile)}
}

// Load rehydrates the session from the persisted value. A missing file
// leaves the state nil; a malformed one is discarded and also leaves the
// state nil.
func (h *Holder) Load() error {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			h.current = nil
			return nil
		}
		return fmt.Errorf("reading session: %w", err)
	}

	var u api.User
	if err := json.Unmarshal(data, &u); err != nil {
		h.current = nil
		_ = os.Remove(h.path)
		return nil
	}

	h.current = &u
	return nil
}

// Login sets the current identity and persists it.
func (h *Holder) Login(u *api.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("serializing session: %w", err)
	}

	if err := filex.EnsureParentDir(h.path); err != nil {
		return err
	}
	if err := os.WriteFile(h.path, data, 0o660); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	h.current = u
	return nil
}

// Logout clears the current identity and removes the persisted value.
func (h *Holder) Logout() error {
	h.current = nil

	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}

// Current returns the authenticated identity, or nil when logged out.
func (h *Holder) Current() *api.User {
	return h.current
}

// IsLoggedIn reports whether an identity is held.
func (h *Holder) IsLoggedIn() bool {
	return h.current != nil
}
