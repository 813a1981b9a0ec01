// Package dashboard serves the static mock analytics payload. The payload
// file is arbitrary JSON (user stats, revenue trends, top products, recent
// orders) and is returned verbatim, without computation or mutation.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pulsedash/pulsedash/internal/common"
)

// Provider reads the analytics payload file on every request, so edits to
// the file show up without a restart.
type Provider struct {
	path string
}

// NewProvider returns a Provider backed by the JSON file at path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Load reads and returns the payload. The content is validated to be JSON
// but otherwise passed through untouched. Read or parse failures yield
// common.ErrStorage.
func (p *Provider) Load(ctx context.Context) (json.RawMessage, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrStorage, p.path, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", common.ErrStorage, p.path)
	}

	return json.RawMessage(data), nil
}
