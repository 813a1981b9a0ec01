package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

// sectionOrder lists the payload sections the original dashboard rendered,
// in their display order. Unknown sections are printed after these.
var sectionOrder = []string{"userStats", "revenue", "topProducts", "recentOrders"}

// Dashboard fetches the analytics payload and renders it section by
// section. The payload is arbitrary JSON, so rendering is a pretty-print,
// not a typed view.
func (a *App) Dashboard(ctx context.Context) error {
	payload, err := a.client.Dashboard(ctx)
	if err != nil {
		return err
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(payload, &sections); err != nil {
		return fmt.Errorf("unexpected dashboard payload: %w", err)
	}

	printed := make(map[string]bool)
	for _, name := range sectionOrder {
		if raw, ok := sections[name]; ok {
			printSection(name, raw)
			printed[name] = true
		}
	}
	for name, raw := range sections {
		if !printed[name] {
			printSection(name, raw)
		}
	}

	return nil
}

func printSection(name string, raw json.RawMessage) {
	fmt.Printf("--- %s ---\n", name)

	var buf []byte
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		buf, _ = json.MarshalIndent(v, "", "  ")
	} else {
		buf = raw
	}
	fmt.Println(string(buf))
}
