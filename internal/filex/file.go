// Package filex provides small filesystem helpers shared by the server and
// client state layers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and any missing parents) if it does not exist and
// returns the path unchanged. Existing directories are left as they are.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// EnsureParentDir creates the directory containing path, so that a
// subsequent write of path itself cannot fail on a missing parent.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	_, err := EnsureDir(dir)
	return err
}
