package users

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pulsedash/pulsedash/internal/common"
	"github.com/pulsedash/pulsedash/internal/filex"
)

// FileRepository keeps the whole user collection in a single JSON file.
// Every read deserializes the full file; every write truncates and rewrites
// it in place. The write is not atomic and the surrounding
// read-check-append sequence is not serialized, so a crash mid-write can
// corrupt the file and concurrent signups can race. Both are known
// limitations of the flat-file design.
type FileRepository struct {
	path string
}

// NewFileRepository returns a repository backed by the JSON file at path.
// The file is created lazily on first access.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// GetAll loads every stored user. If the store file does not exist yet it
// is initialized as an empty collection and persisted before reading.
// A file that cannot be read or parsed yields common.ErrStorage.
func (r *FileRepository) GetAll(ctx context.Context) ([]User, error) {
	if err := r.ensureExists(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrStorage, r.path, err)
	}

	var all []User
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", common.ErrStorage, r.path, err)
	}

	return all, nil
}

// SaveAll serializes the full collection and overwrites the store file.
func (r *FileRepository) SaveAll(ctx context.Context, all []User) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializing users: %v", common.ErrStorage, err)
	}

	if err := os.WriteFile(r.path, data, 0o660); err != nil {
		return fmt.Errorf("%w: writing %s: %v", common.ErrStorage, r.path, err)
	}

	return nil
}

func (r *FileRepository) ensureExists() error {
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", common.ErrStorage, r.path, err)
	}

	if err := filex.EnsureParentDir(r.path); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	if err := os.WriteFile(r.path, []byte("[]"), 0o660); err != nil {
		return fmt.Errorf("%w: initializing %s: %v", common.ErrStorage, r.path, err)
	}
	return nil
}
