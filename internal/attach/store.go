package attach

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists attachment bytes in the uploads directory. Each save goes
// through a temp file and a rename, so a row in the workbook never ends up
// referencing a half-written attachment.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("attach: create uploads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data under safeName and returns the full path.
func (s *Store) Save(safeName string, data []byte) (string, error) {
	// Names come from Name and contain no separators; Base is a backstop.
	dst := filepath.Join(s.dir, filepath.Base(safeName))

	tmp := filepath.Join(s.dir, ".upload-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("attach: write %s: %w", safeName, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("attach: store %s: %w", safeName, err)
	}
	return dst, nil
}
