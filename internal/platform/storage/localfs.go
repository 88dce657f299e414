package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	portsrepo "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// LocalFileMover stores uploaded files on the local filesystem under a root
// directory, generating a unique name per file. Returned paths are relative
// to the root.
type LocalFileMover struct {
	root string
}

// NewLocalFileMover creates a mover rooted at dir, creating it if needed.
func NewLocalFileMover(dir string) (*LocalFileMover, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalFileMover{root: dir}, nil
}

var _ portsrepo.FileMover = (*LocalFileMover)(nil)

// Save writes content under a freshly generated filename that keeps the
// original extension, and returns the relative path.
func (m *LocalFileMover) Save(ctx context.Context, content io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)

	dst, err := os.Create(filepath.Join(m.root, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return name, nil
}
