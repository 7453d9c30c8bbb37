package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bagdasarian/team-voting/internal/repository/document"
)

var _ document.Backend = (*Backend)(nil)

// Backend хранит каждый документ в отдельном JSON-файле каталога dir.
// Запись перезаписывает файл целиком, без переименования.
type Backend struct {
	dir string
}

func NewBackend(dir string) (*Backend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Backend{dir: dir}, nil
}

func (b *Backend) Path(kind document.Kind) string {
	return filepath.Join(b.dir, string(kind)+".json")
}

func (b *Backend) Read(ctx context.Context, kind document.Kind) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.Path(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, document.ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

func (b *Backend) Write(ctx context.Context, kind document.Kind, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(b.Path(kind), data, 0o644)
}
