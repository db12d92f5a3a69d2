package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store persists uploaded images and hands back the reference path
// that gets stored on entities. The backend is pluggable; only the
// path travels through the rest of the system.
type Store interface {
	Save(ctx context.Context, prefix, filename string, r io.Reader) (string, error)
}

// FileStore writes blobs under a root directory, keyed by a generated
// path of the form <prefix>/<year>/<month>/<uuid><ext>.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Save(ctx context.Context, prefix, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	now := time.Now()
	key := path.Join(prefix, fmt.Sprintf("%04d/%02d", now.Year(), now.Month()), uuid.NewString()+ext)

	full := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return key, nil
}
