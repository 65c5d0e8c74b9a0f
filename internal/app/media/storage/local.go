// Package storage writes uploaded images to a local directory.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/light-bringer/storeadmin-service/internal/app/media/domain"
)

// Local stores uploads under a directory that is served at /uploads/.
type Local struct {
	dir    string
	logger *slog.Logger
}

// NewLocal creates a Local store. The directory is created on first use.
func NewLocal(dir string, logger *slog.Logger) *Local {
	return &Local{dir: dir, logger: logger}
}

// Dir returns the upload directory.
func (l *Local) Dir() string {
	return l.dir
}

// Save validates the content type, writes body under a fresh name and
// returns its public URL.
func (l *Local) Save(ctx context.Context, originalName, contentType string, body io.Reader) (string, error) {
	if body == nil {
		return "", domain.ErrNoFile
	}
	if err := domain.CheckImage(contentType); err != nil {
		return "", err
	}

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := domain.StoredName(uuid.New().String(), originalName)
	path := filepath.Join(l.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload: %w", err)
	}
	written, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	l.logger.InfoContext(ctx, "upload stored", "file", name, "bytes", written)
	return domain.URLPrefix + name, nil
}
