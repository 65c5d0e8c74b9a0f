package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storeadmin-service/internal/app/media/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/logging"
)

func TestLocal_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := NewLocal(dir, logging.Discard())

	url, err := store.Save(context.Background(), "shot.png", "image/png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	content, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(content))
}

func TestLocal_DefaultExtension(t *testing.T) {
	store := NewLocal(t.TempDir(), logging.Discard())

	url, err := store.Save(context.Background(), "blob", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestLocal_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, logging.Discard())

	_, err := store.Save(context.Background(), "doc.pdf", "application/pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrNotImage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocal_NoBody(t *testing.T) {
	_, err := NewLocal(t.TempDir(), logging.Discard()).Save(context.Background(), "a.png", "image/png", nil)
	assert.ErrorIs(t, err, domain.ErrNoFile)
}
