package domain

import (
	"path/filepath"
	"strings"
)

// DefaultExtension is used when the uploaded file name has none.
const DefaultExtension = ".jpg"

// URLPrefix is where stored uploads are served from.
const URLPrefix = "/uploads/"

// CheckImage rejects content types outside image/*.
func CheckImage(contentType string) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return ErrNotImage
	}
	return nil
}

// StoredName builds the on-disk name for an upload from a fresh id and the
// client's original file name.
func StoredName(id, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" || ext == "." {
		ext = DefaultExtension
	}
	return id + ext
}
