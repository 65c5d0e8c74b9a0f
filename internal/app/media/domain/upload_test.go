package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckImage(t *testing.T) {
	assert.NoError(t, CheckImage("image/png"))
	assert.NoError(t, CheckImage("Image/JPEG"))
	assert.ErrorIs(t, CheckImage("application/pdf"), ErrNotImage)
	assert.ErrorIs(t, CheckImage(""), ErrNotImage)
}

func TestStoredName(t *testing.T) {
	assert.Equal(t, "abc.png", StoredName("abc", "photo.PNG"))
	assert.Equal(t, "abc.jpg", StoredName("abc", "photo"))
	assert.Equal(t, "abc.webp", StoredName("abc", "dir/x.y.webp"))
}
