package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storeadmin-service/internal/app/media/domain"
)

// ImageStore persists an uploaded image and returns its public URL.
type ImageStore interface {
	Save(ctx context.Context, originalName, contentType string, body io.Reader) (string, error)
}

// UploadHandler serves POST /api/upload.
type UploadHandler struct {
	store  ImageStore
	logger *slog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store ImageStore, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{store: store, logger: logger}
}

// Upload reads the multipart "file" field.
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, h.logger, domain.ErrNoFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer file.Close()

	url, err := h.store.Save(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
