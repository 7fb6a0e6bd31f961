package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/florist-store/florist-api/pkg/logger"
)

// MaxImageSize is the largest product image accepted by /api/uploads.
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageStore persists uploaded product images.
type ImageStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	GetPresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// RegisterUploadRoutes mounts POST /api/uploads. The response url can be
// used as a product's image_url.
func RegisterUploadRoutes(r gin.IRouter, store ImageStore, urlTTL time.Duration) {
	r.POST("/api/uploads", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"file\" is required"})
			return
		}
		if fh.Size > MaxImageSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 5 MiB"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(data) > MaxImageSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 5 MiB"})
			return
		}
		contentType := http.DetectContentType(data)
		ext, ok := imageExtensions[contentType]
		if !ok {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported image type " + contentType})
			return
		}

		key := "products/" + uuid.NewString() + ext
		ctx := c.Request.Context()
		if err := store.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
			logger.Errorf("upload %s: %v", key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": truncate(err.Error(), maxErrorLen)})
			return
		}
		url, err := store.GetPresignedURL(ctx, key, urlTTL)
		if err != nil {
			logger.Errorf("presign %s: %v", key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": truncate(err.Error(), maxErrorLen)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
	})
}
