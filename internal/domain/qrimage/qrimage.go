package qrimage

import (
	"context"
	"errors"
)

var (
	ErrRenderFailed = errors.New("qr render failed")
	ErrUploadFailed = errors.New("qr image upload failed")
)

// Renderer rasterizes a finished payload string into a scannable PNG.
type Renderer interface {
	Render(payload string) ([]byte, error)
}

// Uploader stores a rendered image and returns a durable URL for it.
type Uploader interface {
	Upload(ctx context.Context, png []byte) (string, error)
}
