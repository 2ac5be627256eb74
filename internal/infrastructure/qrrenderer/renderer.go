package qrrenderer

import (
	qr "github.com/skip2/go-qrcode"
)

type Renderer struct {
	size int
}

func NewRenderer(size int) *Renderer {
	return &Renderer{size: size}
}

// Render encodes the payload string itself; a QRIS terminal scans the raw
// tag-length-value text, not a wrapper document.
func (r *Renderer) Render(payload string) ([]byte, error) {
	return qr.Encode(payload, qr.Medium, r.size)
}
