package qrrenderer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AllxdDev-Hosting/Rest-Api/internal/infrastructure/qrrenderer"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func TestRenderer_Render(t *testing.T) {
	r := qrrenderer.NewRenderer(256)

	png, err := r.Render("00020101021253033605802ID6304ABCD")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
