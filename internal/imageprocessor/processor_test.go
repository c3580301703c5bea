package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimize_KeepsSmallImage(t *testing.T) {
	p := NewProcessor(85, 100, 100)
	data := encodePNG(t, 40, 30)

	out, err := p.Optimize(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestOptimize_DownscalesLargeImage(t *testing.T) {
	p := NewProcessor(85, 100, 50)
	data := encodePNG(t, 400, 100)

	out, err := p.Optimize(data)
	require.NoError(t, err)

	w, h, err := GetImageDimensions(out)
	require.NoError(t, err)
	assert.Equal(t, 100, w)
	assert.Equal(t, 25, h)
}

func TestOptimize_NonImagePassthrough(t *testing.T) {
	p := NewProcessor(85, 10, 10)
	data := []byte("%PDF-1.4 not an image")

	out, err := p.Optimize(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
