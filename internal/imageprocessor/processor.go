package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// Processor уменьшает слишком большие фотографии до заданных границ
type Processor struct {
	quality   int // JPEG quality (1-100)
	maxWidth  int
	maxHeight int
}

// NewProcessor creates a new image processor
func NewProcessor(quality, maxWidth, maxHeight int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85 // Default quality
	}
	if maxWidth <= 0 {
		maxWidth = 1920
	}
	if maxHeight <= 0 {
		maxHeight = 1080
	}
	return &Processor{
		quality:   quality,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
	}
}

// Optimize возвращает уменьшенную копию JPEG/PNG, если изображение больше границ.
// Изображения в пределах границ и прочие форматы возвращаются без изменений.
func (p *Processor) Optimize(data []byte) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || (format != "jpeg" && format != "png") {
		return data, nil
	}
	if cfg.Width <= p.maxWidth && cfg.Height <= p.maxHeight {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.resize(img, p.maxWidth, p.maxHeight)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	}

	return buf.Bytes(), nil
}

// resize resizes an image maintaining aspect ratio
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// GetImageDimensions returns the dimensions of an encoded image
func GetImageDimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
