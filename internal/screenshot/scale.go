// Package screenshot post-processes captured images: downscaling for token
// efficiency and re-encoding to the requested format.
package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// Options controls scaling and encoding of a captured image.
type Options struct {
	Format  string  // "png" or "jpg"/"jpeg"; default png
	Quality int     // JPEG quality 1-100; default 80
	Scale   float64 // 0.1-1.0; default 0.5
}

// Process decodes data, scales it by opts.Scale, and re-encodes it.
// Captures are full-resolution (Retina displays are 2x), so the default
// half scale roughly matches logical screen points.
func Process(data []byte, opts Options) ([]byte, error) {
	scale := opts.Scale
	if scale <= 0 || scale > 1.0 {
		scale = 0.5
	}
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = 80
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode captured image: %w", err)
	}

	img := Resize(src, scale)

	var buf bytes.Buffer
	switch opts.Format {
	case "jpg", "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	case "", "png":
		err = png.Encode(&buf, img)
	default:
		return nil, fmt.Errorf("unsupported image format: %q (use png or jpg)", opts.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode screenshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Resize scales src by factor using bilinear interpolation. A factor of 1
// returns src unchanged.
func Resize(src image.Image, factor float64) image.Image {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
