package screenshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testImage(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func TestProcess_DefaultHalvesDimensions(t *testing.T) {
	out, err := Process(testImage(200, 100), Options{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("dimensions = %dx%d, want 100x50", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestProcess_JPEG(t *testing.T) {
	out, err := Process(testImage(64, 64), Options{Format: "jpg", Quality: 60, Scale: 1.0})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("dimensions = %dx%d, want 64x64 at scale 1.0", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestProcess_Errors(t *testing.T) {
	if _, err := Process([]byte("not an image"), Options{}); err == nil {
		t.Error("expected decode error for garbage input")
	}
	if _, err := Process(testImage(8, 8), Options{Format: "bmp"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestResize_MinimumOnePixel(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	dst := Resize(src, 0.1)
	if dst.Bounds().Dx() < 1 || dst.Bounds().Dy() < 1 {
		t.Errorf("dimensions = %dx%d, want at least 1x1", dst.Bounds().Dx(), dst.Bounds().Dy())
	}
}

func TestResize_IdentityPassthrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	if Resize(src, 1) != src {
		t.Error("scale 1 should return the source image unchanged")
	}
}
