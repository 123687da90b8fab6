package imagegen

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected data URI prefix: %.40q", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	return img
}

func TestEncodeWebImage_DownscalesWide(t *testing.T) {
	uri, err := EncodeWebImage(makePNG(t, 2048, 1024))
	if err != nil {
		t.Fatalf("EncodeWebImage: %v", err)
	}

	img := decodeDataURI(t, uri)
	if got := img.Bounds().Dx(); got != 1024 {
		t.Errorf("width = %d, want 1024", got)
	}
	if got := img.Bounds().Dy(); got != 512 {
		t.Errorf("height = %d, want 512", got)
	}
}

func TestEncodeWebImage_DownscalesTall(t *testing.T) {
	uri, err := EncodeWebImage(makePNG(t, 512, 2048))
	if err != nil {
		t.Fatalf("EncodeWebImage: %v", err)
	}

	img := decodeDataURI(t, uri)
	if got := img.Bounds().Dx(); got != 256 {
		t.Errorf("width = %d, want 256", got)
	}
	if got := img.Bounds().Dy(); got != 1024 {
		t.Errorf("height = %d, want 1024", got)
	}
}

func TestEncodeWebImage_KeepsSmall(t *testing.T) {
	uri, err := EncodeWebImage(makePNG(t, 800, 600))
	if err != nil {
		t.Fatalf("EncodeWebImage: %v", err)
	}

	img := decodeDataURI(t, uri)
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 600 {
		t.Errorf("bounds = %v, want 800x600 unchanged", img.Bounds())
	}
}

func TestEncodeWebImage_InvalidInput(t *testing.T) {
	if _, err := EncodeWebImage([]byte("not an image")); err == nil {
		t.Error("expected error for invalid image data")
	}
}
