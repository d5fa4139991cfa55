package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := range 8 {
		for x := range 16 {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 32), B: 90, A: 255})
		}
	}
	return img
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := testImage()

	var buf bytes.Buffer
	if err := EncodePNG(&buf, src); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Fatalf("Bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	for y := range 8 {
		for x := range 16 {
			r1, g1, b1, a1 := src.At(x, y).RGBA()
			r2, g2, b2, a2 := got.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("pixel (%d,%d) differs after round trip", x, y)
			}
		}
	}
}

// sof2 is the start-of-frame marker of a progressive DCT JPEG.
var sof2 = []byte{0xff, 0xc2}

func TestEncodeJPEG_Progressive(t *testing.T) {
	tests := []struct {
		name    string
		quality int
	}{
		{"lowest", 1},
		{"medium", 50},
		{"typical", 92},
		{"highest", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeJPEG(&buf, testImage(), tt.quality); err != nil {
				t.Fatalf("EncodeJPEG() error = %v", err)
			}
			if !bytes.Contains(buf.Bytes(), sof2) {
				t.Error("EncodeJPEG() did not write a progressive (SOF2) frame")
			}
			cfg, err := jpeg.DecodeConfig(&buf)
			if err != nil {
				t.Fatalf("jpeg.DecodeConfig() error = %v", err)
			}
			if cfg.Width != 16 || cfg.Height != 8 {
				t.Errorf("size = %dx%d, want 16x8", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestEncode_NilImage(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("EncodePNG(nil) error = %v, want ErrNilImage", err)
	}
	if err := EncodeJPEG(&buf, nil, 90); !errors.Is(err, ErrNilImage) {
		t.Errorf("EncodeJPEG(nil) error = %v, want ErrNilImage", err)
	}
}

func TestSavePNGAndJPEG(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "out.png")
	jpgPath := filepath.Join(dir, "out.jpg")

	if err := SavePNG(pngPath, testImage()); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := SaveJPEG(jpgPath, testImage(), 92); err != nil {
		t.Fatalf("SaveJPEG() error = %v", err)
	}

	for _, p := range []string{pngPath, jpgPath} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat(%s) error = %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestSavePNG_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := SavePNG(path, testImage()); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}
