package debug

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

// twoRows is a 2x2 image: bottom row red, top row blue, in OpenGL order.
var twoRows = []byte{
	255, 0, 0, 0, 255, 0, 0, 0,
	0, 0, 255, 7, 0, 0, 255, 7,
}

func TestImageFromPixelsFlips(t *testing.T) {
	img, err := ImageFromPixels(twoRows, 2, 2)
	if err != nil {
		t.Fatalf("ImageFromPixels: %v", err)
	}

	top := img.RGBAAt(0, 0)
	if top.B != 255 || top.R != 0 {
		t.Errorf("top-left = %v, want blue", top)
	}
	bottom := img.RGBAAt(1, 1)
	if bottom.R != 255 || bottom.B != 0 {
		t.Errorf("bottom-right = %v, want red", bottom)
	}
	if top.A != 255 || bottom.A != 255 {
		t.Errorf("alpha not opaque: %d %d", top.A, bottom.A)
	}
}

func TestImageFromPixelsErrors(t *testing.T) {
	tests := []struct {
		name   string
		pixels []byte
		w, h   int
	}{
		{"short data", twoRows[:12], 2, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImageFromPixels(tt.pixels, tt.w, tt.h); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := NewScreenshotCapture("", "shot", "gif"); err == nil {
		t.Error("expected error for gif, got nil")
	}
}

func TestGenerateFilename(t *testing.T) {
	sc, err := NewScreenshotCapture("shots", "notreal", FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	sc.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 250e6, time.UTC) }

	want := filepath.Join("shots", "notreal_2024-03-09_14-05-07.250.png")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %q, want %q", got, want)
	}
}

func TestCaptureFromPixels(t *testing.T) {
	tests := []struct {
		format string
		decode func(f *os.File) (image.Image, error)
	}{
		{FormatPNG, func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{FormatBMP, func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested")
			sc, err := NewScreenshotCapture(dir, "shot", tt.format)
			if err != nil {
				t.Fatal(err)
			}

			path, err := sc.CaptureFromPixels(twoRows, 2, 2)
			if err != nil {
				t.Fatalf("CaptureFromPixels: %v", err)
			}
			if !strings.HasSuffix(path, "."+tt.format) {
				t.Errorf("path %q lacks .%s extension", path, tt.format)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()

			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
				t.Errorf("bounds = %v, want 2x2", b)
			}
			r, _, bl, _ := img.At(0, 0).RGBA()
			if r != 0 || bl != 0xffff {
				t.Errorf("top-left = %v, want blue", img.At(0, 0))
			}
		})
	}
}

func TestCaptureEncodeErrorRemovesFile(t *testing.T) {
	dir := t.TempDir()
	sc, err := NewScreenshotCapture(dir, "shot", FormatPNG)
	if err != nil {
		t.Fatal(err)
	}

	// PNG cannot encode an empty image
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := sc.CaptureFromImage(empty); err == nil {
		t.Fatal("expected encode error, got nil")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed capture left %d file(s) behind, first %q", len(entries), entries[0].Name())
	}
}
