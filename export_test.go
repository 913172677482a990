package appicon

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// solidImage returns a size x size image filled with c.
func solidImage(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	if err := WritePNG(path, renderedIcon()); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("PNG decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Size || b.Dy() != Size {
		t.Errorf("decoded size = %dx%d, want %dx%d", b.Dx(), b.Dy(), Size, Size)
	}
}

func TestWritePNGMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "icon.png")
	if err := WritePNG(path, solidImage(8, color.RGBA{A: 255})); err == nil {
		t.Error("expected error writing to a missing directory")
	}
}

func TestScale(t *testing.T) {
	src := solidImage(64, color.RGBA{R: 200, G: 50, B: 50, A: 255})
	dst := Scale(src, 16)

	if b := dst.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("scaled size = %dx%d, want 16x16", b.Dx(), b.Dy())
	}

	// Resampling a solid image keeps the color.
	c := dst.RGBAAt(8, 8)
	if !near(c, 200, 50, 50, 4) {
		t.Errorf("scaled pixel = %+v, want ~{200 50 50}", c)
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("path %q is not absolute", path)
	}
	want := filepath.Join("Desktop", "AppIcon_Fixed.png")
	if !strings.HasSuffix(path, want) {
		t.Errorf("path = %q, want suffix %q", path, want)
	}
}
