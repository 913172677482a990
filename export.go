package appicon

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// DefaultPath returns the destination the icon is written to when no output
// path is given: AppIcon_Fixed.png on the user's desktop.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "Desktop", "AppIcon_Fixed.png"), nil
}

// WritePNG encodes img as PNG to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Scale resamples img to a size x size square using Catmull-Rom
// interpolation. Scaling down from the full-resolution artwork keeps the
// thin box outlines readable at small sizes.
func Scale(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
