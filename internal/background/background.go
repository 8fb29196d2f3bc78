// Package background decodes the photograph that measurements are drawn on.
package background

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when no registered decoder accepts the file
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Load decodes the image at path into RGBA.
// JPEG, PNG, GIF, BMP, TIFF and WebP are supported.
func Load(path string) (*image.RGBA, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("failed to decode image %s: %w", path, ErrUnsupportedFormat)
		}
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return ToRGBA(img), format, nil
}

// ToRGBA converts img to an RGBA image whose bounds start at the origin
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) {
		return rgba
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
