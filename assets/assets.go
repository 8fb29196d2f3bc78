// Package assets provides the font used for distance labels.
package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontTTF is the embedded Go Regular TrueType font
var DefaultFontTTF = goregular.TTF

// LoadFont returns the font data at path, or the embedded font when path is empty
func LoadFont(path string) ([]byte, error) {
	if path == "" {
		return DefaultFontTTF, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("font file %s is empty", path)
	}
	return data, nil
}
