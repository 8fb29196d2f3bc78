// Package snapshot renders finished measurements onto the photograph and saves them as PNG.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/philipparndt/photodist/internal/measurement"
	"golang.org/x/image/font"
)

// Style controls the look of exported lines and labels
type Style struct {
	LineColor   color.Color
	LabelColor  color.Color
	LineWidth   float64
	FontSize    float64
	LabelOffset float64
}

// DefaultStyle matches the on-screen colors for finished lines
func DefaultStyle() Style {
	return Style{
		LineColor:   color.RGBA{R: 0, G: 0, B: 255, A: 255},
		LabelColor:  color.RGBA{R: 0, G: 128, B: 128, A: 255},
		LineWidth:   2,
		FontSize:    16,
		LabelOffset: measurement.DefaultLabelOffset,
	}
}

// Renderer draws lines over a background image
type Renderer struct {
	style Style
	face  font.Face
}

// NewRenderer parses the TrueType font data used for labels
func NewRenderer(fontData []byte, style Style) (*Renderer, error) {
	ttf, err := truetype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    style.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	return &Renderer{style: style, face: face}, nil
}

// Encode renders and writes the result as PNG to w
func (r *Renderer) Encode(w io.Writer, background image.Image, lines []measurement.Line) error {
	dc := gg.NewContextForImage(background)
	r.draw(dc, lines)
	return dc.EncodePNG(w)
}

// Save renders and writes the result as PNG to path
func (r *Renderer) Save(path string, background image.Image, lines []measurement.Line) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}

	if err := r.Encode(file, background, lines); err != nil {
		file.Close()
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) draw(dc *gg.Context, lines []measurement.Line) {
	dc.SetLineWidth(r.style.LineWidth)
	dc.SetFontFace(r.face)

	// Lines first so labels stay readable on top
	dc.SetColor(r.style.LineColor)
	for _, line := range lines {
		dc.DrawLine(line.Start.X, line.Start.Y, line.End.X, line.End.Y)
		dc.Stroke()
	}

	dc.SetColor(r.style.LabelColor)
	for _, line := range lines {
		label := measurement.LayoutLabel(line, r.style.LabelOffset)
		// Anchor is the bottom center of the text, on the baseline
		dc.DrawStringAnchored(label.Text, label.Anchor.X, label.Anchor.Y, 0.5, 0)
	}
}
