package measurement

import (
	"testing"

	"github.com/philipparndt/photodist/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0.00 px", FormatDistance(0))
	assert.Equal(t, "40.00 px", FormatDistance(40))
	assert.Equal(t, "141.42 px", FormatDistance(141.4213562))
}

func TestLayoutLabel(t *testing.T) {
	line := Line{
		StartID:  1,
		EndID:    2,
		Start:    geometry.NewPoint(0, 100),
		End:      geometry.NewPoint(40, 100),
		Distance: 40,
	}

	label := LayoutLabel(line, DefaultLabelOffset)

	assert.Equal(t, "40.00 px", label.Text)
	assert.Equal(t, geometry.NewPoint(20, 90), label.Anchor)
	assert.Equal(t, geometry.NewPoint(-5, 74), label.TopLeft(50, 16))
}

func TestLayoutLabelForZeroLengthLine(t *testing.T) {
	p := geometry.NewPoint(100, 100)
	label := LayoutLabel(Line{StartID: 1, EndID: 1, Start: p, End: p}, 10)

	assert.Equal(t, "0.00 px", label.Text)
	assert.Equal(t, geometry.NewPoint(100, 90), label.Anchor)
}

func TestLineLogLine(t *testing.T) {
	assert.Equal(t, "1 2 40.00", Line{StartID: 1, EndID: 2, Distance: 40}.LogLine())
	assert.Equal(t, "3 3 0.00", Line{StartID: 3, EndID: 3}.LogLine())
}

func TestLabelBoxStaysAboveHorizontalLine(t *testing.T) {
	line := Line{
		StartID:  1,
		EndID:    2,
		Start:    geometry.NewPoint(10, 100),
		End:      geometry.NewPoint(130, 100),
		Distance: 120,
	}

	tests := []struct {
		name   string
		offset float64
		height float64
	}{
		{"default offset", DefaultLabelOffset, 16},
		{"large font", DefaultLabelOffset, 48},
		{"no offset", 0, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := LayoutLabel(line, tt.offset)
			top := label.TopLeft(60, tt.height)

			assert.Equal(t, 40.0, top.X)
			assert.Equal(t, 100-tt.offset-tt.height, top.Y)
			// The bottom of the box never goes below the line
			assert.LessOrEqual(t, top.Y+tt.height, line.Start.Y)
		})
	}
}
