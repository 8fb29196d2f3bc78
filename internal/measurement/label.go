package measurement

import (
	"fmt"

	"github.com/philipparndt/photodist/internal/journal"
	"github.com/philipparndt/photodist/pkg/geometry"
)

// DefaultLabelOffset is how far above a line's midpoint its label sits
const DefaultLabelOffset = 10.0

// Label represents a distance label for rendering.
// Anchor is the horizontal center of the text and the bottom of its line box,
// so the whole label sits above the anchor.
type Label struct {
	Text   string
	Anchor geometry.Point
}

// FormatDistance formats a distance the way labels show it
func FormatDistance(distance float64) string {
	return fmt.Sprintf("%.2f px", distance)
}

// LayoutLabel places the distance label of a line above its midpoint
func LayoutLabel(line Line, offset float64) Label {
	mid := geometry.Midpoint(line.Start, line.End)
	return Label{
		Text:   FormatDistance(line.Distance),
		Anchor: geometry.NewPoint(mid.X, mid.Y-offset),
	}
}

// TopLeft returns where a text box of the given size starts so that it is
// horizontally centered on the anchor and ends on it
func (l Label) TopLeft(textWidth, textHeight float64) geometry.Point {
	return geometry.NewPoint(l.Anchor.X-textWidth/2, l.Anchor.Y-textHeight)
}

// LogLine formats a line exactly as it appears in connections.txt
func (l Line) LogLine() string {
	return journal.FormatConnection(l.StartID, l.EndID, l.Distance)
}
