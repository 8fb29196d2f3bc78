package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/photodist/internal/measurement"
)

// drawLines draws every finished measurement with its label
func (app *App) drawLines() {
	for _, line := range app.Session.Lines() {
		app.drawLine(line, finalStyle)
	}
}

// drawPreview draws the line from the pending start point to the cursor
func (app *App) drawPreview() {
	line, ok := app.Session.Preview()
	if !ok {
		return
	}
	app.drawLine(line, previewStyle)
}

// drawLine draws one segment and its distance label above the midpoint
func (app *App) drawLine(line measurement.Line, style LineStyle) {
	rl.DrawLineEx(toVector2(line.Start), toVector2(line.End), lineThickness, style.line)

	label := measurement.LayoutLabel(line, app.UI.labelOffset)
	textSize := rl.MeasureTextEx(app.UI.font, label.Text, app.UI.fontSize, textSpacing)
	rl.DrawTextEx(app.UI.font, label.Text, toVector2(label.TopLeft(float64(textSize.X), float64(textSize.Y))), app.UI.fontSize, textSpacing, style.label)
}
