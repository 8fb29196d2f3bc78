package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/photodist/internal/measurement"
	"github.com/philipparndt/photodist/version"
)

// drawUI draws the heads-up display over the photograph
func (app *App) drawUI() {
	lineHeight := float32(18)
	fontSize14 := float32(14)
	fontSize12 := float32(12)
	padding := float32(6)

	lines := []string{
		fmt.Sprintf("Points: %d  Lines: %d  Snap: %.0f px",
			app.Session.Points.Len(), app.Session.Connections.Len(), app.Session.Points.Threshold()),
	}
	if start, ok := app.Session.Pending(); ok {
		lines = append(lines, fmt.Sprintf("From point %d: click to finish", start.ID))
	} else {
		lines = append(lines, "Click: start a line")
	}
	if last, ok := app.Session.Connections.Last(); ok {
		lines = append(lines, fmt.Sprintf("Last: %d-%d %s", last.StartID, last.EndID, measurement.FormatDistance(last.Distance)))
	}
	lines = append(lines, "S: Snapshot | C: Copy last | ESC: Quit")

	// Semi-transparent background so the text stays readable on any photo
	boxWidth := float32(0)
	for _, text := range lines {
		boxWidth = max(boxWidth, rl.MeasureTextEx(app.UI.font, text, fontSize14, textSpacing).X)
	}
	boxHeight := lineHeight * float32(len(lines))
	rl.DrawRectangle(4, 4, int32(boxWidth+padding*2), int32(boxHeight+padding*2), rl.NewColor(0, 0, 0, 150))

	y := 4 + padding
	for i, text := range lines {
		color := rl.White
		if i == len(lines)-1 {
			color = rl.LightGray
		}
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: 4 + padding, Y: y}, fontSize14, textSpacing, color)
		y += lineHeight
	}

	// Result of the last snapshot, copy or reload below the box
	if app.UI.status != "" {
		rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: 4 + padding, Y: y + padding*2}, fontSize14, textSpacing, rl.Yellow)
	}

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 20
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, textSpacing, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, textSpacing).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, textSpacing, rl.DarkGreen)
}
