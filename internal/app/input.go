package app

import (
	"github.com/atotto/clipboard"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/photodist/internal/measurement"
	"github.com/philipparndt/photodist/pkg/geometry"
	"go.uber.org/zap"
)

// pollEvents translates the input gathered by the last EndDrawing into
// session events. Close comes last so pending clicks are still recorded.
func (app *App) pollEvents() []measurement.Event {
	var events []measurement.Event

	mousePos := rl.GetMousePosition()
	if !app.Interaction.hasMousePos || mousePos != app.Interaction.lastMousePos {
		if app.Interaction.hasMousePos || rl.IsCursorOnScreen() {
			app.Interaction.lastMousePos = mousePos
			app.Interaction.hasMousePos = true
			events = append(events, measurement.CursorMoved{
				Pos: geometry.NewPoint(float64(mousePos.X), float64(mousePos.Y)),
			})
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		events = append(events, measurement.Clicked{})
	}

	if rl.WindowShouldClose() {
		events = append(events, measurement.Closed{})
		return events
	}

	return append(events, measurement.FrameTick{})
}

// handleKeys processes keyboard shortcuts that do not change the session
func (app *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeyS) {
		app.saveSnapshot()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		app.copyLastConnection()
	}
}

// saveSnapshot writes the photograph with all finished lines to disk
func (app *App) saveSnapshot() {
	if app.Export.renderer == nil {
		app.setStatus("Snapshots are not available")
		return
	}

	lines := app.Session.Lines()
	if err := app.Export.renderer.Save(app.Export.snapshotPath, app.Background.pixels, lines); err != nil {
		app.logger.Warn("Snapshot failed", zap.Error(err))
		app.setStatus("Snapshot failed: %v", err)
		return
	}

	app.logger.Info("Snapshot saved",
		zap.String("path", app.Export.snapshotPath),
		zap.Int("lines", len(lines)))
	app.setStatus("Saved %s", app.Export.snapshotPath)
}

// copyLastConnection puts the newest connection, as logged, on the clipboard
func (app *App) copyLastConnection() {
	line, ok := app.Session.Connections.Last()
	if !ok {
		app.setStatus("Nothing to copy")
		return
	}

	text := line.LogLine()
	if err := clipboard.WriteAll(text); err != nil {
		app.logger.Warn("Clipboard unavailable", zap.Error(err))
		app.setStatus("Clipboard unavailable")
		return
	}

	app.logger.Debug("Copied connection", zap.String("text", text))
	app.setStatus("Copied %q", text)
}
