// Package app runs the interactive measuring window.
package app

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/photodist/internal/config"
	"github.com/philipparndt/photodist/internal/measurement"
	"github.com/philipparndt/photodist/internal/snapshot"
	"github.com/philipparndt/photodist/internal/startup"
	"go.uber.org/zap"
)

func init() {
	// The window, its GL context and all input polling belong to the main thread
	runtime.LockOSThread()
}

type App struct {
	Session     *measurement.Session
	Background  BackgroundState
	Interaction InteractionState
	FileWatch   FileWatchState
	Export      ExportState
	UI          UIState

	logger *zap.Logger
}

// Run opens the window and processes input until it is closed.
// Startup failures and log write failures are returned.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Clears the previous logs, then decodes the photograph whose size defines the window
	res, err := startup.Prepare(cfg, logger)
	if err != nil {
		return err
	}
	background := BackgroundState{path: cfg.Image, format: res.Format, pixels: res.Background}
	fontData := res.FontData

	app := &App{
		Session:    res.Session,
		Background: background,
		Export:     ExportState{snapshotPath: cfg.Snapshot},
		UI: UIState{
			fontSize:    float32(cfg.FontSize),
			labelOffset: cfg.LabelOffset,
		},
		logger: logger,
	}

	style := snapshot.DefaultStyle()
	style.FontSize = cfg.FontSize
	style.LabelOffset = cfg.LabelOffset
	if renderer, err := snapshot.NewRenderer(fontData, style); err != nil {
		logger.Warn("Snapshots disabled", zap.Error(err))
	} else {
		app.Export.renderer = renderer
	}

	// Initialize window
	bounds := background.pixels.Bounds()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(bounds.Dx()), int32(bounds.Dy()), windowTitle)
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to create %dx%d window", bounds.Dx(), bounds.Dy())
	}
	defer rl.CloseWindow()

	// Only redraw when input arrives
	rl.EnableEventWaiting()

	if err := app.uploadBackground(); err != nil {
		return err
	}
	defer func() { rl.UnloadTexture(app.Background.texture) }()

	app.UI.font = rl.LoadFontFromMemory(".ttf", fontData, int32(cfg.FontSize), nil)
	if app.UI.font.Texture.ID == 0 {
		return fmt.Errorf("failed to load label font")
	}
	defer rl.UnloadFont(app.UI.font)

	if cfg.Watch {
		if err := app.setupFileWatcher(); err != nil {
			logger.Warn("Failed to set up file watching, auto-reload will not be available", zap.Error(err))
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	logger.Info("Window opened",
		zap.String("image", cfg.Image),
		zap.String("format", background.format),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Float64("threshold", cfg.Threshold))

	return app.loop()
}

// loop runs until the window is closed or a log write fails
func (app *App) loop() error {
	for {
		// Swap in a changed photograph (must be on main thread)
		if app.FileWatch.needsReload.CompareAndSwap(true, false) {
			app.reloadBackground()
		}

		for _, ev := range app.pollEvents() {
			running, err := app.Session.Handle(ev)
			if err != nil {
				return fmt.Errorf("failed to record measurement: %w", err)
			}
			if !running {
				app.logger.Info("Window closed",
					zap.Int("points", app.Session.Points.Len()),
					zap.Int("connections", app.Session.Connections.Len()))
				return nil
			}
		}

		app.handleKeys()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.White)
		rl.DrawTexture(app.Background.texture, 0, 0, rl.White)

		app.drawLines()
		app.drawPreview()
		app.drawUI()

		rl.EndDrawing()
	}
}

// setStatus shows a message in the HUD
func (app *App) setStatus(format string, args ...any) {
	app.UI.status = fmt.Sprintf(format, args...)
}
