package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/photodist/internal/background"
	"github.com/philipparndt/photodist/pkg/watcher"
	"go.uber.org/zap"
)

// loadBackground decodes the photograph without touching the GPU
func loadBackground(path string) (BackgroundState, error) {
	pixels, format, err := background.Load(path)
	if err != nil {
		return BackgroundState{}, err
	}
	return BackgroundState{path: path, format: format, pixels: pixels}, nil
}

// uploadBackground creates the texture for the decoded photograph
func (app *App) uploadBackground() error {
	img := rl.NewImageFromImage(app.Background.pixels)
	defer rl.UnloadImage(img)

	texture := rl.LoadTextureFromImage(img)
	if texture.ID == 0 {
		return fmt.Errorf("failed to create texture for %s", app.Background.path)
	}
	app.Background.texture = texture
	return nil
}

// setupFileWatcher reloads the photograph whenever it changes on disk
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(reloadDebounce, app.logger)
	if err != nil {
		return err
	}

	err = fw.Watch([]string{app.Background.path}, func(string) {
		// Called from the watcher goroutine; the loop does the actual reload
		app.FileWatch.needsReload.Store(true)
	})
	if err != nil {
		fw.Close()
		return err
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.logger.Info("Watching background for changes", zap.String("path", app.Background.path))
	return nil
}

// reloadBackground replaces the photograph. The window keeps its size and
// the current one stays on screen if the new file cannot be used.
func (app *App) reloadBackground() {
	next, err := loadBackground(app.Background.path)
	if err != nil {
		app.logger.Warn("Reload failed", zap.Error(err))
		app.setStatus("Reload failed: %v", err)
		return
	}

	previous := app.Background
	app.Background = next
	if err := app.uploadBackground(); err != nil {
		app.Background = previous
		app.logger.Warn("Reload failed", zap.Error(err))
		app.setStatus("Reload failed: %v", err)
		return
	}

	rl.UnloadTexture(previous.texture)
	bounds := next.pixels.Bounds()
	app.logger.Info("Background reloaded",
		zap.String("path", next.path),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))
	app.setStatus("Reloaded %s", next.path)
}
