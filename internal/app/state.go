package app

import (
	"image"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/photodist/internal/snapshot"
	"github.com/philipparndt/photodist/pkg/geometry"
	"github.com/philipparndt/photodist/pkg/watcher"
)

// BackgroundState holds the photograph being measured
type BackgroundState struct {
	path    string
	format  string
	pixels  *image.RGBA  // Decoded image, kept for snapshots
	texture rl.Texture2D // GPU copy drawn every frame
}

// InteractionState holds raw input tracking between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	hasMousePos  bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher // Nil when watching is disabled
	needsReload atomic.Bool          // Set by the watcher goroutine, cleared by the loop
}

// ExportState holds snapshot and clipboard state
type ExportState struct {
	renderer     *snapshot.Renderer // Nil when the font could not be parsed
	snapshotPath string
}

// UIState holds UI-related state
type UIState struct {
	font        rl.Font
	fontSize    float32
	labelOffset float64
	status      string // Last action result, shown until the next one replaces it
}

// LineStyle describes how one kind of line is drawn
type LineStyle struct {
	line  rl.Color
	label rl.Color
}

var (
	// Finalized measurements
	finalStyle = LineStyle{
		line:  rl.NewColor(0, 0, 255, 255),
		label: rl.NewColor(0, 128, 128, 255),
	}
	// Line following the cursor while a start point is pending
	previewStyle = LineStyle{
		line:  rl.NewColor(255, 0, 0, 255),
		label: rl.NewColor(26, 51, 255, 255),
	}
)

const (
	lineThickness  = float32(2)
	reloadDebounce = 500 * time.Millisecond
	windowTitle    = "Photo Distance"
	textSpacing    = float32(1)
)

func toVector2(p geometry.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
