// Package startup prepares everything a measuring window needs before it opens.
package startup

import (
	"image"

	"github.com/philipparndt/photodist/assets"
	"github.com/philipparndt/photodist/internal/background"
	"github.com/philipparndt/photodist/internal/config"
	"github.com/philipparndt/photodist/internal/journal"
	"github.com/philipparndt/photodist/internal/measurement"
	"go.uber.org/zap"
)

// Resources holds the decoded inputs and the fresh session of one run
type Resources struct {
	Journal    *journal.Files
	Session    *measurement.Session
	Background *image.RGBA
	Format     string
	FontData   []byte
}

// Prepare clears the logs of any previous run, then decodes the photograph
// and reads the label font. The logs are cleared even when loading fails.
func Prepare(cfg *config.Config, logger *zap.Logger) (*Resources, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	files := journal.New(cfg.PointsFile, cfg.ConnectionsFile, logger)
	files.Reset()

	pixels, format, err := background.Load(cfg.Image)
	if err != nil {
		return nil, err
	}

	fontData, err := assets.LoadFont(cfg.Font)
	if err != nil {
		return nil, err
	}

	return &Resources{
		Journal:    files,
		Session:    measurement.NewSession(cfg.Threshold, files, logger),
		Background: pixels,
		Format:     format,
		FontData:   fontData,
	}, nil
}
