package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photodist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "imsatop.jpg", cfg.Image)
	assert.Equal(t, 30.0, cfg.Threshold)
	assert.Equal(t, 10.0, cfg.LabelOffset)
	assert.Equal(t, "points.txt", cfg.PointsFile)
	assert.Equal(t, "connections.txt", cfg.ConnectionsFile)
	assert.Empty(t, cfg.Font)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
image: street.png
threshold: 12.5
watch: true
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "street.png", cfg.Image)
	assert.Equal(t, 12.5, cfg.Threshold)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults
	assert.Equal(t, 16.0, cfg.FontSize)
	assert.Equal(t, "points.txt", cfg.PointsFile)
	require.NoError(t, cfg.Validate())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "treshold: 10\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, "threshold"},
		{"negative offset", func(c *Config) { c.LabelOffset = -1 }, "label_offset"},
		{"empty image", func(c *Config) { c.Image = "" }, "image is required"},
		{"zero font size", func(c *Config) { c.FontSize = 0 }, "font_size"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"empty points file", func(c *Config) { c.PointsFile = "" }, "points_file is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateReportsAllFailures(t *testing.T) {
	cfg := Default()
	cfg.Threshold = -5
	cfg.Snapshot = ""

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "threshold")
	assert.Contains(t, err.Error(), "snapshot is required")
}

func TestOverrideOnlyCopiesSetFlags(t *testing.T) {
	cfg, err := Load(writeConfig(t, "image: file.png\nthreshold: 12\npoints_file: file-points.txt\n"))
	require.NoError(t, err)

	flags := Default()
	flags.Image = "flag.png"
	flags.Threshold = 45
	flags.PointsFile = "flag-points.txt"
	flags.Watch = true

	set := map[string]bool{"threshold": true, "watch": true}
	cfg.Override(flags, func(name string) bool { return set[name] })

	assert.Equal(t, "file.png", cfg.Image)
	assert.Equal(t, 45.0, cfg.Threshold)
	assert.Equal(t, "file-points.txt", cfg.PointsFile)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "info", cfg.LogLevel)
}
