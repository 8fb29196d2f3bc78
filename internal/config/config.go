// Package config holds the runtime settings of the measuring tool.
//
// Settings come from built-in defaults, optionally overlaid by a YAML file,
// and finally by command line flags that were explicitly set.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/philipparndt/photodist/internal/journal"
	"github.com/philipparndt/photodist/internal/measurement"
	"github.com/philipparndt/photodist/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config holds all application configuration
type Config struct {
	// Background photograph; also defines the window size
	Image string `yaml:"image" validate:"required"`
	// Label font file; empty uses the embedded font
	Font        string  `yaml:"font"`
	FontSize    float64 `yaml:"font_size" validate:"gt=0"`
	Threshold   float64 `yaml:"threshold" validate:"gt=0"`
	LabelOffset float64 `yaml:"label_offset" validate:"gte=0"`

	PointsFile      string `yaml:"points_file" validate:"required"`
	ConnectionsFile string `yaml:"connections_file" validate:"required"`
	Snapshot        string `yaml:"snapshot" validate:"required"`

	Watch    bool   `yaml:"watch"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Image:           "imsatop.jpg",
		FontSize:        16,
		Threshold:       geometry.DefaultThreshold,
		LabelOffset:     measurement.DefaultLabelOffset,
		PointsFile:      journal.DefaultPointsFile,
		ConnectionsFile: journal.DefaultConnectionsFile,
		Snapshot:        "snapshot.png",
		Watch:           false,
		LogLevel:        "info",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Report yaml key names instead of Go field names
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks every field and reports all failures at once
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			messages = append(messages, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(messages, "; "))
}

// Override copies the settings of src whose command line flag is reported as
// set by isSet. Flags left at their defaults never replace file values.
func (c *Config) Override(src *Config, isSet func(flag string) bool) {
	overrides := []struct {
		flag  string
		apply func()
	}{
		{"image", func() { c.Image = src.Image }},
		{"font", func() { c.Font = src.Font }},
		{"font-size", func() { c.FontSize = src.FontSize }},
		{"threshold", func() { c.Threshold = src.Threshold }},
		{"label-offset", func() { c.LabelOffset = src.LabelOffset }},
		{"points", func() { c.PointsFile = src.PointsFile }},
		{"connections", func() { c.ConnectionsFile = src.ConnectionsFile }},
		{"snapshot", func() { c.Snapshot = src.Snapshot }},
		{"watch", func() { c.Watch = src.Watch }},
		{"log-level", func() { c.LogLevel = src.LogLevel }},
	}
	for _, o := range overrides {
		if isSet(o.flag) {
			o.apply()
		}
	}
}
