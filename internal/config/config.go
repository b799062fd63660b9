// Package config loads the configuration of the gopherpla command.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the gopherpla command.
type Config struct {
	// Type is the cover type used when a PLA file declares none.
	Type string `yaml:"type" validate:"oneof=f r fd fr dr fdr"`
	// Verify checks each minimized cover against its input.
	Verify bool `yaml:"verify"`
	// Jobs is how many files are read at once. Minimization is serialized anyway.
	Jobs    int           `yaml:"jobs" validate:"min=1,max=256"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig configures the metrics dump.
type MetricsConfig struct {
	// Textfile, if not empty, is where metrics are written on exit,
	// in the Prometheus text format.
	Textfile string `yaml:"textfile"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Type:   "fd",
		Verify: false,
		Jobs:   4,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads the configuration in the YAML file at path.
// Fields absent from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not open config %q: %w", path, err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks all fields of cfg have an acceptable value.
func (cfg Config) Validate() error {
	return validate.Struct(cfg)
}

// SlogLevel returns the slog level matching cfg.Log.Level.
func (cfg Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}
