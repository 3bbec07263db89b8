// Package config loads the optional YAML configuration for the subarrays command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/subarrays/render"
	"github.com/sghaida/subarrays/subarray"
)

// Config holds everything the command needs to produce its output.
type Config struct {
	// Values is the input sequence. Nil means "not set" during Merge.
	Values []int `yaml:"values"`

	// Format names a render.Registry entry.
	Format string `yaml:"format"`

	// Workers > 1 enables the parallel enumerator.
	Workers int `yaml:"workers"`

	// Out, when set, receives the rendered line instead of stdout.
	Out string `yaml:"out"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Defaults returns the reference configuration: [1 2 3], text, sequential.
func Defaults() Config {
	return Config{
		Values:  []int{1, 2, 3},
		Format:  render.FormatText,
		Workers: 1,
		Log:     LogConfig{Level: "warn"},
	}
}

// Load reads a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config bytes. Unknown keys and non-integer values are
// reported as subarray.ErrInvalidInput. An empty document is a zero Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, &subarray.InvalidInputError{Pos: -1, Err: err}
	}
	if cfg.Workers < 0 {
		return Config{}, &subarray.InvalidInputError{Pos: -1, Token: fmt.Sprint(cfg.Workers), Err: errors.New("workers must be >= 0")}
	}
	return cfg, nil
}

// Merge overlays the non-zero fields of over onto base.
//
// An explicitly empty values list (values: []) overrides base, so a config
// file can request the empty input.
func Merge(base, over Config) Config {
	out := base
	if over.Values != nil {
		out.Values = append([]int(nil), over.Values...)
		if out.Values == nil {
			out.Values = []int{}
		}
	}
	if over.Format != "" {
		out.Format = over.Format
	}
	if over.Workers != 0 {
		out.Workers = over.Workers
	}
	if over.Out != "" {
		out.Out = over.Out
	}
	if over.Log.Level != "" {
		out.Log.Level = over.Log.Level
	}
	return out
}
