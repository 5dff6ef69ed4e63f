// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the [Settings] that control table
// rendering, parallel column maps, ingestion and logging.
// Settings can be loaded from TOML or YAML files.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/logx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings contains all of the configurable options.
type Settings struct {

	// Display controls how tables are rendered as text.
	Display Display `toml:"display" yaml:"display"`

	// Parallel controls data-parallel column maps.
	Parallel Parallel `toml:"parallel" yaml:"parallel"`

	// Infer controls type inference during ingestion.
	Infer Infer `toml:"infer" yaml:"infer"`

	// Log controls logging.
	Log Log `toml:"log" yaml:"log"`
}

// Display contains the table rendering options.
type Display struct {

	// MaxRows is the number of rows above which only the
	// first and last EdgeRows rows are shown.
	MaxRows int `toml:"max_rows" yaml:"max_rows"`

	// EdgeRows is the number of rows shown at each end
	// of a table with more than MaxRows rows.
	EdgeRows int `toml:"edge_rows" yaml:"edge_rows"`

	// Precision is the number of decimals of floating point values.
	Precision int `toml:"precision" yaml:"precision"`

	// MaxStringWidth is the display width at which string
	// values are truncated; 0 disables truncation.
	MaxStringWidth int `toml:"max_string_width" yaml:"max_string_width"`

	// FooterRows is the number of rows at or above which a
	// [N rows x M columns] footer is shown.
	FooterRows int `toml:"footer_rows" yaml:"footer_rows"`

	// Color enables terminal styling of the header
	// when the output supports it.
	Color bool `toml:"color" yaml:"color"`
}

// Parallel contains the options for parallel column maps.
type Parallel struct {

	// Workers is the maximum number of columns processed
	// concurrently; 0 means no limit.
	Workers int `toml:"workers" yaml:"workers"`
}

// Infer contains the type inference options.
type Infer struct {

	// SampleSize is the number of leading values examined
	// to infer the type of a raw column.
	SampleSize int `toml:"sample_size" yaml:"sample_size"`
}

// Log contains the logging options.
type Log struct {

	// Level is the minimum level logged: debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
}

// Defaults returns the default settings.
func Defaults() *Settings {
	return &Settings{
		Display: Display{
			MaxRows:        10,
			EdgeRows:       5,
			Precision:      3,
			MaxStringWidth: 30,
			FooterRows:     50,
			Color:          true,
		},
		Parallel: Parallel{Workers: runtime.GOMAXPROCS(0)},
		Infer:    Infer{SampleSize: dtype.MaxSample},
		Log:      Log{Level: "warn"},
	}
}

// LogLevel returns the configured log level.
func (s *Settings) LogLevel() slog.Level {
	return logx.LevelFromString(s.Log.Level)
}

// Validate replaces out of range values with their defaults,
// logging each replacement.
func (s *Settings) Validate() {
	def := Defaults()
	fix := func(name string, v *int, min int, d int) {
		if *v < min {
			slog.Warn("invalid setting replaced with default", "setting", name, "value", *v, "default", d)
			*v = d
		}
	}
	fix("display.max_rows", &s.Display.MaxRows, 0, def.Display.MaxRows)
	fix("display.edge_rows", &s.Display.EdgeRows, 1, def.Display.EdgeRows)
	fix("display.precision", &s.Display.Precision, 0, def.Display.Precision)
	fix("display.max_string_width", &s.Display.MaxStringWidth, 0, def.Display.MaxStringWidth)
	fix("display.footer_rows", &s.Display.FooterRows, 0, def.Display.FooterRows)
	fix("parallel.workers", &s.Parallel.Workers, 0, def.Parallel.Workers)
	fix("infer.sample_size", &s.Infer.SampleSize, 1, def.Infer.SampleSize)
	if 2*s.Display.EdgeRows > s.Display.MaxRows {
		slog.Warn("invalid setting replaced with default", "setting", "display.edge_rows", "value", s.Display.EdgeRows, "default", s.Display.MaxRows/2)
		s.Display.EdgeRows = max(s.Display.MaxRows/2, 1)
	}
}

// Format is a settings file format.
type Format int32

const (
	// TOML is the TOML format, used for .toml files.
	TOML Format = iota

	// YAML is the YAML format, used for .yaml and .yml files.
	YAML
)

// FormatOf returns the format for the extension of the given filename.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: unsupported settings file extension for %q", filename)
}

// Read decodes settings in the given format on top of the defaults,
// so that missing values keep their default.
func Read(b []byte, f Format) (*Settings, error) {
	s := Defaults()
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(b, s)
	default:
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(s)
	}
	if err != nil {
		return nil, err
	}
	s.Validate()
	return s, nil
}

// Open reads settings from the given file, with the format
// determined by its extension.
func Open(filename string) (*Settings, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := Read(b, f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return s, nil
}

// Write encodes the settings in the given format.
func (s *Settings) Write(f Format) ([]byte, error) {
	if f == YAML {
		return yaml.Marshal(s)
	}
	return toml.Marshal(s)
}

// Save writes the settings to the given file, with the format
// determined by its extension.
func (s *Settings) Save(filename string) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	b, err := s.Write(f)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

var (
	currentMu sync.RWMutex
	current   = Defaults()
)

// Current returns a copy of the process-wide settings.
func Current() Settings {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return *current
}

// SetCurrent replaces the process-wide settings.
func SetCurrent(s *Settings) {
	currentMu.Lock()
	defer currentMu.Unlock()
	c := *s
	current = &c
}
