// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Color modes.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var (
	ErrUnknownConfigFormat = errors.New("unknown configuration file format")
	ErrInvalidColorMode    = errors.New("invalid color mode")
)

// settings holds the CLI configuration, read from a file & overridden by flags.
type settings struct {
	Debug    bool   `yaml:"debug" toml:"debug"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
	Color    string `yaml:"color" toml:"color"`
	Workers  int    `yaml:"workers" toml:"workers"`
}

func defaultSettings() settings {
	return settings{LogLevel: "info", Color: colorAuto}
}

// loadSettings reads a YAML or TOML configuration file, selected by extension.
func loadSettings(path string) (s settings, err error) {
	s = defaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config %s: %w", path, err)
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".toml":
		err = toml.Unmarshal(data, &s)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownConfigFormat, path)
		return
	}
	if err != nil {
		err = fmt.Errorf("failed to parse config %s: %w", path, err)
		return
	}

	err = s.validate()

	return
}

func (s *settings) validate() error {
	switch s.Color {
	case "":
		s.Color = colorAuto
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, s.Color)
	}

	if s.LogLevel == "" {
		s.LogLevel = "info"
	}

	return nil
}
