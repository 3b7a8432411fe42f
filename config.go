// SPDX-License-Identifier: MIT
package timefmt

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for parsing, compiling & scanning operations.
	Config struct {
		// Logger for debug messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// Workers bounds the goroutines used by ParseAll.
		Workers int
	}

	// Option defines the Config functional option type.
	Option func(*Config)
)

var defConfig = DefConfig()

// DefConfig obtains the package's default Config.
func DefConfig() *Config {
	return &Config{
		Logger:  logrus.New(),
		Debug:   false,
		Workers: runtime.NumCPU(),
	}
}

// NewConfig applies options over the default Config.
func NewConfig(options ...Option) *Config {
	cfg := *defConfig
	for _, opt := range options {
		opt(&cfg)
	}
	cfg.Validate()

	return &cfg
}

// WithConfig replaces the Config wholesale.
func WithConfig(c *Config) Option {
	return func(cfg *Config) { *cfg = *c }
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *Config) { cfg.Logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option {
	return func(cfg *Config) { cfg.Debug = debug }
}

// WithWorkers configures the workers option.
func WithWorkers(workers int) Option {
	return func(cfg *Config) { cfg.Workers = workers }
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = defConfig.Logger
	}
	if c.Workers < 1 {
		c.Workers = defConfig.Workers
	}
}
