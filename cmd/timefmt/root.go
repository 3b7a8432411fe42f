// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/timefmt"
)

var (
	configPath string
	debug      bool
	colorMode  string
	workers    int

	cfg    = defaultSettings()
	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "timefmt",
	Short: "Validate, inspect & apply time format descriptions",
	Long: `timefmt parses bracketed time format descriptions such as
"[year]-[month]-[day] [hour]:[minute]", reporting malformed descriptions with
their exact location, dumping their syntax trees & scanning text against them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", colorAuto, "Colorize diagnostics: auto, always or never")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Concurrent workers for checking descriptions (default: CPU count)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup merges the configuration file with explicitly set flags & configures the logger.
func setup(cmd *cobra.Command, _ []string) (err error) {
	cfg = defaultSettings()
	if configPath != "" {
		if cfg, err = loadSettings(configPath); err != nil {
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("color") {
		cfg.Color = colorMode
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if err = cfg.validate(); err != nil {
		return
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		err = fmt.Errorf("invalid log level: %w", err)
		return
	}
	if cfg.Debug {
		level = logrus.DebugLevel
	}

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)
	logger.Debugf("settings: %+v", cfg)

	return
}

// libOptions obtains the library options for the current settings.
func libOptions() []timefmt.Option {
	return []timefmt.Option{
		timefmt.WithLogger(logger),
		timefmt.WithDebug(cfg.Debug),
		timefmt.WithWorkers(cfg.Workers),
	}
}
