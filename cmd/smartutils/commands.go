// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"github.com/spf13/cobra"

	"github.com/vkashegde/smart-utils/pkg/logging"
)

// --- Global Command Variables ---
var (
	configPath  string
	logLevel    string
	noColor     bool
	quiet       bool
	watchConfig bool

	appConfig = DefaultAppConfig()

	rootCmd = &cobra.Command{
		Use:   "smartutils",
		Short: "Human-friendly formatting and terminal feedback helpers",
		Long: `smartutils exposes the smart-utils helper packages on the command
line: string slugs and validators, number and date formatting, device
probes, and a terminal feedback demo.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupApp,
	}
)

// setupApp loads the config file, layers CLI flags over it, and wires
// the default logger before any subcommand runs.
func setupApp(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags beat file values.
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if noColor {
		cfg.NoColor = true
	}
	appConfig = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Enabled = !quiet
	logCfg.MinLevel = level
	logCfg.ShowTimestamp = cfg.Timestamps
	logCfg.TimestampPattern = cfg.TimestampPattern
	logCfg.FilePath = cfg.LogFile
	if cfg.NoColor {
		logCfg.Color = logging.ColorNever
	}
	logging.SetDefault(logging.New(logCfg))

	if watchConfig && configPath != "" {
		if err := watchConfigFile(configPath); err != nil {
			logging.Warning("config watch unavailable: %v", err)
		}
	}
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a YAML config file (supports ~)")
	pf.StringVar(&logLevel, "log-level", "", "minimum log level (debug|info|success|warning|error)")
	pf.BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	pf.BoolVar(&quiet, "quiet", false, "suppress all log output")
	pf.BoolVar(&watchConfig, "watch-config", false, "live-reload the log level when the config file changes")

	rootCmd.AddCommand(slugCmd)
	rootCmd.AddCommand(capitalizeCmd)
	rootCmd.AddCommand(truncateCmd)
	rootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkEmailCmd)
	checkCmd.AddCommand(checkURLCmd)

	rootCmd.AddCommand(numCmd)
	numCmd.AddCommand(numCurrencyCmd)
	numCmd.AddCommand(numCompactCmd)
	numCmd.AddCommand(numPercentCmd)
	numCmd.AddCommand(numRoundCmd)
	numCmd.AddCommand(numRandomCmd)

	rootCmd.AddCommand(timeCmd)
	timeCmd.AddCommand(timeAgoCmd)
	timeCmd.AddCommand(timeSmartCmd)
	timeCmd.AddCommand(timeFmtCmd)
	timeCmd.AddCommand(timeDiffCmd)

	rootCmd.AddCommand(deviceCmd)
	rootCmd.AddCommand(demoCmd)
}
