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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkashegde/smart-utils/pkg/timeutil"
)

var (
	fmtPattern string
	fmtExplain bool

	timeCmd = &cobra.Command{
		Use:   "time",
		Short: "Date and time formatting helpers",
	}

	timeAgoCmd = &cobra.Command{
		Use:   "ago WHEN",
		Short: "Render how long ago an instant was",
		Long: `Renders an instant as a relative phrase: "just now", "15 mins ago",
"yesterday", or the absolute date for anything older than a week.
WHEN accepts RFC 3339 or any common date shape.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := timeutil.ParseFlexible(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), timeutil.TimeAgo(t))
			return nil
		},
	}

	timeSmartCmd = &cobra.Command{
		Use:   "smart WHEN",
		Short: "Render an instant with a smart day label and 12-hour time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := timeutil.ParseFlexible(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), timeutil.SmartDateTime(t))
			return nil
		},
	}

	timeFmtCmd = &cobra.Command{
		Use:   "fmt WHEN",
		Short: "Render an instant with a date pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtExplain {
				fmt.Fprintln(cmd.OutOrStdout(), timeutil.Layout(fmtPattern))
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one WHEN argument")
			}
			t, err := timeutil.ParseFlexible(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), timeutil.Format(t, fmtPattern))
			return nil
		},
	}

	timeDiffCmd = &cobra.Command{
		Use:   "diff START END",
		Short: "Summarize the elapsed time between two instants",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := timeutil.ParseFlexible(args[0])
			if err != nil {
				return err
			}
			end, err := timeutil.ParseFlexible(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), timeutil.DiffSummary(start, end))
			return nil
		},
	}
)

func init() {
	timeFmtCmd.Flags().StringVar(&fmtPattern, "pattern", "", "date pattern, e.g. \"EEE, d MMM yyyy\" (default \""+timeutil.DefaultPattern+"\")")
	timeFmtCmd.Flags().BoolVar(&fmtExplain, "explain", false, "print the compiled Go layout instead of formatting")
}
