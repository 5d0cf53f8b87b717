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
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vkashegde/smart-utils/pkg/strutil"
)

var (
	truncateMax    int
	truncateSuffix string

	slugCmd = &cobra.Command{
		Use:   "slug [text...]",
		Short: "Convert text into a URL-safe slug",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strutil.Slugify(strings.Join(args, " ")))
			return nil
		},
	}

	capitalizeCmd = &cobra.Command{
		Use:   "capitalize [text...]",
		Short: "Uppercase the first character of the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strutil.Capitalize(strings.Join(args, " ")))
			return nil
		},
	}

	truncateCmd = &cobra.Command{
		Use:   "truncate [text...]",
		Short: "Shorten text to a maximum length with a suffix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := strutil.TruncateWith(strings.Join(args, " "), truncateMax, truncateSuffix)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate strings against common formats",
	}

	checkEmailCmd = &cobra.Command{
		Use:   "email ADDRESS",
		Short: "Check whether the argument is a well-formed email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportValid(cmd, strutil.IsEmail(args[0]), "valid email", "not a valid email")
		},
	}

	checkURLCmd = &cobra.Command{
		Use:   "url URL",
		Short: "Check whether the argument is a well-formed http(s) URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportValid(cmd, strutil.IsURL(args[0]), "valid url", "not a valid url")
		},
	}
)

// reportValid prints the verdict and makes the process exit nonzero
// for invalid input, so the checks compose in shell scripts.
func reportValid(cmd *cobra.Command, ok bool, yes, no string) error {
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), yes)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), no)
	cmd.SilenceErrors = true
	return errors.New(no)
}

func init() {
	truncateCmd.Flags().IntVar(&truncateMax, "max", 80, "maximum length in characters")
	truncateCmd.Flags().StringVar(&truncateSuffix, "suffix", "...", "suffix appended when truncating")
}
