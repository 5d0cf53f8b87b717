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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vkashegde/smart-utils/pkg/numutil"
)

var (
	currencySymbol   string
	currencyDecimals int
	percentDecimals  int
	roundPlaces      int

	numCmd = &cobra.Command{
		Use:   "num",
		Short: "Number formatting helpers",
	}

	numCurrencyCmd = &cobra.Command{
		Use:   "currency AMOUNT",
		Short: "Format an amount with a currency symbol and digit grouping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), numutil.FormatCurrency(v, currencySymbol, currencyDecimals))
			return nil
		},
	}

	numCompactCmd = &cobra.Command{
		Use:   "compact VALUE",
		Short: "Format a value in compact magnitude notation (1.5K, 2M)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), numutil.Compact(v))
			return nil
		},
	}

	numPercentCmd = &cobra.Command{
		Use:   "percent PART TOTAL",
		Short: "Format PART as a percentage of TOTAL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			total, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), numutil.Percent(part, total, percentDecimals))
			return nil
		},
	}

	numRoundCmd = &cobra.Command{
		Use:   "round VALUE",
		Short: "Round a value to a number of decimal places",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			rounded, err := numutil.RoundTo(v, roundPlaces)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(rounded, 'f', -1, 64))
			return nil
		},
	}

	numRandomCmd = &cobra.Command{
		Use:   "random MIN MAX",
		Short: "Generate a uniform random integer in [MIN, MAX]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("min: %w", err)
			}
			hi, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("max: %w", err)
			}
			n, err := numutil.RandomInt(lo, hi)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
)

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

func init() {
	numCurrencyCmd.Flags().StringVar(&currencySymbol, "symbol", "$", "currency symbol prefix")
	numCurrencyCmd.Flags().IntVar(&currencyDecimals, "decimals", 2, "decimal places")
	numPercentCmd.Flags().IntVar(&percentDecimals, "decimals", 1, "decimal places")
	numRoundCmd.Flags().IntVar(&roundPlaces, "places", 2, "decimal places")
}
