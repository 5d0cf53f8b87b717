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
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vkashegde/smart-utils/pkg/device"
	"github.com/vkashegde/smart-utils/pkg/layout"
	"github.com/vkashegde/smart-utils/pkg/numutil"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Report platform, host, and terminal capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		info := device.Platform()
		fmt.Fprintf(out, "platform   %s/%s (%s)\n", info.OS, info.Arch, info.Family)

		meta := device.Metadata()
		fmt.Fprintf(out, "host       %s\n", meta.Hostname)
		fmt.Fprintf(out, "kernel     %s %s (%s)\n", meta.Kernel, meta.Release, meta.Machine)

		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)
		fmt.Fprintf(out, "memory     %s in use\n", numutil.FormatBytes(mem.Sys))

		online := "offline"
		if device.Online(cmd.Context()) {
			online = "online"
		}
		fmt.Fprintf(out, "network    %s\n", online)

		term := device.ProbeTerminal(os.Stdout)
		if !term.Attached {
			fmt.Fprintln(out, "terminal   not attached")
			return nil
		}
		fmt.Fprintf(out, "terminal   %dx%d, %s, %s\n",
			term.Width, term.Height,
			layout.Orientation(term.Width, term.Height),
			layout.ClassFor(term.Width))
		return nil
	},
}
