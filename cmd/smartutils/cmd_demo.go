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
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vkashegde/smart-utils/pkg/feedback"
	"github.com/vkashegde/smart-utils/pkg/feedback/prompt"
	"github.com/vkashegde/smart-utils/pkg/feedback/teamodel"
	"github.com/vkashegde/smart-utils/pkg/logging"
	"github.com/vkashegde/smart-utils/pkg/strutil"
)

var (
	demoTUI bool

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Showcase the terminal feedback widgets",
		Long: `Runs through the feedback layer: toasts at each level, the loader
spinner, a snackbar, and a validated input prompt. With --tui the same
notices render inside a Bubble Tea overlay stack instead.

On a non-terminal (piped output) everything degrades to silent no-ops,
which is the demo's point as much as the visuals are.`,
		RunE: runDemo,
	}
)

func runDemo(cmd *cobra.Command, args []string) error {
	if demoTUI {
		// The overlay model owns rendering in TUI mode; the notifier
		// gets a non-printing surface so nothing fights the alt
		// screen.
		return runDemoTUI(feedback.NewNotifier(feedback.NewFakeSurface()))
	}

	surface := feedback.NewTermSurface(os.Stdout)
	notifier := feedback.NewNotifier(surface)

	if !surface.Attached() {
		logging.Warning("no terminal attached; feedback degrades to no-ops")
	}

	ttl := appConfig.ToastTTL()
	notifier.Toast("plain info toast", feedback.WithTTL(ttl))
	notifier.Toast("operation succeeded", feedback.WithLevel(feedback.LevelSuccess), feedback.WithTTL(ttl))
	notifier.Toast("disk space low", feedback.WithLevel(feedback.LevelWarning), feedback.WithTTL(ttl))
	notifier.Snackbar("draft discarded", "UNDO")

	notifier.ShowLoader("pretending to work")
	time.Sleep(1200 * time.Millisecond)
	notifier.ShowLoader("still pretending")
	time.Sleep(800 * time.Millisecond)
	notifier.HideLoader()

	email, err := prompt.Input(cmd.Context(), surface, "Email address", "you@example.com",
		func(s string) error {
			if !strutil.IsEmail(s) {
				return fmt.Errorf("not a valid email address")
			}
			return nil
		})
	if err != nil {
		return err
	}
	if email != "" {
		logging.Success("validated %s", email)
	}

	ok, err := prompt.Confirm(cmd.Context(), surface, "Dismiss all notices?", "Clears anything still on screen.")
	if err != nil {
		return err
	}
	if ok {
		notifier.DismissAll()
	}
	return nil
}

// runDemoTUI renders the notices through the Bubble Tea overlay model
// and feeds it a steady trickle of toasts until the user quits.
func runDemoTUI(n *feedback.Notifier) error {
	model := teamodel.New(n, "smartutils feedback demo — press q to quit")
	program := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		levels := []feedback.Level{
			feedback.LevelInfo, feedback.LevelSuccess,
			feedback.LevelWarning, feedback.LevelError,
		}
		n.ShowLoader("background job running")
		for i := 0; ; i++ {
			time.Sleep(1500 * time.Millisecond)
			n.Toast(fmt.Sprintf("notice #%d", i+1), feedback.WithLevel(levels[i%len(levels)]))
		}
	}()

	_, err := program.Run()
	return err
}

func init() {
	demoCmd.Flags().BoolVar(&demoTUI, "tui", false, "render the demo in a full-screen TUI")
}
