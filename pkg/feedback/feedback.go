// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package feedback shows transient notices on a terminal: toasts that
// expire on their own, snackbars with an action label, and a singleton
// loading spinner.
//
// Rendering goes through the Surface interface, the capability handle
// for "somewhere visible". A detached surface (redirected output, no
// TTY) turns every visual operation into a silent no-op: a host
// application must never crash, or even error, because there is no
// screen to draw on. Bookkeeping stays exact either way, which is what
// the tests assert against.
//
//	n := feedback.NewNotifier(feedback.NewTermSurface(os.Stdout))
//	n.Toast("saved", feedback.WithLevel(feedback.LevelSuccess))
//	n.ShowLoader("downloading model")
//	defer n.HideLoader()
package feedback

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Kind discriminates overlay flavors.
type Kind int

const (
	// KindToast is a short self-expiring notice.
	KindToast Kind = iota
	// KindSnackbar is a toast with an action label.
	KindSnackbar
	// KindLoader is the singleton progress spinner.
	KindLoader
)

func (k Kind) String() string {
	switch k {
	case KindToast:
		return "toast"
	case KindSnackbar:
		return "snackbar"
	default:
		return "loader"
	}
}

// Level selects the visual severity of a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Overlay is one transient entry above the regular output. Entries are
// value snapshots; the Notifier owns the live set.
type Overlay struct {
	// ID identifies the entry for dismissal.
	ID uuid.UUID
	// Kind is the overlay flavor.
	Kind Kind
	// Text is the message body.
	Text string
	// Action is the snackbar action label, empty otherwise.
	Action string
	// Level selects the styling.
	Level Level
	// Created is when the entry was inserted.
	Created time.Time
	// TTL is how long the entry lives before self-removal. Zero
	// means no expiry (the loader).
	TTL time.Duration
}

// Semantic colors for notice levels.
var (
	colorInfo    = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#5FD7FF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD787"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD75F"}
	colorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

// levelStyles are the rendered looks, one per level.
var levelStyles = map[Level]lipgloss.Style{
	LevelInfo:    lipgloss.NewStyle().Foreground(colorInfo),
	LevelSuccess: lipgloss.NewStyle().Foreground(colorSuccess),
	LevelWarning: lipgloss.NewStyle().Foreground(colorWarning),
	LevelError:   lipgloss.NewStyle().Foreground(colorError),
}

// levelIcons prefix rendered notices.
var levelIcons = map[Level]string{
	LevelInfo:    "•",
	LevelSuccess: "✓",
	LevelWarning: "!",
	LevelError:   "✗",
}

// Render returns the overlay's styled single-line form.
func (o Overlay) Render() string {
	style := levelStyles[o.Level]
	line := levelIcons[o.Level] + " " + o.Text
	if o.Action != "" {
		line += "  [" + o.Action + "]"
	}
	return style.Render(line)
}

// Style returns the lipgloss style for a level, for callers composing
// their own layouts.
func (l Level) Style() lipgloss.Style {
	return levelStyles[l]
}
