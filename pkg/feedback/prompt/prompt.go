// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package prompt shows modal dialogs on a terminal: yes/no
// confirmation, single-choice pickers, and validated text input.
//
// Like the rest of the feedback layer, every entry point checks the
// surface first. A detached surface resolves to the zero answer with a
// nil error rather than blocking on input nobody can give: callers who
// must distinguish "declined" from "could not ask" check
// Surface.Attached themselves.
//
// A user who cancels a prompt produces ErrCancelled, which wraps the
// underlying form library's abort error.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/vkashegde/smart-utils/pkg/feedback"
)

// ErrCancelled is returned when the user aborts a prompt (Esc or
// Ctrl-C). Test with errors.Is.
var ErrCancelled = errors.New("prompt cancelled")

// Confirm asks a yes/no question as a modal dialog. A detached surface
// answers (false, nil) without prompting.
func Confirm(ctx context.Context, s feedback.Surface, title, message string) (bool, error) {
	if s == nil || !s.Attached() {
		return false, nil
	}

	var answer bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(message).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return false, wrapAbort(err)
	}
	return answer, nil
}

// Pick presents options as a single-choice sheet and returns the
// chosen string. A detached surface or an empty option list answers
// ("", nil).
func Pick(ctx context.Context, s feedback.Surface, title string, options []string) (string, error) {
	if s == nil || !s.Attached() || len(options) == 0 {
		return "", nil
	}

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(&choice),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", wrapAbort(err)
	}
	return choice, nil
}

// Input collects a line of text. validate may be nil; when set, the
// dialog re-prompts until the input passes or the user cancels. A
// detached surface answers ("", nil).
func Input(ctx context.Context, s feedback.Surface, title, placeholder string, validate func(string) error) (string, error) {
	if s == nil || !s.Attached() {
		return "", nil
	}

	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder)
	if validate != nil {
		field = field.Validate(validate)
	}

	var value string
	form := huh.NewForm(huh.NewGroup(field.Value(&value)))
	if err := form.RunWithContext(ctx); err != nil {
		return "", wrapAbort(err)
	}
	return value, nil
}

// wrapAbort maps the form library's abort error onto ErrCancelled and
// passes everything else through with context.
func wrapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("prompt: %w", err)
}
