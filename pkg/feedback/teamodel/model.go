// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package teamodel renders a Notifier's live overlays as a Bubble Tea
// component: a right-aligned notice stack above arbitrary embedded
// content, with the loader as an animated spinner line.
//
// The model polls the Notifier on a tick rather than subscribing;
// expiry timers already mutate the overlay set on their own
// goroutines, and Active() snapshots are cheap.
package teamodel

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkashegde/smart-utils/pkg/feedback"
	"github.com/vkashegde/smart-utils/pkg/layout"
)

// sweepInterval is how often the model re-reads the overlay set.
const sweepInterval = 250 * time.Millisecond

// tickMsg triggers an overlay sweep.
type tickMsg time.Time

// noticeStyle frames each overlay line in the stack.
var noticeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Model is a tea.Model overlaying notices on embedded content.
type Model struct {
	notifier *feedback.Notifier
	content  string
	spin     spinner.Model

	width  int
	height int
	class  layout.Breakpoint

	overlays []feedback.Overlay
}

// New builds a model over n, with content as the backdrop the notices
// stack above.
func New(n *feedback.Notifier, content string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = feedback.LevelInfo.Style()

	return Model{
		notifier: n,
		content:  content,
		spin:     sp,
		class:    layout.Compact,
	}
}

// SetContent replaces the backdrop content.
func (m *Model) SetContent(s string) {
	m.content = s
}

// Init starts the sweep tick and the spinner animation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sweep(), m.spin.Tick)
}

func (m Model) sweep() tea.Cmd {
	return tea.Tick(sweepInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles resize, sweep ticks, spinner frames, and quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.class = layout.ClassFor(msg.Width)
		return m, nil

	case tickMsg:
		m.overlays = m.notifier.Active()
		return m, m.sweep()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the notice stack right-aligned above the content. On a
// Compact surface the stack spans the full width instead.
func (m Model) View() string {
	stack := m.renderStack()
	if stack == "" {
		return m.content
	}
	if m.width > 0 {
		align := lipgloss.Right
		if m.class == layout.Compact {
			align = lipgloss.Left
		}
		stack = lipgloss.PlaceHorizontal(m.width, align, stack)
	}
	return stack + "\n" + m.content
}

// renderStack draws every live overlay, loader last with the animated
// spinner glyph.
func (m Model) renderStack() string {
	if len(m.overlays) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.overlays))
	for _, o := range m.overlays {
		if o.Kind == feedback.KindLoader {
			lines = append(lines, noticeStyle.Render(m.spin.View()+" "+o.Text))
			continue
		}
		lines = append(lines, noticeStyle.Render(o.Render()))
	}
	return strings.Join(lines, "\n")
}
