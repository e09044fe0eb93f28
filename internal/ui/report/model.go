// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report provides the one-shot TUI view: a spinner while the
// hardware snapshot is taken, then the rendered report until the user
// quits.
package report

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/llmfit-tui/internal/cli"
	"github.com/jeranaias/llmfit-tui/internal/detect"
	"github.com/jeranaias/llmfit-tui/internal/specs"
)

// =============================================================================
// MODEL
// =============================================================================

var (
	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // Cyan

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim
)

// specsMsg carries the finished snapshot into the update loop.
type specsMsg struct {
	specs specs.SystemSpecs
}

// Model is the bubbletea model for the report view.
type Model struct {
	spinner  spinner.Model
	opts     detect.Options
	specs    specs.SystemSpecs
	detected bool
}

// New creates the report view model.
func New(opts detect.Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	s.Style = spinnerStyle

	return Model{
		spinner: s,
		opts:    opts,
	}
}

// Init starts the spinner and kicks off detection in the background.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, detectCmd(m.opts))
}

// detectCmd runs the snapshot off the UI goroutine.
func detectCmd(opts detect.Options) tea.Cmd {
	return func() tea.Msg {
		return specsMsg{specs: specs.Detect(context.Background(), opts)}
	}
}

// Update handles messages for the report view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case specsMsg:
		m.specs = msg.specs
		m.detected = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// View renders the spinner during detection, the report after.
func (m Model) View() string {
	if !m.detected {
		return "\n  " + m.spinner.View() + " Detecting hardware...\n"
	}
	return "\n" + cli.RenderReport(m.specs, false) + "\n\n" +
		hintStyle.Render("press q to quit") + "\n"
}

// Run starts the report view and blocks until the user quits.
func Run(opts detect.Options) error {
	_, err := tea.NewProgram(New(opts)).Run()
	return err
}
