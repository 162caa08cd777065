// SPDX-License-Identifier: Apache-2.0

// Package tui boots the Bubble Tea program. When the input document came in
// over stdin, the terminal is reopened from /dev/tty so the TUI still has a
// real keyboard to read from.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"rexi/internal/config"
	"rexi/internal/logger"
	"rexi/internal/ui"
)

// Run starts the TUI with the given input document, optional initial pattern,
// and optional initial profile ID.
func Run(content, initialPattern, profileID string, cfg config.Config) error {
	m := ui.NewModel(content, initialPattern, profileID, cfg)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("stdin was piped and /dev/tty could not be opened: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited with error", "err", err)
		return err
	}
	return nil
}
