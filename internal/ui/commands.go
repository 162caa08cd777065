// SPDX-License-Identifier: Apache-2.0

// Package ui's commands.go file contains the Bubble Tea commands that perform
// asynchronous work: debounce timers, engine evaluations, and clipboard
// copies. Each command runs in its own goroutine and reports back through a
// message.

package ui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"rexi/internal/engine"
	"rexi/internal/logger"
)

// debounceCmd schedules the evaluation tick for one edit generation.
func debounceCmd(generation int) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceElapsedMsg{generation: generation}
	})
}

// evaluateCmd runs one engine evaluation. The context belongs to this
// generation and is cancelled when a newer edit supersedes it; a cancelled
// evaluation reports no result at all.
func evaluateCmd(ctx context.Context, generation int, eng engine.Engine, req engine.Request) tea.Cmd {
	return func() tea.Msg {
		res, err := eng.Evaluate(ctx, req)
		if err != nil && errors.Is(err, context.Canceled) {
			return nil // superseded; a newer evaluation is already running
		}
		if err != nil {
			logger.Debug("evaluation failed", "profile", eng.Profile().ID, "err", err)
		}
		return evalDoneMsg{generation: generation, result: res, err: err}
	}
}

// copyCmd copies text to the system clipboard and reports the outcome as a
// notice. Clipboard failures are informational, never fatal.
func copyCmd(text, what string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return noticeMsg{text: "nothing to copy"}
		}
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warn("clipboard copy failed", "err", err)
			return noticeMsg{text: "copy failed: " + err.Error()}
		}
		return noticeMsg{text: what + " copied to clipboard"}
	}
}

// clearNoticeCmd expires the current status-line notice.
func clearNoticeCmd() tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
