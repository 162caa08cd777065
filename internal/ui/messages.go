// SPDX-License-Identifier: Apache-2.0

// Package ui's messages.go file defines the message types used in the Bubble
// Tea Model-View-Update architecture. Evaluation messages carry the request
// generation they belong to; the Update loop compares it against the current
// generation and drops anything stale (last-input-wins).

package ui

import "rexi/internal/engine"

// debounceElapsedMsg fires after the typing pause for one specific edit.
type debounceElapsedMsg struct{ generation int }

// evalDoneMsg carries a finished evaluation back to the UI loop.
type evalDoneMsg struct {
	generation int
	result     *engine.Result
	err        error
}

// noticeMsg shows a transient message in the status line.
type noticeMsg struct{ text string }

// clearNoticeMsg removes the status-line notice.
type clearNoticeMsg struct{}
