// SPDX-License-Identifier: Apache-2.0

package ui

import "time"

// state represents the different views or modes of the TUI.
type state int

const (
	stateMain state = iota
	stateHelp
	stateFeatures
)

const (
	// debounceDelay is how long typing must pause before an evaluation is
	// started. Each edit bumps the request generation; a tick carrying a
	// stale generation is ignored.
	debounceDelay = 150 * time.Millisecond

	// noticeDuration is how long transient status-line notices (clipboard
	// results and the like) stay visible.
	noticeDuration = 2 * time.Second

	headerHeight = 1 // title line
	inputHeight  = 2 // pattern field plus its error/status line
	footerHeight = 1 // key help / notices
)
