// SPDX-License-Identifier: Apache-2.0

// Package ui implements the interactive pattern-testing TUI: a pattern field,
// a profile selector, a live-highlighted result pane, and a groups/fields
// pane, wired to the engine layer through debounced, cancellable evaluations.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"rexi/internal/config"
	"rexi/internal/engine"
)

// Model is the Bubble Tea model for the whole application.
type Model struct {
	registry *engine.Registry
	input    string // the text under test, fixed for the session

	patternInput textinput.Model
	resultView   viewport.Model
	groupsView   viewport.Model
	helpView     viewport.Model
	helpBar      help.Model
	keymap       KeyMap

	profiles   []*engine.Profile
	profileIdx int

	currentState state

	// generation is the monotonic request counter behind the
	// debounce-and-cancel scheme. Every edit bumps it; debounce ticks and
	// evaluation results carrying an older generation are discarded.
	generation int
	cancelEval context.CancelFunc
	evaluating bool

	result  *engine.Result
	evalErr *engine.Error
	notice  string

	features featuresModel

	showGroupsPane bool
	width, height  int
	ready          bool
}

// NewModel builds the application model. content is the input payload;
// initialPattern and profileID may be empty.
func NewModel(content, initialPattern, profileID string, cfg config.Config) Model {
	registry := engine.NewRegistry(cfg.EngineOptions())

	ti := textinput.New()
	ti.Prompt = "> "
	ti.SetValue(initialPattern)
	ti.Focus()

	m := Model{
		registry:       registry,
		input:          content,
		patternInput:   ti,
		helpBar:        help.New(),
		keymap:         DefaultKeyMap,
		profiles:       registry.Profiles(),
		currentState:   stateMain,
		showGroupsPane: true,
	}

	if profileID == "" {
		profileID = registry.DefaultID()
	}
	for i, p := range m.profiles {
		if p.ID == profileID {
			m.profileIdx = i
		}
	}
	m.patternInput.Placeholder = patternPlaceholder(m.profile())
	return m
}

// Init starts cursor blinking and evaluates the initial state: even with an
// empty pattern the AWK profile shows its field breakdown and jq renders the
// document through the identity filter.
func (m Model) Init() tea.Cmd {
	gen := m.generation
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return debounceElapsedMsg{generation: gen}
	})
}

func (m *Model) profile() *engine.Profile {
	if len(m.profiles) == 0 {
		return nil
	}
	return m.profiles[m.profileIdx]
}

func (m *Model) currentEngine() engine.Engine {
	p := m.profile()
	if p == nil {
		return nil
	}
	eng, _ := m.registry.Engine(p.ID)
	return eng
}

// Result exposes the last rendered result, mainly for tests.
func (m *Model) Result() *engine.Result { return m.result }

// Update routes messages by state; the key handlers live in
// update_handlers.go.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshPanes()
		return m, nil

	case tea.KeyMsg:
		switch m.currentState {
		case stateHelp:
			return m.handleHelpKeys(msg)
		case stateFeatures:
			return m.handleFeatureKeys(msg)
		default:
			return m.handleMainKeys(msg)
		}

	case debounceElapsedMsg:
		if msg.generation != m.generation {
			return m, nil // superseded by a newer edit
		}
		return m, m.startEvaluation()

	case evalDoneMsg:
		if msg.generation != m.generation {
			return m, nil // stale result; never display it
		}
		m.evaluating = false
		m.applyEvalOutcome(msg.result, msg.err)
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		return m, clearNoticeCmd()

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.patternInput, cmd = m.patternInput.Update(msg)
	return m, cmd
}

// startEvaluation cancels any in-flight evaluation and launches one for the
// current generation.
func (m *Model) startEvaluation() tea.Cmd {
	eng := m.currentEngine()
	if eng == nil {
		return nil
	}
	if m.cancelEval != nil {
		m.cancelEval()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelEval = cancel
	m.evaluating = true

	req := engine.Request{Pattern: m.patternInput.Value(), Input: m.input}
	return evaluateCmd(ctx, m.generation, eng, req)
}

// applyEvalOutcome stores an evaluation outcome and refreshes the panes.
func (m *Model) applyEvalOutcome(res *engine.Result, err error) {
	if err != nil {
		m.result = nil
		if engErr, ok := err.(*engine.Error); ok {
			m.evalErr = engErr
		} else {
			m.evalErr = &engine.Error{Kind: engine.ErrRuntime, Message: err.Error(), Offset: -1}
		}
	} else {
		m.result = res
		m.evalErr = nil
	}
	m.refreshPanes()
}

// switchProfile moves the profile cursor by delta and re-evaluates
// immediately; spans from the previous profile never survive the switch.
func (m *Model) switchProfile(delta int) tea.Cmd {
	if len(m.profiles) == 0 {
		return nil
	}
	m.profileIdx = (m.profileIdx + delta + len(m.profiles)) % len(m.profiles)
	m.patternInput.Placeholder = patternPlaceholder(m.profile())
	m.result = nil
	m.evalErr = nil
	m.refreshPanes()
	m.generation++
	return m.startEvaluation()
}

// bumpGeneration registers an edit and schedules its debounce tick.
func (m *Model) bumpGeneration() tea.Cmd {
	m.generation++
	return debounceCmd(m.generation)
}
