// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the interactive Bubble Tea interface for radix.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/radix-tui/internal/config"
	"github.com/jeranaias/radix-tui/internal/convert"
	"github.com/jeranaias/radix-tui/internal/history"
	"github.com/jeranaias/radix-tui/internal/ui/styles"
)

// =============================================================================
// SCREENS
// =============================================================================

// screen identifies the view currently shown. The converter screens track
// the conversion session's states: the menu is SelectOperation, the base
// pickers and input screen are AwaitInput preparation, the result screen is
// ShowResult and then AwaitNextAction once the reveal finishes.
type screen int

const (
	screenMenu screen = iota
	screenPickSource
	screenPickTarget
	screenInput
	screenResult
	screenHistory
	screenHelp
)

// menu entries appended after the conversion operations
const (
	menuHistory = "View history"
	menuHelp    = "Help"
	menuQuit    = "Quit"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the top-level Bubble Tea model for the radix TUI.
type Model struct {
	cfg   *config.Config
	theme *styles.Theme
	keys  KeyMap

	session *convert.Session
	store   *history.Store // nil when history is disabled

	screen screen

	// Menu state
	menuIndex int

	// Base picker state
	pickIndex  int
	pickTarget bool // picking the target base rather than the source
	sourceBase convert.Base
	targetBase convert.Base
	op         convert.Operation

	// Input state
	input textinput.Model

	// Result state
	typewriter    *styles.Typewriter
	fadeStep      int
	cursorVisible bool

	// History state
	viewport    viewport.Model
	entries     []history.Entry
	histIndex   int
	confirmWipe bool

	// Help state
	helpRendered string

	// Feedback
	errMsg    string
	statusMsg string

	width  int
	height int
}

// New creates the TUI model. store may be nil when history is disabled.
func New(cfg *config.Config, store *history.Store) Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)

	var rec convert.Recorder
	if store != nil && cfg.History.Enabled {
		rec = store
	}

	return Model{
		cfg:      cfg,
		theme:    theme,
		keys:     DefaultKeyMap(),
		session:  convert.NewSession(rec, cfg.Convert.GroupSeparator),
		store:    store,
		screen:   screenMenu,
		input:    ti,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// menuItems returns the main menu in display order.
func (m Model) menuItems() []string {
	items := make([]string, 0, len(convert.Operations)+3)
	for _, op := range convert.Operations {
		items = append(items, op.String())
	}
	return append(items, menuHistory, menuHelp, menuQuit)
}

// pickableBases returns the bases offered by the pickers.
func (m Model) pickableBases() []convert.Base {
	return convert.Named
}

// defaultPickIndex preselects the configured default base in a picker.
func (m Model) defaultPickIndex() int {
	for i, b := range m.pickableBases() {
		if b.Radix == m.cfg.Convert.DefaultBase {
			return i
		}
	}
	return 0
}
