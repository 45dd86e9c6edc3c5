// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/radix-tui/internal/convert"
	"github.com/jeranaias/radix-tui/internal/history"
	"github.com/jeranaias/radix-tui/internal/ui/styles"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		if m.viewport.Height < 3 {
			m.viewport.Height = 3
		}
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Cfg
		m.theme = styles.NewTheme(msg.Cfg.UI.Theme)
		m.statusMsg = "configuration reloaded"
		return m, nil

	case typewriterTickMsg:
		if m.screen != screenResult || m.typewriter == nil {
			return m, nil
		}
		if m.typewriter.Tick() {
			return m, typewriterTick(m.typewriter.TickInterval())
		}
		m.session.Acknowledge()
		return m, nil

	case fadeTickMsg:
		if m.screen != screenResult || m.fadeStep >= styles.FadeSteps {
			return m, nil
		}
		m.fadeStep++
		if m.fadeStep < styles.FadeSteps {
			return m, fadeTick(styles.FadeInterval)
		}
		return m, nil

	case cursorBlinkMsg:
		if m.screen != screenResult || m.typewriter == nil || m.typewriter.Done() {
			m.cursorVisible = false
			return m, nil
		}
		m.cursorVisible = !m.cursorVisible
		return m, cursorBlink(styles.CursorBlinkRate)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && m.screen != screenInput {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenPickSource, screenPickTarget:
			return m.updatePicker(msg)
		case screenInput:
			return m.updateInput(msg)
		case screenResult:
			return m.updateResult(msg)
		case screenHistory:
			return m.updateHistory(msg)
		case screenHelp:
			return m.updateHelp(msg)
		}
	}

	return m, nil
}

// =============================================================================
// MENU
// =============================================================================

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()
	switch {
	case key.Matches(msg, m.keys.Help):
		return m.openHelp()
	case key.Matches(msg, m.keys.History):
		return m.openHistory()
	case key.Matches(msg, m.keys.Up):
		m.menuIndex--
		if m.menuIndex < 0 {
			m.menuIndex = len(items) - 1
		}
	case key.Matches(msg, m.keys.Down):
		m.menuIndex++
		if m.menuIndex >= len(items) {
			m.menuIndex = 0
		}
	case key.Matches(msg, m.keys.Select):
		m.errMsg = ""
		m.statusMsg = ""
		if m.menuIndex < len(convert.Operations) {
			m.op = convert.Operations[m.menuIndex]
			return m.startConversion()
		}
		switch items[m.menuIndex] {
		case menuHistory:
			return m.openHistory()
		case menuHelp:
			return m.openHelp()
		case menuQuit:
			return m, tea.Quit
		}
	}
	return m, nil
}

// startConversion routes a chosen operation through the base pickers it
// needs before input.
func (m Model) startConversion() (tea.Model, tea.Cmd) {
	m.pickIndex = m.defaultPickIndex()
	if m.op.NeedsSourceBase() {
		m.pickTarget = false
		m.screen = screenPickSource
		return m, nil
	}
	m.pickTarget = true
	m.screen = screenPickTarget
	return m, nil
}

// =============================================================================
// BASE PICKERS
// =============================================================================

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bases := m.pickableBases()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.pickIndex--
		if m.pickIndex < 0 {
			m.pickIndex = len(bases) - 1
		}
	case key.Matches(msg, m.keys.Down):
		m.pickIndex++
		if m.pickIndex >= len(bases) {
			m.pickIndex = 0
		}
	case key.Matches(msg, m.keys.Back):
		m.screen = screenMenu
	case key.Matches(msg, m.keys.Select):
		if m.screen == screenPickSource {
			m.sourceBase = bases[m.pickIndex]
			if m.op.NeedsTargetBase() {
				m.pickIndex = m.defaultPickIndex()
				m.pickTarget = true
				m.screen = screenPickTarget
				return m, nil
			}
			return m.startInput()
		}
		m.targetBase = bases[m.pickIndex]
		return m.startInput()
	}
	return m, nil
}

// startInput binds the session to the chosen operation and focuses the
// input field.
func (m Model) startInput() (tea.Model, tea.Cmd) {
	m.session.Reset()
	if err := m.session.Choose(m.op, m.sourceBase, m.targetBase); err != nil {
		m.errMsg = err.Error()
		m.screen = screenMenu
		return m, nil
	}
	m.input.SetValue("")
	m.input.Placeholder = m.inputPlaceholder()
	m.errMsg = ""
	m.screen = screenInput
	m.input.Focus()
	return m, textinput.Blink
}

// inputPlaceholder hints at the expected input for the current operation.
func (m Model) inputPlaceholder() string {
	switch m.op {
	case convert.OpNumberToBase:
		return "decimal number, e.g. 255"
	case convert.OpTextToBase:
		return "text to encode"
	case convert.OpBaseToText:
		return fmt.Sprintf("%s digit groups, e.g. 48 69", m.sourceBase.Name)
	default:
		return fmt.Sprintf("%s digits", m.sourceBase.Name)
	}
}

// =============================================================================
// INPUT
// =============================================================================

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.session.Reset()
		m.errMsg = ""
		m.screen = screenMenu
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		value := m.input.Value()

		// Pure digit operations get the cheap pattern check first so the
		// error names the base rather than a single digit.
		if (m.op == convert.OpBaseToNumber || m.op == convert.OpBaseToBase) &&
			!m.sourceBase.ValidInput(value) {
			m.errMsg = fmt.Sprintf("not a valid %s string", m.sourceBase.String())
			return m, nil
		}

		res, err := m.session.Submit(value)
		if err != nil && res.Output == "" {
			// Conversion failed: stay here and re-prompt.
			m.errMsg = err.Error()
			return m, nil
		}
		if err != nil {
			// Conversion succeeded but the history write did not.
			m.statusMsg = err.Error()
		}
		return m.showResult(res)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// showResult moves to the result screen, animated when configured.
func (m Model) showResult(res convert.Result) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.screen = screenResult
	m.typewriter = styles.NewTypewriter(res.Output, m.cfg.UI.TypewriterCPS)

	if !m.cfg.UI.Animations {
		m.typewriter.Skip()
		m.fadeStep = styles.FadeSteps
		m.session.Acknowledge()
		return m, nil
	}

	m.fadeStep = 0
	m.cursorVisible = true
	return m, tea.Batch(
		typewriterTick(m.typewriter.TickInterval()),
		fadeTick(styles.FadeInterval),
		cursorBlink(styles.CursorBlinkRate),
	)
}

// =============================================================================
// RESULT
// =============================================================================

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any choice before the reveal finishes just skips the animation.
	if m.typewriter != nil && !m.typewriter.Done() {
		m.typewriter.Skip()
		m.fadeStep = styles.FadeSteps
		m.cursorVisible = false
		m.session.Acknowledge()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Again):
		m.session.Next(convert.NextConvertAgain)
		m.input.SetValue("")
		m.errMsg = ""
		m.screen = screenInput
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Change), key.Matches(msg, m.keys.Back):
		m.session.Next(convert.NextChangeOperation)
		m.screen = screenMenu
		return m, nil

	case key.Matches(msg, m.keys.History):
		m.session.Next(convert.NextChangeOperation)
		return m.openHistory()
	}
	return m, nil
}

// =============================================================================
// HISTORY
// =============================================================================

func (m Model) openHistory() (tea.Model, tea.Cmd) {
	m.screen = screenHistory
	m.histIndex = 0
	m.confirmWipe = false
	m.reloadHistory()
	return m, nil
}

func (m *Model) reloadHistory() {
	m.entries = nil
	if m.store == nil {
		return
	}
	entries, err := m.store.List(0)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.entries = entries
	if m.histIndex >= len(entries) {
		m.histIndex = len(entries) - 1
	}
	if m.histIndex < 0 {
		m.histIndex = 0
	}
	m.viewport.SetContent(m.renderHistoryRows())
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmWipe {
		switch msg.String() {
		case "y", "Y", "enter":
			if m.store != nil {
				if err := m.store.Clear(); err != nil {
					m.errMsg = err.Error()
				} else {
					m.statusMsg = "history cleared"
				}
			}
			m.confirmWipe = false
			m.reloadHistory()
		default:
			m.confirmWipe = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.histIndex > 0 {
			m.histIndex--
		}
		m.viewport.SetContent(m.renderHistoryRows())
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		if m.histIndex < len(m.entries)-1 {
			m.histIndex++
		}
		m.viewport.SetContent(m.renderHistoryRows())
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Delete):
		if m.store != nil && len(m.entries) > 0 {
			removed, err := m.store.DeleteByIndex(m.histIndex)
			switch {
			case err == nil:
				m.statusMsg = fmt.Sprintf("deleted %s", removed.Kind)
			case !errors.Is(err, history.ErrNotFound):
				m.errMsg = err.Error()
			}
			m.reloadHistory()
		}
	case key.Matches(msg, m.keys.Clear):
		if len(m.entries) > 0 {
			m.confirmWipe = true
		}
	case key.Matches(msg, m.keys.Back):
		m.errMsg = ""
		m.statusMsg = ""
		m.screen = screenMenu
	}
	return m, nil
}

// =============================================================================
// HELP
// =============================================================================

func (m Model) openHelp() (tea.Model, tea.Cmd) {
	if m.helpRendered == "" {
		m.helpRendered = renderHelp(m.width)
	}
	m.viewport.SetContent(m.helpRendered)
	m.viewport.GotoTop()
	m.screen = screenHelp
	return m, nil
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenMenu
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	}
	return m, nil
}
