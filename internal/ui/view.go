// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"

	"github.com/jeranaias/radix-tui/internal/ui/styles"
	"github.com/jeranaias/radix-tui/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenMenu:
		body = m.viewMenu()
	case screenPickSource, screenPickTarget:
		body = m.viewPicker()
	case screenInput:
		body = m.viewInput()
	case screenResult:
		body = m.viewResult()
	case screenHistory:
		body = m.viewHistory()
	case screenHelp:
		body = m.viewHelp()
	}

	var sb strings.Builder
	sb.WriteString(m.theme.Header.Render("radix") + "\n\n")
	sb.WriteString(body)

	if m.errMsg != "" {
		sb.WriteString("\n\n" + m.theme.Error.Render("! "+m.errMsg))
	} else if m.statusMsg != "" {
		sb.WriteString("\n\n" + m.theme.Success.Render(m.statusMsg))
	}

	sb.WriteString("\n\n" + m.viewStatusBar())
	return m.theme.App.Render(sb.String())
}

// =============================================================================
// SCREENS
// =============================================================================

func (m Model) viewMenu() string {
	var sb strings.Builder
	sb.WriteString(m.theme.Title.Render("What would you like to do?") + "\n\n")
	for i, item := range m.menuItems() {
		if i == m.menuIndex {
			sb.WriteString(m.theme.MenuItemSelected.Render("> "+item) + "\n")
		} else {
			sb.WriteString(m.theme.MenuItem.Render(item) + "\n")
		}
	}
	return sb.String()
}

func (m Model) viewPicker() string {
	label := "Convert from which base?"
	if m.screen == screenPickTarget {
		label = "Convert to which base?"
	}

	var sb strings.Builder
	sb.WriteString(m.theme.Title.Render(label) + "\n")
	sb.WriteString(m.theme.MenuHint.Render(m.op.String()) + "\n\n")
	for i, b := range m.pickableBases() {
		line := b.String()
		if i == m.pickIndex {
			sb.WriteString(m.theme.MenuItemSelected.Render("> "+line) + "\n")
		} else {
			sb.WriteString(m.theme.MenuItem.Render(line) + "\n")
		}
	}
	return sb.String()
}

func (m Model) viewInput() string {
	var sb strings.Builder
	sb.WriteString(m.theme.Title.Render(m.op.String()) + "\n")
	sb.WriteString(m.theme.InputLabel.Render(m.inputBasesLine()) + "\n\n")
	sb.WriteString(m.input.View())
	return sb.String()
}

// inputBasesLine describes the chosen bases for the input header.
func (m Model) inputBasesLine() string {
	switch {
	case m.op.NeedsSourceBase() && m.op.NeedsTargetBase():
		return fmt.Sprintf("%s → %s", m.sourceBase.String(), m.targetBase.String())
	case m.op.NeedsSourceBase():
		return "from " + m.sourceBase.String()
	default:
		return "to " + m.targetBase.String()
	}
}

func (m Model) viewResult() string {
	res := m.session.Last()

	kind := res.Kind
	if m.fadeStep < styles.FadeSteps {
		kind = styles.FadeFrame(kind, m.fadeStep)
	}

	value := res.Output
	cursor := ""
	if m.typewriter != nil {
		value = m.typewriter.Frame()
		if !m.typewriter.Done() && m.cursorVisible {
			cursor = m.theme.ResultCursor.Render(styles.TypingCursor[0])
		}
	}

	var sb strings.Builder
	sb.WriteString(m.theme.ResultKind.Render(kind) + "\n\n")
	sb.WriteString(m.theme.ResultBox.Render(
		m.theme.InputText.Render(res.Input) + "\n" +
			m.theme.ResultValue.Render(value) + cursor,
	))

	if m.typewriter == nil || m.typewriter.Done() {
		sb.WriteString("\n\n" + m.theme.MenuHint.Render(
			"Enter convert again · Tab change operation · h history · q quit"))
	}
	return sb.String()
}

func (m Model) viewHistory() string {
	var sb strings.Builder
	sb.WriteString(m.theme.Title.Render("Conversion history") + "\n\n")

	switch {
	case m.store == nil:
		sb.WriteString(m.theme.HistoryEmpty.Render("History is disabled in the configuration."))
	case len(m.entries) == 0:
		sb.WriteString(m.theme.HistoryEmpty.Render("No conversions recorded yet."))
	default:
		sb.WriteString(m.viewport.View())
	}

	if m.confirmWipe {
		sb.WriteString("\n\n" + m.theme.Warning.Render("Clear the entire history? (y/N)"))
	}
	return sb.String()
}

// renderHistoryRows renders the entry list with the focused row highlighted.
func (m Model) renderHistoryRows() string {
	width := m.viewport.Width
	if width < 20 {
		width = 80
	}

	var sb strings.Builder
	for i, e := range m.entries {
		line := fmt.Sprintf("%s  %s  %s = %s",
			e.Timestamp.Format("2006-01-02 15:04"),
			util.PadRight(util.TruncateWidth(e.Kind, 28), 28),
			util.TruncateWidth(e.Input, 20),
			util.TruncateWidth(e.Output, 24),
		)
		line = util.TruncateWidth(line, width)
		if i == m.histIndex {
			sb.WriteString(m.theme.HistoryRowFocus.Render(line))
		} else {
			sb.WriteString(m.theme.HistoryRow.Render(line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) viewHelp() string {
	return m.viewport.View()
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) viewStatusBar() string {
	var parts []string
	add := func(k, desc string) {
		parts = append(parts, m.theme.ShortcutKey.Render(k)+" "+m.theme.ShortcutDesc.Render(desc))
	}

	switch m.screen {
	case screenMenu:
		add("↑↓", "navigate")
		add("Enter", "select")
		add("q", "quit")
	case screenPickSource, screenPickTarget:
		add("↑↓", "navigate")
		add("Enter", "select")
		add("Esc", "back")
	case screenInput:
		add("Enter", "convert")
		add("Esc", "back")
	case screenResult:
		add("Enter", "again")
		add("Tab", "change")
		add("q", "quit")
	case screenHistory:
		add("↑↓", "navigate")
		add("d", "delete")
		add("C", "clear")
		add("Esc", "back")
	case screenHelp:
		add("↑↓", "scroll")
		add("Esc", "back")
	}

	return m.theme.StatusBar.Width(max(m.width-4, 20)).Render(strings.Join(parts, "  "))
}
