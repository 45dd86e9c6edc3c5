// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/radix-tui/internal/config"
	"github.com/jeranaias/radix-tui/internal/convert"
	"github.com/jeranaias/radix-tui/internal/history"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.UI.Animations = false // deterministic views
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(cfg, store)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestMenu_Navigation(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, 0, m.menuIndex)

	m = press(m, "down", "down")
	assert.Equal(t, 2, m.menuIndex)

	// Wraps at both ends.
	m = press(m, "up", "up", "up")
	assert.Equal(t, len(m.menuItems())-1, m.menuIndex)
	m = press(m, "down")
	assert.Equal(t, 0, m.menuIndex)
}

func TestFullConversionFlow(t *testing.T) {
	m := testModel(t)

	// Select "Number -> base": goes straight to the target picker.
	m = press(m, "enter")
	assert.Equal(t, screenPickTarget, m.screen)
	assert.Equal(t, convert.OpNumberToBase, m.op)

	// Default base 16 is preselected.
	assert.Equal(t, 16, m.pickableBases()[m.pickIndex].Radix)

	m = press(m, "enter")
	assert.Equal(t, screenInput, m.screen)
	assert.Equal(t, convert.StateAwaitInput, m.session.State())

	m = typeText(m, "255")
	m = press(m, "enter")
	assert.Equal(t, screenResult, m.screen)
	assert.Equal(t, "FF", m.session.Last().Output)
	// Animations are off, so the result is acknowledged immediately.
	assert.Equal(t, convert.StateAwaitNextAction, m.session.State())
	assert.Contains(t, m.View(), "FF")

	// Converting again returns to input with the same operation.
	m = press(m, "enter")
	assert.Equal(t, screenInput, m.screen)

	// The conversion was recorded.
	entries, err := m.store.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "255", entries[0].Input)
}

func TestInput_InvalidDigitsReprompt(t *testing.T) {
	m := testModel(t)

	// "Base -> number" is the second menu item.
	m = press(m, "down", "enter")
	assert.Equal(t, screenPickSource, m.screen)
	m = press(m, "enter") // hexadecimal preselected
	assert.Equal(t, screenInput, m.screen)

	m = typeText(m, "XYZ")
	m = press(m, "enter")
	assert.Equal(t, screenInput, m.screen, "invalid input re-prompts")
	assert.NotEmpty(t, m.errMsg)
	assert.Contains(t, m.View(), m.errMsg)

	// Nothing was recorded for the failed attempt.
	n, err := m.store.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInput_EscReturnsToMenu(t *testing.T) {
	m := testModel(t)
	m = press(m, "enter", "enter") // into input
	require.Equal(t, screenInput, m.screen)

	m = press(m, "esc")
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, convert.StateSelectOperation, m.session.State())
}

func TestBaseToBase_PicksBothBases(t *testing.T) {
	m := testModel(t)

	// "Base -> base" is the third menu item.
	m = press(m, "down", "down", "enter")
	assert.Equal(t, screenPickSource, m.screen)

	// Pick binary as the source.
	for m.pickableBases()[m.pickIndex].Radix != 2 {
		m = press(m, "up")
	}
	m = press(m, "enter")
	assert.Equal(t, screenPickTarget, m.screen)
	m = press(m, "enter") // default hex target

	m = typeText(m, "11111111")
	m = press(m, "enter")
	assert.Equal(t, "FF", m.session.Last().Output)
}

func TestHistoryScreen(t *testing.T) {
	m := testModel(t)
	require.NoError(t, m.store.Record("decimal → hexadecimal", "255", "FF"))
	require.NoError(t, m.store.Record("decimal → binary", "2", "10"))

	// "View history" follows the conversion operations.
	for i := 0; i < len(convert.Operations); i++ {
		m = press(m, "down")
	}
	m = press(m, "enter")
	assert.Equal(t, screenHistory, m.screen)
	require.Len(t, m.entries, 2)
	assert.Contains(t, m.View(), "Conversion history")

	// Delete the focused (most recent) entry.
	m = press(m, "d")
	require.Len(t, m.entries, 1)
	assert.Equal(t, "255", m.entries[0].Input)

	// Clear asks for confirmation first.
	m = press(m, "C")
	assert.True(t, m.confirmWipe)
	assert.Contains(t, m.View(), "Clear the entire history?")
	m = press(m, "y")
	assert.Empty(t, m.entries)

	m = press(m, "esc")
	assert.Equal(t, screenMenu, m.screen)
}

func TestHelpScreen(t *testing.T) {
	m := testModel(t)
	for i := 0; i < len(convert.Operations)+1; i++ {
		m = press(m, "down")
	}
	m = press(m, "enter")
	assert.Equal(t, screenHelp, m.screen)
	assert.NotEmpty(t, m.helpRendered)

	m = press(m, "esc")
	assert.Equal(t, screenMenu, m.screen)
}

func TestResultAnimation_TicksToCompletion(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Animations = true
	m := New(cfg, nil)

	m = press(m, "enter", "enter")
	m = typeText(m, "255")
	m = press(m, "enter")
	require.Equal(t, screenResult, m.screen)
	require.NotNil(t, m.typewriter)
	assert.False(t, m.typewriter.Done())
	assert.Equal(t, convert.StateShowResult, m.session.State())

	// Drive the typewriter to completion ("FF" is two ticks).
	for i := 0; i < 5; i++ {
		next, _ := m.Update(typewriterTickMsg{})
		m = next.(Model)
	}
	assert.True(t, m.typewriter.Done())
	assert.Equal(t, convert.StateAwaitNextAction, m.session.State())
	assert.Contains(t, m.View(), "FF")
}

func TestResultAnimation_KeySkips(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Animations = true
	m := New(cfg, nil)

	m = press(m, "enter", "enter")
	m = typeText(m, "255")
	m = press(m, "enter")
	require.False(t, m.typewriter.Done())

	m = press(m, "enter")
	assert.True(t, m.typewriter.Done())
	assert.Equal(t, convert.StateAwaitNextAction, m.session.State())
}

func TestConfigReload(t *testing.T) {
	m := testModel(t)
	cfg := config.Default()
	cfg.UI.Theme = "light"

	next, _ := m.Update(ConfigReloadedMsg{Cfg: cfg})
	m = next.(Model)
	assert.Equal(t, cfg, m.cfg)
	assert.False(t, m.theme.IsDark)
	assert.Contains(t, m.View(), "configuration reloaded")
}

func TestView_AllScreensRender(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	for _, s := range []screen{screenMenu, screenPickSource, screenPickTarget, screenInput, screenResult, screenHistory, screenHelp} {
		m.screen = s
		out := m.View()
		assert.True(t, strings.Contains(out, "radix"), "screen %d", s)
	}
}
