// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the radix TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App    lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style

	// ==========================================================================
	// MENU STYLES
	// ==========================================================================

	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style
	MenuHint         lipgloss.Style

	// ==========================================================================
	// INPUT STYLES
	// ==========================================================================

	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputLabel       lipgloss.Style

	// ==========================================================================
	// RESULT STYLES
	// ==========================================================================

	ResultBox    lipgloss.Style
	ResultValue  lipgloss.Style
	ResultKind   lipgloss.Style
	ResultCursor lipgloss.Style

	// ==========================================================================
	// HISTORY STYLES
	// ==========================================================================

	HistoryRow      lipgloss.Style
	HistoryRowFocus lipgloss.Style
	HistoryTime     lipgloss.Style
	HistoryEmpty    lipgloss.Style

	// ==========================================================================
	// FEEDBACK STYLES
	// ==========================================================================

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme constructs a theme for the given mode: "dark", "light" or "auto".
// Auto defers to the terminal's reported background.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch mode {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	// AdaptiveColor picks the variant from lipgloss's own detection; keep the
	// explicit override in sync with it.
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
		Width:        80,
		Height:       24,
	}

	t.App = lipgloss.NewStyle().Padding(1, 2)
	t.Header = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)
	t.Title = lipgloss.NewStyle().Foreground(TextPrimary).Bold(true)

	t.MenuItem = lipgloss.NewStyle().Foreground(TextSecondary).PaddingLeft(2)
	t.MenuItemSelected = lipgloss.NewStyle().Foreground(Cyan).Bold(true).PaddingLeft(0)
	t.MenuHint = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	t.InputPrompt = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.InputText = lipgloss.NewStyle().Foreground(TextPrimary)
	t.InputPlaceholder = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)
	t.InputLabel = lipgloss.NewStyle().Foreground(Purple)

	t.ResultBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Emerald).
		Padding(0, 2)
	t.ResultValue = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	t.ResultKind = lipgloss.NewStyle().Foreground(Purple)
	t.ResultCursor = lipgloss.NewStyle().Foreground(Emerald)

	t.HistoryRow = lipgloss.NewStyle().Foreground(TextSecondary)
	t.HistoryRowFocus = lipgloss.NewStyle().Foreground(TextPrimary).Background(SurfaceBright)
	t.HistoryTime = lipgloss.NewStyle().Foreground(TextMuted)
	t.HistoryEmpty = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	t.Error = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(Amber)
	t.Success = lipgloss.NewStyle().Foreground(Emerald)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay)
	t.ShortcutKey = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().Foreground(TextMuted)

	return t
}

// SetSize records the current terminal dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
