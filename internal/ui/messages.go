// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/radix-tui/internal/config"
)

// =============================================================================
// MESSAGES
// =============================================================================

// typewriterTickMsg advances the result typewriter by one character.
type typewriterTickMsg struct{}

// fadeTickMsg advances the result header fade-in by one step.
type fadeTickMsg struct{}

// cursorBlinkMsg toggles the typing cursor.
type cursorBlinkMsg struct{}

// ConfigReloadedMsg carries a freshly loaded configuration from the config
// file watcher. Sent from outside the program via Program.Send.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

// =============================================================================
// TICK COMMANDS
// =============================================================================

func typewriterTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return typewriterTickMsg{}
	})
}

func fadeTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return fadeTickMsg{}
	})
}

func cursorBlink(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return cursorBlinkMsg{}
	})
}
