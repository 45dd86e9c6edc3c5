// radix TUI - An interactive numeral base workbench for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/radix-tui/internal/cli"
	"github.com/jeranaias/radix-tui/internal/config"
	"github.com/jeranaias/radix-tui/internal/history"
	"github.com/jeranaias/radix-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	if args.NoColor || !cli.ColorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdConvert:
		exitOnError(cli.HandleConvert(args))
	case cli.CmdChar:
		exitOnError(cli.HandleChar(args))
	case cli.CmdHistory:
		exitOnError(cli.HandleHistory(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.Usage()
	default:
		runTUI(args)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the interactive interface.
func runTUI(args *cli.Args) {
	if !cli.IsTTY() {
		fmt.Fprintln(os.Stderr, "Error: the interactive interface needs a terminal (see 'radix help' for one-shot commands)")
		os.Exit(1)
	}

	cfg := config.Global()

	// Open the history store per config. A broken store degrades to an
	// in-memory session rather than blocking the UI.
	var store *history.Store
	if cfg.History.Enabled {
		path, err := cfg.HistoryPath()
		if err == nil {
			store, err = history.Open(path, cfg.History.MaxEntries)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	m := ui.New(cfg, store)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	// Reload the config when the file changes on disk while the TUI runs.
	if path, err := config.ConfigPathTOML(); err == nil {
		watcher, err := config.NewWatcher(path, 250*time.Millisecond, func(next *config.Config) {
			config.SetGlobal(next)
			p.Send(ui.ConfigReloadedMsg{Cfg: next})
		})
		if err == nil {
			defer watcher.Close()
			if err := watcher.Watch(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: config watcher: %v\n", err)
			}
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running radix: %v\n", err)
		os.Exit(1)
	}
}
