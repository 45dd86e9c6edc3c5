// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - History inspection commands for radix.
//
// Command: history [subcommand]
//
// Subcommands:
//   list (default)      Show recorded conversions
//   search <query>      Filter conversions by substring
//   delete <n>          Delete the n-th most recent entry (0-based)
//   clear               Remove all entries
//   export <file>       Write the history to a Markdown or JSON file
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jeranaias/radix-tui/internal/config"
	"github.com/jeranaias/radix-tui/internal/history"
	"github.com/jeranaias/radix-tui/internal/util"
)

// openHistoryStore opens the configured history store for a one-shot command.
func openHistoryStore() (*history.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, fmt.Errorf("history path: %w", err)
	}
	return history.Open(path, cfg.History.MaxEntries)
}

// HandleHistory handles the "history" command.
func HandleHistory(args *Args) error {
	store, err := openHistoryStore()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	switch args.Subcommand {
	case "", "list", "ls":
		entries, err := store.List(0)
		if err != nil {
			return err
		}
		return printEntries(args, entries)

	case "search":
		if len(args.Raw) == 0 {
			return fmt.Errorf("history search: missing query")
		}
		entries, err := store.Search(args.Raw[0])
		if err != nil {
			return err
		}
		return printEntries(args, entries)

	case "delete", "rm":
		if len(args.Raw) == 0 {
			return fmt.Errorf("history delete: missing entry number")
		}
		idx, err := strconv.Atoi(args.Raw[0])
		if err != nil || idx < 0 {
			return fmt.Errorf("history delete: %q is not an entry number", args.Raw[0])
		}
		removed, err := store.DeleteByIndex(idx)
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("history delete: no entry %d", idx)
		}
		if err != nil {
			return err
		}
		if !args.Quiet {
			fmt.Printf("deleted: %s  %s = %s\n", removed.Kind, removed.Input, removed.Output)
		}
		return nil

	case "clear":
		if err := store.Clear(); err != nil {
			return err
		}
		if !args.Quiet {
			fmt.Println("history cleared")
		}
		return nil

	case "export":
		if len(args.Raw) == 0 {
			return fmt.Errorf("history export: missing file name (.md or .json)")
		}
		path := args.Raw[0]
		if err := store.WriteExport(path); err != nil {
			return fmt.Errorf("history export: %w", err)
		}
		if !args.Quiet {
			fmt.Printf("exported history to %s\n", path)
		}
		return nil

	default:
		return fmt.Errorf("history: unknown subcommand %q (list, search, delete, clear, export)", args.Subcommand)
	}
}

// entryJSON is the machine-readable shape of one history entry.
type entryJSON struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
}

func printEntries(args *Args, entries []history.Entry) error {
	if args.JSON {
		out := make([]entryJSON, len(entries))
		for i, e := range entries {
			out[i] = entryJSON{ID: e.ID, Timestamp: e.Timestamp, Kind: e.Kind, Input: e.Input, Output: e.Output}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		if !args.Quiet {
			fmt.Println("no history entries")
		}
		return nil
	}

	width := GetTerminalWidth()
	// Columns: index, timestamp, kind, input = output. The value column gets
	// whatever width is left.
	valueWidth := width - 4 - 17 - 26
	if valueWidth < 20 {
		valueWidth = 20
	}
	for i, e := range entries {
		value := util.TruncateWidth(e.Input+" = "+e.Output, valueWidth)
		fmt.Printf("%3d  %s  %s  %s\n",
			i,
			e.Timestamp.Format("2006-01-02 15:04"),
			util.PadRight(util.TruncateWidth(e.Kind, 24), 24),
			value,
		)
	}
	return nil
}
