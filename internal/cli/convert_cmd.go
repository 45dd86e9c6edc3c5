// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// convert_cmd.go - One-shot conversion commands for radix.
//
// Command: convert <value> [--from BASE] [--to BASE]
// Command: char <text> [--to BASE] | char --decode <digits> [--from BASE]
//
// Examples:
//   radix convert 255 --to hex              FF
//   radix convert FF --from hex --to binary 11111111
//   radix convert 11 --from 64              65
//   radix char "Hi" --to hexadecimal        48 69
//   radix char --decode "48 69" --from hex  Hi
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jeranaias/radix-tui/internal/codec"
	"github.com/jeranaias/radix-tui/internal/config"
	"github.com/jeranaias/radix-tui/internal/convert"
	"github.com/jeranaias/radix-tui/internal/history"
)

// =============================================================================
// BASE RESOLUTION
// =============================================================================

// resolveBase turns a --from/--to flag value into a Base. The value may be a
// base name ("hex"), a numeric radix ("16"), or empty, in which case def is
// used.
func resolveBase(value string, def convert.Base) (convert.Base, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	if b, ok := convert.ByName(value); ok {
		return b, nil
	}
	radix, err := strconv.Atoi(value)
	if err != nil {
		return convert.Base{}, fmt.Errorf("unknown base %q (use a name like hex or a number 1-64)", value)
	}
	return convert.ByRadix(radix)
}

// defaultTarget returns the configured default target base, falling back to
// hexadecimal if the config value is somehow out of range.
func defaultTarget(cfg *config.Config) convert.Base {
	b, err := convert.ByRadix(cfg.Convert.DefaultBase)
	if err != nil {
		b, _ = convert.ByName("hexadecimal")
	}
	return b
}

// decimalBase is the implicit source base for convert when --from is omitted.
func decimalBase() convert.Base {
	b, _ := convert.ByName("decimal")
	return b
}

// =============================================================================
// OUTPUT
// =============================================================================

// resultJSON is the machine-readable shape of a one-shot conversion.
type resultJSON struct {
	Kind   string `json:"kind"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

func printResult(args *Args, res convert.Result) {
	if args.JSON {
		data, _ := json.MarshalIndent(resultJSON{Kind: res.Kind, Input: res.Input, Output: res.Output}, "", "  ")
		fmt.Println(string(data))
		return
	}
	if args.Quiet {
		fmt.Println(res.Output)
		return
	}
	fmt.Printf("%s: %s = %s\n", res.Kind, res.Input, res.Output)
}

// describeError renders conversion errors with the detail the typed errors
// carry, so a bad digit is reported with its position.
func describeError(err error) string {
	var dig *codec.DigitError
	if errors.As(err, &dig) {
		return fmt.Sprintf("invalid digit %q at position %d for base %d", dig.Digit, dig.Position, dig.Base)
	}
	return err.Error()
}

// recordResult appends the result to the history store when history is
// enabled. Recording failures are reported but do not fail the conversion.
func recordResult(cfg *config.Config, res convert.Result) {
	if !cfg.History.Enabled {
		return
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		return
	}
	store, err := history.Open(path, cfg.History.MaxEntries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(res.Kind, res.Input, res.Output); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
	}
}

// =============================================================================
// CONVERT COMMAND
// =============================================================================

// HandleConvert handles "radix convert <value>". With no --from the value is
// read as decimal; with no --to the configured default base is used. When
// both source and target are given the conversion goes digit string to digit
// string.
func HandleConvert(args *Args) error {
	if len(args.Raw) == 0 {
		return fmt.Errorf("convert: missing value (try: radix convert 255 --to hex)")
	}
	value := strings.Join(args.Raw, " ")

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	var res convert.Result
	switch {
	case args.From == "":
		// decimal -> target
		to, err := resolveBase(args.To, defaultTarget(cfg))
		if err != nil {
			return err
		}
		res, err = convert.NumberToBase(value, to)
		if err != nil {
			return errors.New(describeError(err))
		}
	case args.To == "":
		// source -> decimal
		from, err := resolveBase(args.From, decimalBase())
		if err != nil {
			return err
		}
		res, err = convert.BaseToNumber(value, from)
		if err != nil {
			return errors.New(describeError(err))
		}
	default:
		from, err := resolveBase(args.From, decimalBase())
		if err != nil {
			return err
		}
		to, err := resolveBase(args.To, defaultTarget(cfg))
		if err != nil {
			return err
		}
		res, err = convert.BaseToBase(value, from, to)
		if err != nil {
			return errors.New(describeError(err))
		}
	}

	recordResult(cfg, res)
	printResult(args, res)
	return nil
}

// =============================================================================
// CHAR COMMAND
// =============================================================================

// HandleChar handles "radix char <text>", encoding each character's code
// point in the target base. With --decode it reverses the mapping, reading
// separator-joined digit groups back into text.
func HandleChar(args *Args) error {
	if len(args.Raw) == 0 {
		return fmt.Errorf("char: missing text (try: radix char \"Hi\" --to hex)")
	}
	value := strings.Join(args.Raw, " ")

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	sep := cfg.Convert.GroupSeparator

	var res convert.Result
	if args.Decode {
		from, err := resolveBase(args.From, defaultTarget(cfg))
		if err != nil {
			return err
		}
		res, err = convert.BaseToText(value, from, sep)
		if err != nil {
			return errors.New(describeError(err))
		}
	} else {
		to, err := resolveBase(args.To, defaultTarget(cfg))
		if err != nil {
			return err
		}
		res, err = convert.TextToBase(value, to, sep)
		if err != nil {
			return errors.New(describeError(err))
		}
	}

	recordResult(cfg, res)
	printResult(args, res)
	return nil
}
