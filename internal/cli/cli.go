// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for radix.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdConvert
	CmdChar
	CmdHistory
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	JSON    bool // Output in JSON format
	NoColor bool

	// Conversion flags
	From   string // source base name or number
	To     string // target base name or number
	Decode bool   // char: digits -> text instead of text -> digits

	// Command-specific
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `radix - interactive numeral base workbench

Radix converts numbers and text between bases 1 through 64, with a
persisted history of past conversions.

Usage:
  radix                           Start the interactive TUI (default)
  radix convert <value> [flags]   One-shot base conversion
  radix char <text> [flags]       Encode text characters in a base
  radix char --decode <digits>    Decode digit groups back to text
  radix history [subcommand]      Inspect the conversion history
  radix config [subcommand]       Inspect or edit the configuration
  radix version                   Show version information
  radix help                      Show this help

Conversion flags:
  --from <base>   Source base, by name or number (default: decimal)
  --to <base>     Target base, by name or number (default: from config)

History subcommands:
  list                 Show recorded conversions (default)
  search <query>       Filter conversions by substring
  delete <n>           Delete the n-th most recent entry (0-based)
  clear                Remove all entries
  export <file>        Write the history to a Markdown or JSON file

Config subcommands:
  show                 Print the active configuration (default)
  get <key>            Print one value
  set <key> <value>    Update one value and save
  path                 Print the config file location

Global flags:
  --json      Machine-readable output
  --quiet     Only print the result
  --no-color  Disable colored output

Bases can be named (binary, senary, octal, decimal, duodecimal, hex,
nonadecimal, base32, base36, base62, base64) or numeric (1-64). All bases
share the digit alphabet 0-9A-Za-z+/ and digits are case-sensitive.

Examples:
  radix convert 255 --to hex
  radix convert FF --from hex --to binary
  radix convert 11 --from 64          # 65 in decimal
  radix char "Hi" --to hexadecimal    # 48 69
  radix char --decode "48 69" --from hex
  radix history export history.md
`

// Usage prints the command usage text.
func Usage() {
	fmt.Print(usageText)
}

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, *Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given arguments (excluding the program name).
func ParseArgs(argv []string) (Command, *Args) {
	args := &Args{}

	var positional []string
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--json":
			args.JSON = true
		case arg == "--quiet" || arg == "-q":
			args.Quiet = true
		case arg == "--no-color":
			args.NoColor = true
		case arg == "--decode" || arg == "-d":
			args.Decode = true
		case arg == "--from" || arg == "-f":
			if i+1 < len(argv) {
				i++
				args.From = argv[i]
			}
		case strings.HasPrefix(arg, "--from="):
			args.From = strings.TrimPrefix(arg, "--from=")
		case arg == "--to" || arg == "-t":
			if i+1 < len(argv) {
				i++
				args.To = argv[i]
			}
		case strings.HasPrefix(arg, "--to="):
			args.To = strings.TrimPrefix(arg, "--to=")
		case arg == "--help" || arg == "-h":
			return CmdHelp, args
		case arg == "--version":
			return CmdVersion, args
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) == 0 {
		return CmdTUI, args
	}

	cmd := positional[0]
	rest := positional[1:]

	switch cmd {
	case "convert", "c":
		args.Raw = rest
		return CmdConvert, args
	case "char":
		args.Raw = rest
		return CmdChar, args
	case "history", "hist":
		if len(rest) > 0 {
			args.Subcommand = rest[0]
			args.Raw = rest[1:]
		}
		return CmdHistory, args
	case "config":
		if len(rest) > 0 {
			args.Subcommand = rest[0]
			args.Raw = rest[1:]
		}
		return CmdConfig, args
	case "version", "v":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	default:
		// Unknown word: treat it as a value for convert, matching the
		// common "radix FF --from hex" shorthand.
		args.Raw = positional
		return CmdConvert, args
	}
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("radix %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
