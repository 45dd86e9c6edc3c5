// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration commands for radix.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Print the active configuration
//   get <key>           Print one value
//   set <key> <value>   Update one value and save
//   path                Print the config file location
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jeranaias/radix-tui/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args *Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)

	case "get":
		if len(args.Raw) == 0 {
			return fmt.Errorf("config get: missing key (one of: %v)", config.Keys())
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		value, err := cfg.Get(args.Raw[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil

	case "set":
		if len(args.Raw) < 2 {
			return fmt.Errorf("config set: usage: radix config set <key> <value>")
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		key, value := args.Raw[0], args.Raw[1]
		if err := cfg.Set(key, value); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		if !args.Quiet {
			fmt.Printf("%s = %s\n", key, value)
		}
		return nil

	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	default:
		return fmt.Errorf("config: unknown subcommand %q (show, get, set, path)", args.Subcommand)
	}
}

func handleConfigShow(args *Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if args.JSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			continue
		}
		fmt.Printf("%-24s %s\n", key, value)
	}
	return nil
}
