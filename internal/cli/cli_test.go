// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/radix-tui/internal/convert"
)

func TestParseArgsNoArguments(t *testing.T) {
	cmd, args := ParseArgs(nil)
	assert.Equal(t, CmdTUI, cmd)
	assert.Empty(t, args.Raw)
}

func TestParseArgsConvert(t *testing.T) {
	cmd, args := ParseArgs([]string{"convert", "255", "--to", "hex"})
	assert.Equal(t, CmdConvert, cmd)
	assert.Equal(t, []string{"255"}, args.Raw)
	assert.Equal(t, "hex", args.To)
	assert.Empty(t, args.From)
}

func TestParseArgsConvertShorthand(t *testing.T) {
	// A bare value is treated as "convert <value>".
	cmd, args := ParseArgs([]string{"FF", "--from", "hex", "--to", "binary"})
	assert.Equal(t, CmdConvert, cmd)
	assert.Equal(t, []string{"FF"}, args.Raw)
	assert.Equal(t, "hex", args.From)
	assert.Equal(t, "binary", args.To)
}

func TestParseArgsEqualsForms(t *testing.T) {
	cmd, args := ParseArgs([]string{"convert", "11", "--from=64", "--to=10"})
	assert.Equal(t, CmdConvert, cmd)
	assert.Equal(t, "64", args.From)
	assert.Equal(t, "10", args.To)
}

func TestParseArgsCharDecode(t *testing.T) {
	cmd, args := ParseArgs([]string{"char", "--decode", "48 69", "--from", "hex"})
	assert.Equal(t, CmdChar, cmd)
	assert.True(t, args.Decode)
	assert.Equal(t, []string{"48 69"}, args.Raw)
	assert.Equal(t, "hex", args.From)
}

func TestParseArgsHistorySubcommands(t *testing.T) {
	cmd, args := ParseArgs([]string{"history", "delete", "3"})
	assert.Equal(t, CmdHistory, cmd)
	assert.Equal(t, "delete", args.Subcommand)
	assert.Equal(t, []string{"3"}, args.Raw)

	cmd, args = ParseArgs([]string{"hist"})
	assert.Equal(t, CmdHistory, cmd)
	assert.Empty(t, args.Subcommand)
}

func TestParseArgsConfigSet(t *testing.T) {
	cmd, args := ParseArgs([]string{"config", "set", "ui.theme", "dark"})
	assert.Equal(t, CmdConfig, cmd)
	assert.Equal(t, "set", args.Subcommand)
	assert.Equal(t, []string{"ui.theme", "dark"}, args.Raw)
}

func TestParseArgsGlobalFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"--json", "--quiet", "--no-color", "history"})
	assert.Equal(t, CmdHistory, cmd)
	assert.True(t, args.JSON)
	assert.True(t, args.Quiet)
	assert.True(t, args.NoColor)
}

func TestParseArgsVersionAndHelp(t *testing.T) {
	cmd, _ := ParseArgs([]string{"version"})
	assert.Equal(t, CmdVersion, cmd)

	cmd, _ = ParseArgs([]string{"--version"})
	assert.Equal(t, CmdVersion, cmd)

	cmd, _ = ParseArgs([]string{"help"})
	assert.Equal(t, CmdHelp, cmd)

	cmd, _ = ParseArgs([]string{"-h"})
	assert.Equal(t, CmdHelp, cmd)
}

func TestResolveBaseNames(t *testing.T) {
	def, _ := convert.ByName("decimal")

	b, err := resolveBase("hex", def)
	require.NoError(t, err)
	assert.Equal(t, 16, b.Radix)

	b, err = resolveBase("64", def)
	require.NoError(t, err)
	assert.Equal(t, 64, b.Radix)

	b, err = resolveBase("", def)
	require.NoError(t, err)
	assert.Equal(t, 10, b.Radix)

	_, err = resolveBase("65", def)
	assert.Error(t, err)

	_, err = resolveBase("nope", def)
	assert.Error(t, err)
}
