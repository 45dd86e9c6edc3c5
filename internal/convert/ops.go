// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/radix-tui/internal/codec"
)

// =============================================================================
// RESULT
// =============================================================================

// Result is the outcome of one conversion, in the shape the history store
// persists: what kind of conversion, what went in, what came out.
type Result struct {
	ID     string
	Kind   string
	Input  string
	Output string
	At     time.Time
}

func newResult(kind, input, output string) Result {
	return Result{
		ID:     uuid.NewString(),
		Kind:   kind,
		Input:  input,
		Output: output,
		At:     time.Now(),
	}
}

// =============================================================================
// NUMBER CONVERSIONS
// =============================================================================

// NumberToBase converts a decimal number string to its representation in the
// target base.
func NumberToBase(decimal string, to Base) (Result, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(decimal), 10, 64)
	if err != nil {
		return Result{}, &codec.ArgumentError{Reason: fmt.Sprintf("not a non-negative decimal number: %q", decimal), Base: 10}
	}
	out, err := codec.Encode(v, to.Radix)
	if err != nil {
		return Result{}, err
	}
	return newResult("decimal → "+to.Name, decimal, out), nil
}

// BaseToNumber converts a digit string in the source base to decimal.
func BaseToNumber(digits string, from Base) (Result, error) {
	v, err := codec.Decode(digits, from.Radix)
	if err != nil {
		return Result{}, err
	}
	return newResult(from.Name+" → decimal", digits, strconv.FormatUint(v, 10)), nil
}

// BaseToBase converts a digit string between two arbitrary bases.
func BaseToBase(digits string, from, to Base) (Result, error) {
	v, err := codec.Decode(digits, from.Radix)
	if err != nil {
		return Result{}, err
	}
	out, err := codec.Encode(v, to.Radix)
	if err != nil {
		return Result{}, err
	}
	return newResult(from.Name+" → "+to.Name, digits, out), nil
}

// =============================================================================
// TEXT CONVERSIONS
// =============================================================================

// TextToBase encodes each character of text as its code point in the target
// base, joined by sep. With the default single-space separator "Hi" in hex
// becomes "48 69".
func TextToBase(text string, to Base, sep string) (Result, error) {
	if text == "" {
		return Result{}, &codec.ArgumentError{Reason: "empty text", Base: to.Radix}
	}
	if sep == "" {
		sep = " "
	}
	groups := make([]string, 0, len(text))
	for _, r := range text {
		g, err := codec.EncodeRune(r, to.Radix)
		if err != nil {
			return Result{}, err
		}
		groups = append(groups, g)
	}
	return newResult("text → "+to.Name, text, strings.Join(groups, sep)), nil
}

// BaseToText decodes sep-separated digit groups back into characters.
func BaseToText(digits string, from Base, sep string) (Result, error) {
	if sep == "" {
		sep = " "
	}
	trimmed := strings.TrimSpace(digits)
	if trimmed == "" {
		return Result{}, &codec.ArgumentError{Reason: "empty digit string", Base: from.Radix}
	}
	var sb strings.Builder
	for _, g := range strings.Split(trimmed, sep) {
		if g == "" {
			continue // tolerate doubled separators
		}
		r, err := codec.DecodeRune(g, from.Radix)
		if err != nil {
			return Result{}, err
		}
		sb.WriteRune(r)
	}
	return newResult(from.Name+" → text", digits, sb.String()), nil
}
