// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convert provides the per-base converters and the interactive
// conversion session flow for radix.
//
// Every converter is the same generic component parameterized by radix; the
// registry below only attaches display names and input validation patterns to
// the bases people ask for by name.
package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jeranaias/radix-tui/internal/codec"
)

// =============================================================================
// BASE REGISTRY
// =============================================================================

// Base describes one numeral base: its radix, a display name, and a pattern
// matching exactly the digit subset the radix admits. Digits are
// case-sensitive because the shared alphabet assigns upper and lower case
// letters different values.
type Base struct {
	Name    string
	Radix   int
	pattern *regexp.Regexp
}

// Pattern returns the validation pattern for this base's digit strings.
func (b Base) Pattern() *regexp.Regexp {
	return b.pattern
}

// ValidInput reports whether s consists solely of digits valid in this base.
// The empty string is never valid input.
func (b Base) ValidInput(s string) bool {
	return b.pattern.MatchString(s)
}

// String returns "name (base N)".
func (b Base) String() string {
	return fmt.Sprintf("%s (base %d)", b.Name, b.Radix)
}

// Named is the ordered list of bases offered in the menus.
var Named = []Base{
	newBase("binary", 2),
	newBase("senary", 6),
	newBase("octal", 8),
	newBase("decimal", 10),
	newBase("duodecimal", 12),
	newBase("hexadecimal", 16),
	newBase("nonadecimal", 19),
	newBase("base32", 32),
	newBase("base36", 36),
	newBase("base62", 62),
	newBase("base64", 64),
}

var byName = func() map[string]Base {
	m := make(map[string]Base, len(Named))
	for _, b := range Named {
		m[b.Name] = b
	}
	// Common aliases
	m["bin"] = m["binary"]
	m["oct"] = m["octal"]
	m["dec"] = m["decimal"]
	m["hex"] = m["hexadecimal"]
	return m
}()

// ByName looks up a base by its display name or alias ("hex", "octal", ...).
func ByName(name string) (Base, bool) {
	b, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// ByRadix returns the base for any radix in [1, 64], with a generic name if
// the radix has no entry in the menu list.
func ByRadix(radix int) (Base, error) {
	if radix < codec.MinBase || radix > codec.MaxBase {
		return Base{}, &codec.ArgumentError{Reason: "base must be between 1 and 64", Base: radix}
	}
	for _, b := range Named {
		if b.Radix == radix {
			return b, nil
		}
	}
	return newBase(fmt.Sprintf("base%d", radix), radix), nil
}

// newBase builds a Base with its digit-subset pattern. The alphabet contains
// no characters that are special inside a character class, so the prefix can
// be spliced in directly.
func newBase(name string, radix int) Base {
	var pat string
	if radix == 1 {
		// Unary admits only runs of the zero symbol, including the empty run.
		pat = "^" + regexp.QuoteMeta(string(codec.Alphabet[0])) + "*$"
	} else {
		pat = "^[" + codec.Alphabet[:radix] + "]+$"
	}
	return Base{
		Name:    name,
		Radix:   radix,
		pattern: regexp.MustCompile(pat),
	}
}
