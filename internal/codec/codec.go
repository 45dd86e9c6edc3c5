// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package codec implements positional numeral encoding and decoding over a
// shared 64-symbol digit alphabet.
//
// The alphabet assigns every symbol a fixed index; a symbol's index is its
// digit value in every base that contains it, so "F" is 15 in base 16, base
// 36 and base 64 alike. The alphabet is a persistence contract: history
// entries written by older versions must keep decoding, so its order never
// changes.
//
// All functions are pure and safe for concurrent use.
package codec

import (
	"math"
	"strings"
)

// =============================================================================
// ALPHABET
// =============================================================================

// Alphabet is the ordered digit set shared by all supported bases.
// Index 0-63; no '=' padding symbol.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz+/"

const (
	// MinBase is the smallest supported radix (degenerate unary).
	MinBase = 1

	// MaxBase is the largest supported radix.
	MaxBase = 64
)

// maxUnaryLength bounds the output of base-1 encoding, whose length equals
// the value itself. Larger values would allocate the run verbatim.
const maxUnaryLength = 1 << 26

// digitIndex maps an ASCII byte to its alphabet index, or -1.
var digitIndex [128]int8

func init() {
	for i := range digitIndex {
		digitIndex[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		digitIndex[Alphabet[i]] = int8(i)
	}
}

// =============================================================================
// ENCODE
// =============================================================================

// Encode renders value as a digit string in the given base.
//
// Base 1 is unary: the zero symbol repeated value times, so Encode(0, 1)
// returns the empty string. For base >= 2, Encode(0, base) returns "0" (one
// zero symbol, never empty). The asymmetry is deliberate and load-bearing for
// round-trips of stored history.
func Encode(value uint64, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", &ArgumentError{Reason: "base must be between 1 and 64", Base: base}
	}

	if base == 1 {
		if value > maxUnaryLength {
			return "", &RangeError{Value: value, Reason: "value too large for unary encoding"}
		}
		return strings.Repeat(string(Alphabet[0]), int(value)), nil
	}

	if value == 0 {
		return string(Alphabet[0]), nil
	}

	// A uint64 needs at most 64 digits (base 2). Fill from the end.
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for value > 0 {
		i--
		buf[i] = Alphabet[value%b]
		value /= b
	}
	return string(buf[i:]), nil
}

// =============================================================================
// DECODE
// =============================================================================

// Decode evaluates a digit string in the given base and returns its value.
//
// Evaluation is left-to-right Horner form. Leading zero symbols are accepted
// and insignificant: Decode("00FF", 16) == Decode("FF", 16). A symbol outside
// the alphabet, or with an index at or above the base, fails with a
// DigitError naming the rune and its position.
//
// Base 1 counts a run of the zero symbol; the empty string decodes to 0,
// mirroring Encode(0, 1). For base >= 2 the empty string has no defined
// magnitude and fails with an ArgumentError.
func Decode(digits string, base int) (uint64, error) {
	if base < MinBase || base > MaxBase {
		return 0, &ArgumentError{Reason: "base must be between 1 and 64", Base: base}
	}

	if base == 1 {
		for pos, r := range []rune(digits) {
			if r != rune(Alphabet[0]) {
				return 0, &DigitError{Digit: r, Position: pos, Base: base}
			}
		}
		return uint64(len([]rune(digits))), nil
	}

	if digits == "" {
		return 0, &ArgumentError{Reason: "empty digit string", Base: base}
	}

	var acc uint64
	b := uint64(base)
	for pos, r := range []rune(digits) {
		idx := indexOf(r)
		if idx < 0 || idx >= base {
			return 0, &DigitError{Digit: r, Position: pos, Base: base}
		}
		// Overflow guard: acc*b + idx must fit in uint64.
		if acc > (math.MaxUint64-uint64(idx))/b {
			return 0, &RangeError{Reason: "value exceeds 64-bit range"}
		}
		acc = acc*b + uint64(idx)
	}
	return acc, nil
}

// indexOf returns the alphabet index of r, or -1 if r is not a digit symbol.
func indexOf(r rune) int {
	if r < 0 || r >= 128 {
		return -1
	}
	return int(digitIndex[r])
}

// =============================================================================
// CODE POINT COMPOSITION
// =============================================================================

// EncodeRune encodes a character's code point as a digit string in the given
// base. Used by the text converters, which process input rune by rune.
func EncodeRune(r rune, base int) (string, error) {
	if r < 0 {
		return "", &ArgumentError{Reason: "invalid rune", Base: base}
	}
	return Encode(uint64(r), base)
}

// DecodeRune decodes a digit string and maps the value back to a single
// character. Values beyond U+10FFFF, or inside the UTF-16 surrogate range,
// cannot map to a character and fail with a RangeError.
func DecodeRune(digits string, base int) (rune, error) {
	v, err := Decode(digits, base)
	if err != nil {
		return 0, err
	}
	if v > 0x10FFFF {
		return 0, &RangeError{Value: v, Reason: "value exceeds the Unicode code space"}
	}
	if v >= 0xD800 && v <= 0xDFFF {
		return 0, &RangeError{Value: v, Reason: "value is a surrogate code point"}
	}
	return rune(v), nil
}
