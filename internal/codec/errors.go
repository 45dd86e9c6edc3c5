// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package codec

import "fmt"

// =============================================================================
// ERROR TAXONOMY
// =============================================================================

// Sentinel errors for errors.Is checks. The typed errors below match their
// sentinel, so callers can branch on the category without unpacking details:
//
//	if errors.Is(err, codec.ErrInvalidDigit) { ... }
//
// and reach for errors.As only when the offending rune or position matters.
var (
	ErrInvalidArgument = &ArgumentError{}
	ErrInvalidDigit    = &DigitError{}
	ErrOutOfRange      = &RangeError{}
)

// ArgumentError reports a precondition violation: an out-of-range base, a
// negative value, or an empty digit string where one is required.
type ArgumentError struct {
	Reason string
	Base   int
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Reason == "" {
		return "invalid argument"
	}
	return fmt.Sprintf("invalid argument: %s (base %d)", e.Reason, e.Base)
}

// Is matches any other ArgumentError, making ErrInvalidArgument a category
// sentinel rather than a value comparison.
func (e *ArgumentError) Is(target error) bool {
	_, ok := target.(*ArgumentError)
	return ok
}

// DigitError reports a symbol that is not a valid digit in the stated base,
// identifying the rune and its zero-based position in the input.
type DigitError struct {
	Digit    rune
	Position int
	Base     int
}

// Error implements the error interface.
func (e *DigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d for base %d", e.Digit, e.Position, e.Base)
}

// Is matches any other DigitError.
func (e *DigitError) Is(target error) bool {
	_, ok := target.(*DigitError)
	return ok
}

// RangeError reports a value outside the representable domain: a decoded
// magnitude overflowing uint64, or one that cannot map back to a character.
type RangeError struct {
	Value  uint64
	Reason string
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Reason == "" {
		return "value out of range"
	}
	return "out of range: " + e.Reason
}

// Is matches any other RangeError.
func (e *RangeError) Is(target error) bool {
	_, ok := target.(*RangeError)
	return ok
}
