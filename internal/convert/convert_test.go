// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/radix-tui/internal/codec"
)

func TestRegistry_ByName(t *testing.T) {
	hex, ok := ByName("hexadecimal")
	require.True(t, ok)
	assert.Equal(t, 16, hex.Radix)

	// Aliases and case folding
	for _, name := range []string{"hex", "HEX", " Hexadecimal "} {
		b, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, 16, b.Radix)
	}

	_, ok = ByName("trinary")
	assert.False(t, ok)
}

func TestRegistry_ByRadix(t *testing.T) {
	b, err := ByRadix(19)
	require.NoError(t, err)
	assert.Equal(t, "nonadecimal", b.Name)

	// Unnamed radix gets a generic name and a working pattern.
	b, err = ByRadix(7)
	require.NoError(t, err)
	assert.Equal(t, "base7", b.Name)
	assert.True(t, b.ValidInput("66"))
	assert.False(t, b.ValidInput("7"))

	_, err = ByRadix(65)
	assert.True(t, errors.Is(err, codec.ErrInvalidArgument))
}

func TestBase_ValidInput(t *testing.T) {
	hex, _ := ByName("hex")
	assert.True(t, hex.ValidInput("00FF"))
	assert.False(t, hex.ValidInput("ff"), "digits are case-sensitive")
	assert.False(t, hex.ValidInput("G"))
	assert.False(t, hex.ValidInput(""))

	b64, _ := ByName("base64")
	assert.True(t, b64.ValidInput("z+/"))

	unary, err := ByRadix(1)
	require.NoError(t, err)
	assert.True(t, unary.ValidInput("0000"))
	assert.True(t, unary.ValidInput(""), "unary zero is the empty run")
	assert.False(t, unary.ValidInput("01"))
}

func TestNumberToBase(t *testing.T) {
	hex, _ := ByName("hex")
	res, err := NumberToBase("255", hex)
	require.NoError(t, err)
	assert.Equal(t, "FF", res.Output)
	assert.Equal(t, "decimal → hexadecimal", res.Kind)
	assert.NotEmpty(t, res.ID)
	assert.False(t, res.At.IsZero())

	_, err = NumberToBase("-4", hex)
	assert.True(t, errors.Is(err, codec.ErrInvalidArgument))

	_, err = NumberToBase("twelve", hex)
	assert.True(t, errors.Is(err, codec.ErrInvalidArgument))
}

func TestBaseToBase(t *testing.T) {
	bin, _ := ByName("binary")
	hex, _ := ByName("hex")
	res, err := BaseToBase("11111111", bin, hex)
	require.NoError(t, err)
	assert.Equal(t, "FF", res.Output)
	assert.Equal(t, "binary → hexadecimal", res.Kind)

	_, err = BaseToBase("121", bin, hex)
	assert.True(t, errors.Is(err, codec.ErrInvalidDigit))
}

func TestTextRoundTrip(t *testing.T) {
	hex, _ := ByName("hex")

	res, err := TextToBase("Hi", hex, " ")
	require.NoError(t, err)
	assert.Equal(t, "48 69", res.Output)

	back, err := BaseToText(res.Output, hex, " ")
	require.NoError(t, err)
	assert.Equal(t, "Hi", back.Output)

	// Non-ASCII survives the round trip via code points.
	res, err = TextToBase("é!", hex, " ")
	require.NoError(t, err)
	assert.Equal(t, "E9 21", res.Output)
	back, err = BaseToText(res.Output, hex, " ")
	require.NoError(t, err)
	assert.Equal(t, "é!", back.Output)
}

func TestBaseToText_Errors(t *testing.T) {
	hex, _ := ByName("hex")

	_, err := BaseToText("48 G9", hex, " ")
	assert.True(t, errors.Is(err, codec.ErrInvalidDigit))

	_, err = BaseToText("110000", hex, " ")
	assert.True(t, errors.Is(err, codec.ErrOutOfRange))

	_, err = BaseToText("   ", hex, " ")
	assert.True(t, errors.Is(err, codec.ErrInvalidArgument))
}

// =============================================================================
// SESSION
// =============================================================================

// captureRecorder collects records for assertions.
type captureRecorder struct {
	records [][3]string
	fail    error
}

func (c *captureRecorder) Record(kind, input, output string) error {
	if c.fail != nil {
		return c.fail
	}
	c.records = append(c.records, [3]string{kind, input, output})
	return nil
}

func TestSession_HappyPath(t *testing.T) {
	rec := &captureRecorder{}
	s := NewSession(rec, " ")
	assert.Equal(t, StateSelectOperation, s.State())

	hex, _ := ByName("hex")
	require.NoError(t, s.Choose(OpNumberToBase, Base{}, hex))
	assert.Equal(t, StateAwaitInput, s.State())

	res, err := s.Submit("255")
	require.NoError(t, err)
	assert.Equal(t, "FF", res.Output)
	assert.Equal(t, StateShowResult, s.State())
	assert.Equal(t, res, s.Last())

	s.Acknowledge()
	assert.Equal(t, StateAwaitNextAction, s.State())

	// Convert again loops back to input with the same operation.
	s.Next(NextConvertAgain)
	assert.Equal(t, StateAwaitInput, s.State())
	res, err = s.Submit("16")
	require.NoError(t, err)
	assert.Equal(t, "10", res.Output)

	s.Acknowledge()
	s.Next(NextChangeOperation)
	assert.Equal(t, StateSelectOperation, s.State())

	require.Len(t, rec.records, 2)
	assert.Equal(t, [3]string{"decimal → hexadecimal", "255", "FF"}, rec.records[0])
}

func TestSession_InvalidInputReprompts(t *testing.T) {
	rec := &captureRecorder{}
	s := NewSession(rec, " ")
	hex, _ := ByName("hex")
	require.NoError(t, s.Choose(OpBaseToNumber, hex, Base{}))

	_, err := s.Submit("XYZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrInvalidDigit))

	// Failure keeps the session waiting for input and records nothing.
	assert.Equal(t, StateAwaitInput, s.State())
	assert.Empty(t, rec.records)

	res, err := s.Submit("FF")
	require.NoError(t, err)
	assert.Equal(t, "255", res.Output)
}

func TestSession_RecorderFailureKeepsResult(t *testing.T) {
	rec := &captureRecorder{fail: errors.New("disk full")}
	s := NewSession(rec, " ")
	hex, _ := ByName("hex")
	require.NoError(t, s.Choose(OpNumberToBase, Base{}, hex))

	res, err := s.Submit("255")
	require.Error(t, err)
	assert.Equal(t, "FF", res.Output, "result survives a history write failure")
	assert.Equal(t, StateShowResult, s.State())
}

func TestSession_NilRecorder(t *testing.T) {
	s := NewSession(nil, "")
	hex, _ := ByName("hex")
	require.NoError(t, s.Choose(OpNumberToBase, Base{}, hex))
	_, err := s.Submit("255")
	assert.NoError(t, err)
}

func TestSession_ChooseOutOfOrder(t *testing.T) {
	s := NewSession(nil, "")
	hex, _ := ByName("hex")
	require.NoError(t, s.Choose(OpNumberToBase, Base{}, hex))
	assert.Error(t, s.Choose(OpBaseToNumber, hex, Base{}), "choose requires the select state")

	_, err := NewSession(nil, "").Submit("255")
	assert.Error(t, err, "submit requires the input state")
}
