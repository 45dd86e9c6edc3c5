// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypewriter_RevealsInOrder(t *testing.T) {
	tw := NewTypewriter("FF", 40)
	assert.Equal(t, "", tw.Frame())
	assert.False(t, tw.Done())

	more := tw.Tick()
	assert.True(t, more)
	assert.Equal(t, "F", tw.Frame())

	more = tw.Tick()
	assert.False(t, more)
	assert.Equal(t, "FF", tw.Frame())
	assert.True(t, tw.Done())

	// Further ticks are harmless.
	tw.Tick()
	assert.Equal(t, "FF", tw.Frame())
}

func TestTypewriter_Skip(t *testing.T) {
	tw := NewTypewriter("11111111", 40)
	tw.Skip()
	assert.True(t, tw.Done())
	assert.Equal(t, "11111111", tw.Frame())
}

func TestTypewriter_RuneSafe(t *testing.T) {
	tw := NewTypewriter("éa", 40)
	tw.Tick()
	assert.Equal(t, "é", tw.Frame())
}

func TestFadeFrame(t *testing.T) {
	assert.Equal(t, ". ..", FadeFrame("a bc", 0))
	assert.Equal(t, "# ##", FadeFrame("a bc", len(FadeChars)-1))
	assert.Equal(t, "a bc", FadeFrame("a bc", len(FadeChars)))
	assert.Equal(t, "a bc", FadeFrame("a bc", 99))
}

func TestRenderProgressBar(t *testing.T) {
	assert.Equal(t, "##########", RenderProgressBar(10, 100))
	assert.Equal(t, "#####-----", RenderProgressBar(10, 50))
	assert.Equal(t, "----------", RenderProgressBar(10, 0))
	assert.Equal(t, "", RenderProgressBar(0, 50))
	// Out-of-range percentages clamp.
	assert.Equal(t, "##########", RenderProgressBar(10, 150))
	assert.Equal(t, "----------", RenderProgressBar(10, -5))
}

func TestSpinnerDuration(t *testing.T) {
	assert.Equal(t, int64(100), LineSpinner.Duration().Milliseconds())
}
