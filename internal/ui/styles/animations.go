// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the radix TUI.
package styles

import (
	"strings"
	"time"
)

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// LineSpinner - Simple line rotation
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// DotsSpinner - Classic three-dot animation
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// =============================================================================
// TYPEWRITER ANIMATION
// =============================================================================

// TypingCursor characters for the blinking cursor at the reveal point
var TypingCursor = []string{"_", " "}

// CursorBlinkRate is the rate at which the cursor blinks
var CursorBlinkRate = 530 * time.Millisecond

// Typewriter reveals text a few characters per tick, giving the result
// screen its teletype feel. Revealed counts runes, not bytes.
type Typewriter struct {
	text     []rune
	revealed int
	cps      int
}

// NewTypewriter creates a typewriter for text at cps characters per second.
func NewTypewriter(text string, cps int) *Typewriter {
	if cps < 1 {
		cps = 40
	}
	return &Typewriter{text: []rune(text), cps: cps}
}

// TickInterval is the delay between reveal ticks.
func (tw *Typewriter) TickInterval() time.Duration {
	return time.Second / time.Duration(tw.cps)
}

// Tick reveals the next character and reports whether more remain.
func (tw *Typewriter) Tick() bool {
	if tw.revealed < len(tw.text) {
		tw.revealed++
	}
	return tw.revealed < len(tw.text)
}

// Done reports whether the full text is revealed.
func (tw *Typewriter) Done() bool {
	return tw.revealed >= len(tw.text)
}

// Skip reveals everything at once.
func (tw *Typewriter) Skip() {
	tw.revealed = len(tw.text)
}

// Frame returns the currently revealed prefix.
func (tw *Typewriter) Frame() string {
	return string(tw.text[:tw.revealed])
}

// =============================================================================
// FADE ANIMATION
// =============================================================================

// FadeChars are the density stages a character passes through while fading
// in, from faintest to final.
var FadeChars = [...]string{".", ":", "+", "#"}

// FadeSteps is the number of frames in a fade-in, the density stages plus
// the finished frame.
const FadeSteps = len(FadeChars) + 1

// FadeFrame renders text at fade step n: every non-space character is
// replaced by the stage glyph until the final step shows the text itself.
func FadeFrame(text string, step int) string {
	if step < 0 {
		step = 0
	}
	if step >= len(FadeChars) {
		return text
	}
	glyph := FadeChars[step]
	var sb strings.Builder
	for _, r := range text {
		if r == ' ' || r == '\n' {
			sb.WriteRune(r)
		} else {
			sb.WriteString(glyph)
		}
	}
	return sb.String()
}

// FadeInterval is the delay between fade steps.
var FadeInterval = 60 * time.Millisecond

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// ProgressBar characters (ASCII-safe).
var (
	ProgressFull  = "#"
	ProgressEmpty = "-"
)

// RenderProgressBar creates a progress bar string.
// width: total width of the bar in characters
// percent: 0-100 percentage complete
func RenderProgressBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(float64(width) * percent / 100)
	var sb strings.Builder
	sb.Grow(width)
	for i := 0; i < filled; i++ {
		sb.WriteString(ProgressFull)
	}
	for i := filled; i < width; i++ {
		sb.WriteString(ProgressEmpty)
	}
	return sb.String()
}
