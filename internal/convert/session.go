// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"fmt"
)

// =============================================================================
// OPERATIONS
// =============================================================================

// Operation identifies the direction of a conversion.
type Operation int

const (
	OpNumberToBase Operation = iota
	OpBaseToNumber
	OpBaseToBase
	OpTextToBase
	OpBaseToText
)

// String returns the menu label for the operation.
func (op Operation) String() string {
	switch op {
	case OpNumberToBase:
		return "Number → base"
	case OpBaseToNumber:
		return "Base → number"
	case OpBaseToBase:
		return "Base → base"
	case OpTextToBase:
		return "Text → base"
	case OpBaseToText:
		return "Base → text"
	default:
		return "Unknown"
	}
}

// Operations lists every operation in menu order.
var Operations = []Operation{OpNumberToBase, OpBaseToNumber, OpBaseToBase, OpTextToBase, OpBaseToText}

// NeedsSourceBase reports whether the operation reads digits in a chosen base.
func (op Operation) NeedsSourceBase() bool {
	return op == OpBaseToNumber || op == OpBaseToBase || op == OpBaseToText
}

// NeedsTargetBase reports whether the operation writes digits in a chosen base.
func (op Operation) NeedsTargetBase() bool {
	return op == OpNumberToBase || op == OpBaseToBase || op == OpTextToBase
}

// =============================================================================
// SESSION STATE MACHINE
// =============================================================================

// State is the position in the sequential prompt/convert/review loop.
type State int

const (
	StateSelectOperation State = iota
	StateAwaitInput
	StateShowResult
	StateAwaitNextAction
)

// NextAction is the user's choice after reviewing a result.
type NextAction int

const (
	NextConvertAgain NextAction = iota // same operation, new input
	NextChangeOperation
	NextQuit
)

// Recorder receives a record after each successful conversion. The history
// store satisfies it; tests substitute their own.
type Recorder interface {
	Record(kind, input, output string) error
}

// nopRecorder is used when history is disabled.
type nopRecorder struct{}

func (nopRecorder) Record(string, string, string) error { return nil }

// Session drives one user's sequential conversion loop. It is deliberately
// synchronous and single-user: every transition happens on the caller's
// goroutine in response to a resolved prompt.
type Session struct {
	state    State
	op       Operation
	from, to Base
	sep      string
	recorder Recorder
	last     Result
}

// NewSession creates a session recording into rec. A nil rec disables
// recording (history off) without changing the flow.
func NewSession(rec Recorder, groupSep string) *Session {
	if rec == nil {
		rec = nopRecorder{}
	}
	if groupSep == "" {
		groupSep = " "
	}
	return &Session{
		state:    StateSelectOperation,
		sep:      groupSep,
		recorder: rec,
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Operation returns the selected operation.
func (s *Session) Operation() Operation { return s.op }

// Last returns the most recent result. Valid in StateShowResult and
// StateAwaitNextAction.
func (s *Session) Last() Result { return s.last }

// Choose selects the operation and its bases, moving to StateAwaitInput.
// Bases the operation does not use are ignored.
func (s *Session) Choose(op Operation, from, to Base) error {
	if s.state != StateSelectOperation {
		return fmt.Errorf("cannot choose an operation in state %d", s.state)
	}
	s.op = op
	s.from = from
	s.to = to
	s.state = StateAwaitInput
	return nil
}

// Submit runs the conversion on the user's input. On success the result is
// recorded and the session moves to StateShowResult. On failure the session
// stays in StateAwaitInput so the caller can re-prompt; the error is the
// codec's, precise about what was wrong.
func (s *Session) Submit(input string) (Result, error) {
	if s.state != StateAwaitInput {
		return Result{}, fmt.Errorf("no input expected in state %d", s.state)
	}

	var res Result
	var err error
	switch s.op {
	case OpNumberToBase:
		res, err = NumberToBase(input, s.to)
	case OpBaseToNumber:
		res, err = BaseToNumber(input, s.from)
	case OpBaseToBase:
		res, err = BaseToBase(input, s.from, s.to)
	case OpTextToBase:
		res, err = TextToBase(input, s.to, s.sep)
	case OpBaseToText:
		res, err = BaseToText(input, s.from, s.sep)
	default:
		err = fmt.Errorf("unknown operation %d", s.op)
	}
	if err != nil {
		return Result{}, err
	}

	// Recording failure should not lose the conversion the user asked for;
	// surface it with the result attached.
	s.last = res
	s.state = StateShowResult
	if recErr := s.recorder.Record(res.Kind, res.Input, res.Output); recErr != nil {
		return res, fmt.Errorf("conversion succeeded but history write failed: %w", recErr)
	}
	return res, nil
}

// Reset abandons the current flow and returns to operation selection.
// Used when the user backs out of a prompt.
func (s *Session) Reset() {
	s.state = StateSelectOperation
}

// Acknowledge moves from the result view to the next-action prompt.
func (s *Session) Acknowledge() {
	if s.state == StateShowResult {
		s.state = StateAwaitNextAction
	}
}

// Next applies the user's post-result choice. NextQuit leaves the session in
// StateAwaitNextAction; the caller owns teardown.
func (s *Session) Next(action NextAction) {
	if s.state != StateAwaitNextAction {
		return
	}
	switch action {
	case NextConvertAgain:
		s.state = StateAwaitInput
	case NextChangeOperation:
		s.state = StateSelectOperation
	case NextQuit:
		// terminal; nothing to reset
	}
}
