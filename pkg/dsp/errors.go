package dsp

import "errors"

// Sentinel errors shared across the synthesizer packages. All are terminal
// contract violations, wrapped with context by the functions that raise
// them (fmt.Errorf("...: %w", ...)) and tested with errors.Is; no control
// flow is built on them.
var (
	// ErrLengthMismatch reports two signals that must agree in length but
	// do not, e.g. an audio buffer and its per-sample modulation curve.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrOutOfRange reports a runtime value outside its declared domain,
	// e.g. a modulation sample beyond [-1, 1] or a strict parameter set
	// beyond [min, max].
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidParameter reports an out-of-domain construction or call
	// argument, e.g. a negative duration or an unknown parameter name.
	ErrInvalidParameter = errors.New("invalid parameter")
)
