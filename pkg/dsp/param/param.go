// Package param provides ranged synthesizer parameters. Every parameter
// carries a [min, max] range and an optional curve shaping its normalized
// [0, 1] view, so module settings can be addressed both in natural units
// (seconds, Hz, MIDI note numbers) and as normalized controls.
package param

import (
	"errors"
	"fmt"
	"math"

	"github.com/turian/torchsynth/pkg/dsp"
)

// ErrInvalidRange reports an impossible parameter definition (min > max, or
// a non-positive curve). Runtime violations use the shared dsp sentinels:
// SetStrict wraps dsp.ErrOutOfRange, Set.Get wraps dsp.ErrInvalidParameter.
var ErrInvalidRange = errors.New("invalid parameter range")

// Parameter is a named value confined to [min, max]. The curve bends the
// normalized view: norm = ((value-min)/(max-min))^curve, so curves below 1
// give fine resolution near min (useful for times and frequencies).
type Parameter struct {
	name  string
	min   float64
	max   float64
	curve float64
	value float64
}

// Option configures optional Parameter properties.
type Option func(*Parameter)

// WithCurve sets the normalization curve. Must be > 0; 1 is linear.
func WithCurve(curve float64) Option {
	return func(p *Parameter) {
		p.curve = curve
	}
}

// New creates a parameter with the given initial value and range. The
// initial value is clamped into [min, max].
func New(name string, value, min, max float64, opts ...Option) (*Parameter, error) {
	if min > max {
		return nil, fmt.Errorf("parameter %q: min %f > max %f: %w",
			name, min, max, ErrInvalidRange)
	}

	p := &Parameter{
		name:  name,
		min:   min,
		max:   max,
		curve: 1.0,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.curve <= 0 {
		return nil, fmt.Errorf("parameter %q: curve %f must be positive: %w",
			name, p.curve, ErrInvalidRange)
	}

	p.value = clamp(value, min, max)
	return p, nil
}

// MustNew is New for statically known ranges; it panics on a bad range.
// Module constructors use it for their built-in parameter tables.
func MustNew(name string, value, min, max float64, opts ...Option) *Parameter {
	p, err := New(name, value, min, max, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Min returns the lower range bound.
func (p *Parameter) Min() float64 { return p.min }

// Max returns the upper range bound.
func (p *Parameter) Max() float64 { return p.max }

// Curve returns the normalization curve.
func (p *Parameter) Curve() float64 { return p.curve }

// Value returns the current value in natural units.
func (p *Parameter) Value() float64 { return p.value }

// Set assigns a value in natural units, clamping it into [min, max].
func (p *Parameter) Set(value float64) {
	p.value = clamp(value, p.min, p.max)
}

// SetStrict assigns a value in natural units and rejects anything outside
// [min, max] instead of clamping.
func (p *Parameter) SetStrict(value float64) error {
	if value < p.min || value > p.max {
		return fmt.Errorf("parameter %q: %f outside [%f, %f]: %w",
			p.name, value, p.min, p.max, dsp.ErrOutOfRange)
	}
	p.value = value
	return nil
}

// Norm returns the normalized [0, 1] view of the current value:
// ((value-min)/(max-min))^curve. A degenerate range (min == max) reports 0.
func (p *Parameter) Norm() float64 {
	if p.max == p.min {
		return 0
	}
	unit := (p.value - p.min) / (p.max - p.min)
	if p.curve == 1 {
		return unit
	}
	return math.Pow(unit, p.curve)
}

// SetNorm assigns from the normalized view. The input is clamped to [0, 1]
// and mapped back through the inverse curve; zero maps to min exactly even
// under fractional curves.
func (p *Parameter) SetNorm(norm float64) {
	norm = clamp(norm, 0, 1)
	if p.curve != 1 && norm != 0 {
		norm = math.Pow(norm, 1.0/p.curve)
	}
	p.value = p.min + (p.max-p.min)*norm
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
