// Package filter provides the recursive and finite-impulse-response filters:
// a state variable filter with four simultaneous responses and offline FIR
// design with full convolution.
package filter

import (
	"fmt"
	"math"

	"github.com/turian/torchsynth/pkg/dsp"
)

// Mode selects which of the simultaneous filter responses a call returns.
type Mode int

const (
	LowPass Mode = iota
	BandPass
	BandStop
	HighPass
)

// String returns the conventional short name for the mode.
func (m Mode) String() string {
	switch m {
	case LowPass:
		return "LPF"
	case BandPass:
		return "BPF"
	case BandStop:
		return "BSF"
	case HighPass:
		return "HPF"
	}
	return "unknown"
}

// Default filter settings.
const (
	DefaultCutoff    = 1000.0
	DefaultResonance = 0.707
)

// SVF is a state variable filter: a per-sample recursion computing the
// lowpass, bandpass, bandstop, and highpass responses simultaneously, with
// the configured Mode choosing the output. Process starts from cleared
// state on every call; ProcessContinuous carries state between calls for
// block-wise streaming.
type SVF struct {
	sampleRate    float64
	mode          Mode
	cutoff        float64
	resonance     float64
	selfOscillate bool

	h0, h1 float64
}

// NewSVF creates a filter with the default cutoff and resonance.
func NewSVF(mode Mode, sampleRate float64) *SVF {
	return &SVF{
		sampleRate: sampleRate,
		mode:       mode,
		cutoff:     DefaultCutoff,
		resonance:  DefaultResonance,
	}
}

// SetMode selects the response the filter outputs.
func (f *SVF) SetMode(mode Mode) { f.mode = mode }

// Mode returns the configured response.
func (f *SVF) Mode() Mode { return f.mode }

// SetCutoff sets the cutoff frequency in Hz.
func (f *SVF) SetCutoff(hz float64) error {
	if hz <= 0 {
		return fmt.Errorf("cutoff must be positive, got %f: %w", hz, dsp.ErrInvalidParameter)
	}
	f.cutoff = hz
	return nil
}

// Cutoff returns the cutoff frequency in Hz.
func (f *SVF) Cutoff() float64 { return f.cutoff }

// SetResonance sets the resonance. Larger values ring longer.
func (f *SVF) SetResonance(resonance float64) error {
	if resonance <= 0 {
		return fmt.Errorf("resonance must be positive, got %f: %w", resonance, dsp.ErrInvalidParameter)
	}
	f.resonance = resonance
	return nil
}

// Resonance returns the resonance.
func (f *SVF) Resonance() float64 { return f.resonance }

// SetSelfOscillate removes all damping, so an impulse rings indefinitely.
func (f *SVF) SetSelfOscillate(on bool) { f.selfOscillate = on }

// Reset clears the recursion state used by ProcessContinuous.
func (f *SVF) Reset() { f.h0, f.h1 = 0, 0 }

// coeffs holds the per-cutoff recursion coefficients.
type coeffs struct {
	c0, c1, rho float64
}

func (f *SVF) coefficients(cutoff float64) coeffs {
	g := math.Tan(dsp.Pi * cutoff / f.sampleRate)
	r := 0.0
	if !f.selfOscillate {
		r = 1 / (2 * f.resonance)
	}
	return coeffs{
		c0:  1 / (1 + 2*r*g + g*g),
		c1:  g,
		rho: 2*r + g,
	}
}

// step advances the recursion by one sample and returns the configured
// response.
func (f *SVF) step(x float64, co coeffs) float64 {
	hpf := co.c0 * (x - co.rho*f.h0 - f.h1)
	bpf := co.c1*hpf + f.h0
	lpf := co.c1*bpf + f.h1
	f.h0 = co.c1*hpf + bpf
	f.h1 = co.c1*bpf + lpf

	switch f.mode {
	case LowPass:
		return lpf
	case BandPass:
		return bpf
	case BandStop:
		return hpf + lpf
	default:
		return hpf
	}
}

// Process filters audio starting from cleared state, so equal inputs give
// equal outputs regardless of call history.
func (f *SVF) Process(audio []float64) []float64 {
	f.Reset()
	return f.ProcessContinuous(audio)
}

// ProcessContinuous filters audio carrying the recursion state from the
// previous call, so a signal may be filtered block by block. Call Reset
// between unrelated signals.
func (f *SVF) ProcessContinuous(audio []float64) []float64 {
	co := f.coefficients(f.cutoff)
	out := make([]float64, len(audio))
	for i, x := range audio {
		out[i] = f.step(x, co)
	}
	return out
}

// ProcessModulated filters audio with a per-sample cutoff modulation signal,
// starting from cleared state. The effective cutoff at sample i is
// cutoff + mod[i]*amount, with the coefficients recomputed every sample.
// mod must be nil or exactly as long as audio.
func (f *SVF) ProcessModulated(audio, mod []float64, amount float64) ([]float64, error) {
	if mod != nil && len(mod) != len(audio) {
		return nil, fmt.Errorf("cutoff modulation length %d != audio length %d: %w",
			len(mod), len(audio), dsp.ErrLengthMismatch)
	}
	if mod == nil || amount == 0 {
		return f.Process(audio), nil
	}

	f.Reset()
	out := make([]float64, len(audio))
	for i, x := range audio {
		out[i] = f.step(x, f.coefficients(f.cutoff+mod[i]*amount))
	}
	return out, nil
}
