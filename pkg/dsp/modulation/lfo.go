// Package modulation provides control-rate modulation sources. An LFO
// renders slow periodic curves whose samples stay inside [-1, 1], the
// domain the oscillators and filters accept as modulation input.
package modulation

import (
	"math"

	"github.com/turian/torchsynth/pkg/dsp"
	"github.com/turian/torchsynth/pkg/dsp/noise"
	"github.com/turian/torchsynth/pkg/dsp/param"
)

// Waveform selects the LFO shape.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Square
	Saw
	SampleHold
)

// String returns the shape's name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Saw:
		return "saw"
	case SampleHold:
		return "samplehold"
	}
	return "unknown"
}

// LFO frequency bounds in Hz.
const (
	MinFrequency = 0.01
	MaxFrequency = 20.0
)

// LFO is a low-frequency oscillator rendered at the control rate. Phase
// persists across calls, so successive Generate calls join continuously.
type LFO struct {
	controlRate float64
	waveform    Waveform

	frequency *param.Parameter
	depth     *param.Parameter
	offset    *param.Parameter
	params    *param.Set

	phase float64 // cycles, wrapped to [0, 1)

	gen           *noise.Generator
	hold          float64
	holdRemaining int
}

// NewLFO creates a sine LFO at 1 Hz with full depth and no offset.
func NewLFO(controlRate float64) *LFO {
	l := &LFO{
		controlRate: controlRate,
		waveform:    Sine,
		frequency:   param.MustNew("frequency", 1, MinFrequency, MaxFrequency),
		depth:       param.MustNew("depth", 1, 0, 1),
		offset:      param.MustNew("offset", 0, -1, 1),
		params:      param.NewSet(),
		gen:         noise.NewGenerator(1),
	}
	l.params.Add(l.frequency, l.depth, l.offset)
	return l
}

// SetWaveform selects the shape.
func (l *LFO) SetWaveform(w Waveform) { l.waveform = w }

// Waveform returns the shape.
func (l *LFO) Waveform() Waveform { return l.waveform }

// SetFrequency sets the rate in Hz, clamped to [MinFrequency, MaxFrequency].
func (l *LFO) SetFrequency(hz float64) { l.frequency.Set(hz) }

// Frequency returns the rate in Hz.
func (l *LFO) Frequency() float64 { return l.frequency.Value() }

// SetDepth sets the modulation depth, 0 to 1.
func (l *LFO) SetDepth(depth float64) { l.depth.Set(depth) }

// Depth returns the modulation depth.
func (l *LFO) Depth() float64 { return l.depth.Value() }

// SetOffset sets the DC offset, -1 to 1.
func (l *LFO) SetOffset(offset float64) { l.offset.Set(offset) }

// Offset returns the DC offset.
func (l *LFO) Offset() float64 { return l.offset.Value() }

// SetPhase positions the cycle, wrapping to [0, 1).
func (l *LFO) SetPhase(phase float64) { l.phase = phase - math.Floor(phase) }

// Phase returns the cycle position in [0, 1).
func (l *LFO) Phase() float64 { return l.phase }

// Params returns the module's parameters.
func (l *LFO) Params() *param.Set { return l.params }

// Reseed restarts the sample-and-hold source from a new seed.
func (l *LFO) Reseed(seed int64) {
	l.gen.Reseed(seed)
	l.hold = 0
	l.holdRemaining = 0
}

// Reset rewinds the phase and the sample-and-hold state.
func (l *LFO) Reset() {
	l.phase = 0
	l.hold = 0
	l.holdRemaining = 0
}

// shape evaluates the waveform at the current phase.
func (l *LFO) shape() float64 {
	switch l.waveform {
	case Sine:
		return math.Sin(dsp.TwoPi * l.phase)
	case Triangle:
		if l.phase < 0.5 {
			return 4*l.phase - 1
		}
		return 3 - 4*l.phase
	case Square:
		if l.phase < 0.5 {
			return 1
		}
		return -1
	case Saw:
		return 2*l.phase - 1
	case SampleHold:
		if l.holdRemaining <= 0 {
			l.hold = l.gen.Next()
			l.holdRemaining = int(l.controlRate / l.frequency.Value())
		}
		l.holdRemaining--
		return l.hold
	}
	return 0
}

// step renders one sample and advances the phase.
func (l *LFO) step() float64 {
	out := l.shape()*l.depth.Value() + l.offset.Value()
	l.phase += l.frequency.Value() / l.controlRate
	if l.phase >= 1 {
		l.phase -= 1
	}
	return dsp.Clamp(out, -1, 1)
}

// Fill overwrites a control-rate buffer with LFO samples.
func (l *LFO) Fill(buf []float64) {
	for i := range buf {
		buf[i] = l.step()
	}
}

// Generate renders round(seconds*controlRate) samples.
func (l *LFO) Generate(seconds float64) []float64 {
	buf := make([]float64, int(math.Round(seconds*l.controlRate)))
	l.Fill(buf)
	return buf
}
