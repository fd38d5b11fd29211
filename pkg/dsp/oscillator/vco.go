// Package oscillator provides the voltage-controlled oscillators: a shared
// phase-accumulation driver specialized into sine, FM, and square-saw
// variants. Oscillators consume control-rate pitch-modulation curves and
// produce audio-rate waveforms with phase continuity across calls.
//
// Modulation signals are bipolar: every sample must lie in [-1, 1]. Feeding
// unipolar [0, 1] curves (envelope outputs) is therefore always valid and
// modulates pitch upward only.
package oscillator

import (
	"fmt"
	"math"

	"github.com/turian/torchsynth/pkg/dsp"
	"github.com/turian/torchsynth/pkg/dsp/param"
	"github.com/turian/torchsynth/pkg/dsp/resample"
)

// VCO is the shared oscillator driver: pitch parameters plus the running
// phase. The phase is an unbounded accumulator in radians, logically mod
// 2π but never wrapped, so successive calls stay continuous by carrying the
// raw final value forward. Variants embed VCO and supply their own
// frequency mapping and waveshape.
type VCO struct {
	sampleRate  float64
	controlRate float64

	pitch    *param.Parameter // base pitch, MIDI note number
	modDepth *param.Parameter // modulation depth, variant-specific units

	phase     float64
	resampler resample.Resampler
	params    *param.Set
}

func newVCO(sampleRate, controlRate float64) *VCO {
	v := &VCO{
		sampleRate:  sampleRate,
		controlRate: controlRate,
		pitch:       param.MustNew("pitch", 69, dsp.MidiMin, dsp.MidiMax),
		modDepth:    param.MustNew("mod_depth", 50, 0, dsp.MidiMax),
		resampler:   resample.Fourier{},
		params:      param.NewSet(),
	}
	v.params.Add(v.pitch, v.modDepth)
	return v
}

// SetPitch sets the base pitch as a MIDI note number.
func (v *VCO) SetPitch(midi float64) { v.pitch.Set(midi) }

// Pitch returns the base pitch as a MIDI note number.
func (v *VCO) Pitch() float64 { return v.pitch.Value() }

// SetModDepth sets the modulation depth. Pitch-space variants read it in
// semitones; FM reads it as a modulation index.
func (v *VCO) SetModDepth(depth float64) { v.modDepth.Set(depth) }

// ModDepth returns the modulation depth.
func (v *VCO) ModDepth() float64 { return v.modDepth.Value() }

// Phase returns the running phase accumulator in radians.
func (v *VCO) Phase() float64 { return v.phase }

// SetPhase positions the accumulator, in radians. The next Generate call
// integrates from here.
func (v *VCO) SetPhase(radians float64) { v.phase = radians }

// Reset zeroes the running phase.
func (v *VCO) Reset() { v.phase = 0 }

// SetResampler replaces the control-to-audio rate converter. The default is
// the Fourier method.
func (v *VCO) SetResampler(r resample.Resampler) { v.resampler = r }

// SampleRate returns the audio rate in Hz.
func (v *VCO) SampleRate() float64 { return v.sampleRate }

// ControlRate returns the control rate in Hz.
func (v *VCO) ControlRate() float64 { return v.controlRate }

// Params exposes the oscillator's parameters by name.
func (v *VCO) Params() *param.Set { return v.params }

// checkMod validates a modulation signal against the bipolar domain.
func checkMod(mod []float64) error {
	for i, m := range mod {
		if m < -1 || m > 1 {
			return fmt.Errorf("modulation sample %d = %f outside [-1, 1]: %w",
				i, m, dsp.ErrOutOfRange)
		}
	}
	return nil
}

// pitchFreq maps a modulation signal to an instantaneous-frequency curve in
// Hz by moving the base pitch linearly in MIDI space.
func (v *VCO) pitchFreq(mod []float64) []float64 {
	pitch := v.pitch.Value()
	depth := v.modDepth.Value()
	freq := make([]float64, len(mod))
	for i, m := range mod {
		freq[i] = dsp.MidiToHz(pitch + depth*m)
	}
	return freq
}

// renderPhase upsamples a control-rate frequency curve to the audio rate
// and integrates it into the phase argument, seeding from the running phase
// plus phaseOffset and persisting the final unwrapped value.
func (v *VCO) renderPhase(freqHz []float64, phaseOffset float64) []float64 {
	up := v.resampler.Resample(freqHz, v.sampleRate, v.controlRate)
	arg := up // reuse: each frequency sample becomes its phase sample
	p := v.phase + phaseOffset
	for i, f := range up {
		p += dsp.TwoPi * f / v.sampleRate
		arg[i] = p
	}
	if len(arg) > 0 {
		v.phase = arg[len(arg)-1]
	}
	return arg
}

// zeroMod builds an all-zero modulation signal covering the duration.
func (v *VCO) zeroMod(seconds float64) []float64 {
	return make([]float64, int(math.Round(seconds*v.controlRate)))
}

// Sine renders cos(phase).
type Sine struct {
	*VCO
}

// NewSine creates a sine oscillator.
func NewSine(sampleRate, controlRate float64) *Sine {
	return &Sine{newVCO(sampleRate, controlRate)}
}

// Generate renders audio for a control-rate modulation signal.
func (s *Sine) Generate(mod []float64) ([]float64, error) {
	return s.GenerateWithPhase(mod, 0)
}

// GenerateWithPhase renders audio with an additional phase offset in
// radians applied for this call only.
func (s *Sine) GenerateWithPhase(mod []float64, phaseOffset float64) ([]float64, error) {
	if err := checkMod(mod); err != nil {
		return nil, err
	}
	arg := s.renderPhase(s.pitchFreq(mod), phaseOffset)
	for i := range arg {
		arg[i] = math.Cos(arg[i])
	}
	return arg, nil
}

// GenerateSeconds renders unmodulated audio covering the duration.
func (s *Sine) GenerateSeconds(seconds float64) ([]float64, error) {
	return s.Generate(s.zeroMod(seconds))
}

// FM is a frequency-modulation oscillator: the modulation signal swings the
// instantaneous frequency around the carrier by modDepth carriers. The
// depth acts as a modulation index, not a raw Hz amount.
type FM struct {
	*VCO
}

// NewFM creates an FM oscillator.
func NewFM(sampleRate, controlRate float64) *FM {
	return &FM{newVCO(sampleRate, controlRate)}
}

// Generate renders audio for a control-rate modulation signal.
func (f *FM) Generate(mod []float64) ([]float64, error) {
	return f.GenerateWithPhase(mod, 0)
}

// GenerateWithPhase renders audio with an additional phase offset in
// radians applied for this call only.
func (f *FM) GenerateWithPhase(mod []float64, phaseOffset float64) ([]float64, error) {
	if err := checkMod(mod); err != nil {
		return nil, err
	}

	f0 := dsp.MidiToHz(f.pitch.Value())
	depthHz := f.modDepth.Value() * f0
	freq := make([]float64, len(mod))
	for i, m := range mod {
		freq[i] = f0 + depthHz*m
	}

	arg := f.renderPhase(freq, phaseOffset)
	for i := range arg {
		arg[i] = math.Cos(arg[i])
	}
	return arg, nil
}

// GenerateSeconds renders the bare carrier covering the duration.
func (f *FM) GenerateSeconds(seconds float64) ([]float64, error) {
	return f.Generate(f.zeroMod(seconds))
}

// SquareSaw morphs between a square wave (shape 0) and a saw-like wave
// (shape 1) using a tanh-shaped band-limited approximation. The number of
// partials adapts to the highest pitch the modulation can reach, keeping
// aliasing down without tracking the modulation itself.
type SquareSaw struct {
	*VCO
	shape *param.Parameter
}

// NewSquareSaw creates a square-saw oscillator.
func NewSquareSaw(sampleRate, controlRate float64) *SquareSaw {
	q := &SquareSaw{
		VCO:   newVCO(sampleRate, controlRate),
		shape: param.MustNew("shape", 0, 0, 1),
	}
	q.params.Add(q.shape)
	return q
}

// SetShape sets the square-to-saw morph position, 0 to 1.
func (q *SquareSaw) SetShape(shape float64) { q.shape.Set(shape) }

// Shape returns the morph position.
func (q *SquareSaw) Shape() float64 { return q.shape.Value() }

// partials bounds the harmonic count by the highest reachable pitch.
func (q *SquareSaw) partials() float64 {
	maxF0 := dsp.MidiToHz(q.pitch.Value() + q.modDepth.Value())
	return 12000.0 / (maxF0 * math.Log10(maxF0))
}

// Generate renders audio for a control-rate modulation signal.
func (q *SquareSaw) Generate(mod []float64) ([]float64, error) {
	return q.GenerateWithPhase(mod, 0)
}

// GenerateWithPhase renders audio with an additional phase offset in
// radians applied for this call only.
func (q *SquareSaw) GenerateWithPhase(mod []float64, phaseOffset float64) ([]float64, error) {
	if err := checkMod(mod); err != nil {
		return nil, err
	}

	arg := q.renderPhase(q.pitchFreq(mod), phaseOffset)
	partials := q.partials()
	shape := q.shape.Value()
	for i := range arg {
		p := arg[i]
		arg[i] = (1 - shape/2) *
			math.Tanh(partials*math.Sin(p)*dsp.Pi/2) *
			(1 + shape*math.Cos(p))
	}
	return arg, nil
}

// GenerateSeconds renders unmodulated audio covering the duration.
func (q *SquareSaw) GenerateSeconds(seconds float64) ([]float64, error) {
	return q.Generate(q.zeroMod(seconds))
}
