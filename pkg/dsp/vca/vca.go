// Package vca provides the voltage-controlled amplifier: it shapes an
// audio-rate signal with a control-rate envelope. The envelope is clamped
// to [0, 1], converted to the audio rate, and multiplied sample by sample
// into the audio, which is clamped to [-1, 1] and forced to the converted
// envelope's length. Apply is pure; a VCA carries no signal state.
package vca

import (
	"github.com/turian/torchsynth/pkg/dsp"
	"github.com/turian/torchsynth/pkg/dsp/resample"
)

// VCA multiplies audio by a control-rate envelope.
type VCA struct {
	sampleRate  float64
	controlRate float64
	resampler   resample.Resampler
}

// New creates a VCA for the given audio and control rates.
func New(sampleRate, controlRate float64) *VCA {
	return &VCA{
		sampleRate:  sampleRate,
		controlRate: controlRate,
		resampler:   resample.Fourier{},
	}
}

// SetResampler replaces the control-to-audio rate converter.
func (v *VCA) SetResampler(r resample.Resampler) { v.resampler = r }

// Apply returns audio shaped by the envelope. The output length always
// equals the audio-rate length of the envelope; audio is zero-padded or
// truncated to match. Neither input slice is modified.
func (v *VCA) Apply(envelope, audio []float64) []float64 {
	env := make([]float64, len(envelope))
	copy(env, envelope)
	dsp.ClampBuffer(env, dsp.ControlMin, dsp.ControlMax)

	sig := make([]float64, len(audio))
	copy(sig, audio)
	dsp.ClampBuffer(sig, dsp.MinAmplitude, dsp.MaxAmplitude)

	out := v.resampler.Resample(env, v.sampleRate, v.controlRate)
	sig = dsp.FixLength(sig, len(out))
	for i := range out {
		out[i] *= sig[i]
	}
	return out
}
