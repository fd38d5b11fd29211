// Package envelope provides control-rate envelope generators.
package envelope

import (
	"fmt"
	"math"

	"github.com/turian/torchsynth/pkg/dsp"
	"github.com/turian/torchsynth/pkg/dsp/param"
)

// ADSR is an attack-decay-sustain-release envelope generator. It renders
// whole control-rate buffers rather than streaming samples: each segment is
// a power ramp t^alpha, so alpha > 1 bows the curves toward late movement
// and alpha < 1 toward early movement.
type ADSR struct {
	controlRate float64

	attack  *param.Parameter // seconds
	decay   *param.Parameter // seconds
	sustain *param.Parameter // level, 0-1
	release *param.Parameter // seconds
	alpha   *param.Parameter // segment curvature

	params *param.Set
}

// NewADSR creates an envelope generator at the given control rate.
func NewADSR(controlRate float64) *ADSR {
	a := &ADSR{
		controlRate: controlRate,
		attack:      param.MustNew("attack", 0.25, 0, 2, param.WithCurve(0.5)),
		decay:       param.MustNew("decay", 0.25, 0, 2, param.WithCurve(0.5)),
		sustain:     param.MustNew("sustain", 0.5, 0, 1),
		release:     param.MustNew("release", 0.5, 0, 5, param.WithCurve(0.5)),
		alpha:       param.MustNew("alpha", 3, 0.1, 6),
		params:      param.NewSet(),
	}
	a.params.Add(a.attack, a.decay, a.sustain, a.release, a.alpha)
	return a
}

// SetAttack sets the attack time in seconds.
func (a *ADSR) SetAttack(seconds float64) { a.attack.Set(seconds) }

// SetDecay sets the decay time in seconds.
func (a *ADSR) SetDecay(seconds float64) { a.decay.Set(seconds) }

// SetSustain sets the sustain level, 0 to 1.
func (a *ADSR) SetSustain(level float64) { a.sustain.Set(level) }

// SetRelease sets the release time in seconds.
func (a *ADSR) SetRelease(seconds float64) { a.release.Set(seconds) }

// SetAlpha sets the curvature shared by all ramped segments.
func (a *ADSR) SetAlpha(alpha float64) { a.alpha.Set(alpha) }

// AttackTime returns the attack time in seconds.
func (a *ADSR) AttackTime() float64 { return a.attack.Value() }

// DecayTime returns the decay time in seconds.
func (a *ADSR) DecayTime() float64 { return a.decay.Value() }

// SustainLevel returns the sustain level.
func (a *ADSR) SustainLevel() float64 { return a.sustain.Value() }

// ReleaseTime returns the release time in seconds.
func (a *ADSR) ReleaseTime() float64 { return a.release.Value() }

// Alpha returns the segment curvature.
func (a *ADSR) Alpha() float64 { return a.alpha.Value() }

// ControlRate returns the generator's control rate in Hz.
func (a *ADSR) ControlRate() float64 { return a.controlRate }

// Params exposes the envelope's parameters by name.
func (a *ADSR) Params() *param.Set { return a.params }

// ramp renders a rising power ramp covering the given duration. The ramp is
// open-ended: it starts at exactly 0 and stops one step short of 1, so
// consecutive segments join without repeating a value.
func (a *ADSR) ramp(seconds float64) []float64 {
	steps := seconds * a.controlRate
	n := int(math.Floor(steps))
	if n <= 0 {
		return nil
	}
	alpha := a.alpha.Value()
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(float64(i)/steps, alpha)
	}
	return out
}

// Attack renders the attack segment, rising from 0 toward 1.
func (a *ADSR) Attack() []float64 {
	return a.ramp(a.attack.Value())
}

// Decay renders the decay segment, falling from 1 toward the sustain level.
func (a *ADSR) Decay() []float64 {
	s := a.sustain.Value()
	seg := dsp.Reverse(a.ramp(a.decay.Value()))
	for i := range seg {
		seg[i] = seg[i]*(1-s) + s
	}
	return seg
}

// Sustain renders a constant segment at the sustain level covering
// holdSeconds.
func (a *ADSR) Sustain(holdSeconds float64) []float64 {
	n := int(math.Round(holdSeconds * a.controlRate))
	if n <= 0 {
		return nil
	}
	s := a.sustain.Value()
	seg := make([]float64, n)
	for i := range seg {
		seg[i] = s
	}
	return seg
}

// Release renders the release segment, falling from the sustain level
// toward 0.
func (a *ADSR) Release() []float64 {
	seg := dsp.Reverse(a.ramp(a.release.Value()))
	dsp.Scale(seg, a.sustain.Value())
	return seg
}

// Generate renders a full envelope holding the sustain level for
// holdSeconds: attack, decay, sustain, release concatenated. With all three
// ramp times at zero the output is exactly the sustain block.
func (a *ADSR) Generate(holdSeconds float64) ([]float64, error) {
	if holdSeconds < 0 {
		return nil, fmt.Errorf("sustain duration %f must be non-negative: %w",
			holdSeconds, dsp.ErrInvalidParameter)
	}
	return dsp.Concat(a.Attack(), a.Decay(), a.Sustain(holdSeconds), a.Release()), nil
}

// GenerateNote renders an envelope for a note held for noteOnSeconds. The
// attack-decay portion is cut or extended with the sustain level to exactly
// round(noteOnSeconds*controlRate) samples, and the release then falls from
// whatever level the envelope actually reached, so an early note-off
// releases mid-attack without a jump.
func (a *ADSR) GenerateNote(noteOnSeconds float64) ([]float64, error) {
	if noteOnSeconds < 0 {
		return nil, fmt.Errorf("note-on duration %f must be non-negative: %w",
			noteOnSeconds, dsp.ErrInvalidParameter)
	}

	n := int(math.Round(noteOnSeconds * a.controlRate))
	ads := dsp.Concat(a.Attack(), a.Decay())
	if len(ads) > n {
		ads = ads[:n]
	} else if len(ads) < n {
		s := a.sustain.Value()
		pad := make([]float64, n-len(ads))
		for i := range pad {
			pad[i] = s
		}
		ads = dsp.Concat(ads, pad)
	}

	// A zero-length note never reached any level; its release is silent.
	last := 0.0
	if len(ads) > 0 {
		last = ads[len(ads)-1]
	}

	rel := dsp.Reverse(a.ramp(a.release.Value()))
	dsp.Scale(rel, last)

	return dsp.Concat(ads, rel), nil
}
