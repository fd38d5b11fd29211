// Package mix provides signal combination: crossfades, summing, and a
// level-per-channel mixer module.
package mix

import (
	"fmt"
	"math"

	"github.com/turian/torchsynth/pkg/dsp"
	"github.com/turian/torchsynth/pkg/dsp/param"
)

// CrossfadeCosine blends two equal-length signals with equal-power gains:
// position 0 is all a, position 1 is all b.
func CrossfadeCosine(a, b []float64, position float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("crossfade inputs disagree: %d vs %d samples: %w",
			len(a), len(b), dsp.ErrLengthMismatch)
	}

	angle := position * dsp.HalfPi
	gainA := math.Cos(angle)
	gainB := math.Sin(angle)
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i]*gainA + b[i]*gainB
	}
	return out, nil
}

// Sum adds signals sample by sample. Shorter inputs contribute zeros past
// their end; the output is as long as the longest input.
func Sum(inputs ...[]float64) []float64 {
	longest := 0
	for _, in := range inputs {
		if len(in) > longest {
			longest = len(in)
		}
	}
	if longest == 0 {
		return nil
	}

	out := make([]float64, longest)
	for _, in := range inputs {
		dsp.Add(out, in)
	}
	return out
}

// SumWeighted adds signals scaled by per-input gains. One gain per input
// is required.
func SumWeighted(gains []float64, inputs ...[]float64) ([]float64, error) {
	if len(gains) != len(inputs) {
		return nil, fmt.Errorf("%d gains for %d inputs: %w",
			len(gains), len(inputs), dsp.ErrLengthMismatch)
	}

	longest := 0
	for _, in := range inputs {
		if len(in) > longest {
			longest = len(in)
		}
	}
	if longest == 0 {
		return nil, nil
	}

	out := make([]float64, longest)
	for i, in := range inputs {
		dsp.AddScaled(out, in, gains[i])
	}
	return out, nil
}

// Mixer sums a fixed number of channels with a level parameter per channel.
// Levels default to 1/channels, so mixing equal full-scale inputs stays at
// full scale.
type Mixer struct {
	levels []*param.Parameter
	params *param.Set
}

// NewMixer creates a mixer with the given channel count.
func NewMixer(channels int) *Mixer {
	m := &Mixer{
		levels: make([]*param.Parameter, channels),
		params: param.NewSet(),
	}
	for i := range m.levels {
		m.levels[i] = param.MustNew(fmt.Sprintf("level%d", i), 1/float64(channels), 0, 1)
		m.params.Add(m.levels[i])
	}
	return m
}

// Channels returns the channel count.
func (m *Mixer) Channels() int { return len(m.levels) }

// SetLevel sets one channel's level, 0 to 1.
func (m *Mixer) SetLevel(channel int, level float64) error {
	if channel < 0 || channel >= len(m.levels) {
		return fmt.Errorf("channel %d out of %d: %w",
			channel, len(m.levels), dsp.ErrInvalidParameter)
	}
	m.levels[channel].Set(level)
	return nil
}

// Levels returns a copy of the per-channel levels.
func (m *Mixer) Levels() []float64 {
	out := make([]float64, len(m.levels))
	for i, p := range m.levels {
		out[i] = p.Value()
	}
	return out
}

// Params returns the module's parameters.
func (m *Mixer) Params() *param.Set { return m.params }

// Mix sums one input per channel at the configured levels.
func (m *Mixer) Mix(inputs ...[]float64) ([]float64, error) {
	if len(inputs) != len(m.levels) {
		return nil, fmt.Errorf("%d inputs for %d channels: %w",
			len(inputs), len(m.levels), dsp.ErrLengthMismatch)
	}
	return SumWeighted(m.Levels(), inputs...)
}
