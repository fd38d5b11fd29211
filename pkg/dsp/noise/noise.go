// Package noise provides a seeded white-noise source and the noise mix
// module, which fades a signal toward noise by a blend ratio.
package noise

import (
	"math/rand"

	"github.com/turian/torchsynth/pkg/dsp"
	"github.com/turian/torchsynth/pkg/dsp/param"
)

// DefaultRatio is the default noise blend ratio.
const DefaultRatio = 0.25

// Generator produces uniform white noise in [-1, 1] from a seeded source,
// so sequences are reproducible.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator creates a generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

// Reseed restarts the sequence from a new seed.
func (g *Generator) Reseed(seed int64) {
	g.rand = rand.New(rand.NewSource(seed))
}

// Next returns the next noise sample.
func (g *Generator) Next() float64 {
	return g.rand.Float64()*2 - 1
}

// Generate returns n fresh noise samples.
func (g *Generator) Generate(n int) []float64 {
	buf := make([]float64, n)
	g.Fill(buf)
	return buf
}

// Fill overwrites a buffer with noise.
func (g *Generator) Fill(buf []float64) {
	for i := range buf {
		buf[i] = g.Next()
	}
}

// Add mixes scaled noise into an existing buffer.
func (g *Generator) Add(buf []float64, gain float64) {
	for i := range buf {
		buf[i] += g.Next() * gain
	}
}

// Noise blends audio with white noise: ratio 0 passes the input through,
// ratio 1 replaces it entirely.
type Noise struct {
	ratio  *param.Parameter
	gen    *Generator
	params *param.Set
}

// New creates a noise module with the default blend ratio.
func New(seed int64) *Noise {
	n := &Noise{
		ratio:  param.MustNew("ratio", DefaultRatio, 0, 1),
		gen:    NewGenerator(seed),
		params: param.NewSet(),
	}
	n.params.Add(n.ratio)
	return n
}

// SetRatio sets the blend ratio, 0 to 1.
func (n *Noise) SetRatio(ratio float64) { n.ratio.Set(ratio) }

// Ratio returns the blend ratio.
func (n *Noise) Ratio() float64 { return n.ratio.Value() }

// Params returns the module's parameters.
func (n *Noise) Params() *param.Set { return n.params }

// Apply returns audio crossfaded toward fresh noise by the blend ratio.
// The input is not modified.
func (n *Noise) Apply(audio []float64) []float64 {
	out, _ := dsp.Crossfade(audio, n.gen.Generate(len(audio)), n.ratio.Value()) // lengths match by construction
	return out
}
