// Package analysis provides offline spectral analysis of rendered buffers,
// mainly to verify what the oscillators and filters produce.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/turian/torchsynth/pkg/dsp"
)

// Analyzer measures the spectral content of audio at a known sample rate.
type Analyzer struct {
	sampleRate float64
}

// New creates an analyzer.
func New(sampleRate float64) *Analyzer {
	return &Analyzer{sampleRate: sampleRate}
}

// Hann returns an n-point Hann window.
func Hann(n int) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(dsp.TwoPi*float64(i)/float64(n-1)))
	}
	return w
}

// Magnitude returns the single-sided amplitude spectrum of audio after a
// Hann window: len(audio)/2+1 bins, scaled so a sine of amplitude 1 inside
// the buffer peaks near 1.
func (a *Analyzer) Magnitude(audio []float64) []float64 {
	n := len(audio)
	if n == 0 {
		return nil
	}

	w := Hann(n)
	buf := make([]float64, n)
	sum := 0.0
	for i, v := range audio {
		buf[i] = v * w[i]
		sum += w[i]
	}

	spec := fft.FFTReal(buf)
	out := make([]float64, n/2+1)
	scale := 2 / sum
	for i := range out {
		out[i] = cmplx.Abs(spec[i]) * scale
	}
	return out
}

// BinFrequency returns the center frequency of a spectrum bin for a
// transform of the given size.
func (a *Analyzer) BinFrequency(bin, size int) float64 {
	return float64(bin) * a.sampleRate / float64(size)
}

// PeakFrequency returns the frequency and amplitude of the strongest
// spectral component.
func (a *Analyzer) PeakFrequency(audio []float64) (float64, float64) {
	mag := a.Magnitude(audio)
	peakBin := 0
	peak := 0.0
	for i, m := range mag {
		if m > peak {
			peak = m
			peakBin = i
		}
	}
	return a.BinFrequency(peakBin, len(audio)), peak
}

// BandEnergy sums squared bin amplitudes between two frequencies, both
// inclusive.
func (a *Analyzer) BandEnergy(audio []float64, loHz, hiHz float64) float64 {
	mag := a.Magnitude(audio)
	energy := 0.0
	for i, m := range mag {
		hz := a.BinFrequency(i, len(audio))
		if hz >= loHz && hz <= hiHz {
			energy += m * m
		}
	}
	return energy
}
