// Package resample converts signals between sampling rates, most often the
// synthesizer's control rate and audio rate. Implementations honor a shared
// length contract: resampling n samples from sourceRate to targetRate yields
// exactly round(n * targetRate / sourceRate) samples.
package resample

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Resampler converts a signal from sourceRate to targetRate.
type Resampler interface {
	Resample(in []float64, targetRate, sourceRate float64) []float64
}

// OutputLen is the number of samples every Resampler produces for an input
// of length n.
func OutputLen(n int, targetRate, sourceRate float64) int {
	return int(math.Round(float64(n) * targetRate / sourceRate))
}

// Fourier resamples through the frequency domain: forward FFT, spectrum
// truncation or zero-padding to the target length, inverse FFT. The result
// is band-limited sinc interpolation of the input treated as one period of
// a periodic signal, so mid-block content is reconstructed exactly while
// the block edges wrap.
type Fourier struct{}

// Resample converts in from sourceRate to targetRate.
func (Fourier) Resample(in []float64, targetRate, sourceRate float64) []float64 {
	n := len(in)
	m := OutputLen(n, targetRate, sourceRate)
	if n == 0 || m == 0 {
		return make([]float64, m)
	}
	if m == n {
		out := make([]float64, n)
		copy(out, in)
		return out
	}

	spec := fft.FFTReal(in)
	target := make([]complex128, m)

	// Bins that survive the rate change: DC, the positive frequencies up to
	// the smaller Nyquist, and their negative mirrors.
	keep := n
	if m < keep {
		keep = m
	}
	nyq := keep/2 + 1
	copy(target[:nyq], spec[:nyq])
	for i := 1; i <= keep-nyq; i++ {
		target[m-i] = spec[n-i]
	}

	if keep%2 == 0 {
		half := keep / 2
		if m < n {
			// The surviving Nyquist bin absorbs its discarded negative twin.
			target[half] += spec[n-half]
		} else {
			// The Nyquist energy splits across the two mirrored bins.
			target[half] *= 0.5
			target[m-half] = complex(real(target[half]), -imag(target[half]))
		}
	}

	y := fft.IFFT(target)
	scale := float64(m) / float64(n)
	out := make([]float64, m)
	for i := range out {
		out[i] = real(y[i]) * scale
	}
	return out
}

// ControlToAudio upsamples a control-rate signal to the audio rate with the
// default Fourier method.
func ControlToAudio(ctrl []float64, sampleRate, controlRate float64) []float64 {
	return Fourier{}.Resample(ctrl, sampleRate, controlRate)
}
