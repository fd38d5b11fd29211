package filter

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/turian/torchsynth/pkg/dsp"
)

// Default FIR settings.
const (
	DefaultFIRLength           = 512
	DefaultMovingAverageLength = 32
)

// WindowedSinc is an offline lowpass: it designs a windowed-sinc impulse
// response of length+1 taps and convolves it with the input. Pure and
// stateless; the output is len(audio)+length samples.
type WindowedSinc struct {
	sampleRate float64
	cutoff     float64
	length     int
}

// NewWindowedSinc creates a lowpass with the default cutoff and length.
func NewWindowedSinc(sampleRate float64) *WindowedSinc {
	return &WindowedSinc{
		sampleRate: sampleRate,
		cutoff:     DefaultCutoff,
		length:     DefaultFIRLength,
	}
}

// SetCutoff sets the cutoff frequency in Hz.
func (w *WindowedSinc) SetCutoff(hz float64) error {
	if hz <= 0 {
		return fmt.Errorf("cutoff must be positive, got %f: %w", hz, dsp.ErrInvalidParameter)
	}
	w.cutoff = hz
	return nil
}

// Cutoff returns the cutoff frequency in Hz.
func (w *WindowedSinc) Cutoff() float64 { return w.cutoff }

// SetLength sets the filter length. The impulse response has length+1 taps
// centered on length/2, so the length must be even.
func (w *WindowedSinc) SetLength(length int) error {
	if length <= 0 || length%2 != 0 {
		return fmt.Errorf("filter length must be positive and even, got %d: %w",
			length, dsp.ErrInvalidParameter)
	}
	w.length = length
	return nil
}

// Length returns the filter length.
func (w *WindowedSinc) Length() int { return w.length }

// Impulse designs the windowed-sinc impulse response: length+1 taps of a
// sinc at the cutoff frequency shaped by a Blackman-style window, with the
// whole response normalized by the cutoff's angular increment.
func (w *WindowedSinc) Impulse() []float64 {
	l := w.length
	omega := dsp.TwoPi * w.cutoff / w.sampleRate
	taps := make([]float64, l+1)
	for i := range taps {
		n := float64(i - l/2)
		t := omega
		if n != 0 {
			t = math.Sin(n*omega) / n
		}
		fi := float64(i) / float64(l)
		t *= 0.42 - 0.5*math.Cos(dsp.TwoPi*fi) + 0.08*math.Cos(dsp.TwoPi*fi)
		taps[i] = t
	}
	dsp.Scale(taps, 1/omega)
	return taps
}

// Process convolves audio with the impulse response.
func (w *WindowedSinc) Process(audio []float64) []float64 {
	return Convolve(audio, w.Impulse())
}

// MovingAverage is a boxcar lowpass: every tap is 1/length. Pure and
// stateless; the output is len(audio)+length-1 samples.
type MovingAverage struct {
	length int
}

// NewMovingAverage creates a moving-average filter with the default length.
func NewMovingAverage() *MovingAverage {
	return &MovingAverage{length: DefaultMovingAverageLength}
}

// SetLength sets the number of averaged samples.
func (m *MovingAverage) SetLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("filter length must be positive, got %d: %w",
			length, dsp.ErrInvalidParameter)
	}
	m.length = length
	return nil
}

// Length returns the number of averaged samples.
func (m *MovingAverage) Length() int { return m.length }

// Impulse returns the boxcar impulse response.
func (m *MovingAverage) Impulse() []float64 {
	taps := make([]float64, m.length)
	for i := range taps {
		taps[i] = 1 / float64(m.length)
	}
	return taps
}

// Process convolves audio with the boxcar.
func (m *MovingAverage) Process(audio []float64) []float64 {
	return Convolve(audio, m.Impulse())
}

// Convolve returns the full linear convolution of a and b, length
// len(a)+len(b)-1, computed through the frequency domain.
func Convolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	n := len(a) + len(b) - 1
	x := make([]complex128, n)
	for i, v := range a {
		x[i] = complex(v, 0)
	}
	y := make([]complex128, n)
	for i, v := range b {
		y[i] = complex(v, 0)
	}

	fx := fft.FFT(x)
	fy := fft.FFT(y)
	for i := range fx {
		fx[i] *= fy[i]
	}

	out := make([]float64, n)
	for i, v := range fft.IFFT(fx) {
		out[i] = real(v)
	}
	return out
}
