package dsp

import (
	"fmt"
	"math"
)

// Buffer utilities for common audio and control-signal operations.

// Clear zeroes a buffer - no allocations
func Clear(buffer []float64) {
	for i := range buffer {
		buffer[i] = 0
	}
}

// Copy copies from source to destination - no allocations
func Copy(dst, src []float64) {
	copy(dst, src)
}

// Add adds source to destination - no allocations
func Add(dst, src []float64) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
}

// AddScaled adds scaled source to destination - no allocations
func AddScaled(dst, src []float64, scale float64) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] += src[i] * scale
	}
}

// Scale multiplies buffer by a constant - no allocations
func Scale(buffer []float64, scale float64) {
	for i := range buffer {
		buffer[i] *= scale
	}
}

// Mix blends two buffers into dst with a mix factor (0=all src1, 1=all src2).
func Mix(dst, src1, src2 []float64, mix float64) {
	n := len(dst)
	if len(src1) < n {
		n = len(src1)
	}
	if len(src2) < n {
		n = len(src2)
	}

	invMix := 1.0 - mix
	for i := 0; i < n; i++ {
		dst[i] = src1[i]*invMix + src2[i]*mix
	}
}

// Peak finds the maximum absolute value in a buffer
func Peak(buffer []float64) float64 {
	peak := 0.0
	for _, sample := range buffer {
		abs := math.Abs(sample)
		if abs > peak {
			peak = abs
		}
	}
	return peak
}

// RMS calculates the root mean square of a buffer
func RMS(buffer []float64) float64 {
	if len(buffer) == 0 {
		return 0
	}

	sum := 0.0
	for _, sample := range buffer {
		sum += sample * sample
	}

	return math.Sqrt(sum / float64(len(buffer)))
}

// Clamp limits a single value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampBuffer limits samples to [lo, hi] in place.
func ClampBuffer(buffer []float64, lo, hi float64) {
	for i := range buffer {
		if buffer[i] < lo {
			buffer[i] = lo
		} else if buffer[i] > hi {
			buffer[i] = hi
		}
	}
}

// Clip limits samples to [-limit, limit]
func Clip(buffer []float64, limit float64) {
	ClampBuffer(buffer, -limit, limit)
}

// Normalize rescales the buffer into [-1, 1] in place, and only when some
// sample actually falls outside that range. In-range signals pass untouched.
func Normalize(buffer []float64) {
	peak := Peak(buffer)
	if peak <= MaxAmplitude || peak == 0 {
		return
	}
	Scale(buffer, 1.0/peak)
}

// FixLength forces a signal to exactly n samples, truncating or zero-padding
// at the tail.
func FixLength(buffer []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	if len(buffer) == n {
		return buffer
	}
	if len(buffer) > n {
		return buffer[:n]
	}
	out := make([]float64, n)
	copy(out, buffer)
	return out
}

// Crossfade blends two equal-length signals: (1-ratio)*a + ratio*b.
func Crossfade(a, b []float64, ratio float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("crossfade inputs disagree: %d vs %d samples: %w",
			len(a), len(b), ErrLengthMismatch)
	}
	out := make([]float64, len(a))
	inv := 1.0 - ratio
	for i := range a {
		out[i] = a[i]*inv + b[i]*ratio
	}
	return out, nil
}

// Linspace returns n evenly spaced values from start toward stop, excluding
// stop itself.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Concat joins signals into one freshly allocated buffer.
func Concat(buffers ...[]float64) []float64 {
	total := 0
	for _, b := range buffers {
		total += len(b)
	}
	out := make([]float64, 0, total)
	for _, b := range buffers {
		out = append(out, b...)
	}
	return out
}

// Reverse flips a buffer in place and returns it.
func Reverse(buffer []float64) []float64 {
	for i, j := 0, len(buffer)-1; i < j; i, j = i+1, j-1 {
		buffer[i], buffer[j] = buffer[j], buffer[i]
	}
	return buffer
}
