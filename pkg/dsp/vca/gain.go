package vca

import (
	"math"

	"github.com/turian/torchsynth/pkg/dsp"
)

// LinearToDb converts a linear amplitude to decibels.
// Returns dsp.MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return dsp.MinDB
	}
	return 20.0 * math.Log10(linear)
}

// DbToLinear converts a decibel value to linear amplitude.
// Values <= dsp.MinDB return 0.
func DbToLinear(db float64) float64 {
	if db <= dsp.MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// ApplyGain scales a buffer in place by a linear gain factor.
func ApplyGain(buffer []float64, gain float64) {
	for i := range buffer {
		buffer[i] *= gain
	}
}

// ApplyDb scales a buffer in place by a dB gain.
func ApplyDb(buffer []float64, db float64) {
	ApplyGain(buffer, DbToLinear(db))
}

// Fade scales a buffer in place by a linear ramp between two gain values.
func Fade(buffer []float64, startGain, endGain float64) {
	if len(buffer) == 0 {
		return
	}
	if len(buffer) == 1 {
		buffer[0] *= startGain
		return
	}

	delta := (endGain - startGain) / float64(len(buffer)-1)
	gain := startGain
	for i := range buffer {
		buffer[i] *= gain
		gain += delta
	}
}
