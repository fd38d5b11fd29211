package dsp

import "math"

// MidiToHz converts a (fractional) MIDI note number to frequency in Hz.
func MidiToHz(midi float64) float64 {
	return A4Hz * math.Pow(2, (midi-A4Midi)/12.0)
}

// HzToMidi converts a frequency in Hz to a fractional MIDI note number.
// A small epsilon keeps 0 Hz finite.
func HzToMidi(hz float64) float64 {
	return 12.0*math.Log2((hz+HzEpsilon)/A4Hz) + A4Midi
}
