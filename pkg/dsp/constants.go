// Package dsp provides the signal primitives shared by the synthesizer
// modules: rates, tuning, buffer operations, and the errors they raise.
package dsp

// Common constants used throughout the synthesizer packages.
const (
	// Rates
	DefaultSampleRate  = 44100.0 // audio-rate sampling frequency (Hz)
	DefaultControlRate = 441.0   // control-rate sampling frequency (Hz)

	// Common sample rates
	SampleRate32k  = 32000.0
	SampleRate44k1 = 44100.0
	SampleRate48k  = 48000.0
	SampleRate88k2 = 88200.0
	SampleRate96k  = 96000.0
	SampleRate192k = 192000.0

	// Tuning
	A4Hz    = 440.0 // concert pitch
	A4Midi  = 69.0  // MIDI note number of A4
	MidiMin = 0.0
	MidiMax = 127.0

	// Signal ranges
	MaxAmplitude = 1.0  // audio samples live in [-1, 1]
	MinAmplitude = -1.0
	ControlMin   = 0.0 // control samples live in [0, 1]
	ControlMax   = 1.0

	// Gain/Level constants
	MinDB     = -200.0 // minimum dB value (effectively silence)
	UnityGain = 1.0    // unity gain (0 dB)

	// Phase constants
	TwoPi  = 6.283185307179586
	Pi     = 3.141592653589793
	HalfPi = 1.5707963267948966

	// Small values for comparisons
	Epsilon   = 1e-6
	HzEpsilon = 1e-7 // keeps HzToMidi finite at 0 Hz
)
