// Package synth composes the signal modules into playable voices.
package synth

import (
	"fmt"

	"github.com/turian/torchsynth/pkg/dsp"
	"github.com/turian/torchsynth/pkg/dsp/debug"
	"github.com/turian/torchsynth/pkg/dsp/envelope"
	"github.com/turian/torchsynth/pkg/dsp/noise"
	"github.com/turian/torchsynth/pkg/dsp/oscillator"
	"github.com/turian/torchsynth/pkg/dsp/vca"
)

// EnvelopeConfig holds the timing settings for one ADSR.
type EnvelopeConfig struct {
	Attack  float64 // seconds
	Decay   float64 // seconds
	Sustain float64 // level, 0 to 1
	Release float64 // seconds
	Alpha   float64 // segment curvature, 1 is linear
}

// DrumConfig fully specifies a drum voice. Every part of the graph is
// explicit, so two voices built from equal configs render identically
// from equal state.
type DrumConfig struct {
	SampleRate  float64
	ControlRate float64

	// NoteOn is how long the gate stays open, in seconds.
	NoteOn float64

	PitchEnvelope EnvelopeConfig
	AmpEnvelope   EnvelopeConfig

	// The tonal layer blends a sine with a square/saw, VCORatio 0 being
	// all sine and 1 all square/saw.
	SinePitch      float64 // MIDI note
	SineDepth      float64 // pitch envelope depth in semitones
	SquareSawPitch float64
	SquareSawDepth float64
	SquareSawShape float64 // 0 square, 1 saw
	VCORatio       float64

	NoiseRatio float64
	Seed       int64
}

// DefaultDrumConfig returns a percussive voice: a swept sine layered with
// a low square, a dash of noise, and a fast pitch envelope.
func DefaultDrumConfig() DrumConfig {
	return DrumConfig{
		SampleRate:  dsp.DefaultSampleRate,
		ControlRate: dsp.DefaultControlRate,
		NoteOn:      0.75,
		PitchEnvelope: EnvelopeConfig{
			Attack:  0.25,
			Decay:   0.25,
			Sustain: 0.25,
			Release: 0.25,
			Alpha:   3,
		},
		AmpEnvelope: EnvelopeConfig{
			Attack:  0.25,
			Decay:   0.25,
			Sustain: 0.9,
			Release: 0.5,
			Alpha:   3,
		},
		SinePitch:      69,
		SineDepth:      12,
		SquareSawPitch: 40,
		SquareSawDepth: 6,
		SquareSawShape: 0,
		VCORatio:       0.5,
		NoiseRatio:     0.25,
		Seed:           1,
	}
}

// Drum is a percussion voice: a pitch envelope sweeps two oscillators, the
// blend picks up noise, and an amplitude envelope shapes the result.
type Drum struct {
	cfg DrumConfig

	pitchEnv  *envelope.ADSR
	ampEnv    *envelope.ADSR
	sine      *oscillator.Sine
	squareSaw *oscillator.SquareSaw
	noise     *noise.Noise
	amp       *vca.VCA
}

// NewDrum builds a drum voice from the config.
func NewDrum(cfg DrumConfig) (*Drum, error) {
	if cfg.SampleRate <= 0 || cfg.ControlRate <= 0 {
		return nil, fmt.Errorf("rates must be positive, got %f/%f: %w",
			cfg.SampleRate, cfg.ControlRate, dsp.ErrInvalidParameter)
	}
	if cfg.NoteOn < 0 {
		return nil, fmt.Errorf("note-on duration %f is negative: %w",
			cfg.NoteOn, dsp.ErrInvalidParameter)
	}
	if cfg.VCORatio < 0 || cfg.VCORatio > 1 {
		return nil, fmt.Errorf("vco ratio %f outside [0, 1]: %w",
			cfg.VCORatio, dsp.ErrInvalidParameter)
	}
	if cfg.NoiseRatio < 0 || cfg.NoiseRatio > 1 {
		return nil, fmt.Errorf("noise ratio %f outside [0, 1]: %w",
			cfg.NoiseRatio, dsp.ErrInvalidParameter)
	}

	d := &Drum{
		cfg:       cfg,
		pitchEnv:  newEnvelope(cfg.ControlRate, cfg.PitchEnvelope),
		ampEnv:    newEnvelope(cfg.ControlRate, cfg.AmpEnvelope),
		sine:      oscillator.NewSine(cfg.SampleRate, cfg.ControlRate),
		squareSaw: oscillator.NewSquareSaw(cfg.SampleRate, cfg.ControlRate),
		noise:     noise.New(cfg.Seed),
		amp:       vca.New(cfg.SampleRate, cfg.ControlRate),
	}

	d.sine.SetPitch(cfg.SinePitch)
	d.sine.SetModDepth(cfg.SineDepth)
	d.squareSaw.SetPitch(cfg.SquareSawPitch)
	d.squareSaw.SetModDepth(cfg.SquareSawDepth)
	d.squareSaw.SetShape(cfg.SquareSawShape)
	d.noise.SetRatio(cfg.NoiseRatio)
	return d, nil
}

func newEnvelope(controlRate float64, cfg EnvelopeConfig) *envelope.ADSR {
	env := envelope.NewADSR(controlRate)
	env.SetAttack(cfg.Attack)
	env.SetDecay(cfg.Decay)
	env.SetSustain(cfg.Sustain)
	env.SetRelease(cfg.Release)
	env.SetAlpha(cfg.Alpha)
	return env
}

// Config returns the voice's configuration.
func (d *Drum) Config() DrumConfig { return d.cfg }

// PitchEnvelope returns the pitch ADSR for host-side adjustment.
func (d *Drum) PitchEnvelope() *envelope.ADSR { return d.pitchEnv }

// AmpEnvelope returns the amplitude ADSR for host-side adjustment.
func (d *Drum) AmpEnvelope() *envelope.ADSR { return d.ampEnv }

// Sine returns the sine layer.
func (d *Drum) Sine() *oscillator.Sine { return d.sine }

// SquareSaw returns the square/saw layer.
func (d *Drum) SquareSaw() *oscillator.SquareSaw { return d.squareSaw }

// Noise returns the noise stage.
func (d *Drum) Noise() *noise.Noise { return d.noise }

// Reset rewinds oscillator phase and reseeds the noise, so the next
// Render reproduces the voice from silence.
func (d *Drum) Reset() {
	d.sine.Reset()
	d.squareSaw.Reset()
	d.noise = noise.New(d.cfg.Seed)
	d.noise.SetRatio(d.cfg.NoiseRatio)
}

// Render produces one hit: the full note plus its release tail, at the
// audio rate.
func (d *Drum) Render() ([]float64, error) {
	pitchMod, err := d.pitchEnv.GenerateNote(d.cfg.NoteOn)
	if err != nil {
		return nil, fmt.Errorf("pitch envelope: %w", err)
	}
	ampMod, err := d.ampEnv.GenerateNote(d.cfg.NoteOn)
	if err != nil {
		return nil, fmt.Errorf("amplitude envelope: %w", err)
	}

	sineOut, err := d.sine.Generate(pitchMod)
	if err != nil {
		return nil, fmt.Errorf("sine layer: %w", err)
	}
	sawOut, err := d.squareSaw.Generate(pitchMod)
	if err != nil {
		return nil, fmt.Errorf("square/saw layer: %w", err)
	}

	blend, err := dsp.Crossfade(sineOut, sawOut, d.cfg.VCORatio)
	if err != nil {
		return nil, fmt.Errorf("oscillator blend: %w", err)
	}

	out := d.amp.Apply(ampMod, d.noise.Apply(blend))
	debug.CheckSignal(out, "drum")
	return out, nil
}
