package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/turian/torchsynth/pkg/dsp"
	"github.com/turian/torchsynth/pkg/dsp/analysis"
)

func TestRenderLength(t *testing.T) {
	// The hit is as long as the amplitude envelope at the audio rate: the
	// gated segment plus the release tail.
	d, err := NewDrum(DefaultDrumConfig())
	if err != nil {
		t.Fatalf("NewDrum returned error: %v", err)
	}
	out, err := d.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	// 0.75s gate at 441 Hz control rate is 331 samples, the 0.5s release
	// adds 220, and the audio rate is 100 times the control rate.
	if len(out) != 55100 {
		t.Errorf("output length = %d, want 55100", len(out))
	}
}

func TestRenderBounded(t *testing.T) {
	d, err := NewDrum(DefaultDrumConfig())
	if err != nil {
		t.Fatalf("NewDrum returned error: %v", err)
	}
	out, err := d.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for i, v := range out {
		if v < -1 || v > 1 {
			t.Fatalf("out[%d] = %v outside [-1, 1]", i, v)
		}
	}
	if dsp.Peak(out) == 0 {
		t.Error("rendered silence")
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := DefaultDrumConfig()
	d, err := NewDrum(cfg)
	if err != nil {
		t.Fatalf("NewDrum returned error: %v", err)
	}
	first, err := d.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	d.Reset()
	second, err := d.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("renders diverge at %d: %v vs %v", i, first[i], second[i])
		}
	}

	other, err := NewDrum(cfg)
	if err != nil {
		t.Fatalf("NewDrum returned error: %v", err)
	}
	third, err := other.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	for i := range first {
		if first[i] != third[i] {
			t.Fatalf("equal configs diverge at %d", i)
		}
	}
}

func TestRenderPureSine(t *testing.T) {
	// With the square/saw and noise layers silenced and no pitch sweep,
	// the voice is a plain tone at the configured pitch.
	cfg := DefaultDrumConfig()
	cfg.NoteOn = 0.5
	cfg.SineDepth = 0
	cfg.VCORatio = 0
	cfg.NoiseRatio = 0
	cfg.AmpEnvelope = EnvelopeConfig{Attack: 0, Decay: 0, Sustain: 1, Release: 0.1, Alpha: 1}
	cfg.PitchEnvelope = EnvelopeConfig{Attack: 0, Decay: 0, Sustain: 1, Release: 0.1, Alpha: 1}

	d, err := NewDrum(cfg)
	if err != nil {
		t.Fatalf("NewDrum returned error: %v", err)
	}
	out, err := d.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	freq, _ := analysis.New(cfg.SampleRate).PeakFrequency(out)
	want := dsp.MidiToHz(cfg.SinePitch)
	if math.Abs(freq-want) > 2 {
		t.Errorf("peak frequency = %v, want %v", freq, want)
	}
}

func TestZeroNoteOnIsSilent(t *testing.T) {
	// A zero-length gate leaves the amplitude envelope at zero everywhere,
	// so the hit is pure silence of release length.
	cfg := DefaultDrumConfig()
	cfg.NoteOn = 0

	d, err := NewDrum(cfg)
	if err != nil {
		t.Fatalf("NewDrum returned error: %v", err)
	}
	out, err := d.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(out) != 22000 {
		t.Errorf("output length = %d, want 22000", len(out))
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %v, want silence", i, v)
		}
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DrumConfig)
	}{
		{"zero sample rate", func(c *DrumConfig) { c.SampleRate = 0 }},
		{"zero control rate", func(c *DrumConfig) { c.ControlRate = 0 }},
		{"negative note on", func(c *DrumConfig) { c.NoteOn = -1 }},
		{"vco ratio above one", func(c *DrumConfig) { c.VCORatio = 1.5 }},
		{"negative noise ratio", func(c *DrumConfig) { c.NoiseRatio = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDrumConfig()
			tt.mutate(&cfg)
			if _, err := NewDrum(cfg); !errors.Is(err, dsp.ErrInvalidParameter) {
				t.Errorf("error = %v, want dsp.ErrInvalidParameter", err)
			}
		})
	}
}

func TestModuleAccess(t *testing.T) {
	d, err := NewDrum(DefaultDrumConfig())
	if err != nil {
		t.Fatalf("NewDrum returned error: %v", err)
	}

	// Host-side automation reaches every module's parameters.
	if _, err := d.Sine().Params().Get("pitch"); err != nil {
		t.Errorf("sine pitch lookup failed: %v", err)
	}
	if _, err := d.SquareSaw().Params().Get("shape"); err != nil {
		t.Errorf("square/saw shape lookup failed: %v", err)
	}
	if _, err := d.Noise().Params().Get("ratio"); err != nil {
		t.Errorf("noise ratio lookup failed: %v", err)
	}
	if _, err := d.AmpEnvelope().Params().Get("attack"); err != nil {
		t.Errorf("amp attack lookup failed: %v", err)
	}
}

func BenchmarkDrumRender(b *testing.B) {
	d, err := NewDrum(DefaultDrumConfig())
	if err != nil {
		b.Fatalf("NewDrum returned error: %v", err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := d.Render(); err != nil {
			b.Fatal(err)
		}
	}
}
