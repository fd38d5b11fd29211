package vca

import (
	"math"
	"testing"

	"github.com/turian/torchsynth/pkg/dsp"
)

const (
	sampleRate  = 44100.0
	controlRate = 441.0
)

func constant(n int, v float64) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

func TestApplyLengthLaw(t *testing.T) {
	// The output length always equals the audio-rate length of the envelope,
	// no matter how long the audio input is.
	tests := []struct {
		name     string
		envLen   int
		audioLen int
		want     int
	}{
		{"audio matches", 44, 4400, 4400},
		{"audio short", 44, 1000, 4400},
		{"audio long", 44, 10000, 4400},
		{"audio empty", 44, 0, 4400},
		{"envelope empty", 0, 4400, 0},
	}

	v := New(sampleRate, controlRate)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := v.Apply(constant(tt.envLen, 0.5), constant(tt.audioLen, 0.5))
			if len(out) != tt.want {
				t.Errorf("output length = %d, want %d", len(out), tt.want)
			}
		})
	}
}

func TestApplyProduct(t *testing.T) {
	v := New(sampleRate, controlRate)
	out := v.Apply(constant(44, 0.5), constant(4400, 0.8))
	for i, got := range out {
		if math.Abs(got-0.4) > 1e-9 {
			t.Fatalf("out[%d] = %v, want 0.4", i, got)
		}
	}
}

func TestApplyPadsWithSilence(t *testing.T) {
	// Audio shorter than the upsampled envelope is zero-padded, so the tail
	// of the output is silent.
	v := New(sampleRate, controlRate)
	out := v.Apply(constant(44, 1.0), constant(1000, 0.8))
	if len(out) != 4400 {
		t.Fatalf("output length = %d, want 4400", len(out))
	}
	for i := 1000; i < len(out); i++ {
		if math.Abs(out[i]) > 1e-9 {
			t.Fatalf("out[%d] = %v, want 0 in padded region", i, out[i])
		}
	}
	if math.Abs(out[500]-0.8) > 1e-9 {
		t.Errorf("out[500] = %v, want 0.8", out[500])
	}
}

func TestApplyClampsInputs(t *testing.T) {
	v := New(sampleRate, controlRate)

	// Envelope above 1 behaves as 1.
	out := v.Apply(constant(44, 1.5), constant(4400, 0.8))
	if math.Abs(out[100]-0.8) > 1e-9 {
		t.Errorf("hot envelope: out[100] = %v, want 0.8", out[100])
	}

	// Audio outside [-1, 1] is clamped before shaping.
	out = v.Apply(constant(44, 1.0), constant(4400, 2.0))
	if math.Abs(out[100]-1.0) > 1e-9 {
		t.Errorf("hot audio: out[100] = %v, want 1", out[100])
	}
}

func TestApplyDoesNotMutateInputs(t *testing.T) {
	v := New(sampleRate, controlRate)
	env := constant(44, 1.5)
	audio := constant(4400, 2.0)
	v.Apply(env, audio)
	if env[0] != 1.5 {
		t.Errorf("envelope input mutated: env[0] = %v", env[0])
	}
	if audio[0] != 2.0 {
		t.Errorf("audio input mutated: audio[0] = %v", audio[0])
	}
}

func TestDbConversions(t *testing.T) {
	tests := []struct {
		name   string
		linear float64
		db     float64
	}{
		{"unity", 1.0, 0},
		{"ten", 10.0, 20},
		{"tenth", 0.1, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToDb(tt.linear); math.Abs(got-tt.db) > 1e-9 {
				t.Errorf("LinearToDb(%v) = %v, want %v", tt.linear, got, tt.db)
			}
			if got := DbToLinear(tt.db); math.Abs(got-tt.linear) > 1e-9 {
				t.Errorf("DbToLinear(%v) = %v, want %v", tt.db, got, tt.linear)
			}
		})
	}

	if got := LinearToDb(0); got != dsp.MinDB {
		t.Errorf("LinearToDb(0) = %v, want %v", got, dsp.MinDB)
	}
	if got := DbToLinear(dsp.MinDB); got != 0 {
		t.Errorf("DbToLinear(MinDB) = %v, want 0", got)
	}
}

func TestFade(t *testing.T) {
	buf := constant(101, 1.0)
	Fade(buf, 0, 1)
	if buf[0] != 0 {
		t.Errorf("buf[0] = %v, want 0", buf[0])
	}
	if math.Abs(buf[100]-1.0) > 1e-9 {
		t.Errorf("buf[100] = %v, want 1", buf[100])
	}
	if math.Abs(buf[50]-0.5) > 1e-9 {
		t.Errorf("buf[50] = %v, want 0.5", buf[50])
	}
}

func BenchmarkApply(b *testing.B) {
	v := New(sampleRate, controlRate)
	env := constant(441, 0.5)
	audio := constant(44100, 0.5)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Apply(env, audio)
	}
}
