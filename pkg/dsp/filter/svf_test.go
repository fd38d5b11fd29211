package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/turian/torchsynth/pkg/dsp"
)

const sampleRate = 44100.0

func impulse(n int) []float64 {
	buf := make([]float64, n)
	buf[0] = 1
	return buf
}

func testSignal(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = math.Sin(0.1*float64(i)) + 0.5*math.Sin(0.37*float64(i))
	}
	return buf
}

func TestImpulseDecays(t *testing.T) {
	// With damping present the impulse response rings down to nothing, even
	// at high resonance.
	f := NewSVF(LowPass, sampleRate)
	if err := f.SetResonance(100); err != nil {
		t.Fatalf("SetResonance returned error: %v", err)
	}

	out := f.Process(impulse(22050))
	early := dsp.Peak(out[:2205])
	late := dsp.Peak(out[len(out)-2205:])
	if early == 0 {
		t.Fatal("impulse produced no output")
	}
	if late > early*0.01 {
		t.Errorf("late peak %v vs early peak %v, impulse response did not decay", late, early)
	}
}

func TestSelfOscillationSustains(t *testing.T) {
	// With damping removed the same impulse rings at constant amplitude.
	f := NewSVF(LowPass, sampleRate)
	f.SetSelfOscillate(true)

	out := f.Process(impulse(22050))
	early := dsp.Peak(out[:2205])
	late := dsp.Peak(out[len(out)-2205:])
	if late < early*0.8 {
		t.Errorf("late peak %v vs early peak %v, self-oscillation decayed", late, early)
	}
}

func TestModeResponsesToDC(t *testing.T) {
	tests := []struct {
		mode Mode
		want float64
	}{
		{LowPass, 1},
		{BandPass, 0},
		{BandStop, 1},
		{HighPass, 0},
	}

	ones := make([]float64, 4410)
	for i := range ones {
		ones[i] = 1
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			f := NewSVF(tt.mode, sampleRate)
			out := f.Process(ones)
			got := out[len(out)-1]
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("%s settled at %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestProcessRepeatable(t *testing.T) {
	// Process clears state first, so equal inputs give equal outputs no
	// matter what ran before.
	f := NewSVF(BandPass, sampleRate)
	sig := testSignal(500)

	first := f.Process(sig)
	second := f.Process(sig)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("outputs diverge at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestBlockwiseContinuity(t *testing.T) {
	// Filtering a signal in two blocks with ProcessContinuous matches
	// filtering it whole.
	f := NewSVF(LowPass, sampleRate)
	sig := testSignal(600)
	whole := f.Process(sig)

	f.Reset()
	got := append(f.ProcessContinuous(sig[:300]), f.ProcessContinuous(sig[300:])...)
	for i := range whole {
		if math.Abs(got[i]-whole[i]) > 1e-12 {
			t.Fatalf("blockwise output diverges at %d: %v vs %v", i, got[i], whole[i])
		}
	}
}

func TestProcessModulated(t *testing.T) {
	sig := testSignal(400)

	t.Run("length mismatch", func(t *testing.T) {
		f := NewSVF(LowPass, sampleRate)
		_, err := f.ProcessModulated(sig, make([]float64, 200), 100)
		if !errors.Is(err, dsp.ErrLengthMismatch) {
			t.Errorf("error = %v, want dsp.ErrLengthMismatch", err)
		}
		_, err = f.ProcessModulated(sig, make([]float64, 200), 0)
		if !errors.Is(err, dsp.ErrLengthMismatch) {
			t.Errorf("zero amount with bad length: error = %v, want dsp.ErrLengthMismatch", err)
		}
	})

	t.Run("zero amount matches unmodulated", func(t *testing.T) {
		f := NewSVF(LowPass, sampleRate)
		got, err := f.ProcessModulated(sig, make([]float64, len(sig)), 0)
		if err != nil {
			t.Fatalf("ProcessModulated returned error: %v", err)
		}
		want := f.Process(sig)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("outputs diverge at %d: %v vs %v", i, got[i], want[i])
			}
		}
	})

	t.Run("constant modulation shifts cutoff", func(t *testing.T) {
		mod := make([]float64, len(sig))
		for i := range mod {
			mod[i] = 1
		}

		f := NewSVF(LowPass, sampleRate)
		got, err := f.ProcessModulated(sig, mod, 500)
		if err != nil {
			t.Fatalf("ProcessModulated returned error: %v", err)
		}

		shifted := NewSVF(LowPass, sampleRate)
		if err := shifted.SetCutoff(DefaultCutoff + 500); err != nil {
			t.Fatalf("SetCutoff returned error: %v", err)
		}
		want := shifted.Process(sig)
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Fatalf("outputs diverge at %d: %v vs %v", i, got[i], want[i])
			}
		}
	})
}

func TestSVFValidation(t *testing.T) {
	f := NewSVF(LowPass, sampleRate)

	if err := f.SetCutoff(0); !errors.Is(err, dsp.ErrInvalidParameter) {
		t.Errorf("SetCutoff(0) error = %v, want dsp.ErrInvalidParameter", err)
	}
	if err := f.SetCutoff(-100); !errors.Is(err, dsp.ErrInvalidParameter) {
		t.Errorf("SetCutoff(-100) error = %v, want dsp.ErrInvalidParameter", err)
	}
	if err := f.SetResonance(0); !errors.Is(err, dsp.ErrInvalidParameter) {
		t.Errorf("SetResonance(0) error = %v, want dsp.ErrInvalidParameter", err)
	}

	if err := f.SetCutoff(2500); err != nil {
		t.Errorf("SetCutoff(2500) returned error: %v", err)
	}
	if f.Cutoff() != 2500 {
		t.Errorf("Cutoff() = %v, want 2500", f.Cutoff())
	}
}

func BenchmarkSVFProcess(b *testing.B) {
	f := NewSVF(LowPass, sampleRate)
	sig := testSignal(44100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.Process(sig)
	}
}
