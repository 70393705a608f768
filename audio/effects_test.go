package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var all [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream returned n=%d ok=%v, want 100 true", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the streamer ends after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	duration := 50 * time.Millisecond
	osc := NewOscillator(220.0, duration, WaveSquare, rate)

	all := drain(osc)
	if want := rate.N(duration); len(all) != want {
		t.Errorf("streamed %d samples, want %d", len(all), want)
	}
}

// TestEnvelopeShapesEdges verifies attack and release ramp the volume
func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(48000)
	duration := 100 * time.Millisecond
	osc := NewOscillator(440.0, duration, WaveSquare, rate)
	shaped := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, rate)

	all := drain(shaped)
	if len(all) == 0 {
		t.Fatal("expected samples from envelope")
	}

	// A square wave has unit magnitude, so the first sample of the attack
	// and the last of the release must be near silent.
	if v := all[0][0]; v < -0.01 || v > 0.01 {
		t.Errorf("attack start = %f, want near 0", v)
	}
	if v := all[len(all)-1][0]; v < -0.01 || v > 0.01 {
		t.Errorf("release end = %f, want near 0", v)
	}
}

// TestEffectStreamersFinite verifies every effect ends on its own
func TestEffectStreamersFinite(t *testing.T) {
	rate := beep.SampleRate(48000)
	effects := map[string]beep.Streamer{
		"eat":   CreateEatSound(rate),
		"grape": CreateGrapeSound(rate),
		"death": CreateDeathSound(rate),
	}
	for name, s := range effects {
		all := drain(s)
		if len(all) == 0 {
			t.Errorf("%s produced no samples", name)
		}
		if len(all) > rate.N(2*time.Second) {
			t.Errorf("%s did not terminate promptly, streamed %d samples", name, len(all))
		}
		for i, sm := range all {
			if sm[0] < -1.0 || sm[0] > 1.0 {
				t.Errorf("%s sample %d out of range: %f", name, i, sm[0])
				break
			}
		}
	}
}

// TestMelodyGeneratorStreams verifies the music loop is endless and bounded
func TestMelodyGeneratorStreams(t *testing.T) {
	gen := NewMelodyGenerator(beep.SampleRate(48000))
	buf := make([][2]float64, 4096)
	for round := 0; round < 8; round++ {
		n, ok := gen.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("round %d: n=%d ok=%v, want full buffer", round, n, ok)
		}
		for i := 0; i < n; i++ {
			if buf[i][0] < -0.2 || buf[i][0] > 0.2 {
				t.Fatalf("round %d sample %d too loud for background music: %f", round, i, buf[i][0])
			}
		}
	}
}
