package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw audio wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator streaming one wave for duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s in an attack/sustain/release volume ramp
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect.
// math.Log2(0) is -Inf, so zero volume is mapped to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short bright ding for eating an apple
func CreateEatSound(rate beep.SampleRate) beep.Streamer {
	const dur = 90 * time.Millisecond

	fund := NewOscillator(880.0, dur, WaveSine, rate)
	fundShaped := NewEnvelope(fund, dur, 5*time.Millisecond, 60*time.Millisecond, rate)

	over := NewOscillator(1760.0, dur, WaveSine, rate)
	overShaped := NewEnvelope(over, dur, 5*time.Millisecond, 40*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, 0.5)
}

// CreateGrapeSound generates a falling two-note slur for eating a grape
func CreateGrapeSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(523.25, 70*time.Millisecond, WaveTriangle, rate)
	n1Shaped := NewEnvelope(n1, 70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, rate)

	n2 := NewOscillator(392.0, 70*time.Millisecond, WaveTriangle, rate)
	n2Shaped := NewEnvelope(n2, 70*time.Millisecond, 5*time.Millisecond, 50*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5)
}

// CreateDeathSound generates a descending two-note crash
func CreateDeathSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(220.0, 160*time.Millisecond, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, 160*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)

	n2 := NewOscillator(110.0, 280*time.Millisecond, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, 280*time.Millisecond, 2*time.Millisecond, 200*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4)
}
