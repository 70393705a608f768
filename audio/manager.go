// Package audio synthesizes the game's sound effects and background music
// with beep streamers. No sample files are shipped; every sound is
// generated at play time.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the speaker and the mixer all effects play through.
// A failed speaker init leaves the manager in silent mode: every Play
// call becomes a no-op instead of an error the game has to handle.
type SoundManager struct {
	mu            sync.Mutex
	mixer         *beep.Mixer
	musicStreamer *beep.Ctrl
	initialized   bool
}

// NewSoundManager creates a sound manager; call Initialize before playing
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and silences the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.musicStreamer != nil {
		sm.musicStreamer.Paused = true
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// PlayEat plays the apple chime
func (sm *SoundManager) PlayEat() {
	sm.play(CreateEatSound(sampleRate))
}

// PlayGrape plays the grape slur
func (sm *SoundManager) PlayGrape() {
	sm.play(CreateGrapeSound(sampleRate))
}

// PlayDeath plays the crash
func (sm *SoundManager) PlayDeath() {
	sm.play(CreateDeathSound(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Add(s)
}

// SetMusic starts or pauses the looping background track. The streamer is
// created lazily on the first start and paused rather than dropped on
// stop, so toggling is cheap.
func (sm *SoundManager) SetMusic(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.musicStreamer == nil {
		if !on {
			return
		}
		sm.musicStreamer = &beep.Ctrl{Streamer: NewMelodyGenerator(sampleRate)}
		sm.mixer.Add(sm.musicStreamer)
		return
	}
	sm.musicStreamer.Paused = !on
}

// MelodyGenerator streams an endless soft arpeggio for background music
type MelodyGenerator struct {
	sr          beep.SampleRate
	pos         int
	noteLen     int
	phase       float64
	frequencies []float64
}

// NewMelodyGenerator creates the background music generator
func NewMelodyGenerator(sr beep.SampleRate) *MelodyGenerator {
	return &MelodyGenerator{
		sr:      sr,
		noteLen: sr.N(time.Millisecond * 320),
		// A minor arpeggio walked up and back down
		frequencies: []float64{220.0, 261.63, 329.63, 440.0, 329.63, 261.63},
	}
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (g.pos / g.noteLen) % len(g.frequencies)
		freq := g.frequencies[note]

		// Soft envelope within each note keeps the loop from clicking
		notePos := float64(g.pos%g.noteLen) / float64(g.noteLen)
		amplitude := 0.08 * math.Sin(notePos*math.Pi)

		val := amplitude * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.sr)
		g.phase = g.phase - math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error { return nil }
