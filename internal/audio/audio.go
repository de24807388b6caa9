// Package audio plays short square-wave cues for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

var (
	mu          sync.Mutex
	initialized bool
)

// Init initializes the audio system. Calling it twice is a no-op.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Note is one tone of a cue. A zero Freq is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Cue returns the notes played for an event, or nil for silent events.
func Cue(ev game.Event) []Note {
	switch ev.Kind {
	case game.EventPaddleHit:
		return []Note{{880, 40 * time.Millisecond}}
	case game.EventBorderHit:
		return []Note{{440, 25 * time.Millisecond}}
	case game.EventBrickHit:
		// Hard bricks ring lower when they hold.
		if ev.Brick == brick.KindSteel || ev.Brick == brick.KindReinforcedSteel {
			return []Note{{330, 30 * time.Millisecond}}
		}
		return []Note{{523, 40 * time.Millisecond}}
	case game.EventBrickDestroyed:
		return []Note{{660, 30 * time.Millisecond}, {990, 50 * time.Millisecond}}
	case game.EventBallLost:
		return []Note{{440, 100 * time.Millisecond}, {330, 100 * time.Millisecond}, {220, 150 * time.Millisecond}}
	case game.EventLevelComplete:
		return []Note{{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 160 * time.Millisecond}}
	case game.EventGameOver:
		return []Note{{330, 150 * time.Millisecond}, {0, 50 * time.Millisecond}, {165, 300 * time.Millisecond}}
	case game.EventAllLevelsDone:
		return []Note{{523, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1046, 300 * time.Millisecond}}
	}
	return nil
}

// squareWave generates a square wave tone (retro/8-bit feel).
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if freq == 0 {
				val = 0
			} else if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// Stream sequences the notes into one streamer.
func Stream(notes []Note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = squareWave(n.Freq, n.Duration)
	}
	return beep.Seq(parts...)
}

// Play plays the cues of the events. It does nothing before Init.
func Play(events []game.Event) {
	mu.Lock()
	ok := initialized
	mu.Unlock()
	if !ok {
		return
	}
	for _, ev := range events {
		if notes := Cue(ev); notes != nil {
			speaker.Play(Stream(notes))
		}
	}
}
