package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Crush sound: a short rising two-note pop.
const (
	crushNote1    = 40 * time.Millisecond
	crushNote2    = 60 * time.Millisecond
	crushAttack   = 4 * time.Millisecond
	crushVolume   = 0.35
	crushLowFreq  = 660.0
	crushHighFreq = 990.0
)

// crushSound builds the streamer played for every crush signal.
func crushSound(sr beep.SampleRate) (beep.Streamer, error) {
	lo, err := note(sr, crushLowFreq, crushNote1)
	if err != nil {
		return nil, err
	}
	hi, err := note(sr, crushHighFreq, crushNote2)
	if err != nil {
		return nil, err
	}
	return withVolume(beep.Seq(lo, hi), crushVolume), nil
}

// note is a sine tone of length d with a short attack and a linear release.
func note(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return newEnvelope(beep.Take(sr.N(d), tone), sr.N(d), sr.N(crushAttack)), nil
}

// envelope ramps a stream up over attack samples and back down to silence
// at total samples, then ends it.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack int) *envelope {
	return &envelope{streamer: s, total: total, attack: attack}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rem := e.total - e.pos; len(samples) > rem {
		samples = samples[:rem]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		} else if release := e.total - e.attack; release > 0 {
			vol = float64(e.total-e.pos) / float64(release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
