// Package audio plays the crush feedback sound. Sound is best effort: a
// missing device or a playback failure is logged once and then ignored.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// maxVoices caps overlapping crush sounds; a long cascade would otherwise
// pile up dozens of them.
const maxVoices = 4

// Player receives crush signals from the platform.
type Player interface {
	// Crush plays the feedback sound once. It never blocks on the device.
	Crush()

	// Close releases the audio device.
	Close()
}

// Nop is a Player that does nothing. It is used when sound is muted, the
// device is unavailable, or the game runs over SSH.
type Nop struct{}

func (Nop) Crush() {}
func (Nop) Close() {}

// Speaker plays sounds on the local audio device through a beep mixer.
type Speaker struct {
	logger *log.Logger
	mixer  *beep.Mixer
	sr     beep.SampleRate

	once sync.Once // Guards the playback warning
}

// New returns a Player for local play. When muted, or when the device
// cannot be opened, it returns Nop and logs the reason.
func New(muted bool, logger *log.Logger) Player {
	if muted {
		logger.Debug("audio muted")
		return Nop{}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Nop{}
	}

	s := &Speaker{
		logger: logger,
		mixer:  &beep.Mixer{},
		sr:     sampleRate,
	}
	speaker.Play(s.mixer)
	return s
}

// Crush queues one crush sound on the mixer.
func (s *Speaker) Crush() {
	snd, err := crushSound(s.sr)
	if err != nil {
		s.once.Do(func() { s.logger.Warn("cannot build crush sound", "err", err) })
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if s.mixer.Len() >= maxVoices {
		return
	}
	s.mixer.Add(snd)
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
