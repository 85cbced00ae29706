package sound

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player rings the completion tone through the speaker, falling back to the
// system beep when no audio device can be opened. Failures are only logged.
type Player struct {
	tone Tone

	mu      sync.Mutex
	ready   bool
	initErr error

	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
	systemBeep  func(freq float64, ms int) error
}

// NewPlayer returns a player for tone. The speaker is opened on first use.
func NewPlayer(tone Tone) *Player {
	return &Player{
		tone:        tone,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
		systemBeep:  beeep.Beep,
	}
}

// Ring plays the tone without blocking the caller.
func (p *Player) Ring() {
	go p.ring()
}

func (p *Player) ring() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready && p.initErr == nil {
		if err := p.initSpeaker(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			slog.Warn("audio disabled: speaker init failed", "error", err)
			p.initErr = err
		} else {
			p.ready = true
		}
	}

	if p.ready {
		p.play(p.tone.Streamer(sampleRate))
		return
	}

	ms := int(p.tone.Duration.Milliseconds())
	if err := p.systemBeep(p.tone.Frequency, ms); err != nil {
		slog.Warn("system beep failed", "error", err)
	}
}
