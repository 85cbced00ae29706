package sound

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLengthAndEnvelope(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(DefaultTone.Streamer(sr))
	require.Len(t, samples, 8000)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	first, last := peak(0, 400), peak(7600, 8000)
	assert.LessOrEqual(t, first, 0.3+1e-9)
	assert.Greater(t, first, 0.2)
	assert.Less(t, last, 0.02)

	for _, s := range samples {
		assert.Equal(t, s[0], s[1])
	}
}

func TestZeroDurationToneIsEmpty(t *testing.T) {
	samples := drain(Tone{Frequency: 800}.Streamer(beep.SampleRate(8000)))
	assert.Empty(t, samples)
}

func TestPlayerUsesSpeaker(t *testing.T) {
	inits, plays, beeps := 0, 0, 0
	p := NewPlayer(Tone{Frequency: 800, Duration: 10 * time.Millisecond, Gain: 0.3})
	p.initSpeaker = func(beep.SampleRate, int) error { inits++; return nil }
	p.play = func(...beep.Streamer) { plays++ }
	p.systemBeep = func(float64, int) error { beeps++; return nil }

	p.ring()
	p.ring()
	assert.Equal(t, 1, inits)
	assert.Equal(t, 2, plays)
	assert.Zero(t, beeps)
}

func TestPlayerFallsBackToSystemBeep(t *testing.T) {
	var gotFreq float64
	var gotMs int
	inits := 0
	p := NewPlayer(DefaultTone)
	p.initSpeaker = func(beep.SampleRate, int) error { inits++; return errors.New("no device") }
	p.play = func(...beep.Streamer) { t.Fatal("speaker must not be used") }
	p.systemBeep = func(f float64, ms int) error { gotFreq, gotMs = f, ms; return errors.New("no beep") }

	p.ring()
	p.ring()
	assert.Equal(t, 1, inits)
	assert.Equal(t, 800.0, gotFreq)
	assert.Equal(t, 1000, gotMs)
}
