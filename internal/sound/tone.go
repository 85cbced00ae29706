// Package sound synthesizes and plays the countdown completion tone.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// floorGain is where the decay envelope ends.
const floorGain = 0.01

// Tone is a sine wave whose gain decays exponentially from Gain to 0.01
// over Duration.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Gain      float64
}

// DefaultTone is 800 Hz for one second starting at gain 0.3.
var DefaultTone = Tone{Frequency: 800, Duration: time.Second, Gain: 0.3}

// Streamer renders the tone at the given sample rate. The stream ends after
// Duration.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(t.Duration)
	gain := t.Gain
	if gain <= floorGain {
		gain = floorGain
	}
	decay := 0.0
	if total > 0 {
		decay = math.Log(floorGain/gain) / float64(total)
	}
	step := 2 * math.Pi * t.Frequency / float64(sr)

	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for n < len(samples) && pos < total {
			v := gain * math.Exp(decay*float64(pos)) * math.Sin(step*float64(pos))
			samples[n][0] = v
			samples[n][1] = v
			n++
			pos++
		}
		return n, true
	})
}
