// Package audio produces the short click played when a control is pressed.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone is a finite sine streamer with a linear fade-out, so it ends without
// a click of its own.
type Tone struct {
	freq   float64
	volume float64
	rate   beep.SampleRate
	total  int
	pos    int
}

// NewTone returns a tone of the given frequency, length and peak volume.
func NewTone(rate beep.SampleRate, freq float64, d time.Duration, volume float64) *Tone {
	return &Tone{
		freq:   freq,
		volume: volume,
		rate:   rate,
		total:  rate.N(d),
	}
}

// Len returns the length of the tone in samples.
func (t *Tone) Len() int { return t.total }

func (t *Tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate)) * t.volume * env
		samples[i] = [2]float64{v, v}
		t.pos++
		n++
	}
	return n, true
}

func (t *Tone) Err() error { return nil }
