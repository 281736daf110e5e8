package game

import (
	"log"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/cursor-light/internal/audio"
	"github.com/iburimskiy/cursor-light/internal/config"
)

// clicker plays the control click. A nil or disabled clicker is silent.
type clicker struct {
	rate    beep.SampleRate
	enabled bool
}

func newClicker(logger *log.Logger) *clicker {
	rate := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(rate, rate.N(config.ToneDuration)); err != nil {
		logger.Printf("audio disabled: %v", err)
		return &clicker{rate: rate}
	}
	return &clicker{rate: rate, enabled: true}
}

func (c *clicker) click() {
	if c == nil || !c.enabled {
		return
	}
	speaker.Play(audio.NewTone(c.rate, config.ToneHz, config.ToneDuration, config.ToneVolume))
}

func (c *clicker) stop() {
	if c == nil || !c.enabled {
		return
	}
	speaker.Clear()
}
