package config

import (
	"image/color"
	"time"

	"github.com/iburimskiy/cursor-light/internal/proximity"
)

const (
	WindowTitle = "cursor-light"

	// Click tone
	SampleRate   = 44100
	ToneHz       = 880
	ToneDuration = 60 * time.Millisecond
	ToneVolume   = 0.15

	// Debug overlay
	DebugX = 12
	DebugY = 12

	// Size of a card added at the cursor with the N key
	SpawnCardWidth  = 180
	SpawnCardHeight = 110
)

// Group names of the default table.
const (
	GroupSurfaces  = "surfaces"
	GroupControls  = "controls"
	GroupHeadlines = "headlines"
)

// Default selectors, matching the class names of the marketing page markup.
const (
	SurfaceSelector  = ".glass-card, .feature-card, .blog-card, .newsletter"
	ControlSelector  = ".btn-neon, .btn-neon-outline, .theme-toggle, .scroll-to-top"
	HeadlineSelector = "h1, h2, .gradient-text"
)

// NeonPink tints the control shadows.
var NeonPink = color.NRGBA{R: 242, G: 5, B: 226, A: 255}

// DefaultGroups returns the built-in group table.
func DefaultGroups() []proximity.Group {
	return []proximity.Group{
		{
			Name:       GroupSurfaces,
			Selector:   SurfaceSelector,
			Radius:     800,
			MaxOffset:  15,
			Multiplier: 2,
			Effect: proximity.Effect{
				Kind:  proximity.EffectBoxShadow,
				Blur:  30,
				Tint:  color.NRGBA{A: 255},
				Alpha: 0.3,
				Ring:  0.1,
			},
		},
		{
			Name:      GroupControls,
			Selector:  ControlSelector,
			Radius:    300,
			MaxOffset: 10,
			Effect: proximity.Effect{
				Kind:       proximity.EffectMagnetic,
				Blur:       15,
				Tint:       NeonPink,
				Alpha:      0.4,
				ScaleAlpha: true,
				Pull:       -0.5,
			},
		},
		{
			Name:      GroupHeadlines,
			Selector:  HeadlineSelector,
			Radius:    400,
			MaxOffset: 8,
			Effect: proximity.Effect{
				Kind:       proximity.EffectTextShadow,
				Blur:       10,
				Tint:       color.NRGBA{A: 255},
				Alpha:      0.5,
				ScaleAlpha: true,
			},
		},
	}
}
