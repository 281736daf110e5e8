package proximity

import (
	"fmt"
	"image/color"
)

// EffectKind selects which visual property a group writes.
type EffectKind int

const (
	// EffectBoxShadow casts a drop shadow away from the pointer.
	EffectBoxShadow EffectKind = iota
	// EffectMagnetic casts a tinted drop shadow and pulls the element
	// towards the pointer by a fraction of the shadow offset.
	EffectMagnetic
	// EffectTextShadow casts a shadow under the element's text.
	EffectTextShadow
)

var effectNames = map[EffectKind]string{
	EffectBoxShadow:  "box-shadow",
	EffectMagnetic:   "magnetic",
	EffectTextShadow: "text-shadow",
}

func (k EffectKind) String() string {
	if s, ok := effectNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

// ParseEffectKind maps a configuration name to an EffectKind.
func ParseEffectKind(s string) (EffectKind, error) {
	for k, name := range effectNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown effect kind %q", s)
}

// Shadow is a resolved shadow value ready to be written to an element.
type Shadow struct {
	Offset Vec
	Blur   float64
	Tint   color.NRGBA // alpha channel unused, see Alpha
	Alpha  float64

	// Ring is the alpha of a 1px inset highlight ring; 0 draws none.
	Ring float64
}

// Effect holds the per-group parameters of the written style.
type Effect struct {
	Kind  EffectKind
	Blur  float64
	Tint  color.NRGBA
	Alpha float64

	// ScaleAlpha multiplies Alpha by the decay factor.
	ScaleAlpha bool
	Ring       float64

	// Pull is the translation applied as a multiple of the shadow offset.
	// Only used by EffectMagnetic.
	Pull float64
}

// Group is a descriptor of one class of tracked elements.
type Group struct {
	Name      string
	Selector  string
	Radius    float64
	MaxOffset float64

	// Multiplier scales MaxOffset. Zero is treated as 1.
	Multiplier float64
	Effect     Effect
}

func (g Group) multiplier() float64 {
	if g.Multiplier == 0 {
		return 1
	}
	return g.Multiplier
}

// Offset returns the shadow offset for a sample inside the detection radius.
func (g Group) Offset(s Sample) Vec {
	return s.Direction.Scale(g.MaxOffset * s.Decay * g.multiplier())
}

// Shadow returns the shadow value written for a sample.
func (g Group) Shadow(s Sample) Shadow {
	alpha := g.Effect.Alpha
	if g.Effect.ScaleAlpha {
		alpha *= s.Decay
	}
	return Shadow{
		Offset: g.Offset(s),
		Blur:   g.Effect.Blur,
		Tint:   g.Effect.Tint,
		Alpha:  alpha,
		Ring:   g.Effect.Ring,
	}
}

type outcome int

const (
	outcomeApplied outcome = iota
	outcomeCleared
	outcomeSkipped
)

// apply writes the group's effect for one element. It is the single update
// routine shared by every group; the effect kind decides which property is
// written.
func (g Group) apply(el Element, pointer Vec) outcome {
	if g.Effect.Kind == EffectTextShadow && el.HasGradientText() {
		return outcomeSkipped
	}

	bounds := el.Bounds()
	if bounds.Empty() {
		g.clear(el)
		return outcomeSkipped
	}

	s := Measure(pointer, bounds, g.Radius)
	if s.Distance >= g.Radius {
		g.clear(el)
		return outcomeCleared
	}

	shadow := g.Shadow(s)
	switch g.Effect.Kind {
	case EffectBoxShadow:
		el.SetBoxShadow(shadow)
	case EffectMagnetic:
		el.SetBoxShadow(shadow)
		el.SetTranslate(shadow.Offset.Scale(g.Effect.Pull))
	case EffectTextShadow:
		el.SetTextShadow(shadow)
	}
	return outcomeApplied
}

func (g Group) clear(el Element) {
	switch g.Effect.Kind {
	case EffectBoxShadow:
		el.ClearBoxShadow()
	case EffectMagnetic:
		el.ClearBoxShadow()
		el.ClearTranslate()
	case EffectTextShadow:
		el.ClearTextShadow()
	}
}
