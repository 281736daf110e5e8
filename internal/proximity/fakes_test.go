package proximity

import "image/color"

type fakeElement struct {
	bounds   Rect
	gradient bool

	boxShadow  *Shadow
	translate  *Vec
	textShadow *Shadow

	boxWrites       int
	translateWrites int
	textWrites      int
}

func newFakeElement(cx, cy, w, h float64) *fakeElement {
	return &fakeElement{bounds: Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}}
}

func (f *fakeElement) Bounds() Rect { return f.bounds }
func (f *fakeElement) HasGradientText() bool { return f.gradient }

func (f *fakeElement) SetBoxShadow(s Shadow) {
	f.boxShadow = &s
	f.boxWrites++
}

func (f *fakeElement) ClearBoxShadow() {
	f.boxShadow = nil
	f.boxWrites++
}

func (f *fakeElement) SetTranslate(v Vec) {
	f.translate = &v
	f.translateWrites++
}

func (f *fakeElement) ClearTranslate() {
	f.translate = nil
	f.translateWrites++
}

func (f *fakeElement) SetTextShadow(s Shadow) {
	f.textShadow = &s
	f.textWrites++
}

func (f *fakeElement) ClearTextShadow() {
	f.textShadow = nil
	f.textWrites++
}

func (f *fakeElement) writes() int {
	return f.boxWrites + f.translateWrites + f.textWrites
}

type fakeScene map[string][]Element

func (s fakeScene) Query(selector string) []Element { return s[selector] }

type fakeSource struct {
	nextID    int
	listeners map[int]func(x, y float64)
}

func newFakeSource() *fakeSource {
	return &fakeSource{listeners: make(map[int]func(x, y float64))}
}

func (s *fakeSource) Subscribe(fn func(x, y float64)) func() {
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

func (s *fakeSource) move(x, y float64) {
	for _, fn := range s.listeners {
		fn(x, y)
	}
}

// testGroups mirrors the production table with selectors keyed for fakeScene.
func testGroups() []Group {
	return []Group{
		{
			Name: "surfaces", Selector: "surfaces", Radius: 800, MaxOffset: 15, Multiplier: 2,
			Effect: Effect{Kind: EffectBoxShadow, Blur: 30, Alpha: 0.3, Ring: 0.1},
		},
		{
			Name: "controls", Selector: "controls", Radius: 300, MaxOffset: 10,
			Effect: Effect{
				Kind: EffectMagnetic, Blur: 15, Tint: color.NRGBA{R: 242, G: 5, B: 226, A: 255},
				Alpha: 0.4, ScaleAlpha: true, Pull: -0.5,
			},
		},
		{
			Name: "headlines", Selector: "headlines", Radius: 400, MaxOffset: 8,
			Effect: Effect{Kind: EffectTextShadow, Blur: 10, Alpha: 0.5, ScaleAlpha: true},
		},
	}
}
