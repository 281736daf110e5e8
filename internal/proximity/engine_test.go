package proximity

import (
	"context"
	"io"
	"log"
	"testing"
)

type engineFixture struct {
	engine  *Engine
	pointer *Pointer
	source  *fakeSource
	frames  *FrameLoop
	scene   fakeScene
}

func newEngineFixture(groups []Group, scene fakeScene) *engineFixture {
	f := &engineFixture{
		pointer: NewPointer(1024, 768),
		source:  newFakeSource(),
		frames:  NewFrameLoop(),
		scene:   scene,
	}
	f.engine = NewEngine(groups, scene, f.pointer, f.source, f.frames,
		WithLogger(log.New(io.Discard, "", 0)))
	return f
}

func TestEngine_SurfaceScenario(t *testing.T) {
	card := newFakeElement(150, 100, 200, 120)
	f := newEngineFixture(testGroups(), fakeScene{"surfaces": {card}})
	f.pointer.Set(100, 100)

	f.engine.Update()

	if card.boxShadow == nil {
		t.Fatal("card has no box shadow")
	}
	if got := card.boxShadow.Offset; got != (Vec{28.125, 0}) {
		t.Errorf("shadow offset = %v, want (28.125, 0)", got)
	}
	if card.boxShadow.Blur != 30 || card.boxShadow.Alpha != 0.3 || card.boxShadow.Ring != 0.1 {
		t.Errorf("shadow params = %+v, want blur 30, alpha 0.3, ring 0.1", *card.boxShadow)
	}
	if card.translate != nil || card.textShadow != nil {
		t.Error("surface group wrote a property it does not own")
	}
}

func TestEngine_ControlAtPointer(t *testing.T) {
	btn := newFakeElement(0, 0, 80, 30)
	f := newEngineFixture(testGroups(), fakeScene{"controls": {btn}})
	f.pointer.Set(0, 0)

	f.engine.Update()

	if btn.boxShadow == nil || btn.translate == nil {
		t.Fatal("button effect not applied")
	}
	if !btn.boxShadow.Offset.IsZero() {
		t.Errorf("shadow offset = %v, want zero", btn.boxShadow.Offset)
	}
	if !btn.translate.IsZero() {
		t.Errorf("translate = %v, want zero", *btn.translate)
	}
	if btn.boxShadow.Alpha != 0.4 {
		t.Errorf("alpha = %v, want 0.4", btn.boxShadow.Alpha)
	}
}

func TestEngine_ControlMagneticPull(t *testing.T) {
	btn := newFakeElement(250, 100, 80, 30)
	f := newEngineFixture(testGroups(), fakeScene{"controls": {btn}})
	f.pointer.Set(100, 100)

	f.engine.Update()

	// distance 150, radius 300: decay 0.5, offset 10*0.5 = 5 to the right
	if got := btn.boxShadow.Offset; got != (Vec{5, 0}) {
		t.Errorf("shadow offset = %v, want (5, 0)", got)
	}
	if got := *btn.translate; got != (Vec{-2.5, 0}) {
		t.Errorf("translate = %v, want (-2.5, 0)", got)
	}
	if btn.boxShadow.Alpha != 0.2 {
		t.Errorf("alpha = %v, want 0.2", btn.boxShadow.Alpha)
	}
	if btn.boxShadow.Tint.R != 242 || btn.boxShadow.Tint.G != 5 || btn.boxShadow.Tint.B != 226 {
		t.Errorf("tint = %v, want (242, 5, 226)", btn.boxShadow.Tint)
	}
}

func TestEngine_HeadlineOutOfRangeIsCleared(t *testing.T) {
	h := newFakeElement(0, 0, 300, 40)
	h.textShadow = &Shadow{Offset: Vec{3, 3}}
	f := newEngineFixture(testGroups(), fakeScene{"headlines": {h}})
	f.pointer.Set(1000, 1000)

	stats := f.engine.Update()

	if h.textShadow != nil {
		t.Errorf("text shadow = %+v, want cleared", *h.textShadow)
	}
	if stats.Cleared != 1 || stats.Applied != 0 {
		t.Errorf("stats = %+v, want one cleared", stats)
	}
}

func TestEngine_OutOfRangeClearsEveryGroup(t *testing.T) {
	card := newFakeElement(0, 0, 100, 100)
	btn := newFakeElement(0, 0, 50, 20)
	head := newFakeElement(0, 0, 200, 30)
	f := newEngineFixture(testGroups(), fakeScene{
		"surfaces":  {card},
		"controls":  {btn},
		"headlines": {head},
	})

	f.pointer.Set(10, 0)
	f.engine.Update()
	if card.boxShadow == nil || btn.boxShadow == nil || btn.translate == nil || head.textShadow == nil {
		t.Fatal("effects not applied near the pointer")
	}

	f.pointer.Set(5000, 5000)
	f.engine.Update()
	if card.boxShadow != nil || btn.boxShadow != nil || btn.translate != nil || head.textShadow != nil {
		t.Error("effects not cleared far from the pointer")
	}
}

func TestEngine_BoundaryClears(t *testing.T) {
	h := newFakeElement(400, 0, 10, 10)
	f := newEngineFixture(testGroups(), fakeScene{"headlines": {h}})
	f.pointer.Set(0, 0)

	f.engine.Update()

	if h.textShadow != nil {
		t.Error("element exactly at the radius kept a text shadow")
	}
	if h.textWrites != 1 {
		t.Errorf("text writes = %d, want 1 clear", h.textWrites)
	}
}

func TestEngine_GradientTextNeverWritten(t *testing.T) {
	near := newFakeElement(10, 10, 100, 40)
	near.gradient = true
	far := newFakeElement(5000, 10, 100, 40)
	far.gradient = true
	f := newEngineFixture(testGroups(), fakeScene{"headlines": {near, far}})
	f.pointer.Set(0, 0)

	for i := 0; i < 3; i++ {
		f.engine.Update()
	}

	if near.writes() != 0 || far.writes() != 0 {
		t.Errorf("gradient elements written: near=%d far=%d", near.writes(), far.writes())
	}
	if got := f.engine.LastTick().Skipped; got != 2 {
		t.Errorf("skipped = %d, want 2", got)
	}
}

func TestEngine_GroupIsolation(t *testing.T) {
	card := newFakeElement(100, 100, 200, 100)
	head := newFakeElement(110, 100, 200, 40)
	f := newEngineFixture(testGroups(), fakeScene{
		"surfaces":  {card},
		"headlines": {head},
	})
	f.pointer.Set(90, 90)

	f.engine.Update()

	if card.textWrites != 0 || card.translateWrites != 0 {
		t.Errorf("surface element got headline/control writes: text=%d translate=%d", card.textWrites, card.translateWrites)
	}
	if head.boxWrites != 0 || head.translateWrites != 0 {
		t.Errorf("headline element got surface/control writes: box=%d translate=%d", head.boxWrites, head.translateWrites)
	}
	if card.boxWrites != 1 || head.textWrites != 1 {
		t.Errorf("writes: card box=%d head text=%d, want 1 each", card.boxWrites, head.textWrites)
	}
}

func TestEngine_EmptyRectSkipped(t *testing.T) {
	hidden := &fakeElement{}
	hidden.boxShadow = &Shadow{Offset: Vec{1, 1}}
	f := newEngineFixture(testGroups(), fakeScene{"surfaces": {hidden}})
	f.pointer.Set(1, 1)

	stats := f.engine.Update()

	if hidden.boxShadow != nil {
		t.Error("collapsed element kept its shadow")
	}
	if stats.Skipped != 1 || stats.Applied != 0 {
		t.Errorf("stats = %+v, want one skipped", stats)
	}
}

func TestEngine_NoMatchesIsNotAnError(t *testing.T) {
	f := newEngineFixture(testGroups(), fakeScene{})

	stats := f.engine.Update()

	if stats != (TickStats{}) {
		t.Errorf("stats = %+v, want zero", stats)
	}
}

func TestEngine_PointerDefaultsToViewportCentre(t *testing.T) {
	card := newFakeElement(512, 384, 100, 100)
	f := newEngineFixture(testGroups(), fakeScene{"surfaces": {card}})

	f.engine.Update()

	if !card.boxShadow.Offset.IsZero() {
		t.Errorf("offset = %v, want zero with pointer at the centre", card.boxShadow.Offset)
	}
}

func TestEngine_SyntheticGroup(t *testing.T) {
	el := newFakeElement(30, 40, 2, 2)
	groups := []Group{{
		Name: "synthetic", Selector: "synthetic", Radius: 100, MaxOffset: 4, Multiplier: 3,
		Effect: Effect{Kind: EffectTextShadow, Alpha: 1},
	}}
	f := newEngineFixture(groups, fakeScene{"synthetic": {el}})
	f.pointer.Set(0, 0)

	f.engine.Update()

	// distance 50, decay 0.5, offset (0.6, 0.8) * 4 * 0.5 * 3
	want := Vec{3.6, 4.8}
	got := el.textShadow.Offset
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Errorf("offset = %v, want %v", got, want)
	}
	if el.textShadow.Alpha != 1 {
		t.Errorf("alpha = %v, want 1 (unscaled)", el.textShadow.Alpha)
	}
}

func TestEngine_StartTicksEachFrame(t *testing.T) {
	card := newFakeElement(100, 100, 50, 50)
	f := newEngineFixture(testGroups(), fakeScene{"surfaces": {card}})

	f.engine.Start(context.Background())
	f.source.move(0, 100)
	for i := 0; i < 3; i++ {
		f.frames.Step()
	}

	if f.engine.Ticks() != 3 {
		t.Errorf("ticks = %d, want 3", f.engine.Ticks())
	}
	if card.boxWrites != 3 {
		t.Errorf("box writes = %d, want 3", card.boxWrites)
	}
	if card.boxShadow == nil || card.boxShadow.Offset.X <= 0 {
		t.Errorf("shadow not cast away from pointer at (0, 100): %+v", card.boxShadow)
	}
}

func TestEngine_StartIsIdempotent(t *testing.T) {
	card := newFakeElement(100, 100, 50, 50)
	f := newEngineFixture(testGroups(), fakeScene{"surfaces": {card}})

	f.engine.Start(context.Background())
	f.engine.Start(context.Background())

	if n := len(f.source.listeners); n != 1 {
		t.Errorf("listeners = %d, want 1", n)
	}
	if n := f.frames.Pending(); n != 1 {
		t.Errorf("pending frames = %d, want 1", n)
	}

	f.frames.Step()
	if card.boxWrites != 1 {
		t.Errorf("box writes per tick = %d, want 1", card.boxWrites)
	}
}

func TestEngine_StopCancelsLoop(t *testing.T) {
	card := newFakeElement(100, 100, 50, 50)
	f := newEngineFixture(testGroups(), fakeScene{"surfaces": {card}})

	f.engine.Start(context.Background())
	f.frames.Step()
	f.engine.Stop()
	f.engine.Stop()

	writes := card.writes()
	for i := 0; i < 3; i++ {
		f.frames.Step()
	}

	if card.writes() != writes {
		t.Errorf("writes after Stop: %d, want %d", card.writes(), writes)
	}
	if len(f.source.listeners) != 0 {
		t.Errorf("listeners after Stop = %d, want 0", len(f.source.listeners))
	}
	if f.frames.Pending() != 0 {
		t.Errorf("pending frames after Stop = %d, want 0", f.frames.Pending())
	}
	if f.engine.Running() {
		t.Error("Running() = true after Stop")
	}
}

func TestEngine_RestartAfterStop(t *testing.T) {
	f := newEngineFixture(testGroups(), fakeScene{})

	f.engine.Start(context.Background())
	f.engine.Stop()
	f.engine.Start(context.Background())

	if len(f.source.listeners) != 1 || f.frames.Pending() != 1 {
		t.Errorf("listeners=%d pending=%d, want 1 and 1", len(f.source.listeners), f.frames.Pending())
	}
}

func TestEngine_ContextCancelStopsWithoutWrites(t *testing.T) {
	card := newFakeElement(100, 100, 50, 50)
	f := newEngineFixture(testGroups(), fakeScene{"surfaces": {card}})
	ctx, cancel := context.WithCancel(context.Background())

	f.engine.Start(ctx)
	f.frames.Step()
	cancel()
	writes := card.writes()
	f.frames.Step()
	f.frames.Step()

	if card.writes() != writes {
		t.Errorf("writes after cancel: %d, want %d", card.writes(), writes)
	}
	if f.engine.Running() {
		t.Error("engine still running after cancel")
	}
	if len(f.source.listeners) != 0 {
		t.Error("pointer listener not removed after cancel")
	}
}

func TestEngine_PointerMovesCoalesce(t *testing.T) {
	card := newFakeElement(100, 100, 50, 50)
	f := newEngineFixture(testGroups(), fakeScene{"surfaces": {card}})

	f.engine.Start(context.Background())
	f.source.move(0, 0)
	f.source.move(300, 100)
	f.source.move(200, 100)
	f.frames.Step()

	if got := f.pointer.Position(); got != (Vec{200, 100}) {
		t.Errorf("pointer = %v, want last move (200, 100)", got)
	}
	if card.boxWrites != 1 || card.boxShadow.Offset.X >= 0 {
		t.Errorf("shadow = %+v after %d writes, want one write cast to the left", card.boxShadow, card.boxWrites)
	}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
