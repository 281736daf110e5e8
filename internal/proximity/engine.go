// Package proximity implements the cursor-light effect: the pointer acts as a
// light source and tracked elements cast shadows away from it, fading out
// linearly with distance.
//
// The engine samples the latest pointer position once per frame, resolves
// each group's elements from the scene, and writes or clears the group's
// effect on every element. Apart from the pointer cell it keeps no state
// between ticks.
package proximity

import (
	"context"
	"log"
)

// Element is a scene element the engine can measure and style.
type Element interface {
	// Bounds returns the layout box in viewport coordinates.
	Bounds() Rect
	// HasGradientText reports whether the element or a descendant renders
	// gradient-filled text, which a text shadow would break.
	HasGradientText() bool

	SetBoxShadow(Shadow)
	ClearBoxShadow()
	SetTranslate(Vec)
	ClearTranslate()
	SetTextShadow(Shadow)
	ClearTextShadow()
}

// Scene resolves a selector to the elements currently matching it.
type Scene interface {
	Query(selector string) []Element
}

// PointerSource delivers pointer moves in viewport pixels.
type PointerSource interface {
	Subscribe(fn func(x, y float64)) (unsubscribe func())
}

// TickStats counts what one tick did.
type TickStats struct {
	Applied int
	Cleared int
	Skipped int
}

// Engine runs the proximity effect for a fixed table of groups.
type Engine struct {
	groups  []Group
	scene   Scene
	pointer *Pointer
	source  PointerSource
	frames  FrameScheduler
	logger  *log.Logger

	running     bool
	ctx         context.Context
	unsubscribe func()
	frame       FrameID
	last        TickStats
	ticks       uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine. The pointer cell is owned by the caller so it
// can be seeded and inspected; the engine only writes it through the source
// subscription.
func NewEngine(groups []Group, scene Scene, pointer *Pointer, source PointerSource, frames FrameScheduler, opts ...Option) *Engine {
	e := &Engine{
		groups:  append([]Group(nil), groups...),
		scene:   scene,
		pointer: pointer,
		source:  source,
		frames:  frames,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Groups returns a copy of the group table.
func (e *Engine) Groups() []Group {
	return append([]Group(nil), e.groups...)
}

// Running reports whether the frame loop is active.
func (e *Engine) Running() bool { return e.running }

// LastTick returns the counters of the most recent tick.
func (e *Engine) LastTick() TickStats { return e.last }

// Ticks returns how many ticks have run since creation.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Start subscribes to pointer moves and requests the first frame. Calling it
// while running does nothing. Cancelling ctx stops the loop at the next
// frame without writing any style.
func (e *Engine) Start(ctx context.Context) {
	if e.running {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	e.running = true
	e.ctx = ctx
	e.unsubscribe = e.source.Subscribe(e.pointer.Set)
	e.frame = e.frames.RequestFrame(e.tick)
	e.logger.Printf("proximity: started with %d groups", len(e.groups))
}

// Stop cancels the pending frame and removes the pointer listener. Calling
// it while stopped does nothing.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.frames.CancelFrame(e.frame)
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.logger.Printf("proximity: stopped after %d ticks", e.ticks)
}

func (e *Engine) tick() {
	if !e.running {
		return
	}
	if err := e.ctx.Err(); err != nil {
		e.logger.Printf("proximity: %v", err)
		e.Stop()
		return
	}
	e.Update()
	e.frame = e.frames.RequestFrame(e.tick)
}

// Update runs one read-compute-write pass over every group at the current
// pointer position.
func (e *Engine) Update() TickStats {
	pointer := e.pointer.Position()
	var stats TickStats
	for _, g := range e.groups {
		for _, el := range e.scene.Query(g.Selector) {
			switch g.apply(el, pointer) {
			case outcomeApplied:
				stats.Applied++
			case outcomeCleared:
				stats.Cleared++
			case outcomeSkipped:
				stats.Skipped++
			}
		}
	}
	e.last = stats
	e.ticks++
	return stats
}
