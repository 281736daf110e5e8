package proximity

import "sync"

// Pointer holds the latest known pointer position. It has one writer (the
// pointer listener) and one reader (the tick); intermediate moves between
// ticks are coalesced, the last one wins.
type Pointer struct {
	mu  sync.RWMutex
	pos Vec
}

// NewPointer returns a pointer parked at the centre of a viewport of the
// given size, which is where it stays until the first move event.
func NewPointer(viewportW, viewportH float64) *Pointer {
	return &Pointer{pos: Vec{viewportW / 2, viewportH / 2}}
}

// Set records a pointer move. Its signature matches PointerSource listeners.
func (p *Pointer) Set(x, y float64) {
	p.mu.Lock()
	p.pos = Vec{x, y}
	p.mu.Unlock()
}

// Position returns the latest position.
func (p *Pointer) Position() Vec {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pos
}
