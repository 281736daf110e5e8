// Package input turns polled cursor and touch positions into pointer-move
// events.
package input

// Tracker is a pointer source fed by polling. The host calls Observe once per
// frame with the current position; listeners hear about it only when it
// differs from the previous one. The first observation sets the baseline and
// is not reported, so consumers keep their default until the pointer really
// moves.
type Tracker struct {
	nextID    int
	listeners map[int]func(x, y float64)
	order     []int

	x, y float64
	seen bool
}

func NewTracker() *Tracker {
	return &Tracker{listeners: make(map[int]func(x, y float64))}
}

// Subscribe registers fn and returns a function that removes it.
func (t *Tracker) Subscribe(fn func(x, y float64)) (unsubscribe func()) {
	t.nextID++
	id := t.nextID
	t.listeners[id] = fn
	t.order = append(t.order, id)
	return func() {
		delete(t.listeners, id)
		for i, v := range t.order {
			if v == id {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
	}
}

// Listeners returns the number of registered listeners.
func (t *Tracker) Listeners() int { return len(t.listeners) }

// Position returns the last observed position and whether there is one.
func (t *Tracker) Position() (x, y float64, ok bool) {
	return t.x, t.y, t.seen
}

// Observe records a polled position and notifies listeners if it moved.
// It reports whether a move was dispatched.
func (t *Tracker) Observe(x, y float64) bool {
	if !t.seen {
		t.x, t.y, t.seen = x, y, true
		return false
	}
	if x == t.x && y == t.y {
		return false
	}
	t.x, t.y = x, y
	for _, id := range append([]int(nil), t.order...) {
		if fn, ok := t.listeners[id]; ok {
			fn(x, y)
		}
	}
	return true
}
