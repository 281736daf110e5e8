package proximity

import "sync"

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameScheduler invokes callbacks once before the next repaint.
type FrameScheduler interface {
	RequestFrame(cb func()) FrameID
	CancelFrame(id FrameID)
}

// FrameLoop is a FrameScheduler driven by the host's frame loop: the host
// calls Step once per frame. Callbacks requested while a step runs are
// deferred to the following step, so a callback that re-requests itself runs
// exactly once per frame.
type FrameLoop struct {
	mu      sync.Mutex
	nextID  FrameID
	pending map[FrameID]func()
	order   []FrameID
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{pending: make(map[FrameID]func())}
}

// RequestFrame schedules cb for the next Step.
func (l *FrameLoop) RequestFrame(cb func()) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := l.nextID
	l.pending[id] = cb
	l.order = append(l.order, id)
	return id
}

// CancelFrame drops a pending request. Unknown or already run ids are ignored.
func (l *FrameLoop) CancelFrame(id FrameID) {
	l.mu.Lock()
	delete(l.pending, id)
	l.mu.Unlock()
}

// Pending returns the number of outstanding requests.
func (l *FrameLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Step runs every callback requested before the call, in request order. A
// request cancelled by an earlier callback of the same step does not run.
func (l *FrameLoop) Step() {
	l.mu.Lock()
	order := l.order
	l.order = nil
	l.mu.Unlock()

	for _, id := range order {
		l.mu.Lock()
		cb, ok := l.pending[id]
		delete(l.pending, id)
		l.mu.Unlock()
		if ok {
			cb()
		}
	}
}
