package vflow

type inputKind uint8

const (
	inputWheel inputKind = iota
	inputPress
	inputMove
	inputRelease
)

// inputEvent is a single injected input event in screen coordinates.
type inputEvent struct {
	kind   inputKind
	x, y   float64
	dx, dy float64
	page   bool
}

// InjectWheel queues a wheel event of dx, dy notches. The event is consumed
// on the next HandleInput call, exactly like a polled wheel.
func (f *Flow) InjectWheel(dx, dy float64) {
	f.injectQueue = append(f.injectQueue, inputEvent{kind: inputWheel, dx: dx, dy: dy})
}

// InjectPageWheel queues a wheel event scaled by the page multiplier, as if
// Control were held.
func (f *Flow) InjectPageWheel(dx, dy float64) {
	f.injectQueue = append(f.injectQueue, inputEvent{kind: inputWheel, dx: dx, dy: dy, page: true})
}

// InjectPress queues a left-button press at the given screen coordinates.
func (f *Flow) InjectPress(x, y float64) {
	f.injectQueue = append(f.injectQueue, inputEvent{kind: inputPress, x: x, y: y})
}

// InjectMove queues a pointer move with the button held.
func (f *Flow) InjectMove(x, y float64) {
	f.injectQueue = append(f.injectQueue, inputEvent{kind: inputMove, x: x, y: y})
}

// InjectRelease queues a left-button release.
func (f *Flow) InjectRelease(x, y float64) {
	f.injectQueue = append(f.injectQueue, inputEvent{kind: inputRelease, x: x, y: y})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). The sequence consumes
// frames calls to HandleInput. Minimum frames is 2.
func (f *Flow) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	f.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		f.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	f.InjectRelease(toX, toY)
}

// PendingInput returns the number of queued injected events.
func (f *Flow) PendingInput() int { return len(f.injectQueue) }

// processInjectedInput pops one event and feeds it through the same
// handlers as polled input. It reports whether an event was consumed.
func (f *Flow) processInjectedInput() bool {
	if len(f.injectQueue) == 0 {
		return false
	}
	evt := f.injectQueue[0]
	copy(f.injectQueue, f.injectQueue[1:])
	f.injectQueue = f.injectQueue[:len(f.injectQueue)-1]

	switch evt.kind {
	case inputWheel:
		f.handleWheel(evt.dx, evt.dy, evt.page)
	case inputPress:
		f.handlePress(evt.x, evt.y)
	case inputMove:
		if f.pointer.down {
			f.handleMove(evt.x, evt.y)
		}
	case inputRelease:
		if f.pointer.down {
			f.handleMove(evt.x, evt.y)
			f.handleRelease()
		}
	}
	return true
}
