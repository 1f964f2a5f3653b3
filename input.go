package vflow

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the primary pointer between frames.
type pointerState struct {
	down    bool
	panning bool
	lastX   float64
	lastY   float64

	// Thumb drag in progress on dragBar.
	dragBar   *ScrollBar
	dragStart float64
	dragValue float64
}

// HandleInput consumes one injected event if any are queued; otherwise it
// polls the mouse wheel, cursor and left button from ebiten. Call it once
// per frame before Update.
func (f *Flow) HandleInput() {
	if f.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if dx, dy := ebiten.Wheel(); (dx != 0 || dy != 0) && f.Bounds().Contains(x, y) {
		f.handleWheel(dx, dy, ebiten.IsKeyPressed(ebiten.KeyControl))
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !f.pointer.down:
		f.handlePress(x, y)
	case pressed && f.pointer.down:
		f.handleMove(x, y)
	case !pressed && f.pointer.down:
		f.handleRelease()
	}
}

// handleWheel scrolls by wheel notches. A vertical flow scrolls its virtual
// axis with dy and its breadth bar with dx. A horizontal flow scrolls its
// virtual axis with whichever of dx and dy dominates; dy moves the breadth
// bar only when dx dominates.
func (f *Flow) handleWheel(dx, dy float64, page bool) {
	step := f.cfg.WheelLineStep
	if page {
		step *= f.cfg.WheelPageMultiplier
	}
	var virtualDelta, nonVirtualDelta float64
	if f.vertical {
		virtualDelta, nonVirtualDelta = dy*step, dx*step
	} else if math.Abs(dx) > math.Abs(dy) {
		virtualDelta, nonVirtualDelta = dx*step, dy*step
	} else {
		virtualDelta = dy * step
	}

	if virtualDelta != 0 {
		f.ScrollPixels(-virtualDelta)
	}
	if bb := f.breadthBar(); bb.visible && nonVirtualDelta != 0 {
		bb.SetValue(bb.value - nonVirtualDelta)
	}
}

func (f *Flow) handlePress(x, y float64) {
	if !f.Bounds().Contains(x, y) {
		return
	}
	p := &f.pointer
	p.down = true
	p.lastX, p.lastY = x, y
	lx, ly := x-f.X, y-f.Y

	for _, b := range [...]*ScrollBar{f.vbar, f.hbar} {
		if b.visible && b.bounds.Contains(lx, ly) {
			f.pressBar(b, lx, ly)
			return
		}
	}
	if f.corner.Visible && f.corner.Contains(lx, ly) {
		return
	}
	p.panning = f.cfg.Pannable
}

// pressBar starts a thumb drag, or pages towards the pointer when the track
// outside the thumb is pressed.
func (f *Flow) pressBar(b *ScrollBar, lx, ly float64) {
	thumb := b.ThumbRect(f.cfg.MinThumbLength)
	along, thumbStart := ly, thumb.Y
	if b.orientation == Horizontal {
		along, thumbStart = lx, thumb.X
	}
	if thumb.Contains(lx, ly) {
		f.pointer.dragBar = b
		f.pointer.dragStart = along
		f.pointer.dragValue = b.value
		return
	}
	dir := 1.0
	if along < thumbStart {
		dir = -1
	}
	if b.virtual {
		f.ScrollPixels(dir * f.viewportLength)
		return
	}
	b.SetValue(b.value + dir*b.visibleAmount)
}

func (f *Flow) handleMove(x, y float64) {
	p := &f.pointer
	if b := p.dragBar; b != nil {
		along := y - f.Y
		if b.orientation == Horizontal {
			along = x - f.X
		}
		b.SetValue(p.dragValue + b.valueForThumbDelta(along-p.dragStart, f.cfg.MinThumbLength))
		return
	}
	if !p.panning {
		return
	}

	xDelta, yDelta := p.lastX-x, p.lastY-y
	virtualDelta, nonVirtualDelta := yDelta, xDelta
	if !f.vertical {
		virtualDelta, nonVirtualDelta = xDelta, yDelta
	}

	if f.ScrollPixels(virtualDelta) != 0 {
		if f.vertical {
			p.lastY = y
		} else {
			p.lastX = x
		}
	}

	bb := f.breadthBar()
	if !bb.visible {
		return
	}
	v := bb.value + nonVirtualDelta
	switch {
	case v < bb.min:
		bb.SetValue(bb.min)
	case v > bb.max:
		bb.SetValue(bb.max)
	default:
		bb.SetValue(v)
		if f.vertical {
			p.lastX = x
		} else {
			p.lastY = y
		}
	}
}

func (f *Flow) handleRelease() {
	f.pointer = pointerState{}
}
