package vflow

import (
	"fmt"
	"math"
)

// maxBarIterations bounds the fixed-point search for bar visibility. Both
// flags start off and can only switch on as the viewport shrinks, so two
// changes plus one confirming evaluation always suffice.
const maxBarIterations = 3

// updateViewportDimensions derives the viewport from the flow size and the
// current bar flags.
func (f *Flow) updateViewportDimensions() {
	breadth, length := f.width, f.height
	if !f.vertical {
		breadth, length = f.height, f.width
	}
	if f.needLengthBar {
		breadth -= f.cfg.ScrollBarSize
	}
	if f.needBreadthBar {
		length -= f.cfg.ScrollBarSize
	}
	f.viewportBreadth = math.Max(0, breadth)
	f.viewportLength = math.Max(0, length)
}

// computeBarVisibility decides which bars are needed for the current cells.
// The two decisions feed each other through the viewport size, so they are
// iterated to a fixed point.
func (f *Flow) computeBarVisibility() {
	if f.cells.IsEmpty() {
		f.needLengthBar, f.needBreadthBar = false, false
		f.updateViewportDimensions()
		return
	}
	lengthBar, breadthBar := false, false
	for i := 0; ; i++ {
		f.needLengthBar, f.needBreadthBar = lengthBar, breadthBar
		f.updateViewportDimensions()
		nextLength := f.lengthBarNeeded()
		nextBreadth := f.maxPrefBreadth > f.viewportBreadth
		if nextLength == lengthBar && nextBreadth == breadthBar {
			return
		}
		if i+1 >= maxBarIterations {
			if f.debug {
				panic(fmt.Sprintf("vflow debug: scrollbar visibility did not converge after %d iterations", maxBarIterations))
			}
			Logger().Warn("vflow: scrollbar visibility did not converge", "iterations", maxBarIterations)
			return
		}
		lengthBar, breadthBar = nextLength, nextBreadth
	}
}

// lengthBarNeeded reports whether content extends past the viewport along
// the virtual axis. A last cell ending exactly on the viewport end fits.
func (f *Flow) lengthBarNeeded() bool {
	if f.position > 0 {
		return true
	}
	nonEmpty := 0
	var first, last *Cell
	for i := 0; i < f.cells.Size(); i++ {
		c := f.cells.Get(i)
		if c.Empty() {
			continue
		}
		if first == nil {
			first = c
		}
		last = c
		nonEmpty++
	}
	if f.cellCount > nonEmpty {
		return true
	}
	if first == nil {
		return false
	}
	if f.cellPosition(first) < 0 {
		return true
	}
	return f.cellPosition(last)+f.cellLength(last) > f.viewportLength
}

// updateBars sets the range, visibility and geometry of both bars and the
// corner, and resizes the clip view.
func (f *Flow) updateBars() {
	lb, bb := f.lengthBar(), f.breadthBar()
	lb.visible = f.needLengthBar
	bb.visible = f.needBreadthBar
	f.corner.Visible = lb.visible && bb.visible

	vb, vl := f.viewportBreadth, f.viewportLength
	if bb.visible && f.maxPrefBreadth > 0 {
		newMax := math.Max(1, f.maxPrefBreadth-vb)
		bb.setMax(newMax)
		bb.visibleAmount = (vb / f.maxPrefBreadth) * newMax
	}

	lb.max = 1
	if lb.visible {
		flowLength := f.height
		if !f.vertical {
			flowLength = f.width
		}
		if bb.visible {
			flowLength -= f.cfg.ScrollBarSize
		}
		onScreen, sum := 0, 0.0
		for i := 0; i < f.cells.Size(); i++ {
			c := f.cells.Get(i)
			if c.Empty() {
				continue
			}
			sum += f.cellLength(c)
			if sum > flowLength {
				break
			}
			onScreen++
		}
		if f.cellCount > 0 {
			lb.visibleAmount = float64(onScreen) / float64(f.cellCount)
		}
	}
	lb.setValue(f.position)

	t := f.cfg.ScrollBarSize
	if f.vertical {
		f.hbar.bounds = Rect{X: 0, Y: vl, Width: vb, Height: t}
		f.vbar.bounds = Rect{X: vb, Y: 0, Width: t, Height: vl}
		f.corner.Rect = Rect{X: vb, Y: vl, Width: t, Height: t}
		f.clip = Region{Rect: Rect{Width: vb, Height: vl}, Visible: true}
	} else {
		f.hbar.bounds = Rect{X: 0, Y: vb, Width: vl, Height: t}
		f.vbar.bounds = Rect{X: vl, Y: 0, Width: t, Height: vb}
		f.corner.Rect = Rect{X: vl, Y: vb, Width: t, Height: t}
		f.clip = Region{Rect: Rect{Width: vl, Height: vb}, Visible: true}
	}
	f.updateClipOffset()
}

// hideBars hides both bars and the corner and makes the clip view fill the
// whole flow.
func (f *Flow) hideBars() {
	f.needLengthBar, f.needBreadthBar = false, false
	f.updateViewportDimensions()
	f.hbar.visible = false
	f.vbar.visible = false
	f.corner.Visible = false
	f.clip = Region{Rect: Rect{Width: math.Max(0, f.width), Height: math.Max(0, f.height)}, Visible: true}
	f.updateClipOffset()
}

// updateClipOffset makes the clip's content offset follow the breadth bar.
// A hidden breadth bar resets both to 0.
func (f *Flow) updateClipOffset() {
	bb := f.breadthBar()
	offset := 0.0
	if bb.visible {
		offset = bb.value
	} else {
		bb.setValue(0)
	}
	if f.vertical {
		f.clipX, f.clipY = offset, 0
	} else {
		f.clipX, f.clipY = 0, offset
	}
}
