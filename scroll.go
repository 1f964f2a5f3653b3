package vflow

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds an active position tween.
type scrollAnim struct {
	tween  *gween.Tween
	target float64
}

// ScrollPixels moves the content by delta pixels along the virtual axis
// (positive scrolls towards the end) and returns the distance actually
// moved. It returns 0 when the length bar is hidden, when the flow already
// sits at the end it is moving towards, or when the position cannot change.
// A pending layout runs first; a running animation is cancelled.
func (f *Flow) ScrollPixels(delta float64) float64 {
	if f.inLayout {
		panic("vflow: ScrollPixels called during layout")
	}
	f.anim = nil
	f.Layout()
	var applied float64
	f.exclusive(func() { applied = f.scrollPixels(delta) })
	return applied
}

func (f *Flow) scrollPixels(delta float64) float64 {
	if delta == 0 || !f.lengthBar().visible {
		return 0
	}
	pos := f.position
	if pos == 0 && delta < 0 {
		return 0
	}
	if pos == 1 && delta > 0 {
		return 0
	}
	f.adjustByPixelAmount(delta)
	if pos == f.position {
		return 0
	}

	anchorIndex, anchorPos := -1, 0.0
	if !f.cells.IsEmpty() {
		anchorIndex = f.cells.First().index
		anchorPos = f.cellPosition(f.cells.First())
	}

	if !f.cells.IsEmpty() {
		for i := 0; i < f.cells.Size(); i++ {
			c := f.cells.Get(i)
			f.positionCell(c, f.cellPosition(c)-delta)
		}
		// Cells realized next to the live range (see tryScrollOneCell) may
		// sit anywhere; re-stack everything from the first cell.
		offset := f.cellPosition(f.cells.First())
		for i := 0; i < f.cells.Size(); i++ {
			c := f.cells.Get(i)
			f.positionCell(c, offset)
			offset += f.cellLength(c)
		}

		f.cull()

		if first := f.cells.First(); first != nil {
			f.fillLeadingGap()
		} else {
			f.addLeadingCells(f.computeCurrentIndex(), -f.computeViewportOffset(f.position))
		}

		// Never add empty trailing cells here: when the real cells run out,
		// pull them down so the last one ends on the viewport end.
		if !f.addTrailingCells(false) {
			if last := f.LastVisibleCell(); last != nil {
				end := f.cellPosition(last) + f.cellLength(last)
				if end < f.viewportLength {
					empty := f.viewportLength - end
					for i := 0; i < f.cells.Size(); i++ {
						c := f.cells.Get(i)
						f.positionCell(c, f.cellPosition(c)+empty)
					}
					f.setPosition(1)
					f.fillLeadingGap()
				}
			}
		}
	}

	f.cull()
	f.updateScrollBarsAndCells()
	f.lastPosition = f.position

	if anchorIndex >= 0 {
		if c := f.VisibleCell(anchorIndex); c != nil {
			return anchorPos - f.cellPosition(c)
		}
	}
	return delta
}

// fillLeadingGap adds cells before the first live cell when it starts
// inside the viewport. A first cell at or above the viewport start needs no
// predecessor.
func (f *Flow) fillLeadingGap() {
	first := f.cells.First()
	if first == nil || f.cellPosition(first) <= 0 {
		return
	}
	prevLength := f.CellLength(first.index - 1)
	f.addLeadingCells(first.index-1, f.cellPosition(first)-prevLength)
}

// ScrollTo makes index fully visible with minimal movement. When a
// neighbor of index is live, the target is realized beside it and the
// content pixel-scrolls by its length; otherwise the position jumps so that
// index starts the viewport.
func (f *Flow) ScrollTo(index int) {
	if f.inLayout {
		panic("vflow: ScrollTo called during layout")
	}
	f.anim = nil
	f.Layout()
	if f.cellCount == 0 {
		return
	}
	if index < 0 {
		index = 0
	} else if index >= f.cellCount {
		index = f.cellCount - 1
	}
	if c := f.VisibleCell(index); c != nil {
		f.ScrollToCell(c)
		return
	}
	scrolled := false
	f.exclusive(func() {
		scrolled = f.tryScrollOneCell(index, true) || f.tryScrollOneCell(index, false)
	})
	if scrolled {
		return
	}
	f.adjustPositionToIndex(index)
	f.addAllToPile()
	f.RequestLayout()
}

// tryScrollOneCell realizes targetIndex next to its live neighbor (the
// previous index when moving down or right, the next one otherwise) and
// scrolls by its length.
func (f *Flow) tryScrollOneCell(targetIndex int, downOrRight bool) bool {
	neighbor := targetIndex + 1
	if downOrRight {
		neighbor = targetIndex - 1
	}
	if f.VisibleCell(neighbor) == nil {
		return false
	}
	if downOrRight && f.cells.Last().index != neighbor {
		return false
	}
	if !downOrRight && f.cells.First().index != neighbor {
		return false
	}

	c := f.getAvailableCell(targetIndex)
	f.setCellIndex(c, targetIndex)
	f.resizeCell(c)
	f.growMaxPrefBreadth(c)
	c.Visible = true
	length := f.cellLength(c)
	if downOrRight {
		last := f.cells.Last()
		f.positionCell(c, f.cellPosition(last)+f.cellLength(last))
		f.cells.AddLast(c)
		if f.scrollPixels(length) == 0 {
			f.cull()
		}
	} else {
		first := f.cells.First()
		f.positionCell(c, f.cellPosition(first)-length)
		f.cells.AddFirst(c)
		if f.scrollPixels(-length) == 0 {
			f.cull()
		}
	}
	return true
}

// ScrollToTop places index at the start of the viewport. Indices at or past
// the last index scroll to the end; negative indices scroll to the start.
func (f *Flow) ScrollToTop(index int) {
	f.anim = nil
	f.setPosition(f.positionForTop(index))
	f.RequestLayout()
}

// ScrollToTopCell pixel-scrolls a live cell to the start of the viewport.
func (f *Flow) ScrollToTopCell(c *Cell) {
	if c == nil {
		return
	}
	f.ScrollPixels(f.cellPosition(c))
}

// ScrollToBottomCell pixel-scrolls a live cell to the end of the viewport.
func (f *Flow) ScrollToBottomCell(c *Cell) {
	if c == nil {
		return
	}
	f.ScrollPixels(f.cellPosition(c) + f.cellLength(c) - f.viewportLength)
}

// ScrollToCell pixel-scrolls just enough to make a live cell fully visible.
func (f *Flow) ScrollToCell(c *Cell) {
	if c == nil {
		return
	}
	start := f.cellPosition(c)
	end := start + f.cellLength(c)
	switch {
	case start < 0:
		f.ScrollPixels(start)
	case end > f.viewportLength:
		f.ScrollPixels(end - f.viewportLength)
	}
}

// AnimateTo tweens the position to p over duration seconds using easeFn
// (ease.OutCubic when nil). The tween advances in Update; SetPosition,
// ScrollPixels and the index scrolls cancel it.
func (f *Flow) AnimateTo(p float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	p = clamp01(p)
	f.anim = &scrollAnim{
		tween:  gween.New(float32(f.position), float32(p), duration, easeFn),
		target: p,
	}
}

// AnimateToIndex tweens the position until index starts the viewport.
func (f *Flow) AnimateToIndex(index int, duration float32, easeFn ease.TweenFunc) {
	f.AnimateTo(f.positionForTop(index), duration, easeFn)
}

// IsAnimating reports whether a position tween is running.
func (f *Flow) IsAnimating() bool { return f.anim != nil }

// Update advances a running position tween by dt seconds and runs any
// pending layout. Call it once per frame.
func (f *Flow) Update(dt float32) {
	if f.anim != nil {
		val, done := f.anim.tween.Update(dt)
		p := float64(val)
		if done {
			// The tween runs in float32; land on the exact target.
			p = f.anim.target
			f.anim = nil
		}
		f.requestPosition(p)
	}
	f.Layout()
}
