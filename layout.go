package vflow

import (
	"fmt"
	"os"
	"time"
)

// layoutChildren is one reflow pass. It realizes the cells covering the
// viewport for the current position, decides bar visibility and places
// cells, bars, corner and clip.
func (f *Flow) layoutChildren() {
	var start time.Time
	if f.debug {
		start = time.Now()
	}

	switch {
	case f.needsRecreate:
		if f.pendingFactory != nil {
			f.factory, f.pendingFactory = f.pendingFactory, nil
		}
		f.recreateCells()
	case f.needsRebuild:
		f.lastWidth, f.lastHeight = -1, -1
		f.releaseAccumCell()
		for i := 0; i < f.cells.Size(); i++ {
			f.cells.Get(i).updateIndex(-1)
		}
		f.addAllToPile()
	case f.needsReconfigure:
		f.maxPrefBreadth = -1
		f.lastWidth, f.lastHeight = -1, -1
	}
	f.needsRecreate, f.needsRebuild, f.needsReconfigure = false, false, false
	if f.needsCellsLayout {
		for i := 0; i < f.cells.Size(); i++ {
			f.cells.Get(i).needsLayout = true
		}
		f.needsCellsLayout = false
	}

	if f.width <= 0 || f.height <= 0 || f.cellCount == 0 {
		f.addAllToPile()
		f.hideBars()
		f.finishPass(start)
		return
	}

	cellNeedsLayout := false
	for i := 0; i < f.cells.Size(); i++ {
		if f.cells.Get(i).needsLayout {
			cellNeedsLayout = true
			break
		}
	}

	if !cellNeedsLayout {
		sizeChanged := false
		if first := f.FirstVisibleCell(); first != nil {
			b, l := f.cellBreadth(first), f.cellPrefLength(first)
			sizeChanged = b != f.lastCellBreadth || l != f.lastCellLength
			f.lastCellBreadth, f.lastCellLength = b, l
		}
		if !sizeChanged &&
			f.width == f.lastWidth &&
			f.height == f.lastHeight &&
			f.cellCount == f.lastCellCount &&
			f.vertical == f.lastVertical &&
			f.position == f.lastPosition {
			return
		}
	}

	needTrailingCells := false
	rebuild := cellNeedsLayout ||
		f.vertical != f.lastVertical ||
		f.cells.IsEmpty() ||
		f.maxPrefBreadth == -1 ||
		f.position != f.lastPosition ||
		f.cellCount != f.lastCellCount ||
		(f.vertical && f.height < f.lastHeight) ||
		(!f.vertical && f.width < f.lastWidth)

	if !rebuild {
		for i := 0; i < f.cells.Size(); i++ {
			if f.cellBreadth(f.cells.Get(i)) > f.maxPrefBreadth {
				rebuild = true
				break
			}
		}
		grew := (f.vertical && f.height > f.lastHeight) || (!f.vertical && f.width > f.lastWidth)
		// The viewport offset scales with the viewport length, so away from
		// the start the old cells no longer sit where the position puts them.
		if !rebuild && grew {
			if f.position == 0 {
				needTrailingCells = true
			} else {
				rebuild = true
			}
		}
	}

	f.updateViewportDimensions()

	currentIndex := f.computeCurrentIndex()
	if f.lastCellCount != f.cellCount {
		f.keepAnchorOnCountChange(currentIndex)
		currentIndex = f.computeCurrentIndex()
	}

	if rebuild {
		f.rebuildFrom(currentIndex)
	} else if needTrailingCells {
		f.addTrailingCells(true)
	}

	// Cells were realized for the viewport implied by the previous pass's
	// bars. When the bars change the viewport length, realize again.
	for range maxBarIterations {
		vl := f.viewportLength
		f.computeBarVisibility()
		if f.viewportLength == vl {
			break
		}
		f.rebuildFrom(f.computeCurrentIndex())
	}

	f.fitCells()
	f.repositionCells()
	// Re-anchoring can leave cells past either end or uncover an edge.
	f.cull()
	f.fillLeadingGap()
	f.addTrailingCells(true)
	f.updateBars()
	if first := f.FirstVisibleCell(); first != nil {
		f.lastCellBreadth, f.lastCellLength = f.cellBreadth(first), f.cellPrefLength(first)
	}
	f.finishPass(start)
}

// finishPass records the state the next pass compares against, trims the
// pile and reports the pass.
func (f *Flow) finishPass(start time.Time) {
	f.lastWidth, f.lastHeight = f.width, f.height
	f.lastCellCount = f.cellCount
	f.lastVertical = f.vertical
	f.lastPosition = f.position
	f.cleanPile()

	if f.debug {
		debugCheckCells(f)
		_, _ = fmt.Fprintf(os.Stderr, "[vflow] layout: %v | cells: %d | pile: %d | position: %.4f\n",
			time.Since(start), f.cells.Size(), f.pile.Size(), f.position)
	}
	Logger().Debug("vflow: layout",
		"cells", f.cells.Size(),
		"pile", f.pile.Size(),
		"lengthBar", f.needLengthBar,
		"breadthBar", f.needBreadthBar)
	f.emit(Event{Type: EventLayout, Position: f.position, Cells: f.cells.Size(), Pile: f.pile.Size()})
}

// keepAnchorOnCountChange keeps the view steady when the cell count changes:
// the extremities stay put, an index past the new end snaps to the end, and
// otherwise the first live cell keeps its index and pixel offset.
func (f *Flow) keepAnchorOnCountChange(currentIndex int) {
	switch {
	case f.position == 0 || f.position == 1:
	case currentIndex >= f.cellCount:
		f.setPosition(1)
	case !f.cells.IsEmpty():
		first := f.cells.First()
		if first.index >= f.cellCount {
			f.setPosition(1)
			return
		}
		firstOffset := f.cellPosition(first)
		f.adjustPositionToIndex(first.index)
		viewportTopToCellTop := -f.computeOffsetForCell(first.index)
		f.adjustByPixelAmount(viewportTopToCellTop - firstOffset)
	}
}

// rebuildFrom returns every live cell to the pile and lays out again from
// the current position.
func (f *Flow) rebuildFrom(currentIndex int) {
	f.addAllToPile()
	offset := -f.computeViewportOffset(f.position)
	f.addLeadingCells(currentIndex, offset)
	f.addTrailingCells(true)
}

func (f *Flow) cellPrefLength(c *Cell) float64 {
	if f.cfg.FixedCellSize > 0 {
		return f.cfg.FixedCellSize
	}
	if f.vertical {
		return c.prefHeight(c.Width)
	}
	return c.prefWidth(c.Height)
}

// addLeadingCells adds cells from currentIndex towards index 0, the first
// one starting at startOffset, until the viewport start is covered.
func (f *Flow) addLeadingCells(currentIndex int, startOffset float64) {
	offset := startOffset
	index := currentIndex
	first := true

	// Position 1 anchors the end of the last cell on the viewport end.
	if index == f.cellCount && offset == f.viewportLength {
		index--
		first = false
	}

	for index >= 0 && (offset > 0 || first) {
		c := f.getAvailableCell(index)
		f.setCellIndex(c, index)
		f.resizeCell(c)
		f.cells.AddFirst(c)
		if first {
			first = false
		} else {
			offset -= f.cellLength(c)
		}
		f.positionCell(c, offset)
		f.growMaxPrefBreadth(c)
		c.Visible = true
		index--
	}

	// Index 0 must not start below the viewport start.
	if f.cells.IsEmpty() {
		f.lengthBar().setValue(0)
		return
	}
	c := f.cells.First()
	if c.index == 0 && f.cellPosition(c) > 0 {
		f.setPosition(0)
		offset = 0
		for i := 0; i < f.cells.Size(); i++ {
			c := f.cells.Get(i)
			f.positionCell(c, offset)
			offset += f.cellLength(c)
		}
	}
}

// addTrailingCells appends cells after the last live cell until the
// viewport end is covered. With fillEmptyCells, indices past the cell count
// become empty filler cells. It reports whether the space was filled with
// real (non-empty) cells.
func (f *Flow) addTrailingCells(fillEmptyCells bool) bool {
	if f.cells.IsEmpty() {
		return false
	}
	startCell := f.cells.Last()
	offset := f.cellPosition(startCell) + f.cellLength(startCell)
	index := startCell.index + 1
	filledWithNonEmpty := index <= f.cellCount
	vl := f.viewportLength
	fillers := 0

	if offset < 0 && !fillEmptyCells {
		return false
	}

	for offset < vl {
		if index >= f.cellCount {
			filledWithNonEmpty = false
			if !fillEmptyCells {
				return false
			}
			// Zero-length filler cells would never cover the viewport.
			if float64(fillers) > vl {
				Logger().Warn("vflow: filler cells stopped, cells report no length", "index", index)
				break
			}
			fillers++
		}
		c := f.getAvailableCell(index)
		f.setCellIndex(c, index)
		f.resizeCell(c)
		f.cells.AddLast(c)
		f.positionCell(c, offset)
		f.growMaxPrefBreadth(c)
		offset += f.cellLength(c)
		c.Visible = true
		index++
	}

	// When the last real cell ends before the viewport end while earlier
	// indices are scrolled out, shift everything towards the end and pull
	// in leading cells so the last cell lines up with the viewport end.
	firstCell := f.cells.First()
	index = firstCell.index
	lastNonEmpty := f.LastVisibleCell()
	start := f.cellPosition(firstCell)
	if lastNonEmpty == nil || !fillEmptyCells {
		return filledWithNonEmpty
	}
	end := f.cellPosition(lastNonEmpty) + f.cellLength(lastNonEmpty)
	if (index != 0 || start < 0) && lastNonEmpty.index == f.cellCount-1 && end < vl {
		prospectiveEnd := end
		distance := vl - end
		for prospectiveEnd < vl && index != 0 && -start < distance {
			index--
			c := f.getAvailableCell(index)
			f.setCellIndex(c, index)
			f.resizeCell(c)
			f.cells.AddFirst(c)
			length := f.cellLength(c)
			start -= length
			prospectiveEnd += length
			f.positionCell(c, start)
			f.growMaxPrefBreadth(c)
			c.Visible = true
		}

		firstCell = f.cells.First()
		start = f.cellPosition(firstCell)
		delta := vl - end
		if firstCell.index == 0 && delta > -start {
			delta = -start
		}
		for i := 0; i < f.cells.Size(); i++ {
			c := f.cells.Get(i)
			f.positionCell(c, f.cellPosition(c)+delta)
		}
		for !f.cells.IsEmpty() && f.cellPosition(f.cells.Last()) >= vl {
			f.addToPile(f.cells.RemoveLast())
		}

		start = f.cellPosition(firstCell)
		if firstCell.index == 0 && start == 0 {
			f.setPosition(0)
		} else if f.position != 1 {
			f.setPosition(1)
		}
	}
	return filledWithNonEmpty
}

// fitCells gives every live cell the uniform breadth and its length.
func (f *Flow) fitCells() {
	for i := 0; i < f.cells.Size(); i++ {
		f.resizeCell(f.cells.Get(i))
	}
}

// repositionCells lays the live cells out contiguously around the cell
// anchoring the current position.
func (f *Flow) repositionCells() {
	if f.cells.IsEmpty() {
		return
	}
	currOffset := -f.computeViewportOffset(f.position)
	currIndex := f.computeCurrentIndex() - f.cells.First().index
	size := f.cells.Size()

	offset := currOffset
	for i := currIndex - 1; i >= 0 && i < size; i-- {
		c := f.cells.Get(i)
		offset -= f.cellLength(c)
		f.positionCell(c, offset)
	}
	offset = currOffset
	for i := currIndex; i >= 0 && i < size; i++ {
		c := f.cells.Get(i)
		f.positionCell(c, offset)
		offset += f.cellLength(c)
	}
}

func (f *Flow) updateScrollBarsAndCells() {
	f.fitCells()
	f.repositionCells()
	f.updateBars()
}
