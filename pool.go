package vflow

// getAvailableCell returns a cell for prefIndex: a piled cell last bound to
// the same index, else the most recently piled cell, else a new cell from
// the factory.
func (f *Flow) getAvailableCell(prefIndex int) *Cell {
	if i := f.pile.IndexOf(func(c *Cell) bool { return c.index == prefIndex }); i >= 0 {
		return f.pile.Remove(i)
	}
	if !f.pile.IsEmpty() {
		return f.pile.RemoveLast()
	}
	c := f.newCell()
	f.emit(Event{Type: EventCellCreated, CellID: c.ID, Index: prefIndex})
	return c
}

func (f *Flow) newCell() *Cell {
	if f.factory == nil {
		panic("vflow: no cell factory set")
	}
	c := f.factory(f)
	if c == nil {
		panic("vflow: cell factory returned nil")
	}
	c.flow = f
	c.Visible = false
	return c
}

// setCellIndex binds c to index.
func (f *Flow) setCellIndex(c *Cell, index int) {
	old := c.index
	c.updateIndex(index)
	if old >= 0 && old != index {
		f.emit(Event{Type: EventCellRecycled, CellID: c.ID, Index: index})
	}
}

// resizeCell sizes c: uniform breadth across cells, preferred (or fixed)
// length.
func (f *Flow) resizeCell(c *Cell) {
	breadth := f.viewportBreadth
	if f.maxPrefBreadth > breadth {
		breadth = f.maxPrefBreadth
	}
	fixed := f.cfg.FixedCellSize
	if f.vertical {
		c.Width = breadth
		if fixed > 0 {
			c.Height = fixed
		} else {
			c.Height = c.prefHeight(breadth)
		}
	} else {
		c.Height = breadth
		if fixed > 0 {
			c.Width = fixed
		} else {
			c.Width = c.prefWidth(breadth)
		}
	}
	c.needsLayout = false
}

// positionCell places c at offset along the virtual axis.
func (f *Flow) positionCell(c *Cell, offset float64) {
	if f.vertical {
		c.X, c.Y = 0, offset
	} else {
		c.X, c.Y = offset, 0
	}
}

func (f *Flow) cellPosition(c *Cell) float64 {
	if f.vertical {
		return c.Y
	}
	return c.X
}

func (f *Flow) cellLength(c *Cell) float64 {
	if c == nil {
		return 0
	}
	if f.cfg.FixedCellSize > 0 {
		return f.cfg.FixedCellSize
	}
	if f.vertical {
		return c.Height
	}
	return c.Width
}

func (f *Flow) cellBreadth(c *Cell) float64 {
	if f.vertical {
		return c.prefWidth(-1)
	}
	return c.prefHeight(-1)
}

func (f *Flow) growMaxPrefBreadth(c *Cell) {
	if b := f.cellBreadth(c); b > f.maxPrefBreadth {
		f.maxPrefBreadth = b
	}
}

func (f *Flow) addToPile(c *Cell) {
	f.pile.AddLast(c)
}

func (f *Flow) addAllToPile() {
	for !f.cells.IsEmpty() {
		f.addToPile(f.cells.RemoveFirst())
	}
}

// cleanPile hides piled cells and destroys the oldest ones beyond the
// retention limit.
func (f *Flow) cleanPile() {
	for i := 0; i < f.pile.Size(); i++ {
		f.pile.Get(i).Visible = false
	}
	limit := f.cfg.MaxPileSize
	if limit <= 0 {
		return
	}
	for f.pile.Size() > limit {
		f.disposeCell(f.pile.RemoveFirst())
	}
}

// cull moves cells lying entirely outside the viewport to the pile.
func (f *Flow) cull() {
	vl := f.viewportLength
	for i := f.cells.Size() - 1; i >= 0; i-- {
		c := f.cells.Get(i)
		start := f.cellPosition(c)
		end := start + f.cellLength(c)
		if start >= vl || end <= 0 {
			f.addToPile(f.cells.Remove(i))
		}
	}
}

func (f *Flow) disposeCell(c *Cell) {
	id := c.ID
	c.dispose()
	f.emit(Event{Type: EventCellDisposed, CellID: id, Index: -1})
}

// recreateCells destroys every cell, live and piled, and the measuring cell.
func (f *Flow) recreateCells() {
	for !f.cells.IsEmpty() {
		f.disposeCell(f.cells.RemoveFirst())
	}
	for !f.pile.IsEmpty() {
		f.disposeCell(f.pile.RemoveFirst())
	}
	if f.accumCell != nil {
		f.accumCell.dispose()
		f.accumCell = nil
	}
	f.maxPrefBreadth = -1
	f.lastWidth, f.lastHeight = -1, -1
}

// --- measurement ---

// measuringCell returns the live cell for index, or the accumulation cell
// bound to index. release is true for the accumulation cell, which must be
// handed back with releaseAccumCell.
func (f *Flow) measuringCell(index int) (c *Cell, release bool) {
	if c := f.VisibleCell(index); c != nil {
		return c, false
	}
	if f.accumCell == nil {
		if f.factory == nil {
			return nil, false
		}
		f.accumCell = f.newCell()
	}
	f.accumCell.updateIndex(index)
	f.resizeCell(f.accumCell)
	return f.accumCell, true
}

func (f *Flow) releaseAccumCell() {
	if f.accumCell != nil {
		f.accumCell.updateIndex(-1)
	}
}

// CellLength returns the length along the virtual axis of index: the live
// cell's length when realized, otherwise a measurement through the
// accumulation cell. Live cells are never disturbed.
func (f *Flow) CellLength(index int) float64 {
	if f.cfg.FixedCellSize > 0 {
		return f.cfg.FixedCellSize
	}
	c, release := f.measuringCell(index)
	if c == nil {
		return 0
	}
	l := f.cellLength(c)
	if release {
		f.releaseAccumCell()
	}
	return l
}

// CellBreadth returns the preferred breadth of index.
func (f *Flow) CellBreadth(index int) float64 {
	c, release := f.measuringCell(index)
	if c == nil {
		return 0
	}
	b := f.cellBreadth(c)
	if release {
		f.releaseAccumCell()
	}
	return b
}

// HasAccumCell reports whether the measuring cell currently exists.
func (f *Flow) HasAccumCell() bool { return f.accumCell != nil }

// --- queries ---

// Cells returns the live cells in ascending index order.
func (f *Flow) Cells() []*Cell { return f.cells.Slice() }

// PileSize returns the number of detached cells awaiting reuse.
func (f *Flow) PileSize() int { return f.pile.Size() }

// VisibleCell returns the live cell bound to index, or nil.
func (f *Flow) VisibleCell(index int) *Cell {
	if f.cells.IsEmpty() {
		return nil
	}
	last := f.cells.Last()
	if last.index == index {
		return last
	}
	first := f.cells.First()
	if first.index == index {
		return first
	}
	if i := index - first.index; index > first.index && index < last.index && i < f.cells.Size() {
		if c := f.cells.Get(i); c.index == index {
			return c
		}
	}
	return nil
}

// FirstVisibleCell returns the first live cell when it is not empty.
func (f *Flow) FirstVisibleCell() *Cell {
	if f.cells.IsEmpty() || f.viewportLength <= 0 {
		return nil
	}
	if c := f.cells.First(); !c.Empty() {
		return c
	}
	return nil
}

// LastVisibleCell returns the last non-empty live cell.
func (f *Flow) LastVisibleCell() *Cell {
	if f.cells.IsEmpty() || f.viewportLength <= 0 {
		return nil
	}
	for i := f.cells.Size() - 1; i >= 0; i-- {
		if c := f.cells.Get(i); !c.Empty() {
			return c
		}
	}
	return nil
}

// FirstVisibleCellWithinViewport returns the first non-empty cell whose
// start is inside the viewport.
func (f *Flow) FirstVisibleCellWithinViewport() *Cell {
	if f.cells.IsEmpty() || f.viewportLength <= 0 {
		return nil
	}
	for i := 0; i < f.cells.Size(); i++ {
		c := f.cells.Get(i)
		if c.Empty() {
			continue
		}
		if f.cellPosition(c) >= 0 {
			return c
		}
	}
	return nil
}

// LastVisibleCellWithinViewport returns the last non-empty cell whose end
// is inside the viewport, allowing 2 pixels of slack.
func (f *Flow) LastVisibleCellWithinViewport() *Cell {
	if f.cells.IsEmpty() || f.viewportLength <= 0 {
		return nil
	}
	limit := f.viewportLength + 2
	for i := f.cells.Size() - 1; i >= 0; i-- {
		c := f.cells.Get(i)
		if c.Empty() {
			continue
		}
		if f.cellPosition(c)+f.cellLength(c) <= limit {
			return c
		}
	}
	return nil
}
