package vflow

// CellContent is the per-cell rendering contract supplied by the layer above
// the flow (a list, tree or table). The flow calls it while laying out and
// measuring; it never inspects the content otherwise.
type CellContent interface {
	// UpdateIndex rebinds the content to a new index. -1 means unbound.
	// Indices >= the flow's cell count denote empty filler cells.
	UpdateIndex(index int)
	// PrefWidth returns the preferred width given a height, or -1 for an
	// unconstrained height.
	PrefWidth(height float64) float64
	// PrefHeight returns the preferred height given a width, or -1 for an
	// unconstrained width.
	PrefHeight(width float64) float64
}

// Disposer is implemented by content that holds resources to release when
// the flow destroys its cell.
type Disposer interface {
	Dispose()
}

// CellFactory creates a new unbound cell for the given flow.
type CellFactory func(f *Flow) *Cell

// cellIDCounter is a plain counter (no atomic: flows are single-threaded).
var cellIDCounter uint32

func nextCellID() uint32 {
	cellIDCounter++
	return cellIDCounter
}

// Cell is a rendering unit bound to one virtual index at a time. Cells are
// created by the flow's CellFactory, owned by the flow, and recycled through
// its pile. Position and size are in flow-local coordinates and are written
// only by the flow's layout.
type Cell struct {
	// ID is unique among all cells of the process.
	ID uint32
	// Content supplies preferred sizes and receives index updates.
	Content CellContent
	// UserData is an arbitrary payload for the caller.
	UserData any

	// X, Y, Width and Height are the cell's layout rectangle.
	X, Y, Width, Height float64
	// Visible is false while the cell sits in the pile.
	Visible bool

	index       int
	flow        *Flow
	needsLayout bool
	disposed    bool
}

// NewCell creates an unbound cell wrapping content. Use it from a CellFactory.
func NewCell(content CellContent) *Cell {
	return &Cell{
		ID:          nextCellID(),
		Content:     content,
		index:       -1,
		needsLayout: true,
	}
}

// Index returns the bound index, or -1 when unbound.
func (c *Cell) Index() int { return c.index }

// Empty reports whether the cell is unbound or bound to a filler index past
// the flow's cell count.
func (c *Cell) Empty() bool {
	if c.index < 0 {
		return true
	}
	return c.flow != nil && c.index >= c.flow.cellCount
}

// Flow returns the owning flow. The reference is non-owning: the flow owns
// its cells.
func (c *Cell) Flow() *Flow { return c.flow }

// Bounds returns the cell's layout rectangle.
func (c *Cell) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// RequestLayout marks the cell's size as stale; the owning flow refits its
// cells on the next pass.
func (c *Cell) RequestLayout() {
	c.needsLayout = true
	if c.flow != nil {
		c.flow.RequestLayout()
	}
}

func (c *Cell) updateIndex(index int) {
	if c.index != index {
		c.needsLayout = true
	}
	c.index = index
	if c.Content != nil {
		c.Content.UpdateIndex(index)
	}
}

func (c *Cell) prefWidth(height float64) float64 {
	if c.Content == nil {
		return 0
	}
	return c.Content.PrefWidth(height)
}

func (c *Cell) prefHeight(width float64) float64 {
	if c.Content == nil {
		return 0
	}
	return c.Content.PrefHeight(width)
}

func (c *Cell) dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.Visible = false
	if d, ok := c.Content.(Disposer); ok {
		d.Dispose()
	}
	c.flow = nil
}
