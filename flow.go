package vflow

import (
	"fmt"
	"math"
)

// Flow is a virtualized container that realizes only the cells needed to
// cover its viewport. The caller supplies a cell count and a CellFactory; the
// flow binds cells to indices, recycles them through a pile as the view
// scrolls, and drives two scrollbar models: one on the virtual (scrolling)
// axis and one on the breadth axis.
//
// A Flow is single-threaded. Mutations only record state and request a
// layout; the layout itself runs when Layout (or Update) is called once per
// frame.
type Flow struct {
	// X and Y are the screen-space origin used by Draw and HandleInput.
	X, Y float64

	cfg Config

	width, height float64
	cellCount     int
	vertical      bool
	position      float64

	maxPrefBreadth  float64
	viewportBreadth float64
	viewportLength  float64

	factory        CellFactory
	pendingFactory CellFactory
	cells          ArrayLinkedList[*Cell]
	pile           ArrayLinkedList[*Cell]
	accumCell      *Cell

	hbar, vbar     *ScrollBar
	corner         Region
	clip           Region
	clipX, clipY   float64
	needLengthBar  bool
	needBreadthBar bool

	needsLayout      bool
	inLayout         bool
	deferredLayout   bool
	needsRecreate    bool
	needsRebuild     bool
	needsReconfigure bool
	needsCellsLayout bool

	lastWidth, lastHeight           float64
	lastCellCount                   int
	lastVertical                    bool
	lastPosition                    float64
	lastCellBreadth, lastCellLength float64

	debug bool

	sink          EventSink
	pendingEvents []Event

	anim        *scrollAnim
	injectQueue []inputEvent
	pointer     pointerState
}

// NewFlow creates an empty vertical flow. It panics when cfg is invalid.
func NewFlow(cfg Config) *Flow {
	if err := cfg.validate(); err != nil {
		panic("vflow: " + err.Error())
	}
	f := &Flow{
		cfg:            cfg,
		vertical:       true,
		lastVertical:   true,
		maxPrefBreadth: -1,
		lastWidth:      -1,
		lastHeight:     -1,
		hbar:           newScrollBar(Horizontal),
		vbar:           newScrollBar(Vertical),
		needsLayout:    true,
	}
	f.vbar.virtual = true
	f.hbar.onChange = f.onBarValue
	f.vbar.onChange = f.onBarValue
	return f
}

// Config returns the configuration the flow was created with.
func (f *Flow) Config() Config { return f.cfg }

// --- Cell count and factory ---

// CellCount returns the number of virtual items.
func (f *Flow) CellCount() int { return f.cellCount }

// SetCellCount sets the number of virtual items. Panics when n is negative.
func (f *Flow) SetCellCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vflow: negative cell count %d", n))
	}
	if n == f.cellCount {
		return
	}
	f.cellCount = n
	f.RequestLayout()
}

// SetCellFactory replaces the function used to create cells. Every cell
// built by the previous factory, live or piled, is destroyed together with
// the measuring cell, and a full layout is requested. Called during a pass,
// the swap waits for the next pass. Panics when fn is nil.
func (f *Flow) SetCellFactory(fn CellFactory) {
	if fn == nil {
		panic("vflow: nil cell factory")
	}
	if f.inLayout {
		f.pendingFactory = fn
		f.needsRecreate = true
	} else {
		f.factory = fn
		f.pendingFactory = nil
		f.recreateCells()
	}
	Logger().Info("vflow: cell factory replaced")
	f.RequestLayout()
}

// --- Orientation ---

// IsVertical reports whether the flow scrolls vertically.
func (f *Flow) IsVertical() bool { return f.vertical }

// SetVertical switches the scroll axis. Breadth and length swap, so the
// cached maxPrefBreadth is invalidated, the position returns to 0 and every
// cell is returned to the pile.
func (f *Flow) SetVertical(v bool) {
	if v == f.vertical {
		return
	}
	f.vertical = v
	f.hbar.virtual = !v
	f.vbar.virtual = v

	f.addAllToPile()
	f.releaseAccumCell()
	f.lastWidth, f.lastHeight = -1, -1
	f.maxPrefBreadth = -1
	f.viewportBreadth, f.viewportLength = 0, 0
	f.needLengthBar, f.needBreadthBar = false, false
	f.lastPosition = 0
	f.hbar.setValue(0)
	f.vbar.setValue(0)
	f.clipX, f.clipY = 0, 0
	f.setPosition(0)
	Logger().Info("vflow: orientation changed", "vertical", v)
	f.RequestLayout()
}

// --- Position ---

// Position returns the normalized scroll position in [0, 1].
func (f *Flow) Position() float64 { return f.position }

// SetPosition moves the normalized scroll position, clamped to [0, 1], and
// requests a layout. A running scroll animation is cancelled. Panics when p
// is NaN or infinite.
func (f *Flow) SetPosition(p float64) {
	f.anim = nil
	f.requestPosition(p)
}

func (f *Flow) requestPosition(p float64) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		panic(fmt.Sprintf("vflow: invalid position %v", p))
	}
	p = clamp01(p)
	if p == f.position {
		return
	}
	f.setPosition(p)
	f.RequestLayout()
}

// setPosition stores a clamped position without requesting a layout. The
// layout engine and the pixel scroller use it while they reposition cells
// themselves.
func (f *Flow) setPosition(p float64) {
	p = clamp01(p)
	if p == f.position {
		return
	}
	f.position = p
	f.lengthBar().setValue(p)
	f.emit(Event{Type: EventPositionChanged, Position: p})
}

// --- Geometry ---

// Width returns the flow width.
func (f *Flow) Width() float64 { return f.width }

// Height returns the flow height.
func (f *Flow) Height() float64 { return f.height }

// Resize sets the flow size and requests a layout.
func (f *Flow) Resize(width, height float64) {
	if width == f.width && height == f.height {
		return
	}
	f.width, f.height = width, height
	f.RequestLayout()
}

// Bounds returns the flow's screen-space rectangle.
func (f *Flow) Bounds() Rect {
	return Rect{X: f.X, Y: f.Y, Width: f.width, Height: f.height}
}

// MaxPrefBreadth returns the largest preferred breadth seen among realized
// cells, or -1 when unset.
func (f *Flow) MaxPrefBreadth() float64 { return f.maxPrefBreadth }

// ViewportLength returns the visible size along the virtual axis.
func (f *Flow) ViewportLength() float64 { return f.viewportLength }

// ViewportBreadth returns the visible size along the breadth axis.
func (f *Flow) ViewportBreadth() float64 { return f.viewportBreadth }

// HBar returns the horizontal scrollbar model.
func (f *Flow) HBar() *ScrollBar { return f.hbar }

// VBar returns the vertical scrollbar model.
func (f *Flow) VBar() *ScrollBar { return f.vbar }

// Corner returns the square between the two bars, visible when both are.
func (f *Flow) Corner() Region { return f.corner }

// Clip returns the clip view in flow-local coordinates.
func (f *Flow) Clip() Region { return f.clip }

// ClipOffset returns the content offset applied inside the clip view. It
// follows the breadth bar's value while that bar is visible.
func (f *Flow) ClipOffset() (x, y float64) { return f.clipX, f.clipY }

func (f *Flow) lengthBar() *ScrollBar {
	if f.vertical {
		return f.vbar
	}
	return f.hbar
}

func (f *Flow) breadthBar() *ScrollBar {
	if f.vertical {
		return f.hbar
	}
	return f.vbar
}

func (f *Flow) onBarValue(b *ScrollBar) {
	if b.virtual {
		f.SetPosition(b.value)
		return
	}
	f.updateClipOffset()
}

// --- Layout requests ---

// NeedsLayout reports whether a layout has been requested and not yet run.
func (f *Flow) NeedsLayout() bool { return f.needsLayout || f.deferredLayout }

// RequestLayout schedules a layout pass. A request made while a pass is
// running is deferred to the next call of Layout.
func (f *Flow) RequestLayout() {
	if f.inLayout {
		if !f.deferredLayout {
			Logger().Debug("vflow: layout requested during layout, deferred")
		}
		f.deferredLayout = true
		return
	}
	f.needsLayout = true
}

// ReconfigureCells forgets maxPrefBreadth and the last laid out size, so the
// next pass remeasures every realized cell.
func (f *Flow) ReconfigureCells() {
	f.needsReconfigure = true
	f.RequestLayout()
}

// RecreateCells destroys every cell, live and piled. The next pass creates
// fresh cells through the factory.
func (f *Flow) RecreateCells() {
	f.needsRecreate = true
	f.RequestLayout()
}

// RebuildCells unbinds every live cell and returns it to the pile. The next
// pass lays out from scratch, reusing piled cells.
func (f *Flow) RebuildCells() {
	f.needsRebuild = true
	f.RequestLayout()
}

// RequestCellLayout asks every live cell to be refitted on the next pass.
func (f *Flow) RequestCellLayout() {
	f.needsCellsLayout = true
	f.RequestLayout()
}

// Layout runs a layout pass when one has been requested. Call it once per
// frame; Update calls it for you. Events raised during the pass are
// delivered when it returns.
func (f *Flow) Layout() {
	if f.inLayout {
		f.deferredLayout = true
		return
	}
	if f.deferredLayout {
		f.deferredLayout = false
		f.needsLayout = true
	}
	if !f.needsLayout {
		return
	}
	f.needsLayout = false
	f.exclusive(f.layoutChildren)
}

// exclusive runs fn as one uninterruptible unit: layout requests made
// meanwhile are deferred to the next pass and events are held until fn
// returns.
func (f *Flow) exclusive(fn func()) {
	f.inLayout = true
	fn()
	f.inLayout = false
	if f.deferredLayout {
		f.deferredLayout = false
		f.needsLayout = true
	}
	f.flushEvents()
}
