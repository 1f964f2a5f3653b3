package vflow

import "math"

// Orientation is the direction a scrollbar's thumb travels.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// ScrollBar is a scrollbar model. Its range, visible amount, visibility and
// geometry are driven exclusively by the owning flow; callers may only move
// the value through SetValue.
//
// The bar on the flow's virtual axis has range [0, 1] and its value is the
// flow position. The bar on the breadth axis ranges over
// [0, maxPrefBreadth - viewportBreadth] in pixels.
type ScrollBar struct {
	orientation   Orientation
	virtual       bool
	min, max      float64
	value         float64
	visibleAmount float64
	visible       bool
	bounds        Rect

	onChange func(*ScrollBar)
}

func newScrollBar(o Orientation) *ScrollBar {
	return &ScrollBar{orientation: o, max: 100, visibleAmount: 15}
}

// Orientation returns the direction the thumb travels.
func (b *ScrollBar) Orientation() Orientation { return b.orientation }

// Virtual reports whether this bar tracks the flow's scroll axis.
func (b *ScrollBar) Virtual() bool { return b.virtual }

// Min returns the lower bound of the value range.
func (b *ScrollBar) Min() float64 { return b.min }

// Max returns the upper bound of the value range.
func (b *ScrollBar) Max() float64 { return b.max }

// Value returns the current value, always within [Min, Max].
func (b *ScrollBar) Value() float64 { return b.value }

// VisibleAmount returns the extent of the range visible at once.
func (b *ScrollBar) VisibleAmount() float64 { return b.visibleAmount }

// Visible reports whether the bar is shown.
func (b *ScrollBar) Visible() bool { return b.visible }

// Bounds returns the bar's rectangle in flow-local coordinates.
func (b *ScrollBar) Bounds() Rect { return b.bounds }

// SetValue moves the bar, clamped to [Min, Max]. On the virtual bar this
// sets the flow position; on the breadth bar it moves the clip offset.
func (b *ScrollBar) SetValue(v float64) {
	if math.IsNaN(v) {
		panic("vflow: scrollbar value is NaN")
	}
	v = clamp(v, b.min, b.max)
	if v == b.value {
		return
	}
	b.value = v
	if b.onChange != nil {
		b.onChange(b)
	}
}

// setValue updates the value without notifying the flow.
func (b *ScrollBar) setValue(v float64) {
	b.value = clamp(v, b.min, b.max)
}

// setMax replaces the upper bound. A value that sat exactly on the old
// maximum (and off the minimum) follows the new maximum; any other value
// stays put unless it now lies beyond the range.
func (b *ScrollBar) setMax(newMax float64) {
	if newMax < b.min {
		newMax = b.min
	}
	pinned := b.value != b.min && b.value == b.max
	b.max = newMax
	if pinned || b.value > newMax {
		b.value = newMax
	}
}

// ThumbRect returns the thumb rectangle inside Bounds, with a minimum thumb
// length of minLen pixels.
func (b *ScrollBar) ThumbRect(minLen float64) Rect {
	r := b.bounds
	track := r.Height
	if b.orientation == Horizontal {
		track = r.Width
	}
	span := b.max - b.min
	frac := 1.0
	if span > 0 {
		frac = clamp01(b.visibleAmount / span)
	}
	thumb := math.Max(math.Min(minLen, track), track*frac)
	off := 0.0
	if span > 0 {
		off = (track - thumb) * (b.value - b.min) / span
	}
	if b.orientation == Horizontal {
		return Rect{X: r.X + off, Y: r.Y, Width: thumb, Height: r.Height}
	}
	return Rect{X: r.X, Y: r.Y + off, Width: r.Width, Height: thumb}
}

// valueForThumbDelta converts a thumb drag of delta pixels into a value
// delta.
func (b *ScrollBar) valueForThumbDelta(delta, minLen float64) float64 {
	track := b.bounds.Height
	if b.orientation == Horizontal {
		track = b.bounds.Width
	}
	thumb := b.ThumbRect(minLen)
	thumbLen := thumb.Height
	if b.orientation == Horizontal {
		thumbLen = thumb.Width
	}
	free := track - thumbLen
	if free <= 0 {
		return 0
	}
	return delta * (b.max - b.min) / free
}
