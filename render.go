package vflow

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawer is implemented by cell content that renders itself. bounds is the
// cell rectangle in dst coordinates; dst is already clipped to the flow's
// clip view.
type Drawer interface {
	Draw(dst *ebiten.Image, bounds Rect)
}

// Draw renders the live cells inside the clip view, then the visible bars
// and the corner. Call it after Layout.
func (f *Flow) Draw(dst *ebiten.Image) {
	f.drawCells(dst)
	for _, b := range [...]*ScrollBar{f.vbar, f.hbar} {
		if !b.visible {
			continue
		}
		fillRect(dst, f.toScreen(b.bounds), f.cfg.TrackColor)
		fillRect(dst, f.toScreen(b.ThumbRect(f.cfg.MinThumbLength)), f.cfg.ThumbColor)
	}
	if f.corner.Visible {
		fillRect(dst, f.toScreen(f.corner.Rect), f.cfg.CornerColor)
	}
}

func (f *Flow) drawCells(dst *ebiten.Image) {
	if !f.clip.Visible || f.clip.Empty() || f.cells.IsEmpty() {
		return
	}
	clip := f.toScreen(f.clip.Rect)
	r := image.Rect(
		int(math.Floor(clip.X)), int(math.Floor(clip.Y)),
		int(math.Ceil(clip.X+clip.Width)), int(math.Ceil(clip.Y+clip.Height)),
	).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	sub := dst.SubImage(r).(*ebiten.Image)
	for i := 0; i < f.cells.Size(); i++ {
		c := f.cells.Get(i)
		if !c.Visible {
			continue
		}
		d, ok := c.Content.(Drawer)
		if !ok {
			continue
		}
		bounds := Rect{
			X:      clip.X + c.X - f.clipX,
			Y:      clip.Y + c.Y - f.clipY,
			Width:  c.Width,
			Height: c.Height,
		}
		if !bounds.Intersects(clip) {
			continue
		}
		d.Draw(sub, bounds)
	}
}

func (f *Flow) toScreen(r Rect) Rect {
	r.X += f.X
	r.Y += f.Y
	return r
}

// fillRect draws a solid rectangle by scaling WhitePixel.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Empty() || c.A <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale = c.colorScale()
	dst.DrawImage(WhitePixel, &op)
}
