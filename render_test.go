package vflow

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDrawFlow(t *testing.T) {
	f := newTextFlow(t, 100)
	f.X, f.Y = 10, 20
	dst := ebiten.NewImage(240, 160)
	f.Draw(dst)
}

func TestDrawEmptyFlow(t *testing.T) {
	f := NewFlow(DefaultConfig())
	dst := ebiten.NewImage(16, 16)
	f.Draw(dst)
}

func TestDrawFlowOffscreen(t *testing.T) {
	f := newTextFlow(t, 100)
	f.X = 1000
	dst := ebiten.NewImage(100, 100)
	f.Draw(dst)
}

func TestToScreen(t *testing.T) {
	f := NewFlow(DefaultConfig())
	f.X, f.Y = 5, 7
	got := f.toScreen(Rect{X: 1, Y: 2, Width: 3, Height: 4})
	if got != (Rect{X: 6, Y: 9, Width: 3, Height: 4}) {
		t.Errorf("toScreen = %+v", got)
	}
}

func TestFillRectSkipsEmpty(t *testing.T) {
	dst := ebiten.NewImage(8, 8)
	fillRect(dst, Rect{Width: 0, Height: 4}, ColorWhite)
	fillRect(dst, Rect{Width: 4, Height: 4}, Color{})
}
