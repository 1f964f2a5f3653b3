package vflow

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultFontOnce   sync.Once
	defaultFontSource *text.GoTextFaceSource
	defaultFontErr    error
)

// DefaultFace returns a Go Regular face of the given size.
func DefaultFace(size float64) (*text.GoTextFace, error) {
	defaultFontOnce.Do(func() {
		defaultFontSource, defaultFontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if defaultFontErr != nil {
		return nil, fmt.Errorf("vflow: failed to parse default font: %w", defaultFontErr)
	}
	return &text.GoTextFace{Source: defaultFontSource, Size: size}, nil
}

// TextCell is cell content showing one line of text per index, on
// alternating row backgrounds. Empty filler cells keep the background and
// show no text.
type TextCell struct {
	// Label returns the text for a bound index.
	Label func(index int) string
	Face  text.Face
	// Padding surrounds the text on every side.
	Padding float64

	TextColor     Color
	Background    Color
	AltBackground Color

	flow  *Flow
	index int
	text  string
	lh    float64
}

// TextCellFactory returns a CellFactory producing TextCell content.
func TextCellFactory(face text.Face, label func(index int) string) CellFactory {
	return func(f *Flow) *Cell {
		return NewCell(NewTextCell(f, face, label))
	}
}

// NewTextCell creates text content for cells of flow f.
func NewTextCell(f *Flow, face text.Face, label func(index int) string) *TextCell {
	m := face.Metrics()
	return &TextCell{
		Label:         label,
		Face:          face,
		Padding:       4,
		TextColor:     ColorWhite,
		Background:    Color{0.10, 0.10, 0.12, 1},
		AltBackground: Color{0.13, 0.13, 0.16, 1},
		flow:          f,
		index:         -1,
		lh:            m.HAscent + m.HDescent + m.HLineGap,
	}
}

// Text returns the text currently shown.
func (t *TextCell) Text() string { return t.text }

// UpdateIndex rebinds the content.
func (t *TextCell) UpdateIndex(index int) {
	t.index = index
	if index < 0 || t.Label == nil || (t.flow != nil && index >= t.flow.CellCount()) {
		t.text = ""
		return
	}
	t.text = t.Label(index)
}

// PrefWidth returns the text width plus padding.
func (t *TextCell) PrefWidth(float64) float64 {
	w, _ := text.Measure(t.text, t.Face, t.lh)
	return w + 2*t.Padding
}

// PrefHeight returns one line plus padding.
func (t *TextCell) PrefHeight(float64) float64 {
	return t.lh + 2*t.Padding
}

// Draw renders the background and the label.
func (t *TextCell) Draw(dst *ebiten.Image, bounds Rect) {
	bg := t.Background
	if t.index%2 == 1 {
		bg = t.AltBackground
	}
	fillRect(dst, bounds, bg)
	if t.text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(bounds.X+t.Padding, bounds.Y+t.Padding)
	op.ColorScale = t.TextColor.colorScale()
	op.LineSpacing = t.lh
	text.Draw(dst, t.text, t.Face, op)
}
