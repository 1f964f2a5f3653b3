package vflow

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	ClearColor    Color
	// Script, when set, is played one step per frame.
	Script *ScriptRunner
	// ExitOnScriptDone ends Run once Script has finished.
	ExitOnScriptDone bool
	// UpdateFunc, when set, runs every frame before the flow handles input.
	UpdateFunc func() error
	// ScreenshotDir receives PNGs from "screenshot" script steps. Defaults to
	// "screenshots".
	ScreenshotDir string
}

// Run opens a window showing f and drives it every frame: input, animation,
// layout and drawing. The flow is resized to fill the window minus its
// X, Y origin. Run blocks until the window is closed.
func Run(f *Flow, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("vflow: RunConfig width and height must be > 0")
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(newGame(f, cfg))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	flow  *Flow
	cfg   RunConfig
	shots screenshotQueue
	fps   *fpsOverlay
}

func newGame(f *Flow, cfg RunConfig) *game {
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	g := &game{flow: f, cfg: cfg, shots: screenshotQueue{dir: dir}}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if s := g.cfg.Script; s != nil {
		s.step(g.flow, &g.shots)
		if s.Done() && g.cfg.ExitOnScriptDone && g.shots.pending() == 0 {
			return ebiten.Termination
		}
	}
	if g.cfg.UpdateFunc != nil {
		if err := g.cfg.UpdateFunc(); err != nil {
			return err
		}
	}
	g.flow.HandleInput()
	g.flow.Update(float32(dt))
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)
	g.flow.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.shots.flush(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.flow.Resize(float64(outsideWidth)-g.flow.X, float64(outsideHeight)-g.flow.Y)
	return outsideWidth, outsideHeight
}
