// Package vflow is a virtualized flow container for [Ebitengine]: the engine
// behind list, tree and table views that must show a huge, dynamically sized
// collection while realizing only the rows that are on screen.
//
// A [Flow] is given a cell count and a [CellFactory]. On each layout pass it
// works out which indices cover the viewport for the current scroll
// position, binds cells to them (reusing detached cells from its pile before
// asking the factory for new ones), lays them out contiguously and drives
// two [ScrollBar] models, one along the scroll axis and one across it.
//
// # Quick start
//
//	face, _ := vflow.DefaultFace(14)
//	flow := vflow.NewFlow(vflow.DefaultConfig())
//	flow.SetCellFactory(vflow.TextCellFactory(face, func(i int) string {
//		return fmt.Sprintf("Row %d", i)
//	}))
//	flow.SetCellCount(1_000_000)
//	flow.Resize(320, 480)
//
// Then, once per frame, from an [ebiten.Game]:
//
//	func (g *Game) Update() error {
//		g.flow.HandleInput()
//		g.flow.Update(1.0 / 60)
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) { g.flow.Draw(screen) }
//
// # Cells
//
// A [Cell] wraps [CellContent], the contract the layer above supplies:
// preferred width and height under a constrained cross-axis size, and an
// UpdateIndex hook called whenever the cell is rebound. Content that also
// implements [Drawer] is rendered by [Flow.Draw]. Indices at or past the
// cell count denote empty filler cells that pad a short list to the end of
// the viewport.
//
// # Position
//
// The scroll position is normalized to [0, 1]. Every index owns an equal
// slice of it, so the position is stable as long as the cell count is,
// whatever the cell sizes. [Flow.ScrollPixels] moves by pixels,
// [Flow.ScrollTo] and [Flow.ScrollToTop] by index, and [Flow.AnimateTo]
// tweens the position with [gween].
//
// # Layout
//
// Mutators only record state and request a layout; [Flow.Layout] (called by
// [Flow.Update]) runs the pass. Requests made while a pass is running are
// deferred to the next one, and events sent to an [EventSink] are delivered
// after the pass, so handlers may call back into the flow freely. Debug mode
// ([Flow.SetDebugMode]) verifies the cell invariants after every pass.
//
// The ecs sub-package publishes flow events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package vflow
