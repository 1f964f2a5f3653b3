package vflow

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	DX       float64 `json:"dx,omitempty"`
	DY       float64 `json:"dy,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Index    int     `json:"index,omitempty"`
	Pixels   float64 `json:"pixels,omitempty"`
	Position float64 `json:"position,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a JSON script of input and scroll actions against a
// flow, one action per frame, for automated visual testing. Pass it to Run
// through RunConfig.Script, or drive it with Step.
//
// Supported actions: "wheel" (dx, dy), "click" (x, y), "drag" (fromX, fromY,
// toX, toY, frames), "scroll" (pixels), "scrollTo" (index), "scrollToTop"
// (index), "position" (position), "wait" (frames) and "screenshot" (label).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "wheel", "click", "drag", "scroll", "scrollTo", "scrollToTop", "position", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame against f. Screenshot steps are
// ignored when shots is nil.
func (r *ScriptRunner) Step(f *Flow) {
	r.step(f, nil)
}

func (r *ScriptRunner) step(f *Flow, shots *screenshotQueue) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if f.PendingInput() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if shots != nil {
			shots.add(st.Label, f)
		}
	case "wheel":
		f.InjectWheel(st.DX, st.DY)
	case "click":
		f.InjectPress(st.X, st.Y)
		f.InjectRelease(st.X, st.Y)
	case "drag":
		f.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		f.ScrollPixels(st.Pixels)
	case "scrollTo":
		f.ScrollTo(st.Index)
	case "scrollToTop":
		f.ScrollToTop(st.Index)
	case "position":
		f.SetPosition(st.Position)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && f.PendingInput() == 0 {
		r.done = true
	}
}
