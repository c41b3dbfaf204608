package inkbutton

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// knownActions lists the step actions a script may use.
var knownActions = map[string]bool{
	"press":      true,
	"move":       true,
	"release":    true,
	"click":      true,
	"hold":       true,
	"drag":       true,
	"cancel":     true,
	"wait":       true,
	"screenshot": true,
}

// TestRunner sequences injected touches and screenshots across frames for
// automated visual checks of ink animations. Attach to a Scene via
// SetTestRunner.
//
// Coordinates are in scene space. When a step names a button, X and Y are
// taken relative to that button's frame instead.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("inkbutton: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("inkbutton: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("inkbutton: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. Its step method runs
// at the start of every Scene.Update, before input is processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// resolve converts step coordinates to scene space.
func (st testStep) resolve(s *Scene, x, y float64) (float64, float64) {
	if st.Button == "" {
		return x, y
	}
	if b := s.Button(st.Button); b != nil {
		return b.x + x, b.y + y
	}
	s.debugf("test script: no button %q, using scene coordinates", st.Button)
	return x, y
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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

	x, y := st.resolve(s, st.X, st.Y)
	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "press":
		s.InjectPress(x, y)
	case "move":
		s.InjectMove(x, y)
	case "release":
		s.InjectRelease(x, y)
	case "click":
		s.InjectClick(x, y)
	case "hold":
		s.InjectHold(x, y, st.Frames)
	case "drag":
		tx, ty := st.resolve(s, st.ToX, st.ToY)
		s.InjectDrag(x, y, tx, ty, st.Frames)
	case "cancel":
		s.InjectCancel()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
