package sapling

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`

	trigger Trigger
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner feeds scripted input and screenshots into a Window one tick at
// a time. Attach it with Window.SetTestRunner.
//
// Supported actions: "key" (key: trigger name such as "a" or "space"),
// "click" (x, y), "resize" (width, height), "quit", "wait" (frames) and
// "screenshot" (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses and validates a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, errors.Wrap(err, "parse test script")
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "key":
			t, err := ParseTrigger(st.Key)
			if err != nil {
				return nil, errors.Wrapf(err, "parse test script: step %d", i)
			}
			if _, ok := keyForTrigger(t); !ok {
				return nil, errors.Errorf("parse test script: step %d: %q is not a key", i, st.Key)
			}
			st.trigger = t
		case "click", "resize", "quit", "wait", "screenshot":
		default:
			return nil, errors.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the window. It is stepped at the start of
// every tick, before input is polled.
func (w *Window) SetTestRunner(runner *TestRunner) {
	w.mu.Lock()
	w.testRunner = runner
	w.mu.Unlock()
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *TestRunner) step(w *Window) {
	if r.done {
		return
	}
	if w.pendingInjections() > 0 {
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
	case "key":
		_ = w.InjectTrigger(st.trigger) // validated at load
	case "click":
		w.InjectClick(st.X, st.Y)
	case "resize":
		w.InjectResize(st.Width, st.Height)
	case "quit":
		w.InjectQuit()
	case "screenshot":
		w.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
