package bouncy

import (
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action    string  `yaml:"action"`
	Label     string  `yaml:"label,omitempty"`
	X         float64 `yaml:"x,omitempty"`
	Y         float64 `yaml:"y,omitempty"`
	Key       string  `yaml:"key,omitempty"`
	Command   string  `yaml:"command,omitempty"`
	Direction string  `yaml:"direction,omitempty"`
	Frames    int     `yaml:"frames,omitempty"`

	event Event // resolved at load time for input actions
}

// script is the top-level structure for a script. JSON is valid YAML, so
// both formats load through the same decoder.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptTarget receives the effects of a script step.
type ScriptTarget interface {
	Post(ev Event)
	Screenshot(label string)
}

// ScriptRunner replays scripted input across frames: one step per frame,
// with "wait" holding for a number of frames. Useful for reproducible demos
// and for visual checks driven without a human at the mouse.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML or JSON script and validates every step.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i := range sc.Steps {
		if err := sc.Steps[i].resolve(); err != nil {
			return nil, errors.Wrapf(err, "parse script: step %d", i)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// LoadScriptFile reads and parses a script from disk.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read script %s", path)
	}
	r, err := LoadScript(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return r, nil
}

// resolve checks the step's fields and precomputes its event.
func (st *scriptStep) resolve() error {
	switch st.Action {
	case "click":
		st.event = Click(Pt(st.X, st.Y))
	case "key":
		r, size := utf8.DecodeRuneInString(st.Key)
		if r == utf8.RuneError || size != len(st.Key) {
			return errors.Errorf("key %q must be a single character", st.Key)
		}
		st.event = Key(r)
	case "menu":
		c, err := ParseMenuCommand(st.Command)
		if err != nil {
			return err
		}
		st.event = Menu(c)
	case "direction":
		d, err := ParseDirection(st.Direction)
		if err != nil {
			return err
		}
		st.event = DirectionInput(d)
	case "wait":
		if st.Frames < 0 {
			return errors.Errorf("wait frames %d is negative", st.Frames)
		}
	case "screenshot":
	default:
		return errors.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *ScriptRunner) Step(t ScriptTarget) {
	if r.done {
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
		t.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		t.Post(st.event)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
