// Package scenario runs YAML-driven conformance scenarios against the
// operation engine: each scenario applies a list of edits (and undos/redos)
// to an input script and asserts the resulting script and the per-step
// invalidation signals.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/strafesuite/tasedit/internal/op"
)

// Scenario defines one conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Script is the input script text.
	Script string `yaml:"script"`

	// Steps are executed in order against the script.
	Steps []Step `yaml:"steps"`

	// Want is the expected script text after all steps. Compared
	// semantically (parsed), not byte-for-byte.
	Want string `yaml:"want"`
}

// Step is one edit, undo or redo.
type Step struct {
	// Op names the operation: set_frame_count, set_yaw,
	// set_left_right_count, toggle_key, insert, delete, replace, split,
	// undo or redo.
	Op string `yaml:"op"`

	Bulk  int `yaml:"bulk,omitempty"`
	Line  int `yaml:"line,omitempty"`
	Frame int `yaml:"frame,omitempty"`

	// From and To are the numeric old/new values for the field edits.
	From float64 `yaml:"from,omitempty"`
	To   float64 `yaml:"to,omitempty"`

	// Key and Value are the toggle_key flag name and new value.
	Key   string `yaml:"key,omitempty"`
	Value bool   `yaml:"value,omitempty"`

	// Text is the line for insert and delete; FromText/ToText for replace.
	Text     string `yaml:"text,omitempty"`
	FromText string `yaml:"from_text,omitempty"`
	ToText   string `yaml:"to_text,omitempty"`

	// Invalidates is the expected invalidation: a frame index or "none".
	// When omitted the step's invalidation is not checked.
	Invalidates Expect `yaml:"invalidates,omitempty"`
}

// Expect is an optional invalidation expectation: a frame index, the string
// "none", or absent (unchecked).
type Expect struct {
	checked bool
	none    bool
	frame   int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expect) UnmarshalYAML(value *yaml.Node) error {
	var frame int
	if err := value.Decode(&frame); err == nil {
		*e = Expect{checked: true, frame: frame}
		return nil
	}
	var s string
	if err := value.Decode(&s); err == nil && s == "none" {
		*e = Expect{checked: true, none: true}
		return nil
	}
	return fmt.Errorf("invalidates must be a frame index or \"none\", got %q", value.Value)
}

// check compares an actual invalidation against the expectation.
func (e Expect) check(inv op.Invalidation) error {
	if !e.checked {
		return nil
	}
	if e.none {
		if !inv.IsNone() {
			return fmt.Errorf("invalidated %s, want none", inv)
		}
		return nil
	}
	frame, ok := inv.First()
	if !ok {
		return fmt.Errorf("invalidated none, want frame %d", e.frame)
	}
	if frame != e.frame {
		return fmt.Errorf("invalidated frame %d, want frame %d", frame, e.frame)
	}
	return nil
}

// operation builds the op for an edit step. Undo/redo steps have no op.
func (s Step) operation() (op.Operation, error) {
	switch s.Op {
	case "set_frame_count":
		return op.SetFrameCount{BulkIdx: s.Bulk, From: uint32(s.From), To: uint32(s.To)}, nil
	case "set_yaw":
		return op.SetYaw{BulkIdx: s.Bulk, From: float32(s.From), To: float32(s.To)}, nil
	case "set_left_right_count":
		return op.SetLeftRightCount{BulkIdx: s.Bulk, From: uint32(s.From), To: uint32(s.To)}, nil
	case "toggle_key":
		key, ok := op.ParseKey(s.Key)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", s.Key)
		}
		return op.ToggleKey{BulkIdx: s.Bulk, Key: key, To: s.Value}, nil
	case "insert":
		return op.Insert{LineIdx: s.Line, Line: s.Text}, nil
	case "delete":
		return op.Delete{LineIdx: s.Line, Line: s.Text}, nil
	case "replace":
		return op.Replace{LineIdx: s.Line, From: s.FromText, To: s.ToText}, nil
	case "split":
		return op.Split{FrameIdx: s.Frame}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", s.Op)
	}
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("load scenario %s: missing name", path)
	}
	return &sc, nil
}

// LoadDir reads every *.yaml scenario under dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var scenarios []*Scenario
	for _, path := range paths {
		sc, err := Load(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
