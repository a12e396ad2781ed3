package script

// Script is an ordered sequence of lines being edited.
//
// A Script is mutated exclusively through operations (internal/op); no other
// component writes to Lines directly. Frame addressing queries live in
// frames.go.
type Script struct {
	Lines []Line
}

// Line is one entry of a Script: either a frame bulk or an opaque line
// (comment, save marker, property, ...) preserved verbatim for round-tripping.
type Line struct {
	// Bulk is non-nil for frame bulk lines.
	Bulk *FrameBulk

	// Raw holds the verbatim text of opaque lines. Empty for bulk lines.
	Raw string
}

// IsBulk reports whether the line is a frame bulk.
func (l Line) IsBulk() bool {
	return l.Bulk != nil
}

// MovementKeys are the six movement key flags of a frame bulk, in field
// order (flrbud).
type MovementKeys struct {
	Forward bool
	Left    bool
	Right   bool
	Back    bool
	Up      bool
	Down    bool
}

// ActionKeys are the six action key flags of a frame bulk, in field order
// (jdu12r).
type ActionKeys struct {
	Jump    bool
	Duck    bool
	Use     bool
	Attack1 bool
	Attack2 bool
	Reload  bool
}

// FrameBulk describes FrameCount repeated frames sharing the same input.
//
// AutoActions, FrameTime and Pitch are carried verbatim: the editor never
// modifies them, it only needs them to survive a parse/print cycle. Yaw and
// LeftRightCount are mutually exclusive: left-right strafing (auto-actions
// dir digit 6 or 7) stores a count in the yaw field, every other mode stores
// a yaw or nothing.
type FrameBulk struct {
	AutoActions  string
	MovementKeys MovementKeys
	ActionKeys   ActionKeys
	FrameTime    string
	Yaw          *float32
	// LeftRightCount is always >= 1 when present.
	LeftRightCount *uint32
	Pitch          string
	// FrameCount is always >= 1.
	FrameCount uint32
	// Command is the optional trailing |command field, verbatim.
	Command string
}

// Clone returns a deep copy of the bulk. The Yaw and LeftRightCount pointers
// are not shared with the receiver.
func (b *FrameBulk) Clone() *FrameBulk {
	c := *b
	if b.Yaw != nil {
		yaw := *b.Yaw
		c.Yaw = &yaw
	}
	if b.LeftRightCount != nil {
		count := *b.LeftRightCount
		c.LeftRightCount = &count
	}
	return &c
}

// Clone returns a deep copy of the script.
func (s *Script) Clone() *Script {
	lines := make([]Line, len(s.Lines))
	for i, l := range s.Lines {
		if l.Bulk != nil {
			lines[i] = Line{Bulk: l.Bulk.Clone()}
		} else {
			lines[i] = l
		}
	}
	return &Script{Lines: lines}
}

// Insert inserts a line at index i, shifting later lines up.
func (s *Script) Insert(i int, l Line) {
	s.Lines = append(s.Lines, Line{})
	copy(s.Lines[i+1:], s.Lines[i:])
	s.Lines[i] = l
}

// Remove removes and returns the line at index i, shifting later lines down.
func (s *Script) Remove(i int) Line {
	l := s.Lines[i]
	s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
	return l
}
