package op

import (
	"fmt"

	"github.com/strafesuite/tasedit/internal/script"
)

// Operation is a sealed interface: exactly the variant structs in this file
// implement it. Adding a variant requires extending the codec (encode.go,
// decode.go) with a new appended tag.
type Operation interface {
	// Apply applies the operation to the script and reports the first
	// invalidated frame. On error the script is unchanged.
	Apply(s *script.Script) (Invalidation, error)

	// Undo exactly reverts a previously applied operation. On error the
	// script is unchanged.
	Undo(s *script.Script) (Invalidation, error)

	fmt.Stringer

	operation() // sealed
}

// SetFrameCount changes the frame count of the bulkIdx-th frame bulk from
// From to To.
type SetFrameCount struct {
	BulkIdx int
	From    uint32
	To      uint32
}

// SetYaw changes the yaw of the bulkIdx-th frame bulk from From to To. The
// bulk must be in a mode that has a yaw.
type SetYaw struct {
	BulkIdx int
	From    float32
	To      float32
}

// Delete removes the line at LineIdx. Line retains its text so the deletion
// can be undone.
type Delete struct {
	LineIdx int
	Line    string
}

// Split splits the frame bulk owning FrameIdx into two adjacent bulks at
// that frame. The split point must not be on a bulk boundary. Splitting
// never changes any frame's content.
type Split struct {
	FrameIdx int
}

// Replace swaps the line at LineIdx from text From to text To.
type Replace struct {
	LineIdx int
	From    string
	To      string
}

// ToggleKey sets the key flag of the bulkIdx-th frame bulk to To. The flag
// must currently hold the opposite value.
type ToggleKey struct {
	BulkIdx int
	Key     Key
	To      bool
}

// Insert parses Line and inserts it at LineIdx.
type Insert struct {
	LineIdx int
	Line    string
}

// SetLeftRightCount changes the left-right strafing count of the bulkIdx-th
// frame bulk from From to To. The bulk must be in a left-right mode.
type SetLeftRightCount struct {
	BulkIdx int
	From    uint32
	To      uint32
}

func (SetFrameCount) operation()     {}
func (SetYaw) operation()            {}
func (Delete) operation()            {}
func (Split) operation()             {}
func (Replace) operation()           {}
func (ToggleKey) operation()         {}
func (Insert) operation()            {}
func (SetLeftRightCount) operation() {}

func (o SetFrameCount) String() string {
	return fmt.Sprintf("set frame count of bulk %d: %d -> %d", o.BulkIdx, o.From, o.To)
}

func (o SetYaw) String() string {
	return fmt.Sprintf("set yaw of bulk %d: %v -> %v", o.BulkIdx, o.From, o.To)
}

func (o Delete) String() string {
	return fmt.Sprintf("delete line %d (%q)", o.LineIdx, o.Line)
}

func (o Split) String() string {
	return fmt.Sprintf("split at frame %d", o.FrameIdx)
}

func (o Replace) String() string {
	return fmt.Sprintf("replace line %d", o.LineIdx)
}

func (o ToggleKey) String() string {
	return fmt.Sprintf("toggle %s of bulk %d to %v", o.Key, o.BulkIdx, o.To)
}

func (o Insert) String() string {
	return fmt.Sprintf("insert line %d (%q)", o.LineIdx, o.Line)
}

func (o SetLeftRightCount) String() string {
	return fmt.Sprintf("set left-right count of bulk %d: %d -> %d", o.BulkIdx, o.From, o.To)
}
