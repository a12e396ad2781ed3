package op

import (
	"github.com/strafesuite/tasedit/internal/script"
)

// The apply (and undo) semantics below MUST NOT CHANGE: persisted histories
// are replayed through them, so a semantic change corrupts old projects just
// as surely as a codec change would.

// Apply implements Operation.
func (o SetFrameCount) Apply(s *script.Script) (Invalidation, error) {
	bulk, first, ok := s.BulkAt(o.BulkIdx)
	if !ok {
		return None, errBadIndex("no frame bulk %d", o.BulkIdx)
	}
	if bulk.FrameCount != o.From {
		return None, errPrecondition("frame count of bulk %d is %d, operation recorded %d", o.BulkIdx, bulk.FrameCount, o.From)
	}
	if o.From == o.To {
		return None, nil
	}
	if o.To == 0 {
		return None, errPrecondition("new frame count must be positive")
	}
	bulk.FrameCount = o.To
	// Frames before the shorter of the two lengths are identical in both
	// timelines; only frames at or past it are truncated or materialized.
	return InvalidateFrom(first + int(min(o.From, o.To))), nil
}

// Apply implements Operation.
func (o SetYaw) Apply(s *script.Script) (Invalidation, error) {
	bulk, first, ok := s.BulkAt(o.BulkIdx)
	if !ok {
		return None, errBadIndex("no frame bulk %d", o.BulkIdx)
	}
	if bulk.Yaw == nil {
		return None, errPrecondition("bulk %d has no yaw", o.BulkIdx)
	}
	if *bulk.Yaw != o.From {
		return None, errPrecondition("yaw of bulk %d is %v, operation recorded %v", o.BulkIdx, *bulk.Yaw, o.From)
	}
	if o.From == o.To {
		return None, nil
	}
	*bulk.Yaw = o.To
	return InvalidateFrom(first), nil
}

// Apply implements Operation.
func (o Delete) Apply(s *script.Script) (Invalidation, error) {
	first, ok := s.LineFirstFrame(o.LineIdx)
	if !ok {
		return None, errBadIndex("no line %d", o.LineIdx)
	}
	s.Remove(o.LineIdx)
	return InvalidateFrom(first), nil
}

// Apply implements Operation.
func (o Split) Apply(s *script.Script) (Invalidation, error) {
	lineIdx, repeat, ok := s.FrameLineAndRepeat(o.FrameIdx)
	if !ok {
		return None, errBadIndex("no frame %d", o.FrameIdx)
	}
	if repeat == 0 {
		return None, errBadSplit("frame %d is already on a bulk boundary", o.FrameIdx)
	}

	bulk := s.Lines[lineIdx].Bulk
	tail := bulk.Clone()
	// repeat is in (0, FrameCount), so both halves stay positive.
	tail.FrameCount = bulk.FrameCount - uint32(repeat)
	bulk.FrameCount = uint32(repeat)
	s.Insert(lineIdx+1, script.Line{Bulk: tail})

	// Splitting re-partitions an unchanged frame sequence: no frame's
	// content changes, only the internal bulk boundary moves.
	return None, nil
}

// Apply implements Operation.
func (o Replace) Apply(s *script.Script) (Invalidation, error) {
	to, err := script.ParseLine(o.To)
	if err != nil {
		return None, errUnparseable(o.To, err)
	}
	first, ok := s.LineFirstFrame(o.LineIdx)
	if !ok {
		return None, errBadIndex("no line %d", o.LineIdx)
	}
	s.Lines[o.LineIdx] = to
	return InvalidateFrom(first), nil
}

// Apply implements Operation.
func (o ToggleKey) Apply(s *script.Script) (Invalidation, error) {
	if !o.Key.Valid() {
		return None, errPrecondition("unknown key code %d", o.Key)
	}
	bulk, first, ok := s.BulkAt(o.BulkIdx)
	if !ok {
		return None, errBadIndex("no frame bulk %d", o.BulkIdx)
	}
	if o.Key.Value(bulk) == o.To {
		return None, errPrecondition("%s of bulk %d is already %v", o.Key, o.BulkIdx, o.To)
	}
	o.Key.SetValue(bulk, o.To)
	return InvalidateFrom(first), nil
}

// Apply implements Operation.
func (o Insert) Apply(s *script.Script) (Invalidation, error) {
	line, err := script.ParseLine(o.Line)
	if err != nil {
		return None, errUnparseable(o.Line, err)
	}
	if o.LineIdx < 0 || o.LineIdx > len(s.Lines) {
		return None, errBadIndex("cannot insert at line %d of %d", o.LineIdx, len(s.Lines))
	}
	s.Insert(o.LineIdx, line)

	first, _ := s.LineFirstFrame(o.LineIdx)
	return InvalidateFrom(first), nil
}

// Apply implements Operation.
func (o SetLeftRightCount) Apply(s *script.Script) (Invalidation, error) {
	bulk, first, ok := s.BulkAt(o.BulkIdx)
	if !ok {
		return None, errBadIndex("no frame bulk %d", o.BulkIdx)
	}
	if bulk.LeftRightCount == nil {
		return None, errPrecondition("bulk %d has no left-right count", o.BulkIdx)
	}
	if *bulk.LeftRightCount != o.From {
		return None, errPrecondition("left-right count of bulk %d is %d, operation recorded %d", o.BulkIdx, *bulk.LeftRightCount, o.From)
	}
	if o.From == o.To {
		return None, nil
	}
	if o.To == 0 {
		return None, errPrecondition("new left-right count must be positive")
	}
	*bulk.LeftRightCount = o.To
	return InvalidateFrom(first), nil
}
