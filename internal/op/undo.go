package op

import (
	"math"

	"github.com/strafesuite/tasedit/internal/script"
)

// Undo implements Operation.
func (o SetFrameCount) Undo(s *script.Script) (Invalidation, error) {
	bulk, first, ok := s.BulkAt(o.BulkIdx)
	if !ok {
		return None, errBadIndex("no frame bulk %d", o.BulkIdx)
	}
	if bulk.FrameCount != o.To {
		return None, errPrecondition("frame count of bulk %d is %d, operation recorded %d", o.BulkIdx, bulk.FrameCount, o.To)
	}
	if o.From == o.To {
		return None, nil
	}
	if o.From == 0 {
		return None, errPrecondition("original frame count must be positive")
	}
	bulk.FrameCount = o.From
	return InvalidateFrom(first + int(min(o.From, o.To))), nil
}

// Undo implements Operation.
func (o SetYaw) Undo(s *script.Script) (Invalidation, error) {
	bulk, first, ok := s.BulkAt(o.BulkIdx)
	if !ok {
		return None, errBadIndex("no frame bulk %d", o.BulkIdx)
	}
	if bulk.Yaw == nil {
		return None, errPrecondition("bulk %d has no yaw", o.BulkIdx)
	}
	if *bulk.Yaw != o.To {
		return None, errPrecondition("yaw of bulk %d is %v, operation recorded %v", o.BulkIdx, *bulk.Yaw, o.To)
	}
	if o.From == o.To {
		return None, nil
	}
	*bulk.Yaw = o.From
	return InvalidateFrom(first), nil
}

// Undo implements Operation.
func (o Delete) Undo(s *script.Script) (Invalidation, error) {
	line, err := script.ParseLine(o.Line)
	if err != nil {
		return None, errUnparseable(o.Line, err)
	}
	if o.LineIdx < 0 || o.LineIdx > len(s.Lines) {
		return None, errBadIndex("cannot reinsert at line %d of %d", o.LineIdx, len(s.Lines))
	}
	s.Insert(o.LineIdx, line)

	first, _ := s.LineFirstFrame(o.LineIdx)
	return InvalidateFrom(first), nil
}

// Undo implements Operation.
func (o Split) Undo(s *script.Script) (Invalidation, error) {
	lineIdx, repeat, ok := s.FrameLineAndRepeat(o.FrameIdx)
	if !ok {
		return None, errBadIndex("no frame %d", o.FrameIdx)
	}
	if repeat != 0 {
		return None, errBadSplit("frame %d is not on a bulk boundary", o.FrameIdx)
	}
	if lineIdx == 0 {
		return None, errBadSplit("no bulk precedes frame %d", o.FrameIdx)
	}
	prev := s.Lines[lineIdx-1].Bulk
	if prev == nil {
		return None, errBadSplit("line before frame %d is not a frame bulk", o.FrameIdx)
	}
	bulk := s.Lines[lineIdx].Bulk
	if uint64(prev.FrameCount)+uint64(bulk.FrameCount) > math.MaxUint32 {
		return None, errPrecondition("combined frame count overflows")
	}

	bulk.FrameCount += prev.FrameCount
	s.Remove(lineIdx - 1)

	// Merging two halves of a split is again a pure re-partitioning.
	return None, nil
}

// Undo implements Operation.
func (o Replace) Undo(s *script.Script) (Invalidation, error) {
	from, err := script.ParseLine(o.From)
	if err != nil {
		return None, errUnparseable(o.From, err)
	}
	first, ok := s.LineFirstFrame(o.LineIdx)
	if !ok {
		return None, errBadIndex("no line %d", o.LineIdx)
	}
	s.Lines[o.LineIdx] = from
	return InvalidateFrom(first), nil
}

// Undo implements Operation.
func (o ToggleKey) Undo(s *script.Script) (Invalidation, error) {
	if !o.Key.Valid() {
		return None, errPrecondition("unknown key code %d", o.Key)
	}
	bulk, first, ok := s.BulkAt(o.BulkIdx)
	if !ok {
		return None, errBadIndex("no frame bulk %d", o.BulkIdx)
	}
	if o.Key.Value(bulk) != o.To {
		return None, errPrecondition("%s of bulk %d is not %v", o.Key, o.BulkIdx, o.To)
	}
	o.Key.SetValue(bulk, !o.To)
	return InvalidateFrom(first), nil
}

// Undo implements Operation.
func (o Insert) Undo(s *script.Script) (Invalidation, error) {
	first, ok := s.LineFirstFrame(o.LineIdx)
	if !ok {
		return None, errBadIndex("no line %d", o.LineIdx)
	}
	s.Remove(o.LineIdx)
	return InvalidateFrom(first), nil
}

// Undo implements Operation.
func (o SetLeftRightCount) Undo(s *script.Script) (Invalidation, error) {
	bulk, first, ok := s.BulkAt(o.BulkIdx)
	if !ok {
		return None, errBadIndex("no frame bulk %d", o.BulkIdx)
	}
	if bulk.LeftRightCount == nil {
		return None, errPrecondition("bulk %d has no left-right count", o.BulkIdx)
	}
	if *bulk.LeftRightCount != o.To {
		return None, errPrecondition("left-right count of bulk %d is %d, operation recorded %d", o.BulkIdx, *bulk.LeftRightCount, o.To)
	}
	if o.From == o.To {
		return None, nil
	}
	if o.From == 0 {
		return None, errPrecondition("original left-right count must be positive")
	}
	*bulk.LeftRightCount = o.From
	return InvalidateFrom(first), nil
}
