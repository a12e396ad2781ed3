package script

import "iter"

// Frame addressing.
//
// The per-frame timeline is the expansion of all frame bulks in order: a
// bulk with FrameCount n occupies n consecutive absolute frame indices.
// Opaque lines occupy no frames. All queries below are prefix sums over that
// expansion; none of them mutate the script.

// LineFirstFrames yields (line index, absolute frame index at which the
// line's content begins) for every line in order. Opaque lines inherit the
// running total.
func (s *Script) LineFirstFrames() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		frame := 0
		for i, l := range s.Lines {
			if !yield(i, frame) {
				return
			}
			if l.Bulk != nil {
				frame += int(l.Bulk.FrameCount)
			}
		}
	}
}

// BulkFirstFrames yields (bulk, absolute frame index of its first frame) for
// every frame bulk in order, skipping opaque lines. The yielded pointers
// alias the script's lines.
func (s *Script) BulkFirstFrames() iter.Seq2[*FrameBulk, int] {
	return func(yield func(*FrameBulk, int) bool) {
		frame := 0
		for _, l := range s.Lines {
			if l.Bulk == nil {
				continue
			}
			if !yield(l.Bulk, frame) {
				return
			}
			frame += int(l.Bulk.FrameCount)
		}
	}
}

// LineFirstFrame returns the absolute frame index at which line lineIdx
// begins. ok is false when lineIdx is out of range.
func (s *Script) LineFirstFrame(lineIdx int) (frame int, ok bool) {
	for i, f := range s.LineFirstFrames() {
		if i == lineIdx {
			return f, true
		}
	}
	return 0, false
}

// BulkAt returns the bulkIdx-th frame bulk (0-based among bulks only) and
// the absolute frame index of its first frame. ok is false when bulkIdx is
// out of range.
func (s *Script) BulkAt(bulkIdx int) (bulk *FrameBulk, frame int, ok bool) {
	i := 0
	for b, f := range s.BulkFirstFrames() {
		if i == bulkIdx {
			return b, f, true
		}
		i++
	}
	return nil, 0, false
}

// FrameLineAndRepeat is the inverse mapping: it returns the index of the
// line owning the absolute frame frameIdx and the offset (repeat) of that
// frame within the line's bulk. A frame on a bulk boundary belongs to the
// later bulk with repeat 0. ok is false when frameIdx is outside the
// expanded timeline.
func (s *Script) FrameLineAndRepeat(frameIdx int) (lineIdx, repeat int, ok bool) {
	if frameIdx < 0 {
		return 0, 0, false
	}
	frame := 0
	for i, l := range s.Lines {
		if l.Bulk == nil {
			continue
		}
		count := int(l.Bulk.FrameCount)
		if frameIdx < frame+count {
			return i, frameIdx - frame, true
		}
		frame += count
	}
	return 0, 0, false
}
