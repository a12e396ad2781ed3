package op

import "fmt"

// Invalidation reports the earliest absolute frame whose content changed
// due to an edit, or none when the edit provably changed no frame. A
// playback cache must discard every frame >= the reported index and may
// keep everything before it.
//
// The zero value is none.
type Invalidation struct {
	frame int
	some  bool
}

// None is the no-frames-changed invalidation.
var None = Invalidation{}

// InvalidateFrom returns an invalidation starting at frame.
func InvalidateFrom(frame int) Invalidation {
	return Invalidation{frame: frame, some: true}
}

// First returns the first invalidated frame. ok is false for none.
func (iv Invalidation) First() (frame int, ok bool) {
	return iv.frame, iv.some
}

// IsNone reports whether no frame changed.
func (iv Invalidation) IsNone() bool {
	return !iv.some
}

// Union combines two invalidations by taking the earliest frame. The result
// is none only when both are none: a batch of edits invalidates from the
// earliest point any member changed.
func (iv Invalidation) Union(other Invalidation) Invalidation {
	switch {
	case !iv.some:
		return other
	case !other.some:
		return iv
	case other.frame < iv.frame:
		return other
	default:
		return iv
	}
}

// String implements fmt.Stringer.
func (iv Invalidation) String() string {
	if !iv.some {
		return "none"
	}
	return fmt.Sprintf("frame %d", iv.frame)
}
