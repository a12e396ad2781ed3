// Package op defines the closed set of invertible edit operations on a
// script.
//
// Every operation stores enough information to apply itself and to undo
// itself exactly: field edits carry both the old and the new value, line
// deletions and replacements carry the removed text. For every operation o
// and script s on which o.Apply succeeds, o.Undo on the result restores a
// script equal to s.
//
// # Invalidation
//
// Apply and Undo report the first absolute frame index whose content
// changed, so a playback cache can discard everything from that frame on.
// Split and its undo always report none: they re-partition bulks without
// changing any frame of the expanded timeline. SetFrameCount reports
// first + min(from, to) because the frames before the shorter length are
// identical in both the shrunk and the grown timeline.
//
// # Failure semantics
//
// Every precondition violation (wrong stored "from" value, out-of-range
// index, invalid split point, unparseable stored text) means the operation
// log and the script have desynchronized. Such errors are fatal: the call
// aborts before any field is written, nothing is retried or clamped, and
// callers must treat the script as corrupted. See errors.go for the two
// error classes.
//
// # Persistence
//
// Operations are serialized to a frozen binary form (encode.go, decode.go)
// for append-only storage. The variant tags, key codes and field layouts
// are immutable forever; new variants may only be appended. Changing the
// apply or undo semantics of an existing variant would likewise corrupt
// previously saved histories.
package op
