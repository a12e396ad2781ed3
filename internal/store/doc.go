// Package store provides SQLite-backed durable storage for a tasedit
// project.
//
// The store is an append-only operation log plus a single project row:
//   - project: UUID, the initial script text, and the history cursor
//   - operations: encoded operations keyed by a dense, monotonically
//     increasing seq
//
// Ordering uses seq only, never timestamps, so replaying the log is
// deterministic regardless of wall time. Appending after an undo deletes
// the redo tail rows before inserting, keeping seq dense and equal to the
// history position. The store knows nothing about the encoding; blobs are
// produced and consumed by internal/op.
//
// Database configuration:
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
package store
