// Package store persists coercion run snapshots in SQLite.
//
// Each run records a scenario's input and the deterministic snapshot of
// every coercion view it produced. Replaying a recorded run in a later
// process and comparing snapshots byte-for-byte audits that the engine
// is deterministic across processes. The store is CLI tooling; the
// library packages themselves keep no state.
package store
