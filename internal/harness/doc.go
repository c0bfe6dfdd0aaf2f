// Package harness executes conformance scenarios for the coercion
// engine and the seed encoder.
//
// A scenario is a YAML file describing one input (a big integer literal
// or a seed text) and a list of checks, each naming a coercion view and
// the expected rendering. Scenario files are validated against an
// embedded CUE schema before running. Golden snapshots capture every
// view of a scenario's input for byte-exact regression comparison, and
// recorded runs can be replayed from the store to audit that the
// engine is deterministic across processes.
package harness
