// Package coerce deterministically coerces arbitrary-precision integers
// into fixed-width numeric and textual views.
//
// The central type is Int, an immutable wrapper around one exact signed
// integer of unbounded magnitude. Every method is a pure function of the
// wrapped value: fixed-width views reduce the value modulo 2^N with
// two's-complement wrapping, radix renderings are exact and unwrapped,
// and predicates inspect sign and parity of the exact value. Nothing
// mutates, blocks, or depends on shared state, so values may be shared
// freely across goroutines.
//
// Wrapping, masking, and precision loss are defined outcomes, never
// errors. The only failure mode in the package is InvalidTypeError,
// raised at construction when the input is not of the
// arbitrary-precision integer kind.
package coerce
