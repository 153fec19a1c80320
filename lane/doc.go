// Package lane provides in-place mutating byte-lane vectors for string
// distance kernels.
//
// A vector is a logical sequence of 8-bit lanes stored in fixed 32-lane
// words. All elementwise operations mutate the receiver so that long
// operation sequences (such as edit distance wavefronts) run without
// allocating.
//
// # Backends
//
//   - word: SIMD-within-a-register over 64-bit words, four per 32-lane word
//   - scalar: plain byte loops, bit-for-bit compatible with the word backend
//
// Runtime capability detection selects the backend at init. Set
// LANEDIST_BACKEND=scalar (or =word) to override.
//
// # Lane semantics
//
// Arithmetic comparisons, saturation, and the sentinel maximum treat lanes
// as signed 8-bit values, matching the needs of edit distance recurrences
// where costs stay small and comparisons must order them. Plain Add wraps
// mod 256.
//
// # Preconditions
//
// Hot-path operations do not validate their inputs: binary operations
// require operands with equal word counts from the same backend, and
// Extract/Insert indices must be below UpperBound. Build with -tags
// lanecheck to turn these contract violations into panics with a
// diagnostic message.
package lane
