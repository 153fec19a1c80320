// Package lanedist accelerates byte-string distance computation with
// fixed-width byte-lane vectors.
//
// The heavy lifting lives in the lane subpackage: a uniform, in-place
// mutating vector abstraction over 32-lane words, with mismatch-counting
// kernels for Hamming-style comparison and a fused three-way minimum for
// Levenshtein-style recurrences. This package carries the shared result
// vocabulary and the buffer helpers distance drivers prepare their inputs
// with.
//
// # Quick Start
//
//	a := lanedist.AllocBytes(len(s1))
//	b := lanedist.AllocBytes(len(s2))
//	lanedist.Fill(a, s1)
//	lanedist.Fill(b, s2)
//	k := lane.CountMismatches(a, b, len(s1))
//
// Strings are sequences of 8-bit values; Unicode is not interpreted.
package lanedist
