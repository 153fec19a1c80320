package lanedist

import (
	"fmt"
	"unsafe"
)

// Match describes a single matching location, usually returned by
// searching routines.
type Match struct {
	// Start is the start index of the match (inclusive).
	Start int
	// End is the end index of the match (exclusive).
	End int
	// K is the number of edits for the match.
	K uint32
}

// Edit is one edit operation, usually returned as part of the traceback
// for matching routines.
type Edit uint8

const (
	EditMatch Edit = iota
	EditMismatch
	EditAGap
	EditBGap
)

// String returns the string representation of an Edit.
func (e Edit) String() string {
	switch e {
	case EditMatch:
		return "match"
	case EditMismatch:
		return "mismatch"
	case EditAGap:
		return "a-gap"
	case EditBGap:
		return "b-gap"
	default:
		return "unknown"
	}
}

// BufferAlignment is the byte alignment AllocBytes guarantees, enough for
// the buffer to be reinterpreted as 128-bit chunks.
const BufferAlignment = 16

// AllocBytes allocates a byte buffer of length n whose backing memory
// starts on a BufferAlignment boundary, so distance kernels can later read
// it as wider words.
//
// Write into the returned slice in place only. Any growth operation that
// reallocates (such as append past capacity) loses the alignment.
func AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}

	// Over-allocate so an aligned offset always exists; the underlying
	// array stays alive through the returned slice.
	buf := make([]byte, n+BufferAlignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (BufferAlignment - (addr & (BufferAlignment - 1))) & (BufferAlignment - 1)

	return buf[offset : offset+uintptr(n)]
}

// Fill copies src into a prefix of dst, typically after allocating dst
// with AllocBytes. It panics if src is longer than dst; a partial copy
// would silently corrupt downstream distance results.
func Fill(dst, src []byte) {
	if len(src) > len(dst) {
		panic(fmt.Sprintf("lanedist: source length %d exceeds destination length %d", len(src), len(dst)))
	}
	copy(dst, src)
}
