package lane

// WordLanes is the number of byte lanes in one physical word.
const WordLanes = 32

// MaxLane is the sentinel maximum lane value. Lanes are compared as signed
// 8-bit values, so 127 orders above every reachable cost.
const MaxLane byte = 127

// Vector is a logical sequence of byte lanes stored in 32-lane words.
//
// All operations mutate the receiver in place unless documented otherwise.
// Binary operations require the operand to come from the same backend and
// to have the same word count; this is NOT validated in default builds
// (see package docs).
type Vector interface {
	// Len returns the logical lane count the vector was constructed with.
	Len() int

	// UpperBound returns the physically backed lane capacity, a multiple
	// of WordLanes that may exceed Len. Code iterating every
	// hardware-visible lane must use UpperBound, not Len: in-place
	// mutation is free to spill values into lanes beyond Len.
	UpperBound() int

	// LoadRange overwrites lanes starting at logical index idx with the
	// bytes of src, advancing forward or, if reverse, backward. Bytes are
	// staged through a single word-sized scratch buffer so the backing
	// words are touched only at word boundaries and at the first and last
	// byte of the run.
	LoadRange(idx int, src []byte, reverse bool)

	// Reload overwrites every backed lane from src, one word at a time.
	// src must hold at least UpperBound bytes.
	Reload(src []byte)

	Add(o Vector)    // lane-wise wrapping add
	AddSat(o Vector) // lane-wise saturating signed add
	NegAdd(o Vector) // self = o - self, lane-wise
	And(o Vector)    // lane-wise bitwise and

	// Blend selects lanes from a and b into self, using self as the mask:
	// lanes whose high bit is set take b's byte, all others take a's.
	Blend(a, b Vector)

	// ShiftLeft moves every lane one position toward index zero; the
	// vacated last lane becomes zero. ShiftRight is the mirror image,
	// vacating lane zero. The pair is not self-inverse: a left shift
	// discards lane zero irrecoverably.
	ShiftLeft()
	ShiftRight()

	Extract(i int) byte
	Insert(i int, val byte)

	// InsertLast0 sets the last backed lane, InsertLast1 the second to
	// last, InsertLast2 the third to last. These seed fixed trailing
	// windows in distance recurrences.
	InsertLast0(val byte)
	InsertLast1(val byte)
	InsertLast2(val byte)
	InsertLastMax()
	InsertFirst(val byte)
	InsertFirstMax()

	// Dup returns a deep copy sharing no storage with the receiver.
	Dup() Vector

	// String renders the logical lanes for debugging.
	String() string
}

// Backend constructs vectors and runs the fused kernels for one concrete
// lane representation. Exactly one backend is selected at init; call sites
// go through Active (or the package-level helpers) and never inspect
// capabilities themselves.
type Backend interface {
	Name() string

	// Repeating returns a vector of n lanes with every backed lane,
	// including those beyond n, set to val.
	Repeating(val byte, n int) Vector

	// RepeatingMax is Repeating with the sentinel maximum.
	RepeatingMax(n int) Vector

	// Load returns a vector holding the first n bytes of src. Lanes of
	// the trailing partial word beyond n are zero. Exactly n source bytes
	// are read.
	Load(src []byte, n int) Vector

	// Fused clone-and-operate factories: callers of comparisons and
	// selections keep both operands, so the clone is folded in.
	CmpEq(a, b Vector) Vector
	CmpGt(a, b Vector) Vector // signed
	Min(a, b Vector) Vector   // signed
	Max(a, b Vector) Vector   // signed

	// TripleMinLength computes, per lane, the minimum of three edit costs
	// with a paired length tie-break, writing the winning cost to resMin
	// and its length to resLength. The reduction is two left-associated
	// stages: first aGap against bGap, then sub against that winner. At
	// each stage an exact cost tie takes the larger length. The stage
	// order is load-bearing: when all three costs tie it decides which
	// length wins, and downstream alignments depend on it.
	TripleMinLength(sub, aGap, bGap, subLength, aGapLength, bGapLength, resMin, resLength Vector)

	// CountMismatchesDirect counts positions where a and b differ over n
	// bytes in a single pass with a 32-bit match accumulator. It has no
	// overflow protection; callers keep n within the accumulator's range.
	CountMismatchesDirect(a, b []byte, n int) uint32

	// CountMismatches is the overflow-safe variant: per-lane byte match
	// counters are folded into wide accumulators every 255 words, so any
	// n a caller can allocate is safe.
	CountMismatches(a, b []byte, n int) uint32

	// CountMismatchesVector compares an already constructed vector
	// against a raw buffer of at least a.UpperBound() bytes, counting
	// over all backed lanes of a.
	CountMismatchesVector(a Vector, b []byte) uint32
}

// Package-level helpers forwarding to the active backend.

// Repeating returns a vector of n lanes, every backed lane set to val.
func Repeating(val byte, n int) Vector { return active.Repeating(val, n) }

// RepeatingMax returns a vector of n lanes, every backed lane set to the
// sentinel maximum.
func RepeatingMax(n int) Vector { return active.RepeatingMax(n) }

// Load returns a vector holding the first n bytes of src.
func Load(src []byte, n int) Vector { return active.Load(src, n) }

// CmpEq returns a new vector with all-ones lanes where a and b are equal.
func CmpEq(a, b Vector) Vector { return active.CmpEq(a, b) }

// CmpGt returns a new vector with all-ones lanes where a is signed greater
// than b.
func CmpGt(a, b Vector) Vector { return active.CmpGt(a, b) }

// Min returns a new vector with the signed lane-wise minimum of a and b.
func Min(a, b Vector) Vector { return active.Min(a, b) }

// Max returns a new vector with the signed lane-wise maximum of a and b.
func Max(a, b Vector) Vector { return active.Max(a, b) }

// TripleMinLength runs the fused three-way minimum with length tie-break
// on the active backend.
func TripleMinLength(sub, aGap, bGap, subLength, aGapLength, bGapLength, resMin, resLength Vector) {
	active.TripleMinLength(sub, aGap, bGap, subLength, aGapLength, bGapLength, resMin, resLength)
}

// CountMismatchesDirect counts mismatching bytes over a[:n] and b[:n]
// without overflow protection.
func CountMismatchesDirect(a, b []byte, n int) uint32 {
	return active.CountMismatchesDirect(a, b, n)
}

// CountMismatches counts mismatching bytes over a[:n] and b[:n] with
// batched overflow-safe accumulation.
func CountMismatches(a, b []byte, n int) uint32 {
	return active.CountMismatches(a, b, n)
}

// CountMismatchesVector counts lanes of a that differ from b, over all
// backed lanes of a.
func CountMismatchesVector(a Vector, b []byte) uint32 {
	return active.CountMismatchesVector(a, b)
}
