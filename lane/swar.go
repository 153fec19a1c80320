package lane

import (
	"encoding/binary"
	"math/bits"
)

// word is one 32-lane physical word, held as four 64-bit quarters. Lane i
// lives in byte i%8 of quarter i/8, little-endian, so lane 0 is the least
// significant byte of q[0] and lane 31 the most significant byte of q[3].
type word [4]uint64

// Per-quarter SWAR constants.
const (
	swarOnes  uint64 = 0x0101010101010101 // low bit of every byte
	swarHighs uint64 = 0x8080808080808080 // high bit of every byte
	swarLow7  uint64 = 0x7f7f7f7f7f7f7f7f // everything but the high bits
)

// addBytes is lane-wise wrapping addition. Carries are confined to their
// byte by adding the low 7 bits separately and xoring the high bits back.
func addBytes(x, y uint64) uint64 {
	return ((x & swarLow7) + (y & swarLow7)) ^ ((x ^ y) & swarHighs)
}

// subBytes is lane-wise wrapping subtraction. Setting the high bit of every
// minuend byte keeps borrows from crossing byte boundaries.
func subBytes(x, y uint64) uint64 {
	return ((x | swarHighs) - (y & swarLow7)) ^ ((x ^ y ^ swarHighs) & swarHighs)
}

// eqMask returns 0xff in every byte where x and y are equal, 0x00 elsewhere.
func eqMask(x, y uint64) uint64 {
	v := x ^ y
	// High bit of t|v is set exactly where the byte of v is nonzero; the
	// add cannot carry out of a byte (max 0x7e + 0x7f).
	t := (v & swarLow7) + swarLow7
	return ((^(t | v) & swarHighs) >> 7) * 0xff
}

// ltMaskU returns 0xff in every byte where x < y as unsigned values.
func ltMaskU(x, y uint64) uint64 {
	// d holds 0x80 + low7(x) - low7(y) per byte; it stays in [0x01, 0xff],
	// so no borrow leaves its byte, and its high bit is low7(x) >= low7(y).
	d := (x | swarHighs) - (y & swarLow7)
	lt := ((^x & y) | (^(x ^ y) & ^d)) & swarHighs
	return (lt >> 7) * 0xff
}

// gtMaskS returns 0xff in every byte where x > y as signed values, via the
// usual sign-bias into an unsigned compare.
func gtMaskS(x, y uint64) uint64 {
	return ltMaskU(y^swarHighs, x^swarHighs)
}

// minBytesS is the lane-wise signed minimum.
func minBytesS(x, y uint64) uint64 {
	m := gtMaskS(x, y)
	return (x &^ m) | (y & m)
}

// maxBytesS is the lane-wise signed maximum.
func maxBytesS(x, y uint64) uint64 {
	m := gtMaskS(x, y)
	return (y &^ m) | (x & m)
}

// addSatBytesS is lane-wise saturating signed addition.
func addSatBytesS(x, y uint64) uint64 {
	s := addBytes(x, y)
	// Overflowed bytes: operands share a sign the sum does not.
	ov := ^(x ^ y) & (x ^ s) & swarHighs
	if ov == 0 {
		return s
	}
	// 0x7f for positive x, 0x80 for negative x.
	sat := swarLow7 + ((x >> 7) & swarOnes)
	m := (ov >> 7) * 0xff
	return (s &^ m) | (sat & m)
}

// blendBytes selects b's byte where the mask byte's high bit is set, a's
// byte elsewhere.
func blendBytes(mask, a, b uint64) uint64 {
	m := ((mask & swarHighs) >> 7) * 0xff
	return (a &^ m) | (b & m)
}

// matchCount counts bytes of an eqMask result that are 0xff.
func matchCount(eq uint64) uint32 {
	return uint32(bits.OnesCount64(eq & swarOnes))
}

// byteSum adds the eight bytes of v, the scalar analogue of a horizontal
// sum-of-absolute-differences against zero.
func byteSum(v uint64) uint64 {
	t := (v & 0x00ff00ff00ff00ff) + ((v >> 8) & 0x00ff00ff00ff00ff)
	t = (t & 0x0000ffff0000ffff) + ((t >> 16) & 0x0000ffff0000ffff)
	return (t & 0xffffffff) + (t >> 32)
}

// loadWordFull reads 32 bytes of src starting at off.
func loadWordFull(src []byte, off int) word {
	return word{
		binary.LittleEndian.Uint64(src[off:]),
		binary.LittleEndian.Uint64(src[off+8:]),
		binary.LittleEndian.Uint64(src[off+16:]),
		binary.LittleEndian.Uint64(src[off+24:]),
	}
}

// storeWord spills w into a 32-byte scratch buffer.
func storeWord(buf *[32]byte, w word) {
	binary.LittleEndian.PutUint64(buf[0:], w[0])
	binary.LittleEndian.PutUint64(buf[8:], w[1])
	binary.LittleEndian.PutUint64(buf[16:], w[2])
	binary.LittleEndian.PutUint64(buf[24:], w[3])
}

// loadWordBuf reads a word back from a 32-byte scratch buffer.
func loadWordBuf(buf *[32]byte) word {
	return word{
		binary.LittleEndian.Uint64(buf[0:]),
		binary.LittleEndian.Uint64(buf[8:]),
		binary.LittleEndian.Uint64(buf[16:]),
		binary.LittleEndian.Uint64(buf[24:]),
	}
}

// broadcastWord fills every lane of a word with val.
func broadcastWord(val byte) word {
	q := uint64(val) * swarOnes
	return word{q, q, q, q}
}
