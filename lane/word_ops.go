package lane

// Elementwise operations. Operands are accessed positionally; equal word
// counts are the caller's obligation (lanecheck builds enforce it).

func (v *wordVec) checkShape(o *wordVec) {
	if checkEnabled && len(o.words) != len(v.words) {
		panic("lane: operand word counts differ")
	}
}

func (v *wordVec) Add(o Vector) {
	ov := o.(*wordVec)
	v.checkShape(ov)
	for i := range v.words {
		w, u := &v.words[i], &ov.words[i]
		for q := 0; q < 4; q++ {
			w[q] = addBytes(w[q], u[q])
		}
	}
}

func (v *wordVec) AddSat(o Vector) {
	ov := o.(*wordVec)
	v.checkShape(ov)
	for i := range v.words {
		w, u := &v.words[i], &ov.words[i]
		for q := 0; q < 4; q++ {
			w[q] = addSatBytesS(w[q], u[q])
		}
	}
}

func (v *wordVec) NegAdd(o Vector) {
	ov := o.(*wordVec)
	v.checkShape(ov)
	for i := range v.words {
		w, u := &v.words[i], &ov.words[i]
		for q := 0; q < 4; q++ {
			w[q] = subBytes(u[q], w[q])
		}
	}
}

func (v *wordVec) And(o Vector) {
	ov := o.(*wordVec)
	v.checkShape(ov)
	for i := range v.words {
		w, u := &v.words[i], &ov.words[i]
		for q := 0; q < 4; q++ {
			w[q] &= u[q]
		}
	}
}

func (v *wordVec) Blend(a, b Vector) {
	av, bv := a.(*wordVec), b.(*wordVec)
	v.checkShape(av)
	v.checkShape(bv)
	for i := range v.words {
		w, x, y := &v.words[i], &av.words[i], &bv.words[i]
		for q := 0; q < 4; q++ {
			w[q] = blendBytes(w[q], x[q], y[q])
		}
	}
}

// ShiftLeft moves lane i+1 into lane i. Lane 0 is the least significant
// byte of quarter 0, so within a word this is a numeric right shift by 8,
// with carry bytes flowing between quarters and, at the top quarter, in
// from the next word's lane 0.
func (v *wordVec) ShiftLeft() {
	last := len(v.words) - 1
	for i := 0; i <= last; i++ {
		var carry uint64
		if i < last {
			carry = v.words[i+1][0] & 0xff
		}
		w := &v.words[i]
		w[0] = w[0]>>8 | w[1]<<56
		w[1] = w[1]>>8 | w[2]<<56
		w[2] = w[2]>>8 | w[3]<<56
		w[3] = w[3]>>8 | carry<<56
	}
}

// ShiftRight moves lane i-1 into lane i, vacating lane 0. Words are walked
// top-down so each reads its predecessor's lane 31 before it changes.
func (v *wordVec) ShiftRight() {
	for i := len(v.words) - 1; i >= 0; i-- {
		var carry uint64
		if i > 0 {
			carry = v.words[i-1][3] >> 56
		}
		w := &v.words[i]
		w[3] = w[3]<<8 | w[2]>>56
		w[2] = w[2]<<8 | w[1]>>56
		w[1] = w[1]<<8 | w[0]>>56
		w[0] = w[0]<<8 | carry
	}
}

// Fused clone-and-operate factories.

func (wordBackend) CmpEq(a, b Vector) Vector {
	av, bv := a.(*wordVec), b.(*wordVec)
	av.checkShape(bv)
	words := make([]word, len(av.words))
	for i := range words {
		x, y := &av.words[i], &bv.words[i]
		for q := 0; q < 4; q++ {
			words[i][q] = eqMask(x[q], y[q])
		}
	}
	return &wordVec{n: av.n, words: words}
}

func (wordBackend) CmpGt(a, b Vector) Vector {
	av, bv := a.(*wordVec), b.(*wordVec)
	av.checkShape(bv)
	words := make([]word, len(av.words))
	for i := range words {
		x, y := &av.words[i], &bv.words[i]
		for q := 0; q < 4; q++ {
			words[i][q] = gtMaskS(x[q], y[q])
		}
	}
	return &wordVec{n: av.n, words: words}
}

func (wordBackend) Min(a, b Vector) Vector {
	av, bv := a.(*wordVec), b.(*wordVec)
	av.checkShape(bv)
	words := make([]word, len(av.words))
	for i := range words {
		x, y := &av.words[i], &bv.words[i]
		for q := 0; q < 4; q++ {
			words[i][q] = minBytesS(x[q], y[q])
		}
	}
	return &wordVec{n: av.n, words: words}
}

func (wordBackend) Max(a, b Vector) Vector {
	av, bv := a.(*wordVec), b.(*wordVec)
	av.checkShape(bv)
	words := make([]word, len(av.words))
	for i := range words {
		x, y := &av.words[i], &bv.words[i]
		for q := 0; q < 4; q++ {
			words[i][q] = maxBytesS(x[q], y[q])
		}
	}
	return &wordVec{n: av.n, words: words}
}

// TripleMinLength reduces three cost/length pairs per lane in two
// left-associated stages, preferring the larger length on exact cost ties.
// Stage order must not change: it decides the winning length when all
// three costs tie.
func (wordBackend) TripleMinLength(sub, aGap, bGap, subLength, aGapLength, bGapLength, resMin, resLength Vector) {
	sv := sub.(*wordVec)
	av, bv := aGap.(*wordVec), bGap.(*wordVec)
	slv := subLength.(*wordVec)
	alv, blv := aGapLength.(*wordVec), bGapLength.(*wordVec)
	rm, rl := resMin.(*wordVec), resLength.(*wordVec)
	sv.checkShape(av)
	sv.checkShape(bv)
	sv.checkShape(slv)
	sv.checkShape(alv)
	sv.checkShape(blv)
	sv.checkShape(rm)
	sv.checkShape(rl)

	for i := range sv.words {
		s, ag, bg := &sv.words[i], &av.words[i], &bv.words[i]
		sl, agl, bgl := &slv.words[i], &alv.words[i], &blv.words[i]
		for q := 0; q < 4; q++ {
			// Stage 1: aGap vs bGap.
			min1 := minBytesS(ag[q], bg[q])
			gt := gtMaskS(ag[q], bg[q]) // aGap wins: 0, bGap wins: ff
			len1 := blendBytes(gt, agl[q], bgl[q])
			eq := eqMask(ag[q], bg[q])
			len1 = blendBytes(eq, len1, maxBytesS(agl[q], bgl[q]))

			// Stage 2: sub vs the stage-1 winner.
			min2 := minBytesS(s[q], min1)
			gt2 := gtMaskS(s[q], min1)
			len2 := blendBytes(gt2, sl[q], len1)
			eq2 := eqMask(s[q], min1)
			len2 = blendBytes(eq2, len2, maxBytesS(sl[q], len1))

			rm.words[i][q] = min2
			rl.words[i][q] = len2
		}
	}
}

// Mismatch kernels. These run straight off the raw buffers; no vector is
// constructed.

// CountMismatchesDirect does one pass with a 32-bit match accumulator and
// a scalar tail for the n%32 leftover bytes.
func (wordBackend) CountMismatchesDirect(a, b []byte, n int) uint32 {
	if checkEnabled && (len(a) < n || len(b) < n) {
		panic("lane: CountMismatchesDirect buffers shorter than n")
	}
	var res uint32
	full := n >> 5
	for i := 0; i < full; i++ {
		off := i * WordLanes
		x := loadWordFull(a, off)
		y := loadWordFull(b, off)
		for q := 0; q < 4; q++ {
			res += matchCount(eqMask(x[q], y[q]))
		}
	}
	for i := full * WordLanes; i < n; i++ {
		if a[i] == b[i] {
			res++
		}
	}
	return uint32(n) - res
}

// batchWords is how many words fit between horizontal reductions before a
// per-lane byte counter could wrap: each word contributes at most one
// count per lane, and 255 is the widest an 8-bit counter can go.
const batchWords = 255

// CountMismatches tracks matches per lane in byte counters, subtracting
// the ff/00 equality mask (subtracting -1 adds 1 on match), and folds the
// counters into wide accumulators after every batch and once more for the
// final partial batch.
func (wordBackend) CountMismatches(a, b []byte, n int) uint32 {
	if checkEnabled && (len(a) < n || len(b) < n) {
		panic("lane: CountMismatches buffers shorter than n")
	}
	full := n >> 5
	var sad [4]uint64
	batches := full / batchWords

	for i := 0; i < batches; i++ {
		var cnt word
		base := i * batchWords
		for j := base; j < base+batchWords; j++ {
			off := j * WordLanes
			x := loadWordFull(a, off)
			y := loadWordFull(b, off)
			for q := 0; q < 4; q++ {
				cnt[q] = subBytes(cnt[q], eqMask(x[q], y[q]))
			}
		}
		for q := 0; q < 4; q++ {
			sad[q] += byteSum(cnt[q])
		}
	}

	// Leftover full words.
	var cnt word
	for j := batches * batchWords; j < full; j++ {
		off := j * WordLanes
		x := loadWordFull(a, off)
		y := loadWordFull(b, off)
		for q := 0; q < 4; q++ {
			cnt[q] = subBytes(cnt[q], eqMask(x[q], y[q]))
		}
	}
	for q := 0; q < 4; q++ {
		sad[q] += byteSum(cnt[q])
	}

	matches := uint32(sad[0] + sad[1] + sad[2] + sad[3])
	for i := full * WordLanes; i < n; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return uint32(n) - matches
}

// CountMismatchesVector is the batched kernel with the left operand taken
// from an existing vector, over all of its backed lanes.
func (wordBackend) CountMismatchesVector(a Vector, b []byte) uint32 {
	av := a.(*wordVec)
	if checkEnabled && len(b) < av.UpperBound() {
		panic("lane: CountMismatchesVector buffer shorter than UpperBound")
	}
	full := len(av.words)
	var sad [4]uint64
	batches := full / batchWords

	for i := 0; i < batches; i++ {
		var cnt word
		base := i * batchWords
		for j := base; j < base+batchWords; j++ {
			x := &av.words[j]
			y := loadWordFull(b, j*WordLanes)
			for q := 0; q < 4; q++ {
				cnt[q] = subBytes(cnt[q], eqMask(x[q], y[q]))
			}
		}
		for q := 0; q < 4; q++ {
			sad[q] += byteSum(cnt[q])
		}
	}

	var cnt word
	for j := batches * batchWords; j < full; j++ {
		x := &av.words[j]
		y := loadWordFull(b, j*WordLanes)
		for q := 0; q < 4; q++ {
			cnt[q] = subBytes(cnt[q], eqMask(x[q], y[q]))
		}
	}
	for q := 0; q < 4; q++ {
		sad[q] += byteSum(cnt[q])
	}

	matches := sad[0] + sad[1] + sad[2] + sad[3]
	return uint32(full<<5) - uint32(matches)
}
