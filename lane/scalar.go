package lane

// scalarBackend is the portable realization of the lane contract: plain
// byte loops over a flat slice. It keeps the same 32-lane word granularity
// as the word backend so UpperBound and the kernels agree exactly, and it
// doubles as the reference the word backend is tested against.
type scalarBackend struct{}

func (scalarBackend) Name() string { return "scalar" }

// scalarVec stores every backed lane in v; len(v) is always a multiple of
// WordLanes.
type scalarVec struct {
	n int
	v []byte
}

func (scalarBackend) Repeating(val byte, n int) Vector {
	v := make([]byte, wordCount(n)*WordLanes)
	for i := range v {
		v[i] = val
	}
	return &scalarVec{n: n, v: v}
}

func (b scalarBackend) RepeatingMax(n int) Vector {
	return b.Repeating(MaxLane, n)
}

func (scalarBackend) Load(src []byte, n int) Vector {
	if checkEnabled && len(src) < n {
		panic("lane: Load source shorter than n")
	}
	v := make([]byte, wordCount(n)*WordLanes)
	copy(v, src[:n])
	return &scalarVec{n: n, v: v}
}

func (v *scalarVec) Len() int { return v.n }

func (v *scalarVec) UpperBound() int { return len(v.v) }

func (v *scalarVec) Reload(src []byte) {
	if checkEnabled && len(src) < len(v.v) {
		panic("lane: Reload source shorter than UpperBound")
	}
	copy(v.v, src[:len(v.v)])
}

func (v *scalarVec) LoadRange(idx int, src []byte, reverse bool) {
	// No word staging to amortize here; write lanes directly.
	for i, c := range src {
		if reverse {
			v.v[idx-i] = c
		} else {
			v.v[idx+i] = c
		}
	}
}

func (v *scalarVec) scalarShape(o Vector) *scalarVec {
	ov := o.(*scalarVec)
	if checkEnabled && len(ov.v) != len(v.v) {
		panic("lane: operand word counts differ")
	}
	return ov
}

func (v *scalarVec) Add(o Vector) {
	ov := v.scalarShape(o)
	for i := range v.v {
		v.v[i] += ov.v[i]
	}
}

func (v *scalarVec) AddSat(o Vector) {
	ov := v.scalarShape(o)
	for i := range v.v {
		v.v[i] = satAdd8(v.v[i], ov.v[i])
	}
}

func (v *scalarVec) NegAdd(o Vector) {
	ov := v.scalarShape(o)
	for i := range v.v {
		v.v[i] = ov.v[i] - v.v[i]
	}
}

func (v *scalarVec) And(o Vector) {
	ov := v.scalarShape(o)
	for i := range v.v {
		v.v[i] &= ov.v[i]
	}
}

func (v *scalarVec) Blend(a, b Vector) {
	av, bv := v.scalarShape(a), v.scalarShape(b)
	for i := range v.v {
		if v.v[i]&0x80 != 0 {
			v.v[i] = bv.v[i]
		} else {
			v.v[i] = av.v[i]
		}
	}
}

func (v *scalarVec) ShiftLeft() {
	copy(v.v, v.v[1:])
	v.v[len(v.v)-1] = 0
}

func (v *scalarVec) ShiftRight() {
	copy(v.v[1:], v.v)
	v.v[0] = 0
}

func (v *scalarVec) Extract(i int) byte {
	if checkEnabled && i >= len(v.v) {
		panic("lane: Extract index beyond UpperBound")
	}
	return v.v[i]
}

func (v *scalarVec) Insert(i int, val byte) {
	if checkEnabled && i >= len(v.v) {
		panic("lane: Insert index beyond UpperBound")
	}
	v.v[i] = val
}

func (v *scalarVec) InsertLast0(val byte) { v.v[len(v.v)-1] = val }
func (v *scalarVec) InsertLast1(val byte) { v.v[len(v.v)-2] = val }
func (v *scalarVec) InsertLast2(val byte) { v.v[len(v.v)-3] = val }
func (v *scalarVec) InsertLastMax()       { v.v[len(v.v)-1] = MaxLane }
func (v *scalarVec) InsertFirst(val byte) { v.v[0] = val }
func (v *scalarVec) InsertFirstMax()      { v.v[0] = MaxLane }

func (v *scalarVec) Dup() Vector {
	dup := make([]byte, len(v.v))
	copy(dup, v.v)
	return &scalarVec{n: v.n, v: dup}
}

func (v *scalarVec) String() string { return formatLanes(v) }

func (scalarBackend) CmpEq(a, b Vector) Vector {
	av := a.(*scalarVec)
	bv := av.scalarShape(b)
	out := make([]byte, len(av.v))
	for i := range out {
		if av.v[i] == bv.v[i] {
			out[i] = 0xff
		}
	}
	return &scalarVec{n: av.n, v: out}
}

func (scalarBackend) CmpGt(a, b Vector) Vector {
	av := a.(*scalarVec)
	bv := av.scalarShape(b)
	out := make([]byte, len(av.v))
	for i := range out {
		if int8(av.v[i]) > int8(bv.v[i]) {
			out[i] = 0xff
		}
	}
	return &scalarVec{n: av.n, v: out}
}

func (scalarBackend) Min(a, b Vector) Vector {
	av := a.(*scalarVec)
	bv := av.scalarShape(b)
	out := make([]byte, len(av.v))
	for i := range out {
		out[i] = min8(av.v[i], bv.v[i])
	}
	return &scalarVec{n: av.n, v: out}
}

func (scalarBackend) Max(a, b Vector) Vector {
	av := a.(*scalarVec)
	bv := av.scalarShape(b)
	out := make([]byte, len(av.v))
	for i := range out {
		out[i] = max8(av.v[i], bv.v[i])
	}
	return &scalarVec{n: av.n, v: out}
}

func (scalarBackend) TripleMinLength(sub, aGap, bGap, subLength, aGapLength, bGapLength, resMin, resLength Vector) {
	sv := sub.(*scalarVec)
	av, bv := sv.scalarShape(aGap), sv.scalarShape(bGap)
	slv := sv.scalarShape(subLength)
	alv, blv := sv.scalarShape(aGapLength), sv.scalarShape(bGapLength)
	rm, rl := sv.scalarShape(resMin), sv.scalarShape(resLength)

	for i := range sv.v {
		s, ag, bg := sv.v[i], av.v[i], bv.v[i]
		sl, agl, bgl := slv.v[i], alv.v[i], blv.v[i]

		// Stage 1: aGap vs bGap, larger length on a tie.
		min1 := min8(ag, bg)
		len1 := agl
		if int8(ag) > int8(bg) {
			len1 = bgl
		}
		if ag == bg {
			len1 = max8(agl, bgl)
		}

		// Stage 2: sub vs the stage-1 winner.
		min2 := min8(s, min1)
		len2 := sl
		if int8(s) > int8(min1) {
			len2 = len1
		}
		if s == min1 {
			len2 = max8(sl, len1)
		}

		rm.v[i] = min2
		rl.v[i] = len2
	}
}

func (scalarBackend) CountMismatchesDirect(a, b []byte, n int) uint32 {
	if checkEnabled && (len(a) < n || len(b) < n) {
		panic("lane: CountMismatchesDirect buffers shorter than n")
	}
	var res uint32
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			res++
		}
	}
	return res
}

// CountMismatches has nothing to batch in the scalar realization; the
// direct loop never overflows because it counts straight into 32 bits.
func (sb scalarBackend) CountMismatches(a, b []byte, n int) uint32 {
	return sb.CountMismatchesDirect(a, b, n)
}

func (scalarBackend) CountMismatchesVector(a Vector, b []byte) uint32 {
	av := a.(*scalarVec)
	if checkEnabled && len(b) < len(av.v) {
		panic("lane: CountMismatchesVector buffer shorter than UpperBound")
	}
	var res uint32
	for i := range av.v {
		if av.v[i] != b[i] {
			res++
		}
	}
	return res
}

func min8(x, y byte) byte {
	if int8(x) > int8(y) {
		return y
	}
	return x
}

func max8(x, y byte) byte {
	if int8(x) > int8(y) {
		return x
	}
	return y
}

func satAdd8(x, y byte) byte {
	s := int16(int8(x)) + int16(int8(y))
	if s > 127 {
		s = 127
	}
	if s < -128 {
		s = -128
	}
	return byte(int8(s))
}
