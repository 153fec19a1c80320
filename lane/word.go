package lane

// wordBackend realizes the lane contract with SIMD-within-a-register
// arithmetic over 64-bit quarters of 32-lane words.
type wordBackend struct{}

func (wordBackend) Name() string { return "word" }

// wordVec is a logical run of n lanes over ceil(n/32) words.
type wordVec struct {
	n     int
	words []word
}

func wordCount(n int) int {
	return (n >> 5) + boolInt(n&(WordLanes-1) > 0)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (wordBackend) Repeating(val byte, n int) Vector {
	w := broadcastWord(val)
	words := make([]word, wordCount(n))
	for i := range words {
		words[i] = w
	}
	return &wordVec{n: n, words: words}
}

func (b wordBackend) RepeatingMax(n int) Vector {
	return b.Repeating(MaxLane, n)
}

func (wordBackend) Load(src []byte, n int) Vector {
	if checkEnabled && len(src) < n {
		panic("lane: Load source shorter than n")
	}
	words := make([]word, wordCount(n))
	full := n >> 5
	for i := 0; i < full; i++ {
		words[i] = loadWordFull(src, i*WordLanes)
	}
	// Trailing partial word goes through a zeroed scratch so no byte past
	// n is read and the tail lanes come out zero.
	if rem := n & (WordLanes - 1); rem > 0 {
		var buf [32]byte
		copy(buf[:], src[full*WordLanes:n])
		words[full] = loadWordBuf(&buf)
	}
	return &wordVec{n: n, words: words}
}

func (v *wordVec) Len() int { return v.n }

func (v *wordVec) UpperBound() int { return len(v.words) << 5 }

func (v *wordVec) Reload(src []byte) {
	if checkEnabled && len(src) < v.UpperBound() {
		panic("lane: Reload source shorter than UpperBound")
	}
	for i := range v.words {
		v.words[i] = loadWordFull(src, i*WordLanes)
	}
}

func (v *wordVec) LoadRange(idx int, src []byte, reverse bool) {
	n := len(src)
	if n == 0 {
		return
	}
	// Entering a word means loading it into the scratch, leaving it means
	// flushing the scratch back; which lane index marks the edge depends
	// on the direction of travel.
	loadEdge, storeEdge := 0, WordLanes-1
	if reverse {
		loadEdge, storeEdge = WordLanes-1, 0
	}
	var buf [32]byte
	for i := 0; i < n; i++ {
		cur := idx + i
		if reverse {
			cur = idx - i
		}
		ai := cur & (WordLanes - 1)
		if i == 0 || ai == loadEdge {
			storeWord(&buf, v.words[cur>>5])
		}
		buf[ai] = src[i]
		if i == n-1 || ai == storeEdge {
			v.words[cur>>5] = loadWordBuf(&buf)
		}
	}
}

func (v *wordVec) Extract(i int) byte {
	if checkEnabled && i >= v.UpperBound() {
		panic("lane: Extract index beyond UpperBound")
	}
	var buf [32]byte
	storeWord(&buf, v.words[i>>5])
	return buf[i&(WordLanes-1)]
}

func (v *wordVec) Insert(i int, val byte) {
	if checkEnabled && i >= v.UpperBound() {
		panic("lane: Insert index beyond UpperBound")
	}
	var buf [32]byte
	storeWord(&buf, v.words[i>>5])
	buf[i&(WordLanes-1)] = val
	v.words[i>>5] = loadWordBuf(&buf)
}

// The fixed-offset inserts poke one byte of one quarter directly, the
// moral equivalent of an insert-with-immediate instruction.

func (v *wordVec) InsertLast0(val byte) {
	w := &v.words[len(v.words)-1]
	w[3] = (w[3] &^ (uint64(0xff) << 56)) | uint64(val)<<56
}

func (v *wordVec) InsertLast1(val byte) {
	w := &v.words[len(v.words)-1]
	w[3] = (w[3] &^ (uint64(0xff) << 48)) | uint64(val)<<48
}

func (v *wordVec) InsertLast2(val byte) {
	w := &v.words[len(v.words)-1]
	w[3] = (w[3] &^ (uint64(0xff) << 40)) | uint64(val)<<40
}

func (v *wordVec) InsertLastMax() { v.InsertLast0(MaxLane) }

func (v *wordVec) InsertFirst(val byte) {
	w := &v.words[0]
	w[0] = (w[0] &^ 0xff) | uint64(val)
}

func (v *wordVec) InsertFirstMax() { v.InsertFirst(MaxLane) }

func (v *wordVec) Dup() Vector {
	words := make([]word, len(v.words))
	copy(words, v.words)
	return &wordVec{n: v.n, words: words}
}

func (v *wordVec) String() string { return formatLanes(v) }
