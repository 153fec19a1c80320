package lane

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// refMismatches is the byte-by-byte ground truth.
func refMismatches(a, b []byte, n int) uint32 {
	var res uint32
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			res++
		}
	}
	return res
}

// mismatchLens crosses word boundaries and the 255-word batch boundary
// (255*32 = 8160) in both directions.
var mismatchLens = []int{
	0, 1, 31, 32, 33, 63, 64, 100, 255, 256, 1000,
	8159, 8160, 8161, 8192, 10000, 16319, 16320, 16321,
}

func mismatchPair(r *rand.Rand, n int) (a, b []byte) {
	a = randBytes(r, n)
	b = make([]byte, n)
	copy(b, a)
	// Sparse random corruption keeps the expected count interesting
	// without being ~n.
	for i := range b {
		if r.Intn(4) == 0 {
			b[i] = byte(r.Intn(256))
		}
	}
	return a, b
}

func TestCountMismatchesAgainstReference(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	for _, bk := range backends() {
		for _, n := range mismatchLens {
			a, b := mismatchPair(r, n)
			want := refMismatches(a, b, n)

			require.Equalf(t, want, bk.CountMismatches(a, b, n), "%s batched n=%d", bk.Name(), n)
			// Every tested length is inside the direct kernel's envelope.
			require.Equalf(t, want, bk.CountMismatchesDirect(a, b, n), "%s direct n=%d", bk.Name(), n)
		}
	}
}

func TestCountMismatchesIdenticalAndDisjoint(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for _, bk := range backends() {
		for _, n := range []int{32, 33, 8160, 8161} {
			a := randBytes(r, n)
			require.Equal(t, uint32(0), bk.CountMismatches(a, a, n), bk.Name())

			b := make([]byte, n)
			for i := range b {
				b[i] = a[i] + 1 // differs everywhere
			}
			require.Equal(t, uint32(n), bk.CountMismatches(a, b, n), bk.Name())
		}
	}
}

func TestCountMismatchesVector(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	for _, bk := range backends() {
		for _, n := range []int{32, 64, 100, 8160, 8192, 10000} {
			a, b := mismatchPair(r, n)
			av := bk.Load(a, n)
			ub := av.UpperBound()

			// The vector kernel counts over all backed lanes, so the right
			// buffer must cover UpperBound and the expected count compares
			// the zero-padded tail too.
			bFull := make([]byte, ub)
			copy(bFull, b)
			for i := n; i < ub; i++ {
				bFull[i] = byte(r.Intn(256))
			}
			want := refMismatches(lanes(av), bFull, ub)

			require.Equalf(t, want, bk.CountMismatchesVector(av, bFull), "%s n=%d", bk.Name(), n)
		}
	}
}

func TestKernelsAgreeAcrossBackends(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	w, s := wordBackend{}, scalarBackend{}
	for trial := 0; trial < 30; trial++ {
		n := r.Intn(12000)
		a, b := mismatchPair(r, n)
		require.Equalf(t, s.CountMismatches(a, b, n), w.CountMismatches(a, b, n), "trial=%d n=%d", trial, n)
		require.Equalf(t, s.CountMismatchesDirect(a, b, n), w.CountMismatchesDirect(a, b, n), "trial=%d n=%d", trial, n)
	}
}

func TestPackageLevelDispatch(t *testing.T) {
	prevKind := ActiveKind()
	defer Select(prevKind)
	Select(Word)

	a := []byte("karolin")
	b := []byte("kathrin")
	require.Equal(t, uint32(3), CountMismatches(a, b, len(a)))
	require.Equal(t, uint32(3), CountMismatchesDirect(a, b, len(a)))

	v := Load(a, len(a))
	bFull := make([]byte, v.UpperBound())
	copy(bFull, a)
	require.Equal(t, uint32(0), CountMismatchesVector(v, bFull))

	Select(Scalar)
	require.Equal(t, uint32(3), CountMismatches(a, b, len(a)))
}
