package lane

import (
	"math/rand"
	"strconv"
	"testing"
)

// Benchmarks compare the two backends directly; no build tags needed.
//
//	go test ./lane -run '^$' -bench . -benchmem

func benchPair(n int) (a, b []byte) {
	r := rand.New(rand.NewSource(1))
	a = randBytes(r, n)
	b = randBytes(r, n)
	return a, b
}

func BenchmarkCountMismatches(b *testing.B) {
	for _, bk := range backends() {
		for _, n := range []int{64, 1024, 16384} {
			a, c := benchPair(n)
			b.Run(bk.Name()+"/n="+strconv.Itoa(n), func(b *testing.B) {
				b.SetBytes(int64(2 * n))
				var sink uint32
				for i := 0; i < b.N; i++ {
					sink += bk.CountMismatches(a, c, n)
				}
				benchSink = sink
			})
		}
	}
}

func BenchmarkCountMismatchesDirect(b *testing.B) {
	for _, bk := range backends() {
		for _, n := range []int{64, 1024, 16384} {
			a, c := benchPair(n)
			b.Run(bk.Name()+"/n="+strconv.Itoa(n), func(b *testing.B) {
				b.SetBytes(int64(2 * n))
				var sink uint32
				for i := 0; i < b.N; i++ {
					sink += bk.CountMismatchesDirect(a, c, n)
				}
				benchSink = sink
			})
		}
	}
}

func BenchmarkTripleMinLength(b *testing.B) {
	r := rand.New(rand.NewSource(2))
	for _, bk := range backends() {
		for _, n := range []int{64, 1024} {
			vec := func() Vector { return bk.Load(randBytes(r, n), n) }
			sub, ag, bg := vec(), vec(), vec()
			sl, agl, bgl := vec(), vec(), vec()
			resMin, resLen := vec(), vec()
			b.Run(bk.Name()+"/n="+strconv.Itoa(n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					bk.TripleMinLength(sub, ag, bg, sl, agl, bgl, resMin, resLen)
				}
			})
		}
	}
}

func BenchmarkShiftLeft(b *testing.B) {
	r := rand.New(rand.NewSource(3))
	for _, bk := range backends() {
		for _, n := range []int{64, 1024} {
			v := bk.Load(randBytes(r, n), n)
			b.Run(bk.Name()+"/n="+strconv.Itoa(n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					v.ShiftLeft()
				}
			})
		}
	}
}

var benchSink uint32
