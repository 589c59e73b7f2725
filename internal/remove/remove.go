package remove

import (
	"runtime"
	"slices"
	"sync"
)

// DefaultMinChunk is the smallest chunk a parallel strategy hands to a
// goroutine.
const DefaultMinChunk = 4096

// Options tunes the parallel strategies. Sequential strategies ignore it.
type Options struct {
	// Workers is the maximum number of goroutines (default: GOMAXPROCS)
	Workers int

	// MinChunk is the minimum number of elements per goroutine (default: 4096)
	MinChunk int
}

// DefaultOptions returns options sized to the current GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		MinChunk: DefaultMinChunk,
	}
}

func (o Options) normalize() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MinChunk <= 0 {
		o.MinChunk = DefaultMinChunk
	}
	return o
}

// Chunks returns how many goroutines a parallel strategy would use for n
// elements.
func (o Options) Chunks(n int) int {
	o = o.normalize()
	chunks := n / o.MinChunk
	if chunks > o.Workers {
		chunks = o.Workers
	}
	if chunks < 1 {
		chunks = 1
	}
	return chunks
}

// Shrink removes every element equal to v from s and returns s truncated to
// the kept elements. Kept elements stay in source order. The operation works
// in place on the backing array of s and zeroes the vacated tail.
func Shrink[S ~[]E, E comparable](s S, v E, st Strategy, opts Options) S {
	if st == Baseline {
		return slices.DeleteFunc(s, func(x E) bool { return x == v })
	}

	var n int
	switch st {
	case Sequential:
		n = compactScalar[E](s, v)
	case Unsequenced:
		n = compactBranchless[E](s, v)
	case Parallel:
		n = compactChunks[E](s, v, opts, compactScalar[E])
	case ParallelUnsequenced:
		n = compactChunks[E](s, v, opts, compactBranchless[E])
	default:
		panic("remove: invalid strategy " + st.String())
	}

	clear(s[n:])
	return s[:n]
}

// compactScalar moves the elements not equal to v to the front of s and
// returns their count.
func compactScalar[E comparable](s []E, v E) int {
	w := 0
	for _, x := range s {
		if x != v {
			s[w] = x
			w++
		}
	}
	return w
}

// compactBranchless is compactScalar without a data dependent branch. Every
// element is written and the write cursor advances only for kept ones, so
// w <= i always holds and no unread element is overwritten.
func compactBranchless[E comparable](s []E, v E) int {
	w, i := 0, 0
	for ; i+4 <= len(s); i += 4 {
		a, b, c, d := s[i], s[i+1], s[i+2], s[i+3]
		s[w] = a
		w += keep(a != v)
		s[w] = b
		w += keep(b != v)
		s[w] = c
		w += keep(c != v)
		s[w] = d
		w += keep(d != v)
	}
	for ; i < len(s); i++ {
		x := s[i]
		s[w] = x
		w += keep(x != v)
	}
	return w
}

func keep(b bool) int {
	if b {
		return 1
	}
	return 0
}

// compactChunks splits s into contiguous chunks, compacts them concurrently
// and then slides each kept prefix left, in chunk order, so the result keeps
// source order.
func compactChunks[E comparable](s []E, v E, opts Options, kernel func([]E, E) int) int {
	chunks := opts.Chunks(len(s))
	if chunks == 1 {
		return kernel(s, v)
	}

	size := (len(s) + chunks - 1) / chunks
	kept := make([]int, chunks)

	var wg sync.WaitGroup
	for c := 0; c < chunks; c++ {
		lo := min(c*size, len(s))
		hi := min(lo+size, len(s))
		wg.Add(1)
		go func(c, lo, hi int) {
			defer wg.Done()
			kept[c] = kernel(s[lo:hi], v)
		}(c, lo, hi)
	}
	wg.Wait()

	// The write cursor never passes a chunk start, so copy only ever moves
	// data left over already consumed slots.
	w := kept[0]
	for c := 1; c < chunks; c++ {
		lo := min(c*size, len(s))
		if w != lo {
			copy(s[w:], s[lo:lo+kept[c]])
		}
		w += kept[c]
	}
	return w
}
