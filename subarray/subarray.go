package subarray

import "iter"

// Span is the half-open index range [Start, End) of one subarray.
type Span struct {
	Start int
	End   int
}

// Len returns End - Start.
func (s Span) Len() int { return s.End - s.Start }

// Count returns the number of subarrays of a slice of length n: n*(n+1)/2.
func Count(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) / 2
}

// Spans yields every span of a slice of length n in enumeration order.
func Spans(n int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for i := 0; i < n; i++ {
			for j := i + 1; j <= n; j++ {
				if !yield(Span{Start: i, End: j}) {
					return
				}
			}
		}
	}
}

// All yields each span of s together with a copy of s[Start:End].
//
// The copy is made per yield, so consumers may keep or modify it freely.
func All[T any](s []T) iter.Seq2[Span, []T] {
	return func(yield func(Span, []T) bool) {
		for sp := range Spans(len(s)) {
			sub := make([]T, sp.Len())
			copy(sub, s[sp.Start:sp.End])
			if !yield(sp, sub) {
				return
			}
		}
	}
}

// Enumerate returns every contiguous, non-empty subarray of s in enumeration order.
//
// The result is never nil. All subarrays share one freshly allocated backing
// array, each capped at its own length, so appending to one reallocates
// instead of overwriting its neighbour.
func Enumerate[T any](s []T) [][]T {
	n := len(s)
	out := make([][]T, 0, Count(n))
	buf := make([]T, elements(n))

	off := 0
	for sp := range Spans(n) {
		end := off + sp.Len()
		copy(buf[off:end], s[sp.Start:sp.End])
		out = append(out, buf[off:end:end])
		off = end
	}
	return out
}

// elements is the total number of elements across all subarrays of a slice
// of length n: n*(n+1)*(n+2)/6.
func elements(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) * (n + 2) / 6
}

// rowOffset is the index in the result of the first subarray starting at i.
func rowOffset(n, i int) int {
	return Count(n) - Count(n-i)
}
