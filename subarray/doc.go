// Package subarray enumerates the contiguous, non-empty sub-sequences of a slice.
//
// For a slice s of length n, every pair (i, j) with 0 <= i < j <= n names one
// subarray s[i:j]. Pairs are visited with i ascending and, for each i, j
// ascending, so [1 2 3] produces:
//
//	[1] [1 2] [1 2 3] [2] [2 3] [3]
//
// There are always n*(n+1)/2 results. Duplicate input values are kept per
// position; nothing is deduplicated.
//
// Every produced subarray owns its storage. Mutating the input afterwards, or
// appending to one result, never changes another result.
//
// Three ways in:
//
//   - Enumerate: eager, returns the whole collection.
//   - All / Spans: lazy iterators for callers that stream.
//   - EnumerateParallel: fans rows out over an errgroup and still returns
//     the sequential order.
//
// Import
//
//	"github.com/sghaida/subarrays/subarray"
package subarray
