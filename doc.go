// Package subarrays enumerates the contiguous, non-empty subarrays of a sequence.
//
// The repository is split into small packages:
//
//   - subarray: the enumerator (eager, lazy iterator and errgroup-parallel forms)
//     plus the InvalidInput error kind
//   - render: single-line text, json and yaml renderers behind a format registry,
//     and an atomic file writer
//   - internal/config: optional YAML configuration and its merge rules
//   - internal/logging: the zap logger used by the command
//   - cmd/subarrays: the command-line entry point
//
// Running the command with no arguments prints the subarrays of 1, 2, 3:
//
//	[[1], [1, 2], [1, 2, 3], [2], [2, 3], [3]]
//
// Import
//
//	"github.com/sghaida/subarrays/subarray"
package subarrays
