// Command subarrays prints every contiguous, non-empty subarray of an integer sequence.
//
// With no arguments it enumerates the fixed sequence 1, 2, 3:
//
//	$ subarrays
//	[[1], [1, 2], [1, 2, 3], [2], [2, 3], [3]]
//
// Positional arguments replace the sequence. Negative values must follow --
// so they are not read as flags:
//
//	$ subarrays 4 5
//	[[4], [4, 5], [5]]
//	$ subarrays -- -1 0
//	[[-1], [-1, 0], [0]]
//
// Flags
//
//	-c, --config   YAML config file (values, format, workers, out, log.level)
//	-f, --format   text | json | yaml (default text)
//	-w, --workers  rows enumerated concurrently; <= 1 is sequential
//	-o, --out      write the result atomically to a file instead of stdout
//	-v, --verbose  debug logging on stderr
//
// Precedence is defaults, then the config file, then positional values, then
// flags that were set explicitly.
//
// Exit status is 0 on success, 2 for usage errors and invalid input, and 1 for
// anything else (unreadable config, failed write).
package main
