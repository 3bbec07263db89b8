// Package render serializes a subarray collection to a single line of text.
//
// Formats are looked up by name in a Registry. The built-in formats are:
//
//	text  [[1], [1, 2], [1, 2, 3], [2], [2, 3], [3]]
//	json  [[1],[1,2],[1,2,3],[2],[2,3],[3]]
//	yaml  [[1], [1, 2], [1, 2, 3], [2], [2, 3], [3]]   (YAML flow sequence)
//
// Every renderer writes exactly one line terminated by '\n'. An empty
// collection renders as [] in every format.
package render
