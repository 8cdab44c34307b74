// Package output renders collected diffs as human-readable text or as a
// structured JSON document with diffs split into hunk blocks.
//
// Both formats sort entries lexicographically by path, so output is
// deterministic regardless of collection order.
package output
