// Package ingest is the parser collaborator: it turns the on-disk network
// text format into a weighted graph the core can consume, and enumerates a
// directory of time-slice files. Directory reads the filesystem; the
// slice files themselves are opened by the caller (the CLI's file source)
// and handed to ParseNetwork as readers. The core itself never does I/O.
//
// What:
//
//   - ParseNetwork: reads the "<n> vertices, <m> edges" text format (see
//     Format below), drops any edge whose weight is NaN or below
//     delta, and expands each accepted edge's optional polyline path into
//     one graph edge per consecutive coordinate pair.
//   - Network.ToIsland: converts the parsed, already-filtered edge list
//     into an island.Graph, ready for face enumeration.
//   - Directory: lists a directory's *.txt files in lexicographic order —
//     the time-slice sequence order the Reeb tracker expects.
//
// Format:
//
//	<n>                                  vertex count
//	<i> <x_i> <y_i>        x n           integer vertex coordinates
//	<m>                                  edge count
//	<i> <u> <v> <weight> [<path…>]  x m  edge, optionally via a polyline
//
// Weights are ASCII decimal or the literal "nan" (accepted case-
// insensitively, matching strconv.ParseFloat). u and v are vertex indices
// into the preceding vertex block; path coordinates, when present, are raw
// integer coordinates (not vertex indices) describing an intermediate
// polyline from u to v.
package ingest
