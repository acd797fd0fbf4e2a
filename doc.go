// Package reebtide reconstructs the topological evolution of islands —
// connected regions carved out of a time-indexed sequence of weighted
// planar graphs by thresholding edge weight — and emits a Reeb graph
// recording their merges, splits, and deaths. Births (islands with no
// predecessor in the previous layer) are not recorded.
//
// Under the hood, everything is organized into small, single-purpose
// packages:
//
//	geom/    — points, segments, lines: the shared coordinate primitives
//	disk/    — Welzl's smallest-enclosing-disk algorithm
//	polygon/ — simple-polygon containment, centroid, and disk-centroid
//	dcel/    — half-edge planar subdivision construction and face enumeration
//	island/  — one time-slice's integer-coordinate adjacency graph
//	reeb/    — the layered BFS tracker and its ReebGraph output
//	ingest/  — the text-format parser and directory enumerator (collaborator)
//	render/  — SVG and IPE output (collaborator)
//	cmd/reebtide/ — the command-line entry point (collaborator)
//
// See DESIGN.md for how each package's algorithms and dependencies trace
// back to this module's reference material.
package reebtide
