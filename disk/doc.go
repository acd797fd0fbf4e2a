// Package disk computes the smallest enclosing disk (1-centre) of a finite
// set of points using Welzl's recursive incremental algorithm with an
// explicit boundary set.
//
// What:
//
//   - Disk: a centre point and non-negative radius.
//   - SmallestEnclosingDisk(points, opts...): the unique minimum-radius
//     closed disk containing every point, or ok=false on an empty input.
//
// Algorithm:
//
//	min_disk(P, B) returns trivial(B) when P is empty or |B| = 3.
//	Otherwise pop p from P; recurse on (P, B). If the returned disk
//	contains p, keep it; else push p onto B and recurse on (P, B∪{p}).
//
// trivial(B):
//
//	|B|=0 -> none
//	|B|=1 -> disk of radius 0 centred at the single point
//	|B|=2 -> disk through both, diameter equal to their distance
//	|B|=3 -> circumscribed circle (perpendicular-bisector intersection);
//	         if the three points are collinear or two coincide, falls back
//	         to the three pairwise diameter disks and returns the first one
//	         that contains all of B.
//
// Numerics:
//
//   - Contains uses <= on squared distance vs squared radius, so boundary
//     points count as contained.
//
// Complexity:
//
//   - Expected O(n) with randomized input order (see WithRand); O(n) worst
//     case recursion depth without it.
package disk
