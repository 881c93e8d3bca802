// Package filter implements the overlap filter: it drops paths (or
// effectively all of a path's ink) that would be invisible because a wider
// pen already inked over their footprint.
//
// Algorithm (spec-level):
//  1. Order paths by descending draw length; ties broken by ascending
//     original index. Longer strokes lay down ink first.
//  2. Maintain an accumulating ink set, backed by a uniform spatial grid
//     (inkGrid) whose cell size is ≈ the pen width, adapted from the
//     teacher's gridgraph cell-bucketing idea.
//  3. Sample each candidate at a step of min(pen_width/4, 0.5mm) along its
//     polyline; count the fraction of samples within pen_width/2 of an
//     already-accepted segment. If that fraction is at least
//     1 - visibility_threshold/100, the candidate is redundant.
//  4. Emit kept/removed index sets in the original input order.
package filter
