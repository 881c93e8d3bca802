// Package plotopt is a pen-plotter toolpath optimization engine: it takes
// a list of 2-D drawing paths and a configuration record and produces a
// re-ordered list with lower total pen-up travel — the distance the tool
// head moves with the pen lifted between the end of one path and the
// start of the next.
//
// The engine is a three-stage pipeline, each stage streaming progress
// onto a non-blocking event bus:
//
//	filter/  — drops paths already inked over by a wider pen (optional)
//	greedy/  — nearest-neighbor initial ordering, with direction flipping
//	twoopt/  — first-improvement 2-opt local search over the ordering
//
// path/ holds the types and config shared by every stage; progress/ is
// the event bus; engine/ wires the pipeline together behind a single
// Optimize call; cmd/plotopt is a small CLI driving it from job files.
//
//	go get github.com/katalvlaran/plotopt
package plotopt
