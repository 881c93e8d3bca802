// Package engine wires the pipeline together: ingress validation, Filter,
// Greedy, Two-opt, in that order, each stage's progress pushed onto a
// shared Sink. No stage revisits an earlier one.
package engine
