// Package greedy implements the nearest-neighbor path orderer: starting
// from the origin, repeatedly jump to the nearest endpoint of any unused
// path (flipping the path if its far end is closer), until every surviving
// path has been placed.
//
// This is the "future use" initializer the tsp package reserved
// (tsp/solve.go's commented-out nearestNeighbor stub) generalized from a
// closed vertex cycle to an open, oriented-path sequence.
package greedy
