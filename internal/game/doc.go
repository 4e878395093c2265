// Package game resolves a Shut the Box frame into a board and its legal moves.
//
// Resolve is the single entry point: it parses a frame's detections, folds
// the box facts into one status per box number (last fact wins), keeps the
// first two dice, and enumerates every subset of open boxes that sums to the
// dice total.
//
// When no box is detected at all, a fresh board (boxes 1 through 9 open) is
// assumed.
package game
