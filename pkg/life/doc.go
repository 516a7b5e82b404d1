// Package life implements a bit-packed engine for two-state
// outer-totalistic cellular automata on a bounded grid with a dead
// border.
//
// Cells are packed 62 to a 64-bit word, with the word's outer bits
// holding copies of the horizontally adjacent cells. Neighbor counts for
// all 62 cells of a word are computed simultaneously by a small network
// of bitwise half and full adders, and the rule is applied to the
// resulting count digits with a handful of boolean operations.
//
// Grids step in place using two rotating scratch columns, optionally
// fanning row chunks out over a bounded worker pool for tall grids.
package life
