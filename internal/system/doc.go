// Package system holds a periodic box of point particles for the pair
// engine to act on: a lattice generator, ghost images within a cutoff and
// the reverse step that folds ghost forces back onto their owners.
//
// A single process owns every local atom, so ghosts here stand in for the
// atoms a domain decomposition would receive from neighboring processes.
package system
