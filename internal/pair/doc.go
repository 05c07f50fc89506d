// Package pair evaluates short-range pairwise interactions: forces,
// potential energy and virial for Lennard-Jones, Buckingham and Coulomb
// models, with and without CHARMM switching.
//
// The package is organised around a single [Engine] shared by every
// interaction model ([Style]):
//
//   - [Table]: per type-pair parameters, symmetric, lazily allocated
//   - [Variant]: the eight energy/virial/Newton code paths, chosen once per call
//   - [Partial] and [Tally]: per-worker and merged energy/virial sums
//   - restart: parameter checkpoints, root reads and broadcasts
//
// # Example
//
//	eng, _ := pair.New("lj/cut/coul/cut", 2, pair.WithThreads(4))
//	_ = eng.Settings([]string{"2.5"})
//	_ = eng.Coeff([]string{"*", "*", "1.0", "1.0"})
//	_ = eng.Init(atoms)
//	_ = eng.Compute(atoms, list, true, true)
//	tally := eng.Tally()
//
// # Thread Safety
//
// Configuration (Settings, Coeff, Modify, Init, ReadRestart) must not run
// concurrently with Compute. Compute itself forks its own workers; each
// writes only to a private force buffer that is summed into atoms.F after
// the workers join.
package pair
