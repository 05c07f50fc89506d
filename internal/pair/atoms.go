package pair

import "fmt"

// Atoms is the per-atom storage the engine reads. Local atoms come first,
// ghosts follow. Positions and forces are flat xyz triples.
type Atoms struct {
	NLocal, NGhost int
	X              []float64
	Q              []float64 // nil when atoms carry no charge
	Type           []int
	F              []float64
}

func (a *Atoms) NAll() int { return a.NLocal + a.NGhost }

func (a *Atoms) validate(ntypes int) error {
	nall := a.NAll()
	switch {
	case a.NLocal < 0 || a.NGhost < 0:
		return fmt.Errorf("pair: negative atom counts %d/%d", a.NLocal, a.NGhost)
	case len(a.X) < 3*nall:
		return fmt.Errorf("pair: %d coordinates for %d atoms", len(a.X), nall)
	case len(a.F) < 3*nall:
		return fmt.Errorf("pair: %d force components for %d atoms", len(a.F), nall)
	case len(a.Type) < nall:
		return fmt.Errorf("pair: %d types for %d atoms", len(a.Type), nall)
	case a.Q != nil && len(a.Q) < nall:
		return fmt.Errorf("pair: %d charges for %d atoms", len(a.Q), nall)
	}
	for i, t := range a.Type[:nall] {
		if t < 1 || t > ntypes {
			return fmt.Errorf("%w: atom %d has type %d", ErrTypeRange, i, t)
		}
	}
	return nil
}
