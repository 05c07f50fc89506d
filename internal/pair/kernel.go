package pair

import (
	"fmt"

	"github.com/san-kum/pairsim/internal/compute"
	"github.com/san-kum/pairsim/internal/neighbor"
)

// Variant is one of the eight force-loop specialisations over
// (energy or virial wanted, energy wanted, Newton's third law across
// process boundaries).
type Variant uint8

const (
	variantNewton Variant = 1 << iota
	variantEnergy
	variantEV
)

const numVariants = 8

func SelectVariant(needEnergy, needVirial, newton bool) Variant {
	var v Variant
	if newton {
		v |= variantNewton
	}
	if needEnergy {
		v |= variantEnergy
	}
	// energy alone still runs the tallying loop
	if needEnergy || needVirial {
		v |= variantEV
	}
	return v
}

func (v Variant) Newton() bool  { return v&variantNewton != 0 }
func (v Variant) Energy() bool  { return v&variantEnergy != 0 }
func (v Variant) Tallies() bool { return v&variantEV != 0 }

func (v Variant) String() string {
	b := func(on bool) int {
		if on {
			return 1
		}
		return 0
	}
	return fmt.Sprintf("eval<%d,%d,%d>", b(v.Tallies()), b(v.Energy()), b(v.Newton()))
}

// kernel is the per-pair physics of a style. force returns the scalar
// F(r)/r so that the force on i is d*fpair; energy returns the dispersion
// and electrostatic energies. qq is qqrd2e*qi*qj; fc and flj are the
// exclusion scales. loops returns the generated force loops, one per
// variant, each calling these methods on its concrete receiver.
type kernel interface {
	cutsq(itype, jtype int) float64
	force(itype, jtype int, rsq, qq, fc, flj float64) float64
	energy(itype, jtype int, rsq, qq, fc, flj float64) (evdwl, ecoul float64)
	loops() [numVariants]loopFunc
}

// region is the read-only input shared by every worker of one Compute.
// q is nil for styles without charges.
type region struct {
	x, q    []float64
	typ     []int
	nlocal  int
	list    *neighbor.List
	special neighbor.Factors
	qqrd2e  float64
}

//go:generate go run gen_loops.go

// loopFunc walks rows [s.Lo, s.Hi) of the neighbor list, accumulating
// forces into f, the worker's private buffer, and tallies into p.
type loopFunc func(r *region, s compute.Span, f []float64, p *Partial)

// binding is what a style hands the engine after Init.
type binding struct {
	loops  [numVariants]loopFunc
	single func(itype, jtype int, rsq, qq, fc, flj float64) (eng, fforce float64)
}

// bind takes the eight loops of one kernel. Energy-only variants share
// the energy+virial loop.
func bind[K kernel](k K) binding {
	b := binding{loops: k.loops()}
	b.single = func(itype, jtype int, rsq, qq, fc, flj float64) (float64, float64) {
		if rsq >= k.cutsq(itype, jtype) {
			return 0, 0
		}
		fforce := k.force(itype, jtype, rsq, qq, fc, flj)
		evdwl, ecoul := k.energy(itype, jtype, rsq, qq, fc, flj)
		return evdwl + ecoul, fforce
	}
	return b
}
