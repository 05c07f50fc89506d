package pair

import (
	"math"

	"github.com/san-kum/pairsim/internal/restart"
)

type buckParams struct {
	A, Rho, C float64
	Cut       float64

	rhoinv, buck1, buck2 float64
	offset               float64
	cutsq                float64
}

func (p *buckParams) raw() []float64 {
	return []float64{p.A, p.Rho, p.C, p.Cut}
}

func (p *buckParams) setRaw(v []float64) {
	p.A, p.Rho, p.C, p.Cut = v[0], v[1], v[2], v[3]
}

// Buck is the Buckingham exp-6 potential A exp(-r/rho) - C/r^6. It does
// not mix: every type pair must be set.
type Buck struct {
	base[buckParams, *buckParams]
	cutGlobal float64
}

func NewBuck(ntypes int) *Buck {
	return &Buck{base: base[buckParams, *buckParams]{name: "buck", ntypes: ntypes}}
}

func (s *Buck) Coulomb() bool { return false }

// Settings: cut.
func (s *Buck) Settings(args []string) error {
	if len(args) != 1 {
		return s.fail("pair_style", "illegal pair_style command")
	}
	cut, err := numeric(s.name, "pair_style", args[0])
	if err != nil {
		return err
	}
	s.cutGlobal = cut
	s.eachOffDiagonal(func(p *buckParams) { p.Cut = cut })
	return nil
}

// Coeff: i j A rho C [cut].
func (s *Buck) Coeff(args []string) error {
	if !argc(args, 5, 6) {
		return s.fail("pair_coeff", "incorrect args for pair coefficients")
	}
	v, err := numerics(s.name, "pair_coeff", args[2:])
	if err != nil {
		return err
	}
	if v[1] <= 0 {
		return s.fail("pair_coeff", "rho must be positive, got %g", v[1])
	}
	p := buckParams{A: v[0], Rho: v[1], C: v[2], Cut: s.cutGlobal}
	if len(v) == 4 {
		p.Cut = v[3]
	}
	return s.assign(args[0], args[1], p)
}

func (s *Buck) init(env initEnv) (binding, error) {
	err := s.derive(nil, func(p *buckParams) error {
		p.rhoinv = 1 / p.Rho
		p.buck1 = p.A / p.Rho
		p.buck2 = 6 * p.C
		p.offset = 0
		if env.offset && p.Cut > 0 {
			p.offset = p.A*math.Exp(-p.Cut/p.Rho) - p.C/math.Pow(p.Cut, 6)
		}
		p.cutsq = p.Cut * p.Cut
		return nil
	})
	if err != nil {
		return binding{}, err
	}
	return bind(buckKernel{s.tab}), nil
}

func (s *Buck) cutoff(i, j int) float64 { return s.tab.at(i, j).Cut }

func (s *Buck) writeSettings(w *restart.Writer) { w.Float64(s.cutGlobal) }

func (s *Buck) readSettings(r *restart.Reader) { s.cutGlobal = r.Float64() }

type buckKernel struct{ t *Table[buckParams] }

func (k buckKernel) cutsq(itype, jtype int) float64 {
	return k.t.at(itype, jtype).cutsq
}

func (k buckKernel) force(itype, jtype int, rsq, _, _, flj float64) float64 {
	p := k.t.at(itype, jtype)
	r2inv := 1 / rsq
	r6inv := r2inv * r2inv * r2inv
	r := math.Sqrt(rsq)
	rexp := math.Exp(-r * p.rhoinv)
	forcebuck := p.buck1*r*rexp - p.buck2*r6inv
	return flj * forcebuck * r2inv
}

func (k buckKernel) energy(itype, jtype int, rsq, _, _, flj float64) (evdwl, ecoul float64) {
	p := k.t.at(itype, jtype)
	r2inv := 1 / rsq
	r6inv := r2inv * r2inv * r2inv
	rexp := math.Exp(-math.Sqrt(rsq) * p.rhoinv)
	return flj * (p.A*rexp - p.C*r6inv - p.offset), 0
}
