package pair

import (
	"math"

	"github.com/san-kum/pairsim/internal/restart"
)

type ljCutParams struct {
	Epsilon, Sigma float64
	CutLJ, CutCoul float64

	lj1, lj2, lj3, lj4 float64
	offset             float64
	cutLJsq, cutCoulsq float64
	cutsq              float64
}

func (p *ljCutParams) raw() []float64 {
	return []float64{p.Epsilon, p.Sigma, p.CutLJ, p.CutCoul}
}

func (p *ljCutParams) setRaw(v []float64) {
	p.Epsilon, p.Sigma, p.CutLJ, p.CutCoul = v[0], v[1], v[2], v[3]
}

// LJCut is lj/cut/coul/cut: 12-6 Lennard-Jones plus cut Coulomb, each
// with its own per-pair cutoff. Unset pairs use the selected mix rule.
type LJCut struct {
	base[ljCutParams, *ljCutParams]
	cutLJGlobal, cutCoulGlobal float64
}

func NewLJCut(ntypes int) *LJCut {
	return &LJCut{base: base[ljCutParams, *ljCutParams]{name: "lj/cut/coul/cut", ntypes: ntypes}}
}

func (s *LJCut) Coulomb() bool { return true }

// Settings: cut_lj [cut_coul]. Explicitly set pairs take the new cutoffs.
func (s *LJCut) Settings(args []string) error {
	if !argc(args, 1, 2) {
		return s.fail("pair_style", "illegal pair_style command")
	}
	v, err := numerics(s.name, "pair_style", args)
	if err != nil {
		return err
	}
	s.cutLJGlobal = v[0]
	s.cutCoulGlobal = v[0]
	if len(v) == 2 {
		s.cutCoulGlobal = v[1]
	}
	s.eachOffDiagonal(func(p *ljCutParams) {
		p.CutLJ, p.CutCoul = s.cutLJGlobal, s.cutCoulGlobal
	})
	return nil
}

// Coeff: i j epsilon sigma [cut_lj [cut_coul]].
func (s *LJCut) Coeff(args []string) error {
	if !argc(args, 4, 6) {
		return s.fail("pair_coeff", "incorrect args for pair coefficients")
	}
	v, err := numerics(s.name, "pair_coeff", args[2:])
	if err != nil {
		return err
	}
	p := ljCutParams{Epsilon: v[0], Sigma: v[1], CutLJ: s.cutLJGlobal, CutCoul: s.cutCoulGlobal}
	if len(v) >= 3 {
		p.CutLJ, p.CutCoul = v[2], v[2]
	}
	if len(v) == 4 {
		p.CutCoul = v[3]
	}
	return s.assign(args[0], args[1], p)
}

func (s *LJCut) init(env initEnv) (binding, error) {
	mix := func(ii, jj *ljCutParams) ljCutParams {
		return ljCutParams{
			Epsilon: MixEnergy(env.mix, ii.Epsilon, jj.Epsilon, ii.Sigma, jj.Sigma),
			Sigma:   MixDistance(env.mix, ii.Sigma, jj.Sigma),
			CutLJ:   MixDistance(env.mix, ii.CutLJ, jj.CutLJ),
			CutCoul: MixDistance(env.mix, ii.CutCoul, jj.CutCoul),
		}
	}
	err := s.derive(mix, func(p *ljCutParams) error {
		p.lj1, p.lj2, p.lj3, p.lj4 = lj126(p.Epsilon, p.Sigma)
		p.offset = 0
		if env.offset && p.CutLJ > 0 {
			r6 := math.Pow(p.Sigma/p.CutLJ, 6)
			p.offset = 4 * p.Epsilon * (r6*r6 - r6)
		}
		p.cutLJsq = p.CutLJ * p.CutLJ
		p.cutCoulsq = p.CutCoul * p.CutCoul
		cut := max(p.CutLJ, p.CutCoul)
		p.cutsq = cut * cut
		return nil
	})
	if err != nil {
		return binding{}, err
	}
	return bind(ljCutKernel{s.tab}), nil
}

func (s *LJCut) cutoff(i, j int) float64 {
	p := s.tab.at(i, j)
	return max(p.CutLJ, p.CutCoul)
}

func (s *LJCut) writeSettings(w *restart.Writer) {
	w.Float64(s.cutLJGlobal)
	w.Float64(s.cutCoulGlobal)
}

func (s *LJCut) readSettings(r *restart.Reader) {
	s.cutLJGlobal = r.Float64()
	s.cutCoulGlobal = r.Float64()
}

type ljCutKernel struct{ t *Table[ljCutParams] }

func (k ljCutKernel) cutsq(itype, jtype int) float64 {
	return k.t.at(itype, jtype).cutsq
}

func (k ljCutKernel) force(itype, jtype int, rsq, qq, fc, flj float64) float64 {
	p := k.t.at(itype, jtype)
	r2inv := 1 / rsq
	var forcecoul, forcelj float64
	if rsq < p.cutCoulsq {
		forcecoul = qq * math.Sqrt(r2inv)
	}
	if rsq < p.cutLJsq {
		r6inv := r2inv * r2inv * r2inv
		forcelj = r6inv * (p.lj1*r6inv - p.lj2)
	}
	return (fc*forcecoul + flj*forcelj) * r2inv
}

func (k ljCutKernel) energy(itype, jtype int, rsq, qq, fc, flj float64) (evdwl, ecoul float64) {
	p := k.t.at(itype, jtype)
	r2inv := 1 / rsq
	if rsq < p.cutCoulsq {
		ecoul = fc * qq * math.Sqrt(r2inv)
	}
	if rsq < p.cutLJsq {
		r6inv := r2inv * r2inv * r2inv
		evdwl = flj * (r6inv*(p.lj3*r6inv-p.lj4) - p.offset)
	}
	return evdwl, ecoul
}

// lj126 returns the 12-6 force and energy prefactors.
func lj126(eps, sigma float64) (lj1, lj2, lj3, lj4 float64) {
	s12 := math.Pow(sigma, 12)
	s6 := math.Pow(sigma, 6)
	return 48 * eps * s12, 24 * eps * s6, 4 * eps * s12, 4 * eps * s6
}
