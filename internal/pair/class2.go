package pair

import (
	"math"

	"github.com/san-kum/pairsim/internal/restart"
)

type class2Params struct {
	Epsilon, Sigma float64
	CutLJ, CutCoul float64

	lj1, lj2, lj3, lj4 float64
	offset             float64
	cutLJsq, cutCoulsq float64
	cutsq              float64
}

func (p *class2Params) raw() []float64 {
	return []float64{p.Epsilon, p.Sigma, p.CutLJ, p.CutCoul}
}

func (p *class2Params) setRaw(v []float64) {
	p.Epsilon, p.Sigma, p.CutLJ, p.CutCoul = v[0], v[1], v[2], v[3]
}

// Class2CoulCut is lj/class2/coul/cut: a 9-6 Lennard-Jones plus cut
// Coulomb. Epsilon and sigma always mix by the sixth-power rule; cutoffs
// mix by the selected rule.
type Class2CoulCut struct {
	base[class2Params, *class2Params]
	cutLJGlobal, cutCoulGlobal float64
}

func NewClass2CoulCut(ntypes int) *Class2CoulCut {
	return &Class2CoulCut{base: base[class2Params, *class2Params]{name: "lj/class2/coul/cut", ntypes: ntypes}}
}

func (s *Class2CoulCut) Coulomb() bool { return true }

// Settings: cut_lj [cut_coul].
func (s *Class2CoulCut) Settings(args []string) error {
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
	s.eachOffDiagonal(func(p *class2Params) {
		p.CutLJ, p.CutCoul = s.cutLJGlobal, s.cutCoulGlobal
	})
	return nil
}

// Coeff: i j epsilon sigma [cut_lj [cut_coul]].
func (s *Class2CoulCut) Coeff(args []string) error {
	if !argc(args, 4, 6) {
		return s.fail("pair_coeff", "incorrect args for pair coefficients")
	}
	v, err := numerics(s.name, "pair_coeff", args[2:])
	if err != nil {
		return err
	}
	p := class2Params{Epsilon: v[0], Sigma: v[1], CutLJ: s.cutLJGlobal, CutCoul: s.cutCoulGlobal}
	if len(v) >= 3 {
		p.CutLJ, p.CutCoul = v[2], v[2]
	}
	if len(v) == 4 {
		p.CutCoul = v[3]
	}
	return s.assign(args[0], args[1], p)
}

func (s *Class2CoulCut) init(env initEnv) (binding, error) {
	mix := func(ii, jj *class2Params) class2Params {
		return class2Params{
			Epsilon: MixEnergy(MixSixthPower, ii.Epsilon, jj.Epsilon, ii.Sigma, jj.Sigma),
			Sigma:   MixDistance(MixSixthPower, ii.Sigma, jj.Sigma),
			CutLJ:   MixDistance(env.mix, ii.CutLJ, jj.CutLJ),
			CutCoul: MixDistance(env.mix, ii.CutCoul, jj.CutCoul),
		}
	}
	err := s.derive(mix, func(p *class2Params) error {
		s9 := math.Pow(p.Sigma, 9)
		s6 := math.Pow(p.Sigma, 6)
		p.lj1 = 18 * p.Epsilon * s9
		p.lj2 = 18 * p.Epsilon * s6
		p.lj3 = 2 * p.Epsilon * s9
		p.lj4 = 3 * p.Epsilon * s6
		p.offset = 0
		if env.offset && p.CutLJ > 0 {
			ratio := p.Sigma / p.CutLJ
			p.offset = p.Epsilon * (2*math.Pow(ratio, 9) - 3*math.Pow(ratio, 6))
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
	return bind(class2Kernel{s.tab}), nil
}

func (s *Class2CoulCut) cutoff(i, j int) float64 {
	p := s.tab.at(i, j)
	return max(p.CutLJ, p.CutCoul)
}

func (s *Class2CoulCut) writeSettings(w *restart.Writer) {
	w.Float64(s.cutLJGlobal)
	w.Float64(s.cutCoulGlobal)
}

func (s *Class2CoulCut) readSettings(r *restart.Reader) {
	s.cutLJGlobal = r.Float64()
	s.cutCoulGlobal = r.Float64()
}

type class2Kernel struct{ t *Table[class2Params] }

func (k class2Kernel) cutsq(itype, jtype int) float64 {
	return k.t.at(itype, jtype).cutsq
}

func (k class2Kernel) force(itype, jtype int, rsq, qq, fc, flj float64) float64 {
	p := k.t.at(itype, jtype)
	r2inv := 1 / rsq
	rinv := math.Sqrt(r2inv)
	var forcecoul, forcelj float64
	if rsq < p.cutCoulsq {
		forcecoul = qq * rinv
	}
	if rsq < p.cutLJsq {
		r3inv := r2inv * rinv
		r6inv := r3inv * r3inv
		forcelj = r6inv * (p.lj1*r3inv - p.lj2)
	}
	return (fc*forcecoul + flj*forcelj) * r2inv
}

func (k class2Kernel) energy(itype, jtype int, rsq, qq, fc, flj float64) (evdwl, ecoul float64) {
	p := k.t.at(itype, jtype)
	r2inv := 1 / rsq
	rinv := math.Sqrt(r2inv)
	if rsq < p.cutCoulsq {
		ecoul = fc * qq * rinv
	}
	if rsq < p.cutLJsq {
		r3inv := r2inv * rinv
		r6inv := r3inv * r3inv
		evdwl = flj * (r6inv*(p.lj3*r3inv-p.lj4) - p.offset)
	}
	return evdwl, ecoul
}
