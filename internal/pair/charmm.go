package pair

import (
	"math"

	"github.com/san-kum/pairsim/internal/restart"
)

type charmmParams struct {
	Epsilon, Sigma float64
	Eps14, Sigma14 float64

	lj1, lj2, lj3, lj4             float64
	lj14_1, lj14_2, lj14_3, lj14_4 float64
}

func (p *charmmParams) raw() []float64 {
	return []float64{p.Epsilon, p.Sigma, p.Eps14, p.Sigma14}
}

func (p *charmmParams) setRaw(v []float64) {
	p.Epsilon, p.Sigma, p.Eps14, p.Sigma14 = v[0], v[1], v[2], v[3]
}

// charmm holds what both CHARMM styles share: arithmetic mixing of the
// normal and 1-4 parameters and a switched LJ term.
type charmm struct {
	base[charmmParams, *charmmParams]
	cutLJInner, cutLJ float64
}

func (c *charmm) Coulomb() bool { return true }

// Coeff: i j epsilon sigma [eps14 sigma14].
func (c *charmm) Coeff(args []string) error {
	if len(args) != 4 && len(args) != 6 {
		return c.fail("pair_coeff", "incorrect args for pair coefficients")
	}
	v, err := numerics(c.name, "pair_coeff", args[2:])
	if err != nil {
		return err
	}
	p := charmmParams{Epsilon: v[0], Sigma: v[1], Eps14: v[0], Sigma14: v[1]}
	if len(v) == 4 {
		p.Eps14, p.Sigma14 = v[2], v[3]
	}
	return c.assign(args[0], args[1], p)
}

func (c *charmm) deriveAll() error {
	mix := func(ii, jj *charmmParams) charmmParams {
		return charmmParams{
			Epsilon: MixEnergy(MixArithmetic, ii.Epsilon, jj.Epsilon, ii.Sigma, jj.Sigma),
			Sigma:   MixDistance(MixArithmetic, ii.Sigma, jj.Sigma),
			Eps14:   MixEnergy(MixArithmetic, ii.Eps14, jj.Eps14, ii.Sigma14, jj.Sigma14),
			Sigma14: MixDistance(MixArithmetic, ii.Sigma14, jj.Sigma14),
		}
	}
	return c.derive(mix, func(p *charmmParams) error {
		p.lj1, p.lj2, p.lj3, p.lj4 = lj126(p.Epsilon, p.Sigma)
		p.lj14_1, p.lj14_2, p.lj14_3, p.lj14_4 = lj126(p.Eps14, p.Sigma14)
		return nil
	})
}

// Extract exposes lj14_1..lj14_4 for dihedral terms that apply 1-4
// interactions themselves.
func (c *charmm) Extract(name string) ([][]float64, bool) {
	var field func(p *charmmParams) float64
	switch name {
	case "lj14_1":
		field = func(p *charmmParams) float64 { return p.lj14_1 }
	case "lj14_2":
		field = func(p *charmmParams) float64 { return p.lj14_2 }
	case "lj14_3":
		field = func(p *charmmParams) float64 { return p.lj14_3 }
	case "lj14_4":
		field = func(p *charmmParams) float64 { return p.lj14_4 }
	default:
		return nil, false
	}
	return c.matrix(field), true
}

// switchedLJ returns r*F and the energy of the 12-6 term with the CHARMM
// switch applied beyond the inner cutoff.
func switchedLJ(p *charmmParams, sw Switch, rsq, r2inv float64) (forcelj, philj float64) {
	r6inv := r2inv * r2inv * r2inv
	forcelj = r6inv * (p.lj1*r6inv - p.lj2)
	philj = r6inv * (p.lj3*r6inv - p.lj4)
	if rsq > sw.InnerSq {
		s1 := sw.S1(rsq)
		forcelj = forcelj*s1 + philj*sw.S2(rsq)
		philj *= s1
	}
	return forcelj, philj
}

// CharmmCoulCharmm is lj/charmm/coul/charmm: switched LJ and switched
// Coulomb, each between its own inner and outer cutoff.
type CharmmCoulCharmm struct {
	charmm
	cutCoulInner, cutCoul float64
}

func NewCharmmCoulCharmm(ntypes int) *CharmmCoulCharmm {
	s := &CharmmCoulCharmm{}
	s.base = base[charmmParams, *charmmParams]{name: "lj/charmm/coul/charmm", ntypes: ntypes}
	return s
}

// Settings: lj_inner lj_outer [coul_inner coul_outer].
func (s *CharmmCoulCharmm) Settings(args []string) error {
	if len(args) != 2 && len(args) != 4 {
		return s.fail("pair_style", "illegal pair_style command")
	}
	v, err := numerics(s.name, "pair_style", args)
	if err != nil {
		return err
	}
	s.cutLJInner, s.cutLJ = v[0], v[1]
	s.cutCoulInner, s.cutCoul = v[0], v[1]
	if len(v) == 4 {
		s.cutCoulInner, s.cutCoul = v[2], v[3]
	}
	return nil
}

func (s *CharmmCoulCharmm) init(initEnv) (binding, error) {
	lj, err := NewSwitch(s.cutLJInner, s.cutLJ)
	if err != nil {
		return binding{}, s.fail("init", "pair inner cutoff >= pair outer cutoff")
	}
	coul, err := NewSwitch(s.cutCoulInner, s.cutCoul)
	if err != nil {
		return binding{}, s.fail("init", "pair inner cutoff >= pair outer cutoff")
	}
	if err := s.deriveAll(); err != nil {
		return binding{}, err
	}
	return bind(charmmKernel{t: s.tab, lj: lj, coul: coul, cutBothsq: max(lj.OuterSq, coul.OuterSq)}), nil
}

func (s *CharmmCoulCharmm) cutoff(int, int) float64 { return max(s.cutLJ, s.cutCoul) }

func (s *CharmmCoulCharmm) writeSettings(w *restart.Writer) {
	w.Float64(s.cutLJInner)
	w.Float64(s.cutLJ)
	w.Float64(s.cutCoulInner)
	w.Float64(s.cutCoul)
}

func (s *CharmmCoulCharmm) readSettings(r *restart.Reader) {
	s.cutLJInner = r.Float64()
	s.cutLJ = r.Float64()
	s.cutCoulInner = r.Float64()
	s.cutCoul = r.Float64()
}

type charmmKernel struct {
	t         *Table[charmmParams]
	lj, coul  Switch
	cutBothsq float64
}

func (k charmmKernel) cutsq(int, int) float64 { return k.cutBothsq }

func (k charmmKernel) force(itype, jtype int, rsq, qq, fc, flj float64) float64 {
	r2inv := 1 / rsq
	var forcecoul, forcelj float64
	if rsq < k.coul.OuterSq {
		forcecoul = qq * math.Sqrt(r2inv)
		if rsq > k.coul.InnerSq {
			forcecoul *= k.coul.S1(rsq) + k.coul.S2(rsq)
		}
	}
	if rsq < k.lj.OuterSq {
		forcelj, _ = switchedLJ(k.t.at(itype, jtype), k.lj, rsq, r2inv)
	}
	return (fc*forcecoul + flj*forcelj) * r2inv
}

func (k charmmKernel) energy(itype, jtype int, rsq, qq, fc, flj float64) (evdwl, ecoul float64) {
	r2inv := 1 / rsq
	if rsq < k.coul.OuterSq {
		ecoul = qq * math.Sqrt(r2inv)
		if rsq > k.coul.InnerSq {
			ecoul *= k.coul.S1(rsq)
		}
		ecoul *= fc
	}
	if rsq < k.lj.OuterSq {
		_, philj := switchedLJ(k.t.at(itype, jtype), k.lj, rsq, r2inv)
		evdwl = flj * philj
	}
	return evdwl, ecoul
}
