package pair

import (
	"math"

	"github.com/san-kum/pairsim/internal/restart"
)

// Real-space Ewald constants: 2/sqrt(pi) and the Abramowitz-Stegun erfc fit.
const (
	ewaldF  = 1.12837917
	ewaldP  = 0.3275911
	ewaldA1 = 0.254829592
	ewaldA2 = -0.284496736
	ewaldA3 = 1.421413741
	ewaldA4 = -1.453152027
	ewaldA5 = 1.061405429
)

// CharmmCoulLong is lj/charmm/coul/long: switched LJ plus the real-space
// part of an Ewald sum. The splitting parameter comes from the long-range
// solver, either through Settings or SetEwald.
type CharmmCoulLong struct {
	charmm
	cutCoul float64
	gEwald  float64
}

func NewCharmmCoulLong(ntypes int) *CharmmCoulLong {
	s := &CharmmCoulLong{}
	s.base = base[charmmParams, *charmmParams]{name: "lj/charmm/coul/long", ntypes: ntypes}
	return s
}

// Settings: lj_inner lj_outer [coul_cut] [gewald g].
func (s *CharmmCoulLong) Settings(args []string) error {
	if n := len(args); n >= 2 && args[n-2] == "gewald" {
		g, err := numeric(s.name, "pair_style", args[n-1])
		if err != nil {
			return err
		}
		if err := s.SetEwald(g); err != nil {
			return err
		}
		args = args[:n-2]
	}
	if len(args) != 2 && len(args) != 3 {
		return s.fail("pair_style", "illegal pair_style command")
	}
	v, err := numerics(s.name, "pair_style", args)
	if err != nil {
		return err
	}
	s.cutLJInner, s.cutLJ = v[0], v[1]
	s.cutCoul = v[1]
	if len(v) == 3 {
		s.cutCoul = v[2]
	}
	return nil
}

// SetEwald sets the Ewald splitting parameter g.
func (s *CharmmCoulLong) SetEwald(g float64) error {
	if g <= 0 {
		return s.fail("pair_style", "ewald parameter must be positive, got %g", g)
	}
	s.gEwald = g
	return nil
}

func (s *CharmmCoulLong) init(initEnv) (binding, error) {
	lj, err := NewSwitch(s.cutLJInner, s.cutLJ)
	if err != nil {
		return binding{}, s.fail("init", "pair inner cutoff >= pair outer cutoff")
	}
	if s.gEwald == 0 {
		return binding{}, s.fail("init", "pair style requires a long-range solver (gewald unset)")
	}
	if err := s.deriveAll(); err != nil {
		return binding{}, err
	}
	k := charmmLongKernel{
		t:         s.tab,
		lj:        lj,
		g:         s.gEwald,
		cutCoulsq: s.cutCoul * s.cutCoul,
	}
	k.cutBothsq = max(lj.OuterSq, k.cutCoulsq)
	return bind(k), nil
}

func (s *CharmmCoulLong) cutoff(int, int) float64 { return max(s.cutLJ, s.cutCoul) }

func (s *CharmmCoulLong) writeSettings(w *restart.Writer) {
	w.Float64(s.cutLJInner)
	w.Float64(s.cutLJ)
	w.Float64(s.cutCoul)
}

func (s *CharmmCoulLong) readSettings(r *restart.Reader) {
	s.cutLJInner = r.Float64()
	s.cutLJ = r.Float64()
	s.cutCoul = r.Float64()
}

type charmmLongKernel struct {
	t                    *Table[charmmParams]
	lj                   Switch
	g                    float64
	cutCoulsq, cutBothsq float64
}

func (k charmmLongKernel) cutsq(int, int) float64 { return k.cutBothsq }

// coul returns the real-space force (times r) and energy. Excluded pairs
// subtract the fraction of the full Coulomb term the long-range solver
// already counted.
func (k charmmLongKernel) coul(rsq, qq, fc float64) (forcecoul, ecoul float64) {
	r := math.Sqrt(rsq)
	grij := k.g * r
	expm2 := math.Exp(-grij * grij)
	t := 1 / (1 + ewaldP*grij)
	erfc := t * (ewaldA1 + t*(ewaldA2+t*(ewaldA3+t*(ewaldA4+t*ewaldA5)))) * expm2
	prefactor := qq / r
	forcecoul = prefactor * (erfc + ewaldF*grij*expm2)
	ecoul = prefactor * erfc
	if fc < 1 {
		forcecoul -= (1 - fc) * prefactor
		ecoul -= (1 - fc) * prefactor
	}
	return forcecoul, ecoul
}

func (k charmmLongKernel) force(itype, jtype int, rsq, qq, fc, flj float64) float64 {
	r2inv := 1 / rsq
	var forcecoul, forcelj float64
	if rsq < k.cutCoulsq {
		forcecoul, _ = k.coul(rsq, qq, fc)
	}
	if rsq < k.lj.OuterSq {
		forcelj, _ = switchedLJ(k.t.at(itype, jtype), k.lj, rsq, r2inv)
	}
	return (forcecoul + flj*forcelj) * r2inv
}

func (k charmmLongKernel) energy(itype, jtype int, rsq, qq, fc, flj float64) (evdwl, ecoul float64) {
	if rsq < k.cutCoulsq {
		_, ecoul = k.coul(rsq, qq, fc)
	}
	if rsq < k.lj.OuterSq {
		_, philj := switchedLJ(k.t.at(itype, jtype), k.lj, rsq, 1/rsq)
		evdwl = flj * philj
	}
	return evdwl, ecoul
}
