package pair

import "gonum.org/v1/gonum/floats"

// Virial component order: xx, yy, zz, xy, xz, yz.
const nvirial = 6

// Partial is one worker's share of the energy and virial sums. Workers
// never share a Partial.
type Partial struct {
	EVdwl, ECoul float64
	Virial       [nvirial]float64
	EAtom        []float64
	VAtom        []float64 // nvirial per atom

	vflag bool
}

func (p *Partial) reset(nall int, vflag, eatom, vatom bool) {
	p.EVdwl, p.ECoul = 0, 0
	p.Virial = [nvirial]float64{}
	p.vflag = vflag
	p.EAtom = resize(p.EAtom, nall, eatom)
	p.VAtom = resize(p.VAtom, nvirial*nall, vatom)
}

func resize(s []float64, n int, keep bool) []float64 {
	if !keep {
		return nil
	}
	if cap(s) < n {
		return make([]float64, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}

// pairWeight is 1 for a pair tallied wholly here and one half when j
// belongs to another process, which tallies the other half.
func pairWeight(own bool) float64 {
	if own {
		return 1
	}
	return 0.5
}

// addEnergy tallies the energy of one pair. Only the energy loops call it.
func (p *Partial) addEnergy(i, j int, own bool, evdwl, ecoul float64) {
	w := pairWeight(own)
	p.EVdwl += w * evdwl
	p.ECoul += w * ecoul
	if p.EAtom != nil {
		e := 0.5 * (evdwl + ecoul)
		p.EAtom[i] += e
		if own {
			p.EAtom[j] += e
		}
	}
}

// addVirial tallies the virial of one pair into the global sum, unless
// it comes from f-dot-r, and into the per-atom array when kept.
func (p *Partial) addVirial(i, j int, own bool, fpair, dx, dy, dz float64) {
	if !p.vflag && p.VAtom == nil {
		return
	}
	v := [nvirial]float64{
		dx * dx * fpair,
		dy * dy * fpair,
		dz * dz * fpair,
		dx * dy * fpair,
		dx * dz * fpair,
		dy * dz * fpair,
	}
	if p.vflag {
		w := pairWeight(own)
		for k := range v {
			p.Virial[k] += w * v[k]
		}
	}
	if p.VAtom != nil {
		vi := p.VAtom[nvirial*i : nvirial*i+nvirial]
		for k := range v {
			vi[k] += 0.5 * v[k]
		}
		if own {
			vj := p.VAtom[nvirial*j : nvirial*j+nvirial]
			for k := range v {
				vj[k] += 0.5 * v[k]
			}
		}
	}
}

// Tally is the merged result of one Compute call on this process.
type Tally struct {
	EVdwl, ECoul float64
	Virial       [nvirial]float64
	EAtom        []float64
	VAtom        []float64
}

func (t Tally) Energy() float64 { return t.EVdwl + t.ECoul }

// Merge replaces t with the sum of parts, taken in worker order.
func (t *Tally) Merge(parts []Partial) {
	*t = Tally{}
	for k := range parts {
		p := &parts[k]
		t.EVdwl += p.EVdwl
		t.ECoul += p.ECoul
		floats.Add(t.Virial[:], p.Virial[:])
		t.EAtom = accumulate(t.EAtom, p.EAtom)
		t.VAtom = accumulate(t.VAtom, p.VAtom)
	}
}

func accumulate(dst, src []float64) []float64 {
	if src == nil {
		return dst
	}
	if dst == nil {
		return append([]float64(nil), src...)
	}
	floats.Add(dst, src)
	return dst
}
