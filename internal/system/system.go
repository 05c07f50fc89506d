package system

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

var ErrCutoff = errors.New("system: cutoff too large for box")

// System is a periodic orthogonal box [0, Box) with local atoms followed
// by ghost images.
type System struct {
	Box    [3]float64
	NLocal int
	NGhost int

	X    []float64 // 3 per atom, ghosts included
	V    []float64 // 3 per local atom
	F    []float64 // 3 per atom, ghosts included
	Q    []float64 // nil when uncharged
	Type []int
	Mass []float64 // per type, index 0 unused

	// Owner[k] is the local atom ghost NLocal+k is an image of.
	Owner []int
}

// LatticeConfig describes a simple cubic lattice.
type LatticeConfig struct {
	Cells       [3]int
	Spacing     float64
	NTypes      int
	Charges     []float64 // per type; nil for an uncharged system
	Masses      []float64 // per type; nil means unit mass
	Jitter      float64   // uniform displacement, fraction of Spacing
	Temperature float64   // initial kinetic temperature
	Seed        int64
}

// NewLattice places one atom per cell, cycling types 1..NTypes so that
// neighbors along each axis differ in type.
func NewLattice(cfg LatticeConfig) (*System, error) {
	if cfg.NTypes < 1 {
		return nil, fmt.Errorf("system: need at least one type")
	}
	if cfg.Spacing <= 0 {
		return nil, fmt.Errorf("system: spacing must be positive, got %g", cfg.Spacing)
	}
	if cfg.Charges != nil && len(cfg.Charges) != cfg.NTypes {
		return nil, fmt.Errorf("system: %d charges for %d types", len(cfg.Charges), cfg.NTypes)
	}
	if cfg.Masses != nil && len(cfg.Masses) != cfg.NTypes {
		return nil, fmt.Errorf("system: %d masses for %d types", len(cfg.Masses), cfg.NTypes)
	}
	n := cfg.Cells[0] * cfg.Cells[1] * cfg.Cells[2]
	if n <= 0 {
		return nil, fmt.Errorf("system: empty lattice %v", cfg.Cells)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	s := &System{
		NLocal: n,
		X:      make([]float64, 3*n),
		V:      make([]float64, 3*n),
		F:      make([]float64, 3*n),
		Type:   make([]int, n),
		Mass:   make([]float64, cfg.NTypes+1),
	}
	for d := 0; d < 3; d++ {
		s.Box[d] = float64(cfg.Cells[d]) * cfg.Spacing
	}
	for t := 1; t <= cfg.NTypes; t++ {
		s.Mass[t] = 1
		if cfg.Masses != nil {
			s.Mass[t] = cfg.Masses[t-1]
		}
	}
	if cfg.Charges != nil {
		s.Q = make([]float64, n)
	}

	i := 0
	for cz := 0; cz < cfg.Cells[2]; cz++ {
		for cy := 0; cy < cfg.Cells[1]; cy++ {
			for cx := 0; cx < cfg.Cells[0]; cx++ {
				c := [3]int{cx, cy, cz}
				for d := 0; d < 3; d++ {
					jit := (rng.Float64() - 0.5) * cfg.Jitter * cfg.Spacing
					s.X[3*i+d] = (float64(c[d])+0.5)*cfg.Spacing + jit
				}
				s.Type[i] = 1 + (cx+cy+cz)%cfg.NTypes
				if s.Q != nil {
					s.Q[i] = cfg.Charges[s.Type[i]-1]
				}
				i++
			}
		}
	}

	if cfg.Temperature > 0 {
		s.thermalize(rng, cfg.Temperature)
	}
	return s, nil
}

// thermalize draws Gaussian velocities, removes the net momentum and
// rescales to the target temperature.
func (s *System) thermalize(rng *rand.Rand, temp float64) {
	for i := 0; i < s.NLocal; i++ {
		sd := math.Sqrt(temp / s.Mass[s.Type[i]])
		for d := 0; d < 3; d++ {
			s.V[3*i+d] = rng.NormFloat64() * sd
		}
	}
	var p [3]float64
	var mtot float64
	for i := 0; i < s.NLocal; i++ {
		m := s.Mass[s.Type[i]]
		mtot += m
		for d := 0; d < 3; d++ {
			p[d] += m * s.V[3*i+d]
		}
	}
	for i := 0; i < s.NLocal; i++ {
		for d := 0; d < 3; d++ {
			s.V[3*i+d] -= p[d] / mtot
		}
	}
	if t := s.Temperature(); t > 0 {
		floats.Scale(math.Sqrt(temp/t), s.V)
	}
}

func (s *System) NAll() int { return s.NLocal + s.NGhost }

func (s *System) Volume() float64 { return s.Box[0] * s.Box[1] * s.Box[2] }

// Wrap maps local atoms back into the box.
func (s *System) Wrap() {
	for i := 0; i < s.NLocal; i++ {
		for d := 0; d < 3; d++ {
			x := s.X[3*i+d]
			l := s.Box[d]
			x -= l * math.Floor(x/l)
			if x >= l {
				x = 0
			}
			s.X[3*i+d] = x
		}
	}
}

// BuildGhosts replaces the ghost atoms with every periodic image of a
// local atom lying within cutoff of the box. The cutoff must stay below
// half of every box length so that an atom never meets two images of
// the same partner.
func (s *System) BuildGhosts(cutoff float64) error {
	for d := 0; d < 3; d++ {
		if 2*cutoff >= s.Box[d] {
			return fmt.Errorf("%w: cutoff %g, box %v", ErrCutoff, cutoff, s.Box)
		}
	}
	n := s.NLocal
	s.X = s.X[:3*n]
	s.Type = s.Type[:n]
	if s.Q != nil {
		s.Q = s.Q[:n]
	}
	s.Owner = s.Owner[:0]

	for i := 0; i < n; i++ {
		for sz := -1; sz <= 1; sz++ {
			for sy := -1; sy <= 1; sy++ {
				for sx := -1; sx <= 1; sx++ {
					if sx == 0 && sy == 0 && sz == 0 {
						continue
					}
					shift := [3]int{sx, sy, sz}
					var img [3]float64
					inside := true
					for d := 0; d < 3; d++ {
						img[d] = s.X[3*i+d] + float64(shift[d])*s.Box[d]
						if img[d] < -cutoff || img[d] >= s.Box[d]+cutoff {
							inside = false
							break
						}
					}
					if !inside {
						continue
					}
					s.X = append(s.X, img[0], img[1], img[2])
					s.Type = append(s.Type, s.Type[i])
					if s.Q != nil {
						s.Q = append(s.Q, s.Q[i])
					}
					s.Owner = append(s.Owner, i)
				}
			}
		}
	}
	s.NGhost = len(s.Owner)
	if cap(s.F) < 3*s.NAll() {
		s.F = make([]float64, 3*s.NAll())
	}
	s.F = s.F[:3*s.NAll()]
	s.ZeroForces()
	return nil
}

func (s *System) ZeroForces() {
	for i := range s.F {
		s.F[i] = 0
	}
}

// FoldGhostForces adds each ghost's force onto its owner and clears the
// ghost, the single-process form of reverse communication.
func (s *System) FoldGhostForces() {
	for k, owner := range s.Owner {
		g := s.NLocal + k
		for d := 0; d < 3; d++ {
			s.F[3*owner+d] += s.F[3*g+d]
			s.F[3*g+d] = 0
		}
	}
}

// Kinetic returns the kinetic energy and its tensor (xx, yy, zz, xy, xz, yz).
func (s *System) Kinetic() (float64, [6]float64) {
	var t [6]float64
	for i := 0; i < s.NLocal; i++ {
		m := s.Mass[s.Type[i]]
		vx, vy, vz := s.V[3*i], s.V[3*i+1], s.V[3*i+2]
		t[0] += m * vx * vx
		t[1] += m * vy * vy
		t[2] += m * vz * vz
		t[3] += m * vx * vy
		t[4] += m * vx * vz
		t[5] += m * vy * vz
	}
	return 0.5 * (t[0] + t[1] + t[2]), t
}

// Temperature in energy units (kB = 1), with the momentum constraint
// removing three degrees of freedom.
func (s *System) Temperature() float64 {
	dof := 3*s.NLocal - 3
	if dof <= 0 {
		return 0
	}
	ke, _ := s.Kinetic()
	return 2 * ke / float64(dof)
}
