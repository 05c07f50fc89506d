package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/pairsim/internal/system"
)

// spring ties every local atom to its starting site.
type spring struct {
	k      float64
	anchor []float64
	calls  int
}

func (sp *spring) Forces(s *system.System, needEnergy, needVirial bool) error {
	sp.calls++
	for i := 0; i < 3*s.NLocal; i++ {
		s.F[i] = -sp.k * (s.X[i] - sp.anchor[i])
	}
	return nil
}

func (sp *spring) energy(s *system.System) float64 {
	ke, _ := s.Kinetic()
	pe := 0.0
	for i := 0; i < 3*s.NLocal; i++ {
		d := s.X[i] - sp.anchor[i]
		pe += 0.5 * sp.k * d * d
	}
	return ke + pe
}

func oscillator(tb testing.TB) (*system.System, *spring) {
	tb.Helper()
	s, err := system.NewLattice(system.LatticeConfig{
		Cells:   [3]int{2, 2, 2},
		Spacing: 4,
		NTypes:  1,
		Masses:  []float64{2},
		Seed:    3,
	})
	if err != nil {
		tb.Fatalf("lattice: %v", err)
	}
	sp := &spring{k: 0.5, anchor: append([]float64(nil), s.X...)}
	for i := range s.V {
		s.V[i] = 0.1 * float64(i%3-1)
	}
	if err := sp.Forces(s, false, false); err != nil {
		tb.Fatal(err)
	}
	return s, sp
}

func TestVerletEnergyConservation(t *testing.T) {
	s, sp := oscillator(t)
	integ := NewVerlet()
	e0 := sp.energy(s)

	for i := 0; i < 2000; i++ {
		if err := integ.Step(s, sp, 0.01, false, false); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	drift := math.Abs(sp.energy(s)-e0) / e0
	if drift > 1e-4 {
		t.Errorf("energy drift too large: %.2e", drift)
	}
	if sp.calls != 2001 {
		t.Errorf("expected one force call per step, got %d", sp.calls-1)
	}
}

func TestVerletMatchesAnalytic(t *testing.T) {
	s, sp := oscillator(t)
	x0 := append([]float64(nil), s.X...)
	v0 := append([]float64(nil), s.V...)
	omega := math.Sqrt(sp.k / 2)
	dt, steps := 0.01, 500

	integ := NewVerlet()
	for i := 0; i < steps; i++ {
		if err := integ.Step(s, sp, dt, false, false); err != nil {
			t.Fatal(err)
		}
	}

	tt := float64(steps) * dt
	for i := range s.V {
		want := x0[i] + v0[i]/omega*math.Sin(omega*tt)
		if math.Abs(s.X[i]-want) > 1e-4 {
			t.Fatalf("x[%d] = %.6f, expected %.6f", i, s.X[i], want)
		}
	}
}

func TestVerletTimeReversible(t *testing.T) {
	s, sp := oscillator(t)
	x0 := append([]float64(nil), s.X...)
	integ := NewVerlet()

	for i := 0; i < 300; i++ {
		if err := integ.Step(s, sp, 0.02, false, false); err != nil {
			t.Fatal(err)
		}
	}
	for i := range s.V {
		s.V[i] = -s.V[i]
	}
	for i := 0; i < 300; i++ {
		if err := integ.Step(s, sp, 0.02, false, false); err != nil {
			t.Fatal(err)
		}
	}

	for i := range x0 {
		if math.Abs(s.X[i]-x0[i]) > 1e-9 {
			t.Fatalf("x[%d] did not return: %.12f vs %.12f", i, s.X[i], x0[i])
		}
	}
}

func TestLeapfrogTracksVerletPositions(t *testing.T) {
	a, spa := oscillator(t)
	b, spb := oscillator(t)
	dt := 0.01

	// Shift the leapfrog velocities back half a step.
	for i := range b.V {
		b.V[i] -= 0.5 * dt * b.F[i] / b.Mass[1]
	}

	vv, lf := NewVerlet(), NewLeapfrog()
	for i := 0; i < 200; i++ {
		if err := vv.Step(a, spa, dt, false, false); err != nil {
			t.Fatal(err)
		}
		if err := lf.Step(b, spb, dt, false, false); err != nil {
			t.Fatal(err)
		}
	}

	for i := range a.X {
		if math.Abs(a.X[i]-b.X[i]) > 1e-10 {
			t.Fatalf("x[%d]: verlet %.12f, leapfrog %.12f", i, a.X[i], b.X[i])
		}
	}
}

func TestGet(t *testing.T) {
	for _, name := range Names() {
		integ, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q): %v", name, err)
			continue
		}
		if integ.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, integ.Name())
		}
	}
	if _, err := Get("rk4"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}
