package integrators

import (
	"fmt"

	"github.com/san-kum/pairsim/internal/system"
)

// ForceField fills s.F with the forces on the local atoms at their
// current positions.
type ForceField interface {
	Forces(s *system.System, needEnergy, needVirial bool) error
}

// Integrator advances a system by one step. s.F must already hold the
// forces at the current positions; Step leaves it holding the forces at
// the new ones.
type Integrator interface {
	Name() string
	Step(s *system.System, ff ForceField, dt float64, needEnergy, needVirial bool) error
}

// Get returns an integrator by name.
func Get(name string) (Integrator, error) {
	switch name {
	case "verlet", "velocity-verlet":
		return NewVerlet(), nil
	case "leapfrog":
		return NewLeapfrog(), nil
	}
	return nil, fmt.Errorf("unknown integrator: %s", name)
}

// Names lists the integrators Get accepts.
func Names() []string { return []string{"verlet", "leapfrog"} }

// Verlet is velocity Verlet: half kick, drift, force, half kick.
type Verlet struct{}

func NewVerlet() *Verlet { return &Verlet{} }

func (v *Verlet) Name() string { return "verlet" }

func (v *Verlet) Step(s *system.System, ff ForceField, dt float64, needEnergy, needVirial bool) error {
	kick(s, 0.5*dt)
	drift(s, dt)
	if err := ff.Forces(s, needEnergy, needVirial); err != nil {
		return err
	}
	kick(s, 0.5*dt)
	return nil
}

// Leapfrog keeps velocities at half steps: V holds v(t-dt/2) on entry and
// v(t+dt/2) on exit.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog { return &Leapfrog{} }

func (l *Leapfrog) Name() string { return "leapfrog" }

func (l *Leapfrog) Step(s *system.System, ff ForceField, dt float64, needEnergy, needVirial bool) error {
	kick(s, dt)
	drift(s, dt)
	return ff.Forces(s, needEnergy, needVirial)
}

func kick(s *system.System, h float64) {
	for i := 0; i < s.NLocal; i++ {
		f := h / s.Mass[s.Type[i]]
		s.V[3*i] += f * s.F[3*i]
		s.V[3*i+1] += f * s.F[3*i+1]
		s.V[3*i+2] += f * s.F[3*i+2]
	}
}

func drift(s *system.System, dt float64) {
	for i := 0; i < 3*s.NLocal; i++ {
		s.X[i] += dt * s.V[i]
	}
	s.Wrap()
}
