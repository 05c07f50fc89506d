package pair

import (
	"github.com/san-kum/pairsim/internal/compute"
	"github.com/san-kum/pairsim/internal/neighbor"
)

// Globals are the simulation-wide constants the engine reads.
type Globals struct {
	Newton  bool             // reaction forces also land on ghost atoms
	QQRD2E  float64          // Coulomb conversion factor, 1 in reduced units
	Special neighbor.Factors // exclusion scales for bonded neighbors
}

func DefaultGlobals() Globals {
	return Globals{
		Newton:  true,
		QQRD2E:  1,
		Special: neighbor.DefaultFactors(),
	}
}

// Options configures an Engine.
type Options struct {
	Globals       Globals
	Backend       compute.Backend // nil selects compute.GetBackend()
	PerAtomEnergy bool
	PerAtomVirial bool
	Fdotr         bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

func DefaultOptions() Options {
	return Options{Globals: DefaultGlobals()}
}

func WithGlobals(g Globals) Option {
	return func(o *Options) {
		o.Globals = g
	}
}

func WithNewton(on bool) Option {
	return func(o *Options) {
		o.Globals.Newton = on
	}
}

func WithBackend(b compute.Backend) Option {
	return func(o *Options) {
		o.Backend = b
	}
}

// WithThreads runs Compute on a CPU backend with n workers.
func WithThreads(n int) Option {
	return func(o *Options) {
		o.Backend = compute.NewCPUBackend(n)
	}
}

// WithPerAtom enables per-atom energy and per-atom virial tallies.
func WithPerAtom(energy, virial bool) Option {
	return func(o *Options) {
		o.PerAtomEnergy = energy
		o.PerAtomVirial = virial
	}
}

// WithFdotr computes the global virial from sum x.f after the force loop
// instead of per pair. It applies only when Newton is on.
func WithFdotr(on bool) Option {
	return func(o *Options) {
		o.Fdotr = on
	}
}
