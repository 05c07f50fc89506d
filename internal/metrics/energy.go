package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/pairsim/internal/sim"
)

// Energy averages the total energy.
type Energy struct{ series }

func NewEnergy() *Energy {
	return &Energy{series{name: "energy", get: func(th sim.Thermo) float64 { return th.ETotal }}}
}

// EnergyDrift is the largest relative deviation of the total energy from
// its first sample. An initial energy of zero reports zero.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(th sim.Thermo) {
	if e.samples == 0 {
		e.initial = th.ETotal
	}
	e.samples++
	if e.initial != 0 {
		e.maxDrift = math.Max(e.maxDrift, math.Abs(th.ETotal-e.initial)/math.Abs(e.initial))
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() { *e = EnergyDrift{} }

// DriftRate is the least-squares slope of total energy against time.
// Unlike EnergyDrift it separates a systematic leak from the bounded
// oscillation a symplectic integrator shows.
type DriftRate struct {
	times  []float64
	energy []float64
}

func NewDriftRate() *DriftRate { return &DriftRate{} }

func (d *DriftRate) Name() string { return "energy_drift_rate" }

func (d *DriftRate) Observe(th sim.Thermo) {
	d.times = append(d.times, th.Time)
	d.energy = append(d.energy, th.ETotal)
}

func (d *DriftRate) Value() float64 {
	if len(d.times) < 2 || d.times[len(d.times)-1] == d.times[0] {
		return 0
	}
	_, slope := stat.LinearRegression(d.times, d.energy, nil, false)
	return slope
}

func (d *DriftRate) Reset() {
	d.times = d.times[:0]
	d.energy = d.energy[:0]
}
