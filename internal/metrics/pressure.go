package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/pairsim/internal/sim"
)

// series collects one thermo field and reports its mean.
type series struct {
	name string
	get  func(sim.Thermo) float64
	vals []float64
}

func (s *series) Name() string { return s.name }

func (s *series) Observe(th sim.Thermo) { s.vals = append(s.vals, s.get(th)) }

func (s *series) Value() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	return stat.Mean(s.vals, nil)
}

// StdDev is the sample standard deviation, zero below two samples.
func (s *series) StdDev() float64 {
	if len(s.vals) < 2 {
		return 0
	}
	_, sd := stat.MeanStdDev(s.vals, nil)
	return sd
}

func (s *series) Reset() { s.vals = s.vals[:0] }

// Pressure averages the scalar pressure (2 KE + tr W) / 3V.
type Pressure struct{ series }

func NewPressure() *Pressure {
	return &Pressure{series{name: "pressure", get: func(th sim.Thermo) float64 { return th.Press }}}
}

// Temperature averages the kinetic temperature.
type Temperature struct{ series }

func NewTemperature() *Temperature {
	return &Temperature{series{name: "temperature", get: func(th sim.Thermo) float64 { return th.Temp }}}
}

// PotentialEnergy averages the pair energy.
type PotentialEnergy struct{ series }

func NewPotentialEnergy() *PotentialEnergy {
	return &PotentialEnergy{series{name: "pe", get: func(th sim.Thermo) float64 { return th.PE }}}
}
