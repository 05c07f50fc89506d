package metrics

import (
	"math"

	"github.com/san-kum/pairsim/internal/sim"
)

// Stability is the fraction of samples that are finite and whose
// temperature stays within threshold (relative) of the first sample.
type Stability struct {
	name       string
	threshold  float64
	reference  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(th sim.Thermo) {
	if s.samples == 0 {
		s.reference = th.Temp
	}
	s.samples++
	if !th.IsValid() {
		s.violations++
		return
	}
	if s.reference > 0 && math.Abs(th.Temp-s.reference) > s.threshold*s.reference {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.reference = 0
	s.violations = 0
	s.samples = 0
}

// Defaults returns the metrics a run reports unless told otherwise.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewEnergy(),
		NewEnergyDrift(),
		NewDriftRate(),
		NewTemperature(),
		NewPressure(),
		NewPotentialEnergy(),
		NewStability(0.5),
	}
}
