package sim

import "math"

// Thermo is one thermodynamic sample, in the units of the force field
// with kB = 1.
type Thermo struct {
	Step   int        `json:"step"`
	Time   float64    `json:"time"`
	Temp   float64    `json:"temp"`
	KE     float64    `json:"ke"`
	PE     float64    `json:"pe"`
	EVdwl  float64    `json:"evdwl"`
	ECoul  float64    `json:"ecoul"`
	ETotal float64    `json:"etotal"`
	Press  float64    `json:"press"`
	Virial [6]float64 `json:"virial"`
}

// IsValid reports whether every field is finite.
func (t Thermo) IsValid() bool {
	vals := []float64{t.Temp, t.KE, t.PE, t.ETotal, t.Press}
	vals = append(vals, t.Virial[:]...)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type Metric interface {
	Name() string
	Observe(th Thermo)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(th Thermo)
}

type Config struct {
	Steps int
	Dt    float64
	// ThermoEvery is the sampling interval; 0 samples only the first and
	// last step.
	ThermoEvery int
	// ValidateState stops the run when a sample is not finite.
	ValidateState bool
}

type Result struct {
	Thermo     []Thermo
	Metrics    map[string]float64
	StepsTaken int
}

// Last returns the final sample.
func (r *Result) Last() Thermo {
	if len(r.Thermo) == 0 {
		return Thermo{}
	}
	return r.Thermo[len(r.Thermo)-1]
}
