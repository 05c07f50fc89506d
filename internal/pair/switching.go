package pair

import "fmt"

// Switch smoothly takes a term to zero between an inner and an outer
// cutoff. Below the inner cutoff the term is untouched.
type Switch struct {
	InnerSq, OuterSq float64
	Denom            float64
}

func NewSwitch(inner, outer float64) (Switch, error) {
	if inner < 0 || inner >= outer {
		return Switch{}, fmt.Errorf("%w: inner cutoff %g must be non-negative and below outer cutoff %g",
			ErrConfig, inner, outer)
	}
	in2, out2 := inner*inner, outer*outer
	d := out2 - in2
	return Switch{InnerSq: in2, OuterSq: out2, Denom: d * d * d}, nil
}

// S1 scales energy and force.
func (s Switch) S1(rsq float64) float64 {
	d := s.OuterSq - rsq
	return d * d * (s.OuterSq + 2*rsq - 3*s.InnerSq) / s.Denom
}

// S2 is -r dS1/dr, the extra force term proportional to the energy.
func (s Switch) S2(rsq float64) float64 {
	return 12 * rsq * (s.OuterSq - rsq) * (rsq - s.InnerSq) / s.Denom
}
