package pair

import (
	"fmt"
	"math"
)

// MixRule derives (i,j) parameters from (i,i) and (j,j). The values are
// persisted in restart files.
type MixRule int32

const (
	MixGeometric MixRule = iota
	MixArithmetic
	MixSixthPower
)

func (m MixRule) String() string {
	switch m {
	case MixGeometric:
		return "geometric"
	case MixArithmetic:
		return "arithmetic"
	case MixSixthPower:
		return "sixthpower"
	}
	return fmt.Sprintf("MixRule(%d)", int32(m))
}

func ParseMixRule(s string) (MixRule, error) {
	switch s {
	case "geometric":
		return MixGeometric, nil
	case "arithmetic":
		return MixArithmetic, nil
	case "sixthpower":
		return MixSixthPower, nil
	}
	return 0, fmt.Errorf("%w: unknown mix rule %q", ErrConfig, s)
}

func (m MixRule) valid() bool {
	return m >= MixGeometric && m <= MixSixthPower
}

// MixEnergy mixes two well depths. Geometric and arithmetic both take the
// geometric mean; sixth-power weights it by the sigmas.
func MixEnergy(rule MixRule, epsI, epsJ, sigI, sigJ float64) float64 {
	if rule == MixSixthPower {
		si3 := sigI * sigI * sigI
		sj3 := sigJ * sigJ * sigJ
		return 2 * math.Sqrt(epsI*epsJ) * si3 * sj3 / (si3*si3 + sj3*sj3)
	}
	return math.Sqrt(epsI * epsJ)
}

// MixDistance mixes two lengths, used for sigma and for cutoffs.
func MixDistance(rule MixRule, sigI, sigJ float64) float64 {
	switch rule {
	case MixArithmetic:
		return 0.5 * (sigI + sigJ)
	case MixSixthPower:
		si3 := sigI * sigI * sigI
		sj3 := sigJ * sigJ * sigJ
		return math.Pow(0.5*(si3*si3+sj3*sj3), 1.0/6.0)
	}
	return math.Sqrt(sigI * sigJ)
}
