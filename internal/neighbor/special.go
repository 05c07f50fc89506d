package neighbor

import "fmt"

// Factors holds the two independent exclusion scale tables: one for the
// electrostatic term, one for the dispersion term. Index 0 is a normal pair
// and is always 1.
type Factors struct {
	Coul [NumSpecial]float64
	LJ   [NumSpecial]float64
}

// DefaultFactors applies no bonded scaling.
func DefaultFactors() Factors {
	return Factors{
		Coul: [NumSpecial]float64{1, 1, 1, 1},
		LJ:   [NumSpecial]float64{1, 1, 1, 1},
	}
}

// NewFactors builds the tables from the 1-2, 1-3 and 1-4 scales.
func NewFactors(coul, lj [3]float64) (Factors, error) {
	f := Factors{}
	f.Coul[0], f.LJ[0] = 1, 1
	for k := 0; k < 3; k++ {
		if coul[k] < 0 || coul[k] > 1 || lj[k] < 0 || lj[k] > 1 {
			return f, fmt.Errorf("neighbor: special factors must be in [0,1], got coul=%v lj=%v", coul, lj)
		}
		f.Coul[k+1] = coul[k]
		f.LJ[k+1] = lj[k]
	}
	return f, nil
}

// For returns the (coulomb, dispersion) scale of an entry.
func (f *Factors) For(e Entry) (float64, float64) {
	return f.Coul[e.Special], f.LJ[e.Special]
}
