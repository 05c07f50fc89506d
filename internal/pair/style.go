package pair

import (
	"github.com/san-kum/pairsim/internal/restart"
)

// Style is one interaction model. Engine drives it; styles never run
// concurrently with themselves.
type Style interface {
	Name() string
	// Settings takes the global arguments of the style, typically cutoffs.
	Settings(args []string) error
	// Coeff sets parameters for a range of type pairs.
	Coeff(args []string) error
	// Coulomb reports whether the style needs per-atom charges.
	Coulomb() bool

	init(env initEnv) (binding, error)
	cutoff(i, j int) float64
	writeSettings(w *restart.Writer)
	readSettings(r *restart.Reader)
	writeCoeffs(w *restart.Writer)
	readCoeffs(r *restart.Reader)
	memoryUsage() int
}

// initEnv is the engine-wide state a style needs to derive coefficients.
type initEnv struct {
	mix    MixRule
	offset bool
}

// Extractor is implemented by styles that expose coefficient tables to
// other force terms.
type Extractor interface {
	Extract(name string) ([][]float64, bool)
}

// record ties a parameter struct to its persisted raw fields.
type record[P any] interface {
	*P
	raw() []float64
	setRaw(v []float64)
}

// base holds the parameter table shared by all styles.
type base[P any, R record[P]] struct {
	name   string
	ntypes int
	tab    *Table[P]
}

func (b *base[P, R]) Name() string { return b.name }

func (b *base[P, R]) table() *Table[P] {
	if b.tab == nil {
		b.tab = NewTable[P](b.ntypes)
	}
	return b.tab
}

func (b *base[P, R]) fail(op, format string, args ...any) error {
	return configError(b.name, op, format, args...)
}

// assign applies p to every pair matched by the two type arguments.
func (b *base[P, R]) assign(iarg, jarg string, p P) error {
	ilo, ihi, err := ParseBounds(iarg, b.ntypes)
	if err != nil {
		return err
	}
	jlo, jhi, err := ParseBounds(jarg, b.ntypes)
	if err != nil {
		return err
	}
	t := b.table()
	count := 0
	for i := ilo; i <= ihi; i++ {
		for j := max(jlo, i); j <= jhi; j++ {
			if err := t.Set(i, j, p); err != nil {
				return err
			}
			count++
		}
	}
	if count == 0 {
		return b.fail("pair_coeff", "incorrect args for pair coefficients")
	}
	return nil
}

// eachOffDiagonal rewrites every explicitly set pair with i < j.
func (b *base[P, R]) eachOffDiagonal(fn func(p *P)) {
	if b.tab == nil {
		return
	}
	for i := 1; i <= b.ntypes; i++ {
		for j := i + 1; j <= b.ntypes; j++ {
			if b.tab.IsSet(i, j) {
				p := *b.tab.at(i, j)
				fn(&p)
				b.tab.Store(i, j, p)
			}
		}
	}
}

// derive fills every pair i <= j. Unset pairs are built by mix from the
// two diagonal records; mix may be nil for styles that do not mix.
func (b *base[P, R]) derive(mix func(ii, jj *P) P, coeff func(p *P) error) error {
	if b.tab == nil {
		return b.fail("init", "all pair coeffs are not set")
	}
	t := b.tab
	for i := 1; i <= b.ntypes; i++ {
		if !t.IsSet(i, i) {
			return b.fail("init", "all pair coeffs are not set")
		}
	}
	for i := 1; i <= b.ntypes; i++ {
		for j := i; j <= b.ntypes; j++ {
			p := *t.at(i, j)
			if !t.IsSet(i, j) {
				if mix == nil {
					return b.fail("init", "all pair coeffs are not set (%d,%d)", i, j)
				}
				p = mix(t.at(i, i), t.at(j, j))
			}
			if err := coeff(&p); err != nil {
				return err
			}
			t.Store(i, j, p)
		}
	}
	return nil
}

func (b *base[P, R]) writeCoeffs(w *restart.Writer) {
	t := b.table()
	for i := 1; i <= b.ntypes; i++ {
		for j := i; j <= b.ntypes; j++ {
			if !t.IsSet(i, j) {
				w.Byte(0)
				continue
			}
			w.Byte(1)
			for _, v := range R(t.at(i, j)).raw() {
				w.Float64(v)
			}
		}
	}
}

// readCoeffs replaces the table with the explicitly set pairs of the
// stream. Derived values wait for the next Init.
func (b *base[P, R]) readCoeffs(r *restart.Reader) {
	b.tab = NewTable[P](b.ntypes)
	nraw := len(R(new(P)).raw())
	v := make([]float64, nraw)
	for i := 1; i <= b.ntypes && r.Err() == nil; i++ {
		for j := i; j <= b.ntypes && r.Err() == nil; j++ {
			if !r.Flag() {
				continue
			}
			for k := range v {
				v[k] = r.Float64()
			}
			var p P
			R(&p).setRaw(v)
			b.tab.Set(i, j, p)
		}
	}
}

func (b *base[P, R]) memoryUsage() int {
	if b.tab == nil {
		return 0
	}
	return b.tab.bytes()
}

// matrix copies one field of every record into a [ntypes+1][ntypes+1]
// array, the layout other force terms index by type.
func (b *base[P, R]) matrix(field func(p *P) float64) [][]float64 {
	m := make([][]float64, b.ntypes+1)
	for i := range m {
		m[i] = make([]float64, b.ntypes+1)
		if i == 0 || b.tab == nil {
			continue
		}
		for j := 1; j <= b.ntypes; j++ {
			m[i][j] = field(b.tab.at(i, j))
		}
	}
	return m
}

func argc(args []string, lo, hi int) bool {
	return len(args) >= lo && len(args) <= hi
}
