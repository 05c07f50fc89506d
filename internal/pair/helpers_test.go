package pair

import (
	"math"
	"reflect"
	"testing"

	"github.com/san-kum/pairsim/internal/neighbor"
	"github.com/san-kum/pairsim/internal/system"
)

func must(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func newEngine(t testing.TB, style string, ntypes int, settings []string, coeffs [][]string, opts ...Option) *Engine {
	t.Helper()
	e, err := New(style, ntypes, opts...)
	if err != nil {
		t.Fatalf("New(%s): %v", style, err)
	}
	must(t, e.Settings(settings))
	for _, c := range coeffs {
		must(t, e.Coeff(c))
	}
	must(t, e.Init(nil))
	return e
}

type styleCase struct {
	style    string
	settings []string
	coeffs   [][]string
	modify   []string
	charged  bool
}

var charmmCoeffs = [][]string{
	{"1", "1", "0.8", "1.0", "0.4", "0.9"},
	{"2", "2", "0.5", "1.2"},
}

var styleCases = []styleCase{
	{
		style:    "lj/cut/coul/cut",
		settings: []string{"2.5", "2.2"},
		coeffs:   [][]string{{"1", "1", "1.0", "1.0"}, {"2", "2", "0.5", "1.2", "2.3"}},
		modify:   []string{"shift", "yes"},
		charged:  true,
	},
	{
		style:    "lj/charmm/coul/charmm",
		settings: []string{"1.8", "2.5", "1.6", "2.4"},
		coeffs:   charmmCoeffs,
		charged:  true,
	},
	{
		style:    "lj/charmm/coul/long",
		settings: []string{"1.8", "2.5", "2.4", "gewald", "0.9"},
		coeffs:   charmmCoeffs,
		charged:  true,
	},
	{
		style:    "lj/class2/coul/cut",
		settings: []string{"2.5"},
		coeffs:   [][]string{{"1", "1", "0.8", "1.0"}, {"2", "2", "0.5", "1.2", "2.2", "2.4"}},
		modify:   []string{"mix", "arithmetic", "shift", "yes"},
		charged:  true,
	},
	{
		style:    "buck",
		settings: []string{"2.5"},
		coeffs: [][]string{
			{"1", "1", "100.0", "0.3", "1.0"},
			{"2", "2", "80.0", "0.32", "1.5"},
			{"1", "2", "90.0", "0.31", "1.2", "2.4"},
		},
		modify: []string{"shift", "yes"},
	},
}

func (c styleCase) engine(t testing.TB, opts ...Option) *Engine {
	t.Helper()
	e := newEngine(t, c.style, 2, c.settings, c.coeffs, opts...)
	if c.modify != nil {
		must(t, e.Modify(c.modify))
		must(t, e.Init(nil))
	}
	return e
}

// snapshot copies the full parameter table of a style.
func snapshot(s Style) any {
	switch s := s.(type) {
	case *LJCut:
		return append([]ljCutParams(nil), s.tab.data...)
	case *CharmmCoulCharmm:
		return append([]charmmParams(nil), s.tab.data...)
	case *CharmmCoulLong:
		return append([]charmmParams(nil), s.tab.data...)
	case *Class2CoulCut:
		return append([]class2Params(nil), s.tab.data...)
	case *Buck:
		return append([]buckParams(nil), s.tab.data...)
	}
	return nil
}

func sameTable(a, b any) bool { return reflect.DeepEqual(a, b) }

func testGlobals(newton bool) Globals {
	special, err := neighbor.NewFactors([3]float64{0, 0, 0.5}, [3]float64{0, 0, 0.5})
	if err != nil {
		panic(err)
	}
	return Globals{Newton: newton, QQRD2E: 1, Special: special}
}

type fixture struct {
	sys   *system.System
	atoms *Atoms
	list  *neighbor.List
}

// newFixture builds a jittered two-type lattice with periodic ghosts and
// a half list for the given Newton setting. Some pairs are tagged as
// bonded so exclusion scaling is exercised.
func newFixture(t testing.TB, charged bool, cutoff float64, newton bool, cells int) *fixture {
	t.Helper()
	cfg := system.LatticeConfig{
		Cells:   [3]int{cells, cells, cells},
		Spacing: 1.1,
		NTypes:  2,
		Jitter:  0.15,
		Seed:    42,
	}
	if charged {
		cfg.Charges = []float64{0.4, -0.4}
	}
	sys, err := system.NewLattice(cfg)
	must(t, err)
	must(t, sys.BuildGhosts(cutoff))

	owner := func(k int) int {
		if k < sys.NLocal {
			return k
		}
		return sys.Owner[k-sys.NLocal]
	}
	special := func(i, j int) uint8 {
		a, b := owner(i), owner(j)
		switch {
		case (a+b)%11 == 0:
			return 3
		case (a+b)%13 == 0:
			return 1
		}
		return 0
	}
	list := neighbor.Build(sys.X, sys.NLocal, sys.NAll(), cutoff,
		neighbor.BuildOptions{Newton: newton, Special: special})

	return &fixture{
		sys: sys,
		atoms: &Atoms{
			NLocal: sys.NLocal,
			NGhost: sys.NGhost,
			X:      sys.X,
			Q:      sys.Q,
			Type:   sys.Type,
			F:      sys.F,
		},
		list: list,
	}
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}
	return m
}

// assertClose compares element-wise with a tolerance relative to the
// largest magnitude in want.
func assertClose(t testing.TB, name string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", name, len(got), len(want))
	}
	scale := math.Max(1, maxAbs(want))
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol*scale {
			t.Errorf("%s[%d]: got %v, want %v", name, i, got[i], want[i])
			return
		}
	}
}
