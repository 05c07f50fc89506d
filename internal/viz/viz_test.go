package viz

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/pairsim/internal/integrators"
	"github.com/san-kum/pairsim/internal/pair"
	"github.com/san-kum/pairsim/internal/sim"
	"github.com/san-kum/pairsim/internal/system"
)

func ljEngine(t *testing.T) *pair.Engine {
	t.Helper()
	e, err := pair.New("lj/cut/coul/cut", 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Settings([]string{"2.5"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Coeff([]string{"1", "1", "1.0", "1.0"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Init(nil); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(4, 2)
	if w, h := c.PixelSize(); w != 8 || h != 8 {
		t.Fatalf("expected 8x8 dots, got %dx%d", w, h)
	}

	c.Set(0, 0)
	c.Set(7, 7)
	c.Set(-1, 3)
	c.Set(8, 0)
	if c.Lit() != 2 {
		t.Errorf("expected 2 lit dots, got %d", c.Lit())
	}

	c.Clear()
	c.DrawLine(0, 0, 7, 0)
	if c.Lit() != 8 {
		t.Errorf("expected an 8-dot line, got %d", c.Lit())
	}

	c.Clear()
	c.Blob(3, 3, 1)
	if c.Lit() != 9 {
		t.Errorf("expected a 3x3 blob, got %d", c.Lit())
	}

	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 || utf8.RuneCountInString(lines[0]) != 4 {
		t.Errorf("unexpected canvas text %q", c.String())
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 5); got != "─────" {
		t.Errorf("empty sparkline = %q", got)
	}
	got := Sparkline([]float64{9, 0, 1, 2, 3}, 4)
	if got != "▁▃▅█" {
		t.Errorf("expected the last four values scaled, got %q", got)
	}
	if got := Sparkline([]float64{2, 2}, 4); utf8.RuneCountInString(got) != 2 {
		t.Errorf("flat sparkline = %q", got)
	}
}

func TestCurveMatchesLennardJones(t *testing.T) {
	e := ljEngine(t)
	r, energy, force, err := Curve(e, 1, 1, nil, 0.9, 2.4, 16, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	for k := range r {
		ir6 := math.Pow(r[k], -6)
		wantE := 4 * (ir6*ir6 - ir6)
		wantF := 24 * (2*ir6*ir6 - ir6) / r[k]
		if math.Abs(energy[k]-wantE) > 1e-10 || math.Abs(force[k]-wantF) > 1e-10 {
			t.Errorf("r=%.3f: E=%g F=%g, expected E=%g F=%g", r[k], energy[k], force[k], wantE, wantF)
		}
	}
}

func TestCurveCoulomb(t *testing.T) {
	e := ljEngine(t)
	_, neutral, _, err := Curve(e, 1, 1, nil, 1, 2, 3, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	_, charged, _, err := Curve(e, 1, 1, []float64{1, -1}, 1, 2, 3, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Midpoint r = 1.5 adds -1/r.
	if math.Abs(charged[1]-neutral[1]+1/1.5) > 1e-12 {
		t.Errorf("coulomb term off: %g vs %g", charged[1], neutral[1])
	}
}

func TestCurveErrors(t *testing.T) {
	e := ljEngine(t)
	tests := []struct {
		name       string
		rmin, rmax float64
		n          int
		charges    []float64
	}{
		{"one point", 1, 2, 1, nil},
		{"zero rmin", 0, 2, 8, nil},
		{"reversed", 2, 1, 8, nil},
		{"three charges", 1, 2, 8, []float64{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := Curve(e, 1, 1, tt.charges, tt.rmin, tt.rmax, tt.n, 1, 1); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
	if _, _, _, err := Curve(e, 1, 2, nil, 1, 2, 8, 1, 1); err == nil {
		t.Error("expected a type range error")
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExploreModel(t *testing.T) {
	e, err := pair.New("lj/cut/coul/cut", 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, err := range []error{
		e.Settings([]string{"2.5"}),
		e.Coeff([]string{"1", "1", "1.0", "1.0"}),
		e.Coeff([]string{"2", "2", "0.5", "1.2"}),
		e.Init(nil),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	m := NewExploreModel(e, []float64{0.5, -0.5}, 0.9)
	want := [][2]int{{1, 1}, {1, 2}, {2, 2}, {1, 1}}
	for k, p := range want {
		if i, j := m.Pair(); i != p[0] || j != p[1] {
			t.Fatalf("step %d: pair (%d,%d), expected %v", k, i, j, p)
		}
		next, _ := m.Update(keyMsg("tab"))
		m = next.(ExploreModel)
	}

	next, _ := m.Update(keyMsg("f"))
	m = next.(ExploreModel)
	if !m.showForce {
		t.Error("expected force view after f")
	}
	if view := m.View(); !strings.Contains(view, "F(r)") || !strings.Contains(view, "types 1-2") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestLiveModelRunsToCompletion(t *testing.T) {
	sys, err := system.NewLattice(system.LatticeConfig{
		Cells: [3]int{5, 5, 5}, Spacing: 1.1, NTypes: 1, Charges: []float64{0}, Temperature: 0.5, Seed: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	field, err := sim.NewPairField(ljEngine(t), sys)
	if err != nil {
		t.Fatal(err)
	}
	s := sim.New(sys, field, integrators.NewVerlet())

	var m tea.Model = NewLiveModel(s, "argon", 0.005, 12, 5)
	for k := 0; k < 5; k++ {
		m, _ = m.Update(TickMsg{})
	}
	live := m.(LiveModel)
	if live.Err() != nil {
		t.Fatal(live.Err())
	}
	if !live.done || s.Step() != 12 {
		t.Errorf("expected a finished run at step 12, got done=%v step=%d", live.done, s.Step())
	}
	if len(live.etotal) != 3 || live.last.Step != 12 {
		t.Errorf("expected 3 frames ending at step 12, got %d ending at %d", len(live.etotal), live.last.Step)
	}

	m, _ = m.Update(keyMsg(" "))
	if m.(LiveModel).running {
		t.Error("space should pause")
	}
	if view := m.View(); !strings.Contains(view, "ARGON") || !strings.Contains(view, "DONE") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestDrawSystem(t *testing.T) {
	sys, err := system.NewLattice(system.LatticeConfig{Cells: [3]int{3, 3, 3}, Spacing: 1, NTypes: 2})
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(30, 15)
	DrawSystem(c, NewCamera(), sys)
	if c.Lit() < 27 {
		t.Errorf("expected at least one dot per atom, got %d", c.Lit())
	}
}

func TestNextThemeCycles(t *testing.T) {
	start := CurrentTheme.Name
	for range Themes {
		NextTheme()
	}
	if CurrentTheme.Name != start {
		t.Errorf("expected to return to %s, got %s", start, CurrentTheme.Name)
	}
}
