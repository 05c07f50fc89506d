package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pairsim/internal/pair"
)

// Curve samples a pair of types at n distances in [rmin, rmax] through
// Single. force is F(r), positive when repulsive. charges holds the
// charges of the two atoms and may be nil.
func Curve(e *pair.Engine, itype, jtype int, charges []float64, rmin, rmax float64, n int, factorCoul, factorLJ float64) (r, energy, force []float64, err error) {
	if n < 2 || rmin <= 0 || rmax <= rmin {
		return nil, nil, nil, fmt.Errorf("viz: bad sampling range [%g, %g] with %d points", rmin, rmax, n)
	}
	var atoms *pair.Atoms
	if charges != nil {
		if len(charges) != 2 {
			return nil, nil, nil, fmt.Errorf("viz: need two charges, got %d", len(charges))
		}
		atoms = &pair.Atoms{Q: charges}
	}
	r = make([]float64, n)
	energy = make([]float64, n)
	force = make([]float64, n)
	for k := 0; k < n; k++ {
		rk := rmin + (rmax-rmin)*float64(k)/float64(n-1)
		eng, fforce, err := e.Single(atoms, 0, 1, itype, jtype, rk*rk, factorCoul, factorLJ)
		if err != nil {
			return nil, nil, nil, err
		}
		r[k], energy[k], force[k] = rk, eng, fforce*rk
	}
	return r, energy, force, nil
}

// ExploreModel plots a potential per type pair.
type ExploreModel struct {
	engine    *pair.Engine
	charges   []float64 // per type, nil when uncharged
	pairs     [][2]int
	selected  int
	rmin      float64
	rmax      float64
	showForce bool
	showHelp  bool
}

// NewExploreModel explores e between rmin and its largest cutoff.
// charges are per type and may be nil.
func NewExploreModel(e *pair.Engine, charges []float64, rmin float64) ExploreModel {
	var pairs [][2]int
	for i := 1; i <= e.NTypes(); i++ {
		for j := i; j <= e.NTypes(); j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return ExploreModel{
		engine:  e,
		charges: charges,
		pairs:   pairs,
		rmin:    rmin,
		rmax:    e.CutForce() * 1.05,
	}
}

func (m ExploreModel) Init() tea.Cmd { return nil }

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "right", "l":
		m.selected = (m.selected + 1) % len(m.pairs)
	case "shift+tab", "left", "h":
		m.selected = (m.selected + len(m.pairs) - 1) % len(m.pairs)
	case "f":
		m.showForce = !m.showForce
	case "up", "k":
		m.rmin = math.Min(m.rmin*1.05, m.rmax*0.9)
	case "down", "j":
		m.rmin = math.Max(m.rmin/1.05, 0.05)
	case "t":
		NextTheme()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// Pair is the selected type pair.
func (m ExploreModel) Pair() (int, int) {
	p := m.pairs[m.selected]
	return p[0], p[1]
}

func (m ExploreModel) pairCharges() []float64 {
	if m.charges == nil {
		return nil
	}
	i, j := m.Pair()
	return []float64{m.charges[i-1], m.charges[j-1]}
}

func (m ExploreModel) View() string {
	th := CurrentTheme
	i, j := m.Pair()
	var s strings.Builder
	s.WriteString(th.title().Render(fmt.Sprintf("%s  types %d-%d", m.engine.Name(), i, j)) + "\n\n")

	r, energy, force, err := Curve(m.engine, i, j, m.pairCharges(), m.rmin, m.rmax, 64, 1, 1)
	if err != nil {
		s.WriteString(StatusError.Render(err.Error()) + "\n")
		return s.String()
	}

	data, caption := energy, "E(r)"
	if m.showForce {
		data, caption = force, "F(r)"
	}
	chart := asciigraph.Plot(clip(data), asciigraph.Height(14), asciigraph.Width(64),
		asciigraph.Caption(fmt.Sprintf("%s for r in [%.2f, %.2f]", caption, r[0], r[len(r)-1])))
	s.WriteString(chart + "\n\n")

	cut, _ := m.engine.Cutoff(i, j)
	k := minIndex(energy)
	s.WriteString(th.label().Render("cutoff") + th.value().Render(fmt.Sprintf("%.4f", cut)) + "\n")
	s.WriteString(th.label().Render("minimum") + th.value().Render(fmt.Sprintf("E=%.5f at r=%.4f", energy[k], r[k])) + "\n")
	s.WriteString("\n" + KeyHint.Render("Tab:Pair F:Energy/Force ↑↓:r_min T:Theme Q:Quit"))
	if m.showHelp {
		return exploreHelp + "\n\n" + s.String()
	}
	return s.String()
}

// clip bounds the steep repulsive wall so the rest of the curve stays
// readable.
func clip(v []float64) []float64 {
	out := make([]float64, len(v))
	limit := 0.0
	for _, x := range v[len(v)/4:] {
		limit = math.Max(limit, math.Abs(x))
	}
	limit = math.Max(4*limit, 1)
	for k, x := range v {
		out[k] = math.Max(-limit, math.Min(limit, x))
	}
	return out
}

func minIndex(v []float64) int {
	k := 0
	for i, x := range v {
		if x < v[k] {
			k = i
		}
	}
	return k
}

const exploreHelp = `Tab / Shift+Tab  next or previous type pair
F                toggle energy and force
Up / Down        move the inner end of the range
T                cycle themes
Q                quit`
