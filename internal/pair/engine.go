package pair

import (
	"fmt"

	"github.com/san-kum/pairsim/internal/compute"
	"github.com/san-kum/pairsim/internal/neighbor"
	"github.com/san-kum/pairsim/internal/restart"
)

// Engine evaluates one pair style over a neighbor list.
type Engine struct {
	name    string
	ntypes  int
	style   Style
	opts    Options
	backend compute.Backend

	mix    MixRule
	offset bool

	ready    bool
	bound    binding
	cutforce float64

	pool  *compute.BufferPool
	parts []Partial
	tally Tally
	last  Variant
}

// New creates an engine for a registered style over ntypes atom types.
func New(style string, ntypes int, opts ...Option) (*Engine, error) {
	if ntypes < 1 {
		return nil, fmt.Errorf("%w: need at least one atom type, got %d", ErrConfig, ntypes)
	}
	s, err := defaultRegistry.Get(style, ntypes)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := o.Backend
	if b == nil {
		b = compute.GetBackend()
	}
	return &Engine{
		name:    style,
		ntypes:  ntypes,
		style:   s,
		opts:    o,
		backend: b,
		mix:     MixGeometric,
	}, nil
}

func (e *Engine) Name() string             { return e.name }
func (e *Engine) NTypes() int              { return e.ntypes }
func (e *Engine) Style() Style             { return e.style }
func (e *Engine) Globals() Globals         { return e.opts.Globals }
func (e *Engine) Backend() compute.Backend { return e.backend }
func (e *Engine) Mix() MixRule             { return e.mix }
func (e *Engine) Offset() bool             { return e.offset }
func (e *Engine) LastVariant() Variant     { return e.last }
func (e *Engine) Options() Options         { return e.opts }

// Settings applies the style's global arguments. Init must run again.
func (e *Engine) Settings(args []string) error {
	e.ready = false
	return e.style.Settings(args)
}

// Coeff sets parameters for the type pairs matched by args[0] and args[1].
func (e *Engine) Coeff(args []string) error {
	if len(args) < 2 {
		return configError(e.name, "pair_coeff", "incorrect args for pair coefficients")
	}
	e.ready = false
	return e.style.Coeff(args)
}

// Modify takes keyword/value pairs: "mix geometric|arithmetic|sixthpower"
// and "shift yes|no".
func (e *Engine) Modify(args []string) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return configError(e.name, "pair_modify", "illegal pair_modify command")
	}
	for k := 0; k < len(args); k += 2 {
		key, val := args[k], args[k+1]
		switch key {
		case "mix":
			m, err := ParseMixRule(val)
			if err != nil {
				return configError(e.name, "pair_modify", "%v", err)
			}
			e.mix = m
		case "shift":
			switch val {
			case "yes":
				e.offset = true
			case "no":
				e.offset = false
			default:
				return configError(e.name, "pair_modify", "shift takes yes or no, got %q", val)
			}
		default:
			return configError(e.name, "pair_modify", "unknown keyword %q", key)
		}
	}
	e.ready = false
	return nil
}

// SetEwald hands the Ewald splitting parameter to styles with a
// real-space long-range term.
func (e *Engine) SetEwald(g float64) error {
	s, ok := e.style.(interface{ SetEwald(float64) error })
	if !ok {
		return configError(e.name, "kspace", "style has no long-range term")
	}
	e.ready = false
	return s.SetEwald(g)
}

// Init derives every pair's coefficients. atoms may be nil when no atom
// data is at hand; otherwise coulombic styles require charges.
func (e *Engine) Init(atoms *Atoms) error {
	e.ready = false
	if atoms != nil && e.style.Coulomb() && atoms.Q == nil {
		return configError(e.name, "init", "pair style requires atom attribute q")
	}
	b, err := e.style.init(initEnv{mix: e.mix, offset: e.offset})
	if err != nil {
		return err
	}
	e.bound = b
	e.cutforce = 0
	for i := 1; i <= e.ntypes; i++ {
		for j := i; j <= e.ntypes; j++ {
			e.cutforce = max(e.cutforce, e.style.cutoff(i, j))
		}
	}
	e.ready = true
	return nil
}

// Cutoff is the interaction range of a type pair, for the neighbor builder.
func (e *Engine) Cutoff(i, j int) (float64, error) {
	if !e.ready {
		return 0, ErrNotInitialized
	}
	if i < 1 || j < 1 || i > e.ntypes || j > e.ntypes {
		return 0, rangeError(i, j, e.ntypes)
	}
	return e.style.cutoff(i, j), nil
}

// CutForce is the largest cutoff over all type pairs.
func (e *Engine) CutForce() float64 { return e.cutforce }

// Compute adds pair forces into atoms.F and records energy and virial
// sums, retrievable through Tally.
func (e *Engine) Compute(atoms *Atoms, list *neighbor.List, needEnergy, needVirial bool) error {
	if !e.ready {
		return ErrNotInitialized
	}
	if err := atoms.validate(e.ntypes); err != nil {
		return err
	}
	nall := atoms.NAll()
	if err := checkList(list, atoms.NLocal, nall); err != nil {
		return err
	}
	if e.style.Coulomb() && atoms.Q == nil {
		return configError(e.name, "compute", "pair style requires atom attribute q")
	}

	g := e.opts.Globals
	v := SelectVariant(needEnergy, needVirial, g.Newton)
	e.last = v
	fdotr := e.opts.Fdotr && g.Newton && needVirial

	r := &region{
		x:       atoms.X,
		q:       atoms.Q,
		typ:     atoms.Type,
		nlocal:  atoms.NLocal,
		list:    list,
		special: g.Special,
		qqrd2e:  g.QQRD2E,
	}

	if e.pool == nil || e.pool.Size() != 3*nall {
		e.pool = compute.NewBufferPool(3 * nall)
	}
	workers := e.backend.Workers()
	bufs := e.pool.GetN(workers)
	defer e.pool.PutN(bufs)

	if len(e.parts) != workers {
		e.parts = make([]Partial, workers)
	}
	for w := range e.parts {
		e.parts[w].reset(nall, needVirial && !fdotr,
			needEnergy && e.opts.PerAtomEnergy, needVirial && e.opts.PerAtomVirial)
	}

	loop := e.bound.loops[v]
	e.backend.Region(list.Inum(), func(w int, s compute.Span) {
		loop(r, s, bufs[w], &e.parts[w])
	})

	e.tally.Merge(e.parts)
	if fdotr {
		e.tally.Virial = virialFdotr(atoms.X[:3*nall], bufs)
	}
	compute.Reduce(atoms.F[:3*nall], bufs)
	return nil
}

// virialFdotr sums x_i f_i over every atom, ghosts included, which with
// Newton on equals the sum of per-pair virials.
func virialFdotr(x []float64, bufs [][]float64) [nvirial]float64 {
	var v [nvirial]float64
	for _, f := range bufs {
		for i := 0; i < len(x); i += 3 {
			v[0] += f[i] * x[i]
			v[1] += f[i+1] * x[i+1]
			v[2] += f[i+2] * x[i+2]
			v[3] += f[i+1] * x[i]
			v[4] += f[i+2] * x[i]
			v[5] += f[i+2] * x[i+1]
		}
	}
	return v
}

func checkList(l *neighbor.List, nlocal, nall int) error {
	if l == nil {
		return fmt.Errorf("pair: nil neighbor list")
	}
	if len(l.Neigh) != len(l.IList) {
		return fmt.Errorf("pair: neighbor list has %d rows for %d atoms", len(l.Neigh), len(l.IList))
	}
	for ii, i := range l.IList {
		if i < 0 || i >= nlocal {
			return fmt.Errorf("pair: neighbor row %d is atom %d, not local", ii, i)
		}
		for _, e := range l.Neigh[ii] {
			if e.J < 0 || e.J >= nall || e.Special >= neighbor.NumSpecial {
				return fmt.Errorf("pair: neighbor %d of atom %d out of range", e.J, i)
			}
		}
	}
	return nil
}

// Tally returns the sums of the last Compute.
func (e *Engine) Tally() Tally { return e.tally }

// Single evaluates one pair: its total energy and F(r)/r. Pairs at or
// beyond the cutoff give zero.
func (e *Engine) Single(atoms *Atoms, i, j, itype, jtype int, rsq, factorCoul, factorLJ float64) (eng, fforce float64, err error) {
	if !e.ready {
		return 0, 0, ErrNotInitialized
	}
	if itype < 1 || jtype < 1 || itype > e.ntypes || jtype > e.ntypes {
		return 0, 0, rangeError(itype, jtype, e.ntypes)
	}
	var qq float64
	if atoms != nil && atoms.Q != nil {
		if i < 0 || j < 0 || i >= len(atoms.Q) || j >= len(atoms.Q) {
			return 0, 0, fmt.Errorf("pair: atoms %d,%d out of range", i, j)
		}
		qq = e.opts.Globals.QQRD2E * atoms.Q[i] * atoms.Q[j]
	}
	eng, fforce = e.bound.single(itype, jtype, rsq, qq, factorCoul, factorLJ)
	return eng, fforce, nil
}

// Extract returns a named coefficient table indexed [itype][jtype], for
// styles that publish one.
func (e *Engine) Extract(name string) ([][]float64, bool) {
	x, ok := e.style.(Extractor)
	if !ok || !e.ready {
		return nil, false
	}
	return x.Extract(name)
}

// WriteRestart serializes the style name, the type count, settings and
// explicitly set parameters. Only the root rank of w writes.
func (e *Engine) WriteRestart(w *restart.Writer) error {
	w.String(e.name)
	w.Int32(int32(e.ntypes))
	e.style.writeSettings(w)
	w.Bool32(e.offset)
	w.Int32(int32(e.mix))
	e.style.writeCoeffs(w)
	return w.Err()
}

// ReadRestart replaces settings and parameters with those of r. Every rank
// calls it; on failure the engine keeps its previous state. Init must run
// before the next Compute.
func (e *Engine) ReadRestart(r *restart.Reader) error {
	name := r.String()
	ntypes := int(r.Int32())
	switch {
	case r.Err() != nil:
	case name != e.name:
		r.Fail(fmt.Errorf("%w: style %q, want %q", restart.ErrRestartFormat, name, e.name))
	case ntypes != e.ntypes:
		r.Fail(fmt.Errorf("%w: %d atom types, want %d", restart.ErrRestartFormat, ntypes, e.ntypes))
	}
	if err := r.Err(); err != nil {
		return err
	}

	s, err := defaultRegistry.Get(e.name, e.ntypes)
	if err != nil {
		return err
	}
	// the splitting parameter belongs to the long-range solver, not the file
	if old, ok := e.style.(*CharmmCoulLong); ok {
		s.(*CharmmCoulLong).gEwald = old.gEwald
	}
	s.readSettings(r)
	offset := r.Bool32()
	mix := MixRule(r.Int32())
	if r.Err() == nil && !mix.valid() {
		r.Fail(fmt.Errorf("%w: mix rule %d", restart.ErrRestartFormat, mix))
	}
	s.readCoeffs(r)
	if err := r.Err(); err != nil {
		return err
	}
	e.style, e.offset, e.mix = s, offset, mix
	e.ready = false
	return nil
}

// MemoryUsage estimates the bytes held by parameter tables and force
// buffers.
func (e *Engine) MemoryUsage() int {
	n := e.style.memoryUsage()
	if e.pool != nil {
		n += 8 * e.pool.Size() * e.backend.Workers()
	}
	for k := range e.parts {
		n += 8 * (len(e.parts[k].EAtom) + len(e.parts[k].VAtom))
	}
	return n
}
