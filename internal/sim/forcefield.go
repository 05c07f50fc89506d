package sim

import (
	"fmt"

	"github.com/san-kum/pairsim/internal/neighbor"
	"github.com/san-kum/pairsim/internal/pair"
	"github.com/san-kum/pairsim/internal/system"
)

// PairField evaluates a pair engine on a periodic system. Every call
// regenerates the ghost images and rebuilds the neighbor list, so the
// list never goes stale.
type PairField struct {
	engine *pair.Engine
	atoms  pair.Atoms
	list   *neighbor.List
	builds int
}

// NewPairField initializes e against the atoms of s.
func NewPairField(e *pair.Engine, s *system.System) (*PairField, error) {
	atoms := pair.Atoms{NLocal: s.NLocal, X: s.X, Q: s.Q, Type: s.Type, F: s.F}
	if err := e.Init(&atoms); err != nil {
		return nil, err
	}
	if e.CutForce() <= 0 {
		return nil, fmt.Errorf("sim: pair style %s has no interaction range", e.Name())
	}
	return &PairField{engine: e}, nil
}

func (p *PairField) Engine() *pair.Engine { return p.engine }
func (p *PairField) List() *neighbor.List { return p.list }
func (p *PairField) Tally() pair.Tally    { return p.engine.Tally() }
func (p *PairField) Builds() int          { return p.builds }

func (p *PairField) Forces(s *system.System, needEnergy, needVirial bool) error {
	cut := p.engine.CutForce()
	if err := s.BuildGhosts(cut); err != nil {
		return err
	}
	newton := p.engine.Globals().Newton
	p.list = neighbor.Build(s.X, s.NLocal, s.NAll(), cut, neighbor.BuildOptions{Newton: newton})
	p.builds++

	p.atoms = pair.Atoms{
		NLocal: s.NLocal,
		NGhost: s.NGhost,
		X:      s.X,
		Q:      s.Q,
		Type:   s.Type,
		F:      s.F,
	}
	if err := p.engine.Compute(&p.atoms, p.list, needEnergy, needVirial); err != nil {
		return err
	}
	if newton {
		s.FoldGhostForces()
	}
	return nil
}
