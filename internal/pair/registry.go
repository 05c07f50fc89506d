package pair

import (
	"fmt"
	"sort"
)

type Registry struct {
	styles map[string]func(ntypes int) Style
}

func NewRegistry() *Registry {
	r := &Registry{
		styles: make(map[string]func(int) Style),
	}

	r.styles["lj/cut/coul/cut"] = func(n int) Style { return NewLJCut(n) }
	r.styles["lj/charmm/coul/charmm"] = func(n int) Style { return NewCharmmCoulCharmm(n) }
	r.styles["lj/charmm/coul/long"] = func(n int) Style { return NewCharmmCoulLong(n) }
	r.styles["lj/class2/coul/cut"] = func(n int) Style { return NewClass2CoulCut(n) }
	r.styles["buck"] = func(n int) Style { return NewBuck(n) }

	return r
}

func (r *Registry) Get(name string, ntypes int) (Style, error) {
	fn, ok := r.styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, name)
	}
	return fn(ntypes), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Styles lists the registered style names.
func Styles() []string { return defaultRegistry.List() }
