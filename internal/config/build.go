package config

import (
	"fmt"

	"github.com/san-kum/pairsim/internal/compute"
	"github.com/san-kum/pairsim/internal/neighbor"
	"github.com/san-kum/pairsim/internal/pair"
	"github.com/san-kum/pairsim/internal/system"
)

func (c *Config) Globals() (pair.Globals, error) {
	g := pair.DefaultGlobals()
	g.Newton = c.Newton
	g.QQRD2E = c.QQRD2E
	if len(c.SpecialLJ) != 3 || len(c.SpecialCoul) != 3 {
		return g, fmt.Errorf("config: special_lj and special_coul take 3 values")
	}
	f, err := neighbor.NewFactors(
		[3]float64{c.SpecialCoul[0], c.SpecialCoul[1], c.SpecialCoul[2]},
		[3]float64{c.SpecialLJ[0], c.SpecialLJ[1], c.SpecialLJ[2]},
	)
	if err != nil {
		return g, err
	}
	g.Special = f
	return g, nil
}

// ComputeBackend returns the backend named by Backend with Threads workers.
func (c *Config) ComputeBackend() compute.Backend {
	switch c.Backend {
	case "gpu":
		return compute.NewGPUBackend()
	case "auto":
		return compute.AutoSelectBackend(c.Threads)
	}
	return compute.NewCPUBackend(c.Threads)
}

// NewEngine creates an empty pair engine of the configured style with
// every configured option. Restarts fill it in place of the commands.
func (c *Config) NewEngine() (*pair.Engine, error) {
	g, err := c.Globals()
	if err != nil {
		return nil, err
	}
	return pair.New(c.Style, c.NTypes,
		pair.WithGlobals(g),
		pair.WithBackend(c.ComputeBackend()),
		pair.WithPerAtom(c.PerAtom.Energy, c.PerAtom.Virial),
		pair.WithFdotr(c.Fdotr),
	)
}

// Engine creates the pair engine and replays the style, coefficient and
// modify commands on it. The engine still needs Init.
func (c *Config) Engine() (*pair.Engine, error) {
	e, err := c.NewEngine()
	if err != nil {
		return nil, err
	}
	if err := e.Settings(c.Settings); err != nil {
		return nil, fmt.Errorf("config: settings %v: %w", c.Settings, err)
	}
	for _, args := range c.Coeffs {
		if err := e.Coeff(args); err != nil {
			return nil, fmt.Errorf("config: coeff %v: %w", args, err)
		}
	}
	if len(c.Modify) > 0 {
		if err := e.Modify(c.Modify); err != nil {
			return nil, fmt.Errorf("config: modify %v: %w", c.Modify, err)
		}
	}
	if c.GEwald > 0 {
		if err := e.SetEwald(c.GEwald); err != nil {
			return nil, fmt.Errorf("config: gewald: %w", err)
		}
	}
	return e, nil
}

// Lattice builds the system. A charged style without configured charges
// gets neutral atoms.
func (c *Config) Lattice(charged bool) (*system.System, error) {
	if len(c.System.Cells) != 3 {
		return nil, fmt.Errorf("config: system.cells takes 3 values")
	}
	charges := c.System.Charges
	if charges == nil && charged {
		charges = make([]float64, c.NTypes)
	}
	return system.NewLattice(system.LatticeConfig{
		Cells:       [3]int{c.System.Cells[0], c.System.Cells[1], c.System.Cells[2]},
		Spacing:     c.System.Spacing,
		NTypes:      c.NTypes,
		Charges:     charges,
		Masses:      c.System.Masses,
		Jitter:      c.System.Jitter,
		Temperature: c.System.Temperature,
		Seed:        c.System.Seed,
	})
}
