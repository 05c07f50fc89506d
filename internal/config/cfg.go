package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"
)

// cfgFile mirrors Config in INI form:
//
//	[pair]
//	style = lj/charmm/coul/charmm
//	ntypes = 2
//	settings = 1.8 2.5
//	coeff = 1 1 0.8 1.0 0.4 0.9
//	coeff = 2 2 0.5 1.2
//	special-lj = 0 0 0.5
//
//	[system]
//	cells = 6 6 6
//
//	[run]
//	steps = 500
//
// List-valued settings are whitespace separated; coeff may repeat.
type cfgFile struct {
	Pair struct {
		Style         string
		NTypes        int
		Settings      string
		Coeff         []string
		Modify        string
		GEwald        float64
		Newton        bool
		QQRD2E        float64
		SpecialLJ     string `gcfg:"special-lj"`
		SpecialCoul   string `gcfg:"special-coul"`
		Threads       int
		Backend       string
		PerAtomEnergy bool `gcfg:"per-atom-energy"`
		PerAtomVirial bool `gcfg:"per-atom-virial"`
		Fdotr         bool
	}
	System struct {
		Cells       string
		Spacing     float64
		Masses      string
		Charges     string
		Jitter      float64
		Temperature float64
		Seed        int64
	}
	Run struct {
		Steps      int
		Dt         float64
		Thermo     int
		Integrator string
		Validate   bool
	}
}

// LoadCfg reads an INI-style configuration file.
func LoadCfg(path string) (*Config, error) {
	cfg := DefaultConfig()
	f := fromConfig(cfg)
	if err := gcfg.ReadFileInto(f, path); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := f.apply(cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseCfg reads INI-style configuration text.
func ParseCfg(text string) (*Config, error) {
	cfg := DefaultConfig()
	f := fromConfig(cfg)
	if err := gcfg.ReadStringInto(f, text); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := f.apply(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// fromConfig seeds the scalar fields so that unset variables keep their
// defaults. List-valued fields start empty and replace the default only
// when given.
func fromConfig(c *Config) *cfgFile {
	f := &cfgFile{}
	f.Pair.Style = c.Style
	f.Pair.NTypes = c.NTypes
	f.Pair.GEwald = c.GEwald
	f.Pair.Newton = c.Newton
	f.Pair.QQRD2E = c.QQRD2E
	f.Pair.Threads = c.Threads
	f.Pair.Backend = c.Backend
	f.Pair.PerAtomEnergy = c.PerAtom.Energy
	f.Pair.PerAtomVirial = c.PerAtom.Virial
	f.Pair.Fdotr = c.Fdotr
	f.System.Spacing = c.System.Spacing
	f.System.Jitter = c.System.Jitter
	f.System.Temperature = c.System.Temperature
	f.System.Seed = c.System.Seed
	f.Run.Steps = c.Run.Steps
	f.Run.Dt = c.Run.Dt
	f.Run.Thermo = c.Run.ThermoEvery
	f.Run.Integrator = c.Integrator
	f.Run.Validate = c.Run.Validate
	return f
}

func (f *cfgFile) apply(c *Config) error {
	p := &f.Pair
	c.Style = p.Style
	c.NTypes = p.NTypes
	c.GEwald = p.GEwald
	c.Newton = p.Newton
	c.QQRD2E = p.QQRD2E
	c.Threads = p.Threads
	c.Backend = p.Backend
	c.PerAtom = PerAtom{Energy: p.PerAtomEnergy, Virial: p.PerAtomVirial}
	c.Fdotr = p.Fdotr
	if p.Settings != "" {
		c.Settings = strings.Fields(p.Settings)
	}
	if len(p.Coeff) > 0 {
		c.Coeffs = make([][]string, 0, len(p.Coeff))
		for _, line := range p.Coeff {
			if args := strings.Fields(line); len(args) > 0 {
				c.Coeffs = append(c.Coeffs, args)
			}
		}
	}
	if p.Modify != "" {
		c.Modify = strings.Fields(p.Modify)
	}

	var err error
	if p.SpecialLJ != "" {
		if c.SpecialLJ, err = parseFloats("special-lj", p.SpecialLJ); err != nil {
			return err
		}
	}
	if p.SpecialCoul != "" {
		if c.SpecialCoul, err = parseFloats("special-coul", p.SpecialCoul); err != nil {
			return err
		}
	}

	s := &f.System
	if s.Cells != "" {
		if c.System.Cells, err = parseInts("cells", s.Cells); err != nil {
			return err
		}
	}
	if s.Masses != "" {
		if c.System.Masses, err = parseFloats("masses", s.Masses); err != nil {
			return err
		}
	}
	if s.Charges != "" {
		if c.System.Charges, err = parseFloats("charges", s.Charges); err != nil {
			return err
		}
	}
	c.System.Spacing = s.Spacing
	c.System.Jitter = s.Jitter
	c.System.Temperature = s.Temperature
	c.System.Seed = s.Seed

	c.Run.Steps = f.Run.Steps
	c.Run.Dt = f.Run.Dt
	c.Run.ThermoEvery = f.Run.Thermo
	c.Run.Validate = f.Run.Validate
	c.Integrator = f.Run.Integrator
	return nil
}

func parseFloats(name, s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", name, field)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(name, s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", name, field)
		}
		out[i] = v
	}
	return out, nil
}
