package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStyle       = "lj/cut/coul/cut"
	DefaultCutoff      = "2.5"
	DefaultDt          = 0.005
	DefaultSteps       = 1000
	DefaultThermoEvery = 100
	DefaultSpacing     = 1.1
	DefaultCells       = 6
	DefaultTemperature = 0.7
	DefaultSeed        = 12345
	DefaultIntegrator  = "verlet"
)

// Config is everything a run needs: the pair style and its commands, the
// globals the engine reads, the lattice to build and the run length.
type Config struct {
	Style       string       `yaml:"style"`
	NTypes      int          `yaml:"ntypes"`
	Settings    []string     `yaml:"settings"`
	Coeffs      [][]string   `yaml:"coeffs"`
	Modify      []string     `yaml:"modify,omitempty"`
	GEwald      float64      `yaml:"gewald,omitempty"`
	Newton      bool         `yaml:"newton"`
	QQRD2E      float64      `yaml:"qqrd2e"`
	SpecialLJ   []float64    `yaml:"special_lj"`
	SpecialCoul []float64    `yaml:"special_coul"`
	Threads     int          `yaml:"threads"`
	Backend     string       `yaml:"backend"`
	PerAtom     PerAtom      `yaml:"per_atom"`
	Fdotr       bool         `yaml:"fdotr"`
	Integrator  string       `yaml:"integrator"`
	System      SystemConfig `yaml:"system"`
	Run         RunConfig    `yaml:"run"`
}

type PerAtom struct {
	Energy bool `yaml:"energy"`
	Virial bool `yaml:"virial"`
}

type SystemConfig struct {
	Cells       []int     `yaml:"cells"`
	Spacing     float64   `yaml:"spacing"`
	Masses      []float64 `yaml:"masses,omitempty"`
	Charges     []float64 `yaml:"charges,omitempty"`
	Jitter      float64   `yaml:"jitter"`
	Temperature float64   `yaml:"temperature"`
	Seed        int64     `yaml:"seed"`
}

type RunConfig struct {
	Steps       int     `yaml:"steps"`
	Dt          float64 `yaml:"dt"`
	ThermoEvery int     `yaml:"thermo_every"`
	Validate    bool    `yaml:"validate"`
}

// DefaultConfig is an unshifted Lennard-Jones liquid in reduced units.
func DefaultConfig() *Config {
	return &Config{
		Style:       DefaultStyle,
		NTypes:      1,
		Settings:    []string{DefaultCutoff},
		Coeffs:      [][]string{{"1", "1", "1.0", "1.0"}},
		Newton:      true,
		QQRD2E:      1,
		SpecialLJ:   []float64{0, 0, 0},
		SpecialCoul: []float64{0, 0, 0},
		Backend:     "cpu",
		Integrator:  DefaultIntegrator,
		System: SystemConfig{
			Cells:       []int{DefaultCells, DefaultCells, DefaultCells},
			Spacing:     DefaultSpacing,
			Jitter:      0.05,
			Temperature: DefaultTemperature,
			Seed:        DefaultSeed,
		},
		Run: RunConfig{
			Steps:       DefaultSteps,
			Dt:          DefaultDt,
			ThermoEvery: DefaultThermoEvery,
			Validate:    true,
		},
	}
}

// Load reads a YAML file, or an INI-style file when the name ends in
// .cfg or .ini. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cfg", ".ini":
		return LoadCfg(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Settings = append([]string(nil), c.Settings...)
	out.Coeffs = make([][]string, len(c.Coeffs))
	for i, args := range c.Coeffs {
		out.Coeffs[i] = append([]string(nil), args...)
	}
	out.Modify = append([]string(nil), c.Modify...)
	out.SpecialLJ = append([]float64(nil), c.SpecialLJ...)
	out.SpecialCoul = append([]float64(nil), c.SpecialCoul...)
	out.System.Cells = append([]int(nil), c.System.Cells...)
	out.System.Masses = append([]float64(nil), c.System.Masses...)
	out.System.Charges = append([]float64(nil), c.System.Charges...)
	return &out
}

// Validate checks what can be checked without building the engine; the
// pair commands themselves are checked by the engine.
func (c *Config) Validate() error {
	switch {
	case c.Style == "":
		return fmt.Errorf("style is required")
	case c.NTypes < 1:
		return fmt.Errorf("ntypes must be at least 1, got %d", c.NTypes)
	case len(c.Settings) == 0:
		return fmt.Errorf("settings are required for %s", c.Style)
	case len(c.SpecialLJ) != 3 || len(c.SpecialCoul) != 3:
		return fmt.Errorf("special_lj and special_coul take 3 values")
	case c.Threads < 0:
		return fmt.Errorf("threads must be non-negative, got %d", c.Threads)
	case len(c.System.Cells) != 3:
		return fmt.Errorf("system.cells takes 3 values, got %d", len(c.System.Cells))
	case c.System.Spacing <= 0:
		return fmt.Errorf("system.spacing must be positive, got %g", c.System.Spacing)
	case c.Run.Dt <= 0:
		return fmt.Errorf("run.dt must be positive, got %g", c.Run.Dt)
	case c.Run.Steps < 0:
		return fmt.Errorf("run.steps must be non-negative, got %d", c.Run.Steps)
	}
	switch c.Backend {
	case "", "cpu", "gpu", "auto":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	for _, n := range c.System.Cells {
		if n < 1 {
			return fmt.Errorf("system.cells must be positive")
		}
	}
	return nil
}
