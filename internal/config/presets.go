package config

import "sort"

func preset(style string, ntypes int, settings []string, coeffs [][]string, tweak func(*Config)) *Config {
	c := DefaultConfig()
	c.Style = style
	c.NTypes = ntypes
	c.Settings = settings
	c.Coeffs = coeffs
	if tweak != nil {
		tweak(c)
	}
	return c
}

// Presets holds ready-made runs per pair style, all in reduced units on a
// simple cubic lattice.
var Presets = map[string]map[string]*Config{
	"lj/cut/coul/cut": {
		"argon": preset("lj/cut/coul/cut", 1, []string{"2.5"},
			[][]string{{"1", "1", "1.0", "1.0"}},
			func(c *Config) { c.Modify = []string{"shift", "yes"} }),
		"salt": preset("lj/cut/coul/cut", 2, []string{"2.5", "3.0"},
			[][]string{{"1", "1", "1.0", "1.0"}, {"2", "2", "1.0", "1.1"}},
			func(c *Config) {
				c.System.Charges = []float64{1, -1}
				c.System.Spacing = 1.2
				c.System.Cells = []int{8, 8, 8}
				c.Run.Dt = 0.002
			}),
	},
	"lj/charmm/coul/charmm": {
		"charmm": preset("lj/charmm/coul/charmm", 2, []string{"2.0", "2.5"},
			[][]string{{"1", "1", "0.8", "1.0", "0.4", "0.9"}, {"2", "2", "0.5", "1.1"}},
			func(c *Config) {
				c.System.Charges = []float64{0.4, -0.4}
				c.SpecialLJ = []float64{0, 0, 0.5}
				c.SpecialCoul = []float64{0, 0, 0.5}
			}),
	},
	"lj/charmm/coul/long": {
		"charmm-long": preset("lj/charmm/coul/long", 2, []string{"2.0", "2.5", "gewald", "0.9"},
			[][]string{{"1", "1", "0.8", "1.0", "0.4", "0.9"}, {"2", "2", "0.5", "1.1"}},
			func(c *Config) { c.System.Charges = []float64{0.4, -0.4} }),
	},
	"lj/class2/coul/cut": {
		"class2": preset("lj/class2/coul/cut", 2, []string{"2.5"},
			[][]string{{"1", "1", "1.0", "1.0"}, {"2", "2", "0.6", "1.1"}},
			func(c *Config) {
				c.Modify = []string{"shift", "yes"}
				c.System.Charges = []float64{0.2, -0.2}
			}),
	},
	"buck": {
		"bmh": preset("buck", 2, []string{"2.5"},
			[][]string{
				{"1", "1", "100.0", "0.3", "1.0"},
				{"2", "2", "80.0", "0.32", "1.5"},
				{"1", "2", "90.0", "0.31", "1.2"},
			},
			func(c *Config) { c.Modify = []string{"shift", "yes"} }),
	},
}

// GetPreset returns a copy of the named preset of a style, or nil.
func GetPreset(style, name string) *Config {
	stylePresets, ok := Presets[style]
	if !ok {
		return nil
	}
	cfg, ok := stylePresets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// FindPreset looks a preset up by name alone; names are unique across
// styles.
func FindPreset(name string) *Config {
	for _, stylePresets := range Presets {
		if cfg, ok := stylePresets[name]; ok {
			return cfg.Clone()
		}
	}
	return nil
}

func ListPresets(style string) []string {
	stylePresets, ok := Presets[style]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(stylePresets))
	for name := range stylePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetStyles lists the styles that have presets.
func PresetStyles() []string {
	styles := make([]string, 0, len(Presets))
	for style := range Presets {
		styles = append(styles, style)
	}
	sort.Strings(styles)
	return styles
}
