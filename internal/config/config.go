package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mersenne/internal/mersenne"
	"github.com/san-kum/mersenne/internal/units"
)

const (
	DefaultSweepSteps  = 60
	DefaultPlotHeight  = 12
	DefaultPlotWidth   = 70
	DefaultPluckPoints = 48
	DefaultPluckCycles = 20
)

type Config struct {
	DisplayUnits map[string]string `yaml:"display_units"`
	Defaults     DefaultsConfig    `yaml:"defaults"`
	Sweep        SweepConfig       `yaml:"sweep"`
	Pluck        PluckConfig       `yaml:"pluck"`
	// Materials maps extra material names to a volumic mass, with or
	// without unit ("1.78 g/cm3").
	Materials map[string]string `yaml:"materials"`
}

type DefaultsConfig struct {
	Octave        int     `yaml:"octave"`
	BaseFrequency float64 `yaml:"base_frequency"`
}

type SweepConfig struct {
	Steps  int `yaml:"steps"`
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

type PluckConfig struct {
	Points     int    `yaml:"points"`
	Cycles     int    `yaml:"cycles"`
	Integrator string `yaml:"integrator"`
}

// DefaultDisplayUnits are the units a luthier usually reads.
func DefaultDisplayUnits() map[string]string {
	return map[string]string{
		"frequency":      units.Hertz,
		"base_frequency": units.Hertz,
		"tension":        "kgf",
		"linear_mass":    "g/m",
		"length":         "mm",
		"diameter":       "mm",
		"radius":         "mm",
		"volumic_mass":   units.KgPerM3,
	}
}

func DefaultConfig() *Config {
	return &Config{
		DisplayUnits: DefaultDisplayUnits(),
		Defaults: DefaultsConfig{
			Octave:        mersenne.DefaultOctave,
			BaseFrequency: mersenne.DefaultBaseFrequency,
		},
		Sweep: SweepConfig{
			Steps:  DefaultSweepSteps,
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
		Pluck: PluckConfig{
			Points:     DefaultPluckPoints,
			Cycles:     DefaultPluckCycles,
			Integrator: "verlet",
		},
		Materials: map[string]string{},
	}
}

// Load reads a yaml file over the defaults. Display units missing from the
// file keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	for param, unit := range DefaultDisplayUnits() {
		if _, ok := cfg.DisplayUnits[param]; !ok {
			cfg.DisplayUnits[param] = unit
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate checks display units against their parameter's dimension.
func (c *Config) Validate() error {
	for param, unit := range c.DisplayUnits {
		si, ok := units.ParamUnits[param]
		if !ok {
			return fmt.Errorf("display_units: unknown parameter %q", param)
		}
		if unit == units.Auto || unit == "" {
			continue
		}
		if _, err := units.Convert(1, si, unit); err != nil {
			return fmt.Errorf("display_units.%s: %w", param, err)
		}
	}
	if c.Defaults.BaseFrequency <= 0 {
		return fmt.Errorf("defaults.base_frequency must be positive")
	}
	for name, v := range c.Materials {
		if _, err := units.Parse(v, units.KgPerM3); err != nil {
			return fmt.Errorf("materials.%s: %w", name, err)
		}
	}
	return nil
}

// Resolver builds a resolver using the configured note defaults.
func (c *Config) Resolver() *mersenne.Resolver {
	return &mersenne.Resolver{
		Octave:        c.Defaults.Octave,
		BaseFrequency: c.Defaults.BaseFrequency,
	}
}

// VolumicMass looks a material up, user entries first.
func (c *Config) VolumicMass(name string) (float64, error) {
	if v, ok := c.Materials[name]; ok {
		return units.Parse(v, units.KgPerM3)
	}
	m := GetMaterial(name)
	if m == nil {
		return 0, fmt.Errorf("unknown material: %s (available: %v)", name, c.ListMaterials())
	}
	return m.VolumicMass, nil
}

func (c *Config) ListMaterials() []string {
	names := ListMaterials()
	for name := range c.Materials {
		if GetMaterial(name) == nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
