package automation

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/mersenne/internal/config"
	"github.com/san-kum/mersenne/internal/mersenne"
	"github.com/san-kum/mersenne/internal/report"
	"gopkg.in/yaml.v3"
)

// Scenario is a set of strings resolved together, such as the six strings
// of a guitar. Defaults apply to every string unless it overrides them.
type Scenario struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Defaults    map[string]string `yaml:"defaults"`
	Strings     []StringEntry     `yaml:"strings"`
}

// StringEntry holds the raw parameters of one string. The extra key
// material names a volumic mass preset.
type StringEntry struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:",inline"`
}

// Outcome is one resolved string.
type Outcome struct {
	Name     string
	Set      *mersenne.ParameterSet
	Computed *mersenne.Primary
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Strings) == 0 {
		return nil, fmt.Errorf("scenario %q has no strings", scenario.Name)
	}
	return &scenario, nil
}

// RunScenario resolves every string in order and stops at the first failure.
func RunScenario(scenario *Scenario, cfg *config.Config) ([]Outcome, error) {
	resolver := cfg.Resolver()
	results := make([]Outcome, 0, len(scenario.Strings))

	for i, s := range scenario.Strings {
		name := s.Name
		if name == "" {
			name = strconv.Itoa(i + 1)
		}

		raw, err := merge(scenario.Defaults, s.Params, cfg)
		if err != nil {
			return results, fmt.Errorf("string %s: %w", name, err)
		}
		ps, err := report.Decode(raw)
		if err != nil {
			return results, fmt.Errorf("string %s: %w", name, err)
		}

		out := Outcome{Name: name, Set: ps}
		switch computed, err := resolver.Resolve(ps); {
		case err == nil:
			out.Computed = &computed
		case errors.Is(err, mersenne.ErrNothingToCompute):
		default:
			return results, fmt.Errorf("string %s: %w", name, err)
		}
		results = append(results, out)
	}

	return results, nil
}

func merge(defaults, params map[string]string, cfg *config.Config) (report.Raw, error) {
	raw := report.Raw{}
	for k, v := range defaults {
		raw[k] = v
	}
	// a string's own material replaces an inherited volumic mass
	if _, ok := params["material"]; ok {
		delete(raw, "volumic_mass")
	}
	for k, v := range params {
		raw[k] = v
	}

	material, ok := raw["material"]
	if !ok {
		return raw, nil
	}
	delete(raw, "material")
	if _, ok := raw["volumic_mass"]; ok {
		return raw, nil
	}
	v, err := cfg.VolumicMass(material)
	if err != nil {
		return nil, err
	}
	raw["volumic_mass"] = strconv.FormatFloat(v, 'g', -1, 64)
	return raw, nil
}

// TotalTension sums the tensions of all resolved strings, the load on the
// instrument.
func TotalTension(outcomes []Outcome) float64 {
	var sum float64
	for _, o := range outcomes {
		if o.Set.Tension != nil {
			sum += *o.Set.Tension
		}
	}
	return sum
}
