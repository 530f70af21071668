package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a decay benchmark: groups of identical processes,
// each with an initial population and a decay rate constant.
type Scenario struct {
	Groups []ProcessGroup `yaml:"groups"`
}

// ProcessGroup defines count identical decay processes.
type ProcessGroup struct {
	Count      int     `yaml:"count"`
	Population int     `yaml:"population"`
	Rate       float64 `yaml:"rate"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := scenario.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// DefaultScenario returns the 1003-process analytic decay benchmark:
// 1000 slow processes (rate 0.1, population 10000) plus three fast
// processes (rates 1, 2, 3, population 100000 each).
func DefaultScenario() *Scenario {
	return &Scenario{
		Groups: []ProcessGroup{
			{Count: 1000, Population: 10000, Rate: 0.1},
			{Count: 1, Population: 100000, Rate: 1.0},
			{Count: 1, Population: 100000, Rate: 2.0},
			{Count: 1, Population: 100000, Rate: 3.0},
		},
	}
}

func (s *Scenario) validate() error {
	if len(s.Groups) == 0 {
		return fmt.Errorf("at least one process group is required")
	}
	for i, group := range s.Groups {
		if group.Count < 1 {
			return fmt.Errorf("group %d: count must be positive", i)
		}
		if group.Population < 1 {
			return fmt.Errorf("group %d: population must be positive", i)
		}
		if group.Rate <= 0.0 {
			return fmt.Errorf("group %d: rate must be positive", i)
		}
	}
	return nil
}

// Build expands the groups into parallel population and rate slices.
func (s *Scenario) Build() (pops []int, rates []float64) {
	for _, group := range s.Groups {
		for i := 0; i < group.Count; i++ {
			pops = append(pops, group.Population)
			rates = append(rates, group.Rate)
		}
	}
	return pops, rates
}
