package export

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/srt2video/internal/director"
)

// WriteScenario writes a scenario to a YAML file
func WriteScenario(scenario *director.Scenario, path string) error {
	data, err := yaml.Marshal(scenario)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadScenario reads a scenario from a YAML file
func ReadScenario(path string) (*director.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario director.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}
