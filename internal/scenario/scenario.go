// Package scenario holds the role-play situations a learner can practice.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"
)

//go:embed data/scenarios.yml
var scenariosYAML []byte

var ErrUnknownScenario = errors.New("unknown scenario")

type Scenario struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon" yaml:"icon"`
	Greeting    string   `json:"greeting" yaml:"greeting"`
	Prompts     []string `json:"-" yaml:"prompts"`
}

type Catalog struct {
	scenarios []Scenario
}

// NewCatalog loads the bundled scenarios
func NewCatalog() (*Catalog, error) {
	var scenarios []Scenario
	if err := yaml.Unmarshal(scenariosYAML, &scenarios); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(scenarios) > %w", err)
	}
	return &Catalog{scenarios: scenarios}, nil
}

func (c *Catalog) All() []Scenario {
	result := make([]Scenario, len(c.scenarios))
	copy(result, c.scenarios)
	return result
}

func (c *Catalog) Find(id string) (Scenario, error) {
	for _, scenario := range c.scenarios {
		if scenario.ID == id {
			return scenario, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %s", ErrUnknownScenario, id)
}

// RandomPrompt picks one of the role-play situations of a scenario
func (c *Catalog) RandomPrompt(id string, rng *rand.Rand) (string, error) {
	scenario, err := c.Find(id)
	if err != nil {
		return "", err
	}
	if len(scenario.Prompts) == 0 {
		return "", nil
	}
	return scenario.Prompts[rng.Intn(len(scenario.Prompts))], nil
}

// Introduction is the first assistant message of a scenario: a random
// situation followed by the greeting, or the greeting alone when the
// scenario has no situations.
func (c *Catalog) Introduction(id string, rng *rand.Rand) (string, error) {
	scenario, err := c.Find(id)
	if err != nil {
		return "", err
	}
	prompt, err := c.RandomPrompt(id, rng)
	if err != nil {
		return "", err
	}
	if prompt == "" {
		return scenario.Greeting, nil
	}
	return fmt.Sprintf("🎭 **Situation:** %s\n\n%s", prompt, scenario.Greeting), nil
}
