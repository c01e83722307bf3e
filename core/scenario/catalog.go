// Package scenario holds the growth-policy presets consumed by the
// projection engine. A Catalog is immutable once built.
package scenario

import (
	"errors"
	"fmt"

	"github.com/kilianp07/renewables/core/model"
)

// ErrUnknownScenario is returned when a scenario kind has no configuration.
var ErrUnknownScenario = errors.New("unknown scenario")

// Config describes the growth policy of a scenario.
type Config struct {
	Kind model.Scenario
	// GrowthRate is the base yearly growth in percent.
	GrowthRate float64
	// Ceiling is the saturation limit as a fraction of 100.
	Ceiling float64
}

// CeilingPercent returns the ceiling expressed as a percentage.
func (c Config) CeilingPercent() float64 { return c.Ceiling * 100 }

// Override replaces the constants of a scenario. Zero fields keep the
// default value.
type Override struct {
	GrowthRate float64 `json:"growth_rate"`
	Ceiling    float64 `json:"ceiling"`
}

var defaults = [...]Config{
	model.ScenarioConservative: {Kind: model.ScenarioConservative, GrowthRate: 0.8, Ceiling: 0.75},
	model.ScenarioModerate:     {Kind: model.ScenarioModerate, GrowthRate: 1.2, Ceiling: 0.85},
	model.ScenarioAggressive:   {Kind: model.ScenarioAggressive, GrowthRate: 1.8, Ceiling: 0.95},
}

// Catalog maps every scenario to its configuration.
type Catalog struct {
	configs [len(defaults)]Config
}

// Default returns the catalog with the reference constants.
func Default() *Catalog {
	return &Catalog{configs: defaults}
}

// New builds a catalog from the defaults and the given overrides keyed by
// scenario identifier.
func New(overrides map[string]Override) (*Catalog, error) {
	c := Default()
	for name, o := range overrides {
		kind, err := model.ParseScenario(name)
		if err != nil {
			return nil, fmt.Errorf("scenario override: %w", err)
		}
		cfg := c.configs[kind]
		if o.GrowthRate != 0 {
			cfg.GrowthRate = o.GrowthRate
		}
		if o.Ceiling != 0 {
			cfg.Ceiling = o.Ceiling
		}
		c.configs[kind] = cfg
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the value ranges and that both constants grow with the
// ambition of the scenario.
func (c *Catalog) Validate() error {
	for _, cfg := range c.configs {
		if cfg.GrowthRate <= 0 {
			return fmt.Errorf("scenario %s: growth rate must be positive", cfg.Kind)
		}
		if cfg.Ceiling <= 0 || cfg.Ceiling > 1 {
			return fmt.Errorf("scenario %s: ceiling must be in (0,1]", cfg.Kind)
		}
	}
	for i := 1; i < len(c.configs); i++ {
		prev, cur := c.configs[i-1], c.configs[i]
		if cur.GrowthRate < prev.GrowthRate || cur.Ceiling < prev.Ceiling {
			return fmt.Errorf("scenario %s must not grow slower than %s", cur.Kind, prev.Kind)
		}
	}
	return nil
}

// Resolve returns the configuration of kind.
func (c *Catalog) Resolve(kind model.Scenario) (Config, error) {
	if !kind.Valid() {
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownScenario, int(kind))
	}
	return c.configs[kind], nil
}

// All returns the configurations in scenario order.
func (c *Catalog) All() []Config {
	out := make([]Config, len(c.configs))
	copy(out, c.configs[:])
	return out
}
