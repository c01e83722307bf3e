package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/projection"
)

type InputDef struct {
	Year       int     `yaml:"year"`
	Percentage float64 `yaml:"percentage"`
	Target     float64 `yaml:"target"`
	Scenario   string  `yaml:"scenario"`
	Horizon    int     `yaml:"horizon"`
}

func (d InputDef) ToInput() (projection.Input, error) {
	sc, err := model.ParseScenario(d.Scenario)
	if err != nil {
		return projection.Input{}, err
	}
	return projection.Input{
		CurrentYear:        d.Year,
		CurrentPercentage:  d.Percentage,
		TargetCO2Reduction: d.Target,
		Scenario:           sc,
		Horizon:            d.Horizon,
	}, nil
}

type PointDef struct {
	Year      int     `yaml:"year"`
	Renewable float64 `yaml:"renewable"`
	CO2       float64 `yaml:"co2"`
}

type Expected struct {
	Length int        `yaml:"length"`
	Error  string     `yaml:"error,omitempty"`
	Points []PointDef `yaml:"points"`
}

type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Policy      string   `yaml:"policy,omitempty"`
	Input       InputDef `yaml:"input"`
	Expected    Expected `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Scenario) policy() projection.Policy {
	p := projection.DefaultPolicy()
	if s.Policy != "" {
		p.Mode = projection.Mode(s.Policy)
	}
	return p
}
