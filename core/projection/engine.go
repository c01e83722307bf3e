package projection

import (
	"math"

	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/scenario"
)

// DefaultHorizon is the number of projected years when none is given.
const DefaultHorizon = 11

const (
	baselineTarget = 50.0
	minMultiplier  = 0.5
	maxMultiplier  = 2.0
	// co2 reduction grows by 10% of the target per projected year
	horizonAcceleration = 0.1
)

// Input is the current state a projection starts from.
type Input struct {
	CurrentYear        int
	CurrentPercentage  float64
	TargetCO2Reduction float64
	Scenario           model.Scenario
	// Horizon is the number of future years; values <= 0 yield no points.
	Horizon int
}

// NewInput returns an Input with the default horizon.
func NewInput(year int, percentage, target float64, s model.Scenario) Input {
	return Input{
		CurrentYear:        year,
		CurrentPercentage:  percentage,
		TargetCO2Reduction: target,
		Scenario:           s,
		Horizon:            DefaultHorizon,
	}
}

// Projector produces forecast sequences.
type Projector interface {
	Project(in Input) ([]model.ForecastPoint, error)
}

// Engine is the reference Projector backed by a scenario catalog.
type Engine struct {
	catalog *scenario.Catalog
}

// NewEngine returns an engine using catalog, or the default catalog when nil.
func NewEngine(catalog *scenario.Catalog) *Engine {
	if catalog == nil {
		catalog = scenario.Default()
	}
	return &Engine{catalog: catalog}
}

// Project returns one point per year from CurrentYear+1 to
// CurrentYear+Horizon. The only error is an unknown scenario.
func (e *Engine) Project(in Input) ([]model.ForecastPoint, error) {
	cfg, err := e.catalog.Resolve(in.Scenario)
	if err != nil {
		return nil, err
	}
	if in.Horizon <= 0 {
		return []model.ForecastPoint{}, nil
	}
	rate := 1 + cfg.GrowthRate*TargetMultiplier(in.TargetCO2Reduction)/100
	ceiling := cfg.CeilingPercent()

	points := make([]model.ForecastPoint, in.Horizon)
	for i := 1; i <= in.Horizon; i++ {
		renewable := math.Min(in.CurrentPercentage*math.Pow(rate, float64(i)), ceiling)
		co2 := math.Min(
			renewable/100*in.TargetCO2Reduction*(1+float64(i)*horizonAcceleration),
			in.TargetCO2Reduction,
		)
		points[i-1] = model.ForecastPoint{
			Year:                in.CurrentYear + i,
			Scenario:            in.Scenario,
			RenewablePercentage: Round1(renewable),
			CO2Reduction:        Round1(co2),
		}
	}
	return points, nil
}

// TargetMultiplier scales a reduction target around the 50% baseline,
// bounded to [0.5, 2].
func TargetMultiplier(target float64) float64 {
	return math.Max(minMultiplier, math.Min(maxMultiplier, target/baselineTarget))
}

// Round1 rounds v to one decimal, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

var defaultEngine = NewEngine(nil)

// Project runs the default engine.
func Project(currentYear int, currentPercentage, targetCO2Reduction float64, s model.Scenario, horizon int) ([]model.ForecastPoint, error) {
	return defaultEngine.Project(Input{
		CurrentYear:        currentYear,
		CurrentPercentage:  currentPercentage,
		TargetCO2Reduction: targetCO2Reduction,
		Scenario:           s,
		Horizon:            horizon,
	})
}
