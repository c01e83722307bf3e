package model

// ForecastPoint is one projected year produced by the projection engine.
type ForecastPoint struct {
	Year                int      `json:"year" yaml:"year"`
	Scenario            Scenario `json:"scenario" yaml:"scenario"`
	RenewablePercentage float64  `json:"renewablePercentage" yaml:"renewablePercentage"`
	CO2Reduction        float64  `json:"co2Reduction" yaml:"co2Reduction"`
}
