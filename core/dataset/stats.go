package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/renewables/core/model"
)

// Summary aggregates a snapshot across countries.
type Summary struct {
	Countries              int     `json:"countries"`
	TotalCapacity          float64 `json:"totalCapacity"`
	SolarCapacity          float64 `json:"solarCapacity"`
	WindCapacity           float64 `json:"windCapacity"`
	HydroCapacity          float64 `json:"hydroCapacity"`
	AvgRenewablePercentage float64 `json:"avgRenewablePercentage"`
	TotalCO2Reduction      float64 `json:"totalCo2Reduction"`
}

// Summarize computes capacity totals and the average renewable share.
// An empty snapshot yields a zero Summary.
func Summarize(data []model.EnergyData) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	n := len(data)
	total := make([]float64, n)
	solar := make([]float64, n)
	wind := make([]float64, n)
	hydro := make([]float64, n)
	share := make([]float64, n)
	co2 := make([]float64, n)
	for i, d := range data {
		total[i] = d.Total
		solar[i] = d.Solar
		wind[i] = d.Wind
		hydro[i] = d.Hydro
		share[i] = d.RenewablePercentage
		co2[i] = d.CO2Reduction
	}
	return Summary{
		Countries:              n,
		TotalCapacity:          floats.Sum(total),
		SolarCapacity:          floats.Sum(solar),
		WindCapacity:           floats.Sum(wind),
		HydroCapacity:          floats.Sum(hydro),
		AvgRenewablePercentage: stat.Mean(share, nil),
		TotalCO2Reduction:      floats.Sum(co2),
	}
}
