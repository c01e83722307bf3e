package dataset

import (
	"math"

	"github.com/kilianp07/renewables/core/model"
)

const (
	// FirstYear and LastYear bound the synthetic series.
	FirstYear = 2000
	LastYear  = 2024
)

// wave is a linear trend with a periodic perturbation:
// base + g*slope + fn(i*freq)*amp.
type wave struct {
	base, slope, freq, amp float64
	fn                     func(float64) float64
}

func (w wave) at(i int, g float64) float64 {
	return roundHalfUp(w.base + g*w.slope + w.fn(float64(i)*w.freq)*w.amp)
}

// share grows linearly from base by span and is capped.
type share struct {
	base, span, cap float64
}

func (s share) at(g float64) float64 {
	return math.Min(s.base+g*s.span, s.cap)
}

type profile struct {
	name, code         string
	solar, wind, hydro wave
	renewable          share
	co2                wave
}

var profiles = []profile{
	{
		name: "United States", code: "US",
		solar:     wave{5, 120, 0.3, 10, math.Sin},
		wind:      wave{10, 150, 0.2, 15, math.Cos},
		hydro:     wave{80, 20, 0.1, 5, math.Sin},
		renewable: share{15, 35, 45},
		co2:       wave{0, 25, 0.2, 3, math.Sin},
	},
	{
		name: "China", code: "CN",
		solar:     wave{2, 200, 0.4, 20, math.Sin},
		wind:      wave{5, 180, 0.3, 25, math.Cos},
		hydro:     wave{120, 80, 0.15, 10, math.Sin},
		renewable: share{12, 38, 48},
		co2:       wave{0, 30, 0.2, 4, math.Cos},
	},
	{
		name: "Germany", code: "DE",
		solar:     wave{1, 80, 0.5, 8, math.Sin},
		wind:      wave{8, 90, 0.25, 12, math.Cos},
		hydro:     wave{25, 5, 0.1, 2, math.Sin},
		renewable: share{20, 35, 52},
		co2:       wave{0, 28, 0.3, 3, math.Sin},
	},
	{
		name: "India", code: "IN",
		solar:     wave{1, 90, 0.6, 12, math.Sin},
		wind:      wave{3, 70, 0.35, 10, math.Cos},
		hydro:     wave{40, 25, 0.12, 5, math.Sin},
		renewable: share{8, 28, 35},
		co2:       wave{0, 22, 0.25, 3, math.Cos},
	},
	{
		name: "Brazil", code: "BR",
		solar:     wave{0.5, 40, 0.4, 5, math.Sin},
		wind:      wave{2, 60, 0.3, 8, math.Cos},
		hydro:     wave{200, 50, 0.08, 15, math.Sin},
		renewable: share{75, 10, 83},
		co2:       wave{0, 18, 0.2, 2, math.Sin},
	},
	{
		name: "Japan", code: "JP",
		solar:     wave{3, 75, 0.45, 10, math.Sin},
		wind:      wave{2, 35, 0.3, 5, math.Cos},
		hydro:     wave{95, 10, 0.1, 3, math.Sin},
		renewable: share{18, 22, 38},
		co2:       wave{0, 20, 0.2, 2, math.Cos},
	},
}

// Generate builds the deterministic synthetic capacity series for every
// tracked country from FirstYear to LastYear.
func Generate() []model.CountryData {
	span := LastYear - FirstYear
	out := make([]model.CountryData, 0, len(profiles))
	for _, p := range profiles {
		c := model.CountryData{Name: p.name, Code: p.code, Data: make([]model.EnergyData, 0, span+1)}
		for i := 0; i <= span; i++ {
			g := float64(i) / float64(span)
			d := model.EnergyData{
				Country:             p.name,
				Year:                FirstYear + i,
				Solar:               p.solar.at(i, g),
				Wind:                p.wind.at(i, g),
				Hydro:               p.hydro.at(i, g),
				RenewablePercentage: p.renewable.at(g),
				CO2Reduction:        p.co2.at(i, g),
			}
			d.Total = d.Capacity()
			c.Data = append(c.Data, d)
		}
		out = append(out, c)
	}
	return out
}

// roundHalfUp rounds halves towards +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
