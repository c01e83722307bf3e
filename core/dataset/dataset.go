// Package dataset serves the historical renewable capacity series and the
// aggregates derived from it.
package dataset

import (
	"github.com/kilianp07/renewables/core/model"
)

// Dataset is an immutable collection of country series.
type Dataset struct {
	countries []model.CountryData
	minYear   int
	maxYear   int
}

// New returns a dataset over countries. Series must be ordered by year.
func New(countries []model.CountryData) *Dataset {
	d := &Dataset{countries: countries}
	first := true
	for _, c := range countries {
		for _, e := range c.Data {
			if first || e.Year < d.minYear {
				d.minYear = e.Year
			}
			if first || e.Year > d.maxYear {
				d.maxYear = e.Year
			}
			first = false
		}
	}
	return d
}

// Default returns the generated synthetic dataset.
func Default() *Dataset { return New(Generate()) }

// YearRange returns the first and last year covered by any country.
func (d *Dataset) YearRange() (first, last int) { return d.minYear, d.maxYear }

// ClampYear bounds year to the covered range.
func (d *Dataset) ClampYear(year int) int {
	if year < d.minYear {
		return d.minYear
	}
	if year > d.maxYear {
		return d.maxYear
	}
	return year
}

// Countries returns the series of every country.
func (d *Dataset) Countries() []model.CountryData {
	out := make([]model.CountryData, len(d.countries))
	copy(out, d.countries)
	return out
}

// Country returns the series for an ISO code.
func (d *Dataset) Country(code string) (model.CountryData, bool) {
	for _, c := range d.countries {
		if c.Code == code {
			return c, true
		}
	}
	return model.CountryData{}, false
}

// Snapshot returns one entry per country for year. Countries without an
// entry for year contribute their last known entry; empty series are
// skipped.
func (d *Dataset) Snapshot(year int) []model.EnergyData {
	out := make([]model.EnergyData, 0, len(d.countries))
	for _, c := range d.countries {
		if e, ok := c.Year(year); ok {
			out = append(out, e)
			continue
		}
		if e, ok := c.Latest(); ok {
			out = append(out, e)
		}
	}
	return out
}

// AverageRenewable is the mean renewable percentage of Snapshot(year).
func (d *Dataset) AverageRenewable(year int) float64 {
	return Summarize(d.Snapshot(year)).AvgRenewablePercentage
}
