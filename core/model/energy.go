package model

// EnergyData is the installed renewable capacity of a country for one year.
type EnergyData struct {
	Country             string  `json:"country"`
	Year                int     `json:"year"`
	Solar               float64 `json:"solar"` // GW
	Wind                float64 `json:"wind"`  // GW
	Hydro               float64 `json:"hydro"` // GW
	Total               float64 `json:"total"` // GW, solar+wind+hydro
	RenewablePercentage float64 `json:"renewablePercentage"`
	CO2Reduction        float64 `json:"co2Reduction"`
}

// Capacity returns the sum of the per-source capacities.
func (e EnergyData) Capacity() float64 {
	return e.Solar + e.Wind + e.Hydro
}

// CountryData groups the yearly series of a country, ordered by year.
type CountryData struct {
	Name string       `json:"name"`
	Code string       `json:"code"`
	Data []EnergyData `json:"data"`
}

// Year returns the entry for the given year.
func (c CountryData) Year(year int) (EnergyData, bool) {
	for _, d := range c.Data {
		if d.Year == year {
			return d, true
		}
	}
	return EnergyData{}, false
}

// Latest returns the last entry of the series.
func (c CountryData) Latest() (EnergyData, bool) {
	if len(c.Data) == 0 {
		return EnergyData{}, false
	}
	return c.Data[len(c.Data)-1], true
}
