package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	for _, s := range Scenarios {
		got, err := ParseScenario(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseScenario("optimistic")
	assert.Error(t, err)
	_, err = ParseScenario("Moderate")
	assert.Error(t, err, "identifiers are case sensitive")
}

func TestScenarioJSON(t *testing.T) {
	b, err := json.Marshal(ForecastPoint{Year: 2025, Scenario: ScenarioAggressive, RenewablePercentage: 30.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"year":2025,"scenario":"aggressive","renewablePercentage":30.5,"co2Reduction":0}`, string(b))

	var p ForecastPoint
	require.NoError(t, json.Unmarshal(b, &p))
	assert.Equal(t, ScenarioAggressive, p.Scenario)

	assert.Error(t, json.Unmarshal([]byte(`{"scenario":"bogus"}`), &p))
	_, err = json.Marshal(ForecastPoint{Scenario: Scenario(7)})
	assert.Error(t, err)
}

func TestScenarioValid(t *testing.T) {
	assert.True(t, ScenarioModerate.Valid())
	assert.False(t, Scenario(-1).Valid())
	assert.False(t, Scenario(3).Valid())
	assert.Equal(t, "unknown", Scenario(3).String())
}

func TestCountryDataLookup(t *testing.T) {
	c := CountryData{Name: "X", Data: []EnergyData{{Year: 2000}, {Year: 2001, Solar: 1, Wind: 2, Hydro: 3}}}
	d, ok := c.Year(2001)
	require.True(t, ok)
	assert.Equal(t, 6.0, d.Capacity())
	_, ok = c.Year(1999)
	assert.False(t, ok)
	last, ok := c.Latest()
	require.True(t, ok)
	assert.Equal(t, 2001, last.Year)
	_, ok = CountryData{}.Latest()
	assert.False(t, ok)
}
