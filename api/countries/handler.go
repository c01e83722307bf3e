// Package countries exposes the historical dataset over HTTP.
package countries

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/kilianp07/renewables/api/httpx"
	"github.com/kilianp07/renewables/core/dataset"
	"github.com/kilianp07/renewables/core/model"
)

// SnapshotResponse is the body of GET /api/countries.
type SnapshotResponse struct {
	Year      int                `json:"year"`
	Countries []model.EnergyData `json:"countries"`
}

// StatsResponse is the body of GET /api/stats.
type StatsResponse struct {
	Year int `json:"year"`
	dataset.Summary
}

// NewSnapshotHandler serves GET /api/countries?year=.
func NewSnapshotHandler(data *dataset.Dataset) http.Handler {
	return httpx.GetOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, err := yearParam(r, data)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, SnapshotResponse{Year: year, Countries: data.Snapshot(year)})
	}))
}

// NewStatsHandler serves GET /api/stats?year=.
func NewStatsHandler(data *dataset.Dataset) http.Handler {
	return httpx.GetOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, err := yearParam(r, data)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, StatsResponse{Year: year, Summary: dataset.Summarize(data.Snapshot(year))})
	}))
}

// NewCountryHandler serves GET /api/countries/{code} with the full series.
func NewCountryHandler(data *dataset.Dataset) http.Handler {
	return httpx.GetOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(r.PathValue("code"))
		c, ok := data.Country(code)
		if !ok {
			httpx.WriteError(w, http.StatusNotFound, fmt.Errorf("unknown country %q", code))
			return
		}
		httpx.WriteJSON(w, http.StatusOK, c)
	}))
}

func yearParam(r *http.Request, data *dataset.Dataset) (int, error) {
	first, last := data.YearRange()
	year, err := httpx.IntParam(r, "year", last)
	if err != nil {
		return 0, err
	}
	if year < first || year > last {
		return 0, fmt.Errorf("year %d outside [%d,%d]", year, first, last)
	}
	return year, nil
}
