// Package forecast exposes projections over HTTP.
package forecast

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kilianp07/renewables/api/httpx"
	"github.com/kilianp07/renewables/core/dataset"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/projection"
	"github.com/kilianp07/renewables/core/scenario"
	"github.com/kilianp07/renewables/pkg/export"
)

// Defaults applied to missing query parameters.
const (
	DefaultYear   = 2024
	DefaultTarget = 50.0
)

// Deps groups what the handlers need.
type Deps struct {
	Projector projection.Projector
	Data      *dataset.Dataset
	Policy    projection.Policy
}

type request struct {
	in      projection.Input
	offsets []int
	format  string
}

// NewHandler serves GET /api/forecast.
func NewHandler(d Deps) http.Handler {
	return httpx.GetOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := parse(r, d)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err)
			return
		}
		points, err := d.project(req.in)
		if err != nil {
			httpx.WriteError(w, statusFor(err), err)
			return
		}
		switch req.format {
		case "csv":
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=forecast-%d-%s.csv", req.in.CurrentYear, req.in.Scenario))
			if err := export.WriteCSV(w, points); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		case "html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			title := export.ChartTitle(req.in.CurrentYear, req.in.Scenario, req.in.TargetCO2Reduction)
			if err := export.WriteForecastChart(w, title, points); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		default:
			httpx.WriteJSON(w, http.StatusOK, points)
		}
	}))
}

// NewOutcomesHandler serves GET /api/forecast/outcomes.
func NewOutcomesHandler(d Deps) http.Handler {
	return httpx.GetOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := parse(r, d)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err)
			return
		}
		points, err := d.project(req.in)
		if err != nil {
			httpx.WriteError(w, statusFor(err), err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, projection.Outcomes(points, req.in.CurrentYear, req.offsets...))
	}))
}

func (d Deps) project(in projection.Input) ([]model.ForecastPoint, error) {
	in, err := d.Policy.Apply(in)
	if err != nil {
		return nil, err
	}
	pts, err := d.Projector.Project(in)
	if err != nil {
		return nil, err
	}
	if pts == nil {
		pts = []model.ForecastPoint{}
	}
	return pts, nil
}

func parse(r *http.Request, d Deps) (request, error) {
	var req request
	q := r.URL.Query()
	year, err := httpx.IntParam(r, "year", DefaultYear)
	if err != nil {
		return req, err
	}
	horizon, err := httpx.IntParam(r, "horizon", projection.DefaultHorizon)
	if err != nil {
		return req, err
	}
	target, ok, err := httpx.FloatParam(r, "target")
	if err != nil {
		return req, err
	}
	if !ok {
		target = DefaultTarget
	}
	pct, ok, err := httpx.FloatParam(r, "percentage")
	if err != nil {
		return req, err
	}
	if !ok {
		if d.Data == nil {
			return req, errors.New("percentage is required")
		}
		pct = d.Data.AverageRenewable(d.Data.ClampYear(year))
	}
	sc := model.ScenarioModerate
	if s := q.Get("scenario"); s != "" {
		if sc, err = model.ParseScenario(s); err != nil {
			return req, err
		}
	}
	if s := q.Get("offsets"); s != "" {
		for _, part := range strings.Split(s, ",") {
			off, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return req, &httpx.ParamError{Name: "offsets", Value: s}
			}
			req.offsets = append(req.offsets, off)
		}
	}
	switch f := q.Get("format"); f {
	case "", "json", "csv", "html":
		req.format = f
	default:
		return req, &httpx.ParamError{Name: "format", Value: f}
	}
	req.in = projection.Input{
		CurrentYear:        year,
		CurrentPercentage:  pct,
		TargetCO2Reduction: target,
		Scenario:           sc,
		Horizon:            horizon,
	}
	return req, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, projection.ErrPercentageOutOfRange),
		errors.Is(err, projection.ErrTargetOutOfRange),
		errors.Is(err, projection.ErrHorizonTooLarge),
		errors.Is(err, projection.ErrNotFinite),
		errors.Is(err, scenario.ErrUnknownScenario):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
