// Package api assembles the HTTP routes of the service.
package api

import (
	"net/http"

	"github.com/kilianp07/renewables/api/countries"
	"github.com/kilianp07/renewables/api/forecast"
	"github.com/kilianp07/renewables/api/httpx"
	"github.com/kilianp07/renewables/api/timeline"
)

// Options configures NewRouter. Timeline may be nil.
type Options struct {
	Forecast forecast.Deps
	Timeline timeline.Controller
	Token    string
}

// NewRouter returns the API mux.
func NewRouter(o Options) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, h http.Handler) {
		mux.Handle(pattern, httpx.RequireToken(o.Token, h))
	}
	handle("/api/forecast", forecast.NewHandler(o.Forecast))
	handle("/api/forecast/outcomes", forecast.NewOutcomesHandler(o.Forecast))
	if o.Forecast.Data != nil {
		handle("/api/countries", countries.NewSnapshotHandler(o.Forecast.Data))
		handle("/api/countries/{code}", countries.NewCountryHandler(o.Forecast.Data))
		handle("/api/stats", countries.NewStatsHandler(o.Forecast.Data))
	}
	if o.Timeline != nil {
		handle("/api/timeline", timeline.NewHandler(o.Timeline))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
