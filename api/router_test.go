package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/renewables/api/forecast"
	"github.com/kilianp07/renewables/core/dataset"
	"github.com/kilianp07/renewables/core/projection"
)

func TestRouter(t *testing.T) {
	mux := NewRouter(Options{Forecast: forecast.Deps{
		Projector: projection.NewEngine(nil),
		Data:      dataset.Default(),
		Policy:    projection.DefaultPolicy(),
	}})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	for path, want := range map[string]int{
		"/api/forecast":          http.StatusOK,
		"/api/forecast/outcomes": http.StatusOK,
		"/api/countries":         http.StatusOK,
		"/api/countries/BR":      http.StatusOK,
		"/api/stats":             http.StatusOK,
		"/api/timeline":          http.StatusNotFound,
		"/healthz":               http.StatusOK,
	} {
		resp, err := http.Get(srv.URL + path)
		if !assert.NoError(t, err, path) {
			continue
		}
		_ = resp.Body.Close()
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

func TestRouterToken(t *testing.T) {
	mux := NewRouter(Options{Token: "secret", Forecast: forecast.Deps{
		Projector: projection.NewEngine(nil),
		Data:      dataset.Default(),
		Policy:    projection.DefaultPolicy(),
	}})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
