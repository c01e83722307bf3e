package forecast

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/renewables/api/httpx"
	"github.com/kilianp07/renewables/core/dataset"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/projection"
)

func testDeps(p projection.Policy) Deps {
	return Deps{Projector: projection.NewEngine(nil), Data: dataset.Default(), Policy: p}
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestForecastHandlerReference(t *testing.T) {
	h := NewHandler(testDeps(projection.DefaultPolicy()))
	rr := serve(t, h, http.MethodGet, "/api/forecast?year=2024&percentage=30&target=50&scenario=moderate")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var pts []model.ForecastPoint
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pts))
	require.Len(t, pts, projection.DefaultHorizon)
	assert.Equal(t, model.ForecastPoint{Year: 2025, Scenario: model.ScenarioModerate, RenewablePercentage: 30.4, CO2Reduction: 16.7}, pts[0])
	assert.Equal(t, 2035, pts[10].Year)
}

func TestForecastHandlerDefaultsFromDataset(t *testing.T) {
	h := NewHandler(testDeps(projection.DefaultPolicy()))
	rr := serve(t, h, http.MethodGet, "/api/forecast")
	require.Equal(t, http.StatusOK, rr.Code)

	var pts []model.ForecastPoint
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pts))
	require.NotEmpty(t, pts)
	assert.Equal(t, 2025, pts[0].Year)
	assert.Equal(t, 50.8, pts[0].RenewablePercentage)
	assert.Equal(t, 27.9, pts[0].CO2Reduction)
}

func TestForecastHandlerHorizonZero(t *testing.T) {
	h := NewHandler(testDeps(projection.DefaultPolicy()))
	rr := serve(t, h, http.MethodGet, "/api/forecast?percentage=30&horizon=0")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestForecastHandlerCSV(t *testing.T) {
	h := NewHandler(testDeps(projection.DefaultPolicy()))
	rr := serve(t, h, http.MethodGet, "/api/forecast?percentage=30&target=50&horizon=1&format=csv")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, "year,scenario,renewable_percentage,co2_reduction\n2025,moderate,30.4,16.7\n", rr.Body.String())
}

func TestForecastHandlerHTML(t *testing.T) {
	h := NewHandler(testDeps(projection.DefaultPolicy()))
	rr := serve(t, h, http.MethodGet, "/api/forecast?percentage=30&target=50&horizon=2&format=html")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Moderate projection from 2024")
}

func TestForecastHandlerBadRequests(t *testing.T) {
	reject := projection.DefaultPolicy()
	reject.Mode = projection.ModeReject
	h := NewHandler(testDeps(reject))

	cases := map[string]string{
		"bad year":        "/api/forecast?year=abc",
		"bad scenario":    "/api/forecast?scenario=extreme",
		"bad percentage":  "/api/forecast?percentage=x",
		"not finite":      "/api/forecast?percentage=NaN",
		"target rejected": "/api/forecast?percentage=30&target=5",
		"bad format":      "/api/forecast?format=xml",
	}
	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			rr := serve(t, h, http.MethodGet, target)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			var body httpx.ErrorBody
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestForecastHandlerClampsTarget(t *testing.T) {
	h := NewHandler(testDeps(projection.DefaultPolicy()))
	low := serve(t, h, http.MethodGet, "/api/forecast?percentage=30&target=5")
	floor := serve(t, h, http.MethodGet, "/api/forecast?percentage=30&target=10")
	require.Equal(t, http.StatusOK, low.Code)
	assert.Equal(t, floor.Body.String(), low.Body.String())
}

func TestForecastHandlerMethodNotAllowed(t *testing.T) {
	h := NewHandler(testDeps(projection.DefaultPolicy()))
	rr := serve(t, h, http.MethodPost, "/api/forecast")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestOutcomesHandler(t *testing.T) {
	h := NewOutcomesHandler(testDeps(projection.DefaultPolicy()))
	rr := serve(t, h, http.MethodGet, "/api/forecast/outcomes?year=2024&percentage=30&target=50&offsets=6,11,20")
	require.Equal(t, http.StatusOK, rr.Code)

	var out []projection.Outcome
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out, 3)
	assert.True(t, out[0].Found)
	assert.Equal(t, 2030, out[0].Year)
	assert.Equal(t, 32.2, out[0].Point.RenewablePercentage)
	assert.Equal(t, 35.9, out[1].Point.CO2Reduction)
	assert.False(t, out[2].Found)
	assert.Nil(t, out[2].Point)
}

func TestOutcomesHandlerDefaultOffsets(t *testing.T) {
	h := NewOutcomesHandler(testDeps(projection.DefaultPolicy()))
	rr := serve(t, h, http.MethodGet, "/api/forecast/outcomes?percentage=30")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, strings.Count(rr.Body.String(), `"found":true`))

	rr = serve(t, h, http.MethodGet, "/api/forecast/outcomes?offsets=1,a")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
