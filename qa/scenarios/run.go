package scenarios

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	coremetrics "github.com/kilianp07/renewables/core/metrics"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/projection"
	"github.com/kilianp07/renewables/infra/metrics"
)

// RunScenario projects sc through the policy, a cached engine and a
// Prometheus sink, then checks the expected points and gauges.
func RunScenario(t *testing.T, sc *Scenario) {
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry("", reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}

	in, err := sc.Input.ToInput()
	if err == nil {
		in, err = sc.policy().Apply(in)
	}
	proj := projection.NewCache(projection.NewEngine(nil), 4)
	var first, second int
	if err == nil {
		pts, perr := proj.Project(in)
		if perr != nil {
			err = perr
		} else {
			first = len(pts)
			again, _ := proj.Project(in)
			second = len(again)
			checkPoints(t, sc, pts)
			if rerr := sink.RecordProjection(coremetrics.ProjectionEvent{
				RunID: sc.Name, Year: in.CurrentYear, Scenario: in.Scenario, Points: pts, Time: time.Unix(0, 0),
			}); rerr != nil {
				t.Fatalf("record: %v", rerr)
			}
		}
	}

	if sc.Expected.Error != "" {
		if err == nil || !strings.Contains(err.Error(), sc.Expected.Error) {
			t.Fatalf("scenario %s expected error containing %q, got %v", sc.Name, sc.Expected.Error, err)
		}
		return
	}
	if err != nil {
		t.Fatalf("scenario %s: %v", sc.Name, err)
	}
	if first != sc.Expected.Length || second != first {
		t.Errorf("scenario %s expected %d points, got %d then %d", sc.Name, sc.Expected.Length, first, second)
	}
	for _, p := range sc.Expected.Points {
		offset := strconv.Itoa(p.Year - in.CurrentYear)
		v, ok := gauge(t, reg, "projection_renewable_percent", in.Scenario.String(), offset)
		if !ok || v != p.Renewable {
			t.Errorf("scenario %s gauge offset %s = %v (found %v), want %v", sc.Name, offset, v, ok, p.Renewable)
		}
	}
}

func checkPoints(t *testing.T, sc *Scenario, pts []model.ForecastPoint) {
	t.Helper()
	for _, want := range sc.Expected.Points {
		got, ok := projection.At(pts, want.Year)
		if !ok {
			t.Errorf("scenario %s missing year %d", sc.Name, want.Year)
			continue
		}
		if got.RenewablePercentage != want.Renewable || got.CO2Reduction != want.CO2 {
			t.Errorf("scenario %s year %d got %.1f/%.1f want %.1f/%.1f", sc.Name, want.Year,
				got.RenewablePercentage, got.CO2Reduction, want.Renewable, want.CO2)
		}
	}
}

func gauge(t *testing.T, reg *prometheus.Registry, name, scenario, offset string) (float64, bool) {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if label(m, "scenario") == scenario && label(m, "offset") == offset {
				return m.GetGauge().GetValue(), true
			}
		}
	}
	return 0, false
}

func label(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}
