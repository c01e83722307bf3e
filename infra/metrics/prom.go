package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/renewables/core/metrics"
)

// PromSink exposes projection results as Prometheus metrics.
type PromSink struct {
	runs      *prometheus.CounterVec
	renewable *prometheus.GaugeVec
	co2       *prometheus.GaugeVec
	duration  prometheus.Histogram
	share     prometheus.Gauge
	capacity  *prometheus.GaugeVec
}

// NewPromSink registers the metrics on the default registerer.
func NewPromSink(namespace string) (*PromSink, error) {
	return NewPromSinkWithRegistry(namespace, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the metrics on reg, reusing collectors
// that are already registered. A nil reg uses the default registerer.
func NewPromSinkWithRegistry(namespace string, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{}
	var err error
	if s.runs, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projection_runs_total",
		Help:      "Number of projections computed",
	}, []string{"scenario"})); err != nil {
		return nil, err
	}
	if s.renewable, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "projection_renewable_percent",
		Help:      "Projected renewable share by years from the selected year",
	}, []string{"scenario", "offset"})); err != nil {
		return nil, err
	}
	if s.co2, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "projection_co2_reduction_percent",
		Help:      "Projected CO2 reduction by years from the selected year",
	}, []string{"scenario", "offset"})); err != nil {
		return nil, err
	}
	if s.duration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "projection_duration_seconds",
		Help:      "Time spent computing a projection",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
	})); err != nil {
		return nil, err
	}
	if s.share, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "historical_renewable_avg_percent",
		Help:      "Average renewable share across countries for the selected year",
	})); err != nil {
		return nil, err
	}
	if s.capacity, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "historical_capacity_gigawatts",
		Help:      "Installed capacity across countries for the selected year",
	}, []string{"source"})); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordProjection counts the run and sets one gauge per projected year.
func (s *PromSink) RecordProjection(ev coremetrics.ProjectionEvent) error {
	sc := ev.Scenario.String()
	s.runs.WithLabelValues(sc).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	// offsets beyond a shorter horizon must not keep older values
	s.renewable.DeletePartialMatch(prometheus.Labels{"scenario": sc})
	s.co2.DeletePartialMatch(prometheus.Labels{"scenario": sc})
	for _, p := range ev.Points {
		off := strconv.Itoa(p.Year - ev.Year)
		s.renewable.WithLabelValues(sc, off).Set(p.RenewablePercentage)
		s.co2.WithLabelValues(sc, off).Set(p.CO2Reduction)
	}
	return nil
}

// RecordSnapshot sets the historical gauges.
func (s *PromSink) RecordSnapshot(ev coremetrics.SnapshotEvent) error {
	s.share.Set(ev.Summary.AvgRenewablePercentage)
	s.capacity.WithLabelValues("solar").Set(ev.Summary.SolarCapacity)
	s.capacity.WithLabelValues("wind").Set(ev.Summary.WindCapacity)
	s.capacity.WithLabelValues("hydro").Set(ev.Summary.HydroCapacity)
	s.capacity.WithLabelValues("total").Set(ev.Summary.TotalCapacity)
	return nil
}
