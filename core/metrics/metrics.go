package metrics

import (
	"time"

	"github.com/kilianp07/renewables/core/dataset"
	"github.com/kilianp07/renewables/core/model"
)

// ProjectionEvent describes one engine run.
type ProjectionEvent struct {
	RunID             string
	Year              int
	Scenario          model.Scenario
	CurrentPercentage float64
	Target            float64
	Points            []model.ForecastPoint
	Duration          time.Duration
	Time              time.Time
}

// ProjectionSink records projection runs.
type ProjectionSink interface {
	RecordProjection(ev ProjectionEvent) error
}

// SnapshotEvent carries the historical aggregates of the selected year.
type SnapshotEvent struct {
	Year    int
	Summary dataset.Summary
	Time    time.Time
}

// SnapshotRecorder records historical aggregates.
type SnapshotRecorder interface {
	RecordSnapshot(ev SnapshotEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordProjection(ProjectionEvent) error { return nil }
func (NopSink) RecordSnapshot(SnapshotEvent) error     { return nil }
