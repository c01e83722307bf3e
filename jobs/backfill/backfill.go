// Package backfill replays the historical dataset into the metrics sinks.
package backfill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/renewables/core/dataset"
	coremetrics "github.com/kilianp07/renewables/core/metrics"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/projection"
)

// Options selects the replayed years and what gets projected from them.
type Options struct {
	From      int
	To        int
	Target    float64
	Scenarios []model.Scenario
	Horizon   int
}

// Report counts what was recorded.
type Report struct {
	Years       int
	Snapshots   int
	Projections int
}

// Backfill records the snapshot of every year in [From,To] with the year's
// first instant as timestamp. When scenarios are given, each year is also
// projected from its average renewable share. Sink errors are returned.
func Backfill(ctx context.Context, data *dataset.Dataset, proj projection.Projector, policy projection.Policy, sink coremetrics.ProjectionSink, opts Options) (Report, error) {
	var rep Report
	first, last := data.YearRange()
	if opts.From == 0 {
		opts.From = first
	}
	if opts.To == 0 {
		opts.To = last
	}
	if opts.From > opts.To {
		return rep, fmt.Errorf("empty range %d-%d", opts.From, opts.To)
	}
	if opts.From < first || opts.To > last {
		return rep, fmt.Errorf("range %d-%d outside [%d,%d]", opts.From, opts.To, first, last)
	}
	rec, _ := sink.(coremetrics.SnapshotRecorder)

	for year := opts.From; year <= opts.To; year++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		ts := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		rep.Years++
		if rec != nil {
			ev := coremetrics.SnapshotEvent{Year: year, Summary: dataset.Summarize(data.Snapshot(year)), Time: ts}
			if err := rec.RecordSnapshot(ev); err != nil {
				return rep, fmt.Errorf("snapshot %d: %w", year, err)
			}
			rep.Snapshots++
		}
		for _, sc := range opts.Scenarios {
			in, err := policy.Apply(projection.Input{
				CurrentYear:        year,
				CurrentPercentage:  data.AverageRenewable(year),
				TargetCO2Reduction: opts.Target,
				Scenario:           sc,
				Horizon:            opts.Horizon,
			})
			if err != nil {
				return rep, fmt.Errorf("projection %d/%s: %w", year, sc, err)
			}
			start := time.Now()
			points, err := proj.Project(in)
			if err != nil {
				return rep, fmt.Errorf("projection %d/%s: %w", year, sc, err)
			}
			err = sink.RecordProjection(coremetrics.ProjectionEvent{
				RunID:             uuid.NewString(),
				Year:              year,
				Scenario:          sc,
				CurrentPercentage: in.CurrentPercentage,
				Target:            in.TargetCO2Reduction,
				Points:            points,
				Duration:          time.Since(start),
				Time:              ts,
			})
			if err != nil {
				return rep, fmt.Errorf("record %d/%s: %w", year, sc, err)
			}
			rep.Projections++
		}
	}
	return rep, nil
}
