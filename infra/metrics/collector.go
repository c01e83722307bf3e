package metrics

import (
	"context"

	coremetrics "github.com/kilianp07/renewables/core/metrics"
	"github.com/kilianp07/renewables/core/session"
	"github.com/kilianp07/renewables/infra/logger"
	"github.com/kilianp07/renewables/internal/eventbus"
)

// StartCollector records every session update to sink until ctx is done or
// the bus is closed. The returned channel is closed when the collector
// exits.
func StartCollector(ctx context.Context, bus *eventbus.Bus[session.Update], sink coremetrics.ProjectionSink, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-sub:
				if !ok {
					return
				}
				record(sink, u, log)
			}
		}
	}()
	return done
}

func record(sink coremetrics.ProjectionSink, u session.Update, log logger.Logger) {
	err := sink.RecordProjection(coremetrics.ProjectionEvent{
		RunID:             u.ID,
		Year:              u.Year,
		Scenario:          u.Scenario,
		CurrentPercentage: u.CurrentPercentage,
		Target:            u.Target,
		Points:            u.Points,
		Duration:          u.Duration,
		Time:              u.Time,
	})
	if err != nil {
		log.Errorf("record projection %s: %v", u.ID, err)
	}
	if rec, ok := sink.(coremetrics.SnapshotRecorder); ok {
		if err := rec.RecordSnapshot(coremetrics.SnapshotEvent{Year: u.Year, Summary: u.Summary, Time: u.Time}); err != nil {
			log.Errorf("record snapshot %d: %v", u.Year, err)
		}
	}
}
