package metrics

import "errors"

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []ProjectionSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...ProjectionSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordProjection forwards ev to every sink. All sinks are tried; the
// errors are joined.
func (m *MultiSink) RecordProjection(ev ProjectionEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordProjection(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordSnapshot forwards ev to the sinks that support it.
func (m *MultiSink) RecordSnapshot(ev SnapshotEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if rec, ok := s.(SnapshotRecorder); ok {
			if err := rec.RecordSnapshot(ev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes the sinks that hold resources.
func (m *MultiSink) Close() {
	for _, s := range m.Sinks {
		if c, ok := s.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
