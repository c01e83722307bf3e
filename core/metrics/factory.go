package metrics

import "github.com/kilianp07/renewables/core/factory"

var sinkRegistry = factory.NewRegistry[ProjectionSink]()

func init() {
	_ = RegisterSink("nop", func(map[string]any) (ProjectionSink, error) {
		return NopSink{}, nil
	})
}

// RegisterSink adds a sink factory identified by name.
func RegisterSink(name string, f factory.Factory[ProjectionSink]) error {
	return sinkRegistry.Register(name, f)
}

// NewProjectionSink builds the configured sinks. No configuration yields a
// NopSink and several yield a MultiSink.
func NewProjectionSink(cfgs []factory.ModuleConfig) (ProjectionSink, error) {
	switch len(cfgs) {
	case 0:
		return NopSink{}, nil
	case 1:
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]ProjectionSink, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
