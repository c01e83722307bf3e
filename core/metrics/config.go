package metrics

import "github.com/kilianp07/renewables/core/factory"

// Config lists the sinks to build. Address, when set, serves the
// Prometheus registry.
type Config struct {
	Sinks   []factory.ModuleConfig `json:"sinks" yaml:"sinks"`
	Address string                 `json:"address" yaml:"address"`
}
