// Package metrics defines the sinks projection runs are recorded to.
// Concrete Prometheus and InfluxDB sinks live in infra/metrics and register
// themselves with the factory; NewProjectionSink wraps several configured
// sinks in a MultiSink.
package metrics
