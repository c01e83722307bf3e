// Package infra holds the adapters behind the core interfaces: the zerolog
// logger, the Prometheus and InfluxDB sinks and the MQTT publisher and
// subscriber. Nothing under core imports these packages.
package infra
