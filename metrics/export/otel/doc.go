// Package otel provides OpenTelemetry metric exporter bindings for soilauth
// counters.
//
// [NewOTelExporter] registers an Int64ObservableCounter instrument for each
// soilauth metric. A single callback reads
// [soilauth.Session.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate session state.
package otel
