// Package prometheus provides a Prometheus text-exposition exporter for
// soilauth metrics.
//
// [NewPrometheusExporter] accepts a [soilauth.Session] and exposes an
// [http.Handler] that renders all soilauth counters. Counter names are
// prefixed soilauth_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate session state.
package prometheus
