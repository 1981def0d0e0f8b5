package otel

import (
	"context"
	"errors"
	"testing"

	soilauth "github.com/soilsmart/soilauth"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type fakeSource struct {
	snapshot soilauth.MetricsSnapshot
	dropped  uint64
}

func (s *fakeSource) MetricsSnapshot() soilauth.MetricsSnapshot { return s.snapshot }
func (s *fakeSource) AuditDropped() uint64                      { return s.dropped }

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	values := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				values[m.Name] = dp.Value
			}
		}
	}
	return values
}

func TestOTelExporterObservesCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	source := &fakeSource{
		snapshot: soilauth.MetricsSnapshot{
			Counters: map[soilauth.MetricID]uint64{
				soilauth.MetricLoginSuccess:  5,
				soilauth.MetricSignUpSuccess: 1,
			},
		},
		dropped: 2,
	}

	exporter, err := NewOTelExporterFromSource(provider.Meter("soilauth-test"), source)
	if err != nil {
		t.Fatalf("NewOTelExporterFromSource failed: %v", err)
	}
	defer func() { _ = exporter.Close() }()

	values := collect(t, reader)
	if values["soilauth_login_success_total"] != 5 {
		t.Fatalf("login counter = %d, want 5", values["soilauth_login_success_total"])
	}
	if values["soilauth_signup_success_total"] != 1 {
		t.Fatalf("signup counter = %d, want 1", values["soilauth_signup_success_total"])
	}
	if values["soilauth_audit_dropped_total"] != 2 {
		t.Fatalf("dropped counter = %d, want 2", values["soilauth_audit_dropped_total"])
	}

	// A fresh collect sees updated values.
	source.snapshot.Counters[soilauth.MetricLoginSuccess] = 9
	values = collect(t, reader)
	if values["soilauth_login_success_total"] != 9 {
		t.Fatalf("login counter after update = %d, want 9", values["soilauth_login_success_total"])
	}
}

func TestOTelExporterNilArguments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	if _, err := NewOTelExporterFromSource(nil, &fakeSource{}); !errors.Is(err, ErrNilMeter) {
		t.Fatalf("nil meter = %v, want ErrNilMeter", err)
	}
	if _, err := NewOTelExporterFromSource(provider.Meter("soilauth-test"), nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("nil source = %v, want ErrNilSource", err)
	}
}

func TestOTelExporterCloseUnregisters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	source := &fakeSource{
		snapshot: soilauth.MetricsSnapshot{
			Counters: map[soilauth.MetricID]uint64{soilauth.MetricLogout: 4},
		},
	}

	exporter, err := NewOTelExporterFromSource(provider.Meter("soilauth-test"), source)
	if err != nil {
		t.Fatalf("NewOTelExporterFromSource failed: %v", err)
	}
	if err := exporter.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := exporter.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	values := collect(t, reader)
	if _, ok := values["soilauth_logout_total"]; ok {
		t.Fatalf("counter still observed after Close")
	}

	var nilExporter *OTelExporter
	if err := nilExporter.Close(); err != nil {
		t.Fatalf("nil exporter Close = %v", err)
	}
}
