package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const serviceName = "streamdag-evaluator"

const (
	metricSteps           = "steps.total"
	metricNodesRecomputed = "nodes.recomputed.total"
	metricEmissions       = "emissions.total"
	metricStepDuration    = "step.duration"
)

// Config holds Recorder configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
}

// DefaultConfig returns a Config identifying this core to whatever
// Prometheus scraper or OTel collector the driver points at it.
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
	}
}

// Recorder records the Evaluator's step-level metrics via an OpenTelemetry
// meter backed by a Prometheus exporter. A nil *Recorder is valid and
// every method on it is a no-op — the Evaluator holds telemetry as an
// optional dependency and must not allocate or branch on its presence in
// the hot path beyond a single nil check.
type Recorder struct {
	meterProvider   *sdkmetric.MeterProvider
	meter           metric.Meter
	steps           metric.Int64Counter
	nodesRecomputed metric.Int64Counter
	emissions       metric.Int64Counter
	stepDuration    metric.Float64Histogram
}

// NewRecorder builds a Recorder with a Prometheus exporter wired into a
// fresh MeterProvider, set as the process global. Call Shutdown to flush
// and release the underlying exporter.
func NewRecorder(ctx context.Context, cfg Config) (*Recorder, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			attribute.String("environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	r := &Recorder{
		meterProvider: sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(exporter),
		),
	}
	otel.SetMeterProvider(r.meterProvider)
	r.meter = r.meterProvider.Meter(serviceName)

	if r.steps, err = r.meter.Int64Counter(metricSteps, metric.WithDescription("Total number of Evaluator.Step calls")); err != nil {
		return nil, err
	}
	if r.nodesRecomputed, err = r.meter.Int64Counter(metricNodesRecomputed, metric.WithDescription("Total number of nodes recomputed across all steps")); err != nil {
		return nil, err
	}
	if r.emissions, err = r.meter.Int64Counter(metricEmissions, metric.WithDescription("Total number of steps that emitted a record")); err != nil {
		return nil, err
	}
	if r.stepDuration, err = r.meter.Float64Histogram(metricStepDuration, metric.WithDescription("Evaluator.Step wall-clock duration"), metric.WithUnit("s")); err != nil {
		return nil, err
	}

	return r, nil
}

// RecordStep records one completed Step: how long it took, how many nodes
// it recomputed (excluding Input refresh and skipped Constants), and
// whether it emitted.
func (r *Recorder) RecordStep(ctx context.Context, duration time.Duration, nodesRecomputed int, emitted bool) {
	if r == nil {
		return
	}
	r.steps.Add(ctx, 1)
	r.nodesRecomputed.Add(ctx, int64(nodesRecomputed))
	r.stepDuration.Record(ctx, duration.Seconds())
	if emitted {
		r.emissions.Add(ctx, 1)
	}
}

// Shutdown flushes and releases the underlying meter provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.meterProvider == nil {
		return nil
	}
	if err := r.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	return nil
}
