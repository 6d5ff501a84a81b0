// Package telemetry provides an OpenTelemetry-backed Recorder for the
// Evaluator's step-level metrics: how many steps ran, how many nodes they
// recomputed, how many emitted, and how long each step took.
//
// This is trimmed to this core's much smaller observability surface — no
// tracing, no HTTP or workflow-success metrics, since the Evaluator has no
// child spans to start and Step never errors. What remains is the
// Provider/Recorder shape: an OpenTelemetry MeterProvider backed by the
// Prometheus exporter, built once and passed into the Evaluator as an
// optional dependency.
package telemetry
