// Package telemetry configures OpenTelemetry tracing.
//
// Packages create their tracers with otel.Tracer at init time; spans are
// dropped until Setup installs a provider that exports to an OTLP/HTTP
// collector.
package telemetry
