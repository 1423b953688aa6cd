package openai

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type diagnosisMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestErrors   metric.Int64Counter
	rateLimitWait   metric.Float64Histogram
}

// Initialized once; Diagnose runs on concurrent request goroutines.
var diagMetricsOnce sync.Once
var diagMetricsInit = false
var diagMetrics diagnosisMetrics

func ensureDiagnosisMetrics() {
	diagMetricsOnce.Do(initDiagnosisMetrics)
}

func initDiagnosisMetrics() {
	meter := otel.Meter("github.com/dento-health/dento-portal/backend/openai")

	requestCount, err := meter.Int64Counter(
		"ai.diagnosis.request.count",
		metric.WithDescription("Number of AI diagnosis requests"),
	)
	if err != nil {
		return
	}
	requestDuration, err := meter.Float64Histogram(
		"ai.diagnosis.request.duration",
		metric.WithDescription("AI diagnosis request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}
	requestErrors, err := meter.Int64Counter(
		"ai.diagnosis.request.errors",
		metric.WithDescription("Number of AI diagnosis request errors"),
	)
	if err != nil {
		return
	}
	rateLimitWait, err := meter.Float64Histogram(
		"ai.diagnosis.rate_limit.wait",
		metric.WithDescription("Time spent waiting for the AI rate limiter in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}

	diagMetrics = diagnosisMetrics{
		requestCount:    requestCount,
		requestDuration: requestDuration,
		requestErrors:   requestErrors,
		rateLimitWait:   rateLimitWait,
	}
	diagMetricsInit = true
}

func recordDiagnosisMetric(ctx context.Context, model string, statusCode int, duration time.Duration, err error) {
	ensureDiagnosisMetrics()
	if !diagMetricsInit {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "openai"),
		attribute.String("ai.model", model),
	}
	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	diagMetrics.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	diagMetrics.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		diagMetrics.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

func recordDiagnosisRateLimitWait(ctx context.Context, model string, wait time.Duration) {
	ensureDiagnosisMetrics()
	if !diagMetricsInit {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "openai"),
		attribute.String("ai.model", model),
	}
	diagMetrics.rateLimitWait.Record(ctx, float64(wait.Milliseconds()), metric.WithAttributes(attrs...))
}
