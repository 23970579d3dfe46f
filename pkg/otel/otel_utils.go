package otel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type KeyValue = attribute.KeyValue

func String(key string, val string) KeyValue {
	return attribute.String(key, val)
}

func Int(key string, val int) KeyValue {
	return attribute.Int(key, val)
}

func Bool(key string, val bool) KeyValue {
	return attribute.Bool(key, val)
}

// stageMetric measures how long each document stage takes per backend.
type stageMetric struct {
	stage    string
	provider string

	duration metric.Float64Histogram
}

func newStageMetric(stage, provider string) *stageMetric {
	duration, _ := otel.Meter(instrumentationName).Float64Histogram(
		"document.stage.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of a document pipeline stage"),
	)

	return &stageMetric{
		stage:    stage,
		provider: provider,

		duration: duration,
	}
}

func (m *stageMetric) start(ctx context.Context, name string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, name+" "+m.provider)

	span.SetAttributes(
		String("document.stage", m.stage),
		String("document.provider", m.provider),
	)

	return ctx, span
}

func (m *stageMetric) record(ctx context.Context, span trace.Span, started time.Time, err error) {
	attrs := []KeyValue{
		String("document.stage", m.stage),
		String("document.provider", m.provider),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		attrs = append(attrs, String("error.type", fmt.Sprintf("%T", err)))
	}

	if m.duration != nil {
		m.duration.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(attrs...))
	}
}
