package parfill

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer for fill calls.
//
// No SDK is installed here; spans are recorded only when the application
// registers a tracer provider with otel.SetTracerProvider.
var tracer = otel.Tracer("github.com/arloliu/parfill")

// startFillSpan creates a span for one fill call.
func startFillSpan(ctx context.Context, runID string, mode Mode, length, workers int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Filler.Fill",
		trace.WithAttributes(
			attribute.String("fill.run_id", runID),
			attribute.String("fill.mode", mode.String()),
			attribute.Int("fill.length", length),
			attribute.Int("fill.requested_workers", workers),
		),
	)
}

// endFillSpan sets the result attributes on a fill span and ends it.
func endFillSpan(span trace.Span, workers int, err error) {
	span.SetAttributes(
		attribute.Int("fill.workers", workers),
		attribute.Bool("fill.success", err == nil),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
