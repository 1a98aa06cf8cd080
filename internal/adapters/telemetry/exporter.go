package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/postpub/internal/core/ports"
)

// InstrumentationName names the tracer handed to the rest of the program.
const InstrumentationName = "go.trai.ch/postpub"

// LogExporter writes one debug line per finished span, so timings show up with
// --verbose without a collector.
type LogExporter struct {
	logger ports.Logger
}

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

// NewLogExporter creates an exporter writing to logger.
func NewLogExporter(logger ports.Logger) *LogExporter {
	return &LogExporter{logger: logger}
}

// ExportSpans logs each span with its attributes, duration and failure status.
func (e *LogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		e.logger.Debug(FormatSpan(span))
	}
	return nil
}

// Shutdown has nothing to release.
func (e *LogExporter) Shutdown(context.Context) error {
	return nil
}

// FormatSpan renders a span as "name key=value ... (duration)".
func FormatSpan(span sdktrace.ReadOnlySpan) string {
	parts := []string{"span " + span.Name()}

	attrs := make([]string, 0, len(span.Attributes()))
	for _, kv := range span.Attributes() {
		attrs = append(attrs, fmt.Sprintf("%s=%s", kv.Key, kv.Value.Emit()))
	}
	slices.Sort(attrs)
	parts = append(parts, attrs...)

	if span.Status().Code == codes.Error {
		parts = append(parts, "failed")
	}

	elapsed := span.EndTime().Sub(span.StartTime()).Round(time.Microsecond)
	parts = append(parts, "("+elapsed.String()+")")
	return strings.Join(parts, " ")
}

// NewProvider creates a tracer provider exporting synchronously to exporter.
func NewProvider(exporter sdktrace.SpanExporter) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
}
