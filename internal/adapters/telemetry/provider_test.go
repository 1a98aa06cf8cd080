package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/postpub/internal/adapters/telemetry"
	"go.trai.ch/postpub/internal/core/domain"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, telemetry.NewOTelTracerWithProvider(tp, "test-tracer")
}

func TestOTelTracer_StartNestsSpans(t *testing.T) {
	sr, tracer := setupRecorder(t)

	ctx, parent := tracer.Start(context.Background(), "render")
	_, child := tracer.Start(ctx, "render.post")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "render.post", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tracer := setupRecorder(t)
	_, span := tracer.Start(context.Background(), "attr-test")

	span.SetAttribute("str", "val")
	span.SetAttribute("int", 123)
	span.SetAttribute("int64", int64(456))
	span.SetAttribute("float", 3.14)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"a", "b"})
	span.SetAttribute("target", domain.TargetStaging)
	span.SetAttribute("unknown", struct{}{})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrMap := make(map[string]any)
	for _, a := range spans[0].Attributes() {
		switch a.Value.Type() {
		case attribute.STRING:
			attrMap[string(a.Key)] = a.Value.AsString()
		case attribute.INT64:
			attrMap[string(a.Key)] = a.Value.AsInt64()
		case attribute.FLOAT64:
			attrMap[string(a.Key)] = a.Value.AsFloat64()
		case attribute.BOOL:
			attrMap[string(a.Key)] = a.Value.AsBool()
		case attribute.STRINGSLICE:
			attrMap[string(a.Key)] = a.Value.AsStringSlice()
		}
	}

	assert.Equal(t, "val", attrMap["str"])
	assert.Equal(t, int64(123), attrMap["int"])
	assert.Equal(t, int64(456), attrMap["int64"])
	assert.InEpsilon(t, 3.14, attrMap["float"], 0.001)
	assert.Equal(t, true, attrMap["bool"])
	assert.Equal(t, []string{"a", "b"}, attrMap["slice"])
	assert.Equal(t, "staging", attrMap["target"])
	assert.Equal(t, "{}", attrMap["unknown"])
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "fails")
	span.RecordError(nil)
	span.RecordError(errors.New("template exploded"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "template exploded", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNewOTelTracer_GlobalProvider(t *testing.T) {
	tracer := telemetry.NewOTelTracer("global")

	ctx, span := tracer.Start(context.Background(), "noop")
	assert.NotNil(t, ctx)
	span.SetAttribute("k", "v")
	span.End()
}
