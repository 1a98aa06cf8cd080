package ports

import "context"

// Tracer opens spans around renders and preview requests.
type Tracer interface {
	// Start opens a span named name as a child of the span in ctx, if any.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is an open unit of traced work.
type Span interface {
	// End closes the span. Later calls have no effect.
	End()
	// RecordError marks the span failed with err. A nil err is ignored.
	RecordError(err error)
	// SetAttribute attaches a value to the span. Slices and Stringers are supported.
	SetAttribute(key string, value any)
}
