// Package tracer provides a lightweight tracing abstraction for directory lookups.
//
// The interface does not depend directly on OpenTelemetry APIs, so the
// directory client can emit spans while staying decoupled from a specific
// tracing backend.
//
// Implementations:
//   - NoopTracer: default, and for tests
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording err when non-nil.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	// The returned context carries the span and should be passed to child operations.
	//
	//   ctx, span := t.Start(ctx, tracer.SpanProfileByName,
	//       tracer.String(tracer.AttrUsername, name),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float64 attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names used by the directory client.
const (
	SpanProfileByName = "directory.profile_by_name"
	SpanProfileByID   = "directory.profile_by_id"
)

// Attribute keys used by the directory client.
const (
	AttrUsername   = "player.username"
	AttrPlayerID   = "player.id"
	AttrHTTPStatus = "http.status_code"
	AttrOutcome    = "directory.outcome"
	AttrLatency    = "directory.latency_ms"
)

// Event names used by the directory client.
const (
	EventResponseReceived = "directory.response_received"
)
