//go:build !debug
// +build !debug

// Package tracer provides request tracing functionality (release build, no-op).
package tracer

import "time"

// TraceDirection indicates the direction of a trace event.
type TraceDirection string

const (
	// TraceIn indicates an incoming request.
	TraceIn TraceDirection = "in"
	// TraceOut indicates an outgoing response.
	TraceOut TraceDirection = "out"
)

// TraceEvent represents a trace event. In release builds it has the same shape as in debug
type TraceEvent struct {
	TS     time.Time
	Dir    TraceDirection
	Method string
	Path   string
	Remote string
	Status int
}

// Tracer is a no-op tracer in release builds.
type Tracer struct{}

// NewTracer creates a new no-op tracer.
func NewTracer() *Tracer { return &Tracer{} }

// NewTracerWithChannel returns a no-op tracer in release builds.
func NewTracerWithChannel(ch chan TraceEvent) *Tracer { return &Tracer{} }

// Trace is a no-op in release builds.
func (t *Tracer) Trace(dir TraceDirection, method string, path string, remote string, status int) {}

// NewTraceEvent creates a new trace event. In release builds, returns an empty event.
func NewTraceEvent(dir TraceDirection, method string, path string, remote string, status int) TraceEvent {
	return TraceEvent{}
}
