//go:build debug
// +build debug

package tracer

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TraceDirection indicates the direction of a trace event.
type TraceDirection string

const (
	// TraceIn indicates an incoming request.
	TraceIn TraceDirection = "in"
	// TraceOut indicates an outgoing response.
	TraceOut TraceDirection = "out"
)

// TraceEvent represents a trace event with timing and request information.
type TraceEvent struct {
	TS     time.Time      `json:"ts"`
	Dir    TraceDirection `json:"dir"`
	Method string         `json:"method"`
	Path   string         `json:"path"`
	Remote string         `json:"remote"`
	Status int            `json:"status"`
}

// Tracer traces request events and sends them to a channel.
type Tracer struct {
	ch chan TraceEvent // if nil, emitTrace is a no-op
}

// NewTracer creates a new Tracer with its own event channel.
func NewTracer() *Tracer {
	return &Tracer{
		ch: make(chan TraceEvent, 2000),
	}
}

// NewTracerWithChannel creates a tracer that sends events to the given channel.
// Used to wire the router's trace middleware to the Server's TraceCh.
func NewTracerWithChannel(ch chan TraceEvent) *Tracer {
	return &Tracer{ch: ch}
}

// NewTraceEvent creates a new trace event with the given parameters.
func NewTraceEvent(dir TraceDirection, method string, path string, remote string, status int) TraceEvent {
	return TraceEvent{
		TS:     time.Now(),
		Dir:    dir,
		Method: method,
		Path:   path,
		Remote: remote,
		Status: status,
	}
}

func (t *Tracer) emitTrace(dir TraceDirection, method, path, remote string, status int) {
	if t.ch == nil {
		return
	}

	select {
	case t.ch <- NewTraceEvent(dir, method, path, remote, status):
	default:
	}
}

// Trace records a trace event for the given direction and request data.
func (t *Tracer) Trace(dir TraceDirection, method string, path string, remote string, status int) {
	if remote == "" {
		remote = "unknown"
	}
	log.WithField("caller", "server").Debugf("Trace %s %s %s from %s", dir, method, path, remote)
	t.emitTrace(dir, method, path, remote, status)
}
