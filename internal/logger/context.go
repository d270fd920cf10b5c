package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// logContextKey is the key for LogContext in context.Context
var logContextKey = contextKey{}

// LogContext holds request-scoped logging context for a single ring
// operation or KV handshake step.
type LogContext struct {
	TraceID      string    // correlation id assigned by the CLI/caller
	SpanID       string    // sub-step id within a traced operation
	Operation    string    // ring Op name (read, write, flush, ...) or "connect"/"state"
	VirtualDevice string   // virtual-device identifier of the session
	DomID        int       // domain id of the endpoint emitting the log
	StartTime    time.Time // for duration calculation
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext creates a new LogContext for the given domain id.
func NewLogContext(domID int) *LogContext {
	return &LogContext{
		DomID:     domID,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	return &LogContext{
		TraceID:       lc.TraceID,
		SpanID:        lc.SpanID,
		Operation:     lc.Operation,
		VirtualDevice: lc.VirtualDevice,
		DomID:         lc.DomID,
		StartTime:     lc.StartTime,
	}
}

// WithOperation returns a copy with the operation set
func (lc *LogContext) WithOperation(op string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.Operation = op
	}
	return clone
}

// WithVirtualDevice returns a copy with the virtual device set
func (lc *LogContext) WithVirtualDevice(vdev string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.VirtualDevice = vdev
	}
	return clone
}

// WithTrace returns a copy with trace info set
func (lc *LogContext) WithTrace(traceID, spanID string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.TraceID = traceID
		clone.SpanID = spanID
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}
