package logger

import (
	"fmt"
	"log/slog"
)

// Standard field keys for structured logging across the block protocol
// core. Use these keys consistently so the KV and ring codec log lines
// stay queryable across frontend and backend.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // correlation id assigned by the calling CLI/tool
	KeySpanID  = "span_id"  // sub-step id within a traced operation

	// ========================================================================
	// Session identity
	// ========================================================================
	KeyOperation     = "operation"      // ring Op name, or "connect"/"state"
	KeyVirtualDevice = "virtual_device" // virtual-device identifier
	KeyDomID         = "domid"          // hypervisor domain id
	KeyBackendPath   = "backend_path"   // KV node path of the backend
	KeyFrontendPath  = "frontend_path"  // KV node path of the frontend
	KeyTupleCount    = "tuple_count"    // number of KV tuples emitted/observed
	KeyState         = "state"          // xenbus lifecycle state

	// ========================================================================
	// Ring wire protocol
	// ========================================================================
	KeyProtocol  = "protocol"   // negotiated ABI: x86_64-abi, x86_32-abi, native
	KeyRequestID = "request_id" // Request.ID / Response.ID (ring completion id)
	KeyHandle    = "handle"     // block device handle
	KeySector    = "sector"     // starting sector of a request
	KeyNrSegs    = "nr_segs"    // number of segments in a request
	KeyGrantRef  = "gref"       // grant reference of a segment or indirect page
	KeyRingRef   = "ring_ref"   // grant reference of the shared ring page
	KeyEventChan = "event_channel"
	KeyRsp       = "status" // Rsp tag on a response
	KeySlotBytes = "slot_bytes"
	KeyErrorCode = "error_code"
)

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// DomID returns a slog.Attr for a hypervisor domain id.
func DomID(id int) slog.Attr {
	return slog.Int(KeyDomID, id)
}

// BackendPath returns a slog.Attr for the backend's KV node path.
func BackendPath(p string) slog.Attr {
	return slog.String(KeyBackendPath, p)
}

// FrontendPath returns a slog.Attr for the frontend's KV node path.
func FrontendPath(p string) slog.Attr {
	return slog.String(KeyFrontendPath, p)
}

// TupleCount returns a slog.Attr for the number of KV tuples emitted.
func TupleCount(n int) slog.Attr {
	return slog.Int(KeyTupleCount, n)
}

// State returns a slog.Attr for a xenbus lifecycle state.
func State(s fmt.Stringer) slog.Attr {
	return slog.String(KeyState, s.String())
}

// Protocol returns a slog.Attr for the negotiated ABI string.
func Protocol(p string) slog.Attr {
	return slog.String(KeyProtocol, p)
}

// RequestID returns a slog.Attr for a ring request/response completion id.
func RequestID(id uint64) slog.Attr {
	return slog.Uint64(KeyRequestID, id)
}

// Handle returns a slog.Attr for a block device handle.
func Handle(h uint16) slog.Attr {
	return slog.Any(KeyHandle, h)
}

// Sector returns a slog.Attr for a request's starting sector.
func Sector(s uint64) slog.Attr {
	return slog.Uint64(KeySector, s)
}

// NrSegs returns a slog.Attr for a request's segment count.
func NrSegs(n int) slog.Attr {
	return slog.Int(KeyNrSegs, n)
}

// GrantRef returns a slog.Attr for a grant reference.
func GrantRef(ref uint32) slog.Attr {
	return slog.Any(KeyGrantRef, ref)
}

// RingRef returns a slog.Attr for the shared ring page's grant reference.
func RingRef(ref int) slog.Attr {
	return slog.Int(KeyRingRef, ref)
}

// EventChannel returns a slog.Attr for the negotiated event channel port.
func EventChannel(ch int) slog.Attr {
	return slog.Int(KeyEventChan, ch)
}

// Rsp returns a slog.Attr for a response status tag.
func Rsp(status string) slog.Attr {
	return slog.String(KeyRsp, status)
}

// SlotBytes returns a slog.Attr for an encoded ring slot's byte length.
func SlotBytes(n int) slog.Attr {
	return slog.Int(KeySlotBytes, n)
}
