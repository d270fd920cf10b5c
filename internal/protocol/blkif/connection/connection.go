// Package connection emits the initial KV tree that wires a frontend to a
// backend, per spec §3 and §4.3.
package connection

import (
	"strconv"

	"github.com/gsfyrakis/mirage-block-xen/internal/logger"
	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/enum"
	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/kv"
)

// Connection describes the static identity and negotiated shape of a
// block device session, as agreed before any ring traffic flows.
type Connection struct {
	VirtualDevice string
	BackendPath   string
	FrontendPath  string
	BackendDomID  int
	FrontendDomID int
	Mode          enum.Mode
	Media         enum.Media
	Removable     bool
}

// Emit flattens a Connection into the (domid, path, value) tuples the
// caller must write to the KV store to bring a session into the
// Initialising state. The order of attribute writes within a node is
// unspecified by the protocol; Emit returns them in a fixed, readable
// order for determinism in logs and tests.
func (c Connection) Emit() []kv.Tuple {
	tuples := make([]kv.Tuple, 0, 14)

	// Two empty parent nodes.
	tuples = append(tuples,
		kv.Tuple{DomID: c.BackendDomID, Path: c.BackendPath, Value: ""},
		kv.Tuple{DomID: c.FrontendDomID, Path: c.FrontendPath, Value: ""},
	)

	// Backend child attributes.
	tuples = append(tuples,
		kv.Tuple{DomID: c.BackendDomID, Path: c.BackendPath + "/frontend", Value: c.FrontendPath},
		kv.Tuple{DomID: c.BackendDomID, Path: c.BackendPath + "/frontend-id", Value: strconv.Itoa(c.FrontendDomID)},
		kv.Tuple{DomID: c.BackendDomID, Path: c.BackendPath + "/online", Value: "1"},
		kv.Tuple{DomID: c.BackendDomID, Path: c.BackendPath + "/removable", Value: kv.Bool(c.Removable)},
		kv.Tuple{DomID: c.BackendDomID, Path: c.BackendPath + "/state", Value: strconv.Itoa(enum.Initialising.ToInt())},
		kv.Tuple{DomID: c.BackendDomID, Path: c.BackendPath + "/mode", Value: c.Mode.ToString()},
	)

	// Frontend child attributes.
	tuples = append(tuples,
		kv.Tuple{DomID: c.FrontendDomID, Path: c.FrontendPath + "/backend", Value: c.BackendPath},
		kv.Tuple{DomID: c.FrontendDomID, Path: c.FrontendPath + "/backend-id", Value: strconv.Itoa(c.BackendDomID)},
		kv.Tuple{DomID: c.FrontendDomID, Path: c.FrontendPath + "/state", Value: strconv.Itoa(enum.Initialising.ToInt())},
		kv.Tuple{DomID: c.FrontendDomID, Path: c.FrontendPath + "/virtual-device", Value: c.VirtualDevice},
		kv.Tuple{DomID: c.FrontendDomID, Path: c.FrontendPath + "/device-type", Value: c.Media.ToString()},
	)

	logger.Debug("emitted connection tuples",
		logger.BackendPath(c.BackendPath),
		logger.FrontendPath(c.FrontendPath),
		logger.TupleCount(len(tuples)),
	)

	return tuples
}
