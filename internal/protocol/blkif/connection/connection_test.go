package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/enum"
	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/kv"
)

func TestEmit_ConcreteScenario(t *testing.T) {
	c := Connection{
		VirtualDevice: "51712",
		BackendPath:   "/b",
		FrontendPath:  "/f",
		BackendDomID:  0,
		FrontendDomID: 1,
		Mode:          enum.ReadWrite,
		Media:         enum.Disk,
		Removable:     false,
	}

	tuples := c.Emit()

	assert.Contains(t, tuples, kv.Tuple{DomID: 0, Path: "/b/state", Value: "1"})
	assert.Contains(t, tuples, kv.Tuple{DomID: 0, Path: "/b/mode", Value: "w"})
	assert.Contains(t, tuples, kv.Tuple{DomID: 1, Path: "/f/device-type", Value: "disk"})
	assert.Contains(t, tuples, kv.Tuple{DomID: 1, Path: "/f/state", Value: "1"})
	assert.Contains(t, tuples, kv.Tuple{DomID: 1, Path: "/f/backend", Value: "/b"})
}

func TestEmit_BackendAndFrontendAttributes(t *testing.T) {
	c := Connection{
		VirtualDevice: "51712",
		BackendPath:   "/local/domain/0/backend/vbd/1/51712",
		FrontendPath:  "/local/domain/1/device/vbd/51712",
		BackendDomID:  0,
		FrontendDomID: 1,
		Mode:          enum.ReadOnly,
		Media:         enum.CDROM,
		Removable:     true,
	}

	tuples := c.Emit()

	assert.Contains(t, tuples, kv.Tuple{DomID: 0, Path: c.BackendPath + "/frontend", Value: c.FrontendPath})
	assert.Contains(t, tuples, kv.Tuple{DomID: 0, Path: c.BackendPath + "/frontend-id", Value: "1"})
	assert.Contains(t, tuples, kv.Tuple{DomID: 0, Path: c.BackendPath + "/removable", Value: "1"})
	assert.Contains(t, tuples, kv.Tuple{DomID: 0, Path: c.BackendPath + "/mode", Value: "r"})
	assert.Contains(t, tuples, kv.Tuple{DomID: 1, Path: c.FrontendPath + "/backend-id", Value: "0"})
	assert.Contains(t, tuples, kv.Tuple{DomID: 1, Path: c.FrontendPath + "/virtual-device", Value: "51712"})
	assert.Contains(t, tuples, kv.Tuple{DomID: 1, Path: c.FrontendPath + "/device-type", Value: "cdrom"})
}
