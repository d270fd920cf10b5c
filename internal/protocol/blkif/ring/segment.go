// Package ring implements bit-exact marshalling of block-protocol request
// and response records into fixed-size ring slots, per spec §4.5 and
// §4.6. All layouts are little-endian; four marshallers cover the
// (32-bit, 64-bit) x (direct, indirect) ABI combinations.
package ring

import (
	"encoding/binary"
	"fmt"

	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/enum"
)

const (
	// SegmentSize is sizeof(Segment) on the wire: identical across ABIs.
	SegmentSize = 8

	// SegmentsPerRequest is the maximum number of Segment records a
	// direct request carries in-line. This is the authoritative
	// constant for direct-request slot sizing (spec §9 Open Questions).
	SegmentsPerRequest = 11

	// MaxSegmentsPerRequest is a larger constant the wire format
	// reserves but which marshalling at this layer does not use; an
	// outer component may give it a different meaning. See spec §9.
	MaxSegmentsPerRequest = 256

	// SegmentsPerIndirectPage is the number of Segment records a page
	// named by an indirect grant reference holds.
	SegmentsPerIndirectPage = 512

	// GrantRefsPerIndirectRequest is the maximum number of indirect
	// grant references carried in an indirect request's payload.
	GrantRefsPerIndirectRequest = 8

	// GrantRefSize is sizeof(uint32) on the wire.
	GrantRefSize = 4
)

// Segment names one contiguous run of sectors within a page shared via a
// grant reference. Layout is identical across ABIs:
// { u32 gref; u8 first_sector; u8 last_sector; u16 padding }.
type Segment struct {
	GRef        uint32
	FirstSector uint8
	LastSector  uint8
}

func writeSegment(b []byte, s Segment) {
	binary.LittleEndian.PutUint32(b[0:4], s.GRef)
	b[4] = s.FirstSector
	b[5] = s.LastSector
	b[6] = 0
	b[7] = 0
}

func readSegment(b []byte) Segment {
	return Segment{
		GRef:        binary.LittleEndian.Uint32(b[0:4]),
		FirstSector: b[4],
		LastSector:  b[5],
	}
}

func requireLen(buf []byte, n int, what string) error {
	if len(buf) < n {
		return fmt.Errorf("%s: buffer too short: need %d bytes, have %d", what, n, len(buf))
	}
	return nil
}

// encodeOp returns the raw wire byte for an optional Op: the tag itself
// if present, or the 0xFF absent sentinel.
func encodeOp(op enum.Op, present bool) uint8 {
	if !present {
		return enum.OpAbsentByte
	}
	return op.ToByte()
}

// decodeOp reads an optional Op from a wire byte; an unrecognised tag
// (including 0xFF) decodes to absent, never an error.
func decodeOp(b uint8) (enum.Op, bool) {
	return enum.OpFromByte(b)
}
