package ring

import (
	"encoding/binary"

	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/enum"
)

// abi carries the header-size knowledge that differs between the 32-bit
// and 64-bit struct layouts. Everything else (segment layout, sentinel
// values, read algorithm) is ABI-independent.
type abi struct {
	width            int
	directHeaderSize int
	idOff            int  // offset of the 8-byte id field in the direct header
	sectorOff        int  // offset of the 8-byte sector field in the direct header
	indirectPad1     bool // 64-bit ABI inserts a 4-byte pad word after the indirect nr_segs
}

var abi64 = abi{width: 64, directHeaderSize: 24, idOff: 8, sectorOff: 16, indirectPad1: true}
var abi32 = abi{width: 32, directHeaderSize: 20, idOff: 4, sectorOff: 12, indirectPad1: false}

func (a abi) indirectHeaderSize() int {
	if a.indirectPad1 {
		return 28
	}
	return 24
}

// slotSize is the fixed per-slot footprint for this ABI: the direct
// header plus room for the maximum direct segment count, per spec §4.5.
// Indirect requests are written into a slot of the same size.
func (a abi) slotSize() int {
	return a.directHeaderSize + SegmentSize*SegmentsPerRequest
}

// writeDirect encodes a direct-form request into buf, which must be at
// least a.slotSize() bytes.
func (a abi) writeDirect(buf []byte, req Request) (uint64, error) {
	if err := requireLen(buf, a.slotSize(), "writeDirect"); err != nil {
		return 0, err
	}
	if len(req.Segs.DirectSegs) != req.NrSegs {
		return 0, errSegCountMismatch(req.NrSegs, len(req.Segs.DirectSegs))
	}
	if req.NrSegs > SegmentsPerRequest {
		return 0, errTooManySegments(req.NrSegs)
	}

	buf[0] = encodeOp(req.Op, req.OpPresent)
	buf[1] = uint8(req.NrSegs)
	binary.LittleEndian.PutUint16(buf[2:4], req.Handle)
	if a.idOff > 4 {
		binary.LittleEndian.PutUint32(buf[4:a.idOff], 0) // padding
	}
	binary.LittleEndian.PutUint64(buf[a.idOff:a.idOff+8], req.ID)
	binary.LittleEndian.PutUint64(buf[a.sectorOff:a.sectorOff+8], req.Sector)

	off := a.directHeaderSize
	for _, seg := range req.Segs.DirectSegs {
		writeSegment(buf[off:off+SegmentSize], seg)
		off += SegmentSize
	}
	return req.ID, nil
}

// writeIndirect encodes an indirect-form request into buf, which must be
// at least a.slotSize() bytes.
func (a abi) writeIndirect(buf []byte, req Request) (uint64, error) {
	if err := requireLen(buf, a.slotSize(), "writeIndirect"); err != nil {
		return 0, err
	}
	if len(req.Segs.IndirectGrefs) > GrantRefsPerIndirectRequest {
		return 0, errTooManyGrefs(len(req.Segs.IndirectGrefs))
	}

	hdr := a.indirectHeaderSize()
	buf[0] = indirectOpByte
	buf[1] = encodeOp(req.Op, req.OpPresent)
	binary.LittleEndian.PutUint16(buf[2:4], uint16(req.NrSegs))

	pos := 4
	if a.indirectPad1 {
		binary.LittleEndian.PutUint32(buf[pos:pos+4], 0)
		pos += 4
	}
	binary.LittleEndian.PutUint64(buf[pos:pos+8], req.ID)
	pos += 8
	binary.LittleEndian.PutUint64(buf[pos:pos+8], req.Sector)
	pos += 8
	binary.LittleEndian.PutUint16(buf[pos:pos+2], req.Handle)
	pos += 2
	binary.LittleEndian.PutUint16(buf[pos:pos+2], 0) // padding2
	pos += 2
	if pos != hdr {
		return 0, errHeaderLayout(hdr, pos)
	}

	off := hdr
	for _, gref := range req.Segs.IndirectGrefs {
		binary.LittleEndian.PutUint32(buf[off:off+GrantRefSize], gref)
		off += GrantRefSize
	}
	return req.ID, nil
}

// readRequest implements the shared read algorithm of spec §4.5: sniff
// the op byte, and reinterpret the slot as indirect only if it reads
// IndirectOp.
func (a abi) readRequest(buf []byte) (Request, error) {
	if err := requireLen(buf, a.slotSize(), "readRequest"); err != nil {
		return Request{}, err
	}

	if buf[0] == indirectOpByte {
		hdr := a.indirectHeaderSize()
		nrSegs := int(binary.LittleEndian.Uint16(buf[2:4]))

		pos := 4
		if a.indirectPad1 {
			pos += 4
		}
		id := binary.LittleEndian.Uint64(buf[pos : pos+8])
		pos += 8
		sector := binary.LittleEndian.Uint64(buf[pos : pos+8])
		pos += 8
		handle := binary.LittleEndian.Uint16(buf[pos : pos+2])
		pos += 2
		pos += 2 // padding2

		op, present := decodeOp(buf[1])

		n := nrGrefs(nrSegs)
		if hdr+n*GrantRefSize > len(buf) {
			return Request{}, errGrefsOverflow(n, len(buf)-hdr)
		}
		grefs := make([]uint32, n)
		off := hdr
		for i := 0; i < n; i++ {
			grefs[i] = binary.LittleEndian.Uint32(buf[off : off+GrantRefSize])
			off += GrantRefSize
		}

		return Request{
			Op: op, OpPresent: present,
			Handle: handle, ID: id, Sector: sector,
			NrSegs: nrSegs,
			Segs:   IndirectGrants(grefs),
		}, nil
	}

	op, present := decodeOp(buf[0])
	nrSegs := int(buf[1])
	handle := binary.LittleEndian.Uint16(buf[2:4])
	id := binary.LittleEndian.Uint64(buf[a.idOff : a.idOff+8])
	sector := binary.LittleEndian.Uint64(buf[a.sectorOff : a.sectorOff+8])

	if nrSegs > SegmentsPerRequest {
		return Request{}, errTooManySegments(nrSegs)
	}
	segs := make([]Segment, nrSegs)
	off := a.directHeaderSize
	for i := 0; i < nrSegs; i++ {
		segs[i] = readSegment(buf[off : off+SegmentSize])
		off += SegmentSize
	}

	return Request{
		Op: op, OpPresent: present,
		Handle: handle, ID: id, Sector: sector,
		NrSegs: nrSegs,
		Segs:   DirectSegments(segs),
	}, nil
}

// indirectOpByte is the raw wire tag for enum.IndirectOp.
var indirectOpByte = enum.IndirectOp.ToByte()
