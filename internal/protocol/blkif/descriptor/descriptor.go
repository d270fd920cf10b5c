// Package descriptor implements the three typed records endpoints
// reconstruct from the KV store at session setup: FeatureIndirect,
// DiskInfo, RingInfo. Each is a value type with a to/from key-value tuple
// list encoding, per spec §4.4.
package descriptor

import (
	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/enum"
	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/kv"
)

// FeatureIndirect advertises the maximum segment count an indirect
// request may carry. Zero means the feature was not advertised.
type FeatureIndirect struct {
	MaxIndirectSegments int
}

// MaxSegmentsFor returns how many Segment records fit across the grant
// references an indirect request of this feature's advertised maximum
// would need, given a page holding segmentsPerPage records. This is a
// pure arithmetic helper; it does not itself bound any wire field.
func (f FeatureIndirect) MaxSegmentsFor(segmentsPerPage int) int {
	if f.MaxIndirectSegments <= 0 || segmentsPerPage <= 0 {
		return 0
	}
	return ((f.MaxIndirectSegments + segmentsPerPage - 1) / segmentsPerPage) * segmentsPerPage
}

// ToAssocList emits feature-max-indirect-segments only when nonzero.
func (f FeatureIndirect) ToAssocList() []kv.Tuple {
	if f.MaxIndirectSegments == 0 {
		return nil
	}
	return []kv.Tuple{
		{Path: "feature-max-indirect-segments", Value: kv.IntString(f.MaxIndirectSegments)},
	}
}

// FeatureIndirectFromAssoc decodes a missing key as zero: encoding is
// symmetric modulo that sentinel.
func FeatureIndirectFromAssoc(attrs kv.Attrs) (FeatureIndirect, error) {
	if _, ok := attrs["feature-max-indirect-segments"]; !ok {
		return FeatureIndirect{}, nil
	}
	n, err := kv.ParseInt(attrs, "feature-max-indirect-segments")
	if err != nil {
		return FeatureIndirect{}, err
	}
	return FeatureIndirect{MaxIndirectSegments: n}, nil
}

// DiskInfo describes the geometry and access mode of a block device.
type DiskInfo struct {
	SectorSize int
	Sectors    int64
	Media      enum.Media
	Mode       enum.Mode
}

// info packs Media (bit 0) and Mode (bit 2) into the single wire word
// the "info" attribute carries, per spec §4.3.
func (d DiskInfo) info() int {
	return d.Media.ToInt() | d.Mode.ToInt()
}

// ToAssocList emits sector-size, sectors, info.
func (d DiskInfo) ToAssocList() []kv.Tuple {
	return []kv.Tuple{
		{Path: "sector-size", Value: kv.IntString(d.SectorSize)},
		{Path: "sectors", Value: kv.Int64String(d.Sectors)},
		{Path: "info", Value: kv.IntString(d.info())},
	}
}

// DiskInfoFromAssoc requires all three keys.
func DiskInfoFromAssoc(attrs kv.Attrs) (DiskInfo, error) {
	sectorSize, err := kv.ParseInt(attrs, "sector-size")
	if err != nil {
		return DiskInfo{}, err
	}
	sectors, err := kv.ParseInt64(attrs, "sectors")
	if err != nil {
		return DiskInfo{}, err
	}
	packed, err := kv.ParseInt(attrs, "info")
	if err != nil {
		return DiskInfo{}, err
	}

	return DiskInfo{
		SectorSize: sectorSize,
		Sectors:    sectors,
		Media:      enum.MediaFromInt(packed),
		Mode:       enum.ModeFromInt(packed),
	}, nil
}

// RingInfo names the shared ring page and event channel a session uses,
// plus the negotiated wire ABI.
type RingInfo struct {
	Ref          uint32
	EventChannel int
	Protocol     enum.Protocol
}

// ToAssocList emits ring-ref, event-channel, protocol.
func (r RingInfo) ToAssocList() []kv.Tuple {
	return []kv.Tuple{
		{Path: "ring-ref", Value: kv.Uint32String(r.Ref)},
		{Path: "event-channel", Value: kv.IntString(r.EventChannel)},
		{Path: "protocol", Value: r.Protocol.ToString()},
	}
}

// RingInfoFromAssoc requires all three keys; an unrecognised protocol
// string is an error.
func RingInfoFromAssoc(attrs kv.Attrs) (RingInfo, error) {
	ref, err := kv.ParseUint32(attrs, "ring-ref")
	if err != nil {
		return RingInfo{}, err
	}
	event, err := kv.ParseInt(attrs, "event-channel")
	if err != nil {
		return RingInfo{}, err
	}
	protoStr, err := kv.Require(attrs, "protocol")
	if err != nil {
		return RingInfo{}, err
	}
	proto, err := enum.ProtocolFromString(protoStr)
	if err != nil {
		return RingInfo{}, err
	}

	return RingInfo{Ref: ref, EventChannel: event, Protocol: proto}, nil
}
