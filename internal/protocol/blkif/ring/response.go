package ring

import (
	"encoding/binary"

	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/enum"
)

// ResponseSize is sizeof(Response) on the wire, identical across ABIs:
// { u64 id; u8 op; u8 padding; u16 st }, per spec §4.6.
const ResponseSize = 12

// WriteResponse encodes a response into buf, which must be at least
// ResponseSize bytes.
func WriteResponse(buf []byte, resp Response) error {
	if err := requireLen(buf, ResponseSize, "WriteResponse"); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(buf[0:8], resp.ID)
	buf[8] = encodeOp(resp.Op, resp.OpPresent)
	buf[9] = 0 // padding
	binary.LittleEndian.PutUint16(buf[10:12], encodeRsp(resp.St, resp.StPresent))
	return nil
}

// ReadResponse decodes a response from buf. An unrecognised op byte or st
// word decodes to absent (OpPresent/StPresent false). The 0xFFFF st word,
// which is also the sentinel written for an absent status, always
// resolves to (enum.Error, true) rather than absent, since Error occupies
// that value.
func ReadResponse(buf []byte) (Response, error) {
	if err := requireLen(buf, ResponseSize, "ReadResponse"); err != nil {
		return Response{}, err
	}
	id := binary.LittleEndian.Uint64(buf[0:8])
	op, opPresent := decodeOp(buf[8])
	st, stPresent := decodeRsp(binary.LittleEndian.Uint16(buf[10:12]))
	return Response{Op: op, OpPresent: opPresent, St: st, StPresent: stPresent, ID: id}, nil
}

func encodeRsp(st enum.Rsp, present bool) uint16 {
	if !present {
		return enum.RspAbsentWord
	}
	return st.ToWord()
}

func decodeRsp(w uint16) (enum.Rsp, bool) {
	return enum.RspFromWord(w)
}
