package enum

// Rsp is the completion status tag carried in a ring response.
type Rsp uint16

const (
	OK           Rsp = 0x0000
	NotSupported Rsp = 0xfffe
	Error        Rsp = 0xffff
)

// RspAbsentWord is the 16-bit sentinel written for "no status". It is
// numerically identical to Error — see spec §9's Open Question. The
// canonical decoder resolves the collision in favor of Some(Error): a
// 0xFFFF word always decodes to Error, never to absent.
const RspAbsentWord uint16 = 0xffff

func (r Rsp) String() string {
	switch r {
	case OK:
		return "ok"
	case NotSupported:
		return "not_supported"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ToWord returns the raw wire tag for a known Rsp.
func (r Rsp) ToWord() uint16 {
	return uint16(r)
}

// RspFromWord decodes a wire tag. An unrecognised tag decodes to
// ok=false ("absent"), never an error. 0xFFFF always resolves to
// Some(Error) per the canonical decoder rule in spec §9.
func RspFromWord(w uint16) (Rsp, bool) {
	switch Rsp(w) {
	case OK, NotSupported, Error:
		return Rsp(w), true
	default:
		return 0, false
	}
}
