package enum

import "fmt"

// Protocol identifies the ABI a ring session negotiated: the width of the
// request/response struct layout the two endpoints agree to use.
type Protocol int

const (
	X86_64 Protocol = iota
	X86_32
	Native
)

// ToString renders the canonical xenstore string for a Protocol.
func (p Protocol) ToString() string {
	switch p {
	case X86_64:
		return "x86_64-abi"
	case X86_32:
		return "x86_32-abi"
	case Native:
		return "native"
	default:
		return ""
	}
}

// ProtocolFromString parses the canonical xenstore string for a Protocol.
// Unlike Mode/Media, this is partial: an unrecognised protocol string is
// an error, per spec §4.2.
func ProtocolFromString(s string) (Protocol, error) {
	switch s {
	case "x86_64-abi":
		return X86_64, nil
	case "x86_32-abi":
		return X86_32, nil
	case "native":
		return Native, nil
	default:
		return 0, fmt.Errorf("unknown protocol: %q", s)
	}
}
