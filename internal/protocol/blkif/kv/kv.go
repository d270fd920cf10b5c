// Package kv models the out-of-band control namespace as an unordered
// attribute map (key -> value, both strings) and provides the small
// combinator set spec §4.1 describes for decoding typed records out of
// it: require, parse_int, parse_int32, parse_int64. Every decoder in
// this protocol core is built from these and returns a single
// human-readable error naming the first failure — no partial record is
// ever surfaced, matching the first-failure-wins rule in spec §7.
package kv

import (
	"fmt"
	"strconv"
)

// Attrs is an unordered set of (key, value) string pairs scoped under a
// node path. It is the in-memory shape of what the KV store transport
// reads and writes; this package never touches the transport itself.
type Attrs map[string]string

// Tuple is one (domid, path, value) write the Connection emitter and
// other descriptor encoders produce for the caller to apply to the KV
// store.
type Tuple struct {
	DomID int
	Path  string
	Value string
}

// Require fetches key from m, failing with a message naming the missing
// key if absent.
func Require(m Attrs, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("missing %s key", key)
	}
	return v, nil
}

// ParseInt decodes key as a decimal int.
func ParseInt(m Attrs, key string) (int, error) {
	raw, err := Require(m, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not an int: %s", raw)
	}
	return v, nil
}

// ParseInt32 decodes key as a decimal 32-bit int.
func ParseInt32(m Attrs, key string) (int32, error) {
	raw, err := Require(m, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not an int32: %s", raw)
	}
	return int32(v), nil
}

// ParseInt64 decodes key as a decimal 64-bit int.
func ParseInt64(m Attrs, key string) (int64, error) {
	raw, err := Require(m, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an int64: %s", raw)
	}
	return v, nil
}

// ParseUint32 decodes key as a decimal unsigned 32-bit int, used for
// grant references and the ring-ref attribute.
func ParseUint32(m Attrs, key string) (uint32, error) {
	raw, err := Require(m, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not an int: %s", raw)
	}
	return uint32(v), nil
}

// ParseBool decodes key as the xenstore "1"/"0" boolean convention.
func ParseBool(m Attrs, key string) (bool, error) {
	raw, err := Require(m, key)
	if err != nil {
		return false, err
	}
	switch raw {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("not a bool: %s", raw)
	}
}

// Bool renders the xenstore "1"/"0" boolean convention.
func Bool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// IntString renders a decimal int attribute value.
func IntString(v int) string { return strconv.Itoa(v) }

// Int64String renders a decimal 64-bit int attribute value.
func Int64String(v int64) string { return strconv.FormatInt(v, 10) }

// Uint32String renders a decimal unsigned 32-bit int attribute value.
func Uint32String(v uint32) string { return strconv.FormatUint(uint64(v), 10) }
