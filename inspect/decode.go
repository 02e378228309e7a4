// Package inspect decodes the raw byte-array-of-byte-arrays payloads returned
// by read-only contract inspections into typed values.
//
// Decoding is declarative: callers state the expected shape and mismatches
// fail closed, rather than ad hoc indexing that returns silently wrong zeros.
package inspect

import "fmt"

// Status is the transport-level outcome of an inspection call.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Result is the raw outcome of a read-only contract inspection: an overall
// status plus one byte sequence per returned value (per tuple component for
// compound returns).
type Result struct {
	Status Status

	// Error carries the chain's failure detail when Status is not success.
	Error string

	// Slots are the returned byte sequences, in return order.
	Slots [][]byte
}

// Decode interprets a raw inspection result per the declared shape.
//
// A non-success status short-circuits before any payload bytes are read. An
// empty slot list on success is reported as a distinct empty-result error,
// never coerced into a default value. Decode is pure and safe for concurrent
// use.
func Decode(res Result, shape Shape) (Value, error) {
	if res.Status != StatusSuccess {
		msg := fmt.Sprintf("inspection call failed (status %q)", string(res.Status))
		if res.Error != "" {
			msg += ": " + res.Error
		}
		return Value{}, newError(KindDecode, "CYV-DEC-001", msg)
	}
	if len(res.Slots) == 0 {
		return Value{}, newError(KindDecode, "CYV-DEC-002",
			fmt.Sprintf("empty result: shape %s expects %d byte sequence(s)", shape, shape.SlotCount()))
	}
	v, rest, err := decodeShape(res.Slots, shape, "result")
	if err != nil {
		return Value{}, err
	}
	if len(rest) > 0 {
		return Value{}, newError(KindDecode, "CYV-DEC-003",
			fmt.Sprintf("shape %s consumed %d byte sequence(s), %d left over",
				shape, shape.SlotCount(), len(rest)))
	}
	return v, nil
}

func decodeShape(slots [][]byte, shape Shape, path string) (Value, [][]byte, error) {
	switch shape.Kind() {
	case ShapeBool, ShapeUInt64:
		if len(slots) == 0 {
			return Value{}, nil, newError(KindDecode, "CYV-DEC-003",
				fmt.Sprintf("%s: expected a byte sequence for %s, none left", path, shape))
		}
		v, err := decodeScalar(slots[0], shape, path)
		if err != nil {
			return Value{}, nil, err
		}
		return v, slots[1:], nil
	case ShapeTuple:
		elems := make([]Value, 0, len(shape.elems))
		rest := slots
		for i, es := range shape.elems {
			v, r, err := decodeShape(rest, es, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, nil, err
			}
			elems = append(elems, v)
			rest = r
		}
		return tupleValue(elems), rest, nil
	default:
		return Value{}, nil, newError(KindDecode, "CYV-DEC-003",
			fmt.Sprintf("%s: invalid shape", path))
	}
}

func decodeScalar(slot []byte, shape Shape, path string) (Value, error) {
	switch shape.Kind() {
	case ShapeBool:
		if len(slot) != 1 {
			return Value{}, newError(KindDecode, "CYV-DEC-003",
				fmt.Sprintf("%s: bool slot must be exactly 1 byte, got %d", path, len(slot)))
		}
		switch slot[0] {
		case 0:
			return boolValue(false), nil
		case 1:
			return boolValue(true), nil
		default:
			// On-chain booleans are canonically 0/1; anything else is a
			// protocol divergence, not a truthy value.
			return Value{}, newError(KindDecode, "CYV-DEC-004",
				fmt.Sprintf("%s: invalid bool byte 0x%02x", path, slot[0]))
		}
	case ShapeUInt64:
		var v uint64
		for i, b := range slot {
			if i >= 8 {
				if b != 0 {
					return Value{}, newError(KindDecode, "CYV-DEC-003",
						fmt.Sprintf("%s: uint64 slot of %d bytes overflows 64 bits", path, len(slot)))
				}
				continue
			}
			v |= uint64(b) << (8 * i)
		}
		return uint64Value(v), nil
	default:
		return Value{}, newError(KindDecode, "CYV-DEC-003",
			fmt.Sprintf("%s: %s is not a scalar shape", path, shape))
	}
}
