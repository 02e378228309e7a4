package message

import (
	"encoding/binary"
	"fmt"

	"cyphra.co/verify/protocol"
)

// Field is one named, byte-bearing value of a canonical message.
//
// Fields are immutable values; construct a fresh one per call. The zero Field
// is not valid; use the constructors.
type Field struct {
	Name string
	Kind protocol.FieldKind

	str string
	raw []byte
	num uint64
}

// Utf8 returns a field whose bytes are the UTF-8 encoding of value, passed
// through unmodified. Empty strings are legal and contribute zero bytes.
func Utf8(name, value string) Field {
	return Field{Name: name, Kind: protocol.FieldUtf8, str: value}
}

// Raw returns a field carrying value unmodified, at whatever length it has.
// Empty and nil are legal and contribute zero bytes.
func Raw(name string, value []byte) Field {
	return Field{Name: name, Kind: protocol.FieldRaw, raw: value}
}

// UInt64 returns a fixed-width numeric field. It serializes as exactly 8
// little-endian bytes, never as text.
func UInt64(name string, value uint64) Field {
	return Field{Name: name, Kind: protocol.FieldUInt64, num: value}
}

// UInt64FromInt converts a signed integer into a UInt64 field. Negative
// values cannot be represented in the unsigned wire encoding and fail with a
// value-out-of-range error.
func UInt64FromInt(name string, value int64) (Field, error) {
	if value < 0 {
		return Field{}, newError(KindEncoding, "CYV-ENC-001",
			fmt.Sprintf("field %q: value %d out of range for unsigned 64-bit encoding", name, value))
	}
	return UInt64(name, uint64(value)), nil
}

// appendTo appends the field's canonical byte encoding to dst.
func (f Field) appendTo(dst []byte) []byte {
	switch f.Kind {
	case protocol.FieldUtf8:
		return append(dst, f.str...)
	case protocol.FieldRaw:
		return append(dst, f.raw...)
	case protocol.FieldUInt64:
		return binary.LittleEndian.AppendUint64(dst, f.num)
	default:
		// Unreachable via the constructors; encode validates Kind first.
		return dst
	}
}

// EncodedLen returns the number of bytes the field contributes to the
// pre-image.
func (f Field) EncodedLen() int {
	switch f.Kind {
	case protocol.FieldUtf8:
		return len(f.str)
	case protocol.FieldRaw:
		return len(f.raw)
	case protocol.FieldUInt64:
		return 8
	default:
		return 0
	}
}
