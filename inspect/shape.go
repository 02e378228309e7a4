package inspect

import "strings"

// ShapeKind discriminates the variants of a return shape.
type ShapeKind string

const (
	ShapeBool   ShapeKind = "bool"
	ShapeUInt64 ShapeKind = "uint64"
	ShapeTuple  ShapeKind = "tuple"
)

// Shape declares the typed structure expected from an inspection result.
// Shapes are immutable values; build them with Bool, UInt64, and Tuple.
type Shape struct {
	kind  ShapeKind
	elems []Shape
}

// Bool is the shape of a canonical on-chain boolean: one byte, 0 or 1.
func Bool() Shape { return Shape{kind: ShapeBool} }

// UInt64 is the shape of an unsigned 64-bit integer. On the wire it may
// occupy fewer than 8 bytes for small values; the decoder handles any
// little-endian width that fits.
func UInt64() Shape { return Shape{kind: ShapeUInt64} }

// Tuple is a fixed-arity compound shape consuming one leading byte sequence
// per component, in declared order.
func Tuple(elems ...Shape) Shape {
	return Shape{kind: ShapeTuple, elems: append([]Shape(nil), elems...)}
}

// Kind returns the shape's variant.
func (s Shape) Kind() ShapeKind { return s.kind }

// Elems returns a tuple's component shapes, nil otherwise.
func (s Shape) Elems() []Shape {
	if s.kind != ShapeTuple {
		return nil
	}
	return append([]Shape(nil), s.elems...)
}

// SlotCount is the number of byte sequences the shape consumes: one per
// scalar, recursively summed for tuples.
func (s Shape) SlotCount() int {
	if s.kind != ShapeTuple {
		return 1
	}
	n := 0
	for _, e := range s.elems {
		n += e.SlotCount()
	}
	return n
}

func (s Shape) String() string {
	switch s.kind {
	case ShapeBool, ShapeUInt64:
		return string(s.kind)
	case ShapeTuple:
		parts := make([]string, len(s.elems))
		for i, e := range s.elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "invalid"
	}
}
