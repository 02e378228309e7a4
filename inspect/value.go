package inspect

// Value is a decoded, typed inspection result.
type Value struct {
	kind  ShapeKind
	b     bool
	u     uint64
	elems []Value
}

func boolValue(b bool) Value      { return Value{kind: ShapeBool, b: b} }
func uint64Value(u uint64) Value  { return Value{kind: ShapeUInt64, u: u} }
func tupleValue(vs []Value) Value { return Value{kind: ShapeTuple, elems: vs} }

// Kind returns the value's variant.
func (v Value) Kind() ShapeKind { return v.kind }

// Bool returns the boolean value; ok is false for non-boolean values.
func (v Value) Bool() (value, ok bool) {
	return v.b, v.kind == ShapeBool
}

// Uint64 returns the integer value; ok is false for non-integer values.
func (v Value) Uint64() (uint64, bool) {
	return v.u, v.kind == ShapeUInt64
}

// Tuple returns the component values; ok is false for scalar values.
func (v Value) Tuple() ([]Value, bool) {
	if v.kind != ShapeTuple {
		return nil, false
	}
	return append([]Value(nil), v.elems...), true
}
