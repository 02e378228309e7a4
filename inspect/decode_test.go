package inspect

import (
	"testing"
)

func success(slots ...[]byte) Result {
	return Result{Status: StatusSuccess, Slots: slots}
}

func TestDecode_BoolCanonicalBytes(t *testing.T) {
	v, err := Decode(success([]byte{1}), Bool())
	if err != nil {
		t.Fatalf("Decode(0x01): %v", err)
	}
	if b, ok := v.Bool(); !ok || !b {
		t.Fatalf("Decode(0x01): got %v ok=%v, want true", b, ok)
	}

	v, err = Decode(success([]byte{0}), Bool())
	if err != nil {
		t.Fatalf("Decode(0x00): %v", err)
	}
	if b, ok := v.Bool(); !ok || b {
		t.Fatalf("Decode(0x00): got %v ok=%v, want false", b, ok)
	}

	_, err = Decode(success([]byte{2}), Bool())
	if err == nil {
		t.Fatalf("expected error for byte 0x02")
	}
	if !IsInvalidBool(err) {
		t.Fatalf("expected invalid-bool, got %v", err)
	}
}

func TestDecode_BoolSlotWidth(t *testing.T) {
	for _, slot := range [][]byte{{}, {1, 0}} {
		_, err := Decode(success(slot), Bool())
		if err == nil {
			t.Fatalf("expected error for %d-byte bool slot", len(slot))
		}
		if !IsShapeMismatch(err) {
			t.Fatalf("expected shape mismatch for %d-byte slot, got %v", len(slot), err)
		}
	}
}

func TestDecode_UInt64VariableWidthRoundTrip(t *testing.T) {
	// 12345 little-endian at every legal wire width.
	const want = 12345
	for width := 2; width <= 8; width++ {
		slot := make([]byte, width)
		slot[0] = 0x39
		slot[1] = 0x30
		v, err := Decode(success(slot), UInt64())
		if err != nil {
			t.Fatalf("Decode(width=%d): %v", width, err)
		}
		u, ok := v.Uint64()
		if !ok || u != want {
			t.Fatalf("Decode(width=%d): got %d ok=%v, want %d", width, u, ok, want)
		}
	}
}

func TestDecode_UInt64SingleByteAndEmpty(t *testing.T) {
	v, err := Decode(success([]byte{85}), UInt64())
	if err != nil {
		t.Fatalf("Decode([85]): %v", err)
	}
	if u, _ := v.Uint64(); u != 85 {
		t.Fatalf("Decode([85]): got %d", u)
	}

	// Zero-length slot is a legal encoding of zero; an empty slot list is not.
	v, err = Decode(success([]byte{}), UInt64())
	if err != nil {
		t.Fatalf("Decode([]): %v", err)
	}
	if u, _ := v.Uint64(); u != 0 {
		t.Fatalf("Decode([]): got %d, want 0", u)
	}
}

func TestDecode_UInt64MaxAndOverflow(t *testing.T) {
	max := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	v, err := Decode(success(max), UInt64())
	if err != nil {
		t.Fatalf("Decode(max): %v", err)
	}
	if u, _ := v.Uint64(); u != ^uint64(0) {
		t.Fatalf("Decode(max): got %d", u)
	}

	// Trailing zero bytes beyond the eighth are tolerated.
	padded := append(append([]byte(nil), max...), 0, 0)
	if _, err := Decode(success(padded), UInt64()); err != nil {
		t.Fatalf("Decode(zero-padded): %v", err)
	}

	// A significant ninth byte cannot fit in 64 bits.
	over := append(append([]byte(nil), max...), 1)
	_, err = Decode(success(over), UInt64())
	if err == nil {
		t.Fatalf("expected overflow error")
	}
	if !IsShapeMismatch(err) {
		t.Fatalf("expected shape mismatch for overflow, got %v", err)
	}
}

func TestDecode_TupleOfUInt64(t *testing.T) {
	v, err := Decode(success([]byte{2, 0}, []byte{5, 0}), Tuple(UInt64(), UInt64()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	elems, ok := v.Tuple()
	if !ok || len(elems) != 2 {
		t.Fatalf("expected 2-tuple, got ok=%v len=%d", ok, len(elems))
	}
	a, _ := elems[0].Uint64()
	b, _ := elems[1].Uint64()
	if a != 2 || b != 5 {
		t.Fatalf("got (%d, %d), want (2, 5)", a, b)
	}
}

func TestDecode_NestedTuple(t *testing.T) {
	shape := Tuple(Bool(), Tuple(UInt64(), UInt64()))
	v, err := Decode(success([]byte{1}, []byte{7}, []byte{0x40, 0x42, 0x0F}), shape)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	elems, _ := v.Tuple()
	if b, _ := elems[0].Bool(); !b {
		t.Fatalf("expected true")
	}
	inner, ok := elems[1].Tuple()
	if !ok || len(inner) != 2 {
		t.Fatalf("expected inner 2-tuple")
	}
	if u, _ := inner[0].Uint64(); u != 7 {
		t.Fatalf("inner[0]: got %d", u)
	}
	if u, _ := inner[1].Uint64(); u != 1000000 {
		t.Fatalf("inner[1]: got %d", u)
	}
}

func TestDecode_TupleArityMismatch(t *testing.T) {
	// Too few slots.
	_, err := Decode(success([]byte{2, 0}), Tuple(UInt64(), UInt64()))
	if err == nil {
		t.Fatalf("expected error for missing slot")
	}
	if !IsShapeMismatch(err) {
		t.Fatalf("expected shape mismatch, got %v", err)
	}

	// Leftover slots.
	_, err = Decode(success([]byte{2, 0}, []byte{5, 0}, []byte{9}), Tuple(UInt64(), UInt64()))
	if err == nil {
		t.Fatalf("expected error for extra slot")
	}
	if !IsShapeMismatch(err) {
		t.Fatalf("expected shape mismatch, got %v", err)
	}
}

func TestDecode_CallFailedShortCircuits(t *testing.T) {
	// Payload bytes are present and even well-formed; they must never be read.
	res := Result{
		Status: StatusFailure,
		Error:  "MoveAbort(7)",
		Slots:  [][]byte{{1}},
	}
	_, err := Decode(res, Bool())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsCallFailed(err) {
		t.Fatalf("expected call-failed, got %v", err)
	}
}

func TestDecode_EmptyResultDistinctFromZero(t *testing.T) {
	_, err := Decode(Result{Status: StatusSuccess}, Bool())
	if err == nil {
		t.Fatalf("expected error for empty result")
	}
	if !IsEmptyResult(err) {
		t.Fatalf("expected empty-result, got %v", err)
	}
	// Must not be conflated with shape mismatch or a decoded false.
	if IsShapeMismatch(err) {
		t.Fatalf("empty result misclassified as shape mismatch")
	}
}

func TestShape_String(t *testing.T) {
	s := Tuple(UInt64(), Tuple(Bool(), UInt64()))
	if got, want := s.String(), "(uint64, (bool, uint64))"; got != want {
		t.Fatalf("String: got %q want %q", got, want)
	}
	if got := s.SlotCount(); got != 3 {
		t.Fatalf("SlotCount: got %d want 3", got)
	}
}
