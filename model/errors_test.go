package model

import (
	"errors"
	"testing"

	"cyphra.co/verify/inspect"
	"cyphra.co/verify/signature"
)

func TestClassify(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Fatalf("Classify(nil) = %v, want nil", got)
	}

	_, sigErr := signature.Normalize([]byte{0x01})
	if sigErr == nil {
		t.Fatal("Normalize: expected error")
	}
	if got := Classify(sigErr); got.Code != ErrInvalidSignature {
		t.Fatalf("signature error: code = %s, want %s", got.Code, ErrInvalidSignature)
	}

	_, decErr := inspect.Decode(inspect.Result{Status: inspect.StatusFailure, Error: "abort"}, inspect.Bool())
	if decErr == nil {
		t.Fatal("Decode: expected error")
	}
	if got := Classify(decErr); got.Code != ErrCallFailed {
		t.Fatalf("failed call: code = %s, want %s", got.Code, ErrCallFailed)
	}

	_, shapeErr := inspect.Decode(inspect.Result{Status: inspect.StatusSuccess, Slots: [][]byte{{0x01}, {0x02}}}, inspect.Bool())
	if shapeErr == nil {
		t.Fatal("Decode: expected shape error")
	}
	if got := Classify(shapeErr); got.Code != ErrDecodeFailed {
		t.Fatalf("shape error: code = %s, want %s", got.Code, ErrDecodeFailed)
	}

	if got := Classify(errors.New("boom")); got.Code != ErrInternal {
		t.Fatalf("unknown error: code = %s, want %s", got.Code, ErrInternal)
	}
}
