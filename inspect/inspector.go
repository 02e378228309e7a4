package inspect

import "context"

// Query addresses one read-only contract function.
type Query struct {
	// Target is the contract (package/object) address.
	Target string

	// Function is the read-only entry point to inspect.
	Function string

	// Args are the call arguments, already serialized by the caller.
	Args [][]byte
}

// Inspector issues read-only contract inspections. It is the external,
// I/O-bearing collaborator; implementations own transport, concurrency
// limits, and any retry policy. This package never retries.
type Inspector interface {
	Inspect(ctx context.Context, q Query) (Result, error)
}

// InspectTyped issues a query and decodes the result per shape.
//
// A transport error is reported as a call failure without touching any
// payload; a chain-reported failure status is handled identically by Decode.
func InspectTyped(ctx context.Context, ins Inspector, q Query, shape Shape) (Value, error) {
	res, err := ins.Inspect(ctx, q)
	if err != nil {
		return Value{}, wrapError(KindDecode, "CYV-DEC-001",
			"inspection call failed: "+err.Error(), err)
	}
	return Decode(res, shape)
}
