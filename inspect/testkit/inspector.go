// Package testkit provides an in-memory Inspector fake and a conformance
// harness for typed decoding against any Inspector implementation.
package testkit

import (
	"context"
	"sync"
	"testing"

	"cyphra.co/verify/inspect"
)

// Fake is an in-memory Inspector serving canned results. It is safe for
// concurrent use and never performs I/O.
type Fake struct {
	mu      sync.RWMutex
	results map[string]inspect.Result
}

func NewFake() *Fake {
	return &Fake{results: make(map[string]inspect.Result)}
}

func key(target, function string) string { return target + "::" + function }

// Set registers the result returned for target/function.
func (f *Fake) Set(target, function string, res inspect.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[key(target, function)] = res
}

// Inspect returns the canned result for the query. Unknown functions report a
// chain-side failure, mirroring a call against a missing entry point.
func (f *Fake) Inspect(ctx context.Context, q inspect.Query) (inspect.Result, error) {
	if err := ctx.Err(); err != nil {
		return inspect.Result{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	res, ok := f.results[key(q.Target, q.Function)]
	if !ok {
		return inspect.Result{Status: inspect.StatusFailure, Error: "function not found: " + q.Function}, nil
	}
	return res, nil
}

// NewInspector constructs a fresh, seeded Inspector for a conformance run.
// The returned Inspector MUST serve the results seeded via the Seed map.
type NewInspector func(t *testing.T, seed map[string]inspect.Result) inspect.Inspector

// RunInspectorConformance exercises the typed-decode contract against any
// Inspector implementation. The constructor receives the results the
// implementation must serve, keyed "target::function".
func RunInspectorConformance(t *testing.T, newInspector NewInspector) {
	t.Helper()

	const target = "0xCA11"

	t.Run("TypedBool", func(t *testing.T) {
		ins := newInspector(t, map[string]inspect.Result{
			key(target, "is_verified"): {Status: inspect.StatusSuccess, Slots: [][]byte{{1}}},
		})
		v, err := inspect.InspectTyped(context.Background(), ins,
			inspect.Query{Target: target, Function: "is_verified"}, inspect.Bool())
		if err != nil {
			t.Fatalf("InspectTyped: %v", err)
		}
		if b, ok := v.Bool(); !ok || !b {
			t.Fatalf("expected true, got %v ok=%v", b, ok)
		}
	})

	t.Run("TypedTuple", func(t *testing.T) {
		ins := newInspector(t, map[string]inspect.Result{
			key(target, "campaign_totals"): {
				Status: inspect.StatusSuccess,
				Slots:  [][]byte{{2, 0}, {5, 0}},
			},
		})
		v, err := inspect.InspectTyped(context.Background(), ins,
			inspect.Query{Target: target, Function: "campaign_totals"},
			inspect.Tuple(inspect.UInt64(), inspect.UInt64()))
		if err != nil {
			t.Fatalf("InspectTyped: %v", err)
		}
		elems, _ := v.Tuple()
		a, _ := elems[0].Uint64()
		b, _ := elems[1].Uint64()
		if a != 2 || b != 5 {
			t.Fatalf("got (%d, %d), want (2, 5)", a, b)
		}
	})

	t.Run("ChainFailureSurfacesAsCallFailed", func(t *testing.T) {
		ins := newInspector(t, map[string]inspect.Result{
			key(target, "is_verified"): {
				Status: inspect.StatusFailure,
				Error:  "abort",
				Slots:  [][]byte{{1}},
			},
		})
		_, err := inspect.InspectTyped(context.Background(), ins,
			inspect.Query{Target: target, Function: "is_verified"}, inspect.Bool())
		if !inspect.IsCallFailed(err) {
			t.Fatalf("expected call-failed, got %v", err)
		}
	})

	t.Run("MissingFunctionFailsClosed", func(t *testing.T) {
		ins := newInspector(t, nil)
		_, err := inspect.InspectTyped(context.Background(), ins,
			inspect.Query{Target: target, Function: "no_such_fn"}, inspect.Bool())
		if err == nil {
			t.Fatalf("expected error for unknown function")
		}
	})
}
