// Package message builds the canonical byte sequences and digests the on-chain
// verifier recomputes when it checks a signature.
//
// Encoding is pure concatenation in declared field order: no separators, no
// length prefixes, no padding. The verifier relies on agreed field widths
// (identifiers compared as opaque blobs, a trailing fixed-width counter), so
// order and width live in protocol.Params, not here.
package message

import (
	"fmt"

	"cyphra.co/verify/protocol"
)

// Encode concatenates fields in declared order after validating them against
// layout. The result is the exact pre-image the verifier hashes.
//
// Encode is deterministic and safe for concurrent use.
func Encode(layout []protocol.FieldSpec, fields []Field) ([]byte, error) {
	if len(fields) != len(layout) {
		return nil, newError(KindEncoding, "CYV-ENC-101",
			fmt.Sprintf("layout expects %d fields, got %d", len(layout), len(fields)))
	}
	size := 0
	for i, spec := range layout {
		f := fields[i]
		if f.Name != spec.Name {
			return nil, newError(KindEncoding, "CYV-ENC-102",
				fmt.Sprintf("field %d: got %q, layout requires %q", i, f.Name, spec.Name))
		}
		if f.Kind != spec.Kind {
			return nil, newError(KindEncoding, "CYV-ENC-103",
				fmt.Sprintf("field %q: got kind %s, layout requires %s", f.Name, f.Kind, spec.Kind))
		}
		size += f.EncodedLen()
	}
	out := make([]byte, 0, size)
	for _, f := range fields {
		out = f.appendTo(out)
	}
	return out, nil
}

// EncodeMessage encodes fields against the layout params declares for kind.
func EncodeMessage(p protocol.Params, kind protocol.MessageKind, fields []Field) ([]byte, error) {
	layout, ok := p.Layout(kind)
	if !ok {
		return nil, newError(KindEncoding, "CYV-ENC-104",
			fmt.Sprintf("protocol %q declares no layout for message kind %q", p.Spec, kind))
	}
	return Encode(layout, fields)
}

// DigestMessage encodes fields for kind and hashes the pre-image with the
// protocol's pinned algorithm.
func DigestMessage(p protocol.Params, kind protocol.MessageKind, fields []Field) ([]byte, error) {
	pre, err := EncodeMessage(p, kind, fields)
	if err != nil {
		return nil, err
	}
	return Digest(p.Digest, pre)
}
