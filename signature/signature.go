// Package signature shapes signing inputs and outputs around the 64-byte raw
// ed25519 signature the on-chain verifier consumes.
//
// Key material and the private signing operation are external collaborators;
// this package only normalizes envelopes and verifies raw signatures.
package signature

import (
	"crypto/ed25519"
	"fmt"

	"cyphra.co/verify/protocol"
)

// RawSize is the exact width of a raw signature for the signing scheme in use.
const RawSize = ed25519.SignatureSize

// Normalize reduces an arbitrary-length signature envelope to the raw 64-byte
// signature.
//
// Exactly 64 bytes is returned as-is (copied). Longer envelopes carry the raw
// signature in their first 64 bytes; the remainder is scheme metadata the
// chain never consumes. Shorter input is a fatal integrity failure.
func Normalize(sig []byte) ([]byte, error) {
	if len(sig) < RawSize {
		return nil, newError(KindSignature, "CYV-SIG-001",
			fmt.Sprintf("signature too short: got %d bytes, need %d", len(sig), RawSize))
	}
	out := make([]byte, RawSize)
	copy(out, sig[:RawSize])
	return out, nil
}

// Verify checks a raw (or enveloped) signature over a 32-byte message digest.
func Verify(pub ed25519.PublicKey, digest, sig []byte) error {
	if len(pub) != ed25519.PublicKeySize {
		return newError(KindSignature, "CYV-SIG-004",
			fmt.Sprintf("public key: got %d bytes, need %d", len(pub), ed25519.PublicKeySize))
	}
	if len(digest) != protocol.DigestSize {
		return newError(KindSignature, "CYV-SIG-002",
			fmt.Sprintf("digest: got %d bytes, need %d", len(digest), protocol.DigestSize))
	}
	raw, err := Normalize(sig)
	if err != nil {
		return err
	}
	if !ed25519.Verify(pub, digest, raw) {
		return newError(KindSignature, "CYV-SIG-003", "signature invalid")
	}
	return nil
}
