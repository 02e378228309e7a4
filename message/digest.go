package message

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"cyphra.co/verify/protocol"
)

// Digest applies the single designated 256-bit hash to the canonical message
// bytes. No truncation, no double hashing, no domain-separation prefix: the
// verifier applies exactly one hash and compares the 32 bytes.
func Digest(alg protocol.DigestAlg, msg []byte) ([]byte, error) {
	switch alg {
	case protocol.DigestBLAKE2b256:
		s := blake2b.Sum256(msg)
		return s[:], nil
	case protocol.DigestSHA256:
		s := sha256.Sum256(msg)
		return s[:], nil
	case protocol.DigestSHA3256:
		s := sha3.Sum256(msg)
		return s[:], nil
	default:
		return nil, newError(KindDigest, "CYV-DIG-201",
			fmt.Sprintf("unsupported digest algorithm %q", string(alg)))
	}
}
