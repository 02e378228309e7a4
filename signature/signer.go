package signature

import (
	"crypto/ed25519"
	"fmt"

	"cyphra.co/verify/protocol"
)

// Signer signs 32-byte message digests and always yields the raw 64-byte
// signature, with any envelope already stripped.
//
// Implementations must be safe for concurrent use.
type Signer interface {
	Sign(digest []byte) ([]byte, error)
	Public() ed25519.PublicKey
}

// LocalSigner signs with an in-process ed25519 private key.
type LocalSigner struct {
	priv ed25519.PrivateKey
}

// NewLocalSigner wraps an ed25519 private key.
func NewLocalSigner(priv ed25519.PrivateKey) (*LocalSigner, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, newError(KindSignature, "CYV-SIG-005",
			fmt.Sprintf("private key: got %d bytes, need %d", len(priv), ed25519.PrivateKeySize))
	}
	return &LocalSigner{priv: priv}, nil
}

// LocalSignerFromSeed derives a signer from a 32-byte ed25519 seed.
func LocalSignerFromSeed(seed []byte) (*LocalSigner, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, newError(KindSignature, "CYV-SIG-005",
			fmt.Sprintf("seed: got %d bytes, need %d", len(seed), ed25519.SeedSize))
	}
	return &LocalSigner{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

func (s *LocalSigner) Sign(digest []byte) ([]byte, error) {
	if len(digest) != protocol.DigestSize {
		return nil, newError(KindSignature, "CYV-SIG-002",
			fmt.Sprintf("digest: got %d bytes, need %d", len(digest), protocol.DigestSize))
	}
	return Normalize(ed25519.Sign(s.priv, digest))
}

func (s *LocalSigner) Public() ed25519.PublicKey {
	return s.priv.Public().(ed25519.PublicKey)
}
