package keys

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
)

// SignDigestEd25519 signs an already-computed 32-byte message digest and
// returns the raw 64-byte signature.
func SignDigestEd25519(digest []byte, privateKey ed25519.PrivateKey) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}
	return ed25519.Sign(privateKey, digest), nil
}

// SignDigestDilithium3 signs a digest with a Dilithium3 key, base64-encoded.
// Used for enclave attestation documents, never for on-chain contribution
// signatures (the chain consumes only 64-byte ed25519 signatures).
func SignDigestDilithium3(digest []byte, privateKey *mode3.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", fmt.Errorf("missing private key")
	}
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(privateKey, digest, sig)
	return base64.StdEncoding.EncodeToString(sig), nil
}

// GenerateDilithium3Keypair returns a new Dilithium3 keypair.
func GenerateDilithium3Keypair(rand io.Reader) (*mode3.PublicKey, *mode3.PrivateKey, error) {
	return mode3.GenerateKey(rand)
}

// ParseSignerKey decodes a "ed25519:<base64>" signer key string into the raw
// public key bytes.
func ParseSignerKey(signerKey string) (ed25519.PublicKey, error) {
	alg, enc, ok := strings.Cut(signerKey, ":")
	if !ok {
		return nil, fmt.Errorf("invalid signer key encoding")
	}
	if alg != "ed25519" {
		return nil, fmt.Errorf("unsupported signer key algorithm %q", alg)
	}
	pub, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return nil, fmt.Errorf("invalid signer key base64: %w", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("signer key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	return ed25519.PublicKey(pub), nil
}
