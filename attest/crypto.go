package attest

import (
	"crypto/ed25519"
	"encoding/base64"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"cyphra.co/verify/message"
	"cyphra.co/verify/protocol"
)

func digestScope(alg protocol.DigestAlg, scope []byte) ([]byte, error) {
	d, err := message.Digest(alg, scope)
	if err != nil {
		return nil, wrapError(KindCrypto, "CYV-ATT-112", "attestation digest failed", err)
	}
	return d, nil
}

// SignEd25519 signs the document in place with an ed25519 key.
func SignEd25519(d *Document, priv ed25519.PrivateKey) error {
	if d == nil {
		return newError(KindCrypto, "CYV-ATT-001", "nil document")
	}
	if len(priv) != ed25519.PrivateKeySize {
		return newError(KindCrypto, "CYV-ATT-121", "invalid ed25519 private key length")
	}
	if d.HashAlg == "" {
		d.HashAlg = string(protocol.DigestSHA256)
	}
	d.SignatureAlg = "ed25519"
	d.Signature = ""
	digest, err := d.digest()
	if err != nil {
		return err
	}
	d.Signature = base64.StdEncoding.EncodeToString(ed25519.Sign(priv, digest))
	return nil
}

// SignDilithium3 signs the document in place with a Dilithium3 key.
func SignDilithium3(d *Document, priv *mode3.PrivateKey) error {
	if d == nil {
		return newError(KindCrypto, "CYV-ATT-001", "nil document")
	}
	if priv == nil {
		return newError(KindCrypto, "CYV-ATT-122", "missing dilithium3 private key")
	}
	if d.HashAlg == "" {
		d.HashAlg = string(protocol.DigestSHA256)
	}
	d.SignatureAlg = "dilithium3"
	d.Signature = ""
	digest, err := d.digest()
	if err != nil {
		return err
	}
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(priv, digest, sig)
	d.Signature = base64.StdEncoding.EncodeToString(sig)
	return nil
}

// Verify checks the document's required fields and its signature against the
// enclave's registered public key (raw ed25519 or marshaled dilithium3 bytes,
// matching the document's signature_alg).
func Verify(d Document, pub []byte) error {
	if err := d.checkRequired(); err != nil {
		return err
	}
	if d.SignatureAlg == "" {
		return newError(KindCrypto, "CYV-ATT-131", "missing signature_alg")
	}
	sig, err := base64.StdEncoding.DecodeString(d.Signature)
	if err != nil {
		return wrapError(KindCrypto, "CYV-ATT-132", "invalid signature base64", err)
	}

	// The signed scope excludes the signature itself.
	signed := d
	signed.Signature = ""
	digest, err := signed.digest()
	if err != nil {
		return err
	}

	switch d.SignatureAlg {
	case "ed25519":
		if len(pub) != ed25519.PublicKeySize {
			return newError(KindCrypto, "CYV-ATT-133", "invalid ed25519 public key length")
		}
		if len(sig) != ed25519.SignatureSize {
			return newError(KindCrypto, "CYV-ATT-134", "invalid ed25519 signature length")
		}
		if !ed25519.Verify(ed25519.PublicKey(pub), digest, sig) {
			return newError(KindCrypto, "CYV-ATT-141", "attestation signature invalid")
		}
		return nil
	case "dilithium3":
		var pk mode3.PublicKey
		if err := pk.UnmarshalBinary(pub); err != nil {
			return wrapError(KindCrypto, "CYV-ATT-135", "invalid dilithium3 public key", err)
		}
		if len(sig) != mode3.SignatureSize {
			return newError(KindCrypto, "CYV-ATT-136", "invalid dilithium3 signature length")
		}
		if !mode3.Verify(&pk, digest, sig) {
			return newError(KindCrypto, "CYV-ATT-141", "attestation signature invalid")
		}
		return nil
	default:
		return newError(KindCrypto, "CYV-ATT-137", "unsupported signature_alg")
	}
}
