// Package attest builds and verifies enclave attestation documents.
//
// A verification enclave attests to a computation by hashing a canonical JSON
// record of its inputs and outputs, embedding that hash in a document, and
// signing the document. The backend refuses a verification result unless the
// attestation checks out. Documents support ed25519 and, for deployments that
// want post-quantum attestations, dilithium3; on-chain contribution
// signatures remain ed25519-only.
package attest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"cyphra.co/verify/protocol"
)

// Document is an enclave attestation over one computation.
type Document struct {
	EnclaveID       string            `json:"enclave_id"`
	ComputationHash string            `json:"computation_hash"`
	Timestamp       string            `json:"timestamp"`
	PCRs            map[string]string `json:"pcrs,omitempty"`

	// HashAlg names the digest applied to the signed scope; one of the
	// protocol digest algorithm names.
	HashAlg string `json:"hash_alg"`

	SignatureAlg string `json:"signature_alg"`

	// Signature is base64; empty until the document is signed.
	Signature string `json:"signature,omitempty"`
}

// ComputationHash returns the hex sha256 digest of the canonical JSON record
// {"inputs": …, "outputs": …}. Map keys serialize in sorted order, so the
// hash is deterministic for equal records.
func ComputationHash(inputs, outputs map[string]any) (string, error) {
	record := map[string]any{"inputs": inputs, "outputs": outputs}
	b, err := json.Marshal(record)
	if err != nil {
		return "", wrapError(KindValidation, "CYV-ATT-201", "computation record not serializable", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// signedScope is the canonical signed form of a document: every field except
// the signature, serialized as sorted-key compact JSON.
func (d Document) signedScope() ([]byte, error) {
	scope := map[string]any{
		"enclave_id":       d.EnclaveID,
		"computation_hash": d.ComputationHash,
		"timestamp":        d.Timestamp,
		"hash_alg":         d.HashAlg,
		"signature_alg":    d.SignatureAlg,
	}
	if len(d.PCRs) > 0 {
		scope["pcrs"] = d.PCRs
	}
	b, err := json.Marshal(scope)
	if err != nil {
		return nil, wrapError(KindValidation, "CYV-ATT-202", "attestation not serializable", err)
	}
	return b, nil
}

// requiredFields are the fields a verifier demands before trusting any
// attestation, signature validity aside.
var requiredFields = []struct {
	name  string
	value func(Document) string
}{
	{"enclave_id", func(d Document) string { return d.EnclaveID }},
	{"computation_hash", func(d Document) string { return d.ComputationHash }},
	{"timestamp", func(d Document) string { return d.Timestamp }},
	{"signature", func(d Document) string { return d.Signature }},
}

func (d Document) checkRequired() error {
	for _, f := range requiredFields {
		if f.value(d) == "" {
			return newError(KindValidation, "CYV-ATT-101",
				fmt.Sprintf("missing required attestation field %q", f.name))
		}
	}
	if d.ComputationHash != "" {
		if _, err := hex.DecodeString(d.ComputationHash); err != nil || len(d.ComputationHash) != 64 {
			return newError(KindValidation, "CYV-ATT-102", "computation_hash must be 32 hex-encoded bytes")
		}
	}
	return nil
}

func (d Document) digest() ([]byte, error) {
	if d.HashAlg == "" {
		return nil, newError(KindCrypto, "CYV-ATT-111", "missing hash_alg")
	}
	alg := protocol.DigestAlg(d.HashAlg)
	if !alg.Known() {
		return nil, newError(KindCrypto, "CYV-ATT-112",
			fmt.Sprintf("unsupported hash_alg %q", d.HashAlg))
	}
	scope, err := d.signedScope()
	if err != nil {
		return nil, err
	}
	return digestScope(alg, scope)
}

// Marshal returns the document's canonical JSON bytes, signature included.
func (d Document) Marshal() ([]byte, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, wrapError(KindValidation, "CYV-ATT-202", "attestation not serializable", err)
	}
	return b, nil
}

// Unmarshal parses a document from its JSON form.
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, wrapError(KindValidation, "CYV-ATT-203", "invalid attestation JSON", err)
	}
	return d, nil
}
