package attest

import (
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"cyphra.co/verify/protocol"
)

type deterministicReader struct{ b byte }

func (r *deterministicReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
		r.b++
	}
	return len(p), nil
}

func testDocument(t *testing.T) Document {
	t.Helper()
	hash, err := ComputationHash(
		map[string]any{"campaign_id": "camp_1", "blob_id": "bafkrei..."},
		map[string]any{"quality_score": 85, "verified": true},
	)
	if err != nil {
		t.Fatalf("ComputationHash: %v", err)
	}
	return Document{
		EnclaveID:       "enclave-01",
		ComputationHash: hash,
		Timestamp:       "2025-06-01T12:00:00Z",
		PCRs:            map[string]string{"PCR0": strings.Repeat("a", 8)},
	}
}

func TestComputationHash_Deterministic(t *testing.T) {
	in := map[string]any{"b": 2, "a": 1}
	out := map[string]any{"score": 85}
	h1, err := ComputationHash(in, out)
	if err != nil {
		t.Fatalf("ComputationHash: %v", err)
	}
	h2, err := ComputationHash(map[string]any{"a": 1, "b": 2}, out)
	if err != nil {
		t.Fatalf("ComputationHash: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("hash must not depend on map insertion order")
	}
	if len(h1) != 64 {
		t.Fatalf("expected 32 hex bytes, got %d chars", len(h1))
	}

	h3, err := ComputationHash(in, map[string]any{"score": 86})
	if err != nil {
		t.Fatalf("ComputationHash: %v", err)
	}
	if h1 == h3 {
		t.Fatalf("different outputs must hash differently")
	}
}

func TestSignEd25519_VerifyRoundTrip(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = 0x33
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	doc := testDocument(t)
	if err := SignEd25519(&doc, priv); err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	if doc.SignatureAlg != "ed25519" || doc.Signature == "" {
		t.Fatalf("document not signed: %+v", doc)
	}
	if doc.HashAlg != string(protocol.DigestSHA256) {
		t.Fatalf("expected default hash_alg sha256, got %s", doc.HashAlg)
	}
	if err := Verify(doc, pub); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerify_DetectsTampering(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	doc := testDocument(t)
	if err := SignEd25519(&doc, priv); err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	doc.EnclaveID = "enclave-02"
	err := Verify(doc, pub)
	if err == nil {
		t.Fatalf("expected verification failure after tamper")
	}
	if RuleID(err) != "CYV-ATT-141" {
		t.Fatalf("expected RuleID CYV-ATT-141, got %s", RuleID(err))
	}
}

func TestVerify_RequiredFields(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	doc := testDocument(t)
	if err := SignEd25519(&doc, priv); err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}

	for _, mutate := range []func(*Document){
		func(d *Document) { d.EnclaveID = "" },
		func(d *Document) { d.ComputationHash = "" },
		func(d *Document) { d.Timestamp = "" },
		func(d *Document) { d.Signature = "" },
	} {
		broken := doc
		mutate(&broken)
		err := Verify(broken, pub)
		if err == nil {
			t.Fatalf("expected missing-field rejection")
		}
		if !IsKind(err, KindValidation) {
			t.Fatalf("expected KindValidation, got %v", err)
		}
	}
}

func TestVerify_RejectsMalformedComputationHash(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	doc := testDocument(t)
	doc.ComputationHash = "zzzz"
	if err := SignEd25519(&doc, priv); err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	err := Verify(doc, pub)
	if err == nil {
		t.Fatalf("expected rejection of malformed computation_hash")
	}
	if RuleID(err) != "CYV-ATT-102" {
		t.Fatalf("expected RuleID CYV-ATT-102, got %s", RuleID(err))
	}
}

func TestSignDilithium3_VerifyRoundTrip(t *testing.T) {
	pubPQ, privPQ, err := mode3.GenerateKey(&deterministicReader{})
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}

	doc := testDocument(t)
	if err := SignDilithium3(&doc, privPQ); err != nil {
		t.Fatalf("SignDilithium3: %v", err)
	}
	pubBytes, err := pubPQ.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if err := Verify(doc, pubBytes); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	doc := testDocument(t)
	if err := SignEd25519(&doc, priv); err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	b, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	parsed, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := Verify(parsed, pub); err != nil {
		t.Fatalf("Verify(parsed): %v", err)
	}
}
