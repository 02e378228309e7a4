package keys

import (
	"crypto/ed25519"
	"encoding/base64"
	"strings"
	"testing"
)

func TestDeriveRoleSeedDeterministic(t *testing.T) {
	root := make([]byte, ed25519.SeedSize)
	for i := range root {
		root[i] = byte(i)
	}

	a, err := DeriveRoleSeed(root, "operator")
	if err != nil {
		t.Fatalf("DeriveRoleSeed: %v", err)
	}
	b, err := DeriveRoleSeed(root, "operator")
	if err != nil {
		t.Fatalf("DeriveRoleSeed: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("expected deterministic derivation")
	}

	c, err := DeriveRoleSeed(root, "enclave")
	if err != nil {
		t.Fatalf("DeriveRoleSeed: %v", err)
	}
	if string(a) == string(c) {
		t.Fatalf("expected different roles to derive different seeds")
	}
}

func TestDeriveRoleSeed_RejectsBadInput(t *testing.T) {
	if _, err := DeriveRoleSeed([]byte("short"), "operator"); err == nil {
		t.Fatalf("expected error for short root seed")
	}
	root := make([]byte, ed25519.SeedSize)
	if _, err := DeriveRoleSeed(root, ""); err == nil {
		t.Fatalf("expected error for empty role")
	}
	if _, err := DeriveRoleSeed(root, "bad role"); err == nil {
		t.Fatalf("expected error for role with space")
	}
}

func TestGenerateSignerKeyFromSeedFormat(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = 0x42
	}
	signerKey := GenerateSignerKeyFromSeed(seed)
	if !strings.HasPrefix(signerKey, "ed25519:") {
		t.Fatalf("expected ed25519 prefix, got %q", signerKey)
	}
	b64 := strings.TrimPrefix(signerKey, "ed25519:")
	pubBytes, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("expected valid base64: %v", err)
	}
	if len(pubBytes) != ed25519.PublicKeySize {
		t.Fatalf("expected %d pubkey bytes, got %d", ed25519.PublicKeySize, len(pubBytes))
	}
}

func TestParseSignerKey_RoundTrip(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = 0x07
	}
	signerKey := GenerateSignerKeyFromSeed(seed)
	pub, err := ParseSignerKey(signerKey)
	if err != nil {
		t.Fatalf("ParseSignerKey: %v", err)
	}
	want := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	if string(pub) != string(want) {
		t.Fatalf("round trip mismatch")
	}

	if _, err := ParseSignerKey("dilithium3:AA=="); err == nil {
		t.Fatalf("expected rejection of non-ed25519 signer key")
	}
	if _, err := ParseSignerKey("no-separator"); err == nil {
		t.Fatalf("expected rejection of malformed signer key")
	}
}
