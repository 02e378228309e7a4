package enclave

import (
	"context"
	"crypto/ed25519"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"cyphra.co/verify/attest"
	"cyphra.co/verify/message"
	"cyphra.co/verify/protocol"
	"cyphra.co/verify/signature"
)

func testServer(t *testing.T) (*Server, *signature.LocalSigner) {
	t.Helper()
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = 0x5A
	}
	signer, err := signature.LocalSignerFromSeed(seed)
	if err != nil {
		t.Fatalf("LocalSignerFromSeed: %v", err)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	srv := &Server{
		Params: protocol.V1,
		Signer: signer,
		Attestor: func() (attest.Document, error) {
			hash, err := attest.ComputationHash(
				map[string]any{"boot": "test"},
				map[string]any{"ok": true},
			)
			if err != nil {
				return attest.Document{}, err
			}
			doc := attest.Document{
				EnclaveID:       "enclave-test",
				ComputationHash: hash,
				Timestamp:       "2025-06-01T12:00:00Z",
			}
			if err := attest.SignEd25519(&doc, priv); err != nil {
				return attest.Document{}, err
			}
			return doc, nil
		},
	}
	return srv, signer
}

func dialTestServer(t *testing.T, srv *Server) *Client {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	RegisterSignerServer(s, srv)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	dialer := func(ctx context.Context, addr string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })
	return &Client{cc: cc, client: NewSignerClient(cc), Timeout: 2 * time.Second}
}

func TestSigner_RemoteSignRoundTrip(t *testing.T) {
	srv, signer := testServer(t)
	client := dialTestServer(t, srv)

	msg, err := message.Contribution{
		CampaignID:     "camp_1",
		ContributionID: "contrib_9",
		ContentHash:    []byte{1, 2, 3},
		QualityScore:   91,
	}.Encode(protocol.V1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	raw, err := client.SignMessage(context.Background(), msg)
	if err != nil {
		t.Fatalf("SignMessage: %v", err)
	}
	if len(raw) != signature.RawSize {
		t.Fatalf("signature: got %d bytes, want %d", len(raw), signature.RawSize)
	}

	digest, err := message.Digest(protocol.V1.Digest, msg)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if err := signature.Verify(signer.Public(), digest, raw); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestSigner_PublicKey(t *testing.T) {
	srv, signer := testServer(t)
	client := dialTestServer(t, srv)

	pub, err := client.PublicKey(context.Background())
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	if string(pub) != string(signer.Public()) {
		t.Fatalf("public key mismatch")
	}
}

func TestSigner_Attestation(t *testing.T) {
	srv, signer := testServer(t)
	client := dialTestServer(t, srv)

	doc, err := client.Attestation(context.Background())
	if err != nil {
		t.Fatalf("Attestation: %v", err)
	}
	if err := attest.Verify(doc, signer.Public()); err != nil {
		t.Fatalf("attest.Verify: %v", err)
	}
}

func TestSigner_MissingSignerFailsPrecondition(t *testing.T) {
	client := dialTestServer(t, &Server{Params: protocol.V1})
	_, err := client.SignMessage(context.Background(), []byte("msg"))
	if err == nil {
		t.Fatalf("expected error from unconfigured server")
	}
}

func TestSigner_AttestationUnconfigured(t *testing.T) {
	srv, _ := testServer(t)
	srv.Attestor = nil
	client := dialTestServer(t, srv)
	if _, err := client.Attestation(context.Background()); err == nil {
		t.Fatalf("expected Unimplemented for missing attestor")
	}
}
