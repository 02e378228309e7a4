package main

import (
	"crypto/ed25519"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"google.golang.org/grpc"

	"cyphra.co/verify/attest"
	"cyphra.co/verify/enclave"
	"cyphra.co/verify/keys"
	"cyphra.co/verify/protocol"
	"cyphra.co/verify/signature"
)

func main() {
	fs := flag.NewFlagSet("cyphra-signerd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7878", "listen address")
	seedHex := fs.String("seed-hex", "", "Inline ed25519 seed, hex")
	signerName := fs.String("signer", "", "Stored key name")
	signerRole := fs.String("role", "", "Stored key role")
	keyFile := fs.String("key-file", "", "Seed file path")
	keyDir := fs.String("key-dir", "", "Key store directory")
	enclaveID := fs.String("enclave-id", "", "Enclave identifier reported in attestations")
	alg := fs.String("alg", string(protocol.V1.Digest), "Message digest algorithm")

	_ = fs.Parse(os.Args[1:])

	ks, err := keys.CreateKeyStore(*keyDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	seed, err := ks.LoadSeed(*seedHex, *signerName, *signerRole, *keyFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	signer, err := signature.LocalSignerFromSeed(seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	params := protocol.V1
	params.Digest = protocol.DigestAlg(*alg)

	srv := &enclave.Server{Params: params, Signer: signer}
	if *enclaveID != "" {
		id := *enclaveID
		priv := ed25519.NewKeyFromSeed(seed)
		srv.Attestor = func() (attest.Document, error) {
			hash, err := attest.ComputationHash(map[string]any{}, map[string]any{})
			if err != nil {
				return attest.Document{}, err
			}
			doc := attest.Document{
				EnclaveID:       id,
				ComputationHash: hash,
				Timestamp:       time.Now().UTC().Format(time.RFC3339),
			}
			if err := attest.SignEd25519(&doc, priv); err != nil {
				return attest.Document{}, err
			}
			return doc, nil
		}
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	enclave.RegisterSignerServer(s, srv)

	fmt.Fprintf(os.Stderr, "cyphra-signerd listening on %s (alg=%s)\n", lis.Addr().String(), params.Digest)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
