// verify_vector_gen regenerates the golden contribution vector pinned in
// the message package's conformance tests.
package main

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"cyphra.co/verify/message"
	"cyphra.co/verify/protocol"
	"cyphra.co/verify/signature"
)

func main() {
	contentHash := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A}
	c := message.Contribution{
		CampaignID:     "test_campaign_123",
		ContributionID: "contribution_456",
		ContentHash:    contentHash,
		QualityScore:   85,
	}

	params := protocol.V1
	pre, err := c.Encode(params)
	if err != nil {
		panic(err)
	}
	fmt.Printf("preimage=%s\n", hex.EncodeToString(pre))

	algs := []protocol.DigestAlg{protocol.DigestBLAKE2b256, protocol.DigestSHA256, protocol.DigestSHA3256}
	for _, alg := range algs {
		digest, err := message.Digest(alg, pre)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s=%s\n", alg, hex.EncodeToString(digest))
	}

	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = 0xA1
	}
	signer, err := signature.LocalSignerFromSeed(seed)
	if err != nil {
		panic(err)
	}
	digest, err := c.Digest(params)
	if err != nil {
		panic(err)
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		panic(err)
	}
	fmt.Printf("signer-key=ed25519:%s\n", base64.StdEncoding.EncodeToString(signer.Public()))
	fmt.Printf("signature=%s\n", base64.StdEncoding.EncodeToString(sig))
}
