// Package blobid derives content identifiers for contribution payloads.
//
// A payload's blob ID is an IPFS-compatible CIDv1 (raw + sha2-256); its raw
// 32-byte digest doubles as the content_hash field of a canonical
// contribution-verification message.
package blobid

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// New returns the CIDv1 string (raw multicodec, sha2-256 multihash) for data.
func New(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length this should be unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// NewCID returns the CIDv1 (raw + sha2-256) derived from data.
func NewCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// ContentHash returns the raw 32-byte sha2-256 digest of data, the form the
// canonical message encoder carries as its content_hash field.
func ContentHash(data []byte) ([]byte, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return nil, err
	}
	dec, err := multihash.Decode(sum)
	if err != nil {
		return nil, err
	}
	return dec.Digest, nil
}

// Parse decodes a blob ID string and enforces the repo's CID contract:
// CIDv1, raw multicodec, sha2-256 multihash.
func Parse(s string) (cid.Cid, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, fmt.Errorf("invalid blob ID: %w", err)
	}
	p := c.Prefix()
	if p.Version != 1 || p.Codec != cid.Raw || p.MhType != multihash.SHA2_256 {
		return cid.Undef, fmt.Errorf("blob ID %s is not CIDv1 raw+sha2-256", s)
	}
	return c, nil
}
