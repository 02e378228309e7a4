package message

import (
	"cyphra.co/verify/protocol"
)

// Contribution is the typed form of a contribution-verification message: a
// scored contribution bound to its campaign and content.
type Contribution struct {
	CampaignID     string
	ContributionID string

	// ContentHash identifies the contribution payload; typically the payload's
	// content-address digest (see package blobid). Any length is legal.
	ContentHash []byte

	QualityScore uint64
}

// Fields returns the contribution's fields in the protocol's declared order.
func (c Contribution) Fields() []Field {
	return []Field{
		Utf8("campaign_id", c.CampaignID),
		Utf8("contribution_id", c.ContributionID),
		Raw("content_hash", c.ContentHash),
		UInt64("quality_score", c.QualityScore),
	}
}

// Encode returns the canonical pre-image for the contribution under p.
func (c Contribution) Encode(p protocol.Params) ([]byte, error) {
	return EncodeMessage(p, protocol.MessageContribution, c.Fields())
}

// Digest returns the 32-byte digest the verifier recomputes for the
// contribution under p.
func (c Contribution) Digest(p protocol.Params) ([]byte, error) {
	return DigestMessage(p, protocol.MessageContribution, c.Fields())
}

// Generic is the generic message-signing layout: a single opaque payload.
type Generic struct {
	Payload []byte
}

func (g Generic) Fields() []Field {
	return []Field{Raw("payload", g.Payload)}
}

func (g Generic) Encode(p protocol.Params) ([]byte, error) {
	return EncodeMessage(p, protocol.MessageGeneric, g.Fields())
}

func (g Generic) Digest(p protocol.Params) ([]byte, error) {
	return DigestMessage(p, protocol.MessageGeneric, g.Fields())
}
