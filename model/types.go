package model

// SignedContribution is the boundary projection of a signed
// contribution-verification message, as emitted by operator tooling.
type SignedContribution struct {
	CampaignID     string `json:"campaign_id"`
	ContributionID string `json:"contribution_id"`

	// BlobID is the payload's content identifier (CIDv1 raw+sha2-256).
	BlobID string `json:"blob_id,omitempty"`

	// ContentHash is the hex digest carried in the canonical message.
	ContentHash string `json:"content_hash"`

	QualityScore uint64 `json:"quality_score"`

	// Digest is the hex 32-byte message digest the verifier recomputes.
	Digest string `json:"digest"`

	// Signature is the base64 raw 64-byte signature.
	Signature string `json:"signature"`

	// SignerKey is the "ed25519:<base64>" public key of the signer.
	SignerKey string `json:"signer_key,omitempty"`
}
