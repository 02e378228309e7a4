// Package protocol pins the constants the verification codec shares with the
// on-chain verifier module.
//
// The digest algorithm and the field layout of every message kind are part of
// the wire contract: the verifier recomputes the same bytes independently and
// must agree bit-for-bit. They are therefore modeled as an explicit, versioned
// Params value rather than free-floating package constants, so that a verifier
// upgrade is a single configuration swap.
package protocol

// DigestAlg names a 256-bit hash function.
type DigestAlg string

const (
	DigestBLAKE2b256 DigestAlg = "blake2b-256"
	DigestSHA256     DigestAlg = "sha256"
	DigestSHA3256    DigestAlg = "sha3-256"
)

// DigestSize is the byte width of every supported digest.
const DigestSize = 32

// Known reports whether a is a supported digest algorithm name.
func (a DigestAlg) Known() bool {
	switch a {
	case DigestBLAKE2b256, DigestSHA256, DigestSHA3256:
		return true
	}
	return false
}

// FieldKind is the serialization class of a canonical message field.
type FieldKind string

const (
	FieldUtf8   FieldKind = "utf8"
	FieldRaw    FieldKind = "raw"
	FieldUInt64 FieldKind = "uint64"
)

// MessageKind names a canonical message layout.
type MessageKind string

const (
	// MessageContribution is the contribution-verification message: the layout
	// the verifier hashes when it checks a scored contribution.
	MessageContribution MessageKind = "contribution-verification"

	// MessageGeneric is the generic message-signing layout: a single opaque
	// payload field.
	MessageGeneric MessageKind = "message-signing"
)

// FieldSpec declares one field of a canonical message layout.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// Params is a versioned set of protocol constants. Values are immutable once
// published; a verifier convention change is a new Params value, never an
// in-place edit.
type Params struct {
	// Spec identifies the protocol revision, e.g. "cyphra-verify-1".
	Spec string

	// Digest is the single externally mandated hash function. The codec never
	// defaults this: an unknown or empty algorithm fails loudly at encode time.
	Digest DigestAlg

	// Layouts maps each message kind to its fixed field order. Order and field
	// kinds are part of the wire contract and must never be reordered within a
	// Spec revision.
	Layouts map[MessageKind][]FieldSpec
}

// Layout returns the field layout for kind.
func (p Params) Layout(kind MessageKind) ([]FieldSpec, bool) {
	l, ok := p.Layouts[kind]
	return l, ok
}

// V1 is the current protocol revision.
//
// The chain's verifier module recomputes digests with blake2b-256. sha256
// appears in older operator tooling and remains a supported algorithm name so
// historical fixtures stay checkable, but live Params must pin exactly the
// algorithm the deployed verifier uses.
var V1 = Params{
	Spec:   "cyphra-verify-1",
	Digest: DigestBLAKE2b256,
	Layouts: map[MessageKind][]FieldSpec{
		MessageContribution: {
			{Name: "campaign_id", Kind: FieldUtf8},
			{Name: "contribution_id", Kind: FieldUtf8},
			{Name: "content_hash", Kind: FieldRaw},
			{Name: "quality_score", Kind: FieldUInt64},
		},
		MessageGeneric: {
			{Name: "payload", Kind: FieldRaw},
		},
	},
}
