package message

import (
	"bytes"
	"testing"

	"cyphra.co/verify/protocol"
)

func contributionFields() []Field {
	return Contribution{
		CampaignID:     "test_campaign_123",
		ContributionID: "contribution_456",
		ContentHash:    []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		QualityScore:   85,
	}.Fields()
}

func TestEncode_ConcatenationOrderAndWidths(t *testing.T) {
	layout, _ := protocol.V1.Layout(protocol.MessageContribution)
	got, err := Encode(layout, contributionFields())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var want []byte
	want = append(want, "test_campaign_123"...)
	want = append(want, "contribution_456"...)
	want = append(want, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	// Trailing u64 is always 8 bytes little-endian, zero-padded.
	want = append(want, 85, 0, 0, 0, 0, 0, 0, 0)

	if !bytes.Equal(got, want) {
		t.Fatalf("pre-image mismatch:\n got %x\nwant %x", got, want)
	}
}

func TestEncode_EmptyFieldsContributeNothing(t *testing.T) {
	got, err := Contribution{QualityScore: 0}.Encode(protocol.V1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Empty identifiers and an empty content hash are legal; only the
	// fixed-width counter remains.
	want := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("pre-image mismatch: got %x want %x", got, want)
	}
}

func TestEncode_RejectsArityMismatch(t *testing.T) {
	layout, _ := protocol.V1.Layout(protocol.MessageContribution)
	_, err := Encode(layout, contributionFields()[:3])
	if err == nil {
		t.Fatalf("expected error for missing field")
	}
	if !IsKind(err, KindEncoding) {
		t.Fatalf("expected KindEncoding, got %v", err)
	}
}

func TestEncode_RejectsReorderedFields(t *testing.T) {
	layout, _ := protocol.V1.Layout(protocol.MessageContribution)
	fields := contributionFields()
	fields[0], fields[1] = fields[1], fields[0]
	_, err := Encode(layout, fields)
	if err == nil {
		t.Fatalf("expected error for reordered fields")
	}
	if RuleID(err) != "CYV-ENC-102" {
		t.Fatalf("expected RuleID CYV-ENC-102, got %s", RuleID(err))
	}
}

func TestEncode_RejectsKindMismatch(t *testing.T) {
	layout, _ := protocol.V1.Layout(protocol.MessageContribution)
	fields := contributionFields()
	// Same name, wrong serialization class.
	fields[3] = Utf8("quality_score", "85")
	_, err := Encode(layout, fields)
	if err == nil {
		t.Fatalf("expected error for kind mismatch")
	}
	if RuleID(err) != "CYV-ENC-103" {
		t.Fatalf("expected RuleID CYV-ENC-103, got %s", RuleID(err))
	}
}

func TestEncodeMessage_UnknownKind(t *testing.T) {
	_, err := EncodeMessage(protocol.V1, "reward-claim", nil)
	if err == nil {
		t.Fatalf("expected error for unknown message kind")
	}
	if RuleID(err) != "CYV-ENC-104" {
		t.Fatalf("expected RuleID CYV-ENC-104, got %s", RuleID(err))
	}
}

func TestUInt64FromInt_Negative(t *testing.T) {
	_, err := UInt64FromInt("quality_score", -1)
	if err == nil {
		t.Fatalf("expected error for negative value")
	}
	if !IsValueOutOfRange(err) {
		t.Fatalf("expected value-out-of-range, got %v", err)
	}

	f, err := UInt64FromInt("quality_score", 85)
	if err != nil {
		t.Fatalf("UInt64FromInt(85): %v", err)
	}
	if !bytes.Equal(f.appendTo(nil), []byte{85, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("unexpected encoding: %x", f.appendTo(nil))
	}
}

func TestGeneric_PassThrough(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	got, err := Generic{Payload: payload}.Encode(protocol.V1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload must pass through unmodified: got %x", got)
	}
}
