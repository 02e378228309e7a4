package signature

import "errors"

// Kind is a stable category for programmatic error handling. Callers should
// branch on Kind/RuleID rather than matching error strings.
type Kind string

const (
	KindSignature Kind = "Signature"
)

// Error is the package's structured error type. RuleID is a stable identifier
// naming the violated rule; Message is for humans.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}

// IsTooShort reports whether err is the fatal short-signature integrity
// failure. It is never recovered from; a short envelope means the signing
// primitive or transport corrupted the signature.
func IsTooShort(err error) bool {
	return RuleID(err) == "CYV-SIG-001"
}
