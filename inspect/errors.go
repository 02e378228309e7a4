package inspect

import "errors"

// Kind is a stable category for programmatic error handling. Callers should
// branch on Kind/RuleID rather than matching error strings.
type Kind string

const (
	KindDecode Kind = "Decode"
)

// Error is the package's structured error type. RuleID is a stable identifier
// naming the violated decoding rule; Message carries the shape path and the
// expected-versus-actual detail a caller needs to log what diverged.
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

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
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

// IsCallFailed reports a transport- or execution-level inspection failure.
// The decoder short-circuits before reading any payload bytes.
func IsCallFailed(err error) bool { return RuleID(err) == "CYV-DEC-001" }

// IsEmptyResult reports that the call produced no byte sequences at all.
// This is distinct from a successful call returning false or zero; the caller
// decides whether absence means failure or "not found".
func IsEmptyResult(err error) bool { return RuleID(err) == "CYV-DEC-002" }

// IsShapeMismatch reports that the raw structure's arity, nesting, or slot
// width does not match the declared shape.
func IsShapeMismatch(err error) bool { return RuleID(err) == "CYV-DEC-003" }

// IsInvalidBool reports a boolean slot whose byte is neither 0 nor 1.
func IsInvalidBool(err error) bool { return RuleID(err) == "CYV-DEC-004" }
