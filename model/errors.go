package model

import (
	"fmt"

	"cyphra.co/verify/inspect"
	"cyphra.co/verify/message"
	"cyphra.co/verify/signature"
)

type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrInvalidMessage   ErrorCode = "INVALID_MESSAGE"
	ErrInvalidSignature ErrorCode = "INVALID_SIGNATURE"
	ErrDecodeFailed     ErrorCode = "DECODE_FAILED"
	ErrCallFailed       ErrorCode = "CALL_FAILED"
	ErrInternal         ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, msg string) *CodedError {
	return &CodedError{Code: code, Message: msg}
}

// Classify projects a codec error onto the stable API error surface.
// Unrecognized errors map to INTERNAL.
func Classify(err error) *CodedError {
	if err == nil {
		return nil
	}
	switch {
	case message.IsKind(err, message.KindEncoding), message.IsKind(err, message.KindDigest):
		return NewError(ErrInvalidMessage, err.Error())
	case signature.IsKind(err, signature.KindSignature):
		return NewError(ErrInvalidSignature, err.Error())
	case inspect.IsCallFailed(err):
		return NewError(ErrCallFailed, err.Error())
	case inspect.IsKind(err, inspect.KindDecode):
		return NewError(ErrDecodeFailed, err.Error())
	}
	return NewError(ErrInternal, err.Error())
}
