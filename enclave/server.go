package enclave

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"cyphra.co/verify/attest"
	"cyphra.co/verify/message"
	"cyphra.co/verify/protocol"
	"cyphra.co/verify/signature"
)

// Server exposes a signature.Signer over the Signer gRPC service.
//
// The server digests incoming canonical message bytes with the protocol's
// pinned algorithm before signing, so a caller can never obtain a signature
// over bytes the protocol would not hash.
type Server struct {
	UnimplementedSignerServer

	Params protocol.Params
	Signer signature.Signer

	// Attestor supplies the enclave's current attestation document. Optional;
	// when nil the Attestation method reports Unimplemented.
	Attestor func() (attest.Document, error)
}

func (s *Server) Sign(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Signer == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing signer")
	}
	digest, err := message.Digest(s.Params.Digest, in.GetValue())
	if err != nil {
		// An unknown digest algorithm is a deployment fault, not a caller one.
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	raw, err := s.Signer.Sign(digest)
	if err != nil {
		return nil, mapErr(err)
	}
	// Enforce the raw-width contract on the server side too.
	raw, err = signature.Normalize(raw)
	if err != nil {
		return nil, status.Error(codes.DataLoss, err.Error())
	}
	return wrapperspb.Bytes(raw), nil
}

func (s *Server) PublicKey(ctx context.Context, in *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	_ = ctx
	_ = in
	if s == nil || s.Signer == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing signer")
	}
	return wrapperspb.Bytes(s.Signer.Public()), nil
}

func (s *Server) Attestation(ctx context.Context, in *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	_ = ctx
	_ = in
	if s == nil || s.Attestor == nil {
		return nil, status.Error(codes.Unimplemented, "attestation not configured")
	}
	doc, err := s.Attestor()
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	b, err := doc.Marshal()
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.Bytes(b), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case signature.IsTooShort(err):
		return status.Error(codes.DataLoss, err.Error())
	case signature.IsKind(err, signature.KindSignature):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
