package enclave

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"cyphra.co/verify/attest"
	"cyphra.co/verify/signature"
)

// Client talks to a remote Signer service.
type Client struct {
	cc     *grpc.ClientConn
	client SignerClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewSignerClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(ctx, c.Timeout)
	}
	return ctx, func() {}
}

// SignMessage sends canonical message bytes and returns the raw 64-byte
// signature. The reply is re-normalized client-side so a misbehaving server
// can never hand back an enveloped or short signature unnoticed.
func (c *Client) SignMessage(ctx context.Context, msg []byte) ([]byte, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	reply, err := c.client.Sign(ctx, wrapperspb.Bytes(msg))
	if err != nil {
		return nil, err
	}
	return signature.Normalize(reply.GetValue())
}

// PublicKey fetches the enclave's raw ed25519 public key.
func (c *Client) PublicKey(ctx context.Context) (ed25519.PublicKey, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	reply, err := c.client.PublicKey(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	pub := reply.GetValue()
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("enclave public key: got %d bytes, want %d", len(pub), ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(pub), nil
}

// Attestation fetches and parses the enclave's attestation document. Callers
// still verify it with attest.Verify against the registered enclave key.
func (c *Client) Attestation(ctx context.Context) (attest.Document, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	reply, err := c.client.Attestation(ctx, &emptypb.Empty{})
	if err != nil {
		return attest.Document{}, err
	}
	return attest.Unmarshal(reply.GetValue())
}
