package solana

import (
	"context"
	"log/slog"
	"time"

	"github.com/example/walletbridge/internal/metrics"
	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// RPCClient is the subset of *rpc.Client the gateway uses. *rpc.Client
// satisfies it directly; tests supply fakes.
type RPCClient interface {
	GetBalance(ctx context.Context, account sol.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	GetSignaturesForAddressWithOpts(ctx context.Context, account sol.PublicKey, opts *rpc.GetSignaturesForAddressOpts) ([]*rpc.TransactionSignature, error)
}

// BalanceFetcher abstracts fetching balances for a wallet.
type BalanceFetcher interface {
	GetBalance(ctx context.Context, pubkey sol.PublicKey) (lamports uint64, latency time.Duration, err error)
}

// SignatureFetcher abstracts listing recent signatures for a wallet.
type SignatureFetcher interface {
	GetSignatures(ctx context.Context, pubkey sol.PublicKey) ([]*rpc.TransactionSignature, time.Duration, error)
}

// Client wraps a single RPC connection at a fixed commitment. It is built
// once at startup and shared by all handlers.
type Client struct {
	c          RPCClient
	commitment rpc.CommitmentType
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewClient creates a Client for rpcURL. No connection is made until the
// first call.
func NewClient(rpcURL string, commitment string, m *metrics.Metrics, logger *slog.Logger) *Client {
	return NewClientWithRPC(rpc.New(rpcURL), commitment, m, logger)
}

// NewClientWithRPC builds a Client around an existing RPCClient.
func NewClientWithRPC(c RPCClient, commitment string, m *metrics.Metrics, logger *slog.Logger) *Client {
	cm := rpc.CommitmentType(commitment)
	if cm == "" {
		cm = rpc.CommitmentConfirmed
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{c: c, commitment: cm, metrics: m, logger: logger}
}

// Commitment returns the commitment level used for every call.
func (cl *Client) Commitment() rpc.CommitmentType { return cl.commitment }

func (cl *Client) GetBalance(ctx context.Context, pubkey sol.PublicKey) (uint64, time.Duration, error) {
	start := time.Now()
	res, err := cl.c.GetBalance(ctx, pubkey, cl.commitment)
	lat := time.Since(start)
	cl.metrics.RecordRPCCall("getBalance", err, lat)
	if err != nil {
		return 0, lat, err
	}
	cl.logger.DebugContext(ctx, "rpc getBalance", "wallet", pubkey.String(), "latency_ms", lat.Milliseconds())
	return res.Value, lat, nil
}

// GetSignatures returns the upstream page of signatures, newest first,
// without limit or cursor so the node default applies.
func (cl *Client) GetSignatures(ctx context.Context, pubkey sol.PublicKey) ([]*rpc.TransactionSignature, time.Duration, error) {
	start := time.Now()
	out, err := cl.c.GetSignaturesForAddressWithOpts(ctx, pubkey, &rpc.GetSignaturesForAddressOpts{
		Commitment: cl.commitment,
	})
	lat := time.Since(start)
	cl.metrics.RecordRPCCall("getSignaturesForAddress", err, lat)
	if err != nil {
		return nil, lat, err
	}
	cl.logger.DebugContext(ctx, "rpc getSignaturesForAddress", "wallet", pubkey.String(), "count", len(out), "latency_ms", lat.Milliseconds())
	return out, lat, nil
}
