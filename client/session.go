package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Gateway is the part of *Client a Session needs.
type Gateway interface {
	Balance(ctx context.Context, address string) (uint64, error)
	Transactions(ctx context.Context, address string) ([]SignatureInfo, error)
}

// Session holds the state of one connected wallet view. All methods are
// safe for concurrent use.
type Session struct {
	api       Gateway
	connector Connector
	logger    *slog.Logger
	// clearOnDisconnect resets both views to Idle on Disconnect. Off by
	// default: the last fetched data stays visible.
	clearOnDisconnect bool

	mu           sync.Mutex
	publicKey    string
	balance      Result[uint64]
	transactions Result[[]SignatureInfo]
}

// View is a point-in-time copy of a Session.
type View struct {
	PublicKey    string
	Balance      Result[uint64]
	Transactions Result[[]SignatureInfo]
}

// Connected reports whether a public key is present.
func (v View) Connected() bool { return v.PublicKey != "" }

type SessionOption func(*Session)

// WithClearOnDisconnect makes Disconnect reset both views.
func WithClearOnDisconnect() SessionOption {
	return func(s *Session) { s.clearOnDisconnect = true }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

func NewSession(api Gateway, connector Connector, opts ...SessionOption) *Session {
	s := &Session{
		api:       api,
		connector: connector,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect asks the connector for a public key and, on success, fetches
// balance and transactions concurrently. Fetch errors land in the views,
// not in the returned error. A connector failure is logged and returned
// with the session left untouched; there is no error view for it.
func (s *Session) Connect(ctx context.Context) error {
	pk, err := s.connector.Connect(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "error connecting wallet", "error", err)
		return fmt.Errorf("connect wallet: %w", err)
	}

	s.mu.Lock()
	s.publicKey = pk
	s.balance = loading[uint64]()
	s.transactions = loading[[]SignatureInfo]()
	s.mu.Unlock()
	s.logger.InfoContext(ctx, "wallet connected", "wallet", pk)

	var g errgroup.Group
	g.Go(func() error { return s.fetchBalance(ctx, pk) })
	g.Go(func() error { return s.fetchTransactions(ctx, pk) })
	if err := g.Wait(); err != nil {
		s.logger.DebugContext(ctx, "fetch after connect failed", "error", err)
	}
	return nil
}

// Disconnect tells the connector to disconnect and forgets the public key.
// In-flight fetches are not cancelled.
func (s *Session) Disconnect(ctx context.Context) error {
	if err := s.connector.Disconnect(ctx); err != nil {
		s.logger.ErrorContext(ctx, "error disconnecting wallet", "error", err)
		return fmt.Errorf("disconnect wallet: %w", err)
	}
	s.mu.Lock()
	s.publicKey = ""
	if s.clearOnDisconnect {
		s.balance = Result[uint64]{}
		s.transactions = Result[[]SignatureInfo]{}
	}
	s.mu.Unlock()
	return nil
}

// FetchBalance refreshes the balance view. It is a no-op while no wallet
// is connected.
func (s *Session) FetchBalance(ctx context.Context) error {
	pk := s.currentKey()
	if pk == "" {
		return nil
	}
	return s.fetchBalance(ctx, pk)
}

func (s *Session) fetchBalance(ctx context.Context, pk string) error {
	lamports, err := s.api.Balance(ctx, pk)
	if err != nil {
		s.logger.ErrorContext(ctx, "error fetching balance", "wallet", pk, "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accepts(pk) {
		return err
	}
	if err != nil {
		s.balance = failed[uint64](err)
		return err
	}
	s.balance = loaded(lamports)
	return nil
}

// FetchTransactions refreshes the transactions view. It is a no-op while
// no wallet is connected.
func (s *Session) FetchTransactions(ctx context.Context) error {
	pk := s.currentKey()
	if pk == "" {
		return nil
	}
	return s.fetchTransactions(ctx, pk)
}

func (s *Session) fetchTransactions(ctx context.Context, pk string) error {
	txs, err := s.api.Transactions(ctx, pk)
	if err != nil {
		s.logger.ErrorContext(ctx, "error fetching transactions", "wallet", pk, "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accepts(pk) {
		return err
	}
	if err != nil {
		s.transactions = failed[[]SignatureInfo](err)
		return err
	}
	s.transactions = loaded(txs)
	return nil
}

// accepts reports whether a result fetched for pk may be stored. A result
// that arrives after the wallet went away is kept unless the session clears
// on disconnect; one for a replaced wallet is always dropped. Callers hold s.mu.
func (s *Session) accepts(pk string) bool {
	if s.publicKey == pk {
		return true
	}
	return s.publicKey == "" && !s.clearOnDisconnect
}

func (s *Session) currentKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publicKey
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{PublicKey: s.publicKey, Balance: s.balance, Transactions: s.transactions}
	if s.transactions.Value != nil {
		v.Transactions.Value = append([]SignatureInfo(nil), s.transactions.Value...)
	}
	return v
}
