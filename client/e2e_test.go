package client_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/example/walletbridge/client"
	"github.com/example/walletbridge/internal/handlers"
	apihttp "github.com/example/walletbridge/internal/http"
	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chainStub struct {
	lamports uint64
	sigs     []*rpc.TransactionSignature
}

func (c chainStub) GetBalance(context.Context, sol.PublicKey) (uint64, time.Duration, error) {
	return c.lamports, time.Millisecond, nil
}

func (c chainStub) GetSignatures(context.Context, sol.PublicKey) ([]*rpc.TransactionSignature, time.Duration, error) {
	return c.sigs, time.Millisecond, nil
}

func newGateway(t *testing.T, chain chainStub) *client.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := handlers.Deps{Balances: chain, Signatures: chain, Logger: logger}
	ts := httptest.NewServer(apihttp.NewRouter(handlers.NewBalanceHandler(d), handlers.NewTransactionsHandler(d), apihttp.Options{Logger: logger}))
	t.Cleanup(ts.Close)
	return client.NewClient(ts.URL, ts.Client(), logger)
}

func TestEndToEnd_ConnectRendersBalanceAndTransactions(t *testing.T) {
	sig1 := sol.MustSignatureFromBase58("5j7s6NiJS3JAkvgkoc18WVAsiSaci2pxB2A6ueCJP4tprA2TFg9wSyTLeYouxPBJEMzJinENTkpA52YStRW5Dia7")
	sig2 := sol.MustSignatureFromBase58("2TgM4N8qCMqLvfR8dxqTQgKygPNzT5KQkN5b5sT7eZPEkdxyLTXGnNQB3j7KG4DPFg5Qez5yNJBQRQ5r7DDnFfjG")
	gw := newGateway(t, chainStub{
		lamports: 5_000_000_000,
		sigs:     []*rpc.TransactionSignature{{Signature: sig1, Slot: 10}, {Signature: sig2, Slot: 9}},
	})
	wallet := sol.NewWallet().PublicKey().String()

	s := client.NewSession(gw, client.AddressConnector{Address: wallet})
	require.NoError(t, s.Connect(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, s.Snapshot().Render(&buf))
	want := "Connected Wallet: " + wallet + "\n" +
		"Balance: 5 SOL\n" +
		"Recent Transactions\n" +
		"- " + sig1.String() + "\n" +
		"- " + sig2.String() + "\n"
	assert.Equal(t, want, buf.String())
}

func TestEndToEnd_MalformedKeyShowsBothErrors(t *testing.T) {
	gw := newGateway(t, chainStub{lamports: 1})
	s := client.NewSession(gw, client.AddressConnector{Address: "Abc123notarealkey"})
	require.NoError(t, s.Connect(context.Background()))

	v := s.Snapshot()
	require.Equal(t, client.Failed, v.Balance.State)
	require.Equal(t, client.Failed, v.Transactions.State)
	for _, msg := range []string{v.Balance.Err, v.Transactions.Err} {
		assert.True(t, strings.HasPrefix(msg, "HTTP error! Status: 400"), msg)
		assert.Contains(t, msg, "Invalid public key format.")
	}

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	assert.Contains(t, buf.String(), "Error fetching balance: HTTP error! Status: 400 (Invalid public key format.)")
	assert.Contains(t, buf.String(), "Error fetching transactions: HTTP error! Status: 400 (Invalid public key format.)")
}

func TestEndToEnd_TestProbe(t *testing.T) {
	gw := newGateway(t, chainStub{})
	msg, err := gw.Test(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tested Checked", msg)
}
