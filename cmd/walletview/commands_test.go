package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallet = "11111111111111111111111111111111"

func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/test":
			json.NewEncoder(w).Encode(map[string]string{"message": "Tested Checked"})
		case "/api/balance/" + wallet:
			json.NewEncoder(w).Encode(map[string]uint64{"balance": 2_500_000_000})
		case "/api/transactions/" + wallet:
			w.Write([]byte(`[{"signature":"sigA","slot":5},{"signature":"sigB","slot":4}]`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid public key format."})
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"walletview"}, args...))
	return out.String(), err
}

func TestConnectCommand_RendersView(t *testing.T) {
	server := fakeServer(t)

	out, err := run(t, "--endpoint", server.URL, "connect", "--address", wallet)
	require.NoError(t, err)
	assert.Equal(t, "Connected Wallet: "+wallet+"\nBalance: 2.5 SOL\nRecent Transactions\n- sigA\n- sigB\n", out)
}

func TestConnectCommand_EndpointFromEnv(t *testing.T) {
	server := fakeServer(t)
	t.Setenv("WALLETBRIDGE_URL", server.URL)

	out, err := run(t, "connect", "--address", wallet, "--clear-on-disconnect")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance: 2.5 SOL")
}

func TestConnectCommand_InvalidAddressShowsErrors(t *testing.T) {
	server := fakeServer(t)

	out, err := run(t, "--endpoint", server.URL, "connect", "--address", "nope")
	require.NoError(t, err)
	assert.Contains(t, out, "Error fetching balance: HTTP error! Status: 400 (Invalid public key format.)")
	assert.Contains(t, out, "Error fetching transactions: HTTP error! Status: 400 (Invalid public key format.)")
}

func TestConnectCommand_FlagErrors(t *testing.T) {
	_, err := run(t, "connect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--address or --keypair is required")

	_, err = run(t, "connect", "--address", wallet, "--keypair", "id.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestConnectCommand_MissingKeypair(t *testing.T) {
	server := fakeServer(t)

	out, err := run(t, "--endpoint", server.URL, "connect", "--keypair", t.TempDir()+"/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect wallet")
	assert.Empty(t, out)
}

func TestTestCommand(t *testing.T) {
	server := fakeServer(t)

	out, err := run(t, "--endpoint", server.URL, "test")
	require.NoError(t, err)
	assert.Equal(t, "Tested Checked\n", out)
}

func TestTestCommand_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := run(t, "--endpoint", url, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test request failed")
}
