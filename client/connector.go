package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sol "github.com/gagliardetto/solana-go"
)

// ErrNoWallet is returned by connectors that have nothing to connect.
var ErrNoWallet = errors.New("no wallet configured")

// Connector is a wallet connector. Connect yields the wallet's base58
// public key. The key is not validated here; the gateway does that.
type Connector interface {
	Connect(ctx context.Context) (string, error)
	Disconnect(ctx context.Context) error
}

// AddressConnector "connects" a watch-only wallet given by its address.
type AddressConnector struct {
	Address string
}

func (c AddressConnector) Connect(context.Context) (string, error) {
	addr := strings.TrimSpace(c.Address)
	if addr == "" {
		return "", ErrNoWallet
	}
	return addr, nil
}

func (AddressConnector) Disconnect(context.Context) error { return nil }

// KeypairConnector loads a solana-keygen JSON keypair file on Connect and
// exposes only its public key.
type KeypairConnector struct {
	Path string
}

func (c KeypairConnector) Connect(context.Context) (string, error) {
	if c.Path == "" {
		return "", ErrNoWallet
	}
	pk, err := sol.PrivateKeyFromSolanaKeygenFile(c.Path)
	if err != nil {
		return "", fmt.Errorf("load keypair %s: %w", c.Path, err)
	}
	return pk.PublicKey().String(), nil
}

func (KeypairConnector) Disconnect(context.Context) error { return nil }
