package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/example/walletbridge/client"
	"github.com/example/walletbridge/internal/logging"
	"github.com/urfave/cli/v2"
)

func logger(c *cli.Context) *slog.Logger {
	return logging.New(c.String("log-level"), c.App.ErrWriter)
}

func newGateway(c *cli.Context) *client.Client {
	return client.NewClient(c.String("endpoint"), &http.Client{Timeout: c.Duration("timeout")}, logger(c))
}

func timeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Request timeout",
		Value: 30 * time.Second,
	}
}

func connectCommand() *cli.Command {
	return &cli.Command{
		Name:  "connect",
		Usage: "Connect a wallet, fetch its balance and transactions, then disconnect",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Base58 wallet address (watch-only)",
			},
			&cli.StringFlag{
				Name:  "keypair",
				Usage: "Path to a solana-keygen JSON keypair file",
			},
			&cli.BoolFlag{
				Name:  "clear-on-disconnect",
				Usage: "Reset balance and transactions when the wallet disconnects",
			},
			timeoutFlag(),
		},
		Action: func(c *cli.Context) error {
			var conn client.Connector
			switch {
			case c.String("address") != "" && c.String("keypair") != "":
				return errors.New("use either --address or --keypair, not both")
			case c.String("keypair") != "":
				conn = client.KeypairConnector{Path: c.String("keypair")}
			case c.String("address") != "":
				conn = client.AddressConnector{Address: c.String("address")}
			default:
				return errors.New("--address or --keypair is required")
			}

			l := logger(c)
			opts := []client.SessionOption{client.WithLogger(l)}
			if c.Bool("clear-on-disconnect") {
				opts = append(opts, client.WithClearOnDisconnect())
			}
			s := client.NewSession(newGateway(c), conn, opts...)

			if err := s.Connect(c.Context); err != nil {
				return err
			}
			if err := s.Snapshot().Render(c.App.Writer); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return s.Disconnect(c.Context)
		},
	}
}

func testCommand() *cli.Command {
	return &cli.Command{
		Name:  "test",
		Usage: "Check that the server is reachable",
		Flags: []cli.Flag{timeoutFlag()},
		Action: func(c *cli.Context) error {
			msg, err := newGateway(c).Test(c.Context)
			if err != nil {
				return fmt.Errorf("test request failed: %w", err)
			}
			fmt.Fprintln(c.App.Writer, msg)
			return nil
		},
	}
}
