package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "walletview",
		Usage: "Show a Solana wallet's balance and recent transactions via walletbridge",
		Description: `Connects a wallet by address or solana-keygen keypair file, fetches its
balance and recent transaction signatures from a walletbridge server, and
prints them.`,
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Commands: []*cli.Command{
			connectCommand(),
			testCommand(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "endpoint",
				Usage:   "walletbridge server URL",
				EnvVars: []string{"WALLETBRIDGE_URL"},
				Value:   "http://localhost:3001",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "warn",
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
