package main

import "github.com/example/walletbridge/internal/config"

// sanitizePort returns the default port when empty.
func sanitizePort(p string) string {
	if p == "" {
		return config.DefaultPort
	}
	return p
}

// chooseCommitment returns the provided commitment, or the default value when empty.
func chooseCommitment(s string) string {
	if s == "" {
		return config.DefaultCommitment
	}
	return s
}
