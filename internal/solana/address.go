package solana

import (
	"errors"

	"filippo.io/edwards25519"
	sol "github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// ErrInvalidAddress is returned for strings that are not an on-curve
// base58 public key.
var ErrInvalidAddress = errors.New("invalid public key format")

// MaxAddressLen is the longest base58 encoding of a 32-byte key. Longer
// input is rejected before decoding, which is quadratic in its length.
const MaxAddressLen = 44

// ParseAddress decodes a base58 address and checks that the 32 bytes are a
// point on the ed25519 curve. Program derived addresses fail this check.
func ParseAddress(s string) (sol.PublicKey, error) {
	if s == "" || len(s) > MaxAddressLen {
		return sol.PublicKey{}, ErrInvalidAddress
	}
	b, err := base58.Decode(s)
	if err != nil || len(b) != sol.PublicKeyLength {
		return sol.PublicKey{}, ErrInvalidAddress
	}
	if !IsOnCurve(b) {
		return sol.PublicKey{}, ErrInvalidAddress
	}
	return sol.PublicKeyFromBytes(b), nil
}

// IsOnCurve reports whether b is a valid compressed ed25519 point.
func IsOnCurve(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
