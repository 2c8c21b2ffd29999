package types

import (
	"encoding/json"
	"strconv"

	"github.com/gagliardetto/solana-go/rpc"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL = 1_000_000_000

// Messages returned to callers.
const (
	MsgTested         = "Tested Checked"
	MsgInvalidAddress = "Invalid public key format."
)

// BalanceResponse is the JSON response for the balance endpoint.
type BalanceResponse struct {
	Balance uint64 `json:"balance"`
}

// MessageResponse carries a human-readable message for probes and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignatureInfo mirrors one entry of getSignaturesForAddress.
type SignatureInfo struct {
	Signature          string          `json:"signature"`
	Slot               uint64          `json:"slot"`
	Err                json.RawMessage `json:"err"`
	Memo               *string         `json:"memo"`
	BlockTime          *int64          `json:"blockTime"`
	ConfirmationStatus *string         `json:"confirmationStatus"`
}

// NewSignatureInfo converts an upstream rpc.TransactionSignature. A nil or
// unencodable err is reported as JSON null.
func NewSignatureInfo(ts *rpc.TransactionSignature) SignatureInfo {
	si := SignatureInfo{
		Signature: ts.Signature.String(),
		Slot:      ts.Slot,
		Err:       json.RawMessage("null"),
		Memo:      ts.Memo,
	}
	if ts.Err != nil {
		if b, err := json.Marshal(ts.Err); err == nil {
			si.Err = b
		}
	}
	if ts.BlockTime != nil {
		bt := int64(*ts.BlockTime)
		si.BlockTime = &bt
	}
	if ts.ConfirmationStatus != "" {
		cs := string(ts.ConfirmationStatus)
		si.ConfirmationStatus = &cs
	}
	return si
}

// NewSignatureInfos converts a whole upstream page, keeping its order.
func NewSignatureInfos(in []*rpc.TransactionSignature) []SignatureInfo {
	out := make([]SignatureInfo, 0, len(in))
	for _, ts := range in {
		if ts == nil {
			continue
		}
		out = append(out, NewSignatureInfo(ts))
	}
	return out
}

// LamportsToSol converts lamports to SOL as a float.
func LamportsToSol(l uint64) float64 { return float64(l) / LamportsPerSOL }

// FormatSol renders lamports as SOL with the shortest exact decimal form.
func FormatSol(l uint64) string {
	return strconv.FormatFloat(LamportsToSol(l), 'f', -1, 64)
}
