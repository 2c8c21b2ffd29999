package handlers

import (
	"net/http"

	"github.com/example/walletbridge/internal/types"
	"github.com/example/walletbridge/pkg/jsonutil"
)

type TransactionsHandler struct{ Deps Deps }

func NewTransactionsHandler(deps Deps) *TransactionsHandler { return &TransactionsHandler{Deps: deps} }

// ServeHTTP handles GET /api/transactions/{address}. The upstream order is
// kept as is.
func (h *TransactionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pk, ok := addressFromRequest(w, r, h.Deps, "/api/transactions/{address}")
	if !ok {
		return
	}
	sigs, latency, err := h.Deps.Signatures.GetSignatures(r.Context(), pk)
	if err != nil {
		h.Deps.logger().ErrorContext(r.Context(), "error fetching transactions", "wallet", pk.String(), "error", err)
		jsonutil.Message(w, http.StatusInternalServerError, "Error fetching transactions: "+err.Error())
		return
	}
	out := types.NewSignatureInfos(sigs)
	h.Deps.logger().InfoContext(r.Context(), "transactions", "wallet", pk.String(), "count", len(out), "latency_ms", latency.Milliseconds())
	jsonutil.JSON(w, http.StatusOK, out)
}

// Tested is the fixed liveness probe behind GET /test.
func Tested(w http.ResponseWriter, _ *http.Request) {
	jsonutil.JSON(w, http.StatusOK, types.MessageResponse{Message: types.MsgTested})
}
