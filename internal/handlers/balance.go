package handlers

import (
	"log/slog"
	"net/http"

	"github.com/example/walletbridge/internal/metrics"
	"github.com/example/walletbridge/internal/solana"
	"github.com/example/walletbridge/internal/types"
	"github.com/example/walletbridge/pkg/jsonutil"
	sol "github.com/gagliardetto/solana-go"
	"github.com/go-chi/chi/v5"
)

// AddressParam is the route parameter holding the wallet address.
const AddressParam = "address"

// Deps bundles dependencies needed by the handlers.
type Deps struct {
	Balances   solana.BalanceFetcher
	Signatures solana.SignatureFetcher
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

// addressFromRequest validates the {address} param. On failure it writes the
// 400 response itself and returns ok=false.
func addressFromRequest(w http.ResponseWriter, r *http.Request, d Deps, route string) (sol.PublicKey, bool) {
	raw := chi.URLParam(r, AddressParam)
	pk, err := solana.ParseAddress(raw)
	if err != nil {
		d.Metrics.RecordInvalidAddress(route)
		jsonutil.Message(w, http.StatusBadRequest, types.MsgInvalidAddress)
		return sol.PublicKey{}, false
	}
	return pk, true
}

type BalanceHandler struct{ Deps Deps }

func NewBalanceHandler(deps Deps) *BalanceHandler { return &BalanceHandler{Deps: deps} }

// ServeHTTP handles GET /api/balance/{address}.
func (h *BalanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pk, ok := addressFromRequest(w, r, h.Deps, "/api/balance/{address}")
	if !ok {
		return
	}
	lamports, latency, err := h.Deps.Balances.GetBalance(r.Context(), pk)
	if err != nil {
		h.Deps.logger().ErrorContext(r.Context(), "error fetching balance", "wallet", pk.String(), "error", err)
		jsonutil.Message(w, http.StatusInternalServerError, "Error fetching balance: "+err.Error())
		return
	}
	h.Deps.logger().InfoContext(r.Context(), "balance", "wallet", pk.String(), "lamports", lamports, "latency_ms", latency.Milliseconds())
	jsonutil.JSON(w, http.StatusOK, types.BalanceResponse{Balance: lamports})
}
