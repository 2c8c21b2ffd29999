package apihttp

import (
	"log/slog"
	"net/http"

	"github.com/example/walletbridge/internal/handlers"
	"github.com/example/walletbridge/internal/metrics"
	"github.com/example/walletbridge/pkg/jsonutil"
	"github.com/go-chi/chi/v5"
)

// Options carries the optional parts of the router.
type Options struct {
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
	AllowedOrigin string
	// UI, when set, is mounted at /ui.
	UI http.Handler
}

// NewRouter wires routes and middlewares.
func NewRouter(bh *handlers.BalanceHandler, th *handlers.TransactionsHandler, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(logger, opts.Metrics))
	r.Use(CORS(opts.AllowedOrigin))

	r.Get("/test", handlers.Tested)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		jsonutil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	if opts.UI != nil {
		r.Method(http.MethodGet, "/ui", opts.UI)
		r.Method(http.MethodGet, "/ui/*", opts.UI)
	}

	r.Route("/api", func(api chi.Router) {
		api.Method(http.MethodGet, "/balance/{"+handlers.AddressParam+"}", bh)
		api.Method(http.MethodGet, "/transactions/{"+handlers.AddressParam+"}", th)
	})

	return r
}
