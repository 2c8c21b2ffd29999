package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/walletbridge/internal/config"
	"github.com/example/walletbridge/internal/handlers"
	apihttp "github.com/example/walletbridge/internal/http"
	"github.com/example/walletbridge/internal/logging"
	"github.com/example/walletbridge/internal/metrics"
	"github.com/example/walletbridge/internal/solana"
	"github.com/example/walletbridge/internal/types"
	"github.com/example/walletbridge/internal/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	logger := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		logger.Warn("config file ignored, using defaults", "error", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	cl := solana.NewClient(cfg.RPCURL, chooseCommitment(cfg.SolCommitment), m, logger)
	deps := handlers.Deps{Balances: cl, Signatures: cl, Metrics: m, Logger: logger}

	opts := apihttp.Options{Logger: logger, Metrics: m, AllowedOrigin: cfg.AllowedOrigin}
	if cfg.UIEnabled {
		ui, err := web.NewUI(web.PageData{LamportsPerSOL: types.LamportsPerSOL}, logger)
		if err != nil {
			logger.Error("ui template error", "error", err)
			os.Exit(1)
		}
		opts.UI = ui
	}
	router := apihttp.NewRouter(handlers.NewBalanceHandler(deps), handlers.NewTransactionsHandler(deps), opts)

	port := sanitizePort(cfg.Port)
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server is running", "port", port, "rpc", cfg.RPCURL, "commitment", cl.Commitment())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down")
	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
