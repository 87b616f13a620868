package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/punchamoorthee/fintransact/internal/api"
	"github.com/punchamoorthee/fintransact/internal/config"
	"github.com/punchamoorthee/fintransact/internal/ledger"
	"github.com/punchamoorthee/fintransact/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to yaml config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	pgStore, err := store.NewPostgresStore(cfg.DBSource)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	engine := ledger.NewEngine(pgStore)
	handler := api.NewHandler(engine, pgStore, pgStore)

	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", handler.HealthCheckHandler).Methods("GET")

	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.Use(api.WithRequestLogging(logger), mux.MiddlewareFunc(api.WithMetrics))
	apiV1.HandleFunc("/transactions/summary", handler.GetSummaryHandler).Methods("GET")
	apiV1.HandleFunc("/transactions/void/{id:[0-9]+}", handler.VoidTransactionHandler).Methods("PUT")
	apiV1.HandleFunc("/transactions/{id:[0-9]+}", handler.GetTransactionHandler).Methods("GET")
	apiV1.HandleFunc("/transactions/{id:[0-9]+}", handler.UpdateTransactionHandler).Methods("PUT")
	apiV1.HandleFunc("/transactions/{id:[0-9]+}", handler.DeleteTransactionHandler).Methods("DELETE")
	apiV1.HandleFunc("/transactions", handler.ListTransactionsHandler).Methods("GET")
	apiV1.HandleFunc("/transactions", handler.CreateTransactionHandler).Methods("POST")
	apiV1.HandleFunc("/customers/{id:[0-9]+}/balance", handler.GetCustomerBalanceHandler).Methods("GET")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
