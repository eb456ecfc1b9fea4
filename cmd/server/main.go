package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tsxwatch/internal/config"
	"tsxwatch/internal/provider"
	"tsxwatch/internal/server"
)

func main() {
	cfg := config.Default()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	fetcher := provider.NewYahoo(cfg.MarketSuffix)
	srv := server.New(fetcher, log)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: srv.Router(),
	}

	go func() {
		log.Info("quote service listening", "addr", httpSrv.Addr, "suffix", cfg.MarketSuffix)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
	log.Info("quote service stopped")
}
