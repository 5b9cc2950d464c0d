package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aura-gateway/internal/alpaca"
	"aura-gateway/internal/config"
	"aura-gateway/internal/health"
	"aura-gateway/internal/httpserver"
	"aura-gateway/internal/marketdata"
	"aura-gateway/internal/orders"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	trading := alpaca.NewClient(cfg.AlpacaBaseURL, cfg.AlpacaKey, cfg.AlpacaSecret, cfg.HTTPTimeout)
	data := alpaca.NewDataClient(cfg.AlpacaDataURL, cfg.AlpacaKey, cfg.AlpacaSecret, cfg.HTTPTimeout)

	orderSvc := orders.NewService(trading)
	marketSvc := marketdata.NewService(data)
	router := httpserver.NewRouter(httpserver.RouterDeps{
		OrderHandler:  orders.NewHandler(orderSvc),
		MarketHandler: marketdata.NewHandler(marketSvc),
		HealthHandler: health.NewHandler(trading, time.Now().UTC()),
		AllowedOrigin: cfg.AllowedOrigin,
	})
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	log.Printf("server listening on %s", cfg.HTTPAddr)
	log.Printf("health endpoint: http://localhost%s/api/health", cfg.HTTPAddr)
	log.Printf("trading upstream: %s", cfg.AlpacaBaseURL)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
