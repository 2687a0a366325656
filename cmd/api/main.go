package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/iswarpatel123/braintree-render/internal/client"
	"github.com/iswarpatel123/braintree-render/internal/config"
	"github.com/iswarpatel123/braintree-render/internal/repository"
	"github.com/iswarpatel123/braintree-render/internal/retry"
	"github.com/iswarpatel123/braintree-render/internal/server"
	"github.com/iswarpatel123/braintree-render/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.ReconciliationDB)
	chargeClient := client.NewBraintreeClient(&cfg.Braintree)
	orderStore := client.NewAppwriteClient(&cfg.Appwrite)

	reconRepo := repository.NewReconciliationRepository(db)

	checkoutService := service.NewCheckoutService(
		chargeClient,
		orderStore,
		reconRepo,
		retry.Policy{
			MaxAttempts: cfg.Checkout.RetryAttempts,
			Delay:       cfg.Checkout.RetryDelay,
		},
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(checkoutService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
