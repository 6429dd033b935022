/**
 * @description
 * This is the main entry point for the transaction dashboard backend. It is
 * responsible for initializing all components of the service: configuration,
 * the YaYa Wallet API client with its HMAC signer, the sample-data fallback,
 * the core application service, metrics, and the HTTP server. It wires
 * everything together and starts the service.
 *
 * @dependencies
 * - log, net/http: Standard Go libraries for logging and HTTP server functionality.
 * - internal/api, internal/app, internal/config, internal/metrics: Internal packages.
 * - pkg/yayaclient: Client for the YaYa Wallet API.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yayadash/transaction-dashboard/internal/api"
	"github.com/yayadash/transaction-dashboard/internal/app"
	"github.com/yayadash/transaction-dashboard/internal/config"
	"github.com/yayadash/transaction-dashboard/internal/metrics"
	"github.com/yayadash/transaction-dashboard/pkg/yayaclient"
)

func main() {
	// Load application configuration from environment variables.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config load failed\" err=%v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config validation failed\" err=%v", err)
	}

	log.Printf("level=info component=bootstrap msg=\"starting transaction dashboard backend\" port=%s env=%s api_base=%s api_key=%s",
		cfg.ServerPort, cfg.Environment, cfg.YayaAPIBaseURL, cfg.MaskedAPIKey())

	// Initialize the client for the YaYa Wallet API. Construction fails when
	// the credential is missing, so misconfiguration never survives startup.
	yayaClient, err := yayaclient.NewClient(cfg.YayaAPIBaseURL, cfg.APIKey, cfg.APISecret)
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"yaya client init failed\" err=%v", err)
	}

	// Initialize metrics and the core application service with its dependencies.
	collectors := metrics.New(nil)
	service := app.NewService(yayaClient, app.NewSampleGenerator(), collectors)

	// Initialize the API handlers and router.
	handlers := api.NewTransactionHandlers(service, cfg)
	router := api.Routes(handlers, collectors, cfg.FrontendURL)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	log.Printf("level=info component=http msg=\"server listening\" addr=%s", serverAddr)
	log.Printf("level=info component=http msg=\"using live YaYa Wallet API with fallback to sample data\" auth=HMAC-SHA256")

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("level=fatal component=http msg=\"server stopped unexpectedly\" err=%v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info component=http msg=\"shutdown started\"")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("level=error component=http msg=\"shutdown failed\" err=%v", err)
	}

	log.Println("level=info component=http msg=\"shutdown complete\"")
}
