package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/verification-api/internal/application/verification"
	"github.com/verification-api/internal/config"
	"github.com/verification-api/internal/infrastructure/dynamo"
	"github.com/verification-api/internal/infrastructure/memory"
	transporthttp "github.com/verification-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	if cfg.APIKey == "" {
		log.Fatal("API_KEY must be set")
	}

	var repo verification.Store
	switch cfg.StorageBackend {
	case "dynamo":
		// Bootstrap creates the table if it doesn't exist.
		client := dynamo.NewClient(cfg)
		dynamo.Bootstrap(context.Background(), client, cfg.DynamoTableVerifications)
		repo = dynamo.NewVerificationRepo(client, cfg.DynamoTableVerifications)
	case "memory":
		repo = memory.NewVerificationRepo()
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q (want memory or dynamo)", cfg.StorageBackend)
	}

	router := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		VerificationRepo: repo,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, backend=%s)", cfg.AppPort, cfg.AppEnv, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
