// Package main is the entry point for the Score Chart Studio server.
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

	"github.com/arvidh/chartstudio/internal/api"
	"github.com/arvidh/chartstudio/internal/config"
	"github.com/arvidh/chartstudio/internal/render"
)

func main() {
	log.Println("Starting Score Chart Studio...")

	cfgPath := getEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}

	apiAddr := getEnv("API_ADDR", cfg.ListenAddr)
	fontPath := getEnv("FONT_PATH", cfg.FontPath)

	// The font is loaded exactly once here and handed to the renderer as
	// an immutable value; renders never touch the filesystem.
	fonts, err := render.LoadFont(fontPath)
	if err != nil {
		log.Fatalf("Loading fonts: %v", err)
	}
	if fonts.Custom() {
		log.Printf("Using custom font from %s", fontPath)
	}

	renderer := render.New(fonts)
	apiServer, err := api.NewServer(apiAddr, cfg.Defaults, renderer)
	if err != nil {
		log.Fatalf("Creating server: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", apiAddr)
		if err := apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	log.Println("Endpoints:")
	log.Printf("  - UI:       http://%s/", apiAddr)
	log.Printf("  - Render:   http://%s/api/v1/charts/render", apiAddr)
	log.Printf("  - Preview:  http://%s/api/v1/charts/preview", apiAddr)
	log.Printf("  - Defaults: http://%s/api/v1/defaults", apiAddr)
	log.Printf("  - Health:   http://%s/health", apiAddr)

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal: %v, shutting down...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	log.Println("Shutdown complete")
}

// getEnv gets an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
