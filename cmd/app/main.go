package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"CryptoAPI/internal/di"
	"CryptoAPI/pkg/config"
	"CryptoAPI/pkg/logger"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load .env before config so LoadWithEnv sees its overrides
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found, using process environment")
	}

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s provider=%s", cfg.Environment, cfg.CoinGecko.BaseURL)

	appLogger, err := logger.New(loggerConfig(cfg.Environment))
	if err != nil {
		log.Fatalf("logger setup failed: %v", err)
	}

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg, appLogger)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}

// loggerConfig picks log settings per environment. Production logs
// JSON at info level, everything else gets console output with debug.
func loggerConfig(environment string) *logger.Config {
	if environment == "production" {
		return &logger.Config{Level: "info", Format: "json", Output: "stdout"}
	}
	return &logger.Config{Level: "debug", Format: "console", Output: "stdout"}
}
