package main

import (
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/Conceptual-Machines/magda-theory/internal/config"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// cfg is loaded once in main, before any command runs.
var cfg *config.Config

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Release:     "magda-theory@" + releaseVersion,
			Debug:       cfg.Environment != environmentProduction,
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			defer sentry.Flush(sentryFlushTimeout)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		sentry.CaptureException(err)
		os.Exit(1)
	}
}
