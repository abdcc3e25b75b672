// Package main is the entry point for the Jokebox API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"jokebox/src/app/server"
	"jokebox/src/infra/config"
	"jokebox/src/infra/db"
	"jokebox/src/infra/logger"
	"jokebox/src/infra/repo"
	"jokebox/src/infra/token"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize repository and session tokens
	jokeboxRepo := repo.NewPostgresRepository(pg, log)
	tokens := token.New(cfg.Auth)

	// Create and run HTTP server
	srv := server.New(cfg, log, jokeboxRepo, tokens)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
