package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hypertodo/hypertodo/config"
	"github.com/hypertodo/hypertodo/log"
	"github.com/hypertodo/hypertodo/server"
)

func main() {
	cfg := config.Get()

	srv, err := server.New(&server.Config{
		Port:         cfg.Port,
		Host:         cfg.Host,
		Env:          cfg.Env,
		DatabasePath: cfg.DatabasePath,
		TemplateDir:  cfg.TemplateDir,
		DBLogQueries: cfg.DBLogQueries,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	// Start server
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	log.Info().Msg("server stopped")
}
