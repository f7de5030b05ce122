package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nutriscan/nutriscan-backend/config"
	"github.com/nutriscan/nutriscan-backend/internal/analysis"
	"github.com/nutriscan/nutriscan-backend/internal/catalog"
	"github.com/nutriscan/nutriscan-backend/internal/llm"
	"github.com/nutriscan/nutriscan-backend/internal/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Create context that cancels on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize gemini client")
	}
	log.Info().Msg("gemini client initialized")

	catalogClient := catalog.NewClient(catalog.ClientOpts{BaseURL: cfg.CatalogBaseURL})

	service := analysis.NewService(geminiClient, catalogClient)
	srv := server.New(service)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("listening")
		return srv.Listen(":" + cfg.Port)
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("shutdown with error")
	} else {
		log.Info().Msg("shutdown complete")
	}
}
