package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"adcraft/internal/application/creative"
	"adcraft/internal/application/export"
	"adcraft/internal/delivery/http/handler"
	"adcraft/internal/delivery/http/router"
	"adcraft/internal/infrastructure/config"
	"adcraft/internal/infrastructure/logger"
	"adcraft/internal/infrastructure/repository"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)

	// Verify the lexicon before serving anything
	if err := creative.DefaultLexicon().Check(); err != nil {
		log.Fatal().Err(err).Msg("lexicon is incomplete")
	}

	// Initialize repositories
	presets, err := repository.NewPresetRepository(cfg.PresetsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load presets")
	}

	// Initialize services
	creativeSvc := creative.NewService(nil)
	exportSvc := export.NewService()

	// Setup routes
	httpLog := logger.Component(log, "http")
	handlers := router.Handlers{
		Concept: handler.NewConceptHandler(creativeSvc, exportSvc, cfg.MaxBriefBytes, httpLog),
		Catalog: handler.NewCatalogHandler(presets, httpLog),
	}
	mux := router.Setup(handlers, router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         httpLog,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.Env).
			Strs("origins", cfg.AllowedOrigins).
			Msg("adcraft server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
