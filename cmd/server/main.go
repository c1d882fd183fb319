package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ai-blog-api/internal/api"
	"github.com/ai-blog-api/internal/config"
	"github.com/ai-blog-api/internal/corpus"
	"github.com/ai-blog-api/internal/database"
	"github.com/ai-blog-api/internal/generator"
	"github.com/ai-blog-api/internal/service"
	"github.com/ai-blog-api/internal/store"
	"github.com/ai-blog-api/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting AI blog API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize post store
	posts, err := newStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize post store")
	}
	defer posts.Close()

	// Initialize generator
	gen, err := newGenerator(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize generator")
	}

	// Initialize services
	services := service.NewServices(posts, gen, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("port", cfg.Server.Port).
			Str("store", cfg.Store.Backend).
			Str("generator", cfg.Generator.Strategy).
			Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}

// newStore constructs the post store backend selected by configuration
func newStore(cfg *config.Config, log zerolog.Logger) (store.PostStore, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil

	case config.BackendPostgres:
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			return nil, err
		}
		migrationsPath := os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			migrationsPath = "./migrations"
		}
		if err := db.RunMigrations(migrationsPath); err != nil {
			db.Close()
			return nil, err
		}
		return store.NewPostgresStore(db), nil

	default:
		return store.NewFileStore(cfg.Store.PostsFile)
	}
}

// newGenerator constructs the generation strategy selected by
// configuration
func newGenerator(cfg *config.Config, log zerolog.Logger) (generator.Generator, error) {
	if cfg.Generator.Strategy == config.GeneratorLLM {
		return generator.NewLLM(generator.LLMConfig{
			APIKey:  cfg.Generator.APIKey,
			Model:   cfg.Generator.Model,
			BaseURL: cfg.Generator.BaseURL,
			Timeout: cfg.Generator.Timeout,
		}, log), nil
	}

	c, err := corpus.Load(cfg.Generator.CorpusPath)
	if err != nil {
		return nil, err
	}
	return generator.NewMock(c, cfg.Generator.MockDelay, log), nil
}
