// The assistant server: a conversational recipe assistant that classifies
// requests, validates them against the user's profile, generates recipes
// through an AI oracle and learns preferences across sessions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alchemorsel/souschef/internal/application/assistant"
	"github.com/alchemorsel/souschef/internal/application/enhance"
	appmemory "github.com/alchemorsel/souschef/internal/application/memory"
	"github.com/alchemorsel/souschef/internal/application/nlp"
	"github.com/alchemorsel/souschef/internal/application/validation"
	"github.com/alchemorsel/souschef/internal/infrastructure/ai"
	"github.com/alchemorsel/souschef/internal/infrastructure/ai/ollama"
	"github.com/alchemorsel/souschef/internal/infrastructure/config"
	"github.com/alchemorsel/souschef/internal/infrastructure/http/server"
	"github.com/alchemorsel/souschef/internal/infrastructure/monitoring"
	gormstore "github.com/alchemorsel/souschef/internal/infrastructure/persistence/gorm"
	memorystore "github.com/alchemorsel/souschef/internal/infrastructure/persistence/memory"
	redisstore "github.com/alchemorsel/souschef/internal/infrastructure/persistence/redis"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"github.com/alchemorsel/souschef/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "directory containing config.yaml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "souschef: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.Log.Development,
	})
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting souschef",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Stores degrade to in-process memory when their backends are down so
	// the assistant always comes up.
	fallback := memorystore.NewStore()
	var sessions outbound.SessionStore = fallback
	var profiles outbound.ProfileStore = fallback
	var cache outbound.CacheStore = fallback

	if cfg.Redis.Enabled {
		rs, err := redisstore.NewStore(ctx, redisstore.Config{
			Addr:       cfg.Redis.Addr(),
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			SessionTTL: cfg.Memory.SessionTTL,
		}, log)
		if err != nil {
			log.Warn("redis unavailable, using in-process session store", zap.Error(err))
		} else {
			defer rs.Close()
			sessions, profiles, cache = rs, rs, rs
		}
	}

	var prefs outbound.PreferenceStore = fallback
	if db, err := gormstore.Open(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		log.Warn("database unavailable, preferences will not persist", zap.Error(err))
	} else {
		prefs = gormstore.NewPreferenceRepository(db)
	}

	oracle := buildOracle(cfg, cache, log)

	metrics := monitoring.NewMetrics()
	memSvc := appmemory.NewService(sessions, prefs, cfg.Memory.Window, log)
	pipeline := assistant.NewPipeline(
		nlp.NewExtractor(log),
		validation.NewValidator(log),
		enhance.NewEnhancer(log),
		memSvc,
		oracle,
		profiles,
		log,
		assistant.WithMetrics(metrics),
		assistant.WithInterCallDelay(cfg.AI.InterCallDelay),
	)

	srv := server.New(cfg.Server, pipeline, oracle, metrics.Handler(), log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildOracle(cfg *config.Config, cache outbound.CacheStore, log *zap.Logger) outbound.Oracle {
	var provider outbound.Oracle
	switch cfg.AI.Provider {
	case "mock":
		provider = ai.NewMockOracle()
	default:
		provider = ollama.NewClient(ollama.Config{
			BaseURL:       cfg.AI.BaseURL,
			Model:         cfg.AI.Model,
			FallbackModel: cfg.AI.FallbackModel,
			Timeout:       cfg.AI.Timeout,
		}, log)
	}
	return ai.NewCachingOracle(provider, cache, cfg.AI.CacheTTL, log)
}
