// Command mjtransd runs the prompt-translation HTTP API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/PolyglotLabs/mjtrans"
	"github.com/PolyglotLabs/mjtrans/cache"
	"github.com/PolyglotLabs/mjtrans/history"
	"github.com/PolyglotLabs/mjtrans/provider"
	"github.com/PolyglotLabs/mjtrans/server"
	"github.com/PolyglotLabs/mjtrans/store"
)

// cacheTTLSeconds is the lifetime of cached plain translations.
const cacheTTLSeconds = 3600

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine; real deployments set env directly.
	_ = godotenv.Load()

	production := os.Getenv("APP_ENV") == "production"

	logger, err := newLogger(production)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()

	deepseek := provider.NewDeepSeekClient(provider.DeepSeekConfig{
		APIKey:  os.Getenv("DEEPSEEK_API_KEY"),
		BaseURL: os.Getenv("DEEPSEEK_API_URL"),
	})
	gemini, err := provider.NewGeminiClient(ctx, provider.GeminiConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	})
	if err != nil {
		return err
	}
	defer gemini.Close()

	defaultProvider := mjtrans.Provider(os.Getenv("DEFAULT_TRANSLATE_PROVIDER"))
	if !defaultProvider.Valid() {
		defaultProvider = mjtrans.ProviderDeepSeek
	}

	translationCache, prompts, err := buildStorage(logger)
	if err != nil {
		return err
	}

	translator := mjtrans.NewTranslator(
		mjtrans.WithClient(mjtrans.ProviderDeepSeek, deepseek),
		mjtrans.WithClient(mjtrans.ProviderGemini, gemini),
		mjtrans.WithDefaultProvider(defaultProvider),
		mjtrans.WithCache(translationCache),
		mjtrans.WithLogger(logger),
	)

	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(server.Config{
		Translator: translator,
		History:    history.NewStore(history.DefaultCapacity),
		Prompts:    prompts,
		Logger:     logger,
		Production: production,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	logger.Info("starting translation API",
		zap.String("port", port),
		zap.String("default_provider", string(defaultProvider)),
		zap.String("version", mjtrans.FullVersion()))

	return srv.Router().Run(":" + port)
}

// buildStorage picks Redis-backed storage when REDIS_URL is set, and
// in-memory storage otherwise.
func buildStorage(logger *zap.Logger) (mjtrans.TranslationCache, store.PromptStore, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return cache.NewInMemoryCache(cacheTTLSeconds), store.NewMemoryStore(), nil
	}

	rc, err := cache.NewRedisCache(cache.RedisConfig{URL: redisURL, TTL: cacheTTLSeconds})
	if err != nil {
		return nil, nil, fmt.Errorf("redis cache: %w", err)
	}
	rs, err := store.NewRedisStore(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("redis store: %w", err)
	}

	logger.Info("using redis storage")
	return rc, rs, nil
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
