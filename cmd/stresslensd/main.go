// Command stresslensd is the StressLens assessment service. It loads the
// trained classifier artifact and the historical case corpus once at
// startup, then serves the assessment API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/stresslens/stresslens/internal/api"
	internaldataset "github.com/stresslens/stresslens/internal/dataset"
	"github.com/stresslens/stresslens/internal/modelstore"
	"github.com/stresslens/stresslens/internal/pipeline"
	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/config"
	"github.com/stresslens/stresslens/pkg/narrative"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	configPath := "stresslens.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	// The model and corpus are loaded exactly once; after this point both
	// are read-only for the process lifetime.
	store, err := modelstore.FromConfig(ctx, cfg.Model)
	if err != nil {
		logger.Fatal("model store", zap.Error(err))
	}
	artifact, err := store.GetModel(ctx)
	if err != nil {
		logger.Fatal("stress model unavailable, run `stresslens train` first", zap.Error(err))
	}
	clf, err := classifier.Load(artifact)
	if err != nil {
		logger.Fatal("load stress model", zap.Error(err))
	}

	corpus, err := internaldataset.Load(ctx, cfg.Dataset)
	if err != nil {
		logger.Fatal("load dataset", zap.Error(err))
	}
	logger.Info("startup",
		zap.String("model_backend", cfg.Model.Backend),
		zap.Int("corpus_cases", len(corpus)),
		zap.String("narrative_provider", cfg.Narrative.Provider),
	)

	renderer := selectRenderer(cfg.Narrative, logger)
	svc := pipeline.NewService(clf, corpus, renderer, cfg.Similar.TopN, logger)

	reg := prometheus.NewRegistry()
	handler := api.NewHandler(svc, logger, reg)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	var h http.Handler = mux
	h = api.RequestLogger(logger)(h)
	h = api.APIKeyAuth(cfg.Server.APIKey)(h)
	h = api.CORS(h)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: h,
	}

	// Graceful shutdown
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting stresslensd", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-sigCtx.Done()
	logger.Info("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// selectRenderer picks the narrative strategy at initialization. The
// generative renderer is only selected when its capability (an API key) is
// actually present; it still falls back to the deterministic renderer on
// any call failure.
func selectRenderer(cfg config.NarrativeConfig, logger *zap.Logger) narrative.Renderer {
	if cfg.Provider == "anthropic" {
		if cfg.AnthropicAPIKey == "" {
			logger.Warn("anthropic narrative requested but no API key set, using deterministic renderer")
			return narrative.NewDeterministic()
		}
		return narrative.NewGenerative(cfg.AnthropicAPIKey, cfg.Model, time.Duration(cfg.TimeoutSeconds)*time.Second)
	}
	return narrative.NewDeterministic()
}
