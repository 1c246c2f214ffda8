// Package api boots the adoption landing page backend.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	adoptionserver "github.com/lunapup/adoption-api/server"

	contactapp "github.com/lunapup/adoption-api/internal/domains/contact/application"
	moodoracle "github.com/lunapup/adoption-api/internal/domains/mood/adapters/oracle"
	moodobs "github.com/lunapup/adoption-api/internal/domains/mood/adapters/observability"
	moodapp "github.com/lunapup/adoption-api/internal/domains/mood/application"
	precheckoracle "github.com/lunapup/adoption-api/internal/domains/precheck/adapters/oracle"
	precheckobs "github.com/lunapup/adoption-api/internal/domains/precheck/adapters/observability"
	precheckratelimit "github.com/lunapup/adoption-api/internal/domains/precheck/adapters/ratelimit"
	precheckapp "github.com/lunapup/adoption-api/internal/domains/precheck/application"
	platformobservability "github.com/lunapup/adoption-api/internal/platform/observability"
	platformoracle "github.com/lunapup/adoption-api/internal/platform/oracle"
	platformratelimit "github.com/lunapup/adoption-api/internal/platform/ratelimit"
)

// Run boots the HTTP API with observability, the oracle client, and the
// rate limiter wired.
func Run(ctx context.Context) error {
	const serviceName = "adoption-gate-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, precheck evaluations will fail with a configuration error")
	}

	oracleClient := platformoracle.New(platformoracle.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})

	// Single-instance, in-memory limiter: not safe across multiple
	// server processes without an external shared store.
	limiter := platformratelimit.NewFixedWindow(cfg.PrecheckWindow, cfg.PrecheckMax)

	corePrecheck := precheckapp.NewService(
		precheckoracle.New(oracleClient),
		precheckratelimit.New(limiter),
	)
	precheckService := precheckobs.New(
		corePrecheck,
		precheckobs.WithLogger(logger),
		precheckobs.WithTracer(instruments.Tracer("internal.precheck.application")),
		precheckobs.WithMeter(instruments.Meter("internal.precheck.application")),
	)

	coreMood := moodapp.NewService(moodoracle.New(oracleClient))
	moodService := moodobs.New(
		coreMood,
		moodobs.WithLogger(logger),
		moodobs.WithTracer(instruments.Tracer("internal.mood.application")),
		moodobs.WithMeter(instruments.Meter("internal.mood.application")),
	)

	contactService := contactapp.NewService(cfg.ContactWhatsApp)

	handlers := adoptionserver.ApiHandleFunctions{
		PrecheckAPI: adoptionserver.NewPrecheckAPI(precheckService),
		MoodAPI:     adoptionserver.NewMoodAPI(moodService),
		ContactAPI:  adoptionserver.NewContactAPI(contactService),
	}

	router := adoptionserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("adoption gate API listening",
		slog.String("addr", addr),
		slog.String("model", cfg.OpenAIModel),
		slog.Duration("precheck_window", cfg.PrecheckWindow),
		slog.Int("precheck_max", cfg.PrecheckMax),
	)
	if err := router.Run(addr); err != nil {
		logger.Error("adoption gate API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}
