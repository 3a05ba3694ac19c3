package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/agent"
	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/generation"
	"github.com/projectforge/forge/internal/infrastructure/config"
	"github.com/projectforge/forge/internal/infrastructure/logging"
	"github.com/projectforge/forge/internal/infrastructure/monitoring"
	"github.com/projectforge/forge/internal/llm"
	"github.com/projectforge/forge/internal/orchestrator"
	"github.com/projectforge/forge/internal/server"
)

func main() {
	port := flag.String("port", "", "Server port (overrides PORT)")
	dev := flag.Bool("dev", false, "Development mode (colored logs, debug level)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logger = logging.NewDefault()
		logger.Warn("invalid log config, using defaults", zap.Error(err))
	}
	defer logger.Sync()

	metrics := monitoring.NewMetrics()

	client := llm.NewHTTPClient(llm.Config{
		BaseURL:           cfg.LLM.BaseURL,
		APIKey:            cfg.LLM.APIKey,
		Model:             cfg.LLM.Model,
		MaxTokens:         cfg.LLM.MaxTokens,
		Timeout:           cfg.LLM.Timeout,
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
	}, logger.Named("llm"))

	analyst := agent.NewAnalyst(client, logger.Named("agent"))
	fleet := []agent.Agent{
		analyst,
		agent.NewDatabase(client, logger.Named("agent")),
		agent.NewBackend(client, logger.Named("agent")),
		agent.NewFrontend(client, logger.Named("agent")),
		agent.NewDevOps(client, logger.Named("agent")),
		agent.NewQA(client, logger.Named("agent")),
		agent.NewStructure(client, logger.Named("agent")),
		agent.NewIntegration(client, logger.Named("agent")),
	}

	orch := orchestrator.New(fleet,
		orchestrator.WithWorkers(cfg.Orchestrator.Workers),
		orchestrator.WithAgentTimeout(cfg.Orchestrator.AgentTimeout),
		orchestrator.WithLogger(logger.Named("orchestrator")),
		orchestrator.WithRunHook(metrics.RecordAgentRun),
	)

	norm := blueprint.NewNormalizer(
		blueprint.WithLogger(logger.Named("normalizer")),
		blueprint.WithOutcomeHook(func(o blueprint.Outcome) {
			metrics.RecordNormalization(string(o))
		}),
	)

	svc := generation.NewService(analyst, norm, orch,
		generation.WithLogger(logger.Named("generation")),
		generation.WithCompletedHook(metrics.RecordGeneration),
		generation.WithInFlightHooks(metrics.IncGenerationsInFlight, metrics.DecGenerationsInFlight),
	)

	srv := server.New(cfg, server.Deps{
		Service:      svc,
		Orchestrator: orch,
		Normalizer:   norm,
		Metrics:      metrics,
		Logger:       logger.Named("server"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
