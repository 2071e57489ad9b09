package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aswincandra/olist-analytics/internal/agent"
	"github.com/aswincandra/olist-analytics/internal/config"
	"github.com/aswincandra/olist-analytics/internal/llm/openai"
	"github.com/aswincandra/olist-analytics/internal/metrics"
	"github.com/aswincandra/olist-analytics/internal/repository"
	"github.com/aswincandra/olist-analytics/internal/repository/postgres"
	"github.com/aswincandra/olist-analytics/internal/server"
	"github.com/aswincandra/olist-analytics/internal/service"
	"github.com/aswincandra/olist-analytics/internal/telegram"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// a missing or unreachable store puts the backend in demo mode:
	// agents serve fallback data instead of failing
	var repo repository.Analytics = repository.NewUnavailable()
	if cfg.HasDatabase() {
		db, err := postgres.New(ctx, cfg.Database.URL)
		if err != nil {
			logger.Warn("database not reachable, running in demo mode", zap.Error(err))
		} else {
			defer db.Close()
			repo = postgres.NewAnalyticsRepo(db)
			logger.Info("connected to database")
		}
	} else {
		logger.Warn("DATABASE_URL not set, running in demo mode")
	}

	if cfg.HasOpenAI() {
		client := openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.ChatModel,
			BaseURL: cfg.OpenAI.BaseURL,
		}, logger)
		logger.Info("chat model configured", zap.String("model", client.Model()))
	} else {
		logger.Warn("OPENAI_API_KEY not set, chat model disabled")
	}

	orchestrator := service.NewOrchestrator(service.OrchestratorDeps{
		Catalog:    agent.NewCatalogAgent(repo, logger, m),
		Reviews:    agent.NewReviewsAgent(repo, logger, m),
		Recommend:  agent.NewRecommendationAgent(repo, logger, m),
		Translator: agent.NewTranslator(repo, logger, m),
		Logger:     logger,
		Metrics:    m,
	})

	handler := server.NewHandler(orchestrator)
	router := server.NewRouter(handler, logger, cfg.Server.Debug)

	apiServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	metricsServer := &http.Server{
		Addr:              cfg.Server.MetricsAddr,
		Handler:           metrics.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("api server listening", zap.String("addr", cfg.Server.Addr))
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server listening", zap.String("addr", cfg.Server.MetricsAddr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.HasTelegram() {
		bot, err := telegram.New(telegram.BotConfig{
			Token: cfg.Telegram.Token,
			Debug: cfg.Telegram.Debug,
		}, orchestrator, logger)
		if err != nil {
			logger.Warn("telegram bot disabled", zap.Error(err))
		} else {
			g.Go(func() error {
				if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			})
		}
	}

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("api server shutdown failed", zap.Error(err))
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}

	logger.Info("stopped")
}
