package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"pdca-planner/config"
	_ "pdca-planner/docs" // Swagger docs
	"pdca-planner/internal/goal/parser"
	goalchatHTTP "pdca-planner/internal/goalchat/delivery/http"
	goalchatUC "pdca-planner/internal/goalchat/usecase"
	"pdca-planner/internal/httpserver"
	"pdca-planner/internal/middleware"
	"pdca-planner/pkg/llmprovider"
	"pdca-planner/pkg/log"
)

// @title       PDCA Planner API
// @description Goal planning chat backed by DeepSeek, Qwen, GLM or any OpenAI-compatible model, with rule based goal extraction.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	var (
		cfg *config.Config
		err error
	)
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting PDCA planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelayDuration(),
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
	}, logger)
	logger.Infof(ctx, "LLM providers: %s", strings.Join(llmManager.Providers(), ", "))

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 5. Goal chat domain
	goalChatUC := goalchatUC.New(logger, llmManager, parser.New(), goalchatUC.MustNewMetrics(registry), goalchatUC.Config{
		Temperature:   cfg.Chat.Temperature,
		MaxTokens:     cfg.Chat.MaxTokens,
		HistoryWindow: cfg.Chat.HistoryWindow,
		SystemPrompt:  cfg.Chat.SystemPrompt,
	})
	goalChatHandler := goalchatHTTP.New(logger, goalChatUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.Chat.RateLimitPerMin}),
		Gatherer:        registry,
		Readiness: func(context.Context) error {
			if len(llmManager.Providers()) == 0 {
				return errors.New("no LLM provider available")
			}
			return nil
		},
		GoalChatHandler: goalChatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
