package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-cofounder/internal/bootstrap"
	"ai-cofounder/internal/config"
	"ai-cofounder/internal/features/advisor/application"
	"ai-cofounder/internal/features/advisor/infrastructure"
	"ai-cofounder/internal/logging"
	"ai-cofounder/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// openBrowser is replaced in tests.
var openBrowser = bootstrap.OpenBrowser

func runServe(cmd *cobra.Command, flags *rootFlags) error {
	logger, err := logging.New(flags.verbose)
	if err != nil {
		return &exitCodeError{code: ExitFailure, msg: err.Error()}
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(config.Options{
		Path:      flags.configPath,
		Provider:  flags.provider,
		Model:     flags.model,
		Ports:     flags.ports,
		NoBrowser: flags.noBrowser,
	}, logger)
	if err != nil {
		return &exitCodeError{code: ExitFailure, msg: "Configuration error: " + err.Error()}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := infrastructure.NewGenerator(ctx, infrastructure.AIConfig{
		Provider:    cfg.Provider,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		BaseURL:     cfg.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	if !flags.verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := server.NewRouter(server.Deps{
		AdvisorService:   application.NewAdvisorService(generator, cfg.GenerationTimeout, logger),
		AppConfigService: config.NewAppConfigService(cfg),
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	console := bootstrap.NewConsole(out)
	boot := bootstrap.New(cfg.Host, cfg.Ports, logger, bootstrap.WithOutput(out))
	ln, err := boot.Listen(ctx)
	if err != nil {
		switch {
		case errors.Is(err, bootstrap.ErrNoPortAvailable):
			return &exitCodeError{code: ExitNoPortFound}
		case ctx.Err() != nil:
			fmt.Fprintln(out, "\nApplication stopped by user")
			return nil
		default:
			return err
		}
	}

	url := "http://" + ln.Addr().String()
	console.Launched(url)
	logger.Info("AI Co-Founder started",
		zap.String("url", url),
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model))

	if cfg.OpenBrowser {
		if err := openBrowser(url); err != nil {
			logger.Warn("failed to open browser", zap.String("url", url), zap.Error(err))
		}
	}

	if err := server.Serve(ctx, ln, router, cfg.ShutdownTimeout, logger); err != nil {
		return err
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		fmt.Fprintln(out, "\nApplication stopped by user")
	}
	return nil
}
