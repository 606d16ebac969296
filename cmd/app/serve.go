package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"interviewq/internal/config"
	"interviewq/internal/httpserver"
	"interviewq/internal/llm"
	"interviewq/internal/questions"
	"interviewq/internal/transport"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long:  "Serve POST /generate-questions; blocks until SIGINT/SIGTERM.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(envFile, cmd.Flags().Changed("env-file")); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr != "" {
		cfg.HTTPAddr = addr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("config loaded",
		slog.String("llm_api_url", cfg.LLM.APIURL),
		slog.String("llm_model", cfg.LLM.ModelName),
		slog.Duration("llm_timeout", cfg.LLM.Timeout))

	httpClient := transport.NewHTTPClient(cfg.LLM.Timeout)
	llmClient := llm.NewChatClient(cfg.LLM, httpClient, logger)
	service := questions.NewService(questions.ServiceConfig{
		Client:  llmClient,
		Model:   cfg.LLM.ModelName,
		Timeout: cfg.LLM.Timeout,
		Logger:  logger,
	})

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Logger:           logger,
		QuestionsHandler: questions.NewHandler(service, logger),
		CORSOrigins:      cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// A request may wait for the full LLM timeout before answering.
		WriteTimeout: cfg.LLM.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
	return nil
}
