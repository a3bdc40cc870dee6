// cmd/audit-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/beigestudio/linkedin-lead-lab-report/internal/audit"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/aws"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/config"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/logger"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/email"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/llm"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting audit server",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	llmClient := llm.NewClient(llm.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.GetTimeout(),
	}, log)

	var mailer audit.Mailer
	if cfg.Email.Enabled {
		sesClient, err := aws.NewSESClient(context.Background(), cfg.Email.AWSRegion)
		if err != nil {
			zapLog.Fatal("failed to create SES client", zap.Error(err))
		}
		mailer = email.NewSender(sesClient, cfg.Email.FromEmail, log)
	} else {
		zapLog.Warn("email delivery disabled, reports will not be mailed")
	}

	service := audit.NewService(llmClient, mailer, cfg.Email.GetTimeout(), log)
	handler := server.NewHandler(service, log)
	router := server.NewRouter(handler)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     router,
		ReadTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down audit server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
}
