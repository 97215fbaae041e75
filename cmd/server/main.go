package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"advanced-ai/internal/config"
	"advanced-ai/internal/handlers"
	"advanced-ai/internal/logging"
	"advanced-ai/internal/router"
	"advanced-ai/internal/services"
	"advanced-ai/internal/web"
)

func main() {
	log := logging.NewLogger("server")
	log.Info("🚀 Starting Advanced AI relay...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout); err != nil {
		log.Fatalf("✗ Logging setup failed: %v", err)
	}
	log.Info("✓ Environment variables loaded")

	// ──── Step 2: Initialize Completion Provider ────
	var completer services.Completer
	switch cfg.Provider {
	case config.ProviderGemini:
		geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer geminiService.Close()
		completer = geminiService
		log.Infof("✓ Gemini client initialized (%s)", cfg.GeminiModel)
	default:
		timeout := time.Duration(cfg.OpenAITimeoutSeconds) * time.Second
		completer = services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIChatURL, timeout)
		log.Infof("✓ OpenAI client initialized (%s)", cfg.OpenAIChatURL)
	}

	// ──── Initialize Services & Handlers ────
	chatService := services.NewChatService(completer)
	chatHandler := handlers.NewChatHandler(chatService)
	shellHandler := handlers.NewShellHandler(web.DefaultShellData())

	// ──── Step 3: Start HTTP Server ────
	r := router.New(chatHandler, shellHandler, cfg.FrontendURL)

	errorLog := logging.Base().WriterLevel(logrus.ErrorLevel)
	defer errorLog.Close()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     stdlog.New(errorLog, "", 0),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("Graceful shutdown failed")
		}
	}()

	log.Infof("✓ Advanced AI relay ready on http://localhost:%s", cfg.Port)
	log.Infof("  Chat: POST http://localhost:%s/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
