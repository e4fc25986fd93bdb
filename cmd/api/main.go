package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"smart-task-bot/config"
	_ "smart-task-bot/docs" // Swagger docs
	"smart-task-bot/internal/assistant"
	"smart-task-bot/internal/extraction"
	"smart-task-bot/internal/httpserver"
	"smart-task-bot/internal/middleware"
	"smart-task-bot/internal/reminder"
	tgDelivery "smart-task-bot/internal/task/delivery/telegram"
	"smart-task-bot/internal/task/repository/sqlstore"
	"smart-task-bot/internal/task/usecase"
	"smart-task-bot/pkg/datemath"
	"smart-task-bot/pkg/gcalendar"
	"smart-task-bot/pkg/llmprovider"
	"smart-task-bot/pkg/log"
	"smart-task-bot/pkg/telegram"
)

// @title       Smart Task Bot API
// @description Telegram task assistant with LLM extraction, reminders and Google Calendar mirroring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
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

	logger.Info(ctx, "Starting Smart Task Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlstore.Open(cfg.Database.URL)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()
	taskRepo := sqlstore.New(db, logger)

	// 4. Date parsing
	dateMathParser, err := datemath.NewParser(cfg.Task.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Task.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	displayTZ, err := time.LoadLocation(cfg.Task.DisplayTimezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid display timezone %q, falling back to UTC: %v", cfg.Task.DisplayTimezone, err)
		displayTZ = time.UTC
	}

	// 5. LLM gateway
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, replies will fall back to apologies: %v", err)
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
	}
	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfigFrom(&cfg.LLM), logger)
	gateway := assistant.New(logger, manager, assistant.Config{
		Persona:     cfg.LLM.Persona,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		JSONMode:    cfg.LLM.JSONMode,
	})
	extractionParser := extraction.New(logger, gateway)

	// 6. Telegram bot, reminders and task domain
	var (
		telegramHandler tgDelivery.Handler
		pollers         sync.WaitGroup
	)

	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

		scheduler, schErr := reminder.New(logger, taskRepo, telegramBot)
		if schErr != nil {
			logger.Errorf(ctx, "Failed to create reminder scheduler: %v", schErr)
			return
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				logger.Warnf(context.Background(), "Reminder scheduler shutdown: %v", err)
			}
		}()

		// Google Calendar client (optional)
		var calendar usecase.Calendar
		if cfg.GoogleCalendar.CredentialsPath != "" {
			calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
			if calErr != nil {
				logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
				logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			} else {
				calendar = calendarClient
				logger.Info(ctx, "✅ Google Calendar initialized")
			}
		}

		taskUC := usecase.New(
			logger,
			extractionParser,
			dateMathParser,
			taskRepo,
			scheduler,
			calendar,
			cfg.GoogleCalendar.CalendarID,
			cfg.Task.DisplayTimezone,
		)
		telegramHandler = tgDelivery.New(logger, taskUC, gateway, telegramBot, displayTZ)

		if registerWebhook(ctx, logger, telegramBot, cfg.Telegram, cfg.Webhook.Secret) {
			logger.Info(ctx, "Telegram mode: webhook")
		} else if !cfg.Telegram.DisablePolls {
			if err := telegramBot.DeleteWebhook(ctx); err != nil {
				logger.Warnf(ctx, "Failed to delete Telegram webhook: %v", err)
			}
			logger.Info(ctx, "Telegram mode: long polling")
			pollers.Add(1)
			go func() {
				defer pollers.Done()
				telegramHandler.Poll(ctx, cfg.Telegram.PollTimeout)
			}()
		}
	} else {
		logger.Warn(ctx, "Telegram bot skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
		Middleware:      middleware.New(logger, cfg.Webhook),
		ReadyCheck:      db.PingContext,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		stop()
	}

	pollers.Wait()
	if telegramHandler != nil {
		telegramHandler.Wait()
	}
	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook sets the Telegram webhook when a public URL is configured or
// an ngrok tunnel is detected. It returns false when polling should be used.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig, secret string) bool {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL, ngrokAttempts, ngrokRetryInterval)
		if err != nil {
			logger.Infof(ctx, "Could not detect ngrok URL: %v", err)
			return false
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if webhookURL == "" {
		return false
	}

	if err := bot.SetWebhook(ctx, webhookURL, secret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return false
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
	return true
}
