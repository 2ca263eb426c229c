package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/omarshaarawi/gridiron/internal/api/espn"
	"github.com/omarshaarawi/gridiron/internal/api/fantasy"
	"github.com/omarshaarawi/gridiron/internal/bot"
	"github.com/omarshaarawi/gridiron/internal/config"
	"github.com/omarshaarawi/gridiron/internal/random"
	"github.com/omarshaarawi/gridiron/internal/repository/memory"
	"github.com/omarshaarawi/gridiron/internal/scheduler"
	"github.com/omarshaarawi/gridiron/internal/server"
	"github.com/omarshaarawi/gridiron/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	setupLogger(cfg.Server.LogLevel)

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return err
		}
	}
	slog.Info("Simulation seed", "seed", seed, "simulations", cfg.Simulation.Runs)

	espnClient := espn.NewClient(cfg.ESPNAPI)
	espnAPI := espn.NewAPI(espnClient)
	fantasyAPI := fantasy.NewAPI(espnAPI, cfg.ESPNAPI.UseLiveData, cfg.Simulation.CurrentWeek)

	repo := memory.NewRepository()
	fantasyService := service.NewFantasyService(fantasyAPI, repo, random.New(seed), cfg.Simulation.Runs, cfg.Simulation.CacheTTL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fantasyService.Refresh(ctx)

	var sendMessage func(string) error
	if cfg.TelegramBot.Enabled() {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, fantasyService)
		if err != nil {
			return err
		}
		sendMessage = telegramBot.SendMessage

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	} else {
		slog.Info("Telegram bot disabled, TELEGRAM_TOKEN not set")
	}

	sched, err := scheduler.NewScheduler(fantasyService, sendMessage, cfg.Scheduler.Timezone, cfg.Simulation.CacheTTL)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.NewRouter(fantasyService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gracefully...")
	case err := <-serverErr:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
