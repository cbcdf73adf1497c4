package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	slackapi "github.com/slack-go/slack"

	"github.com/party-dog/birthday-party-bot/internal/config"
	"github.com/party-dog/birthday-party-bot/internal/database"
	"github.com/party-dog/birthday-party-bot/internal/domain/service"
	"github.com/party-dog/birthday-party-bot/internal/handlers"
	"github.com/party-dog/birthday-party-bot/internal/scheduler"
	botslack "github.com/party-dog/birthday-party-bot/internal/slack"
	"github.com/party-dog/birthday-party-bot/migrator/sqlite"
	"github.com/party-dog/birthday-party-bot/pkg/logging"
)

func main() {
	logging.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	chatClient := botslack.New(slackapi.New(cfg.SlackBotToken))
	pacer := service.SleepPacer{Interval: cfg.InvitePause}

	services := service.New(database.NewInstance(db), chatClient, pacer, cfg)

	sched := scheduler.New(cfg.CycleCron, services.Cycle)
	if err := sched.Start(); err != nil {
		slog.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	handler := handlers.New(services.Cycle)
	http.HandleFunc("/health", handler.HandleHealth)
	http.HandleFunc("/cycle/run", handler.HandleRunCycle)

	slog.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
