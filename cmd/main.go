package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"trial-match/internal/config"
)

// app carries what every command needs: the loaded configuration and the
// root logger.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func main() {
	var a app

	cliApp := &cli.App{
		Name:  "trial-match",
		Usage: "trial campaign recruiting and influencer selection",
		Before: func(*cli.Context) error {
			return a.load()
		},
		Action: a.serve,
		Commands: []*cli.Command{
			{
				Name:        "serve",
				Usage:       "Start the HTTP API and the scheduler",
				Category:    "Api",
				Description: "Serves the JSON API. Closes expired campaigns in the background unless SCHEDULER_ENABLED=false.",
				Action:      a.serve,
			},
			{
				Name:     "migrate",
				Usage:    "Apply pending database migrations",
				Category: "Database",
				Action:   a.migrate,
			},
			{
				Name:     "seed",
				Usage:    "Fill an empty database with demo advertisers, influencers and campaigns",
				Category: "Database",
				Action:   a.seed,
			},
			{
				Name:        "close-expired",
				Usage:       "Close recruiting campaigns whose end date has passed, then exit",
				Category:    "Worker",
				Description: "Runs one pass of the expiry job; for use from an external cron.",
				Action:      a.closeExpired,
			},
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		logger := a.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("command failed", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

func (a *app) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	switch cfg.Log.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	a.logger = slog.New(handler).With(slog.String("env", cfg.Env))
	slog.SetDefault(a.logger)
	return nil
}
