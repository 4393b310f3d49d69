package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"trial-match/internal/adapter/postgres"
	"trial-match/internal/adapter/scheduler"
	"trial-match/internal/adapter/usecase"
	"trial-match/internal/db"
)

func (a *app) migrate(*cli.Context) error {
	res, err := db.Migrate(a.cfg.Psql.Addr.String())
	if err != nil {
		return err
	}
	a.logger.Info("migrations applied", slog.Uint64("from", uint64(res.From)), slog.Uint64("to", uint64(res.To)))
	return nil
}

func (a *app) seed(cctx *cli.Context) error {
	pool, err := db.NewPostgresPool(cctx.Context, a.cfg.Psql)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	if err = db.Seed(cctx.Context, pool); err != nil {
		return err
	}
	a.logger.Info("demo data seeded")
	return nil
}

func (a *app) closeExpired(cctx *cli.Context) error {
	pool, err := db.NewPostgresPool(cctx.Context, a.cfg.Psql)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	campaignRepo := postgres.NewCampaignRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	campaigns := usecase.NewCampaignUseCase(campaignRepo, postgres.NewApplicationRepository(pool),
		profileRepo, profileRepo, nil, 0).InLocation(a.cfg.Location)

	ids, err := scheduler.NewExpiryCloser(campaigns, a.logger).Run(cctx.Context)
	if err != nil {
		return err
	}
	a.logger.Info("close-expired finished", slog.Int("closed", len(ids)))
	return nil
}
