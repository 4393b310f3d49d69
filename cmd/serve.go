package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	httpadapter "trial-match/internal/adapter/http"
	"trial-match/internal/adapter/postgres"
	"trial-match/internal/adapter/ratelimit"
	"trial-match/internal/adapter/scheduler"
	"trial-match/internal/adapter/storage"
	"trial-match/internal/adapter/usecase"
	"trial-match/internal/config/configs"
	"trial-match/internal/core/port"
	"trial-match/internal/db"
)

func (a *app) serve(cctx *cli.Context) error {
	cfg, logger := a.cfg, a.logger
	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET must be set")
	}

	if cfg.Psql.RunMigrations {
		res, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Uint64("from", uint64(res.From)), slog.Uint64("to", uint64(res.To)))
	}

	ctx := cctx.Context
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	opts := httpadapter.Options{MaxUploadBytes: int64(cfg.S3.MaxImageBytes)}
	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
		opts.Limiter = ratelimit.NewRedisLimiter(rdb, "apply:", cfg.RateLimit.ApplyLimit, cfg.RateLimit.ApplyWindow, logger)
	} else {
		logger.Warn("REDIS_ADDRESS not set, apply rate limiting disabled")
	}

	var images port.ImageStorage
	if cfg.S3.Enabled() {
		s3, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			return fmt.Errorf("s3 storage: %w", err)
		}
		images = s3
	} else {
		logger.Warn("S3_BUCKET not set, image uploads disabled")
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	campaigns := usecase.NewCampaignUseCase(campaignRepo, applicationRepo, profileRepo, profileRepo, images, cfg.S3.MaxImageBytes).
		InLocation(cfg.Location)
	applications := usecase.NewApplicationUseCase(campaignRepo, applicationRepo, profileRepo)
	profiles := usecase.NewProfileUseCase(profileRepo, profileRepo, profileRepo)

	sched, err := expirySchedule(cfg.Scheduler, campaigns, logger)
	if err != nil {
		return err
	}

	handler := httpadapter.NewHandler(campaigns, applications, profiles,
		httpadapter.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer), logger, opts)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	if sched != nil {
		g.Go(func() error {
			return sched.Run(gctx)
		})
	}

	return g.Wait()
}

// expirySchedule registers the close-expired job. It returns nil when the
// scheduler is disabled.
func expirySchedule(cfg configs.Scheduler, campaigns port.CampaignUseCase, logger *slog.Logger) (*scheduler.Scheduler, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	closer := scheduler.NewExpiryCloser(campaigns, logger)
	sched := scheduler.New(logger)
	err := sched.Add("close-expired", cfg.CloseExpiredSpec, func(ctx context.Context) error {
		_, err := closer.Run(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("schedule close-expired %q: %w", cfg.CloseExpiredSpec, err)
	}
	return sched, nil
}
