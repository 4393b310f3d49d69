package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
)

const applicationColumns = `ap.id, ap.campaign_id, ap.influencer_id, ap.application_reason, ap.status, ap.applied_at`

// ApplicationRepository implements port.ApplicationRepository.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func scanApplication(row pgx.Row, extra ...any) (domain.Application, error) {
	var (
		a      domain.Application
		status string
	)
	dest := append([]any{&a.ID, &a.CampaignID, &a.InfluencerID, &a.Reason, &status, &a.AppliedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return a, err
	}
	var err error
	a.Status, err = domain.ParseApplicationStatus(status)
	return a, err
}

// applicationsOf returns every application of a campaign in id order.
func applicationsOf(ctx context.Context, q querier, campaignID int64) ([]domain.Application, error) {
	rows, err := q.Query(ctx, `SELECT `+applicationColumns+` FROM applications ap WHERE ap.campaign_id = $1 ORDER BY ap.id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
}

// CreateApplication takes a shared lock on the campaign so a concurrent close
// or selection waits for the insert to commit.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *domain.Application, guard port.CampaignGuard) error {
	return withTx(ctx, r.pool, pgx.ReadCommitted, func(tx pgx.Tx) error {
		c, err := lockCampaign(ctx, tx, app.CampaignID, "FOR SHARE")
		if err != nil {
			return err
		}
		if err = guard(*c); err != nil {
			return err
		}
		err = tx.QueryRow(ctx, `
INSERT INTO applications (campaign_id, influencer_id, application_reason, status, applied_at)
VALUES ($1,$2,$3,$4,$5)
RETURNING id`,
			app.CampaignID, app.InfluencerID, app.Reason, app.Status.String(), app.AppliedAt,
		).Scan(&app.ID)
		if _, dup := uniqueConstraint(err); dup {
			return domain.ErrAlreadyApplied
		}
		return err
	})
}

func (r *ApplicationRepository) ApplicationExists(ctx context.Context, campaignID, influencerID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM applications WHERE campaign_id = $1 AND influencer_id = $2)`,
		campaignID, influencerID).Scan(&exists)
	return exists, err
}

func (r *ApplicationRepository) ListApplicationsByCampaign(ctx context.Context, campaignID int64) ([]port.Applicant, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+applicationColumns+`, i.name, i.channel_name, i.channel_url, i.follower_count
FROM applications ap
JOIN influencers i ON i.id = ap.influencer_id
WHERE ap.campaign_id = $1
ORDER BY ap.applied_at DESC, ap.id DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Applicant, error) {
		var a port.Applicant
		var err error
		a.Application, err = scanApplication(row, &a.InfluencerName, &a.ChannelName, &a.ChannelURL, &a.FollowerCount)
		return a, err
	})
}

func (r *ApplicationRepository) ListApplicationsByInfluencer(ctx context.Context, influencerID int64) ([]port.InfluencerApplication, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+applicationColumns+`, c.title, c.status, c.end_date
FROM applications ap
JOIN campaigns c ON c.id = ap.campaign_id
WHERE ap.influencer_id = $1
ORDER BY ap.applied_at DESC, ap.id DESC`, influencerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.InfluencerApplication, error) {
		var (
			a      port.InfluencerApplication
			status string
			err    error
		)
		a.Application, err = scanApplication(row, &a.CampaignTitle, &status, &a.CampaignEndDate)
		if err != nil {
			return a, err
		}
		a.CampaignStatus, err = domain.ParseCampaignStatus(status)
		return a, err
	})
}
