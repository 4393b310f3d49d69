package port

import (
	"context"

	"trial-match/internal/core/domain"
)

// ApplicationRepository defines the persistence of applications.
type ApplicationRepository interface {
	// CreateApplication holds a shared lock on the campaign, runs guard and
	// inserts app, assigning its ID. A duplicate (campaign, influencer) pair
	// fails with domain.ErrAlreadyApplied.
	CreateApplication(ctx context.Context, app *domain.Application, guard CampaignGuard) error
	// ApplicationExists reports whether the influencer applied to the campaign.
	ApplicationExists(ctx context.Context, campaignID, influencerID int64) (bool, error)
	// ListApplicationsByCampaign returns applicants newest first.
	ListApplicationsByCampaign(ctx context.Context, campaignID int64) ([]Applicant, error)
	// ListApplicationsByInfluencer returns the influencer's applications newest first.
	ListApplicationsByInfluencer(ctx context.Context, influencerID int64) ([]InfluencerApplication, error)
}
