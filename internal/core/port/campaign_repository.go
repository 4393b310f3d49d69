package port

import (
	"context"
	"time"

	"trial-match/internal/core/domain"
)

// CampaignGuard inspects a campaign row that stays locked until the enclosing
// transaction ends. A non-nil error aborts the transaction and is returned to
// the caller unchanged.
type CampaignGuard func(c domain.Campaign) error

// SelectionGuard sees the locked campaign together with the snapshot of all its
// applications taken in the same transaction.
type SelectionGuard func(c domain.Campaign, apps []domain.Application) error

// CampaignRepository defines the persistence of campaigns. It is an outbound
// port; implementations must make the guarded transitions atomic with respect
// to concurrent applies on the same campaign.
type CampaignRepository interface {
	// CreateCampaign inserts c and assigns its ID.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// GetCampaignWithAdvertiser joins the owning advertiser's business details.
	GetCampaignWithAdvertiser(ctx context.Context, id int64) (*CampaignWithAdvertiser, error)
	// ListCampaignsByAdvertiser returns the advertiser's campaigns newest first.
	ListCampaignsByAdvertiser(ctx context.Context, advertiserID int64) ([]CampaignRow, error)
	// ListRecruiting returns one page of recruiting campaigns in the requested order.
	ListRecruiting(ctx context.Context, q ListQuery) ([]CampaignRow, error)
	// CountRecruiting returns the number of recruiting campaigns.
	CountRecruiting(ctx context.Context) (int64, error)
	// CountApplications returns how many applications a campaign received.
	CountApplications(ctx context.Context, campaignID int64) (int64, error)

	// CloseCampaign locks the campaign, runs guard and moves it to CLOSED.
	CloseCampaign(ctx context.Context, id int64, closedAt time.Time, guard CampaignGuard) (*domain.Campaign, error)
	// CloseExpired closes every recruiting campaign whose end date is before
	// today and returns their ids.
	CloseExpired(ctx context.Context, today, closedAt time.Time) ([]int64, error)
	// FinalizeSelection locks the campaign, snapshots its applications, runs
	// guard, marks selectedIDs SELECTED, every other APPLIED application
	// REJECTED and the campaign SELECTED, all in one transaction.
	FinalizeSelection(ctx context.Context, id int64, selectedIDs []int64, guard SelectionGuard) (*SelectionResult, error)
}
