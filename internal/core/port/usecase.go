package port

import (
	"context"

	"github.com/google/uuid"

	"trial-match/internal/core/domain"
)

// CampaignUseCase drives the campaign lifecycle: creation, closing and the
// selection of influencers. It is the primary port used by the HTTP layer and
// the scheduler.
type CampaignUseCase interface {
	// CreateCampaign validates the input and stores a RECRUITING campaign.
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	// CloseEarly ends recruiting for a campaign owned by advertiserID.
	CloseEarly(ctx context.Context, campaignID, advertiserID int64) (*domain.Campaign, error)
	// SelectInfluencers partitions every pending application of a closed
	// campaign into selected and rejected and marks the campaign SELECTED.
	SelectInfluencers(ctx context.Context, campaignID, advertiserID int64, selectedIDs []int64) (*SelectionResult, error)
	// CloseExpired closes recruiting campaigns past their end date.
	CloseExpired(ctx context.Context) ([]int64, error)

	CampaignDetail(ctx context.Context, campaignID int64, viewer *uuid.UUID) (*CampaignDetail, error)
	ListRecruiting(ctx context.Context, page, perPage int, sort SortMode) (*CampaignPage, error)
	ListByAdvertiser(ctx context.Context, advertiserID int64) ([]CampaignListItem, error)
	UploadCampaignImage(ctx context.Context, in UploadImageInput) (string, error)
}

// ApplicationUseCase covers an influencer applying and the listings of
// applications for both sides.
type ApplicationUseCase interface {
	Apply(ctx context.Context, in ApplyInput) (*domain.Application, error)
	ListApplicantsForCampaign(ctx context.Context, campaignID, advertiserID int64) ([]Applicant, error)
	ListApplicationsForInfluencer(ctx context.Context, influencerID int64) ([]InfluencerApplication, error)
}

// ProfileUseCase registers advertiser and influencer profiles for identities
// issued by the external identity provider.
type ProfileUseCase interface {
	EnsureUser(ctx context.Context, id uuid.UUID, email string) (*domain.User, error)
	RegisterAdvertiser(ctx context.Context, in RegisterAdvertiserInput) (*domain.Advertiser, error)
	RegisterInfluencer(ctx context.Context, in RegisterInfluencerInput) (*domain.Influencer, error)
	AdvertiserByUser(ctx context.Context, userID uuid.UUID) (*domain.Advertiser, error)
	InfluencerByUser(ctx context.Context, userID uuid.UUID) (*domain.Influencer, error)
}
