package usecase

import (
	"context"
	"fmt"
	"time"

	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
	"trial-match/internal/core/rules"
	"trial-match/internal/metrics"
	"trial-match/internal/sanitize"
)

const maxReasonLength = 1000

// ApplicationUseCase implements port.ApplicationUseCase.
type ApplicationUseCase struct {
	campaigns    port.CampaignRepository
	applications port.ApplicationRepository
	influencers  port.InfluencerRepository
	now          func() time.Time
}

func NewApplicationUseCase(
	campaigns port.CampaignRepository,
	applications port.ApplicationRepository,
	influencers port.InfluencerRepository,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		campaigns:    campaigns,
		applications: applications,
		influencers:  influencers,
		now:          time.Now,
	}
}

// Apply creates an APPLIED application. The campaign must exist; the
// influencer must be registered, the campaign recruiting and no earlier
// application present, checked in that order. The recruiting check runs again
// under the campaign lock so an apply cannot slip past a concurrent close.
func (u *ApplicationUseCase) Apply(ctx context.Context, in port.ApplyInput) (*domain.Application, error) {
	reason := sanitize.OptionalText(in.Reason)
	if reason != nil && len([]rune(*reason)) > maxReasonLength {
		return nil, domain.ValidationError("application_reason", fmt.Sprintf("reason must be at most %d characters", maxReasonLength))
	}

	c, err := u.campaigns.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	inf, err := u.influencers.GetInfluencer(ctx, in.InfluencerID)
	if err != nil {
		return nil, err
	}
	applied := false
	if inf != nil {
		applied, err = u.applications.ApplicationExists(ctx, in.CampaignID, in.InfluencerID)
		if err != nil {
			return nil, err
		}
	}
	if ok, why := rules.CanApply(*c, inf, applied); !ok {
		return nil, why.Err()
	}

	app := &domain.Application{
		CampaignID:   in.CampaignID,
		InfluencerID: in.InfluencerID,
		Reason:       reason,
		Status:       domain.ApplicationApplied,
		AppliedAt:    u.now().UTC(),
	}
	err = u.applications.CreateApplication(ctx, app, func(locked domain.Campaign) error {
		if ok, why := rules.CanApply(locked, inf, false); !ok {
			return why.Err()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ApplicationCreated()
	return app, nil
}

// ListApplicantsForCampaign lists a campaign's applicants for its owner.
func (u *ApplicationUseCase) ListApplicantsForCampaign(ctx context.Context, campaignID, advertiserID int64) ([]port.Applicant, error) {
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	if !c.OwnedBy(advertiserID) {
		return nil, domain.ErrCampaignNotOwned
	}
	return u.applications.ListApplicationsByCampaign(ctx, campaignID)
}

func (u *ApplicationUseCase) ListApplicationsForInfluencer(ctx context.Context, influencerID int64) ([]port.InfluencerApplication, error) {
	return u.applications.ListApplicationsByInfluencer(ctx, influencerID)
}
