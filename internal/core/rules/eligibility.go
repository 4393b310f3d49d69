package rules

import "trial-match/internal/core/domain"

// Ineligibility names the first failed check of CanApply.
type Ineligibility uint8

const (
	Eligible Ineligibility = iota
	InfluencerNotRegistered
	CampaignNotRecruiting
	AlreadyApplied
)

func (r Ineligibility) String() string {
	switch r {
	case Eligible:
		return "eligible"
	case InfluencerNotRegistered:
		return domain.ErrInfluencerNotRegistered.Message
	case CampaignNotRecruiting:
		return domain.ErrCampaignNotRecruiting.Message
	case AlreadyApplied:
		return domain.ErrAlreadyApplied.Message
	default:
		return "unknown"
	}
}

// Err returns the domain error for the failed check, or nil when eligible.
func (r Ineligibility) Err() error {
	switch r {
	case Eligible:
		return nil
	case InfluencerNotRegistered:
		return domain.ErrInfluencerNotRegistered
	case CampaignNotRecruiting:
		return domain.ErrCampaignNotRecruiting
	case AlreadyApplied:
		return domain.ErrAlreadyApplied
	default:
		return domain.ErrCampaignNotRecruiting
	}
}

// CanApply evaluates, in fixed order, whether an influencer may apply: the
// profile must exist, the campaign must be recruiting and no earlier application
// may exist. Evaluation stops at the first failure.
func CanApply(c domain.Campaign, inf *domain.Influencer, alreadyApplied bool) (bool, Ineligibility) {
	if inf == nil {
		return false, InfluencerNotRegistered
	}
	if !c.IsRecruiting() {
		return false, CampaignNotRecruiting
	}
	if alreadyApplied {
		return false, AlreadyApplied
	}
	return true, Eligible
}
