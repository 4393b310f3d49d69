// Package rules holds the stateless business rules of the campaign lifecycle.
// Every function is deterministic in its inputs and performs no I/O.
package rules

import (
	"time"

	"trial-match/internal/core/domain"
)

// CanRegisterAsAdvertiser reports whether the user may create an advertiser
// profile. A user holds at most one role.
func CanRegisterAsAdvertiser(u domain.User) bool {
	return !u.HasRole()
}

// CanRegisterAsInfluencer reports whether the user may create an influencer profile.
func CanRegisterAsInfluencer(u domain.User) bool {
	return !u.HasRole()
}

// ValidateCampaignDates reports whether a recruiting window is acceptable:
// it must not start before today and must end strictly after it starts.
// Only calendar dates are compared.
func ValidateCampaignDates(start, end, today time.Time) bool {
	start, end, today = domain.DateOf(start), domain.DateOf(end), domain.DateOf(today)
	if start.Before(today) {
		return false
	}
	return end.After(start)
}

func CanCloseEarly(c domain.Campaign) bool {
	return c.Status == domain.CampaignRecruiting
}

func CanSelectInfluencers(c domain.Campaign) bool {
	return c.Status == domain.CampaignClosed
}

// ValidateSelectionCount reports whether selecting n applicants stays within
// the campaign quota. Selecting nobody is valid.
func ValidateSelectionCount(c domain.Campaign, n int) bool {
	return n <= c.Quota
}

// ValidateFollowerCount rejects negative follower counts.
func ValidateFollowerCount(n int) bool {
	return n >= 0
}
