package domain

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus is the state of one influencer's application. It is APPLIED
// on creation and changed exactly once by the campaign's selection.
type ApplicationStatus uint8

const (
	ApplicationApplied ApplicationStatus = iota + 1
	ApplicationSelected
	ApplicationRejected
)

func (s ApplicationStatus) String() string {
	switch s {
	case ApplicationApplied:
		return "APPLIED"
	case ApplicationSelected:
		return "SELECTED"
	case ApplicationRejected:
		return "REJECTED"
	default:
		return fmt.Sprintf("ApplicationStatus(%d)", uint8(s))
	}
}

func (s ApplicationStatus) MarshalText() ([]byte, error) {
	switch s {
	case ApplicationApplied, ApplicationSelected, ApplicationRejected:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid application status %d", uint8(s))
	}
}

// ParseApplicationStatus converts a stored label into an ApplicationStatus.
func ParseApplicationStatus(v string) (ApplicationStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "APPLIED":
		return ApplicationApplied, nil
	case "SELECTED":
		return ApplicationSelected, nil
	case "REJECTED":
		return ApplicationRejected, nil
	default:
		return 0, fmt.Errorf("unknown application status %q", v)
	}
}

// Application is an influencer's request to join a campaign. At most one exists
// per (CampaignID, InfluencerID).
type Application struct {
	ID           int64             `json:"id"`
	CampaignID   int64             `json:"campaign_id"`
	InfluencerID int64             `json:"influencer_id"`
	Reason       *string           `json:"application_reason,omitempty"`
	Status       ApplicationStatus `json:"status"`
	AppliedAt    time.Time         `json:"applied_at"`
}

func (a Application) IsApplied() bool  { return a.Status == ApplicationApplied }
func (a Application) IsSelected() bool { return a.Status == ApplicationSelected }
func (a Application) IsRejected() bool { return a.Status == ApplicationRejected }
