package domain

import (
	"fmt"
	"strings"
	"time"
)

// CampaignStatus is the lifecycle state of a trial campaign. The zero value is
// not a valid status.
type CampaignStatus uint8

const (
	CampaignRecruiting CampaignStatus = iota + 1
	CampaignClosed
	CampaignSelected
)

// String returns the storage label of the status.
func (s CampaignStatus) String() string {
	switch s {
	case CampaignRecruiting:
		return "RECRUITING"
	case CampaignClosed:
		return "CLOSED"
	case CampaignSelected:
		return "SELECTED"
	default:
		return fmt.Sprintf("CampaignStatus(%d)", uint8(s))
	}
}

// MarshalText implements encoding.TextMarshaler so statuses render by label in JSON.
func (s CampaignStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid campaign status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// Valid reports whether s is one of the declared statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignRecruiting, CampaignClosed, CampaignSelected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the lifecycle may move from s to next.
// Statuses only move forward: RECRUITING -> CLOSED -> SELECTED.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	switch s {
	case CampaignRecruiting:
		return next == CampaignClosed
	case CampaignClosed:
		return next == CampaignSelected
	case CampaignSelected:
		return false
	default:
		return false
	}
}

// ParseCampaignStatus converts a stored label into a CampaignStatus.
func ParseCampaignStatus(v string) (CampaignStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "RECRUITING":
		return CampaignRecruiting, nil
	case "CLOSED":
		return CampaignClosed, nil
	case "SELECTED":
		return CampaignSelected, nil
	default:
		return 0, fmt.Errorf("unknown campaign status %q", v)
	}
}

// Campaign is a time-boxed, quota-bounded trial offer owned by one advertiser.
// StartDate and EndDate carry calendar dates (UTC midnight).
type Campaign struct {
	ID           int64          `json:"id"`
	AdvertiserID int64          `json:"advertiser_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Quota        int            `json:"quota"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	Benefits     string         `json:"benefits"`
	Conditions   string         `json:"conditions"`
	ImageURL     *string        `json:"image_url,omitempty"`
	Status       CampaignStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	ClosedAt     *time.Time     `json:"closed_at,omitempty"`
}

func (c Campaign) IsRecruiting() bool { return c.Status == CampaignRecruiting }
func (c Campaign) IsClosed() bool     { return c.Status == CampaignClosed }
func (c Campaign) IsSelected() bool   { return c.Status == CampaignSelected }

// OwnedBy reports whether the campaign belongs to the advertiser.
func (c Campaign) OwnedBy(advertiserID int64) bool {
	return c.AdvertiserID == advertiserID
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateIn returns the calendar date of t as seen in loc, in the same
// midnight-UTC form as DateOf.
func DateIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return DateOf(t)
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
