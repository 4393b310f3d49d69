package port

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"trial-match/internal/core/domain"
)

// SortMode orders recruiting campaign listings.
type SortMode uint8

const (
	SortLatest SortMode = iota
	SortDeadline
	SortPopular
)

func (s SortMode) String() string {
	switch s {
	case SortDeadline:
		return "deadline"
	case SortPopular:
		return "popular"
	default:
		return "latest"
	}
}

// ParseSortMode maps a query value to a SortMode; unknown values sort by latest.
func ParseSortMode(v string) SortMode {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "deadline":
		return SortDeadline
	case "popular":
		return SortPopular
	default:
		return SortLatest
	}
}

type ListQuery struct {
	Offset int
	Limit  int
	Sort   SortMode
}

// CampaignRow is a campaign joined with its advertiser's business name and its
// application count.
type CampaignRow struct {
	Campaign         domain.Campaign
	BusinessName     string
	ApplicationCount int64
}

type CampaignWithAdvertiser struct {
	Campaign        domain.Campaign
	BusinessName    string
	BusinessAddress string
}

// CampaignListItem is the listing representation of a campaign.
type CampaignListItem struct {
	ID               int64                 `json:"id"`
	Title            string                `json:"title"`
	DescriptionShort string                `json:"description_short"`
	ImageURL         *string               `json:"image_url,omitempty"`
	Quota            int                   `json:"quota"`
	ApplicationCount int64                 `json:"application_count"`
	Deadline         time.Time             `json:"deadline"`
	BusinessName     string                `json:"business_name"`
	Status           domain.CampaignStatus `json:"status"`
	CreatedAt        time.Time             `json:"created_at"`
}

type CampaignPage struct {
	Items   []CampaignListItem `json:"items"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
}

// CampaignDetail is the detail view of a campaign as seen by one viewer.
// CanApply and AlreadyApplied are false for anonymous viewers.
type CampaignDetail struct {
	domain.Campaign
	ApplicationCount int64  `json:"application_count"`
	BusinessName     string `json:"business_name"`
	BusinessAddress  string `json:"business_address"`
	CanApply         bool   `json:"can_apply"`
	AlreadyApplied   bool   `json:"already_applied"`
}

type SelectionResult struct {
	CampaignID int64   `json:"campaign_id"`
	Selected   []int64 `json:"selected"`
	Rejected   []int64 `json:"rejected"`
}

// Applicant is an application joined with the applying influencer's channel.
type Applicant struct {
	domain.Application
	InfluencerName string `json:"influencer_name"`
	ChannelName    string `json:"channel_name"`
	ChannelURL     string `json:"channel_url"`
	FollowerCount  int    `json:"follower_count"`
}

// InfluencerApplication is an application joined with its campaign summary.
type InfluencerApplication struct {
	domain.Application
	CampaignTitle   string                `json:"campaign_title"`
	CampaignStatus  domain.CampaignStatus `json:"campaign_status"`
	CampaignEndDate time.Time             `json:"campaign_end_date"`
}

type CreateCampaignInput struct {
	AdvertiserID int64
	Title        string
	Description  string
	Quota        int
	StartDate    time.Time
	EndDate      time.Time
	Benefits     string
	Conditions   string
	ImageURL     *string
}

type UploadImageInput struct {
	AdvertiserID int64
	FileName     string
	ContentType  string
	Data         []byte
}

type ApplyInput struct {
	CampaignID   int64
	InfluencerID int64
	Reason       *string
}

type RegisterAdvertiserInput struct {
	UserID             uuid.UUID
	Name               string
	BirthDate          time.Time
	Phone              string
	BusinessName       string
	Address            string
	BusinessPhone      string
	BusinessNumber     string
	RepresentativeName string
}

type RegisterInfluencerInput struct {
	UserID        uuid.UUID
	Name          string
	BirthDate     time.Time
	Phone         string
	ChannelName   string
	ChannelURL    string
	FollowerCount int
}
