package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
	"trial-match/internal/core/rules"
	"trial-match/internal/metrics"
	"trial-match/internal/sanitize"
)

const (
	defaultPerPage   = 12
	maxPerPage       = 100
	excerptLength    = 100
	maxTitleLength   = 200
	defaultMaxUpload = 5 << 20
)

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// CampaignUseCase implements port.CampaignUseCase. It owns every mutating
// transition of a campaign's status and the influencer selection.
type CampaignUseCase struct {
	campaigns    port.CampaignRepository
	applications port.ApplicationRepository
	advertisers  port.AdvertiserRepository
	influencers  port.InfluencerRepository
	images       port.ImageStorage

	// maxImageBytes bounds uploaded campaign images.
	maxImageBytes int
	now           func() time.Time
	loc           *time.Location
}

// NewCampaignUseCase wires the campaign lifecycle to its repositories. images
// may be nil when uploads are not configured.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	applications port.ApplicationRepository,
	advertisers port.AdvertiserRepository,
	influencers port.InfluencerRepository,
	images port.ImageStorage,
	maxImageBytes int,
) *CampaignUseCase {
	if maxImageBytes <= 0 {
		maxImageBytes = defaultMaxUpload
	}
	return &CampaignUseCase{
		campaigns:     campaigns,
		applications:  applications,
		advertisers:   advertisers,
		influencers:   influencers,
		images:        images,
		maxImageBytes: maxImageBytes,
		now:           time.Now,
		loc:           time.UTC,
	}
}

// InLocation sets the time zone whose calendar decides "today" for start
// date checks and expiry.
func (u *CampaignUseCase) InLocation(loc *time.Location) *CampaignUseCase {
	if loc != nil {
		u.loc = loc
	}
	return u
}

// CreateCampaign validates the recruiting window and quota and stores a new
// RECRUITING campaign for the advertiser.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	title := sanitize.Text(in.Title)
	if title == "" {
		return nil, domain.ValidationError("title", "title is required")
	}
	if len([]rune(title)) > maxTitleLength {
		return nil, domain.ValidationError("title", fmt.Sprintf("title must be at most %d characters", maxTitleLength))
	}
	if in.Quota < 1 {
		return nil, domain.ValidationError("quota", "quota must be at least 1")
	}
	imageURL, err := optionalImageURL(in.ImageURL)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	if !rules.ValidateCampaignDates(in.StartDate, in.EndDate, domain.DateIn(now, u.loc)) {
		return nil, domain.ValidationError("dates", "start date must not be in the past and end date must be after start date")
	}

	adv, err := u.advertisers.GetAdvertiser(ctx, in.AdvertiserID)
	if err != nil {
		return nil, err
	}
	if adv == nil {
		return nil, domain.ErrAdvertiserNotFound
	}

	c := &domain.Campaign{
		AdvertiserID: in.AdvertiserID,
		Title:        title,
		Description:  sanitize.HTML(in.Description),
		Quota:        in.Quota,
		StartDate:    domain.DateOf(in.StartDate),
		EndDate:      domain.DateOf(in.EndDate),
		Benefits:     sanitize.Text(in.Benefits),
		Conditions:   sanitize.Text(in.Conditions),
		ImageURL:     imageURL,
		Status:       domain.CampaignRecruiting,
		CreatedAt:    now,
	}
	if err = u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	metrics.CampaignTransition(domain.CampaignRecruiting.String(), "owner", 1)
	return c, nil
}

// CloseEarly ends recruiting before the end date. Only the owning advertiser
// may close, and only while the campaign is recruiting.
func (u *CampaignUseCase) CloseEarly(ctx context.Context, campaignID, advertiserID int64) (*domain.Campaign, error) {
	closed, err := u.campaigns.CloseCampaign(ctx, campaignID, u.now().UTC(), func(c domain.Campaign) error {
		if !c.OwnedBy(advertiserID) {
			return domain.ErrCampaignNotOwned
		}
		if !rules.CanCloseEarly(c) {
			return fmt.Errorf("%w: campaign is %s", domain.ErrInvalidStatus, c.Status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.CampaignTransition(domain.CampaignClosed.String(), "owner", 1)
	return closed, nil
}

// SelectInfluencers runs the selection of a closed campaign. The checks run
// against the campaign row locked by the repository, in this order: ownership,
// status, quota, duplicate ids, unknown ids. On success every application that
// was APPLIED ends up either SELECTED or REJECTED and the campaign is SELECTED.
func (u *CampaignUseCase) SelectInfluencers(ctx context.Context, campaignID, advertiserID int64, selectedIDs []int64) (*port.SelectionResult, error) {
	res, err := u.campaigns.FinalizeSelection(ctx, campaignID, selectedIDs, func(c domain.Campaign, apps []domain.Application) error {
		return checkSelection(c, apps, advertiserID, selectedIDs)
	})
	if err != nil {
		return nil, err
	}
	metrics.CampaignTransition(domain.CampaignSelected.String(), "owner", 1)
	metrics.SelectionDecided(len(res.Selected), len(res.Rejected))
	return res, nil
}

func checkSelection(c domain.Campaign, apps []domain.Application, advertiserID int64, selectedIDs []int64) error {
	if !c.OwnedBy(advertiserID) {
		return domain.ErrCampaignNotOwned
	}
	if !rules.CanSelectInfluencers(c) {
		return fmt.Errorf("%w: campaign is %s", domain.ErrInvalidStatus, c.Status)
	}
	if !rules.ValidateSelectionCount(c, len(selectedIDs)) {
		return domain.QuotaExceeded(c.Quota, len(selectedIDs))
	}

	pending := make(map[int64]struct{}, len(apps))
	for _, a := range apps {
		if a.CampaignID == c.ID && a.IsApplied() {
			pending[a.ID] = struct{}{}
		}
	}
	seen := make(map[int64]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: application %d", domain.ErrDuplicateSelection, id)
		}
		seen[id] = struct{}{}
	}
	for _, id := range selectedIDs {
		if _, ok := pending[id]; !ok {
			return fmt.Errorf("%w: application %d", domain.ErrUnknownApplication, id)
		}
	}
	return nil
}

// CloseExpired closes every recruiting campaign whose end date has passed.
func (u *CampaignUseCase) CloseExpired(ctx context.Context) ([]int64, error) {
	now := u.now().UTC()
	ids, err := u.campaigns.CloseExpired(ctx, domain.DateIn(now, u.loc), now)
	if err != nil {
		return nil, err
	}
	metrics.CampaignTransition(domain.CampaignClosed.String(), "schedule", len(ids))
	return ids, nil
}

// CampaignDetail returns the campaign with its advertiser, application count
// and, for a signed-in viewer, whether they may apply.
func (u *CampaignUseCase) CampaignDetail(ctx context.Context, campaignID int64, viewer *uuid.UUID) (*port.CampaignDetail, error) {
	cw, err := u.campaigns.GetCampaignWithAdvertiser(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if cw == nil {
		return nil, domain.ErrCampaignNotFound
	}
	count, err := u.campaigns.CountApplications(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	detail := &port.CampaignDetail{
		Campaign:         cw.Campaign,
		ApplicationCount: count,
		BusinessName:     cw.BusinessName,
		BusinessAddress:  cw.BusinessAddress,
	}
	if viewer == nil {
		return detail, nil
	}

	inf, err := u.influencers.GetInfluencerByUser(ctx, *viewer)
	if err != nil {
		return nil, err
	}
	if inf == nil {
		return detail, nil
	}
	detail.AlreadyApplied, err = u.applications.ApplicationExists(ctx, campaignID, inf.ID)
	if err != nil {
		return nil, err
	}
	detail.CanApply, _ = rules.CanApply(cw.Campaign, inf, detail.AlreadyApplied)
	return detail, nil
}

// ListRecruiting returns one page of recruiting campaigns. page starts at 1.
func (u *CampaignUseCase) ListRecruiting(ctx context.Context, page, perPage int, sort port.SortMode) (*port.CampaignPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	rows, err := u.campaigns.ListRecruiting(ctx, port.ListQuery{
		Offset: (page - 1) * perPage,
		Limit:  perPage,
		Sort:   sort,
	})
	if err != nil {
		return nil, err
	}
	total, err := u.campaigns.CountRecruiting(ctx)
	if err != nil {
		return nil, err
	}
	return &port.CampaignPage{
		Items:   toListItems(rows),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// ListByAdvertiser returns the advertiser's own campaigns, newest first.
func (u *CampaignUseCase) ListByAdvertiser(ctx context.Context, advertiserID int64) ([]port.CampaignListItem, error) {
	rows, err := u.campaigns.ListCampaignsByAdvertiser(ctx, advertiserID)
	if err != nil {
		return nil, err
	}
	return toListItems(rows), nil
}

// UploadCampaignImage stores an image for a campaign the advertiser is about
// to create and returns its public URL.
func (u *CampaignUseCase) UploadCampaignImage(ctx context.Context, in port.UploadImageInput) (string, error) {
	if u.images == nil {
		return "", errors.New("image storage is not configured")
	}
	ct := strings.ToLower(strings.TrimSpace(in.ContentType))
	ext, ok := imageTypes[ct]
	if !ok {
		return "", domain.ValidationError("image", fmt.Sprintf("unsupported image type %q", in.ContentType))
	}
	if len(in.Data) == 0 {
		return "", domain.ValidationError("image", "image is empty")
	}
	if len(in.Data) > u.maxImageBytes {
		return "", domain.ValidationError("image", fmt.Sprintf("image exceeds %d bytes", u.maxImageBytes))
	}
	name := strings.TrimSuffix(path.Base(in.FileName), path.Ext(in.FileName))
	if name == "" || name == "." || name == "/" {
		name = "image"
	}
	return u.images.Upload(ctx, port.UploadObject{
		Prefix:      fmt.Sprintf("campaigns/%d", in.AdvertiserID),
		FileName:    name + ext,
		ContentType: ct,
		Data:        in.Data,
	})
}

// optionalImageURL maps a blank URL to nil and rejects anything that is not
// an absolute http(s) URL.
func optionalImageURL(v *string) (*string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	img, err := domain.NewImageURL(*v)
	if err != nil {
		return nil, err
	}
	s := string(img)
	return &s, nil
}

func toListItems(rows []port.CampaignRow) []port.CampaignListItem {
	items := make([]port.CampaignListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, port.CampaignListItem{
			ID:               r.Campaign.ID,
			Title:            r.Campaign.Title,
			DescriptionShort: sanitize.Excerpt(sanitize.Text(r.Campaign.Description), excerptLength),
			ImageURL:         r.Campaign.ImageURL,
			Quota:            r.Campaign.Quota,
			ApplicationCount: r.ApplicationCount,
			Deadline:         r.Campaign.EndDate,
			BusinessName:     r.BusinessName,
			Status:           r.Campaign.Status,
			CreatedAt:        r.Campaign.CreatedAt,
		})
	}
	return items
}
