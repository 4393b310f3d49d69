package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store      *memStore
	campaigns  *CampaignUseCase
	apply      *ApplicationUseCase
	advertiser int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := newMemStore()
	cu := NewCampaignUseCase(s, s, s, s, nil, 0)
	cu.now = func() time.Time { return testNow }
	au := NewApplicationUseCase(s, s, s)
	au.now = func() time.Time { return testNow }
	return &fixture{store: s, campaigns: cu, apply: au, advertiser: s.addAdvertiser("Cafe Bloom")}
}

func (f *fixture) createCampaign(t *testing.T, quota int) *domain.Campaign {
	t.Helper()
	c, err := f.campaigns.CreateCampaign(context.Background(), port.CreateCampaignInput{
		AdvertiserID: f.advertiser,
		Title:        "Brunch tasting",
		Description:  "<p>Try our new brunch set</p>",
		Quota:        quota,
		StartDate:    testNow,
		EndDate:      testNow.AddDate(0, 0, 14),
		Benefits:     "Brunch for two",
		Conditions:   "One blog post",
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) applyAll(t *testing.T, campaignID int64, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		inf := f.store.addInfluencer("influencer")
		app, err := f.apply.Apply(context.Background(), port.ApplyInput{CampaignID: campaignID, InfluencerID: inf})
		require.NoError(t, err)
		ids = append(ids, app.ID)
	}
	return ids
}

func statuses(apps []domain.Application) map[domain.ApplicationStatus]int {
	out := map[domain.ApplicationStatus]int{}
	for _, a := range apps {
		out[a.Status]++
	}
	return out
}

func TestSelectionWithinQuota(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 2)
	assert.Equal(t, domain.CampaignRecruiting, c.Status)
	assert.Nil(t, c.ClosedAt)
	assert.Equal(t, testNow, c.CreatedAt)

	ids := f.applyAll(t, c.ID, 3)

	closed, err := f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)

	res, err := f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, ids[:2])
	require.NoError(t, err)
	assert.ElementsMatch(t, ids[:2], res.Selected)
	assert.Equal(t, []int64{ids[2]}, res.Rejected)

	assert.Equal(t, domain.CampaignSelected, f.store.campaign(c.ID).Status)
	got := statuses(f.store.applicationsOf(c.ID))
	assert.Equal(t, 2, got[domain.ApplicationSelected])
	assert.Equal(t, 1, got[domain.ApplicationRejected])
	assert.Zero(t, got[domain.ApplicationApplied])
}

func TestSelectionOverQuotaChangesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 2)
	ids := f.applyAll(t, c.ID, 3)
	_, err := f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.NoError(t, err)

	_, err = f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, ids)
	require.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Equal(t, domain.KindQuotaExceeded, domain.KindOf(err))

	assert.Equal(t, domain.CampaignClosed, f.store.campaign(c.ID).Status)
	assert.Equal(t, 3, statuses(f.store.applicationsOf(c.ID))[domain.ApplicationApplied])
}

func TestApplyToClosedCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 1)
	_, err := f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.NoError(t, err)

	inf := f.store.addInfluencer("late")
	_, err = f.apply.Apply(ctx, port.ApplyInput{CampaignID: c.ID, InfluencerID: inf})
	require.ErrorIs(t, err, domain.ErrCampaignNotRecruiting)
	assert.Empty(t, f.store.applicationsOf(c.ID))
}

func TestApplyTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 1)
	inf := f.store.addInfluencer("twice")
	reason := "  I love brunch  "
	app, err := f.apply.Apply(ctx, port.ApplyInput{CampaignID: c.ID, InfluencerID: inf, Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApplied, app.Status)
	assert.Equal(t, testNow, app.AppliedAt)
	require.NotNil(t, app.Reason)
	assert.Equal(t, "I love brunch", *app.Reason)

	_, err = f.apply.Apply(ctx, port.ApplyInput{CampaignID: c.ID, InfluencerID: inf})
	require.ErrorIs(t, err, domain.ErrAlreadyApplied)
	assert.Len(t, f.store.applicationsOf(c.ID), 1)
}

func TestApplyUnknownInfluencer(t *testing.T) {
	f := newFixture(t)
	c := f.createCampaign(t, 1)

	_, err := f.apply.Apply(context.Background(), port.ApplyInput{CampaignID: c.ID, InfluencerID: 999})
	require.ErrorIs(t, err, domain.ErrInfluencerNotRegistered)
}

func TestApplyUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	inf := f.store.addInfluencer("lost")

	_, err := f.apply.Apply(context.Background(), port.ApplyInput{CampaignID: 404, InfluencerID: inf})
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestNoReapplyAfterSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 1)
	inf := f.store.addInfluencer("rejected")
	_, err := f.apply.Apply(ctx, port.ApplyInput{CampaignID: c.ID, InfluencerID: inf})
	require.NoError(t, err)
	_, err = f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.NoError(t, err)
	_, err = f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, nil)
	require.NoError(t, err)

	exists, err := f.store.ApplicationExists(ctx, c.ID, inf)
	require.NoError(t, err)
	assert.True(t, exists)
	_, err = f.apply.Apply(ctx, port.ApplyInput{CampaignID: c.ID, InfluencerID: inf})
	require.ErrorIs(t, err, domain.ErrCampaignNotRecruiting)
}

func TestEmptySelectionRejectsEveryone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 3)
	ids := f.applyAll(t, c.ID, 2)
	_, err := f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.NoError(t, err)

	res, err := f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, []int64{})
	require.NoError(t, err)
	assert.Empty(t, res.Selected)
	assert.ElementsMatch(t, ids, res.Rejected)
	assert.Equal(t, domain.CampaignSelected, f.store.campaign(c.ID).Status)
}

func TestSelectionStatusIsMonotonic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 1)
	ids := f.applyAll(t, c.ID, 1)

	_, err := f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, ids)
	require.ErrorIs(t, err, domain.ErrInvalidStatus, "selection while recruiting")

	_, err = f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.NoError(t, err)
	_, err = f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.ErrorIs(t, err, domain.ErrInvalidStatus, "closing twice")

	_, err = f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, ids)
	require.NoError(t, err)
	_, err = f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, ids)
	require.ErrorIs(t, err, domain.ErrInvalidStatus, "selecting twice")
	_, err = f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.ErrorIs(t, err, domain.ErrInvalidStatus, "closing after selection")
	assert.Equal(t, domain.CampaignSelected, f.store.campaign(c.ID).Status)
}

func TestOwnershipChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := f.store.addAdvertiser("Other Shop")

	c := f.createCampaign(t, 1)
	_, err := f.campaigns.CloseEarly(ctx, c.ID, other)
	require.ErrorIs(t, err, domain.ErrCampaignNotOwned)

	_, err = f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.NoError(t, err)
	_, err = f.campaigns.SelectInfluencers(ctx, c.ID, other, nil)
	require.ErrorIs(t, err, domain.ErrCampaignNotOwned)

	_, err = f.apply.ListApplicantsForCampaign(ctx, c.ID, other)
	require.ErrorIs(t, err, domain.ErrCampaignNotOwned)

	_, err = f.campaigns.CloseEarly(ctx, 404, f.advertiser)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestSelectionRejectsMalformedIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 3)
	ids := f.applyAll(t, c.ID, 2)

	other := f.createCampaign(t, 1)
	foreign := f.applyAll(t, other.ID, 1)

	_, err := f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	require.NoError(t, err)

	tests := []struct {
		name     string
		selected []int64
		want     error
	}{
		{name: "duplicate id", selected: []int64{ids[0], ids[0]}, want: domain.ErrDuplicateSelection},
		{name: "application of another campaign", selected: []int64{foreign[0]}, want: domain.ErrUnknownApplication},
		{name: "missing application", selected: []int64{ids[0], 12345}, want: domain.ErrUnknownApplication},
		{name: "quota counts raw length", selected: []int64{ids[0], ids[0], ids[1], ids[1]}, want: domain.ErrQuotaExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, tt.selected)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, domain.CampaignClosed, f.store.campaign(c.ID).Status)
			assert.Equal(t, 2, statuses(f.store.applicationsOf(c.ID))[domain.ApplicationApplied])
		})
	}

	assert.Equal(t, domain.CampaignRecruiting, f.store.campaign(other.ID).Status)
	assert.Equal(t, domain.ApplicationApplied, f.store.applicationsOf(other.ID)[0].Status)
}

func TestPartitionIsComplete(t *testing.T) {
	for quota := 1; quota <= 4; quota++ {
		for applicants := 0; applicants <= 5; applicants++ {
			f := newFixture(t)
			ctx := context.Background()

			c := f.createCampaign(t, quota)
			ids := f.applyAll(t, c.ID, applicants)
			_, err := f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
			require.NoError(t, err)

			k := min(quota, applicants)
			res, err := f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, ids[:k])
			require.NoError(t, err)

			assert.Len(t, res.Selected, k)
			assert.Len(t, res.Rejected, applicants-k)
			got := statuses(f.store.applicationsOf(c.ID))
			assert.Equal(t, k, got[domain.ApplicationSelected])
			assert.Equal(t, applicants-k, got[domain.ApplicationRejected])
			assert.Zero(t, got[domain.ApplicationApplied])
			assert.LessOrEqual(t, got[domain.ApplicationSelected], quota)
		}
	}
}

func TestConcurrentApplyAndClose(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 5)
	influencers := make([]int64, 20)
	for i := range influencers {
		influencers[i] = f.store.addInfluencer("racer")
	}

	var wg sync.WaitGroup
	wg.Add(len(influencers) + 1)
	for _, inf := range influencers {
		inf := inf
		go func() {
			defer wg.Done()
			_, _ = f.apply.Apply(ctx, port.ApplyInput{CampaignID: c.ID, InfluencerID: inf})
		}()
	}
	go func() {
		defer wg.Done()
		_, _ = f.campaigns.CloseEarly(ctx, c.ID, f.advertiser)
	}()
	wg.Wait()

	res, err := f.campaigns.SelectInfluencers(ctx, c.ID, f.advertiser, nil)
	require.NoError(t, err)
	assert.Len(t, res.Rejected, len(f.store.applicationsOf(c.ID)))
	assert.Zero(t, statuses(f.store.applicationsOf(c.ID))[domain.ApplicationApplied])
}

func TestConcurrentDuplicateApply(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.createCampaign(t, 1)
	inf := f.store.addInfluencer("eager")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			if _, err := f.apply.Apply(ctx, port.ApplyInput{CampaignID: c.ID, InfluencerID: inf}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.store.applicationsOf(c.ID), 1)
}

func TestCloseExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	expired := f.createCampaign(t, 1)
	longer, err := f.campaigns.CreateCampaign(ctx, port.CreateCampaignInput{
		AdvertiserID: f.advertiser,
		Title:        "Spa weekend",
		Quota:        2,
		StartDate:    testNow,
		EndDate:      testNow.AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	f.campaigns.now = func() time.Time { return testNow.AddDate(0, 0, 15) }
	ids, err := f.campaigns.CloseExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{expired.ID}, ids)
	assert.Equal(t, domain.CampaignClosed, f.store.campaign(expired.ID).Status)
	assert.NotNil(t, f.store.campaign(expired.ID).ClosedAt)
	assert.Equal(t, domain.CampaignRecruiting, f.store.campaign(longer.ID).Status)

	ids, err = f.campaigns.CloseExpired(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCloseExpiredKeepsCampaignOpenOnEndDate(t *testing.T) {
	f := newFixture(t)
	c := f.createCampaign(t, 1)

	f.campaigns.now = func() time.Time { return c.EndDate.Add(23 * time.Hour) }
	ids, err := f.campaigns.CloseExpired(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, domain.CampaignRecruiting, f.store.campaign(c.ID).Status)
}
