package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-match/db/migrations"
	"trial-match/internal/config/configs"
	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
	"trial-match/internal/db"
)

// testPool connects to PSQL_TEST_ADDRESS, migrates it and empties every table.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS is not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	res, err := db.Migrate(addr)
	require.NoError(t, err)
	require.EqualValues(t, migrations.Version, res.To)

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u, MaxConns: 20})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE applications, campaigns, influencers, advertisers, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

type repos struct {
	campaigns    *CampaignRepository
	applications *ApplicationRepository
	profiles     *ProfileRepository
}

func newRepos(pool *pgxpool.Pool) repos {
	return repos{
		campaigns:    NewCampaignRepository(pool),
		applications: NewApplicationRepository(pool),
		profiles:     NewProfileRepository(pool),
	}
}

func (r repos) advertiser(t *testing.T, number string) *domain.Advertiser {
	t.Helper()
	ctx := context.Background()
	u, err := r.profiles.EnsureUser(ctx, domain.User{ID: uuid.New(), Email: number + "@shop.example.com"})
	require.NoError(t, err)
	a := &domain.Advertiser{
		UserID: u.ID, Name: "Owner", BirthDate: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone: "010-1111-2222", BusinessName: "Shop " + number, Address: "Seoul",
		BusinessPhone: "02-123-4567", BusinessNumber: number, RepresentativeName: "Owner",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, r.profiles.CreateAdvertiser(ctx, a))
	return a
}

func (r repos) influencer(t *testing.T) *domain.Influencer {
	t.Helper()
	ctx := context.Background()
	u, err := r.profiles.EnsureUser(ctx, domain.User{ID: uuid.New(), Email: uuid.NewString() + "@creator.example.com"})
	require.NoError(t, err)
	i := &domain.Influencer{
		UserID: u.ID, Name: "Creator", BirthDate: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone: "010-3333-4444", ChannelName: "creator", ChannelURL: "https://blog.example.com/c",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, r.profiles.CreateInfluencer(ctx, i))
	return i
}

func (r repos) campaign(t *testing.T, advertiserID int64, quota int) *domain.Campaign {
	t.Helper()
	today := domain.DateOf(time.Now())
	c := &domain.Campaign{
		AdvertiserID: advertiserID, Title: "Trial", Quota: quota,
		StartDate: today, EndDate: today.AddDate(0, 0, 7),
		Status: domain.CampaignRecruiting, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, r.campaigns.CreateCampaign(context.Background(), c))
	return c
}

func (r repos) apply(t *testing.T, campaignID, influencerID int64) (*domain.Application, error) {
	t.Helper()
	app := &domain.Application{
		CampaignID: campaignID, InfluencerID: influencerID,
		Status: domain.ApplicationApplied, AppliedAt: time.Now().UTC(),
	}
	err := r.applications.CreateApplication(context.Background(), app, func(c domain.Campaign) error {
		if !c.IsRecruiting() {
			return domain.ErrCampaignNotRecruiting
		}
		return nil
	})
	return app, err
}

func allowAll(domain.Campaign) error { return nil }

func TestProfileRegistration(t *testing.T) {
	r := newRepos(testPool(t))
	ctx := context.Background()

	a := r.advertiser(t, "1234567890")
	got, err := r.profiles.GetAdvertiserByUser(ctx, a.UserID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)

	u, err := r.profiles.GetUser(ctx, a.UserID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdvertiser, u.Role)

	taken, err := r.profiles.BusinessNumberExists(ctx, "1234567890")
	require.NoError(t, err)
	assert.True(t, taken)

	err = r.profiles.CreateInfluencer(ctx, &domain.Influencer{UserID: a.UserID, CreatedAt: time.Now()})
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	other, err := r.profiles.EnsureUser(ctx, domain.User{ID: uuid.New(), Email: "second@shop.example.com"})
	require.NoError(t, err)
	dup := *a
	dup.UserID = other.ID
	require.ErrorIs(t, r.profiles.CreateAdvertiser(ctx, &dup), domain.ErrBusinessNumberTaken)

	missing, err := r.profiles.GetInfluencer(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestApplyCloseSelect(t *testing.T) {
	r := newRepos(testPool(t))
	ctx := context.Background()

	adv := r.advertiser(t, "1111111111")
	c := r.campaign(t, adv.ID, 2)

	var ids []int64
	for i := 0; i < 3; i++ {
		app, err := r.apply(t, c.ID, r.influencer(t).ID)
		require.NoError(t, err)
		ids = append(ids, app.ID)
	}
	_, err := r.apply(t, c.ID, mustInfluencerOf(t, r, ids[0]))
	require.ErrorIs(t, err, domain.ErrAlreadyApplied)

	closed, err := r.campaigns.CloseCampaign(ctx, c.ID, time.Now().UTC(), allowAll)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignClosed, closed.Status)

	_, err = r.apply(t, c.ID, r.influencer(t).ID)
	require.ErrorIs(t, err, domain.ErrCampaignNotRecruiting)

	res, err := r.campaigns.FinalizeSelection(ctx, c.ID, ids[:2], func(domain.Campaign, []domain.Application) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, ids[:2], res.Selected)
	assert.Equal(t, ids[2:], res.Rejected)

	got, err := r.campaigns.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignSelected, got.Status)

	applicants, err := r.applications.ListApplicationsByCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 3)
	assert.Equal(t, ids[2], applicants[0].ID)
	assert.Equal(t, domain.ApplicationRejected, applicants[0].Status)
}

func mustInfluencerOf(t *testing.T, r repos, applicationID int64) int64 {
	t.Helper()
	var id int64
	require.NoError(t, r.campaigns.pool.QueryRow(context.Background(),
		`SELECT influencer_id FROM applications WHERE id = $1`, applicationID).Scan(&id))
	return id
}

func TestFinalizeSelectionGuardRollsBack(t *testing.T) {
	r := newRepos(testPool(t))
	ctx := context.Background()

	adv := r.advertiser(t, "2222222222")
	c := r.campaign(t, adv.ID, 1)
	app, err := r.apply(t, c.ID, r.influencer(t).ID)
	require.NoError(t, err)
	_, err = r.campaigns.CloseCampaign(ctx, c.ID, time.Now().UTC(), allowAll)
	require.NoError(t, err)

	_, err = r.campaigns.FinalizeSelection(ctx, c.ID, []int64{app.ID, app.ID}, func(c domain.Campaign, apps []domain.Application) error {
		require.Len(t, apps, 1)
		return domain.QuotaExceeded(c.Quota, 2)
	})
	require.ErrorIs(t, err, domain.ErrQuotaExceeded)

	got, err := r.campaigns.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignClosed, got.Status)
	exists, err := r.applications.ApplicationExists(ctx, c.ID, app.InfluencerID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestConcurrentAppliesAgainstClose(t *testing.T) {
	r := newRepos(testPool(t))
	ctx := context.Background()

	adv := r.advertiser(t, "3333333333")
	c := r.campaign(t, adv.ID, 3)
	influencers := make([]int64, 15)
	for i := range influencers {
		influencers[i] = r.influencer(t).ID
	}

	var wg sync.WaitGroup
	wg.Add(len(influencers) + 1)
	for _, id := range influencers {
		id := id
		go func() {
			defer wg.Done()
			_, _ = r.apply(t, c.ID, id)
		}()
	}
	go func() {
		defer wg.Done()
		_, _ = r.campaigns.CloseCampaign(ctx, c.ID, time.Now().UTC(), allowAll)
	}()
	wg.Wait()

	n, err := r.campaigns.CountApplications(ctx, c.ID)
	require.NoError(t, err)
	res, err := r.campaigns.FinalizeSelection(ctx, c.ID, nil, func(domain.Campaign, []domain.Application) error { return nil })
	require.NoError(t, err)
	assert.Len(t, res.Rejected, int(n))

	var pending int
	require.NoError(t, r.campaigns.pool.QueryRow(ctx,
		`SELECT count(*) FROM applications WHERE campaign_id = $1 AND status = 'APPLIED'`, c.ID).Scan(&pending))
	assert.Zero(t, pending)
}

func TestListingAndCloseExpired(t *testing.T) {
	r := newRepos(testPool(t))
	ctx := context.Background()

	adv := r.advertiser(t, "4444444444")
	first := r.campaign(t, adv.ID, 1)
	second := r.campaign(t, adv.ID, 1)
	inf := r.influencer(t)
	_, err := r.apply(t, first.ID, inf.ID)
	require.NoError(t, err)

	own, err := r.campaigns.ListCampaignsByAdvertiser(ctx, adv.ID)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, second.ID, own[0].Campaign.ID)

	mine, err := r.applications.ListApplicationsByInfluencer(ctx, inf.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].CampaignID)
	assert.Equal(t, "Trial", mine[0].CampaignTitle)
	assert.Equal(t, domain.CampaignRecruiting, mine[0].CampaignStatus)

	popular, err := r.campaigns.ListRecruiting(ctx, port.ListQuery{Limit: 10, Sort: port.SortPopular})
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, first.ID, popular[0].Campaign.ID)
	assert.Equal(t, int64(1), popular[0].ApplicationCount)
	assert.Equal(t, "Shop 4444444444", popular[0].BusinessName)

	latest, err := r.campaigns.ListRecruiting(ctx, port.ListQuery{Offset: 1, Limit: 10, Sort: port.SortLatest})
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, first.ID, latest[0].Campaign.ID)

	total, err := r.campaigns.CountRecruiting(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	ids, err := r.campaigns.CloseExpired(ctx, second.EndDate.AddDate(0, 0, 1), time.Now().UTC())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{first.ID, second.ID}, ids)

	ids, err = r.campaigns.CloseExpired(ctx, second.EndDate.AddDate(0, 0, 1), time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFinalizeSelectionLeavesOtherCampaignsAlone(t *testing.T) {
	r := newRepos(testPool(t))
	ctx := context.Background()

	adv := r.advertiser(t, "5555555555")
	mine := r.campaign(t, adv.ID, 2)
	theirs := r.campaign(t, adv.ID, 2)
	ownApp, err := r.apply(t, mine.ID, r.influencer(t).ID)
	require.NoError(t, err)
	foreignApp, err := r.apply(t, theirs.ID, r.influencer(t).ID)
	require.NoError(t, err)
	_, err = r.campaigns.CloseCampaign(ctx, mine.ID, time.Now().UTC(), allowAll)
	require.NoError(t, err)

	res, err := r.campaigns.FinalizeSelection(ctx, mine.ID, []int64{ownApp.ID, foreignApp.ID},
		func(domain.Campaign, []domain.Application) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, []int64{ownApp.ID}, res.Selected)
	assert.Empty(t, res.Rejected)

	var status string
	require.NoError(t, r.campaigns.pool.QueryRow(ctx,
		`SELECT status FROM applications WHERE id = $1`, foreignApp.ID).Scan(&status))
	assert.Equal(t, "APPLIED", status)
}
