package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
)

// memStore is an in-memory repository set. A single mutex stands in for the
// campaign row lock so guarded operations serialize the way they do in Postgres.
type memStore struct {
	mu           sync.Mutex
	nextID       int64
	campaigns    map[int64]domain.Campaign
	applications map[int64]domain.Application
	advertisers  map[int64]domain.Advertiser
	influencers  map[int64]domain.Influencer
}

var (
	_ port.CampaignRepository    = (*memStore)(nil)
	_ port.ApplicationRepository = (*memStore)(nil)
	_ port.AdvertiserRepository  = (*memStore)(nil)
	_ port.InfluencerRepository  = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		campaigns:    map[int64]domain.Campaign{},
		applications: map[int64]domain.Application{},
		advertisers:  map[int64]domain.Advertiser{},
		influencers:  map[int64]domain.Influencer{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) addAdvertiser(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.advertisers[id] = domain.Advertiser{ID: id, UserID: uuid.New(), BusinessName: name, Address: "Seoul"}
	return id
}

func (s *memStore) addInfluencer(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.influencers[id] = domain.Influencer{ID: id, UserID: uuid.New(), Name: name, ChannelName: name}
	return id
}

func (s *memStore) campaign(id int64) domain.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.campaigns[id]
}

func (s *memStore) applicationsOf(campaignID int64) []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(campaignID)
}

func (s *memStore) snapshot(campaignID int64) []domain.Application {
	var out []domain.Application
	for _, a := range s.applications {
		if a.CampaignID == campaignID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	s.campaigns[c.ID] = *c
	return nil
}

func (s *memStore) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memStore) GetCampaignWithAdvertiser(_ context.Context, id int64) (*port.CampaignWithAdvertiser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	a := s.advertisers[c.AdvertiserID]
	return &port.CampaignWithAdvertiser{Campaign: c, BusinessName: a.BusinessName, BusinessAddress: a.Address}, nil
}

func (s *memStore) rows(filter func(domain.Campaign) bool) []port.CampaignRow {
	var out []port.CampaignRow
	for _, c := range s.campaigns {
		if !filter(c) {
			continue
		}
		out = append(out, port.CampaignRow{
			Campaign:         c,
			BusinessName:     s.advertisers[c.AdvertiserID].BusinessName,
			ApplicationCount: int64(len(s.snapshot(c.ID))),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Campaign.ID > out[j].Campaign.ID })
	return out
}

func (s *memStore) ListCampaignsByAdvertiser(_ context.Context, advertiserID int64) ([]port.CampaignRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows(func(c domain.Campaign) bool { return c.AdvertiserID == advertiserID }), nil
}

func (s *memStore) ListRecruiting(_ context.Context, q port.ListQuery) ([]port.CampaignRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.rows(domain.Campaign.IsRecruiting)
	if q.Offset >= len(rows) {
		return nil, nil
	}
	rows = rows[q.Offset:]
	if len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	return rows, nil
}

func (s *memStore) CountRecruiting(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.rows(domain.Campaign.IsRecruiting))), nil
}

func (s *memStore) CountApplications(_ context.Context, campaignID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.snapshot(campaignID))), nil
}

func (s *memStore) CloseCampaign(_ context.Context, id int64, closedAt time.Time, guard port.CampaignGuard) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	if err := guard(c); err != nil {
		return nil, err
	}
	c.Status = domain.CampaignClosed
	c.ClosedAt = &closedAt
	s.campaigns[id] = c
	return &c, nil
}

func (s *memStore) CloseExpired(_ context.Context, today, closedAt time.Time) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int64
	for id, c := range s.campaigns {
		if c.IsRecruiting() && c.EndDate.Before(today) {
			c.Status = domain.CampaignClosed
			c.ClosedAt = &closedAt
			s.campaigns[id] = c
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *memStore) FinalizeSelection(_ context.Context, id int64, selectedIDs []int64, guard port.SelectionGuard) (*port.SelectionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	apps := s.snapshot(id)
	if err := guard(c, apps); err != nil {
		return nil, err
	}
	chosen := make(map[int64]bool, len(selectedIDs))
	for _, sid := range selectedIDs {
		chosen[sid] = true
	}
	res := &port.SelectionResult{CampaignID: id, Selected: []int64{}, Rejected: []int64{}}
	for _, a := range apps {
		if !a.IsApplied() {
			continue
		}
		if chosen[a.ID] {
			a.Status = domain.ApplicationSelected
			res.Selected = append(res.Selected, a.ID)
		} else {
			a.Status = domain.ApplicationRejected
			res.Rejected = append(res.Rejected, a.ID)
		}
		s.applications[a.ID] = a
	}
	c.Status = domain.CampaignSelected
	s.campaigns[id] = c
	return res, nil
}

func (s *memStore) CreateApplication(_ context.Context, app *domain.Application, guard port.CampaignGuard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[app.CampaignID]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	if err := guard(c); err != nil {
		return err
	}
	for _, a := range s.applications {
		if a.CampaignID == app.CampaignID && a.InfluencerID == app.InfluencerID {
			return domain.ErrAlreadyApplied
		}
	}
	app.ID = s.id()
	s.applications[app.ID] = *app
	return nil
}

func (s *memStore) ApplicationExists(_ context.Context, campaignID, influencerID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.applications {
		if a.CampaignID == campaignID && a.InfluencerID == influencerID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListApplicationsByCampaign(_ context.Context, campaignID int64) ([]port.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apps := s.snapshot(campaignID)
	out := make([]port.Applicant, 0, len(apps))
	for i := len(apps) - 1; i >= 0; i-- {
		inf := s.influencers[apps[i].InfluencerID]
		out = append(out, port.Applicant{Application: apps[i], InfluencerName: inf.Name, ChannelName: inf.ChannelName})
	}
	return out, nil
}

func (s *memStore) ListApplicationsByInfluencer(_ context.Context, influencerID int64) ([]port.InfluencerApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []port.InfluencerApplication
	for _, a := range s.applications {
		if a.InfluencerID != influencerID {
			continue
		}
		c := s.campaigns[a.CampaignID]
		out = append(out, port.InfluencerApplication{Application: a, CampaignTitle: c.Title, CampaignStatus: c.Status, CampaignEndDate: c.EndDate})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *memStore) GetAdvertiser(_ context.Context, id int64) (*domain.Advertiser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.advertisers[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *memStore) GetAdvertiserByUser(_ context.Context, userID uuid.UUID) (*domain.Advertiser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.advertisers {
		if a.UserID == userID {
			return &a, nil
		}
	}
	return nil, nil
}

func (s *memStore) AdvertiserExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	a, err := s.GetAdvertiserByUser(ctx, userID)
	return a != nil, err
}

func (s *memStore) BusinessNumberExists(_ context.Context, businessNumber string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.advertisers {
		if a.BusinessNumber == businessNumber {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateAdvertiser(_ context.Context, a *domain.Advertiser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	s.advertisers[a.ID] = *a
	return nil
}

func (s *memStore) GetInfluencer(_ context.Context, id int64) (*domain.Influencer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.influencers[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (s *memStore) GetInfluencerByUser(_ context.Context, userID uuid.UUID) (*domain.Influencer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, i := range s.influencers {
		if i.UserID == userID {
			return &i, nil
		}
	}
	return nil, nil
}

func (s *memStore) InfluencerExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	i, err := s.GetInfluencerByUser(ctx, userID)
	return i != nil, err
}

func (s *memStore) CreateInfluencer(_ context.Context, i *domain.Influencer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i.ID = s.id()
	s.influencers[i.ID] = *i
	return nil
}
