package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
	"trial-match/internal/core/port/mocks"
)

func newProfileUseCase(t *testing.T) (*ProfileUseCase, *mocks.MockUserRepository, *mocks.MockAdvertiserRepository, *mocks.MockInfluencerRepository) {
	users := mocks.NewMockUserRepository(t)
	advertisers := mocks.NewMockAdvertiserRepository(t)
	influencers := mocks.NewMockInfluencerRepository(t)
	u := NewProfileUseCase(users, advertisers, influencers)
	u.now = func() time.Time { return testNow }
	return u, users, advertisers, influencers
}

func advertiserInput(id uuid.UUID) port.RegisterAdvertiserInput {
	return port.RegisterAdvertiserInput{
		UserID:             id,
		Name:               "Kim Minji",
		BirthDate:          time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Phone:              "01012345678",
		BusinessName:       "Cafe Bloom",
		Address:            "Seoul, Mapo-gu",
		BusinessPhone:      "02-1234-5678",
		BusinessNumber:     "123-45-67890",
		RepresentativeName: "Kim Minji",
	}
}

func TestEnsureUserValidatesEmail(t *testing.T) {
	u, users, _, _ := newProfileUseCase(t)
	id := uuid.New()

	_, err := u.EnsureUser(context.Background(), id, "not-an-email")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	users.EXPECT().EnsureUser(mock.Anything, domain.User{ID: id, Email: "a@b.co"}).
		Return(&domain.User{ID: id, Email: "a@b.co"}, nil)
	got, err := u.EnsureUser(context.Background(), id, " a@b.co ")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestRegisterAdvertiser(t *testing.T) {
	u, users, advertisers, _ := newProfileUseCase(t)
	id := uuid.New()
	users.EXPECT().GetUser(mock.Anything, id).Return(&domain.User{ID: id}, nil)
	advertisers.EXPECT().BusinessNumberExists(mock.Anything, "1234567890").Return(false, nil)
	advertisers.EXPECT().CreateAdvertiser(mock.Anything, mock.AnythingOfType("*domain.Advertiser")).
		Run(func(_ context.Context, a *domain.Advertiser) { a.ID = 3 }).
		Return(nil)

	a, err := u.RegisterAdvertiser(context.Background(), advertiserInput(id))
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.ID)
	assert.Equal(t, "010-1234-5678", a.Phone)
	assert.Equal(t, "1234567890", a.BusinessNumber)
	assert.Equal(t, "02-1234-5678", a.BusinessPhone)
}

func TestRegisterAdvertiserRejections(t *testing.T) {
	id := uuid.New()

	t.Run("unknown user", func(t *testing.T) {
		u, users, _, _ := newProfileUseCase(t)
		users.EXPECT().GetUser(mock.Anything, id).Return(nil, nil)
		_, err := u.RegisterAdvertiser(context.Background(), advertiserInput(id))
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("already an influencer", func(t *testing.T) {
		u, users, _, _ := newProfileUseCase(t)
		users.EXPECT().GetUser(mock.Anything, id).Return(&domain.User{ID: id, Role: domain.RoleInfluencer}, nil)
		_, err := u.RegisterAdvertiser(context.Background(), advertiserInput(id))
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("business number taken", func(t *testing.T) {
		u, users, advertisers, _ := newProfileUseCase(t)
		users.EXPECT().GetUser(mock.Anything, id).Return(&domain.User{ID: id}, nil)
		advertisers.EXPECT().BusinessNumberExists(mock.Anything, "1234567890").Return(true, nil)
		_, err := u.RegisterAdvertiser(context.Background(), advertiserInput(id))
		require.ErrorIs(t, err, domain.ErrBusinessNumberTaken)
	})

	tests := []struct {
		name   string
		mutate func(in *port.RegisterAdvertiserInput)
		code   string
	}{
		{name: "bad phone", mutate: func(in *port.RegisterAdvertiserInput) { in.Phone = "0212345678" }, code: "invalid_phone_number"},
		{name: "bad business number", mutate: func(in *port.RegisterAdvertiserInput) { in.BusinessNumber = "12345" }, code: "invalid_business_number"},
		{name: "missing name", mutate: func(in *port.RegisterAdvertiserInput) { in.Name = " " }, code: "invalid_name"},
		{name: "future birth date", mutate: func(in *port.RegisterAdvertiserInput) { in.BirthDate = testNow.AddDate(0, 0, 2) }, code: "invalid_birth_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, users, _, _ := newProfileUseCase(t)
			users.EXPECT().GetUser(mock.Anything, id).Return(&domain.User{ID: id}, nil)
			in := advertiserInput(id)
			tt.mutate(&in)

			_, err := u.RegisterAdvertiser(context.Background(), in)
			var de *domain.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.code, de.Code)
		})
	}
}

func TestRegisterInfluencer(t *testing.T) {
	id := uuid.New()
	in := port.RegisterInfluencerInput{
		UserID:        id,
		Name:          "Lee Jiwoo",
		BirthDate:     time.Date(1998, 2, 3, 0, 0, 0, 0, time.UTC),
		Phone:         "010-9876-5432",
		ChannelName:   "jiwoo eats",
		ChannelURL:    "https://blog.example.com/jiwoo",
		FollowerCount: 1200,
	}

	t.Run("ok", func(t *testing.T) {
		u, users, _, influencers := newProfileUseCase(t)
		users.EXPECT().GetUser(mock.Anything, id).Return(&domain.User{ID: id}, nil)
		influencers.EXPECT().CreateInfluencer(mock.Anything, mock.AnythingOfType("*domain.Influencer")).Return(nil)

		i, err := u.RegisterInfluencer(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "010-9876-5432", i.Phone)
		assert.Equal(t, 1200, i.FollowerCount)
	})

	t.Run("negative followers", func(t *testing.T) {
		u, users, _, _ := newProfileUseCase(t)
		users.EXPECT().GetUser(mock.Anything, id).Return(&domain.User{ID: id}, nil)
		bad := in
		bad.FollowerCount = -1
		_, err := u.RegisterInfluencer(context.Background(), bad)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("bad channel url", func(t *testing.T) {
		u, users, _, _ := newProfileUseCase(t)
		users.EXPECT().GetUser(mock.Anything, id).Return(&domain.User{ID: id}, nil)
		bad := in
		bad.ChannelURL = "ftp://example.com"
		_, err := u.RegisterInfluencer(context.Background(), bad)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("already an advertiser", func(t *testing.T) {
		u, users, _, _ := newProfileUseCase(t)
		users.EXPECT().GetUser(mock.Anything, id).Return(&domain.User{ID: id, Role: domain.RoleAdvertiser}, nil)
		_, err := u.RegisterInfluencer(context.Background(), in)
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})
}

func TestProfileLookups(t *testing.T) {
	u, _, advertisers, influencers := newProfileUseCase(t)
	id := uuid.New()
	advertisers.EXPECT().GetAdvertiserByUser(mock.Anything, id).Return(nil, nil)
	influencers.EXPECT().GetInfluencerByUser(mock.Anything, id).Return(&domain.Influencer{ID: 4}, nil)

	_, err := u.AdvertiserByUser(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrAdvertiserNotFound)

	i, err := u.InfluencerByUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(4), i.ID)
}
