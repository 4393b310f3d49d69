package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
	"trial-match/internal/core/rules"
	"trial-match/internal/sanitize"
)

// ProfileUseCase implements port.ProfileUseCase.
type ProfileUseCase struct {
	users       port.UserRepository
	advertisers port.AdvertiserRepository
	influencers port.InfluencerRepository
	now         func() time.Time
}

func NewProfileUseCase(users port.UserRepository, advertisers port.AdvertiserRepository, influencers port.InfluencerRepository) *ProfileUseCase {
	return &ProfileUseCase{
		users:       users,
		advertisers: advertisers,
		influencers: influencers,
		now:         time.Now,
	}
}

// EnsureUser records an identity the first time it is seen.
func (u *ProfileUseCase) EnsureUser(ctx context.Context, id uuid.UUID, email string) (*domain.User, error) {
	addr, err := domain.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return u.users.EnsureUser(ctx, domain.User{ID: id, Email: string(addr)})
}

func (u *ProfileUseCase) RegisterAdvertiser(ctx context.Context, in port.RegisterAdvertiserInput) (*domain.Advertiser, error) {
	user, err := u.registrant(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !rules.CanRegisterAsAdvertiser(*user) {
		return nil, domain.ErrAlreadyRegistered
	}

	name, err := requiredText("name", in.Name)
	if err != nil {
		return nil, err
	}
	businessName, err := requiredText("business_name", in.BusinessName)
	if err != nil {
		return nil, err
	}
	address, err := requiredText("address", in.Address)
	if err != nil {
		return nil, err
	}
	representative, err := requiredText("representative_name", in.RepresentativeName)
	if err != nil {
		return nil, err
	}
	phone, err := domain.NewPhoneNumber(in.Phone)
	if err != nil {
		return nil, err
	}
	businessPhone, err := requiredText("business_phone", in.BusinessPhone)
	if err != nil {
		return nil, err
	}
	number, err := domain.NewBusinessNumber(in.BusinessNumber)
	if err != nil {
		return nil, err
	}
	if err = u.checkBirthDate(in.BirthDate); err != nil {
		return nil, err
	}

	taken, err := u.advertisers.BusinessNumberExists(ctx, string(number))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrBusinessNumberTaken
	}

	a := &domain.Advertiser{
		UserID:             user.ID,
		Name:               name,
		BirthDate:          domain.DateOf(in.BirthDate),
		Phone:              string(phone),
		BusinessName:       businessName,
		Address:            address,
		BusinessPhone:      businessPhone,
		BusinessNumber:     string(number),
		RepresentativeName: representative,
		CreatedAt:          u.now().UTC(),
	}
	if err = u.advertisers.CreateAdvertiser(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *ProfileUseCase) RegisterInfluencer(ctx context.Context, in port.RegisterInfluencerInput) (*domain.Influencer, error) {
	user, err := u.registrant(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !rules.CanRegisterAsInfluencer(*user) {
		return nil, domain.ErrAlreadyRegistered
	}

	name, err := requiredText("name", in.Name)
	if err != nil {
		return nil, err
	}
	channelName, err := requiredText("channel_name", in.ChannelName)
	if err != nil {
		return nil, err
	}
	phone, err := domain.NewPhoneNumber(in.Phone)
	if err != nil {
		return nil, err
	}
	channelURL, err := domain.NewChannelURL(in.ChannelURL)
	if err != nil {
		return nil, err
	}
	if !rules.ValidateFollowerCount(in.FollowerCount) {
		return nil, domain.ValidationError("follower_count", "follower count must not be negative")
	}
	if err = u.checkBirthDate(in.BirthDate); err != nil {
		return nil, err
	}

	i := &domain.Influencer{
		UserID:        user.ID,
		Name:          name,
		BirthDate:     domain.DateOf(in.BirthDate),
		Phone:         string(phone),
		ChannelName:   channelName,
		ChannelURL:    string(channelURL),
		FollowerCount: in.FollowerCount,
		CreatedAt:     u.now().UTC(),
	}
	if err = u.influencers.CreateInfluencer(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (u *ProfileUseCase) AdvertiserByUser(ctx context.Context, userID uuid.UUID) (*domain.Advertiser, error) {
	a, err := u.advertisers.GetAdvertiserByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAdvertiserNotFound
	}
	return a, nil
}

func (u *ProfileUseCase) InfluencerByUser(ctx context.Context, userID uuid.UUID) (*domain.Influencer, error) {
	i, err := u.influencers.GetInfluencerByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrInfluencerNotFound
	}
	return i, nil
}

func (u *ProfileUseCase) registrant(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := u.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (u *ProfileUseCase) checkBirthDate(d time.Time) error {
	if d.IsZero() || domain.DateOf(d).After(domain.DateOf(u.now())) {
		return domain.ValidationError("birth_date", "birth date must be in the past")
	}
	return nil
}

func requiredText(field, v string) (string, error) {
	v = sanitize.Text(v)
	if v == "" {
		return "", domain.ValidationError(field, field+" is required")
	}
	return v, nil
}
