package port

import (
	"context"

	"github.com/google/uuid"

	"trial-match/internal/core/domain"
)

type UserRepository interface {
	// EnsureUser inserts u when no user with its ID exists and returns the
	// stored record.
	EnsureUser(ctx context.Context, u domain.User) (*domain.User, error)
	// GetUser returns a user by id, or nil.
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type AdvertiserRepository interface {
	GetAdvertiser(ctx context.Context, id int64) (*domain.Advertiser, error)
	GetAdvertiserByUser(ctx context.Context, userID uuid.UUID) (*domain.Advertiser, error)
	AdvertiserExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error)
	BusinessNumberExists(ctx context.Context, businessNumber string) (bool, error)
	// CreateAdvertiser stamps the user's role and inserts the profile in one
	// transaction. It fails with domain.ErrAlreadyRegistered when the user
	// already holds a role.
	CreateAdvertiser(ctx context.Context, a *domain.Advertiser) error
}

type InfluencerRepository interface {
	GetInfluencer(ctx context.Context, id int64) (*domain.Influencer, error)
	GetInfluencerByUser(ctx context.Context, userID uuid.UUID) (*domain.Influencer, error)
	InfluencerExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error)
	// CreateInfluencer stamps the user's role and inserts the profile in one
	// transaction.
	CreateInfluencer(ctx context.Context, i *domain.Influencer) error
}
