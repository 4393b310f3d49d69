package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trial-match/internal/core/domain"
)

// ProfileRepository implements the user, advertiser and influencer ports.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &role); err != nil {
		return u, err
	}
	var err error
	u.Role, err = domain.ParseRole(role)
	return u, err
}

func (r *ProfileRepository) EnsureUser(ctx context.Context, u domain.User) (*domain.User, error) {
	_, err := r.pool.Exec(ctx, `INSERT INTO users (id, email) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, u.ID, u.Email)
	if _, dup := uniqueConstraint(err); dup {
		return nil, domain.ValidationError("email", "email is already used by another account")
	}
	if err != nil {
		return nil, err
	}
	return r.GetUser(ctx, u.ID)
}

func (r *ProfileRepository) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return one(scanUser(r.pool.QueryRow(ctx, `SELECT id, email, COALESCE(role, '') FROM users WHERE id = $1`, id)))
}

// claimRole locks the user row and stamps role on it.
func claimRole(ctx context.Context, tx pgx.Tx, userID uuid.UUID, role domain.Role) error {
	u, err := one(scanUser(tx.QueryRow(ctx, `SELECT id, email, COALESCE(role, '') FROM users WHERE id = $1 FOR UPDATE`, userID)))
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if u.HasRole() {
		return domain.ErrAlreadyRegistered
	}
	_, err = tx.Exec(ctx, `UPDATE users SET role = $2 WHERE id = $1`, userID, string(role))
	return err
}

const advertiserColumns = `id, user_id, name, birth_date, phone_number, business_name, address,
       business_phone, business_number, representative_name, created_at`

func scanAdvertiser(row pgx.Row) (domain.Advertiser, error) {
	var a domain.Advertiser
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.BirthDate, &a.Phone, &a.BusinessName, &a.Address,
		&a.BusinessPhone, &a.BusinessNumber, &a.RepresentativeName, &a.CreatedAt)
	return a, err
}

func (r *ProfileRepository) GetAdvertiser(ctx context.Context, id int64) (*domain.Advertiser, error) {
	return one(scanAdvertiser(r.pool.QueryRow(ctx, `SELECT `+advertiserColumns+` FROM advertisers WHERE id = $1`, id)))
}

func (r *ProfileRepository) GetAdvertiserByUser(ctx context.Context, userID uuid.UUID) (*domain.Advertiser, error) {
	return one(scanAdvertiser(r.pool.QueryRow(ctx, `SELECT `+advertiserColumns+` FROM advertisers WHERE user_id = $1`, userID)))
}

func (r *ProfileRepository) AdvertiserExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM advertisers WHERE user_id = $1)`, userID)
}

func (r *ProfileRepository) BusinessNumberExists(ctx context.Context, businessNumber string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM advertisers WHERE business_number = $1)`, businessNumber)
}

func (r *ProfileRepository) CreateAdvertiser(ctx context.Context, a *domain.Advertiser) error {
	err := withTx(ctx, r.pool, pgx.Serializable, func(tx pgx.Tx) error {
		if err := claimRole(ctx, tx, a.UserID, domain.RoleAdvertiser); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `
INSERT INTO advertisers
    (user_id, name, birth_date, phone_number, business_name, address, business_phone,
     business_number, representative_name, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id`,
			a.UserID, a.Name, a.BirthDate, a.Phone, a.BusinessName, a.Address, a.BusinessPhone,
			a.BusinessNumber, a.RepresentativeName, a.CreatedAt,
		).Scan(&a.ID)
	})
	if constraint, dup := uniqueConstraint(err); dup {
		if constraint == "advertisers_business_number_key" {
			return domain.ErrBusinessNumberTaken
		}
		return domain.ErrAlreadyRegistered
	}
	return err
}

const influencerColumns = `id, user_id, name, birth_date, phone_number, channel_name, channel_url, follower_count, created_at`

func scanInfluencer(row pgx.Row) (domain.Influencer, error) {
	var i domain.Influencer
	err := row.Scan(&i.ID, &i.UserID, &i.Name, &i.BirthDate, &i.Phone, &i.ChannelName, &i.ChannelURL, &i.FollowerCount, &i.CreatedAt)
	return i, err
}

func (r *ProfileRepository) GetInfluencer(ctx context.Context, id int64) (*domain.Influencer, error) {
	return one(scanInfluencer(r.pool.QueryRow(ctx, `SELECT `+influencerColumns+` FROM influencers WHERE id = $1`, id)))
}

func (r *ProfileRepository) GetInfluencerByUser(ctx context.Context, userID uuid.UUID) (*domain.Influencer, error) {
	return one(scanInfluencer(r.pool.QueryRow(ctx, `SELECT `+influencerColumns+` FROM influencers WHERE user_id = $1`, userID)))
}

func (r *ProfileRepository) InfluencerExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM influencers WHERE user_id = $1)`, userID)
}

func (r *ProfileRepository) CreateInfluencer(ctx context.Context, i *domain.Influencer) error {
	err := withTx(ctx, r.pool, pgx.Serializable, func(tx pgx.Tx) error {
		if err := claimRole(ctx, tx, i.UserID, domain.RoleInfluencer); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `
INSERT INTO influencers
    (user_id, name, birth_date, phone_number, channel_name, channel_url, follower_count, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING id`,
			i.UserID, i.Name, i.BirthDate, i.Phone, i.ChannelName, i.ChannelURL, i.FollowerCount, i.CreatedAt,
		).Scan(&i.ID)
	})
	if _, dup := uniqueConstraint(err); dup {
		return domain.ErrAlreadyRegistered
	}
	return err
}

func (r *ProfileRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, query, arg).Scan(&ok)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return ok, err
}
