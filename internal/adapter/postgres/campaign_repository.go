package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
)

const campaignColumns = `c.id, c.advertiser_id, c.title, c.description, c.quota, c.start_date, c.end_date,
       c.benefits, c.conditions, c.image_url, c.status, c.created_at, c.closed_at`

const campaignRowsQuery = `
SELECT ` + campaignColumns + `,
       a.business_name,
       COALESCE(ac.cnt, 0) AS application_count
FROM campaigns c
JOIN advertisers a ON a.id = c.advertiser_id
LEFT JOIN (
    SELECT campaign_id, count(*) AS cnt FROM applications GROUP BY campaign_id
) ac ON ac.campaign_id = c.id`

var orderBy = map[port.SortMode]string{
	port.SortLatest:   "c.created_at DESC, c.id DESC",
	port.SortDeadline: "c.end_date ASC, c.id ASC",
	port.SortPopular:  "application_count DESC, c.created_at DESC, c.id DESC",
}

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row, extra ...any) (domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
	)
	dest := append([]any{
		&c.ID, &c.AdvertiserID, &c.Title, &c.Description, &c.Quota, &c.StartDate, &c.EndDate,
		&c.Benefits, &c.Conditions, &c.ImageURL, &status, &c.CreatedAt, &c.ClosedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return c, err
	}
	var err error
	c.Status, err = domain.ParseCampaignStatus(status)
	return c, err
}

func collectCampaignRows(rows pgx.Rows) ([]port.CampaignRow, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignRow, error) {
		var r port.CampaignRow
		var err error
		r.Campaign, err = scanCampaign(row, &r.BusinessName, &r.ApplicationCount)
		return r, err
	})
}

func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `
INSERT INTO campaigns
    (advertiser_id, title, description, quota, start_date, end_date, benefits, conditions, image_url, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
RETURNING id`,
		c.AdvertiserID, c.Title, c.Description, c.Quota, c.StartDate, c.EndDate,
		c.Benefits, c.Conditions, c.ImageURL, c.Status.String(), c.CreatedAt,
	).Scan(&c.ID)
}

func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return one(scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id)))
}

func (r *CampaignRepository) GetCampaignWithAdvertiser(ctx context.Context, id int64) (*port.CampaignWithAdvertiser, error) {
	var cw port.CampaignWithAdvertiser
	c, err := scanCampaign(r.pool.QueryRow(ctx, `
SELECT `+campaignColumns+`, a.business_name, a.address
FROM campaigns c
JOIN advertisers a ON a.id = c.advertiser_id
WHERE c.id = $1`, id), &cw.BusinessName, &cw.BusinessAddress)
	cw.Campaign = c
	return one(cw, err)
}

func (r *CampaignRepository) ListCampaignsByAdvertiser(ctx context.Context, advertiserID int64) ([]port.CampaignRow, error) {
	rows, err := r.pool.Query(ctx, campaignRowsQuery+`
WHERE c.advertiser_id = $1
ORDER BY c.created_at DESC, c.id DESC`, advertiserID)
	if err != nil {
		return nil, err
	}
	return collectCampaignRows(rows)
}

func (r *CampaignRepository) ListRecruiting(ctx context.Context, q port.ListQuery) ([]port.CampaignRow, error) {
	order, ok := orderBy[q.Sort]
	if !ok {
		order = orderBy[port.SortLatest]
	}
	query := fmt.Sprintf(`%s
WHERE c.status = 'RECRUITING'
ORDER BY %s
OFFSET $1 LIMIT $2`, campaignRowsQuery, order)
	rows, err := r.pool.Query(ctx, query, q.Offset, q.Limit)
	if err != nil {
		return nil, err
	}
	return collectCampaignRows(rows)
}

func (r *CampaignRepository) CountRecruiting(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE status = 'RECRUITING'`).Scan(&n)
	return n, err
}

func (r *CampaignRepository) CountApplications(ctx context.Context, campaignID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM applications WHERE campaign_id = $1`, campaignID).Scan(&n)
	return n, err
}

// lockCampaign reads the campaign row with the given row-level lock clause.
func lockCampaign(ctx context.Context, q querier, id int64, lock string) (*domain.Campaign, error) {
	c, err := one(scanCampaign(q.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1 `+lock, id)))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

func (r *CampaignRepository) CloseCampaign(ctx context.Context, id int64, closedAt time.Time, guard port.CampaignGuard) (*domain.Campaign, error) {
	var closed *domain.Campaign
	err := withTx(ctx, r.pool, pgx.ReadCommitted, func(tx pgx.Tx) error {
		c, err := lockCampaign(ctx, tx, id, "FOR UPDATE")
		if err != nil {
			return err
		}
		if err = guard(*c); err != nil {
			return err
		}
		if !c.Status.CanTransitionTo(domain.CampaignClosed) {
			return fmt.Errorf("%w: campaign is %s", domain.ErrInvalidStatus, c.Status)
		}
		if _, err = tx.Exec(ctx, `UPDATE campaigns SET status = 'CLOSED', closed_at = $2 WHERE id = $1`, id, closedAt); err != nil {
			return err
		}
		c.Status = domain.CampaignClosed
		c.ClosedAt = &closedAt
		closed = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

func (r *CampaignRepository) CloseExpired(ctx context.Context, today, closedAt time.Time) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
UPDATE campaigns SET status = 'CLOSED', closed_at = $2
WHERE status = 'RECRUITING' AND end_date < $1
RETURNING id`, today, closedAt)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// FinalizeSelection runs under READ COMMITTED: once the campaign row is locked
// every later statement sees all applications committed before the lock.
func (r *CampaignRepository) FinalizeSelection(ctx context.Context, id int64, selectedIDs []int64, guard port.SelectionGuard) (*port.SelectionResult, error) {
	res := &port.SelectionResult{CampaignID: id, Selected: []int64{}, Rejected: []int64{}}
	err := withTx(ctx, r.pool, pgx.ReadCommitted, func(tx pgx.Tx) error {
		c, err := lockCampaign(ctx, tx, id, "FOR UPDATE")
		if err != nil {
			return err
		}
		apps, err := applicationsOf(ctx, tx, id)
		if err != nil {
			return err
		}
		if err = guard(*c, apps); err != nil {
			return err
		}
		if !c.Status.CanTransitionTo(domain.CampaignSelected) {
			return fmt.Errorf("%w: campaign is %s", domain.ErrInvalidStatus, c.Status)
		}

		chosen := make(map[int64]struct{}, len(selectedIDs))
		for _, sid := range selectedIDs {
			chosen[sid] = struct{}{}
		}
		for _, a := range apps {
			if !a.IsApplied() {
				continue
			}
			if _, ok := chosen[a.ID]; ok {
				res.Selected = append(res.Selected, a.ID)
			} else {
				res.Rejected = append(res.Rejected, a.ID)
			}
		}

		if err = updateStatusBulk(ctx, tx, id, res.Selected, domain.ApplicationSelected); err != nil {
			return err
		}
		if err = updateStatusBulk(ctx, tx, id, res.Rejected, domain.ApplicationRejected); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE campaigns SET status = 'SELECTED' WHERE id = $1`, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// updateStatusBulk moves pending applications of one campaign to status. Every
// id must match a pending row.
func updateStatusBulk(ctx context.Context, q querier, campaignID int64, ids []int64, status domain.ApplicationStatus) error {
	if len(ids) == 0 {
		return nil
	}
	tag, err := q.Exec(ctx, `
UPDATE applications SET status = $1
WHERE campaign_id = $2 AND id = ANY($3) AND status = 'APPLIED'`, status.String(), campaignID, ids)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != int64(len(ids)) {
		return fmt.Errorf("set %s on %d of %d applications of campaign %d", status, n, len(ids), campaignID)
	}
	return nil
}
