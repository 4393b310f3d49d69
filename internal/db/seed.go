package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var seedBusinesses = []string{"Cafe Bloom", "Hanok Stay", "Glow Skin Clinic", "Mapo Bakery", "Jeju Surf School"}

// Seed inserts demo advertisers, influencers, campaigns in every status and
// applications. It is idempotent only on an empty database.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	return pgx.BeginTxFunc(ctx, pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		advertisers := make([]int64, 0, len(seedBusinesses))
		for i, name := range seedBusinesses {
			userID := uuid.New()
			if _, err := tx.Exec(ctx, `INSERT INTO users (id, email, role) VALUES ($1, $2, 'advertiser')`,
				userID, fmt.Sprintf("owner%d@example.com", i+1)); err != nil {
				return err
			}
			var id int64
			err := tx.QueryRow(ctx, `
INSERT INTO advertisers
    (user_id, name, birth_date, phone_number, business_name, address, business_phone, business_number, representative_name)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING id`,
				userID, fmt.Sprintf("Owner %d", i+1), time.Date(1985+i, 1, 1, 0, 0, 0, 0, time.UTC),
				fmt.Sprintf("010-1000-%04d", i), name, "Seoul", fmt.Sprintf("02-555-%04d", i),
				fmt.Sprintf("10%08d", i), fmt.Sprintf("Owner %d", i+1),
			).Scan(&id)
			if err != nil {
				return err
			}
			advertisers = append(advertisers, id)
		}

		influencers := make([]int64, 0, 30)
		for i := 0; i < 30; i++ {
			userID := uuid.New()
			if _, err := tx.Exec(ctx, `INSERT INTO users (id, email, role) VALUES ($1, $2, 'influencer')`,
				userID, fmt.Sprintf("creator%d@example.com", i+1)); err != nil {
				return err
			}
			var id int64
			err := tx.QueryRow(ctx, `
INSERT INTO influencers
    (user_id, name, birth_date, phone_number, channel_name, channel_url, follower_count)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id`,
				userID, fmt.Sprintf("Creator %d", i+1), time.Date(1995, time.Month(i%12+1), 1, 0, 0, 0, 0, time.UTC),
				fmt.Sprintf("010-2000-%04d", i), fmt.Sprintf("creator_%d", i+1),
				fmt.Sprintf("https://blog.example.com/creator_%d", i+1), r.Intn(50000),
			).Scan(&id)
			if err != nil {
				return err
			}
			influencers = append(influencers, id)
		}

		statuses := []string{"RECRUITING", "RECRUITING", "CLOSED", "SELECTED"}
		for i := 0; i < 20; i++ {
			status := statuses[i%len(statuses)]
			start := today.AddDate(0, 0, -10+i)
			end := start.AddDate(0, 0, 7+r.Intn(14))
			var closedAt *time.Time
			if status != "RECRUITING" {
				t := time.Now().UTC()
				closedAt = &t
			}
			var campaignID int64
			err := tx.QueryRow(ctx, `
INSERT INTO campaigns
    (advertiser_id, title, description, quota, start_date, end_date, benefits, conditions, status, closed_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id`,
				advertisers[i%len(advertisers)], fmt.Sprintf("Trial campaign %d", i+1),
				"<p>Visit us, try the offer and share an honest review.</p>", 2+r.Intn(5), start, end,
				"Free experience for two", "One blog post within 7 days", status, closedAt,
			).Scan(&campaignID)
			if err != nil {
				return err
			}

			applicants := r.Perm(len(influencers))[:r.Intn(8)]
			for n, idx := range applicants {
				appStatus := "APPLIED"
				if status == "SELECTED" {
					appStatus = "REJECTED"
					if n == 0 {
						appStatus = "SELECTED"
					}
				}
				if _, err = tx.Exec(ctx, `
INSERT INTO applications (campaign_id, influencer_id, application_reason, status)
VALUES ($1,$2,$3,$4)`,
					campaignID, influencers[idx], "I would love to review this.", appStatus); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
